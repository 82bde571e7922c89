package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"assigna/internal/config"
	"assigna/internal/exitcode"
	"assigna/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "assigna help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Commands:")
	for _, cmd := range DefaultRegistry.All() {
		name := cmd.Name()
		if aliases := cmd.Aliases(); len(aliases) > 0 {
			name += " (" + strings.Join(aliases, ", ") + ")"
		}
		fmt.Fprintf(out, "  %-32s %s\n", name, cmd.Synopsis())
	}
	return exitcode.Success
}

const helpText = `Usage:
  assigna                                            Start the interactive menu
  assigna shell [common flags]
  assigna register [common flags] [--user <name>] [--first-name <name>] [--email <addr>]
                   [--password <pw>] [--role lead|member]
  assigna login [common flags] [--user <name>] [--password <pw>]
  assigna logout [common flags]
  assigna forgot-password [common flags] <email>
  assigna reset-password [common flags] [--password <pw>] [--confirm <pw>] [--token <t>]
  assigna whoami [common flags]
  assigna tasks [common flags] [--filter all|pending|completed|high|medium|low]
  assigna info [common flags] <id>
  assigna members [common flags]
  assigna categories [common flags]
  assigna priorities [common flags]

Team lead:
  assigna add [common flags] --category <id> --deadline <yyyy-MM-dd> --priority <name>
              --member <id> [--note <text>] <title...>
  assigna edit [common flags] [--title <t>] [--category <id>] [--deadline <yyyy-MM-dd>]
               [--priority <name>] [--member <id>] [--note <text>] <id>
  assigna rm [common flags] <id>
  assigna remind [common flags] <id> <message...>

Team member:
  assigna note [common flags] <id> <text...>
  assigna done [common flags] <id>

  assigna help
  assigna version

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
