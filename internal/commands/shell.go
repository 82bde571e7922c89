package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"assigna/internal/config"
	"assigna/internal/exitcode"
	"assigna/internal/service"
	"assigna/internal/session"
)

func init() {
	Register(&ShellCmd{})
}

// ShellCmd runs the interactive menu session. It is the default command.
type ShellCmd struct {
	env Env
}

func (c *ShellCmd) Name() string      { return "shell" }
func (c *ShellCmd) Aliases() []string { return []string{"menu"} }
func (c *ShellCmd) Synopsis() string  { return "Start the interactive menu" }
func (c *ShellCmd) Usage() string     { return "assigna [shell]" }
func (c *ShellCmd) NeedsAuth() bool   { return false }

func (c *ShellCmd) RegisterFlags(fs *flag.FlagSet) {}

// SetEnv implements EnvUser.
func (c *ShellCmd) SetEnv(env Env) {
	c.env = env
}

func (c *ShellCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if c.env.In == nil {
		fmt.Fprintln(errOut, "error: no input for interactive session")
		return exitcode.UserError
	}

	err := session.New(svc, c.env.In, out, logger(c.env)).Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.BackendError
	}
	return exitcode.Success
}
