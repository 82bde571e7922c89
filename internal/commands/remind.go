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
	Register(&RemindCmd{})
}

// RemindCmd implements the remind command.
type RemindCmd struct{}

func (c *RemindCmd) Name() string      { return "remind" }
func (c *RemindCmd) Aliases() []string { return nil }
func (c *RemindCmd) Synopsis() string  { return "Send a reminder to a task's assignee (team lead)" }
func (c *RemindCmd) Usage() string     { return "assigna remind <id> <message...>" }
func (c *RemindCmd) NeedsAuth() bool   { return true }

func (c *RemindCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RemindCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	id, ok := taskID(args, errOut)
	if !ok {
		return exitcode.UserError
	}
	msg := strings.TrimSpace(strings.Join(args[1:], " "))
	if msg == "" {
		fmt.Fprintln(errOut, "error: reminder message required")
		return exitcode.UserError
	}
	if !requireLead(svc, errOut) {
		return exitcode.UserError
	}
	return reportStatus(cfg, svc.SendRemind(ctx, service.Reminder{TaskID: id, Message: msg}), out, errOut)
}
