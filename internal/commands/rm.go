package commands

import (
	"context"
	"flag"
	"io"

	"assigna/internal/config"
	"assigna/internal/exitcode"
	"assigna/internal/service"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct{}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return []string{"delete"} }
func (c *RmCmd) Synopsis() string  { return "Delete a task (team lead)" }
func (c *RmCmd) Usage() string     { return "assigna rm <id>" }
func (c *RmCmd) NeedsAuth() bool   { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	id, ok := taskID(args, errOut)
	if !ok || !requireLead(svc, errOut) {
		return exitcode.UserError
	}
	return reportStatus(cfg, svc.DeleteTask(ctx, id), out, errOut)
}
