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
	Register(&DoneCmd{})
	Register(&NoteCmd{})
}

// DoneCmd implements the done command.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return nil }
func (c *DoneCmd) Synopsis() string  { return "Mark a task completed (team member)" }
func (c *DoneCmd) Usage() string     { return "assigna done <id>" }
func (c *DoneCmd) NeedsAuth() bool   { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	id, ok := taskID(args, errOut)
	if !ok || !requireMember(svc, errOut) {
		return exitcode.UserError
	}
	return reportStatus(cfg, svc.MarkAsDone(ctx, id), out, errOut)
}

// NoteCmd implements the note command.
type NoteCmd struct{}

func (c *NoteCmd) Name() string      { return "note" }
func (c *NoteCmd) Aliases() []string { return nil }
func (c *NoteCmd) Synopsis() string  { return "Attach a note to an assigned task (team member)" }
func (c *NoteCmd) Usage() string     { return "assigna note <id> <text...>" }
func (c *NoteCmd) NeedsAuth() bool   { return true }

func (c *NoteCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *NoteCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	id, ok := taskID(args, errOut)
	if !ok {
		return exitcode.UserError
	}
	text := strings.TrimSpace(strings.Join(args[1:], " "))
	if text == "" {
		fmt.Fprintln(errOut, "error: note text required")
		return exitcode.UserError
	}
	if !requireMember(svc, errOut) {
		return exitcode.UserError
	}
	return reportStatus(cfg, svc.AddTaskNote(ctx, service.Note{TaskID: id, UserNote: text}), out, errOut)
}
