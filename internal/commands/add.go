package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"assigna/internal/config"
	"assigna/internal/exitcode"
	"assigna/internal/service"
	"assigna/internal/session"
)

func init() {
	Register(&AddCmd{})
	Register(&EditCmd{})
}

// taskFlags are the task fields shared by add and edit.
type taskFlags struct {
	title    string
	category int
	deadline string
	priority string
	member   int
	note     string
	now      func() time.Time
}

func (f *taskFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.title, "title", "", "")
	fs.StringVar(&f.title, "t", "", "")
	fs.IntVar(&f.category, "category", 0, "")
	fs.IntVar(&f.category, "c", 0, "")
	fs.StringVar(&f.deadline, "deadline", "", "")
	fs.StringVar(&f.deadline, "d", "", "")
	fs.StringVar(&f.priority, "priority", "", "")
	fs.StringVar(&f.priority, "p", "", "")
	fs.IntVar(&f.member, "member", 0, "")
	fs.IntVar(&f.member, "m", 0, "")
	fs.StringVar(&f.note, "note", "", "")
	fs.StringVar(&f.note, "n", "", "")
}

func (f *taskFlags) clock() time.Time {
	if f.now == nil {
		return time.Now()
	}
	return f.now()
}

// check validates and normalizes t in place. Deadlines before today's date
// in now are rejected.
func (f *taskFlags) check(t *service.TaskEdit, now time.Time) error {
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("title required")
	}
	if t.CategoryID < 1 {
		return errors.New("category id required")
	}
	if t.MemberID < 1 {
		return errors.New("member id required")
	}
	if err := session.CheckDeadline(t.Deadline, now); err != nil {
		if errors.Is(err, session.ErrDeadlinePast) {
			return fmt.Errorf("deadline is in the past: %s", t.Deadline)
		}
		return fmt.Errorf("invalid deadline: %q (want yyyy-MM-dd)", t.Deadline)
	}
	p, err := session.CapitalizePriority(t.Priority)
	if err != nil {
		return errors.New("priority required")
	}
	t.Priority = p
	return nil
}

// AddCmd implements the add command.
type AddCmd struct {
	taskFlags
}

// SetClock replaces the clock used to reject past deadlines (for testing).
func (c *AddCmd) SetClock(now func() time.Time) {
	c.now = now
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create and assign a task (team lead)" }
func (c *AddCmd) Usage() string {
	return "assigna add --category <id> --deadline <yyyy-MM-dd> --priority <name> --member <id> [--note <text>] [--title <title> | <title...>]"
}
func (c *AddCmd) NeedsAuth() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	c.register(fs)
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	title := c.title
	if title == "" {
		title = strings.Join(args, " ")
	}
	t := service.TaskEdit{
		Title:      strings.TrimSpace(title),
		CategoryID: c.category,
		Deadline:   c.deadline,
		Priority:   c.priority,
		MemberID:   c.member,
		Note:       c.note,
	}
	if err := c.check(&t, c.clock()); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	if !requireLead(svc, errOut) {
		return exitcode.UserError
	}

	return reportStatus(cfg, svc.SaveTask(ctx, service.NewTask{
		Title:      t.Title,
		CategoryID: t.CategoryID,
		Deadline:   t.Deadline,
		Priority:   t.Priority,
		MemberID:   t.MemberID,
		Note:       t.Note,
	}), out, errOut)
}

// EditCmd implements the edit command. Unset flags keep the task's current values.
type EditCmd struct {
	taskFlags
}

// SetClock replaces the clock used to reject past deadlines (for testing).
func (c *EditCmd) SetClock(now func() time.Time) {
	c.now = now
}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Change a task's fields (team lead)" }
func (c *EditCmd) Usage() string {
	return "assigna edit [--title <t>] [--category <id>] [--deadline <yyyy-MM-dd>] [--priority <name>] [--member <id>] [--note <text>] <id>"
}
func (c *EditCmd) NeedsAuth() bool { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	c.register(fs)
}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	id, ok := taskID(args, errOut)
	if !ok || !requireLead(svc, errOut) {
		return exitcode.UserError
	}

	current, code := lookupTask(ctx, svc, id, errOut)
	if code != exitcode.Success {
		return code
	}

	t := service.TaskEdit{
		ID:         id,
		Title:      pick(c.title, current.Title),
		CategoryID: pickID(c.category, current.CategoryID),
		Deadline:   pick(c.deadline, current.Deadline.String()),
		Priority:   pick(c.priority, current.Priority()),
		MemberID:   pickID(c.member, current.AssigneeID),
		Note:       pick(c.note, current.Note),
	}
	// An untouched deadline may already be past; only a new one is checked.
	now := c.clock()
	if c.deadline == "" {
		now = current.Deadline.Time
	}
	if err := c.check(&t, now); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	return reportStatus(cfg, svc.EditTask(ctx, t), out, errOut)
}

func pick(v, current string) string {
	if v == "" {
		return current
	}
	return v
}

func pickID(v, current int) int {
	if v == 0 {
		return current
	}
	return v
}
