package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"assigna/internal/config"
	"assigna/internal/exitcode"
	"assigna/internal/output"
	"assigna/internal/service"
)

func init() {
	Register(&TasksCmd{})
	Register(&InfoCmd{})
}

type listFunc func(service.Tasks, context.Context) service.Result[[]service.Task]

// filters maps --filter values to list calls.
var filters = map[string]listFunc{
	"all":       service.Tasks.AllTasks,
	"pending":   service.Tasks.Pendings,
	"completed": service.Tasks.Completed,
	"high":      service.Tasks.HighPriority,
	"medium":    service.Tasks.MediumPriority,
	"low":       service.Tasks.LowPriority,
}

// TasksCmd implements the tasks command.
type TasksCmd struct {
	filter string
}

func (c *TasksCmd) Name() string      { return "tasks" }
func (c *TasksCmd) Aliases() []string { return []string{"ls"} }
func (c *TasksCmd) Synopsis() string  { return "List tasks" }
func (c *TasksCmd) Usage() string {
	return "assigna tasks [common flags] [--filter all|pending|completed|high|medium|low]"
}
func (c *TasksCmd) NeedsAuth() bool { return true }

func (c *TasksCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.filter, "filter", "all", "")
	fs.StringVar(&c.filter, "f", "all", "")
}

func (c *TasksCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	list, ok := filters[c.filter]
	if !ok {
		fmt.Fprintf(errOut, "error: unknown filter: %s\n", c.filter)
		return exitcode.UserError
	}

	res := list(svc, ctx)
	if !res.Success {
		fmt.Fprintf(errOut, "error: backend error: %s\n", failureMessage(res.Message))
		return exitcode.BackendError
	}

	if len(res.Data) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}
	output.FormatTaskTable(out, res.Data)
	return exitcode.Success
}

// InfoCmd implements the info command.
type InfoCmd struct{}

func (c *InfoCmd) Name() string      { return "info" }
func (c *InfoCmd) Aliases() []string { return []string{"show"} }
func (c *InfoCmd) Synopsis() string  { return "Show task details" }
func (c *InfoCmd) Usage() string     { return "assigna info <id>" }
func (c *InfoCmd) NeedsAuth() bool   { return true }

func (c *InfoCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *InfoCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	id, ok := taskID(args, errOut)
	if !ok {
		return exitcode.UserError
	}

	task, code := lookupTask(ctx, svc, id, errOut)
	if code != exitcode.Success {
		return code
	}
	output.FormatTaskInfo(out, task)
	return exitcode.Success
}

// lookupTask fetches one task through the info endpoint for the stored role.
func lookupTask(ctx context.Context, svc service.Service, id int, errOut io.Writer) (service.Task, int) {
	info := svc.MemberTaskInfo
	if svc.Role() == service.RoleLead {
		info = svc.LeadTaskInfo
	}

	res := info(ctx, id)
	if !res.Success {
		fmt.Fprintf(errOut, "error: backend error: %s\n", failureMessage(res.Message))
		return service.Task{}, exitcode.BackendError
	}
	if len(res.Data) == 0 {
		fmt.Fprintf(errOut, "error: task not found: %d\n", id)
		return service.Task{}, exitcode.UserError
	}
	return res.Data[0], exitcode.Success
}
