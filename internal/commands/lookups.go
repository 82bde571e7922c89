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
	Register(&lookupCmd[service.Member]{
		name:     "members",
		synopsis: "List team members and their ids",
		fetch:    service.Tasks.TeamMembers,
		format:   output.FormatMembers,
	})
	Register(&lookupCmd[service.Category]{
		name:     "categories",
		synopsis: "List task categories and their ids",
		fetch:    service.Tasks.AllCategories,
		format:   output.FormatCategories,
	})
	Register(&lookupCmd[service.Priority]{
		name:     "priorities",
		synopsis: "List priority names",
		fetch:    service.Tasks.Priorities,
		format:   output.FormatPriorities,
	})
}

// lookupCmd prints one of the reference lists used when adding tasks.
type lookupCmd[T any] struct {
	name     string
	synopsis string
	fetch    func(service.Tasks, context.Context) service.Result[[]T]
	format   func(io.Writer, []T)
}

func (c *lookupCmd[T]) Name() string      { return c.name }
func (c *lookupCmd[T]) Aliases() []string { return nil }
func (c *lookupCmd[T]) Synopsis() string  { return c.synopsis }
func (c *lookupCmd[T]) Usage() string     { return "assigna " + c.name }
func (c *lookupCmd[T]) NeedsAuth() bool   { return true }

func (c *lookupCmd[T]) RegisterFlags(fs *flag.FlagSet) {}

func (c *lookupCmd[T]) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	res := c.fetch(svc, ctx)
	if !res.Success {
		fmt.Fprintf(errOut, "error: backend error: %s\n", failureMessage(res.Message))
		return exitcode.BackendError
	}
	if len(res.Data) == 0 {
		if !cfg.Quiet {
			fmt.Fprintf(out, "no %s found\n", c.name)
		}
		return exitcode.Success
	}
	c.format(out, res.Data)
	return exitcode.Success
}
