// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"
	"log/slog"

	"assigna/internal/config"
	"assigna/internal/service"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsAuth returns true if the command requires a stored session.
	// Commands like help, version, login, register return false.
	NeedsAuth() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg is always provided (config dir, paths, settings).
	// svc is the backend; it may be nil for help and version in tests.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int
}

// Env carries what a few commands need beyond the output streams.
type Env struct {
	// In supplies answers to prompts.
	In io.Reader

	// Logger is the process logger.
	Logger *slog.Logger
}

// EnvUser is implemented by commands that read input or log.
// The dispatcher calls SetEnv before Run.
type EnvUser interface {
	SetEnv(env Env)
}
