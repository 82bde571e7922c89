// Package cli parses the command line and dispatches to commands.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"assigna/internal/commands"
	"assigna/internal/config"
	"assigna/internal/credentials"
	"assigna/internal/exitcode"
	"assigna/internal/logging"
	"assigna/internal/service"
)

// defaultCommand runs when no command is given.
const defaultCommand = "shell"

// ServiceFactory creates a Service from config.
// Used to inject the backend during dispatch. Login results and refreshed
// tokens must be written into creds; the dispatcher persists them.
type ServiceFactory func(ctx context.Context, cfg *config.Config, creds *credentials.Store, logger *slog.Logger) (service.Service, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  ServiceFactory
	in       io.Reader
}

// NewDispatcher creates a new dispatcher with the given registry and service factory.
func NewDispatcher(registry *commands.Registry, factory ServiceFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// SetInput sets the reader prompts and the interactive session read from.
func (d *Dispatcher) SetInput(in io.Reader) {
	d.in = in
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		return d.dispatch(ctx, defaultCommand, nil, out, errOut)
	}

	cmdName := args[0]

	// If first token starts with -, it's an error (flags require a command)
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatch(ctx, cmdName, args[1:], out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmdName string, args []string, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args, out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	// Common flags
	var configDir string
	var quiet bool
	var debug bool

	fs.StringVar(&configDir, "config", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		reportFlagError(err, errOut)
		return exitcode.UserError
	}

	// Check if first positional arg starts with - (should have been parsed as flag)
	positionalArgs := fs.Args()
	if len(positionalArgs) > 0 && strings.HasPrefix(positionalArgs[0], "-") {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positionalArgs[0])
		return exitcode.UserError
	}

	cfg, err := config.New(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}
	cfg.Quiet = quiet
	cfg.Debug = debug

	logger, closeLog := newLogger(cfg, errOut)
	defer closeLog()

	creds, err := credentials.Load(cfg.CredentialsPath())
	if err != nil {
		fmt.Fprintf(errOut, "error: auth error: %s\n", err)
		return exitcode.AuthError
	}
	if cmd.NeedsAuth() && !creds.LoggedIn() {
		fmt.Fprintln(errOut, "error: not logged in (run: assigna login)")
		return exitcode.AuthError
	}

	var svc service.Service
	if d.factory != nil {
		svc, err = d.factory(ctx, cfg, creds, logger)
		if err != nil {
			fmt.Fprintf(errOut, "error: %s\n", err)
			return exitcode.UserError
		}
	}

	if u, ok := cmd.(commands.EnvUser); ok {
		u.SetEnv(commands.Env{In: d.in, Logger: logger})
	}

	version := creds.Version()
	code := cmd.Run(ctx, cfg, svc, positionalArgs, out, errOut)

	// Logins and token refreshes change the store; keep them for the next run.
	if creds.Version() != version {
		if err := persist(cfg, creds); err != nil {
			logger.Error("failed to save credentials", "error", err)
			fmt.Fprintf(errOut, "error: failed to save credentials: %v\n", err)
			if code == exitcode.Success {
				code = exitcode.AuthError
			}
		}
	}
	return code
}

func persist(cfg *config.Config, creds *credentials.Store) error {
	if err := cfg.EnsureDir(); err != nil {
		return err
	}
	return creds.Save(cfg.CredentialsPath())
}

// newLogger writes debug logs to errOut with --debug, and info logs to the
// log file when the config directory exists. Otherwise logs are dropped.
func newLogger(cfg *config.Config, errOut io.Writer) (*slog.Logger, func()) {
	if cfg.Debug {
		return logging.New(errOut, true), func() {}
	}
	if _, err := os.Stat(cfg.Dir); err != nil {
		return logging.Discard(), func() {}
	}
	f, err := logging.OpenFile(cfg.LogPath())
	if err != nil {
		return logging.Discard(), func() {}
	}
	return logging.New(f, false), func() { f.Close() }
}

func reportFlagError(err error, errOut io.Writer) {
	errStr := err.Error()

	// Check for missing flag value
	if strings.HasPrefix(errStr, "flag needs an argument: ") {
		flagName := strings.TrimPrefix(errStr, "flag needs an argument: ")
		fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", flagName)
		return
	}

	if strings.HasPrefix(errStr, "flag provided but not defined:") {
		flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
		return
	}

	fmt.Fprintf(errOut, "error: %s\n", errStr)
}
