// Package main is the entry point for the assigna CLI.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"assigna/internal/backend/assigna"
	"assigna/internal/cli"
	"assigna/internal/commands"
	"assigna/internal/config"
	"assigna/internal/credentials"
	"assigna/internal/metrics"
	"assigna/internal/service"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	m := metrics.New()
	var logger *slog.Logger

	factory := func(ctx context.Context, cfg *config.Config, creds *credentials.Store, l *slog.Logger) (service.Service, error) {
		logger = l
		return assigna.New(cfg, creds, l, m)
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)
	dispatcher.SetInput(os.Stdin)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if logger != nil {
		m.Log(logger)
	}
	os.Exit(code)
}
