// Package main is the entry point for the roster CLI.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"roster/internal/backend/rest"
	"roster/internal/cli"
	"roster/internal/commands"
	"roster/internal/config"
	"roster/internal/nav"
	"roster/internal/service"
	"roster/internal/token"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Install the root navigator so the session guard can redirect from
	// outside any command's control flow.
	nav.Set(&nav.Console{Out: os.Stderr})

	// Create service factory
	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		tokens := token.NewFileStore(cfg.TokenPath(), slog.Default())
		return rest.New(cfg, tokens, slog.Default()), nil
	}

	// Create dispatcher
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	// Run and exit with code
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
