package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cvmenu/internal/cli"
	"cvmenu/internal/config"
	"cvmenu/internal/errors"
)

func main() {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logging
	logger, err := errors.New(cfg.App.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	logger.Debug("starting cvmenu",
		"version", cli.Version,
		"generator", cfg.Generator.Command,
		"script", cfg.Generator.Script)

	// Execute command with cancellable context; a failed generator run
	// surfaces its own exit status as ours.
	if err := cli.Execute(ctx, cfg, logger); err != nil {
		logger.LogError(err, "Command failed")
		os.Exit(errors.ExitCode(err))
	}
}
