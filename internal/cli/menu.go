package cli

import (
	"os"

	"cvmenu/internal/common"
	"cvmenu/internal/config"
	"cvmenu/internal/menu"
	"cvmenu/internal/runner"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactively pick which CV variants to generate",
	Long: `Show the fixed menu of generator flag combinations, read one
selection, and run the matching generator invocations in order. Choices that
need translation require a Gemini API key in the environment; the bulk
choices fall back to the French-only variants when no key is set.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	creds := config.ResolveCredentials()
	if creds.HasAPIKey() {
		logger.Debug("translation capability available", "source", creds.Source)
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		logger.Debug("stdin is not a terminal, reading selection from pipe")
	}

	d := &menu.Dispatcher{
		In:          os.Stdin,
		Out:         os.Stdout,
		Credentials: creds,
		Runner:      runner.New(cfg.Generator, logger),
		Lister:      common.NewDirLister(logger),
		OutputDir:   cfg.Generator.OutputDir,
		Logger:      logger,
	}
	return d.Run(cmd.Context())
}
