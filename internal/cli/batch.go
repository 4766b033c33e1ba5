package cli

import (
	"os"

	"cvmenu/internal/config"
	"cvmenu/internal/menu"
	"cvmenu/internal/runner"

	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate every CV variant in one run",
	Long: `Run the four standard generator combinations in order: plain,
anonymized, translated, and translated anonymized. Without an API key in the
environment the translated variants are skipped after a warning.`,
	Args: cobra.NoArgs,
	RunE: runBatch,
}

var batchPDF bool

func init() {
	batchCmd.Flags().BoolVarP(&batchPDF, "pdf", "p", false, "Also produce PDFs next to the HTML outputs")
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	creds := config.ResolveCredentials()

	choice := menu.Choice(9)
	if batchPDF {
		choice = 10
	}
	plan, err := menu.Resolve(choice, creds.HasAPIKey())
	if err != nil {
		return err
	}

	logger.Info("starting batch generation", "invocations", len(plan.Invocations), "pdf", batchPDF)

	r := runner.New(cfg.Generator, logger)
	if _, err := menu.RunPlan(cmd.Context(), os.Stdout, r, plan, logger); err != nil {
		return err
	}

	return writeCompletion(os.Stdout, logger, cfg.Generator.OutputDir)
}
