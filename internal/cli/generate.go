package cli

import (
	"os"

	"cvmenu/internal/config"
	"cvmenu/internal/menu"
	"cvmenu/internal/runner"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run the generator once with an explicit flag combination",
	Long: `Run a single generator invocation, composing the same flags the
interactive menu would: translation to English, anonymization, and PDF
export. Translation requires a Gemini API key in the environment.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

var generateOpts struct {
	translate bool
	anonymize bool
	pdf       bool
}

func init() {
	generateCmd.Flags().BoolVarP(&generateOpts.translate, "translate", "t", false, "Translate the CV to English (requires an API key)")
	generateCmd.Flags().BoolVarP(&generateOpts.anonymize, "anonymize", "a", false, "Anonymize contact details and client names")
	generateCmd.Flags().BoolVarP(&generateOpts.pdf, "pdf", "p", false, "Also produce a PDF next to the HTML output")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	creds := config.ResolveCredentials()
	if generateOpts.translate && !creds.HasAPIKey() {
		return menu.MissingAPIKeyError()
	}

	inv := menu.BuildInvocation(generateOpts.translate, generateOpts.anonymize, generateOpts.pdf)
	logger.Info("starting generation", "label", inv.Label, "flags", inv.Flags)

	r := runner.New(cfg.Generator, logger)
	if err := r.Run(cmd.Context(), inv); err != nil {
		return err
	}

	return writeCompletion(os.Stdout, logger, cfg.Generator.OutputDir)
}
