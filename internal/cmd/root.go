package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tuxprint/tds-website/internal/config"
)

var variant string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tds-website",
	Short: "Promotional website for TDS: Delta",
	Long: `Serves, exports and publishes the TDS: Delta landing page.

Configuration is read from the environment (and .env / .env.local in the
working directory). Run "serve" for a live server, "build" for a static
export and "publish" to upload an export to S3-compatible storage.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.LoadEnvFiles()
	},
}

// NewRootCommand returns the root command
func NewRootCommand() *cobra.Command {
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&variant, "variant", "", "page variant to render (classic, inline-svg, full-codec); overrides PAGE_VARIANT")

	rootCmd.AddCommand(serveCmd, buildCmd, publishCmd, versionCmd)
}

// loadConfig parses the environment and applies flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Parse()
	if err != nil {
		return nil, err
	}
	return applyFlags(cfg), nil
}
