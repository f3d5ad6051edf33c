package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tuxprint/tds-website/internal/assets"
	"github.com/tuxprint/tds-website/internal/clock"
	"github.com/tuxprint/tds-website/internal/config"
	"github.com/tuxprint/tds-website/internal/logger"
	"github.com/tuxprint/tds-website/internal/site"
)

var outDir string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the landing page and its assets as static files",
	Long: `The build command renders index.html with the configured page variant and
copies every asset (embedded stylesheets and manifest, plus MEDIA_DIR when set)
into <out>/assets/. The output directory is removed before the build.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if outDir != "" {
			cfg.OutputDir = outDir
		}

		result, err := runBuild(cmd, cfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Built %d files (%d bytes) into %s\n", len(result.Files), result.Bytes, result.OutputDir)
		return nil
	},
}

func runBuild(cmd *cobra.Command, cfg *config.Config) (*site.BuildResult, error) {
	renderer, err := site.NewRendererFromConfig(cfg, clock.System{})
	if err != nil {
		return nil, err
	}
	builder := site.NewBuilder(renderer, assets.New(cfg.MediaDir), logger.NewLogger(), cfg.MediaDir)
	return builder.Build(cmd.Context(), cfg.OutputDir)
}

func init() {
	buildCmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default OUTPUT_DIR or ./public)")
}
