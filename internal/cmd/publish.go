package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tuxprint/tds-website/internal/logger"
	"github.com/tuxprint/tds-website/internal/storage"
)

var (
	publishDir   string
	publishBuild bool
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload a static export to S3-compatible storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if publishDir != "" {
			cfg.OutputDir = publishDir
		}
		if !cfg.Storage.Enabled() {
			return fmt.Errorf("%w: set STORAGE_ENDPOINT, STORAGE_ACCESS_KEY and STORAGE_SECRET_KEY", storage.ErrDisabled)
		}

		if publishBuild {
			if _, err := runBuild(cmd, cfg); err != nil {
				return fmt.Errorf("build before publish: %w", err)
			}
		}

		svc, err := storage.NewService(cmd.Context(), cfg.Storage, logger.NewLogger())
		if err != nil {
			return err
		}
		result, err := svc.PublishDir(cmd.Context(), cfg.OutputDir)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Published %d objects (%d bytes) to %s\n", len(result.Objects), result.Bytes, result.Bucket)
		return nil
	},
}

func init() {
	publishCmd.Flags().StringVarP(&publishDir, "dir", "d", "", "directory to upload (default OUTPUT_DIR or ./public)")
	publishCmd.Flags().BoolVar(&publishBuild, "build", false, "run build before uploading")
}
