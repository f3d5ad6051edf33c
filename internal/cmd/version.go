package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tuxprint/tds-website/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Info()
		fmt.Fprintf(cmd.OutOrStdout(), "tds-website %s (commit %s, built %s)\n", info.Version, info.GitCommit, info.BuildTime)
	},
}
