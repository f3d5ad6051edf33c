package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/tuxprint/tds-website/internal/config"
	"github.com/tuxprint/tds-website/internal/handlers"
	"github.com/tuxprint/tds-website/internal/logger"
	"github.com/tuxprint/tds-website/internal/server"
	"github.com/tuxprint/tds-website/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the landing page over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := fx.New(
			fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
				return &fxevent.SlogLogger{Logger: log}
			}),
			serveOptions(),
		)
		if err := app.Err(); err != nil {
			return err
		}

		app.Run()
		return nil
	},
}

// serveOptions is the dependency graph of the HTTP server.
func serveOptions() fx.Option {
	return fx.Options(
		// Infrastructure modules
		logger.Module,
		config.Module,
		fx.Decorate(applyFlags),

		// Page rendering and HTTP
		site.Module,
		server.Module,
		handlers.Module,
	)
}

// applyFlags lets command-line flags override environment configuration.
func applyFlags(cfg *config.Config) *config.Config {
	if variant != "" {
		cfg.Variant = variant
	}
	return cfg
}
