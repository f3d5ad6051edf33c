package handlers

import (
	"io/fs"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/tuxprint/tds-website/internal/assets"
	"github.com/tuxprint/tds-website/internal/config"
)

var Module = fx.Module("handlers",
	fx.Provide(
		prometheus.NewRegistry,
		func(cfg *config.Config) fs.FS { return assets.New(cfg.MediaDir) },
		NewMetrics,
		NewHandler,
	),
	fx.Invoke(RegisterRoutes),
)
