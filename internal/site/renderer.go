// Package site turns the component tree into HTML, either per request or as a
// static export on disk.
package site

import (
	"fmt"
	"io"

	"go.uber.org/fx"
	g "maragu.dev/gomponents"

	"github.com/tuxprint/tds-website/internal/clock"
	"github.com/tuxprint/tds-website/internal/components"
	"github.com/tuxprint/tds-website/internal/config"
	"github.com/tuxprint/tds-website/internal/version"
)

var Module = fx.Module("site",
	fx.Provide(
		func() clock.Clock { return clock.System{} },
		NewRendererFromConfig,
	),
)

// Renderer renders the landing page for one variant.
type Renderer struct {
	variant components.Variant
	version string
	clock   clock.Clock
}

// NewRenderer creates a renderer. An empty version falls back to the build version.
func NewRenderer(variant components.Variant, ver string, clk clock.Clock) *Renderer {
	if ver == "" {
		ver = version.Version
	}
	return &Renderer{variant: variant, version: ver, clock: clk}
}

// NewRendererFromConfig resolves the configured variant.
func NewRendererFromConfig(cfg *config.Config, clk clock.Clock) (*Renderer, error) {
	v, err := components.ParseVariant(cfg.Variant)
	if err != nil {
		return nil, fmt.Errorf("PAGE_VARIANT: %w", err)
	}
	return NewRenderer(v, version.Version, clk), nil
}

func (r *Renderer) Variant() components.Variant { return r.variant }

func (r *Renderer) Version() string { return r.version }

// Page builds the node tree; the footer year is read from the clock here.
func (r *Renderer) Page() g.Node {
	return components.Page(components.PageConfig{
		Variant: r.variant,
		Version: r.version,
		Clock:   r.clock,
	})
}

// Render writes the full HTML document to w.
func (r *Renderer) Render(w io.Writer) error {
	if err := r.Page().Render(w); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}
