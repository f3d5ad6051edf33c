package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/tuxprint/tds-website/internal/clock"
)

// PageConfig carries everything the page tree needs from outside.
type PageConfig struct {
	Title   string
	Variant Variant
	Version string
	Clock   clock.Clock
}

// Page assembles the document head and mounts Hero, DetailSection and PageFooter.
func Page(config PageConfig) g.Node {
	if config.Title == "" {
		config.Title = "TDS: Delta"
	}
	if config.Variant.Name == "" {
		config.Variant = VariantClassic
	}
	if config.Clock == nil {
		config.Clock = clock.System{}
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				HeadLinks(config.Variant),
			),
			Body(
				Class("bg-gray-900"),
				Hero(config.Variant),
				DetailSection(config.Variant),
				PageFooter(config.Version, config.Clock),
			),
		),
	})
}

// HeadLinks emits the favicon set, manifest and stylesheets.
func HeadLinks(v Variant) g.Node {
	return g.Group([]g.Node{
		Link(Rel("icon"), Href(FaviconICO)),
		Link(Rel("apple-touch-icon"), g.Attr("sizes", "180x180"), Href(AppleTouchIcon)),
		Link(Rel("icon"), Type("image/png"), g.Attr("sizes", "32x32"), Href(Favicon32)),
		Link(Rel("icon"), Type("image/png"), g.Attr("sizes", "16x16"), Href(Favicon16)),
		Link(Rel("manifest"), Href(WebManifest)),
		Link(Rel("stylesheet"), Href(MainCSS)),
		Link(Rel("stylesheet"), Href(TailwindCSS)),
		g.If(v.IconFont, Link(Rel("stylesheet"), Href(IconFontCSS))),
	})
}
