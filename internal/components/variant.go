package components

import (
	"errors"
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

var ErrUnknownVariant = errors.New("unknown page variant")

// Variant captures the differences between the published editions of the page.
type Variant struct {
	Name     string
	IconFont bool
	Sources  []VideoSource
	Tagline  string
	CardIcon func() g.Node
}

var (
	// VariantClassic is the canonical edition: icon-font card icons, three encodings.
	VariantClassic = Variant{
		Name:     "classic",
		IconFont: true,
		Sources:  []VideoSource{SourceAV1, SourceH265, SourceH264},
		Tagline:  "Coming spring 2025",
		CardIcon: GiftIcon,
	}

	VariantInlineSVG = Variant{
		Name:     "inline-svg",
		Sources:  []VideoSource{SourceAV1, SourceH265, SourceH264},
		Tagline:  "Coming Spring 2025",
		CardIcon: AwardIconSVG,
	}

	VariantFullCodec = Variant{
		Name:     "full-codec",
		Sources:  []VideoSource{SourceAV1, SourceVP9, SourceH265, SourceH264},
		Tagline:  "Coming Spring 2025",
		CardIcon: AwardIconSVG,
	}
)

// Variants lists every known variant, canonical first.
func Variants() []Variant {
	return []Variant{VariantClassic, VariantInlineSVG, VariantFullCodec}
}

// ParseVariant looks a variant up by name. An empty name selects the classic edition.
func ParseVariant(name string) (Variant, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return VariantClassic, nil
	}
	for _, v := range Variants() {
		if v.Name == name {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// GiftIcon is the Fork Awesome glyph used by the icon-font edition.
func GiftIcon() g.Node {
	return I(Class("fa fa-gift fa-2x"), g.Attr("aria-hidden", "true"))
}
