package components

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	g "maragu.dev/gomponents"

	"github.com/tuxprint/tds-website/internal/clock"
)

var fixed2025 = clock.At(time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC))

func parse(t *testing.T, n g.Node) *html.Node {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	doc, err := html.Parse(strings.NewReader(b.String()))
	require.NoError(t, err)
	return doc
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func tag(name string) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.Data == name }
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func linksWith(doc *html.Node, key, val string) []*html.Node {
	return findAll(doc, func(n *html.Node) bool {
		v, ok := attr(n, key)
		return n.Data == "link" && ok && v == val
	})
}

func renderPage(t *testing.T, v Variant) *html.Node {
	return parse(t, Page(PageConfig{Variant: v, Version: "0.1.0", Clock: fixed2025}))
}

func TestPage_HeadLinks(t *testing.T) {
	for _, v := range Variants() {
		t.Run(v.Name, func(t *testing.T) {
			doc := renderPage(t, v)
			head := findAll(doc, tag("head"))
			require.Len(t, head, 1)

			assert.Len(t, linksWith(head[0], "href", FaviconICO), 1)
			assert.Len(t, linksWith(head[0], "rel", "manifest"), 1)
			assert.Len(t, linksWith(head[0], "rel", "apple-touch-icon"), 1)
			assert.Len(t, linksWith(head[0], "href", MainCSS), 1)
			assert.Len(t, linksWith(head[0], "href", TailwindCSS), 1)

			iconFont := linksWith(head[0], "href", IconFontCSS)
			if v.IconFont {
				assert.Len(t, iconFont, 1)
			} else {
				assert.Empty(t, iconFont)
			}
		})
	}
}

func TestPage_SectionOrder(t *testing.T) {
	doc := renderPage(t, VariantClassic)
	body := findAll(doc, tag("body"))
	require.Len(t, body, 1)

	var children []string
	for c := body[0].FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			id, _ := attr(c, "id")
			children = append(children, c.Data+"#"+id)
		}
	}
	assert.Equal(t, []string{"section#hero", "section#details", "div#"}, children)
}

func TestPage_Defaults(t *testing.T) {
	doc := parse(t, Page(PageConfig{Version: "0.1.0"}))

	titles := findAll(doc, tag("title"))
	require.Len(t, titles, 1)
	assert.Equal(t, "TDS: Delta", text(titles[0]))
	assert.Len(t, linksWith(doc, "href", IconFontCSS), 1, "classic edition is the default")
}

func TestHero_VideoSources(t *testing.T) {
	tests := []struct {
		variant Variant
		want    []string
	}{
		{VariantClassic, []string{HeroVideoAV1, HeroVideoH265, HeroVideoH264}},
		{VariantInlineSVG, []string{HeroVideoAV1, HeroVideoH265, HeroVideoH264}},
		{VariantFullCodec, []string{HeroVideoAV1, HeroVideoVP9, HeroVideoH265, HeroVideoH264}},
	}

	for _, tt := range tests {
		t.Run(tt.variant.Name, func(t *testing.T) {
			doc := parse(t, Hero(tt.variant))
			videos := findAll(doc, tag("video"))
			require.Len(t, videos, 1)

			poster, ok := attr(videos[0], "poster")
			assert.True(t, ok)
			assert.Equal(t, HeroPoster, poster)
			for _, flag := range []string{"autoplay", "muted", "loop", "playsinline"} {
				_, ok := attr(videos[0], flag)
				assert.True(t, ok, "missing %s", flag)
			}

			var got []string
			for _, s := range findAll(videos[0], tag("source")) {
				src, _ := attr(s, "src")
				typ, _ := attr(s, "type")
				assert.True(t, strings.HasPrefix(typ, "video/"), "source %s has type %q", src, typ)
				assert.Contains(t, typ, "codecs=")
				got = append(got, src)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHero_Text(t *testing.T) {
	doc := parse(t, Hero(VariantClassic))

	h1 := findAll(doc, tag("h1"))
	require.Len(t, h1, 1)
	assert.Equal(t, "TDS: Delta", text(h1[0]))

	h3 := findAll(doc, tag("h3"))
	require.Len(t, h3, 2)
	assert.Equal(t, "The ultimate 2d arena shooter", text(h3[0]))
	assert.Equal(t, "Coming spring 2025", text(h3[1]))

	assert.Len(t, findAll(doc, tag("a")), 2, "hero overlays the social links")
}

func TestDetailSection_Cards(t *testing.T) {
	for _, v := range Variants() {
		t.Run(v.Name, func(t *testing.T) {
			doc := parse(t, DetailSection(v))

			rows := findAll(doc, func(n *html.Node) bool {
				_, ok := attr(n, "data-orientation")
				return ok
			})
			require.Len(t, rows, 4)

			wantTitles := []string{"Multiplayer", "Cross Platform", "Multiple Game Modes", "Fast Paced"}
			wantOrient := []string{"left", "right", "left", "right"}
			for i, row := range rows {
				o, _ := attr(row, "data-orientation")
				assert.Equal(t, wantOrient[i], o)

				class, _ := attr(row, "class")
				if wantOrient[i] == "right" {
					assert.Contains(t, class, "md:flex-row-reverse")
				} else {
					assert.NotContains(t, class, "md:flex-row-reverse")
					assert.Contains(t, class, "md:flex-row")
				}

				h5 := findAll(row, tag("h5"))
				require.Len(t, h5, 1)
				assert.Equal(t, wantTitles[i], text(h5[0]))
				assert.Len(t, findAll(row, tag("p")), 1)

				if v.IconFont {
					assert.Len(t, findAll(row, tag("i")), 1)
				} else {
					assert.Len(t, findAll(row, tag("svg")), 1)
				}
			}
		})
	}
}

func TestDetailCard_EscapesText(t *testing.T) {
	var b strings.Builder
	require.NoError(t, DetailCard("<script>alert(1)</script>", "a & b", GiftIcon()).Render(&b))

	out := b.String()
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "a &amp; b")
}

func TestOrientationAt(t *testing.T) {
	assert.Equal(t, OrientationLeft, OrientationAt(0))
	assert.Equal(t, OrientationRight, OrientationAt(1))
	assert.Equal(t, OrientationLeft, OrientationAt(2))
	assert.Equal(t, OrientationRight, OrientationAt(3))
}

func TestSocialLink_IconLookup(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"discord", "Discord"},
		{"matrix", "Matrix"},
		{"unknown", "Discord"},
		{"", "Discord"},
		{"Matrix", "Discord"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			doc := parse(t, SocialLink("https://example.com", tt.key))
			svgs := findAll(doc, tag("svg"))
			require.Len(t, svgs, 1)
			label, _ := attr(svgs[0], "aria-label")
			assert.Equal(t, tt.want, label)
		})
	}
}

func TestSocialLinksContainer(t *testing.T) {
	doc := parse(t, SocialLinksContainer())
	links := findAll(doc, tag("a"))
	require.Len(t, links, 2)

	wantHref := []string{DiscordInviteURL, MatrixRoomURL}
	wantIcon := []string{"Discord", "Matrix"}
	for i, a := range links {
		href, _ := attr(a, "href")
		assert.Equal(t, wantHref[i], href)

		target, _ := attr(a, "target")
		assert.Equal(t, "_blank", target)
		rel, _ := attr(a, "rel")
		assert.Equal(t, "noopener noreferrer", rel)

		svgs := findAll(a, tag("svg"))
		require.Len(t, svgs, 1)
		label, _ := attr(svgs[0], "aria-label")
		assert.Equal(t, wantIcon[i], label)
	}
}

func TestOutboundLinks_AreSafe(t *testing.T) {
	for _, v := range Variants() {
		doc := renderPage(t, v)
		for _, a := range findAll(doc, tag("a")) {
			href, _ := attr(a, "href")
			if !strings.HasPrefix(href, "http") {
				continue
			}
			target, _ := attr(a, "target")
			rel, _ := attr(a, "rel")
			assert.Equal(t, "_blank", target, href)
			assert.Equal(t, "noopener noreferrer", rel, href)
		}
	}
}

func TestPageFooter(t *testing.T) {
	tests := []struct {
		name    string
		version string
		at      time.Time
		want    string
	}{
		{"release", "0.1.0", time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), "V0.1.0 - © 2025 tuxprint"},
		{"new year", "1.2.3", time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), "V1.2.3 - © 2026 tuxprint"},
		{"dev build", "dev", time.Date(2024, time.December, 31, 23, 59, 0, 0, time.UTC), "Vdev - © 2024 tuxprint"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parse(t, PageFooter(tt.version, clock.At(tt.at)))
			p := findAll(doc, tag("p"))
			require.Len(t, p, 1)
			assert.Equal(t, tt.want, text(p[0]))
		})
	}
}

func TestFooterText_FourDigitYear(t *testing.T) {
	assert.Equal(t, "V0.1.0 - © 0999 tuxprint", FooterText("0.1.0", 999))
}

func TestIcons(t *testing.T) {
	tests := []struct {
		name  string
		icon  func() g.Node
		label string
		paths int
	}{
		{"matrix", MatrixSVG, "Matrix", 3},
		{"discord", DiscordSVG, "Discord", 1},
		{"award", AwardIconSVG, "Award", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parse(t, tt.icon())
			svgs := findAll(doc, tag("svg"))
			require.Len(t, svgs, 1)

			label, _ := attr(svgs[0], "aria-label")
			assert.Equal(t, tt.label, label)
			width, _ := attr(svgs[0], "width")
			assert.Equal(t, "32", width)
			assert.Len(t, findAll(svgs[0], tag("path")), tt.paths)
		})
	}
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", "classic", false},
		{"classic", "classic", false},
		{"Inline-SVG", "inline-svg", false},
		{" full-codec ", "full-codec", false},
		{"retro", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := ParseVariant(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownVariant)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Name)
		})
	}
}
