package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/tuxprint/tds-website/internal/clock"
)

// PageFooter shows the build version and the year read from clk at render time.
func PageFooter(version string, clk clock.Clock) g.Node {
	return Div(
		Class("absolute left-0 w-full text-white py-4"),
		P(Class("text-center"), g.Text(FooterText(version, clk.Now().Year()))),
	)
}

func FooterText(version string, year int) string {
	return fmt.Sprintf("V%s - © %04d tuxprint", version, year)
}
