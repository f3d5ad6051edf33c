package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// socialIcons is the closed set of icons a social link can show.
var socialIcons = map[string]func() g.Node{
	"discord": DiscordSVG,
	"matrix":  MatrixSVG,
}

// SocialIcon resolves an icon key. Unknown keys fall back to the Discord icon.
func SocialIcon(key string) g.Node {
	if icon, ok := socialIcons[key]; ok {
		return icon()
	}
	return DiscordSVG()
}

func SocialLink(href, icon string) g.Node {
	return A(
		Href(href),
		Class("text-white hover:text-gray-200"),
		Target("_blank"),
		Rel("noopener noreferrer"),
		SocialIcon(icon),
	)
}

func SocialLinksContainer() g.Node {
	return Div(
		Class("flex space-x-8 max-w-xs mx-auto justify-center"),
		Style("margin-top: 4rem;"),
		SocialLink(DiscordInviteURL, "discord"),
		SocialLink(MatrixRoomURL, "matrix"),
	)
}
