package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Hero(v Variant) g.Node {
	return Section(
		Class("relative h-screen flex flex-col items-center justify-center text-center text-white py-0 px-3"),
		ID("hero"),

		Div(
			Class("video-docker absolute top-0 left-0 w-full h-full overflow-hidden"),
			HeroVideo(v.Sources),
		),

		Div(
			Class("video-content space-y-2"),
			H1(Class("font-light text-7xl sm:text-9xl"), g.Text("TDS: Delta")),
			H3(Class("font-light text-5xl"), g.Text("The ultimate 2d arena shooter")),
			H3(Class("font-light text-3xl"), g.Text(v.Tagline)),
			SocialLinksContainer(),
		),
	)
}

// HeroVideo renders the looping background video. The browser plays the first
// source it supports and shows the poster when none are playable.
func HeroVideo(sources []VideoSource) g.Node {
	return Video(
		Class("min-w-full min-h-full absolute object-cover"),
		g.Attr("autoplay"),
		g.Attr("muted"),
		g.Attr("loop"),
		g.Attr("playsinline"),
		g.Attr("preload", "auto"),
		g.Attr("poster", HeroPoster),
		g.Group(g.Map(sources, func(s VideoSource) g.Node {
			return Source(Type(s.Type), Src(s.Src))
		})),
	)
}
