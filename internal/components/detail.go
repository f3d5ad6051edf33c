package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type Detail struct {
	Title string
	Hook  string
}

// DetailCards are the feature cards in display order.
var DetailCards = []Detail{
	{"Multiplayer", "TDS: Delta supports up to 16 players in a single match."},
	{"Cross Platform", "TDS: Delta will be available on Windows, macOS, and Linux."},
	{"Multiple Game Modes", "TDS: Delta features multiple game modes, including Capture the Flag, Deathmatch, Zombies,and more."},
	{"Fast Paced", "TDS: Delta features fast paced Arena Shooter gameplay."},
}

// Orientation places a card on the left or right of its row on medium screens and up.
type Orientation int

const (
	OrientationLeft Orientation = iota
	OrientationRight
)

func (o Orientation) String() string {
	if o == OrientationRight {
		return "right"
	}
	return "left"
}

func (o Orientation) rowClass() string {
	if o == OrientationRight {
		return "flex flex-col space-y-8 md:space-y-0 md:flex-row-reverse items-center"
	}
	return "flex flex-col space-y-8 md:space-y-0 md:flex-row items-center"
}

// OrientationAt alternates left and right, starting left.
func OrientationAt(i int) Orientation {
	if i%2 == 1 {
		return OrientationRight
	}
	return OrientationLeft
}

func DetailCard(title, hook string, icon g.Node) g.Node {
	return Div(
		Class("max-w-lg p-6 bg-white border border-gray-200 rounded-lg shadow dark:bg-gray-800 dark:border-gray-700"),
		icon,
		A(
			Href("#"),
			H5(Class("mb-2 text-5xl font-semibold text-gray-900 dark:text-white"), g.Text(title)),
		),
		P(Class("mb-3 text-3xl text-gray-500 dark:text-gray-400"), g.Text(hook)),
	)
}

func DetailSection(v Variant) g.Node {
	rows := make([]g.Node, 0, len(DetailCards))
	for i, d := range DetailCards {
		o := OrientationAt(i)
		rows = append(rows, Div(
			Class(o.rowClass()),
			g.Attr("data-orientation", o.String()),
			DetailCard(d.Title, d.Hook, v.CardIcon()),
		))
	}

	return Section(
		Class("space-y-8 py-8 px-4 max-w-5xl mx-auto"),
		ID("details"),
		g.Group(rows),
	)
}
