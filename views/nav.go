package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/eringen/folio/section"
)

// Navbar renders one link per section and marks the active one. It is a
// pure function of active; the browser script moves the mark as the reader
// scrolls or clicks.
func Navbar(brand string, active section.ID) g.Node {
	return Header(ID("navbar"), Class("navbar"),
		Nav(Class("nav container"), Aria("label", "Sections"),
			A(Class("brand gradient-text"), Href(section.Home.Anchor()), Data("nav", section.Home.String()), g.Text(brand)),
			Ul(Class("nav-links"),
				g.Map(section.All(), func(id section.ID) g.Node {
					return Li(NavLink(id, id == active))
				}),
			),
		),
	)
}

// NavLink is a single navigation anchor.
func NavLink(id section.ID, active bool) g.Node {
	return A(
		Class(NavClass(active)),
		Href(id.Anchor()),
		Data("nav", id.String()),
		g.If(active, Aria("current", "true")),
		g.Text(id.Label()),
	)
}
