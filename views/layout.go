package views

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/section"
)

// Home renders the whole single-page portfolio with active highlighted in
// the navigation bar.
func Home(cfg SiteConfig, c content.Content, active section.ID) templ.Component {
	return Component(Page(cfg, c, active))
}

// Page is the top-level layout: navigation bar plus every content section.
func Page(cfg SiteConfig, c content.Content, active section.ID) g.Node {
	meta := PageMeta{
		Title:       cfg.Name,
		Description: cfg.Description,
		URL:         BuildURL(cfg.URL),
		OGType:      "website",

		AssetVersion: cfg.AssetVersion,
	}
	return document(meta, PersonJsonLD(cfg, c),
		Navbar(cfg.Name, active),
		Main(ID("main"),
			Hero(c.Profile),
			About(c.About),
			Skills(c.Skills),
			Projects(c.Projects),
			Contact(c.Contact),
		),
		Footer(Class("footer"),
			P(g.Text(c.Profile.Name), g.Text(" · built with Go")),
		),
	)
}

// NotFound renders the 404 page.
func NotFound(cfg SiteConfig) templ.Component {
	return Component(errorPage(cfg, "404", "This page does not exist."))
}

// ServerError renders the 500 page.
func ServerError(cfg SiteConfig) templ.Component {
	return Component(errorPage(cfg, "500", "Something went wrong on our side."))
}

func errorPage(cfg SiteConfig, code, message string) g.Node {
	meta := PageMeta{
		Title:        code + " · " + cfg.Name,
		URL:          BuildURL(cfg.URL),
		OGType:       "website",
		AssetVersion: cfg.AssetVersion,
	}
	return document(meta, "",
		Main(Class("error-page"),
			H1(Class("gradient-text"), g.Text(code)),
			P(g.Text(message)),
			A(Class("button button-primary"), Href("/"), g.Text("Back home")),
		),
	)
}

// noscriptCSS shows the elements folio.js would otherwise reveal on scroll.
const noscriptCSS = `.reveal{opacity:1;transform:none}.skill-fill{transform:none}`

// assetURL points at an embedded asset, versioned so it can be cached forever.
func assetURL(name, version string) string {
	if version == "" {
		return "/public/" + name
	}
	return "/public/" + name + "?v=" + version
}

func document(meta PageMeta, jsonLD string, body ...g.Node) g.Node {
	return Doctype(
		HTML(Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(meta.Title)),
				g.If(meta.Description != "", Meta(Name("description"), Content(meta.Description))),
				Link(Rel("canonical"), Href(meta.URL)),
				Meta(g.Attr("property", "og:title"), Content(meta.Title)),
				Meta(g.Attr("property", "og:type"), Content(meta.OGType)),
				Meta(g.Attr("property", "og:url"), Content(meta.URL)),
				Link(Rel("icon"), Type("image/svg+xml"), Href("/favicon.svg")),
				Link(Rel("stylesheet"), Href(assetURL("folio.css", meta.AssetVersion))),
				g.El("noscript", g.El("style", g.Raw(noscriptCSS))),
				g.If(jsonLD != "", Script(Type("application/ld+json"), g.Raw(jsonLD))),
				Script(Src(assetURL("folio.js", meta.AssetVersion)), Defer()),
			),
			Body(Class("page"), g.Group(body)),
		),
	)
}
