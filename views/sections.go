package views

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/section"
)

const arrowDown = `<svg class="icon" fill="none" stroke="currentColor" viewBox="0 0 24 24" aria-hidden="true"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M19 14l-7 7m0 0l-7-7m7 7V3"/></svg>`

// sectionEl wraps a content section with the attributes the browser script
// uses to attach a visibility watcher.
func sectionEl(id section.ID, class string, children ...g.Node) g.Node {
	return Section(
		ID(id.String()),
		Class("section "+class),
		Data("section", id.String()),
		Data("threshold", thresholdAttr()),
		g.Group(children),
	)
}

// navAnchor is an in-page link that activates its target on click.
func navAnchor(id section.ID, class string, children ...g.Node) g.Node {
	return A(Class(class), Href(id.Anchor()), Data("nav", id.String()), g.Group(children))
}

// delay staggers entrance animations by index.
func delay(i int, offset float64) g.Node {
	return Style(fmt.Sprintf("--delay: %.1fs", float64(i)*0.1+offset))
}

func heading(text string) g.Node {
	return H2(Class("section-title gradient-text reveal"), g.Text(text))
}

// Hero is the banner at the top of the page.
func Hero(p content.Profile) g.Node {
	return sectionEl(section.Home, "hero",
		Div(Class("hero-inner"),
			H1(Class("hero-title reveal"),
				Span(Class("gradient-text"), g.Text(p.Greeting)),
				Br(),
				Span(Class("hero-name"), g.Text(p.Name)),
			),
			P(Class("hero-subtitle reveal"), g.Text(p.Title)),
			P(Class("hero-intro reveal"), g.Text(p.Intro)),
			Div(Class("hero-actions reveal"),
				navAnchor(section.Projects, "button button-primary", g.Text("View My Work")),
				navAnchor(section.Contact, "button button-outline", g.Text("Get In Touch")),
			),
			Div(Class("hero-hint"),
				navAnchor(section.About, "hint-link", Aria("label", "Scroll to about"), g.Raw(arrowDown)),
			),
		),
	)
}

// About renders the about text next to the list of services.
func About(a content.About) g.Node {
	return sectionEl(section.About, "about",
		Div(Class("container narrow"),
			heading("About Me"),
			Div(Class("about-grid reveal"),
				Div(Class("about-body"), g.Raw(string(a.HTML))),
				Div(Class("card about-card"),
					H3(Class("card-title"), g.Text("What I Do")),
					Ul(Class("service-list"),
						g.Map(a.Services, func(s string) g.Node {
							return Li(Span(Class("marker"), g.Text("▹")), Span(g.Text(s)))
						}),
					),
				),
			),
		),
	)
}

// Skills renders one card with a progress bar per skill.
func Skills(skills []content.Skill) g.Node {
	cards := make([]g.Node, 0, len(skills))
	for i, s := range skills {
		cards = append(cards, skillCard(i, s))
	}
	return sectionEl(section.Skills, "skills alt",
		Div(Class("container"),
			heading("Skills & Technologies"),
			Div(Class("skill-grid"), g.Group(cards)),
		),
	)
}

func skillCard(i int, s content.Skill) g.Node {
	return Div(Class("card skill-card reveal"), delay(i, 0),
		Div(Class("skill-header"),
			Span(Class("skill-name"), g.Text(s.Name)),
			Span(Class("skill-level"), g.Textf("%d%%", s.Percent())),
		),
		SkillBar(s),
	)
}

// SkillBar is the progress track; its fill covers Level percent of the
// track width. The fill animation inherits --delay from the card.
func SkillBar(s content.Skill) g.Node {
	level := strconv.Itoa(s.Percent())
	return Div(Class("skill-track"),
		g.Attr("role", "progressbar"),
		Aria("label", s.Name),
		Aria("valuemin", "0"),
		Aria("valuemax", "100"),
		Aria("valuenow", level),
		Div(Class("skill-fill"), Style("width: "+level+"%"), Data("level", level)),
	)
}

// Projects renders exactly one card per project.
func Projects(projects []content.Project) g.Node {
	cards := make([]g.Node, 0, len(projects))
	for i, p := range projects {
		cards = append(cards, ProjectCard(i, p))
	}
	return sectionEl(section.Projects, "projects",
		Div(Class("container"),
			heading("Featured Projects"),
			Div(Class("project-grid"), g.Group(cards)),
		),
	)
}

// ProjectCard renders a project's title, description, tech tags and links.
func ProjectCard(i int, p content.Project) g.Node {
	return Article(Class("card project-card reveal"), delay(i, 0), Data("project", strconv.Itoa(p.ID)),
		g.If(p.Thumb != "", Img(Class("project-thumb"), Src(p.Thumb), Alt(p.Title), g.Attr("loading", "lazy"))),
		Div(Class("project-body"),
			H3(Class("card-title"), g.Text(p.Title)),
			P(Class("project-description"), g.Text(p.Description)),
			Div(Class("tag-list"),
				g.Map(p.Tech, func(t string) g.Node {
					return Span(Class("tag"), g.Text(t))
				}),
			),
			Div(Class("project-links"),
				g.If(p.GitHub != "", externalLink(p.GitHub, "GitHub →")),
				g.If(p.Demo != "", externalLink(p.Demo, "Live Demo →")),
			),
		),
	)
}

// externalLink opens in a new browsing context.
func externalLink(href, text string) g.Node {
	return A(Class("external"), Href(href), Target("_blank"), Rel("noopener noreferrer"), g.Text(text))
}

// Contact renders the closing call to action.
func Contact(c content.Contact) g.Node {
	return sectionEl(section.Contact, "contact alt",
		Div(Class("container narrow center"),
			heading(c.Heading),
			P(Class("contact-message reveal"), g.Text(c.Message)),
			g.If(c.Email != "",
				A(Class("button button-primary reveal"), Href(c.MailTo()), g.Text("Say Hello")),
			),
			Ul(Class("contact-links reveal"),
				g.Map(c.Links, func(l content.Link) g.Node {
					return Li(externalLink(l.URL, l.Label))
				}),
			),
		),
	)
}
