// Package content holds the static records rendered by the portfolio page:
// the hero profile, the about text, skills, projects and contact links.
//
// Records are immutable once loaded. Default returns the compiled-in data;
// Load overlays a content directory on top of it.
package content

import (
	"html/template"
)

// Content is everything the page renders.
type Content struct {
	Profile  Profile   `koanf:"profile" yaml:"profile"`
	About    About     `koanf:"about" yaml:"about"`
	Skills   []Skill   `koanf:"skills" yaml:"skills"`
	Projects []Project `koanf:"projects" yaml:"projects"`
	Contact  Contact   `koanf:"contact" yaml:"contact"`
}

// Profile feeds the hero banner.
type Profile struct {
	Greeting string `koanf:"greeting" yaml:"greeting"`
	Name     string `koanf:"name" yaml:"name"`
	Title    string `koanf:"title" yaml:"title"`
	Intro    string `koanf:"intro" yaml:"intro"`
}

// About is the about section. Body is markdown; HTML is its rendering.
type About struct {
	Body     string        `koanf:"body" yaml:"body"`
	Services []string      `koanf:"services" yaml:"services"`
	HTML     template.HTML `koanf:"-" yaml:"-"`
}

// Skill is a named proficiency. Level is a percentage.
type Skill struct {
	Name  string `koanf:"name" yaml:"name"`
	Level int    `koanf:"level" yaml:"level"`
}

// Percent returns Level clamped to [0, 100].
func (s Skill) Percent() int {
	switch {
	case s.Level < 0:
		return 0
	case s.Level > 100:
		return 100
	}
	return s.Level
}

// Fill is the filled proportion of the skill's progress track.
func (s Skill) Fill() float64 {
	return float64(s.Percent()) / 100
}

// Project is one card in the projects gallery.
type Project struct {
	ID          int      `koanf:"id" yaml:"id"`
	Title       string   `koanf:"title" yaml:"title"`
	Description string   `koanf:"description" yaml:"description"`
	Tech        []string `koanf:"tech" yaml:"tech"`
	GitHub      string   `koanf:"github" yaml:"github"`
	Demo        string   `koanf:"demo" yaml:"demo"`
	// Image is a path relative to the content directory.
	Image string `koanf:"image" yaml:"image,omitempty"`
	// Thumb is the public URL of the processed image, set by the server.
	Thumb string `koanf:"-" yaml:"-"`
}

// Link is an outbound hyperlink.
type Link struct {
	Label string `koanf:"label" yaml:"label"`
	URL   string `koanf:"url" yaml:"url"`
}

// Contact is the closing section.
type Contact struct {
	Heading string `koanf:"heading" yaml:"heading"`
	Message string `koanf:"message" yaml:"message"`
	Email   string `koanf:"email" yaml:"email"`
	Links   []Link `koanf:"links" yaml:"links"`
}

// MailTo returns the mailto URL for the contact email, or "" if unset.
func (c Contact) MailTo() string {
	if c.Email == "" {
		return ""
	}
	return "mailto:" + c.Email
}
