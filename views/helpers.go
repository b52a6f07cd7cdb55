package views

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/section"
)

// BuildURL joins path segments onto base. A URL with segments ends in a
// slash; base alone is returned as parsed.
func BuildURL(base string, segments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	if len(segments) == 0 {
		return u.String()
	}
	u = u.JoinPath(segments...)
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// NavClass returns CSS classes for a navigation link, with active variant.
func NavClass(active bool) string {
	if active {
		return "nav-link active"
	}
	return "nav-link"
}

// thresholdAttr formats the watcher threshold for data-threshold.
func thresholdAttr() string {
	return strconv.FormatFloat(section.Threshold, 'f', -1, 64)
}

// PersonJsonLD produces a Schema.org Person JSON-LD block for the portfolio owner.
func PersonJsonLD(cfg SiteConfig, c content.Content) string {
	name := cfg.Author
	if name == "" {
		name = c.Profile.Name
	}
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Person",
		"name":     name,
		"url":      BuildURL(cfg.URL),
	}
	if c.Profile.Title != "" {
		data["jobTitle"] = c.Profile.Title
	}
	var sameAs []string
	for _, l := range c.Contact.Links {
		if strings.HasPrefix(l.URL, "http") {
			sameAs = append(sameAs, l.URL)
		}
	}
	if len(sameAs) > 0 {
		data["sameAs"] = sameAs
	}
	if len(c.Skills) > 0 {
		skills := make([]string, 0, len(c.Skills))
		for _, s := range c.Skills {
			skills = append(skills, s.Name)
		}
		data["knowsAbout"] = skills
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
