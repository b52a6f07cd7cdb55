package views

// SiteConfig holds site-wide settings the templates need. It is filled from
// the server configuration so nothing is hardcoded in markup.
type SiteConfig struct {
	Name        string // page title and brand
	URL         string // canonical URL
	Description string // meta description
	Author      string // JSON-LD person name, falls back to the profile name

	AssetVersion string // appended to stylesheet and script URLs as ?v=
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string

	AssetVersion string
}
