package content

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("content: invalid")

// Validate checks the records the page relies on.
func (c Content) Validate() error {
	var errs []error
	for i, s := range c.Skills {
		if strings.TrimSpace(s.Name) == "" {
			errs = append(errs, fmt.Errorf("skills[%d]: name is required", i))
		}
		if s.Level < 0 || s.Level > 100 {
			errs = append(errs, fmt.Errorf("skills[%d] %q: level %d must be between 0 and 100", i, s.Name, s.Level))
		}
	}

	ids := make(map[int]bool, len(c.Projects))
	for i, p := range c.Projects {
		if strings.TrimSpace(p.Title) == "" {
			errs = append(errs, fmt.Errorf("projects[%d]: title is required", i))
		}
		if ids[p.ID] {
			errs = append(errs, fmt.Errorf("projects[%d]: duplicate id %d", i, p.ID))
		}
		ids[p.ID] = true
		for _, u := range []string{p.GitHub, p.Demo} {
			if err := checkLink(u); err != nil {
				errs = append(errs, fmt.Errorf("projects[%d] %q: %w", i, p.Title, err))
			}
		}
	}

	for i, l := range c.Contact.Links {
		if err := checkLink(l.URL); err != nil {
			errs = append(errs, fmt.Errorf("contact.links[%d]: %w", i, err))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

// checkLink accepts empty links, in-page fragments and http(s)/mailto URLs.
func checkLink(raw string) error {
	if raw == "" || strings.HasPrefix(raw, "#") {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("link %q: %w", raw, err)
	}
	switch u.Scheme {
	case "http", "https", "mailto":
		return nil
	}
	return fmt.Errorf("link %q: unsupported scheme %q", raw, u.Scheme)
}
