// Package section tracks which region of the portfolio page is in focus.
//
// A page is split into a fixed set of sections. Each mounted section gets a
// Watcher that reports its ID when the section becomes at least Threshold
// visible in the viewport; the Page that owns the watchers keeps the single
// active ID in a Tracker, and the navigation bar reads it to highlight the
// current link.
package section

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ID names one section of the page.
type ID string

const (
	Home     ID = "home"
	About    ID = "about"
	Skills   ID = "skills"
	Projects ID = "projects"
	Contact  ID = "contact"
)

// ErrUnknown is returned for identifiers outside the section set.
var ErrUnknown = errors.New("section: unknown id")

var order = []ID{Home, About, Skills, Projects, Contact}

var titleCaser = cases.Title(language.English)

// All returns every section in document order.
func All() []ID {
	out := make([]ID, len(order))
	copy(out, order)
	return out
}

// Parse converts s into an ID.
func Parse(s string) (ID, error) {
	id := ID(s)
	if !id.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknown, s)
	}
	return id, nil
}

// Valid reports whether id belongs to the section set.
func (id ID) Valid() bool {
	for _, s := range order {
		if s == id {
			return true
		}
	}
	return false
}

// Anchor returns the in-page fragment for id, e.g. "#about".
func (id ID) Anchor() string {
	return "#" + string(id)
}

// Label is the navigation text for id.
func (id ID) Label() string {
	return titleCaser.String(string(id))
}

func (id ID) String() string {
	return string(id)
}
