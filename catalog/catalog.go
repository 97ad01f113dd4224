// Package catalog holds the ordered, read-only list of portfolio projects
// shown on the landing page.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyID is returned when a project has no identifier.
	ErrEmptyID = errors.New("catalog: project id is empty")
	// ErrDuplicateID is returned when two projects share an identifier.
	ErrDuplicateID = errors.New("catalog: duplicate project id")
)

// Project is a single portfolio entry.
type Project struct {
	ID          string
	Title       string
	Image       string
	Description string
	DemoURL     string
	SourceURL   string
}

// Catalog is an ordered set of projects keyed by ID. The order is the
// display order. A Catalog is never modified after New returns.
type Catalog struct {
	projects []Project
	index    map[string]int
}

// New builds a Catalog from projects in the given order. IDs must be
// non-empty and unique.
func New(projects ...Project) (*Catalog, error) {
	c := &Catalog{
		projects: make([]Project, len(projects)),
		index:    make(map[string]int, len(projects)),
	}
	copy(c.projects, projects)
	for i, p := range c.projects {
		id := p.ID
		if strings.TrimSpace(id) == "" {
			return nil, fmt.Errorf("%w (position %d)", ErrEmptyID, i)
		}
		if _, ok := c.index[id]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, id)
		}
		c.index[id] = i
	}
	return c, nil
}

// MustNew is like New but panics on invalid input. Use it for catalogs
// defined in code.
func MustNew(projects ...Project) *Catalog {
	c, err := New(projects...)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of projects.
func (c *Catalog) Len() int {
	return len(c.projects)
}

// At returns the i-th project in display order.
func (c *Catalog) At(i int) *Project {
	return &c.projects[i]
}

// Projects returns the projects in display order. The returned slice is
// fresh; its elements point at the catalog's own records.
func (c *Catalog) Projects() []*Project {
	out := make([]*Project, len(c.projects))
	for i := range c.projects {
		out[i] = &c.projects[i]
	}
	return out
}

// Get looks up a project by ID.
func (c *Catalog) Get(id string) (*Project, bool) {
	i, ok := c.index[id]
	if !ok {
		return nil, false
	}
	return &c.projects[i], true
}
