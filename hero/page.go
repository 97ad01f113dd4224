// Package hero models the landing page's only piece of mutable state: which
// project, if any, is open in the detail overlay.
package hero

import (
	"errors"
	"fmt"

	"github.com/eringen/showcase/catalog"
)

var (
	// ErrUnknownProject is returned when a selection names an id that is not
	// in the catalog.
	ErrUnknownProject = errors.New("hero: unknown project")
	// ErrUnknownRegion is returned when a region name cannot be parsed.
	ErrUnknownRegion = errors.New("hero: unknown overlay region")
)

// State is the page's selection state.
type State int

const (
	// Idle means nothing is selected and the overlay is not mounted.
	Idle State = iota
	// Showing means one project is open in the overlay.
	Showing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Showing:
		return "showing"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Region is an independently dispatched hit area of the overlay. Activation
// of a region is delivered to the page on its own; regions never forward
// events to one another.
type Region int

const (
	// RegionBackdrop is the dimmed area around the content panel.
	RegionBackdrop Region = iota + 1
	// RegionPanel is the content panel itself.
	RegionPanel
	// RegionClose is the explicit close button.
	RegionClose
)

var regionNames = map[Region]string{
	RegionBackdrop: "backdrop",
	RegionPanel:    "panel",
	RegionClose:    "close",
}

func (r Region) String() string {
	if name, ok := regionNames[r]; ok {
		return name
	}
	return fmt.Sprintf("region(%d)", int(r))
}

// ParseRegion maps a region name back to its Region.
func ParseRegion(name string) (Region, error) {
	for r, n := range regionNames {
		if n == name {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRegion, name)
}

// Dismisses reports whether activating r closes the overlay.
func (r Region) Dismisses() bool {
	return r == RegionBackdrop || r == RegionClose
}

// Page is a mounted landing page. It owns the selection exclusively; all
// transitions happen through its methods.
type Page struct {
	catalog  *catalog.Catalog
	selected *catalog.Project
}

// Mount creates a page over c with nothing selected.
func Mount(c *catalog.Catalog) *Page {
	return &Page{catalog: c}
}

// Catalog returns the catalog the page was mounted with.
func (p *Page) Catalog() *catalog.Catalog {
	return p.catalog
}

// Select opens proj in the overlay, replacing any current selection.
func (p *Page) Select(proj *catalog.Project) {
	p.selected = proj
}

// SelectID selects the catalog project with the given id.
func (p *Page) SelectID(id string) error {
	proj, ok := p.catalog.Get(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownProject, id)
	}
	p.Select(proj)
	return nil
}

// Dismiss closes the overlay. Dismissing an idle page is a no-op.
func (p *Page) Dismiss() {
	p.selected = nil
}

// Dispatch delivers an activation of region r. It reports whether the
// overlay was dismissed. Panel activations never change the selection.
func (p *Page) Dispatch(r Region) bool {
	if p.selected == nil || !r.Dismisses() {
		return false
	}
	p.Dismiss()
	return true
}

// Selected returns the open project, if any.
func (p *Page) Selected() (*catalog.Project, bool) {
	return p.selected, p.selected != nil
}

// State returns Idle or Showing.
func (p *Page) State() State {
	if p.selected == nil {
		return Idle
	}
	return Showing
}
