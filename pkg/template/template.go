// Package template holds the resume template catalog, the paging state of
// the gallery and the persisted template selection.
package template

import (
	"fmt"

	"github.com/xrsl/cvb/pkg/config"
	clog "github.com/xrsl/cvb/pkg/log"
)

// DefaultID is selected when the user skips the gallery.
const DefaultID = "budapest"

// PageSize is how many templates the gallery shows at once.
const PageSize = 3

// Template is one catalog entry.
type Template struct {
	ID      string
	Name    string
	Label   string
	Premium bool
}

// Catalog lists the available templates in gallery order.
var Catalog = []Template{
	{ID: "sydney", Name: "Sydney"},
	{ID: "rotterdam", Name: "Rotterdam", Premium: true},
	{ID: "budapest", Name: "Budapest", Label: "Most Selected"},
	{ID: "chicago", Name: "Chicago", Premium: true},
	{ID: "riga", Name: "Riga"},
}

// Lookup returns the catalog entry with the given id.
func Lookup(id string) (Template, bool) {
	for _, t := range Catalog {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// Gallery is the carousel window over a template list.
type Gallery struct {
	items []Template
	start int
}

// NewGallery returns a gallery positioned at the first page.
func NewGallery(items []Template) *Gallery {
	return &Gallery{items: items}
}

// Visible returns the templates currently in view.
func (g *Gallery) Visible() []Template {
	end := min(g.start+PageSize, len(g.items))
	return g.items[g.start:end]
}

// Start is the index of the first visible template.
func (g *Gallery) Start() int { return g.start }

// CanPrevious reports whether the window can move left.
func (g *Gallery) CanPrevious() bool { return g.start > 0 }

// CanNext reports whether the window can move right.
func (g *Gallery) CanNext() bool { return g.start < g.maxStart() }

// Previous moves the window one template left, stopping at the start.
func (g *Gallery) Previous() { g.start = max(0, g.start-1) }

// Next moves the window one template right, stopping when the last
// template is in view.
func (g *Gallery) Next() { g.start = min(g.maxStart(), g.start+1) }

func (g *Gallery) maxStart() int { return max(0, len(g.items)-PageSize) }

// Store persists the selected template id.
type Store interface {
	Load() (string, error)
	Save(id string) error
}

// ConfigStore keeps the selection under the "template" config key.
type ConfigStore struct{}

func (ConfigStore) Load() (string, error) { return config.Get("template") }

func (ConfigStore) Save(id string) error { return config.Set("template", id) }

// Selector tracks the selected template and writes every change through to
// its Store.
type Selector struct {
	store    Store
	selected string
}

// NewSelector reads the saved selection, if any.
func NewSelector(store Store) (*Selector, error) {
	id, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load template selection: %w", err)
	}
	if _, ok := Lookup(id); id != "" && !ok {
		clog.Warn("ignoring unknown saved template", "template", id)
		id = ""
	}
	return &Selector{store: store, selected: id}, nil
}

// Selected returns the selected id and whether one has been chosen.
func (s *Selector) Selected() (string, bool) {
	return s.selected, s.selected != ""
}

// Effective returns the selected id, or DefaultID when none is chosen.
func (s *Selector) Effective() string {
	if s.selected == "" {
		return DefaultID
	}
	return s.selected
}

// Select chooses and persists a catalog template.
func (s *Selector) Select(id string) error {
	if _, ok := Lookup(id); !ok {
		return fmt.Errorf("unknown template: %s", id)
	}
	if err := s.store.Save(id); err != nil {
		return fmt.Errorf("failed to save template selection: %w", err)
	}
	s.selected = id
	clog.Debug("template selected", "template", id)
	return nil
}

// Skip selects the default template.
func (s *Selector) Skip() error {
	return s.Select(DefaultID)
}
