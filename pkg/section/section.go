// Package section implements the editor behind repeatable resume sections
// such as work experience and education.
//
// A Collection keeps its entries newest first and has at most one expanded
// entry, the one whose full form is shown. Every lookup by id degrades to a
// no-op when the id is unknown.
package section

import (
	"slices"

	"github.com/google/uuid"

	clog "github.com/xrsl/cvb/pkg/log"
)

// Placeholder is shown in a card header when the primary field is empty.
const Placeholder = "(Not specified)"

// Entry is one record of a repeatable section. Implementations recompute
// their validity inside Set.
type Entry interface {
	ID() string
	// Set assigns a field by name and reports whether the field exists and
	// the value could be applied.
	Set(field string, value any) bool
	Valid() bool
	// Header returns the primary and secondary labels of the card.
	Header() (primary, secondary string)
}

// Card is the read-only view of an entry used by renderers.
type Card[E Entry] struct {
	ID        string
	Primary   string
	Secondary string
	Valid     bool
	Expanded  bool
	Entry     E
}

// Collection is an ordered set of entries of one kind. It is not safe for
// concurrent use.
type Collection[E Entry] struct {
	kind     string
	entries  []E
	expanded string
	create   func(id string) E
	newID    func() string
}

// Option configures a Collection.
type Option func(*config)

type config struct {
	newID func() string
}

// WithIDFunc overrides the id generator.
func WithIDFunc(fn func() string) Option {
	return func(c *config) { c.newID = fn }
}

// NewID returns a time-ordered unique id.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// New returns an empty collection whose entries are built by create.
func New[E Entry](kind string, create func(id string) E, opts ...Option) *Collection[E] {
	cfg := config{newID: NewID}
	for _, o := range opts {
		o(&cfg)
	}
	return &Collection[E]{
		kind:   kind,
		create: create,
		newID:  cfg.newID,
	}
}

// Kind names the section, e.g. "experience".
func (c *Collection[E]) Kind() string { return c.kind }

// Len returns the number of entries.
func (c *Collection[E]) Len() int { return len(c.entries) }

// Entries returns the entries in display order.
func (c *Collection[E]) Entries() []E { return slices.Clone(c.entries) }

// Get returns the entry with the given id.
func (c *Collection[E]) Get(id string) (E, bool) {
	if i := c.index(id); i >= 0 {
		return c.entries[i], true
	}
	var zero E
	return zero, false
}

// Expanded returns the id of the expanded entry, if any.
func (c *Collection[E]) Expanded() (string, bool) {
	return c.expanded, c.expanded != ""
}

// IsExpanded reports whether id is the expanded entry.
func (c *Collection[E]) IsExpanded(id string) bool {
	return id != "" && c.expanded == id
}

// AddEntry prepends a blank entry and expands it.
func (c *Collection[E]) AddEntry() E {
	e := c.create(c.newID())
	c.entries = slices.Insert(c.entries, 0, e)
	c.expanded = e.ID()
	clog.Debug("entry added", "section", c.kind, "id", e.ID())
	return e
}

// RemoveEntry deletes the entry with the given id. Removing the expanded
// entry collapses the section.
func (c *Collection[E]) RemoveEntry(id string) {
	i := c.index(id)
	if i < 0 {
		return
	}
	c.entries = slices.Delete(c.entries, i, i+1)
	if c.expanded == id {
		c.expanded = ""
	}
	clog.Debug("entry removed", "section", c.kind, "id", id)
}

// UpdateField sets one field on the entry with the given id.
func (c *Collection[E]) UpdateField(id, field string, value any) {
	i := c.index(id)
	if i < 0 {
		return
	}
	if !c.entries[i].Set(field, value) {
		clog.Debug("field update ignored", "section", c.kind, "id", id, "field", field)
	}
}

// ToggleExpanded collapses id if it is expanded, otherwise makes it the
// only expanded entry.
func (c *Collection[E]) ToggleExpanded(id string) {
	if c.expanded == id {
		c.expanded = ""
		return
	}
	if c.index(id) < 0 {
		return
	}
	c.expanded = id
}

// ValidCount returns how many entries are complete.
func (c *Collection[E]) ValidCount() int {
	n := 0
	for _, e := range c.entries {
		if e.Valid() {
			n++
		}
	}
	return n
}

// Cards returns a render snapshot of every entry.
func (c *Collection[E]) Cards() []Card[E] {
	cards := make([]Card[E], len(c.entries))
	for i, e := range c.entries {
		cards[i] = CardOf(e, c.IsExpanded(e.ID()))
	}
	return cards
}

// CardOf builds the card for a single entry.
func CardOf[E Entry](e E, expanded bool) Card[E] {
	primary, secondary := e.Header()
	if primary == "" {
		primary = Placeholder
	}
	return Card[E]{
		ID:        e.ID(),
		Primary:   primary,
		Secondary: secondary,
		Valid:     e.Valid(),
		Expanded:  expanded,
		Entry:     e,
	}
}

func (c *Collection[E]) index(id string) int {
	return slices.IndexFunc(c.entries, func(e E) bool { return e.ID() == id })
}
