package section

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	id    string
	title string
	body  string
	valid bool
}

func (n *note) ID() string  { return n.id }
func (n *note) Valid() bool { return n.valid }

func (n *note) Header() (string, string) { return n.title, n.body }

func (n *note) Set(field string, value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	switch field {
	case "title":
		n.title = s
	case "body":
		n.body = s
	default:
		return false
	}
	n.valid = n.title != "" && n.body != ""
	return true
}

func newNotes() *Collection[*note] {
	seq := 0
	return New("notes", func(id string) *note { return &note{id: id} },
		WithIDFunc(func() string {
			seq++
			return fmt.Sprintf("n%d", seq)
		}))
}

func TestAddEntryOnEmpty(t *testing.T) {
	c := newNotes()
	e := c.AddEntry()

	assert.Equal(t, 1, c.Len())
	assert.False(t, e.Valid())
	id, ok := c.Expanded()
	require.True(t, ok)
	assert.Equal(t, e.ID(), id)
}

func TestAddEntryPrependsAndMovesExpansion(t *testing.T) {
	c := newNotes()
	first := c.AddEntry()
	second := c.AddEntry()

	entries := c.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, second.ID(), entries[0].ID())
	assert.Equal(t, first.ID(), entries[1].ID())
	assert.True(t, c.IsExpanded(second.ID()))
	assert.False(t, c.IsExpanded(first.ID()))
}

func TestRemoveEntry(t *testing.T) {
	c := newNotes()
	a := c.AddEntry()
	b := c.AddEntry()

	c.RemoveEntry(a.ID())
	assert.Equal(t, 1, c.Len())
	assert.True(t, c.IsExpanded(b.ID()), "removing a collapsed entry keeps expansion")

	c.RemoveEntry(b.ID())
	assert.Equal(t, 0, c.Len())
	_, ok := c.Expanded()
	assert.False(t, ok)

	c.RemoveEntry("missing")
	assert.Equal(t, 0, c.Len())
}

func TestUpdateFieldRecomputesValidity(t *testing.T) {
	c := newNotes()
	e := c.AddEntry()

	c.UpdateField(e.ID(), "title", "hello")
	assert.False(t, e.Valid())
	c.UpdateField(e.ID(), "body", "world")
	assert.True(t, e.Valid())
	c.UpdateField(e.ID(), "title", "")
	assert.False(t, e.Valid())
}

func TestUpdateFieldIgnoresUnknown(t *testing.T) {
	c := newNotes()
	e := c.AddEntry()

	c.UpdateField("missing", "title", "x")
	c.UpdateField(e.ID(), "nope", "x")
	c.UpdateField(e.ID(), "title", 42)

	assert.Empty(t, e.title)
}

func TestToggleExpanded(t *testing.T) {
	c := newNotes()
	a := c.AddEntry()
	b := c.AddEntry()

	c.ToggleExpanded(b.ID())
	_, ok := c.Expanded()
	assert.False(t, ok, "toggling the expanded entry collapses it")

	c.ToggleExpanded(a.ID())
	assert.True(t, c.IsExpanded(a.ID()))

	c.ToggleExpanded(b.ID())
	assert.True(t, c.IsExpanded(b.ID()))
	assert.False(t, c.IsExpanded(a.ID()))

	c.ToggleExpanded("missing")
	assert.True(t, c.IsExpanded(b.ID()))
}

func TestCards(t *testing.T) {
	c := newNotes()
	a := c.AddEntry()
	c.UpdateField(a.ID(), "body", "text")
	b := c.AddEntry()
	c.UpdateField(b.ID(), "title", "t")
	c.UpdateField(b.ID(), "body", "b")

	cards := c.Cards()
	require.Len(t, cards, 2)
	assert.Equal(t, "t", cards[0].Primary)
	assert.True(t, cards[0].Valid)
	assert.True(t, cards[0].Expanded)
	assert.Equal(t, Placeholder, cards[1].Primary)
	assert.Equal(t, "text", cards[1].Secondary)
	assert.False(t, cards[1].Valid)
	assert.Equal(t, 1, c.ValidCount())
}

func TestNewIDIsUUIDv7(t *testing.T) {
	id, err := uuid.Parse(NewID())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.NotEqual(t, NewID(), NewID())
}
