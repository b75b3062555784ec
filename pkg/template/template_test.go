package template

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xrsl/cvb/pkg/config"
)

type memStore struct {
	id      string
	saveErr error
	saves   int
}

func (m *memStore) Load() (string, error) { return m.id, nil }

func (m *memStore) Save(id string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.id = id
	m.saves++
	return nil
}

func ids(ts []Template) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.ID
	}
	return out
}

func TestGalleryPaging(t *testing.T) {
	g := NewGallery(Catalog)
	assert.Equal(t, []string{"sydney", "rotterdam", "budapest"}, ids(g.Visible()))
	assert.False(t, g.CanPrevious())

	g.Previous()
	assert.Equal(t, 0, g.Start())

	g.Next()
	g.Next()
	g.Next()
	assert.Equal(t, 2, g.Start(), "next clamps at len-PageSize")
	assert.False(t, g.CanNext())
	assert.Equal(t, []string{"budapest", "chicago", "riga"}, ids(g.Visible()))
}

func TestGalleryShorterThanPage(t *testing.T) {
	g := NewGallery(Catalog[:2])
	g.Next()
	assert.Equal(t, 0, g.Start())
	assert.Len(t, g.Visible(), 2)
}

func TestSelector(t *testing.T) {
	store := &memStore{}
	s, err := NewSelector(store)
	require.NoError(t, err)

	_, ok := s.Selected()
	assert.False(t, ok)
	assert.Equal(t, DefaultID, s.Effective())

	require.NoError(t, s.Select("riga"))
	assert.Equal(t, "riga", store.id)

	assert.Error(t, s.Select("paris"))
	assert.Equal(t, "riga", store.id)

	require.NoError(t, s.Skip())
	id, _ := s.Selected()
	assert.Equal(t, DefaultID, id)
	assert.Equal(t, 2, store.saves)
}

func TestSelectorReadsSavedValue(t *testing.T) {
	s, err := NewSelector(&memStore{id: "chicago"})
	require.NoError(t, err)
	id, ok := s.Selected()
	assert.True(t, ok)
	assert.Equal(t, "chicago", id)

	s, err = NewSelector(&memStore{id: "atlantis"})
	require.NoError(t, err)
	_, ok = s.Selected()
	assert.False(t, ok)
}

func TestSelectorSaveError(t *testing.T) {
	s, _ := NewSelector(&memStore{saveErr: errors.New("disk full")})
	err := s.Select("sydney")
	require.Error(t, err)
	_, ok := s.Selected()
	assert.False(t, ok, "failed save must not change selection")
}

func TestConfigStoreRoundTrip(t *testing.T) {
	config.ResetForTest(t.TempDir())

	s, err := NewSelector(ConfigStore{})
	require.NoError(t, err)
	require.NoError(t, s.Select("rotterdam"))

	again, err := NewSelector(ConfigStore{})
	require.NoError(t, err)
	id, _ := again.Selected()
	assert.Equal(t, "rotterdam", id)
}
