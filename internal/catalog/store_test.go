package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreReplaceDeduplicatesKeepingFirst(t *testing.T) {
	store := NewStore()
	store.Replace([]ModelRecord{
		{ID: "a", Name: "first"},
		{ID: "b"},
		{ID: "a", Name: "second"},
	})

	require.Equal(t, 2, store.Len())
	rec, ok := store.ByID("a")
	require.True(t, ok)
	assert.Equal(t, "first", rec.Name)
}

func TestStoreReplaceSwapsSnapshot(t *testing.T) {
	store := NewStore()
	store.Replace([]ModelRecord{{ID: "a"}, {ID: "b"}})
	store.Replace([]ModelRecord{{ID: "c"}})

	assert.Equal(t, 1, store.Len())
	_, ok := store.ByID("a")
	assert.False(t, ok, "old snapshot must be gone after replace")
}

func TestStoreAllReturnsCopy(t *testing.T) {
	store := NewStore()
	store.Replace([]ModelRecord{{ID: "a"}, {ID: "b"}})

	snapshot := store.All()
	snapshot[0] = ModelRecord{ID: "mutated"}

	rec, ok := store.ByID("a")
	require.True(t, ok)
	assert.Equal(t, "a", rec.ID)
	assert.Equal(t, "a", store.All()[0].ID)
}

func TestStoreByIDMiss(t *testing.T) {
	store := NewStore()
	_, ok := store.ByID("missing")
	assert.False(t, ok)
}
