package lists

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/arrlist/internal/catalog"
)

func sampleLists() map[string][]Item {
	added := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	return map[string][]Item{
		"classics": {
			{Source: catalog.SourceIMDB, ExternalID: "tt0111161", AddedAt: added},
			{Source: catalog.SourceTMDB, ExternalID: "238", AddedAt: added},
		},
		"empty": {},
	}
}

func TestJSONFile_MissingFileIsEmpty(t *testing.T) {
	f := NewJSONFile(filepath.Join(t.TempDir(), "nested", "lists.json"))

	lists, err := f.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, lists)
	assert.NotNil(t, lists)
}

func TestJSONFile_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lists.json")
	f := NewJSONFile(path)
	ctx := context.Background()

	require.NoError(t, f.Save(ctx, sampleLists()))

	loaded, err := f.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleLists(), loaded)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"id": "tt0111161"`)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp", "temp files must not be left behind")
	}
}

func TestJSONFile_CorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lists.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewJSONFile(path).Load(context.Background())
	assert.Error(t, err)
}

func TestJSONFile_StoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lists.json")
	ctx := context.Background()

	s := openStore(t, NewJSONFile(path))
	_, err := s.Create(ctx, "classics")
	require.NoError(t, err)
	_, err = s.AddItem(ctx, "classics", "imdb", "tt0111161")
	require.NoError(t, err)

	reopened := openStore(t, NewJSONFile(path))
	list, err := reopened.Get("classics")
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "tt0111161", list.Items[0].ExternalID)
}

func TestSQLite_SaveLoad(t *testing.T) {
	ctx := context.Background()
	db, err := OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	loaded, err := db.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)

	require.NoError(t, db.Save(ctx, sampleLists()))
	loaded, err = db.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleLists(), loaded)

	// Save replaces: removed lists disappear.
	require.NoError(t, db.Save(ctx, map[string][]Item{"only": {}}))
	loaded, err = db.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string][]Item{"only": {}}, loaded)
}

func TestSQLite_File(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "arrlist.db")

	db, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	s := openStore(t, db)
	_, err = s.Create(ctx, "watch")
	require.NoError(t, err)
	_, err = s.AddItem(ctx, "watch", "tmdb", "603")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = OpenSQLite(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	reopened := openStore(t, db)
	list, err := reopened.Get("watch")
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, catalog.SourceTMDB, list.Items[0].Source)
}
