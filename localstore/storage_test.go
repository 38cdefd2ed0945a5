package localstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portal.json")
	s, err := Open(path)
	require.Nil(t, err)

	require.Nil(t, s.Put("rec", record{Name: "payroll", Count: 3}))

	var out record
	found, err := s.Get("rec", &out)
	require.Nil(t, err)
	require.True(t, found)
	require.Equal(t, record{Name: "payroll", Count: 3}, out)

	t.Run("survives a reopen", func(t *testing.T) {
		reopened, err := Open(path)
		require.Nil(t, err)
		var out record
		found, err := reopened.Get("rec", &out)
		require.Nil(t, err)
		require.True(t, found)
		require.Equal(t, "payroll", out.Name)
	})
}

func TestGetMissingKey(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "portal.json"))
	require.Nil(t, err)

	var out record
	found, err := s.Get("missing", &out)
	require.Nil(t, err)
	require.False(t, found)
}

func TestDelete(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "portal.json"))
	require.Nil(t, err)

	require.Nil(t, s.Put("rec", record{Name: "x"}))
	require.Nil(t, s.Delete("rec"))

	var out record
	found, err := s.Get("rec", &out)
	require.Nil(t, err)
	require.False(t, found)

	// deleting an absent key is not an error
	require.Nil(t, s.Delete("rec"))
}

func TestCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portal.json")
	require.Nil(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s, err := Open(path)
	require.Nil(t, err)

	var out record
	found, err := s.Get("rec", &out)
	require.Nil(t, err)
	require.False(t, found)

	// the store is usable after discarding the corrupt content
	require.Nil(t, s.Put("rec", record{Name: "fresh"}))
	found, err = s.Get("rec", &out)
	require.Nil(t, err)
	require.True(t, found)
}
