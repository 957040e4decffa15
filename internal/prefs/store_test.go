package prefs_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hanaburkart/portfolio/internal/prefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gokeyring "github.com/zalando/go-keyring"
)

func TestStores(t *testing.T) {
	gokeyring.MockInit()

	backends := map[string]func(t *testing.T) prefs.Store{
		"memory": func(_ *testing.T) prefs.Store {
			return prefs.NewMemory()
		},
		"file": func(t *testing.T) prefs.Store {
			return prefs.NewFile(filepath.Join(t.TempDir(), "nested", "prefs.json"))
		},
		"sqlite": func(t *testing.T) prefs.Store {
			s, err := prefs.NewSQLite(filepath.Join(t.TempDir(), "prefs.db"))
			require.NoError(t, err)
			t.Cleanup(func() { _ = s.Close() })
			return s
		},
		"keyring": func(_ *testing.T) prefs.Store {
			return prefs.NewKeyring()
		},
	}

	for name, mk := range backends {
		t.Run(name, func(t *testing.T) {
			store := mk(t)

			t.Run("absent key", func(t *testing.T) {
				_, err := store.Get(prefs.ThemeKey)
				assert.ErrorIs(t, err, prefs.ErrNotFound)
			})

			t.Run("set then get", func(t *testing.T) {
				require.NoError(t, store.Set(prefs.ThemeKey, "dark"))
				v, err := store.Get(prefs.ThemeKey)
				require.NoError(t, err)
				assert.Equal(t, "dark", v)
			})

			t.Run("overwrite", func(t *testing.T) {
				require.NoError(t, store.Set(prefs.ThemeKey, "light"))
				v, err := store.Get(prefs.ThemeKey)
				require.NoError(t, err)
				assert.Equal(t, "light", v)
			})

			t.Run("delete", func(t *testing.T) {
				require.NoError(t, store.Delete(prefs.ThemeKey))
				_, err := store.Get(prefs.ThemeKey)
				assert.ErrorIs(t, err, prefs.ErrNotFound)
			})

			t.Run("delete absent key", func(t *testing.T) {
				assert.NoError(t, store.Delete("never-set"))
			})
		})
	}
}

func TestFileStore(t *testing.T) {
	t.Run("persists across instances", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prefs.json")
		require.NoError(t, prefs.NewFile(path).Set(prefs.ThemeKey, "dark"))

		v, err := prefs.NewFile(path).Get(prefs.ThemeKey)
		require.NoError(t, err)
		assert.Equal(t, "dark", v)
	})

	t.Run("corrupt file is unavailable, not absent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prefs.json")
		//nolint:gosec // Test file
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := prefs.NewFile(path).Get(prefs.ThemeKey)
		assert.ErrorIs(t, err, prefs.ErrUnavailable)
		assert.False(t, errors.Is(err, prefs.ErrNotFound))
	})

	t.Run("unwritable location is unavailable", func(t *testing.T) {
		dir := t.TempDir()
		blocker := filepath.Join(dir, "blocker")
		//nolint:gosec // Test file
		require.NoError(t, os.WriteFile(blocker, nil, 0o644))

		err := prefs.NewFile(filepath.Join(blocker, "prefs.json")).Set(prefs.ThemeKey, "dark")
		assert.ErrorIs(t, err, prefs.ErrUnavailable)
	})
}

func TestKeyringUnavailable(t *testing.T) {
	gokeyring.MockInitWithError(errors.New("no secret service"))
	t.Cleanup(gokeyring.MockInit)

	_, err := prefs.NewKeyring().Get(prefs.ThemeKey)
	assert.ErrorIs(t, err, prefs.ErrUnavailable)

	err = prefs.NewKeyring().Set(prefs.ThemeKey, "dark")
	assert.ErrorIs(t, err, prefs.ErrUnavailable)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		backend string
		path    string
		wantErr error
	}{
		{backend: prefs.BackendFile, path: filepath.Join(dir, "prefs.json")},
		{backend: "", path: filepath.Join(dir, "default.json")},
		{backend: prefs.BackendSQLite, path: filepath.Join(dir, "prefs.db")},
		{backend: prefs.BackendMemory},
		{backend: prefs.BackendKeyring},
		{backend: "etcd", wantErr: prefs.ErrUnknownBackend},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			store, closer, err := prefs.Open(tt.backend, tt.path)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, store)
			assert.NoError(t, closer.Close())
		})
	}
}
