package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	store := NewFileStore(path)

	t.Run("no session before save", func(t *testing.T) {
		_, ok := store.Token()
		assert.False(t, ok)
	})

	t.Run("save and read back", func(t *testing.T) {
		require.NoError(t, store.Save("tok-123"))

		token, ok := store.Token()
		require.True(t, ok)
		assert.Equal(t, "tok-123", token)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})

	t.Run("empty token rejected", func(t *testing.T) {
		assert.Error(t, store.Save("  "))
	})

	t.Run("clear removes session", func(t *testing.T) {
		require.NoError(t, store.Clear())
		_, ok := store.Token()
		assert.False(t, ok)

		// clearing an already-empty store is fine
		require.NoError(t, store.Clear())
	})
}

func TestStaticProvider(t *testing.T) {
	token, ok := StaticProvider("abc").Token()
	assert.True(t, ok)
	assert.Equal(t, "abc", token)

	_, ok = StaticProvider("").Token()
	assert.False(t, ok)
}
