package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colstore/internal/storage"
)

func TestRegistryAddGetDrop(t *testing.T) {
	reg := New()
	table := storage.NewTable(0)

	require.NoError(t, reg.Add("orders", table))

	t.Run("duplicate add fails", func(t *testing.T) {
		assert.Error(t, reg.Add("orders", storage.NewTable(0)))
	})

	t.Run("get returns the same table", func(t *testing.T) {
		got, err := reg.Get("orders")
		require.NoError(t, err)
		assert.Same(t, table, got)
	})

	t.Run("has reports true", func(t *testing.T) {
		assert.True(t, reg.Has("orders"))
	})

	t.Run("drop then get fails", func(t *testing.T) {
		require.NoError(t, reg.Drop("orders"))
		assert.False(t, reg.Has("orders"))
		_, err := reg.Get("orders")
		assert.Error(t, err)
	})

	t.Run("drop unknown fails", func(t *testing.T) {
		assert.Error(t, reg.Drop("orders"))
	})
}

func TestRegistryNamesAndReset(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Add("a", storage.NewTable(0)))
	require.NoError(t, reg.Add("b", storage.NewTable(0)))

	names := reg.Names()
	assert.ElementsMatch(t, []string{"a", "b"}, names)

	reg.Reset()
	assert.Empty(t, reg.Names())
	assert.False(t, reg.Has("a"))
}
