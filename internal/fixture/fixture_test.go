package fixture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colstore/internal/registry"
)

const sampleFixture = `
[[tables]]
name = "measurements"
chunk_size = 2
compress = true
rows = [
  [1, "cold"],
  [2, "warm"],
  [3, "cold"],
]

  [[tables.columns]]
  name = "id"
  type = "int"

  [[tables.columns]]
  name = "label"
  type = "string"

[[tables]]
name = "empty_table"

  [[tables.columns]]
  name = "x"
  type = "double"
`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFileRegistersTables(t *testing.T) {
	path := writeFixture(t, sampleFixture)
	reg := registry.New()

	names, err := LoadFile(path, reg)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"measurements", "empty_table"}, names)

	table, err := reg.Get("measurements")
	require.NoError(t, err)
	assert.Equal(t, 3, table.RowCount())
	assert.Equal(t, 2, table.ChunkCount())

	chunk, err := table.Chunk(0)
	require.NoError(t, err)
	col, err := chunk.Column(1)
	require.NoError(t, err)
	v, err := col.ElementAt(0)
	require.NoError(t, err)
	assert.Equal(t, "cold", v.Cell())

	empty, err := reg.Get("empty_table")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.RowCount())
}

func TestLoadFileUnknownColumnType(t *testing.T) {
	const badFixture = `
[[tables]]
name = "bad"

  [[tables.columns]]
  name = "x"
  type = "bool"

rows = []
`
	path := writeFixture(t, badFixture)
	reg := registry.New()

	_, err := LoadFile(path, reg)
	assert.Error(t, err)
}

func TestLoadFileRowArityMismatch(t *testing.T) {
	const badFixture = `
[[tables]]
name = "bad"
rows = [
  [1, 2],
]

  [[tables.columns]]
  name = "x"
  type = "int"
`
	path := writeFixture(t, badFixture)
	reg := registry.New()

	_, err := LoadFile(path, reg)
	assert.Error(t, err)
}
