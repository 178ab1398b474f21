package operators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colstore/internal/storage"
	"colstore/internal/valuetype"
)

func TestPrintRendersColumnsAndChunks(t *testing.T) {
	table := storage.NewTable(2)
	require.NoError(t, table.AddColumn("id", valuetype.Int))
	require.NoError(t, table.AddColumn("name", valuetype.String))
	require.NoError(t, table.Append([]valuetype.Variant{valuetype.Of(int32(1)), valuetype.Of("alice")}))
	require.NoError(t, table.Append([]valuetype.Variant{valuetype.Of(int32(2)), valuetype.Of("bob")}))
	require.NoError(t, table.Append([]valuetype.Variant{valuetype.Of(int32(3)), valuetype.Of("carol")}))

	get := executedGetTable(t, table)
	var out strings.Builder
	printOp := NewPrint(get, &out)
	_, err := printOp.Execute()
	require.NoError(t, err)

	rendered := out.String()
	assert.Contains(t, rendered, "=== Columns")
	assert.Contains(t, rendered, "id")
	assert.Contains(t, rendered, "name")
	assert.Contains(t, rendered, "int")
	assert.Contains(t, rendered, "string")
	assert.Contains(t, rendered, "=== Chunk 0 ===")
	assert.Contains(t, rendered, "=== Chunk 1 ===")
	assert.Contains(t, rendered, "alice")
	assert.Contains(t, rendered, "carol")
}

func TestPrintEmptyChunk(t *testing.T) {
	table := storage.NewTable(0)
	require.NoError(t, table.AddColumn("id", valuetype.Int))

	get := executedGetTable(t, table)
	var out strings.Builder
	printOp := NewPrint(get, &out)
	_, err := printOp.Execute()
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Empty chunk.")
}

func TestPrintReturnsInputUnchanged(t *testing.T) {
	table := storage.NewTable(0)
	require.NoError(t, table.AddColumn("id", valuetype.Int))

	get := executedGetTable(t, table)
	var out strings.Builder
	printOp := NewPrint(get, &out)
	result, err := printOp.Execute()
	require.NoError(t, err)

	assert.Same(t, table, result)
}
