package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colstore/internal/valuetype"
)

func TestReferenceColumnResolvesThroughBaseTable(t *testing.T) {
	base := NewTable(0)
	require.NoError(t, base.AddColumn("a", valuetype.Int))
	require.NoError(t, base.Append([]valuetype.Variant{valuetype.Of(int32(10))}))
	require.NoError(t, base.Append([]valuetype.Variant{valuetype.Of(int32(20))}))

	posList := PosList{
		{ChunkID: 0, ChunkOffset: 1},
		{ChunkID: 0, ChunkOffset: 0},
	}
	ref := NewReferenceColumn(base, 0, posList)

	assert.Equal(t, 2, ref.Size())
	assert.Equal(t, valuetype.Int, ref.Type())

	v, err := ref.ElementAt(0)
	require.NoError(t, err)
	assert.Equal(t, "20", v.Cell())

	v, err = ref.ElementAt(1)
	require.NoError(t, err)
	assert.Equal(t, "10", v.Cell())
}

func TestReferenceColumnOutOfBoundsAndImmutable(t *testing.T) {
	base := NewTable(0)
	require.NoError(t, base.AddColumn("a", valuetype.Int))
	ref := NewReferenceColumn(base, 0, PosList{})

	_, err := ref.ElementAt(0)
	assert.Error(t, err)

	assert.Error(t, ref.Append(valuetype.Of(int32(1))))
}
