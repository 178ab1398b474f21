package valuetype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnTypeValid(t *testing.T) {
	t.Run("known types", func(t *testing.T) {
		for _, ct := range []ColumnType{Int, Float, Double, String} {
			assert.True(t, ct.Valid())
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		assert.False(t, ColumnType("bool").Valid())
	})
}

func TestTypeNameOf(t *testing.T) {
	assert.Equal(t, Int, TypeNameOf[int32]())
	assert.Equal(t, Float, TypeNameOf[float32]())
	assert.Equal(t, Double, TypeNameOf[float64]())
	assert.Equal(t, String, TypeNameOf[string]())
}

func TestVariantOfAndTag(t *testing.T) {
	v := Of(int32(7))
	assert.Equal(t, Int, v.Tag())
}

func TestAsExactMatch(t *testing.T) {
	n, err := As[int32](Of(int32(42)))
	require.NoError(t, err)
	assert.Equal(t, int32(42), n)

	s, err := As[string](Of("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", s)
}

func TestAsWidening(t *testing.T) {
	t.Run("int to float", func(t *testing.T) {
		f, err := As[float32](Of(int32(3)))
		require.NoError(t, err)
		assert.Equal(t, float32(3), f)
	})

	t.Run("int to double", func(t *testing.T) {
		d, err := As[float64](Of(int32(3)))
		require.NoError(t, err)
		assert.Equal(t, float64(3), d)
	})

	t.Run("float to double", func(t *testing.T) {
		d, err := As[float64](Of(float32(2.5)))
		require.NoError(t, err)
		assert.Equal(t, float64(2.5), d)
	})

	t.Run("double does not narrow to int", func(t *testing.T) {
		_, err := As[int32](Of(float64(1)))
		assert.Error(t, err)
	})

	t.Run("string never widens", func(t *testing.T) {
		_, err := As[string](Of(int32(1)))
		assert.Error(t, err)

		_, err = As[int32](Of("1"))
		assert.Error(t, err)
	})
}

func TestVariantCell(t *testing.T) {
	assert.Equal(t, "42", Of(int32(42)).Cell())
	assert.Equal(t, "hello", Of("hello").Cell())
	assert.Equal(t, "3.5", Of(float32(3.5)).Cell())
	assert.Equal(t, "3.5", Of(float64(3.5)).Cell())
}
