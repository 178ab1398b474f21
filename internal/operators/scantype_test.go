package operators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScanType(t *testing.T) {
	cases := []struct {
		in   string
		want ScanType
	}{
		{"=", Equals},
		{"==", Equals},
		{"!=", NotEquals},
		{"<>", NotEquals},
		{"<", LessThan},
		{"<=", LessThanEquals},
		{">", GreaterThan},
		{">=", GreaterThanEquals},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseScanType(c.in)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}

	t.Run("unknown operator", func(t *testing.T) {
		_, err := ParseScanType("~=")
		assert.Error(t, err)
	})
}

func TestScanTypeString(t *testing.T) {
	assert.Equal(t, "=", Equals.String())
	assert.Equal(t, ">=", GreaterThanEquals.String())
	assert.Equal(t, "?", ScanType(99).String())
}

func TestEvaluate(t *testing.T) {
	assert.True(t, evaluate[int32](Equals, 5, 5))
	assert.False(t, evaluate[int32](Equals, 5, 6))
	assert.True(t, evaluate[int32](NotEquals, 5, 6))
	assert.True(t, evaluate[int32](LessThan, 4, 5))
	assert.True(t, evaluate[int32](LessThanEquals, 5, 5))
	assert.True(t, evaluate[int32](GreaterThan, 6, 5))
	assert.True(t, evaluate[int32](GreaterThanEquals, 5, 5))
}
