package operators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colstore/internal/registry"
	"colstore/internal/storage"
)

func TestGetTableExecute(t *testing.T) {
	reg := registry.New()
	table := storage.NewTable(0)
	require.NoError(t, reg.Add("people", table))

	get := NewGetTable(reg, "people")

	_, err := get.Output()
	assert.Error(t, err, "Output before Execute should fail with PrematureAccess")

	result, err := get.Execute()
	require.NoError(t, err)
	assert.Same(t, table, result)

	_, err = get.Execute()
	assert.Error(t, err, "second Execute should fail with DoubleExecute")
}

func TestGetTableUnknownName(t *testing.T) {
	reg := registry.New()
	get := NewGetTable(reg, "missing")

	_, err := get.Execute()
	assert.Error(t, err)
}
