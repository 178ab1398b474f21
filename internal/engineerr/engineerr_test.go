package engineerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAndKindOf(t *testing.T) {
	err := New(UnknownTable, "no such table")
	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, UnknownTable, kind)
}

func TestNewfFormats(t *testing.T) {
	err := Newf(UnknownColumn, "unknown column %q", "age")
	assert.Equal(t, `unknown column "age"`, err.Error())
}

func TestKindOfWrapped(t *testing.T) {
	inner := New(DictionaryTooLarge, "too big")
	wrapped := fmt.Errorf("building dictionary: %w", inner)

	kind, ok := KindOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, DictionaryTooLarge, kind)
}

func TestKindOfNonEngineError(t *testing.T) {
	_, ok := KindOf(errors.New("plain error"))
	assert.False(t, ok)
}

func TestErrorIs(t *testing.T) {
	a := New(Immutable, "cannot append")
	b := New(Immutable, "different message, same kind")
	c := New(OutOfBounds, "different kind")

	assert.True(t, errors.Is(a, b))
	assert.False(t, errors.Is(a, c))
}
