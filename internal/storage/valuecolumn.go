package storage

import (
	"colstore/internal/engineerr"
	"colstore/internal/valuetype"
)

// ValueColumn holds a contiguous, mutable sequence of T. It is the only
// column encoding rows are appended to directly; dictionary and reference
// columns are derived or produced, never grown.
type ValueColumn[T valuetype.Element] struct {
	values []T
}

// NewValueColumn returns an empty, appendable ValueColumn.
func NewValueColumn[T valuetype.Element]() *ValueColumn[T] {
	return &ValueColumn[T]{}
}

// Values exposes the raw backing slice. Operators read through this for
// their fast path instead of going through ElementAt per row.
func (c *ValueColumn[T]) Values() []T { return c.values }

func (c *ValueColumn[T]) Size() int { return len(c.values) }

func (c *ValueColumn[T]) Type() valuetype.ColumnType { return valuetype.TypeNameOf[T]() }

func (c *ValueColumn[T]) ElementAt(i int) (valuetype.Variant, error) {
	if i < 0 || i >= len(c.values) {
		return valuetype.Variant{}, engineerr.Newf(engineerr.OutOfBounds, "value column index %d out of bounds (size %d)", i, len(c.values))
	}
	return valuetype.Of(c.values[i]), nil
}

func (c *ValueColumn[T]) Append(v valuetype.Variant) error {
	val, err := valuetype.As[T](v)
	if err != nil {
		return err
	}
	c.values = append(c.values, val)
	return nil
}
