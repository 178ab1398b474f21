// Package storage implements the engine's segmented table/column data
// model: attribute vectors, the three column encodings, chunks, tables,
// and the process-wide table registry's data-side counterpart.
package storage

import "colstore/internal/valuetype"

// Column is the capability set shared by all three column encodings. Append
// fails with engineerr.Immutable on the two encodings that cannot grow.
type Column interface {
	ElementAt(i int) (valuetype.Variant, error)
	Size() int
	Append(v valuetype.Variant) error
	Type() valuetype.ColumnType
}
