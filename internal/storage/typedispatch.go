package storage

import (
	"colstore/internal/engineerr"
	"colstore/internal/valuetype"
)

// newValueColumn instantiates a fresh, empty ValueColumn for the given
// runtime type name. This is the engine's closed-world dispatcher: every
// element type added to valuetype.Element must get a case here.
func newValueColumn(t valuetype.ColumnType) (Column, error) {
	switch t {
	case valuetype.Int:
		return NewValueColumn[int32](), nil
	case valuetype.Float:
		return NewValueColumn[float32](), nil
	case valuetype.Double:
		return NewValueColumn[float64](), nil
	case valuetype.String:
		return NewValueColumn[string](), nil
	default:
		return nil, engineerr.Newf(engineerr.UnknownType, "unknown column type %q", t)
	}
}

// compressColumn replaces col (expected to be a *ValueColumn[T] for the
// type named by t) with a dictionary-encoded equivalent.
func compressColumn(col Column, t valuetype.ColumnType) (Column, error) {
	switch t {
	case valuetype.Int:
		return compressTyped[int32](col)
	case valuetype.Float:
		return compressTyped[float32](col)
	case valuetype.Double:
		return compressTyped[float64](col)
	case valuetype.String:
		return compressTyped[string](col)
	default:
		return nil, engineerr.Newf(engineerr.UnknownType, "unknown column type %q", t)
	}
}

func compressTyped[T valuetype.Element](col Column) (Column, error) {
	vc, ok := col.(*ValueColumn[T])
	if !ok {
		// Already compressed (e.g. compress_chunk called twice) or of an
		// unexpected concrete type for the schema's declared type name.
		return nil, engineerr.Newf(engineerr.Immutable, "column is not a value column, cannot compress")
	}
	return BuildDictionaryColumn(vc)
}
