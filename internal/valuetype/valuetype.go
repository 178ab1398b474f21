// Package valuetype implements the engine's closed set of column element
// types, the AllTypeVariant tagged value that carries any one of them, and
// the runtime type-name dispatch used throughout the storage and operator
// layers.
package valuetype

import (
	"fmt"

	"colstore/internal/engineerr"
)

// ColumnType is the runtime type-name tag used for column type dispatch.
// The supported strings are exact and case-sensitive, per the engine's
// external interface.
type ColumnType string

const (
	Int    ColumnType = "int"
	Float  ColumnType = "float"
	Double ColumnType = "double"
	String ColumnType = "string"
)

// Valid reports whether t is one of the engine's supported type names.
func (t ColumnType) Valid() bool {
	switch t {
	case Int, Float, Double, String:
		return true
	default:
		return false
	}
}

// Element is the closed set of Go types a column may hold. Adding a type
// to the engine means adding it here and to every switch keyed on
// ColumnType below.
type Element interface {
	int32 | float32 | float64 | string
}

// TypeNameOf returns the ColumnType tag for an Element type parameter.
func TypeNameOf[T Element]() ColumnType {
	var zero T
	switch any(zero).(type) {
	case int32:
		return Int
	case float32:
		return Float
	case float64:
		return Double
	case string:
		return String
	default:
		panic(fmt.Sprintf("valuetype: unsupported element type %T", zero))
	}
}

// Variant is a dynamic value holding exactly one of the engine's element
// types, tagged with the type it was constructed from.
type Variant struct {
	tag ColumnType
	val any
}

// Of constructs a Variant from any supported element type. Construction is
// total: every Element has exactly one tag.
func Of[T Element](v T) Variant {
	return Variant{tag: TypeNameOf[T](), val: v}
}

// Tag returns the variant's stored type tag.
func (v Variant) Tag() ColumnType {
	return v.tag
}

// As extracts a T from v. It succeeds if v's tag is T's own tag, or if v's
// tag is a numeric element type that widens to T (int32 -> float32 ->
// float64, transitively). String never widens to or from a numeric type.
// Any other mismatch fails with engineerr.TypeMismatch.
func As[T Element](v Variant) (T, error) {
	var zero T
	want := TypeNameOf[T]()

	switch want {
	case Int:
		n, err := asInt32(v)
		return any(n).(T), err
	case Float:
		n, err := asFloat32(v)
		return any(n).(T), err
	case Double:
		n, err := asFloat64(v)
		return any(n).(T), err
	case String:
		if v.tag != String {
			return zero, engineerr.Newf(engineerr.TypeMismatch, "cannot convert %s to string", v.tag)
		}
		return any(v.val.(string)).(T), nil
	default:
		return zero, engineerr.Newf(engineerr.TypeMismatch, "unsupported target type %s", want)
	}
}

func asInt32(v Variant) (int32, error) {
	if v.tag != Int {
		return 0, engineerr.Newf(engineerr.TypeMismatch, "cannot convert %s to int", v.tag)
	}
	return v.val.(int32), nil
}

func asFloat32(v Variant) (float32, error) {
	switch v.tag {
	case Int:
		return float32(v.val.(int32)), nil
	case Float:
		return v.val.(float32), nil
	default:
		return 0, engineerr.Newf(engineerr.TypeMismatch, "cannot convert %s to float", v.tag)
	}
}

func asFloat64(v Variant) (float64, error) {
	switch v.tag {
	case Int:
		return float64(v.val.(int32)), nil
	case Float:
		return float64(v.val.(float32)), nil
	case Double:
		return v.val.(float64), nil
	default:
		return 0, engineerr.Newf(engineerr.TypeMismatch, "cannot convert %s to double", v.tag)
	}
}

// Cell renders v for display purposes (used by the Print operator), never
// failing regardless of tag.
func (v Variant) Cell() string {
	switch vv := v.val.(type) {
	case int32:
		return fmt.Sprintf("%d", vv)
	case float32:
		return fmt.Sprintf("%g", vv)
	case float64:
		return fmt.Sprintf("%g", vv)
	case string:
		return vv
	default:
		return fmt.Sprintf("%v", vv)
	}
}
