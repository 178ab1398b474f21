package storage

import (
	"math"

	"colstore/internal/engineerr"
)

// ValueID is a non-negative index into a dictionary. It is always widened
// to this canonical width regardless of how an attribute vector physically
// stores it.
type ValueID uint32

// InvalidValueID is the sentinel meaning "no such dictionary entry". It
// equals the maximum representable ValueID; narrower attribute vector
// widths interpret their own maximum the same way (see AttributeVector).
const InvalidValueID ValueID = math.MaxUint32

// AttributeVector maps a row offset to a ValueID using the narrowest
// width that fits the dictionary it was built for.
type AttributeVector interface {
	Get(i int) ValueID
	Set(i int, id ValueID)
	Size() int
	Width() int // bytes per entry: 1, 2, or 4
}

// WidthFor picks the attribute-vector width for a dictionary holding
// dictSize distinct values, per the strict "<" rule that reserves each
// width's maximum value as its own invalid sentinel.
func WidthFor(dictSize int) (int, error) {
	switch {
	case dictSize < (1<<8)-1:
		return 1, nil
	case dictSize < (1<<16)-1:
		return 2, nil
	case uint64(dictSize) < (uint64(1)<<32)-1:
		return 4, nil
	default:
		return 0, engineerr.Newf(engineerr.DictionaryTooLarge, "dictionary with %d distinct values exceeds 2^32-1", dictSize)
	}
}

// NewAttributeVector allocates a zero-initialized attribute vector of n
// entries sized for the given width (1, 2, or 4 bytes).
func NewAttributeVector(n, width int) AttributeVector {
	switch width {
	case 1:
		return &fittedVector8{data: make([]uint8, n)}
	case 2:
		return &fittedVector16{data: make([]uint16, n)}
	default:
		return &fittedVector32{data: make([]uint32, n)}
	}
}

type fittedVector8 struct{ data []uint8 }

func (v *fittedVector8) Size() int  { return len(v.data) }
func (v *fittedVector8) Width() int { return 1 }
func (v *fittedVector8) Get(i int) ValueID {
	raw := v.data[i]
	if raw == math.MaxUint8 {
		return InvalidValueID
	}
	return ValueID(raw)
}
func (v *fittedVector8) Set(i int, id ValueID) {
	if id == InvalidValueID {
		v.data[i] = math.MaxUint8
		return
	}
	v.data[i] = uint8(id)
}

type fittedVector16 struct{ data []uint16 }

func (v *fittedVector16) Size() int  { return len(v.data) }
func (v *fittedVector16) Width() int { return 2 }
func (v *fittedVector16) Get(i int) ValueID {
	raw := v.data[i]
	if raw == math.MaxUint16 {
		return InvalidValueID
	}
	return ValueID(raw)
}
func (v *fittedVector16) Set(i int, id ValueID) {
	if id == InvalidValueID {
		v.data[i] = math.MaxUint16
		return
	}
	v.data[i] = uint16(id)
}

type fittedVector32 struct{ data []uint32 }

func (v *fittedVector32) Size() int  { return len(v.data) }
func (v *fittedVector32) Width() int { return 4 }
func (v *fittedVector32) Get(i int) ValueID {
	raw := v.data[i]
	if raw == math.MaxUint32 {
		return InvalidValueID
	}
	return ValueID(raw)
}
func (v *fittedVector32) Set(i int, id ValueID) {
	if id == InvalidValueID {
		v.data[i] = math.MaxUint32
		return
	}
	v.data[i] = uint32(id)
}
