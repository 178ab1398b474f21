package storage

import (
	"sort"

	"colstore/internal/engineerr"
	"colstore/internal/valuetype"
)

// DictionaryColumn stores a sorted, unique dictionary of T plus a
// width-fitted attribute vector of ValueIDs, one per row. It is built once
// from a ValueColumn[T] and is immutable afterward.
type DictionaryColumn[T valuetype.Element] struct {
	dictionary []T
	av         AttributeVector
}

// BuildDictionaryColumn compresses src into a dictionary-encoded column:
// it collects the distinct values of src in sorted order, picks the
// narrowest attribute-vector width that fits, and maps every source row to
// its dictionary ValueID using a transient value->id side map so repeated
// values are resolved in O(1) instead of a fresh binary search each time.
func BuildDictionaryColumn[T valuetype.Element](src *ValueColumn[T]) (*DictionaryColumn[T], error) {
	values := src.Values()

	seen := make(map[T]struct{}, len(values))
	dict := make([]T, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		dict = append(dict, v)
	}
	sort.Slice(dict, func(i, j int) bool { return dict[i] < dict[j] })

	width, err := WidthFor(len(dict))
	if err != nil {
		return nil, err
	}

	av := NewAttributeVector(len(values), width)
	ids := make(map[T]ValueID, len(dict))
	for i, row := range values {
		id, ok := ids[row]
		if !ok {
			pos := sort.Search(len(dict), func(k int) bool { return !(dict[k] < row) })
			id = ValueID(pos)
			ids[row] = id
		}
		av.Set(i, id)
	}

	return &DictionaryColumn[T]{dictionary: dict, av: av}, nil
}

func (c *DictionaryColumn[T]) Size() int { return c.av.Size() }

func (c *DictionaryColumn[T]) Type() valuetype.ColumnType { return valuetype.TypeNameOf[T]() }

func (c *DictionaryColumn[T]) ElementAt(i int) (valuetype.Variant, error) {
	if i < 0 || i >= c.av.Size() {
		return valuetype.Variant{}, engineerr.Newf(engineerr.OutOfBounds, "dictionary column index %d out of bounds (size %d)", i, c.av.Size())
	}
	return valuetype.Of(c.dictionary[c.av.Get(i)]), nil
}

// Append always fails: dictionary columns are immutable once built.
func (c *DictionaryColumn[T]) Append(valuetype.Variant) error {
	return engineerr.New(engineerr.Immutable, "cannot append to a dictionary column")
}

// Get returns the raw T stored at row offset i.
func (c *DictionaryColumn[T]) Get(i int) T {
	return c.dictionary[c.av.Get(i)]
}

// AttributeVector exposes the underlying ValueID vector for operators that
// need to scan it directly (e.g. TableScan's dictionary branch).
func (c *DictionaryColumn[T]) AttributeVector() AttributeVector { return c.av }

// ValueByValueID returns the dictionary entry for id. Undefined for
// InvalidValueID, matching the source semantics.
func (c *DictionaryColumn[T]) ValueByValueID(id ValueID) T {
	return c.dictionary[id]
}

// UniqueValuesCount returns the number of distinct dictionary entries.
func (c *DictionaryColumn[T]) UniqueValuesCount() int { return len(c.dictionary) }

// LowerBound returns the ValueID of the first dictionary entry >= value,
// or InvalidValueID if none exists.
func (c *DictionaryColumn[T]) LowerBound(value T) ValueID {
	pos := sort.Search(len(c.dictionary), func(i int) bool { return !(c.dictionary[i] < value) })
	if pos == len(c.dictionary) {
		return InvalidValueID
	}
	return ValueID(pos)
}

// UpperBound returns the ValueID of the first dictionary entry > value, or
// InvalidValueID if none exists.
func (c *DictionaryColumn[T]) UpperBound(value T) ValueID {
	pos := sort.Search(len(c.dictionary), func(i int) bool { return value < c.dictionary[i] })
	if pos == len(c.dictionary) {
		return InvalidValueID
	}
	return ValueID(pos)
}
