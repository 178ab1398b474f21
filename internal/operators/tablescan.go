package operators

import (
	"colstore/internal/engineerr"
	"colstore/internal/storage"
	"colstore/internal/valuetype"
)

// TableScan is a one-input operator producing a new table with one chunk
// of ReferenceColumns pointing at the rows of its input table's column
// column_id that satisfy scan_type against search_value. The output
// schema equals the input schema; even the scanned column is wrapped in a
// ReferenceColumn so downstream scans compose uniformly.
type TableScan struct {
	base
	columnID    int
	scanType    ScanType
	searchValue valuetype.Variant
}

// NewTableScan builds a TableScan over input's column_id.
func NewTableScan(input Operator, columnID int, scanType ScanType, searchValue valuetype.Variant) *TableScan {
	return &TableScan{base: base{inputLeft: input}, columnID: columnID, scanType: scanType, searchValue: searchValue}
}

func (op *TableScan) Execute() (*storage.Table, error) {
	if err := op.checkNotExecuted(); err != nil {
		return nil, err
	}
	input, err := op.inputTableLeft()
	if err != nil {
		return nil, err
	}

	schema := input.Schema()
	if op.columnID < 0 || op.columnID >= len(schema) {
		return nil, engineerr.Newf(engineerr.UnknownColumn, "column id %d out of range (schema has %d columns)", op.columnID, len(schema))
	}

	var result *storage.Table
	switch schema[op.columnID].Type {
	case valuetype.Int:
		result, err = scanTyped[int32](input, op.columnID, op.scanType, op.searchValue)
	case valuetype.Float:
		result, err = scanTyped[float32](input, op.columnID, op.scanType, op.searchValue)
	case valuetype.Double:
		result, err = scanTyped[float64](input, op.columnID, op.scanType, op.searchValue)
	case valuetype.String:
		result, err = scanTyped[string](input, op.columnID, op.scanType, op.searchValue)
	default:
		err = engineerr.Newf(engineerr.UnknownType, "unknown column type %q", schema[op.columnID].Type)
	}
	if err != nil {
		return nil, err
	}

	op.markExecuted(result)
	return result, nil
}

// scanTyped is the type-parameterized scan implementation, instantiated by
// Execute's dispatch over the input schema's runtime type tag. It
// dispatches per chunk over the three column encodings, exploits
// dictionary order to prune work, and collapses a reference-column input
// to the base table it ultimately points at.
func scanTyped[T int32 | float32 | float64 | string](input *storage.Table, columnID int, scanType ScanType, searchValue valuetype.Variant) (*storage.Table, error) {
	compareValue, err := valuetype.As[T](searchValue)
	if err != nil {
		return nil, err
	}

	var posList storage.PosList
	var baseTable *storage.Table
	var scanningReferences bool
	modeSet := false

	for chunkID := 0; chunkID < input.ChunkCount(); chunkID++ {
		chunk, err := input.Chunk(chunkID)
		if err != nil {
			return nil, err
		}
		col, err := chunk.Column(columnID)
		if err != nil {
			return nil, err
		}

		switch c := col.(type) {
		case *storage.ValueColumn[T]:
			if err := setMode(&modeSet, &scanningReferences, false); err != nil {
				return nil, err
			}
			if baseTable == nil {
				baseTable = input
			}
			for i, v := range c.Values() {
				if evaluate(scanType, v, compareValue) {
					posList = append(posList, storage.RowID{ChunkID: uint32(chunkID), ChunkOffset: uint32(i)})
				}
			}

		case *storage.DictionaryColumn[T]:
			if err := setMode(&modeSet, &scanningReferences, false); err != nil {
				return nil, err
			}
			if baseTable == nil {
				baseTable = input
			}
			if err := scanDictionaryChunk(c, chunkID, scanType, compareValue, &posList); err != nil {
				return nil, err
			}

		case *storage.ReferenceColumn:
			if err := setMode(&modeSet, &scanningReferences, true); err != nil {
				return nil, err
			}
			refTable := c.ReferencedTable()
			if baseTable == nil {
				baseTable = refTable
			} else if baseTable != refTable {
				return nil, engineerr.New(engineerr.InconsistentInput, "scan input's reference columns disagree on referenced table")
			}
			if err := scanReferenceChunk[T](c, scanType, compareValue, &posList); err != nil {
				return nil, err
			}

		default:
			return nil, engineerr.Newf(engineerr.TypeMismatch, "column %d is not a recognized encoding for its declared type", columnID)
		}
	}

	outChunk := storage.NewChunk()
	for j := range input.Schema() {
		outChunk.AddColumn(storage.NewReferenceColumn(baseTable, j, posList))
	}
	return storage.NewResultTable(input.Schema(), outChunk), nil
}

// setMode records whether this scan is reading a reference-column input
// or a base-table input on the first chunk that carries column_id, and
// fails InconsistentInput if a later chunk disagrees.
func setMode(modeSet *bool, scanningReferences *bool, isReference bool) error {
	if !*modeSet {
		*modeSet = true
		*scanningReferences = isReference
		return nil
	}
	if *scanningReferences != isReference {
		return engineerr.New(engineerr.InconsistentInput, "scan input mixes reference and non-reference columns across chunks")
	}
	return nil
}

// scanDictionaryChunk appends matching RowIDs from one dictionary-encoded
// chunk, using lower_bound/upper_bound to either skip the chunk entirely,
// accept every row without touching the attribute vector, or walk the
// attribute vector once.
func scanDictionaryChunk[T int32 | float32 | float64 | string](c *storage.DictionaryColumn[T], chunkID int, scanType ScanType, compareValue T, posList *storage.PosList) error {
	lb := c.LowerBound(compareValue)
	ub := c.UpperBound(compareValue)

	allFalse, allTrue, test := dictionaryPlan(scanType, lb, ub)
	if allFalse {
		return nil
	}

	av := c.AttributeVector()
	if allTrue {
		for i := 0; i < av.Size(); i++ {
			*posList = append(*posList, storage.RowID{ChunkID: uint32(chunkID), ChunkOffset: uint32(i)})
		}
		return nil
	}
	for i := 0; i < av.Size(); i++ {
		if test(av.Get(i)) {
			*posList = append(*posList, storage.RowID{ChunkID: uint32(chunkID), ChunkOffset: uint32(i)})
		}
	}
	return nil
}

// scanReferenceChunk resolves each row in c's position list against the
// base table it references, emitting the original RowID on match. The
// referenced column may itself be dictionary-encoded; its ValueIDs are
// never reused as the search value's ValueID since different chunks of
// the base table may carry different dictionaries.
func scanReferenceChunk[T int32 | float32 | float64 | string](c *storage.ReferenceColumn, scanType ScanType, compareValue T, posList *storage.PosList) error {
	refTable := c.ReferencedTable()
	for _, rowID := range c.PosList() {
		refChunk, err := refTable.Chunk(int(rowID.ChunkID))
		if err != nil {
			return err
		}
		refCol, err := refChunk.Column(c.ReferencedColumnID())
		if err != nil {
			return err
		}

		var value T
		switch rc := refCol.(type) {
		case *storage.ValueColumn[T]:
			value = rc.Values()[rowID.ChunkOffset]
		case *storage.DictionaryColumn[T]:
			value = rc.Get(int(rowID.ChunkOffset))
		default:
			return engineerr.New(engineerr.InconsistentInput, "reference column points at a non-base column encoding")
		}

		if evaluate(scanType, value, compareValue) {
			*posList = append(*posList, rowID)
		}
	}
	return nil
}

// dictionaryPlan translates scanType plus the dictionary's lower/upper
// bound of the search value into a ValueID-level test, short-circuiting
// to allFalse/allTrue where the bounds alone decide the outcome.
// InvalidValueID is always treated as "past the last ValueID" rather than
// a comparable integer, per the truth table this implements.
func dictionaryPlan(scanType ScanType, lb, ub storage.ValueID) (allFalse, allTrue bool, test func(storage.ValueID) bool) {
	switch scanType {
	case Equals:
		if lb == ub {
			return true, false, nil
		}
		return false, false, func(id storage.ValueID) bool { return id == lb }
	case NotEquals:
		if lb == ub {
			return false, true, nil
		}
		return false, false, func(id storage.ValueID) bool { return id != lb }
	case GreaterThan:
		if ub == storage.InvalidValueID {
			return true, false, nil
		}
		if ub == 0 {
			return false, true, nil
		}
		return false, false, func(id storage.ValueID) bool { return id >= ub }
	case GreaterThanEquals:
		if lb == storage.InvalidValueID {
			return true, false, nil
		}
		if lb == 0 {
			return false, true, nil
		}
		return false, false, func(id storage.ValueID) bool { return id >= lb }
	case LessThan:
		if lb == 0 {
			return true, false, nil
		}
		if lb == storage.InvalidValueID {
			return false, true, nil
		}
		return false, false, func(id storage.ValueID) bool { return id < lb }
	case LessThanEquals:
		if ub == 0 {
			return true, false, nil
		}
		if ub == storage.InvalidValueID {
			return false, true, nil
		}
		return false, false, func(id storage.ValueID) bool { return id < ub }
	default:
		return true, false, nil
	}
}
