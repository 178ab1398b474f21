package storage

import (
	"fmt"

	"colstore/internal/engineerr"
	"colstore/internal/valuetype"
)

// Table is an ordered, non-empty list of chunks sharing one schema, plus a
// configured chunk size (0 meaning unbounded). A table always contains at
// least one chunk, possibly empty.
type Table struct {
	schema    Schema
	chunks    []*Chunk
	chunkSize uint32
}

// NewResultTable builds a table directly from a schema and a single
// chunk, bypassing AddColumn/Append. Operators use this to wrap a chunk of
// ReferenceColumns without routing through the ValueColumn-oriented
// construction path, which only base tables use.
func NewResultTable(schema Schema, chunk *Chunk) *Table {
	return &Table{schema: schema, chunks: []*Chunk{chunk}}
}

// NewTable creates an empty table with no columns yet and one empty chunk.
// chunkSize of 0 means chunks grow without bound.
func NewTable(chunkSize uint32) *Table {
	return &Table{chunks: []*Chunk{NewChunk()}, chunkSize: chunkSize}
}

func (t *Table) Schema() Schema    { return t.schema }
func (t *Table) ChunkSize() uint32 { return t.chunkSize }
func (t *Table) ChunkCount() int   { return len(t.chunks) }

// Chunk returns the chunk at position i.
func (t *Table) Chunk(i int) (*Chunk, error) {
	if i < 0 || i >= len(t.chunks) {
		return nil, engineerr.Newf(engineerr.OutOfBounds, "chunk index %d out of bounds (count %d)", i, len(t.chunks))
	}
	return t.chunks[i], nil
}

// RowCount sums the row count of every chunk.
func (t *Table) RowCount() int {
	n := 0
	for _, c := range t.chunks {
		n += c.Size()
	}
	return n
}

// ColumnIDByName resolves a column name to its schema position.
func (t *Table) ColumnIDByName(name string) (int, error) {
	id := t.schema.IndexOf(name)
	if id < 0 {
		return 0, engineerr.Newf(engineerr.UnknownColumn, "unknown column %q", name)
	}
	return id, nil
}

// AddColumn appends (name, type) to the schema and extends every existing
// chunk with a fresh, empty ValueColumn of that type. It fails if any
// chunk already holds rows, since a brand-new empty column could not agree
// in size with the chunk's existing columns.
func (t *Table) AddColumn(name string, typeName valuetype.ColumnType) error {
	if !typeName.Valid() {
		return engineerr.Newf(engineerr.UnknownType, "unknown column type %q", typeName)
	}
	if t.schema.IndexOf(name) >= 0 {
		return fmt.Errorf("column %q already exists", name)
	}
	for _, c := range t.chunks {
		if c.Size() > 0 {
			return fmt.Errorf("cannot add column %q: table already has %d row(s)", name, c.Size())
		}
	}

	t.schema = append(t.schema, ColumnDef{Name: name, Type: typeName})
	for _, c := range t.chunks {
		col, err := newValueColumn(typeName)
		if err != nil {
			return err
		}
		c.AddColumn(col)
	}
	return nil
}

// newChunkFromSchema builds an empty chunk whose columns mirror the
// table's current schema.
func (t *Table) newChunkFromSchema() (*Chunk, error) {
	chunk := NewChunk()
	for _, def := range t.schema {
		col, err := newValueColumn(def.Type)
		if err != nil {
			return nil, err
		}
		chunk.AddColumn(col)
	}
	return chunk, nil
}

// Append adds one row to the table's last chunk, rolling over to a fresh
// chunk first if the last chunk has reached chunkSize.
func (t *Table) Append(row []valuetype.Variant) error {
	if len(row) != len(t.schema) {
		return engineerr.Newf(engineerr.OutOfBounds, "row has %d values, schema has %d columns", len(row), len(t.schema))
	}

	last := t.chunks[len(t.chunks)-1]
	if t.chunkSize > 0 && uint32(last.Size()) >= t.chunkSize {
		chunk, err := t.newChunkFromSchema()
		if err != nil {
			return err
		}
		t.chunks = append(t.chunks, chunk)
		last = chunk
	}
	return last.Append(row)
}

// CompressChunk replaces every ValueColumn in the given chunk with a
// DictionaryColumn of the same element type, preserving row order and
// values. The chunk is immutable afterward (its columns no longer accept
// Append).
func (t *Table) CompressChunk(chunkID int) error {
	chunk, err := t.Chunk(chunkID)
	if err != nil {
		return err
	}
	for i, def := range t.schema {
		col, err := chunk.Column(i)
		if err != nil {
			return err
		}
		compressed, err := compressColumn(col, def.Type)
		if err != nil {
			return err
		}
		if err := chunk.ReplaceColumn(i, compressed); err != nil {
			return err
		}
	}
	return nil
}
