package storage

import (
	"colstore/internal/engineerr"
	"colstore/internal/valuetype"
)

// Chunk is a horizontal slice of a table: one column per schema position,
// all reporting the same row count.
type Chunk struct {
	columns []Column
}

// NewChunk returns an empty chunk (zero columns, size 0).
func NewChunk() *Chunk {
	return &Chunk{}
}

// AddColumn appends a column to the chunk. Callers are responsible for
// keeping every chunk's column count in step with the table schema.
func (c *Chunk) AddColumn(col Column) {
	c.columns = append(c.columns, col)
}

// ColumnCount returns the number of columns in the chunk.
func (c *Chunk) ColumnCount() int { return len(c.columns) }

// Column returns the column at position i.
func (c *Chunk) Column(i int) (Column, error) {
	if i < 0 || i >= len(c.columns) {
		return nil, engineerr.Newf(engineerr.OutOfBounds, "column index %d out of bounds (count %d)", i, len(c.columns))
	}
	return c.columns[i], nil
}

// ReplaceColumn swaps the column at position i, used by chunk compression.
func (c *Chunk) ReplaceColumn(i int, col Column) error {
	if i < 0 || i >= len(c.columns) {
		return engineerr.Newf(engineerr.OutOfBounds, "column index %d out of bounds (count %d)", i, len(c.columns))
	}
	c.columns[i] = col
	return nil
}

// Size returns the chunk's row count: the common size of all its columns,
// or 0 if the chunk has no columns.
func (c *Chunk) Size() int {
	if len(c.columns) == 0 {
		return 0
	}
	return c.columns[0].Size()
}

// Append appends one row, given as one variant per column. len(row) must
// equal the chunk's column count.
func (c *Chunk) Append(row []valuetype.Variant) error {
	if len(row) != len(c.columns) {
		return engineerr.Newf(engineerr.OutOfBounds, "row has %d values, chunk has %d columns", len(row), len(c.columns))
	}
	for i, v := range row {
		if err := c.columns[i].Append(v); err != nil {
			return err
		}
	}
	return nil
}
