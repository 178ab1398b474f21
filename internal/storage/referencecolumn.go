package storage

import (
	"colstore/internal/engineerr"
	"colstore/internal/valuetype"
)

// ReferenceColumn is a non-owning column that resolves values by
// dereferencing a shared position list into a base table. It never
// materializes data of its own; every read indirects through
// referencedTable. referencedTable must itself be a base table (never
// composed of reference columns) — operators collapse reference-of-
// reference chains before constructing one.
type ReferenceColumn struct {
	referencedTable    *Table
	referencedColumnID int
	posList            PosList
}

// NewReferenceColumn builds a reference column over table/columnID,
// sharing posList (not copying it) with sibling reference columns in the
// same output chunk.
func NewReferenceColumn(table *Table, columnID int, posList PosList) *ReferenceColumn {
	return &ReferenceColumn{referencedTable: table, referencedColumnID: columnID, posList: posList}
}

func (c *ReferenceColumn) ReferencedTable() *Table { return c.referencedTable }
func (c *ReferenceColumn) ReferencedColumnID() int { return c.referencedColumnID }
func (c *ReferenceColumn) PosList() PosList        { return c.posList }

func (c *ReferenceColumn) Size() int { return len(c.posList) }

func (c *ReferenceColumn) Type() valuetype.ColumnType {
	return c.referencedTable.Schema()[c.referencedColumnID].Type
}

func (c *ReferenceColumn) ElementAt(i int) (valuetype.Variant, error) {
	if i < 0 || i >= len(c.posList) {
		return valuetype.Variant{}, engineerr.Newf(engineerr.OutOfBounds, "reference column index %d out of bounds (size %d)", i, len(c.posList))
	}
	rowID := c.posList[i]
	chunk, err := c.referencedTable.Chunk(int(rowID.ChunkID))
	if err != nil {
		return valuetype.Variant{}, err
	}
	col, err := chunk.Column(c.referencedColumnID)
	if err != nil {
		return valuetype.Variant{}, err
	}
	return col.ElementAt(int(rowID.ChunkOffset))
}

// Append always fails: reference columns are immutable.
func (c *ReferenceColumn) Append(valuetype.Variant) error {
	return engineerr.New(engineerr.Immutable, "cannot append to a reference column")
}
