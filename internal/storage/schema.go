package storage

import "colstore/internal/valuetype"

// ColumnDef is one (name, type) entry in a table's schema.
type ColumnDef struct {
	Name string
	Type valuetype.ColumnType
}

// Schema is an ordered list of column definitions. Column names within a
// table are unique.
type Schema []ColumnDef

// IndexOf returns the position of the column named name, or -1.
func (s Schema) IndexOf(name string) int {
	for i, c := range s {
		if c.Name == name {
			return i
		}
	}
	return -1
}
