// Package fixture loads base tables for the engine from a TOML file. The
// format mirrors the schema-definition style smf's internal/parser/toml
// uses for its own TOML schema documents: a top-level array of tables,
// each with an ordered column list and inline row data, parsed with
// github.com/BurntSushi/toml.
package fixture

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"colstore/internal/engineerr"
	"colstore/internal/registry"
	"colstore/internal/storage"
	"colstore/internal/valuetype"
)

// document is the top-level TOML shape: a bare array of tables.
type document struct {
	Tables []tomlTable `toml:"tables"`
}

type tomlTable struct {
	Name      string       `toml:"name"`
	ChunkSize uint32       `toml:"chunk_size"`
	Compress  bool         `toml:"compress"`
	Columns   []tomlColumn `toml:"columns"`
	Rows      [][]any      `toml:"rows"`
}

type tomlColumn struct {
	Name string `toml:"name"`
	Type string `toml:"type"`
}

// LoadFile parses path and registers every table it defines into reg.
// Tables are built via the normal Table/AddColumn/Append path, so every
// invariant the storage layer enforces elsewhere applies here too. A
// table with compress = true has every chunk it ends up with compressed
// after all rows are appended.
func LoadFile(path string, reg *registry.Registry) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: open %q: %w", path, err)
	}
	defer f.Close()

	var doc document
	if _, err := toml.NewDecoder(f).Decode(&doc); err != nil {
		return nil, fmt.Errorf("fixture: parse %q: %w", path, err)
	}

	names := make([]string, 0, len(doc.Tables))
	for _, tt := range doc.Tables {
		table, err := buildTable(tt)
		if err != nil {
			return nil, fmt.Errorf("fixture: table %q: %w", tt.Name, err)
		}
		if err := reg.Add(tt.Name, table); err != nil {
			return nil, err
		}
		names = append(names, tt.Name)
	}
	return names, nil
}

func buildTable(tt tomlTable) (*storage.Table, error) {
	table := storage.NewTable(tt.ChunkSize)

	colTypes := make([]valuetype.ColumnType, len(tt.Columns))
	for i, c := range tt.Columns {
		t := valuetype.ColumnType(c.Type)
		if !t.Valid() {
			return nil, engineerr.Newf(engineerr.UnknownType, "unknown column type %q for column %q", c.Type, c.Name)
		}
		colTypes[i] = t
		if err := table.AddColumn(c.Name, t); err != nil {
			return nil, err
		}
	}

	for _, row := range tt.Rows {
		if len(row) != len(colTypes) {
			return nil, fmt.Errorf("row has %d values, table has %d columns", len(row), len(colTypes))
		}
		values := make([]valuetype.Variant, len(row))
		for i, raw := range row {
			v, err := toVariant(raw, colTypes[i])
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		if err := table.Append(values); err != nil {
			return nil, err
		}
	}

	if tt.Compress {
		for i := 0; i < table.ChunkCount(); i++ {
			if err := table.CompressChunk(i); err != nil {
				return nil, err
			}
		}
	}

	return table, nil
}

// toVariant converts a value decoded from TOML (int64, float64, or string)
// into a Variant of the column's declared type.
func toVariant(raw any, t valuetype.ColumnType) (valuetype.Variant, error) {
	switch t {
	case valuetype.Int:
		switch n := raw.(type) {
		case int64:
			return valuetype.Of(int32(n)), nil
		case float64:
			return valuetype.Of(int32(n)), nil
		}
	case valuetype.Float:
		switch n := raw.(type) {
		case int64:
			return valuetype.Of(float32(n)), nil
		case float64:
			return valuetype.Of(float32(n)), nil
		}
	case valuetype.Double:
		switch n := raw.(type) {
		case int64:
			return valuetype.Of(float64(n)), nil
		case float64:
			return valuetype.Of(n), nil
		}
	case valuetype.String:
		if s, ok := raw.(string); ok {
			return valuetype.Of(s), nil
		}
	}
	return valuetype.Variant{}, engineerr.Newf(engineerr.TypeMismatch, "fixture value %v does not match column type %s", raw, t)
}
