package operators

import (
	"colstore/internal/registry"
	"colstore/internal/storage"
)

// GetTable is a zero-input operator that looks a named base table up in
// the registry.
type GetTable struct {
	base
	reg  *registry.Registry
	name string
}

// NewGetTable builds a GetTable operator for name, resolved against reg at
// execute time.
func NewGetTable(reg *registry.Registry, name string) *GetTable {
	return &GetTable{reg: reg, name: name}
}

func (op *GetTable) Execute() (*storage.Table, error) {
	if err := op.checkNotExecuted(); err != nil {
		return nil, err
	}
	table, err := op.reg.Get(op.name)
	if err != nil {
		return nil, err
	}
	op.markExecuted(table)
	return table, nil
}
