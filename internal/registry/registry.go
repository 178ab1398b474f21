// Package registry implements the engine's process-wide table registry: a
// name -> table map with uniqueness checks. It is the single shared
// mutable resource in the engine (see the concurrency model); the
// registry itself only serializes access to the map, not reads of the
// tables it hands out.
package registry

import (
	"sync"

	"colstore/internal/engineerr"
	"colstore/internal/storage"
)

// Registry is a concurrency-safe name -> table map. The zero value is not
// usable; construct with New.
type Registry struct {
	mu     sync.RWMutex
	tables map[string]*storage.Table
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{tables: make(map[string]*storage.Table)}
}

// Add registers table under name. Fails with engineerr.DuplicateTable if
// the name is already taken.
func (r *Registry) Add(name string, table *storage.Table) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tables[name]; exists {
		return engineerr.Newf(engineerr.DuplicateTable, "table %q already registered", name)
	}
	r.tables[name] = table
	return nil
}

// Drop removes name from the registry. Fails with engineerr.UnknownTable
// if it was never registered.
func (r *Registry) Drop(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tables[name]; !exists {
		return engineerr.Newf(engineerr.UnknownTable, "unknown table %q", name)
	}
	delete(r.tables, name)
	return nil
}

// Get looks up name. Fails with engineerr.UnknownTable if it was never
// registered.
func (r *Registry) Get(name string) (*storage.Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	table, exists := r.tables[name]
	if !exists {
		return nil, engineerr.Newf(engineerr.UnknownTable, "unknown table %q", name)
	}
	return table, nil
}

// Has reports whether name is currently registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.tables[name]
	return exists
}

// Names returns every registered table name. Order is unspecified.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tables))
	for name := range r.tables {
		names = append(names, name)
	}
	return names
}

// Reset clears every registered table. Intended for test setup/teardown,
// the way dialect.resetRegistry exists purely so tests can start clean.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tables = make(map[string]*storage.Table)
}
