package chunkstore

import (
	"fmt"
	"sync"

	"github.com/chunkstore/chunkstore/ref"
	"github.com/v2pro/plz/countlog"
)

// Registry is a process-wide name→table mapping, the Go analogue of the
// original source's StorageManager singleton. AddTable acquires one share
// of the added table's shared handle; DropTable releases that share,
// not necessarily the underlying storage (spec.md §4.6, §5).
type Registry struct {
	mu     sync.RWMutex
	tables map[string]*ref.Counted[*Table]
}

// NewRegistry returns an empty registry. Most callers use Default
// instead; NewRegistry exists for tests that want isolation from the
// process-wide singleton.
func NewRegistry() *Registry {
	return &Registry{tables: make(map[string]*ref.Counted[*Table])}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry, the analogue of the original
// StorageManager::get(). It is created when the package is initialised.
func Default() *Registry { return defaultRegistry }

// AddTable inserts table under name, failing with ErrDuplicateTable if
// the name is already taken.
func (r *Registry) AddTable(name string, table *Table) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tables[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateTable, name)
	}
	table.Handle().Acquire()
	r.tables[name] = table.Handle()
	countlog.Trace("event!registry.added table", "name", name)
	return nil
}

// DropTable releases the registry's share of name, failing with
// ErrUnknownTable if absent.
func (r *Registry) DropTable(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	handle, exists := r.tables[name]
	if !exists {
		return fmt.Errorf("%w: %q", ErrUnknownTable, name)
	}
	delete(r.tables, name)
	handle.Release()
	countlog.Trace("event!registry.dropped table", "name", name)
	return nil
}

// GetTable returns the table registered under name, failing with
// ErrUnknownTable if absent.
func (r *Registry) GetTable(name string) (*Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	handle, exists := r.tables[name]
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTable, name)
	}
	return handle.Value(), nil
}

// HasTable reports whether name is registered.
func (r *Registry) HasTable(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.tables[name]
	return exists
}

// TableNames returns every registered name, in unspecified order.
func (r *Registry) TableNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tables))
	for name := range r.tables {
		names = append(names, name)
	}
	return names
}

// Reset discards every entry, releasing the registry's share of each.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, handle := range r.tables {
		handle.Release()
	}
	r.tables = make(map[string]*ref.Counted[*Table])
	countlog.Trace("event!registry.reset")
}
