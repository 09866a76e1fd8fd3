package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/cognicore/cablecode/pkg/cablecode/store"
	"github.com/cognicore/cablecode/pkg/cablecode/table"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu     sync.RWMutex
	tables map[string]*table.Table
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{tables: make(map[string]*table.Table)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// ReadTable returns a copy of the named table.
func (s *Store) ReadTable(ctx context.Context, name string) (*table.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", store.ErrNotFound, name)
	}
	return t.Clone(), nil
}

// WriteTable stores a copy, replacing any previous table of that name.
func (s *Store) WriteTable(ctx context.Context, name string, t *table.Table) error {
	if name == "" {
		return fmt.Errorf("write table: empty name")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[name] = t.Clone()
	return nil
}

// ListTables implements store.Store.
func (s *Store) ListTables(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.tables))
	for n := range s.tables {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}
