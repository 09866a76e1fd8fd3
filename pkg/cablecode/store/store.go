package store

import (
	"context"
	"errors"

	"github.com/cognicore/cablecode/pkg/cablecode/table"
)

// ErrNotFound is returned when a named table does not exist
var ErrNotFound = errors.New("table not found")

// Store persists named tabular datasets: description sheets waiting to
// be converted and the converted sheets written back.
type Store interface {
	Close() error

	// ReadTable loads the named table, or ErrNotFound.
	ReadTable(ctx context.Context, name string) (*table.Table, error)
	// WriteTable replaces the named table.
	WriteTable(ctx context.Context, name string, t *table.Table) error
	// ListTables returns the stored table names, sorted.
	ListTables(ctx context.Context) ([]string, error)
}
