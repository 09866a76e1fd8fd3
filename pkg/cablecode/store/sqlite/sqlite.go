package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/cablecode/pkg/cablecode/store"
	"github.com/cognicore/cablecode/pkg/cablecode/table"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	// Enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist. Header and cells are
// JSON arrays so sheets with arbitrary column names fit one schema.
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS sheets (
	name TEXT PRIMARY KEY,
	columns TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS sheet_rows (
	sheet TEXT NOT NULL,
	idx INTEGER NOT NULL,
	cells TEXT NOT NULL,
	PRIMARY KEY(sheet, idx),
	FOREIGN KEY(sheet) REFERENCES sheets(name) ON DELETE CASCADE
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

func (s *sqliteStore) ReadTable(ctx context.Context, name string) (*table.Table, error) {
	var colsJSON string
	err := s.db.QueryRowContext(ctx, `SELECT columns FROM sheets WHERE name = ?`, name).Scan(&colsJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", store.ErrNotFound, name)
	}
	if err != nil {
		return nil, err
	}

	var cols []string
	if err := json.Unmarshal([]byte(colsJSON), &cols); err != nil {
		return nil, fmt.Errorf("decode columns of %q: %w", name, err)
	}
	t := table.New(cols...)

	rows, err := s.db.QueryContext(ctx, `SELECT cells FROM sheet_rows WHERE sheet = ? ORDER BY idx`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var cellsJSON string
		if err := rows.Scan(&cellsJSON); err != nil {
			return nil, err
		}
		var cells []string
		if err := json.Unmarshal([]byte(cellsJSON), &cells); err != nil {
			return nil, fmt.Errorf("decode row %d of %q: %w", t.Len(), name, err)
		}
		t.Append(cells...)
	}
	return t, rows.Err()
}

func (s *sqliteStore) WriteTable(ctx context.Context, name string, t *table.Table) error {
	if name == "" {
		return fmt.Errorf("write table: empty name")
	}
	colsJSON, err := json.Marshal(t.Columns)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// foreign_keys is per connection, so rows are cleared explicitly.
	if _, err := tx.ExecContext(ctx, `DELETE FROM sheet_rows WHERE sheet = ?`, name); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM sheets WHERE name = ?`, name); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO sheets(name, columns, updated_at) VALUES(?, ?, ?)`,
		name, string(colsJSON), time.Now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO sheet_rows(sheet, idx, cells) VALUES(?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, row := range t.Rows {
		cellsJSON, err := json.Marshal(row)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, name, i, string(cellsJSON)); err != nil {
			return fmt.Errorf("insert row %d of %q: %w", i, name, err)
		}
	}
	return tx.Commit()
}

func (s *sqliteStore) ListTables(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM sheets ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}
