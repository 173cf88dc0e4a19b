package lists

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/vmunix/arrlist/internal/migrations"
)

// SQLite stores lists in a SQLite database, one row per list.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and applies the schema.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// A single connection keeps ":memory:" databases alive and serializes writes.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, err)
		}
	}
	return NewSQLite(ctx, db)
}

// NewSQLite wraps an open database and applies the schema.
func NewSQLite(ctx context.Context, db *sql.DB) (*SQLite, error) {
	if _, err := db.ExecContext(ctx, migrations.ListsSQL); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Load reads every list.
func (s *SQLite) Load(ctx context.Context) (map[string][]Item, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, items FROM lists`)
	if err != nil {
		return nil, fmt.Errorf("query lists: %w", err)
	}
	defer func() { _ = rows.Close() }()

	lists := map[string][]Item{}
	for rows.Next() {
		var (
			name string
			raw  string
		)
		if err := rows.Scan(&name, &raw); err != nil {
			return nil, fmt.Errorf("scan list: %w", err)
		}
		items := []Item{}
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			return nil, fmt.Errorf("decode list %q: %w", name, err)
		}
		if items == nil {
			items = []Item{}
		}
		lists[name] = items
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lists: %w", err)
	}
	return lists, nil
}

// Save replaces the stored lists in one transaction.
func (s *SQLite) Save(ctx context.Context, lists map[string][]Item) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM lists`); err != nil {
		return fmt.Errorf("clear lists: %w", err)
	}
	for name, items := range lists {
		if items == nil {
			items = []Item{}
		}
		raw, err := json.Marshal(items)
		if err != nil {
			return fmt.Errorf("encode list %q: %w", name, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO lists (name, items, updated_at) VALUES (?, ?, ?)`,
			name, string(raw), time.Now().UTC(),
		); err != nil {
			return fmt.Errorf("insert list %q: %w", name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
