// Package migrations provides embedded SQL migration files.
package migrations

import (
	_ "embed"
)

// ListsSQL creates the table backing the SQLite list store.
//
//go:embed sql/001_lists.sql
var ListsSQL string
