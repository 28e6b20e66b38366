// Package repository provides Postgres persistence. Every query on a record
// table includes an equality match on the owning user id; a miss on that
// filter is indistinguishable from a missing record.
package repository

import (
	"database/sql"
	"fmt"
	"sort"

	"github.com/lib/pq"
)

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == "23505"
}

// buildSet renders a SET clause from column changes in deterministic order
// and returns the matching argument list. Keys are trusted column names from
// an allow-list, never caller input.
func buildSet(changes map[string]any) (string, []any) {
	cols := make([]string, 0, len(changes))
	for col := range changes {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	set := ""
	args := make([]any, 0, len(changes))
	for i, col := range cols {
		if i > 0 {
			set += ", "
		}
		set += fmt.Sprintf("%s = $%d", col, i+1)
		args = append(args, changes[col])
	}
	return set, args
}
