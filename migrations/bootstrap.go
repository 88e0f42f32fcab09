package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed *.sql
var embedSchema embed.FS

// ErrNilDB is returned when bootstrap is attempted without a connection.
var ErrNilDB = errors.New("db is nil")

const listTables = `SELECT table_name FROM information_schema.tables
	WHERE table_schema = 'public' AND table_type = 'BASE TABLE'
	ORDER BY table_name;`

// Bootstrap creates the users and products tables together with their
// constraints and indexes. Every statement is idempotent, so it runs on each
// startup without bookkeeping tables.
func Bootstrap(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("bootstrap error: %w", ErrNilDB)
	}

	statements, err := schemaStatements(embedSchema)
	if err != nil {
		return fmt.Errorf("bootstrap error reading schema: %w", err)
	}

	for _, stmt := range statements {
		if _, err = db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap error: %w", err)
		}
	}

	return nil
}

// Tables returns the names of the tables in the public schema.
func Tables(ctx context.Context, db *sql.DB) ([]string, error) {
	if db == nil {
		return nil, ErrNilDB
	}

	rows, err := db.QueryContext(ctx, listTables)
	if err != nil {
		return nil, fmt.Errorf("error listing tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("error scanning table name: %w", err)
		}
		tables = append(tables, name)
	}

	return tables, rows.Err()
}

// schemaStatements reads every embedded .sql file in name order and splits
// it into single statements. Lines starting with "--" are dropped first.
func schemaStatements(fsys fs.FS) ([]string, error) {
	names, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	var statements []string
	for _, name := range names {
		body, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		for _, stmt := range strings.Split(stripComments(string(body)), ";") {
			if stmt = strings.TrimSpace(stmt); stmt != "" {
				statements = append(statements, stmt)
			}
		}
	}

	return statements, nil
}

func stripComments(sql string) string {
	lines := strings.Split(sql, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if !strings.HasPrefix(strings.TrimSpace(line), "--") {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
