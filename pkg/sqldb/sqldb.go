package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps a relational store behind the lookup capability interface.
type DB struct {
	db *sql.DB
}

var _ ILookup = (*DB)(nil)

// Open opens the database for the given driver and DSN and verifies the
// connection.
func Open(driver, dsn string) (*DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &DB{db: db}, nil
}

// NewFromDB wraps an existing *sql.DB (used by tests).
func NewFromDB(db *sql.DB) *DB {
	return &DB{db: db}
}

// Close closes the underlying connection pool.
func (d *DB) Close() error {
	return d.db.Close()
}

// Schema renders the CREATE statements of all user tables as one text block.
func (d *DB) Schema(ctx context.Context) (string, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT sql FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	if err != nil {
		return "", fmt.Errorf("failed to read schema: %w", err)
	}
	defer rows.Close()

	var ddl []string
	for rows.Next() {
		var stmt sql.NullString
		if err := rows.Scan(&stmt); err != nil {
			return "", fmt.Errorf("failed to scan schema row: %w", err)
		}
		if stmt.Valid && stmt.String != "" {
			ddl = append(ddl, stmt.String)
		}
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("failed to read schema: %w", err)
	}

	return strings.Join(ddl, "\n\n"), nil
}

// Run executes the query and renders the rows as tab-separated text with a
// header line. An empty result set yields "".
func (d *DB) Run(ctx context.Context, query string) (string, error) {
	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return "", &QueryError{Query: query, Err: err}
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return "", &QueryError{Query: query, Err: err}
	}

	var b strings.Builder
	wroteHeader := false

	values := make([]any, len(cols))
	scanArgs := make([]any, len(cols))
	for i := range values {
		scanArgs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(scanArgs...); err != nil {
			return "", &QueryError{Query: query, Err: err}
		}

		if !wroteHeader {
			b.WriteString(strings.Join(cols, "\t"))
			b.WriteByte('\n')
			wroteHeader = true
		}

		fields := make([]string, len(values))
		for i, v := range values {
			fields[i] = renderValue(v)
		}
		b.WriteString(strings.Join(fields, "\t"))
		b.WriteByte('\n')
	}
	if err := rows.Err(); err != nil {
		return "", &QueryError{Query: query, Err: err}
	}

	// No rows: empty result, not an error.
	if !wroteHeader {
		return "", nil
	}

	return strings.TrimRight(b.String(), "\n"), nil
}

func renderValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
