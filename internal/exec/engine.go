// Package exec assembles SQL from a relation's clause state and runs it
// against a database/sql store.
package exec

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Dialect selects placeholder binding for the backing store.
type Dialect int

const (
	DialectSQLite Dialect = iota
	DialectPostgres
)

// Engine executes assembled clause sets. It implements relation.Runner.
type Engine struct {
	db      *sql.DB
	dialect Dialect
	log     zerolog.Logger
}

// Option configures an engine.
type Option func(*Engine)

// WithDialect sets the placeholder dialect. SQLite is the default.
func WithDialect(d Dialect) Option {
	return func(e *Engine) { e.dialect = d }
}

// WithLogger enables per-query debug logging.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// New returns an engine over an open database handle.
func New(db *sql.DB, opts ...Option) *Engine {
	e := &Engine{db: db, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Open opens a database handle for a DSN. postgres:// DSNs use the pgx
// stdlib driver; anything else is treated as a sqlite path (or
// ":memory:").
func Open(dsn string) (*sql.DB, Dialect, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to open postgres database: %w", err)
		}
		return db, DialectPostgres, nil
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	return db, DialectSQLite, nil
}

// rebind rewrites ?-style placeholders to $N for postgres. The builder
// never emits a literal question mark outside a placeholder position.
func (e *Engine) rebind(sqlStr string) string {
	if e.dialect != DialectPostgres {
		return sqlStr
	}
	var sb strings.Builder
	n := 0
	for _, r := range sqlStr {
		if r == '?' {
			n++
			fmt.Fprintf(&sb, "$%d", n)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
