package store

import (
	"database/sql"
	"fmt"
	"regexp"
	"sync/atomic"
)

// DefaultTableName is the backing table used when none is configured.
const DefaultTableName = "duckno_kv"

// Options configure store construction.
type Options struct {
	// Path is the database location: empty for the default file in the
	// working directory, ":memory:" for a volatile store, a directory to
	// place the default file in, or an explicit file path.
	Path string

	// Memory forces a volatile in-memory store regardless of Path.
	Memory bool

	// TableName names the backing table. Defaults to DefaultTableName.
	TableName string
}

// Store is a key-value abstraction over an embedded SQL engine.
// Values are stored as canonical JSON text in a single two-column table.
// Each Store owns exactly one engine connection; it is never shared
// across instances.
type Store struct {
	db     *sql.DB
	table  string
	loc    Location
	closed atomic.Bool
}

// tableNamePattern restricts table names to SQL identifiers, since the
// table name is interpolated into statements rather than bound.
var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Open creates or opens a store per the location policy in ResolveLocation.
// The backing table is created if absent; opening is idempotent.
//
// The engine is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode (balance durability/performance)
//   - 5-second busy timeout for lock contention
//
// SQLite allows a single writer per database file. A second writer blocks
// for up to the busy timeout and then fails with a STORAGE_BUSY error;
// this layer adds no retries of its own.
func Open(opts Options) (*Store, error) {
	table := opts.TableName
	if table == "" {
		table = DefaultTableName
	}
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q: must be a SQL identifier", table)
	}

	loc, err := ResolveLocation(opts.Path, opts.Memory)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", loc.DSN())
	if err != nil {
		return nil, NewStorageUnavailable("open database", err)
	}

	// Verify connection works
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, engineError("connect to database", err)
	}

	// SQLite only supports one writer at a time, so pin the pool to a
	// single connection. For in-memory databases this is load-bearing:
	// every pooled connection would otherwise see a distinct database.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, err
	}

	if err := ensureSchema(db, table); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, table: table, loc: loc}, nil
}

// OpenPath opens a file-backed store at the given path with defaults.
func OpenPath(path string) (*Store, error) {
	return Open(Options{Path: path})
}

// OpenMemory opens a volatile in-memory store.
func OpenMemory() (*Store, error) {
	return Open(Options{Memory: true})
}

// Close releases the engine connection. Idempotent: repeated calls are
// no-ops, and engine close failures are suppressed so cleanup never fails.
func (s *Store) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	if s.db != nil {
		_ = s.db.Close()
	}
	return nil
}

// DatabasePath returns the resolved database file path and true when the
// store is file-backed, or "" and false when it is in-memory.
func (s *Store) DatabasePath() (string, bool) {
	if s.loc.Memory {
		return "", false
	}
	return s.loc.File, true
}

// TableName returns the name of the backing table.
func (s *Store) TableName() string {
	return s.table
}

// checkOpen guards operations against use after Close.
func (s *Store) checkOpen(op string) error {
	if s.closed.Load() {
		return NewStoreClosed(op)
	}
	return nil
}

// applyPragmas sets required engine configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return engineError(fmt.Sprintf("execute %q", pragma), err)
		}
	}

	return nil
}

// ensureSchema creates the key-value table if it doesn't exist.
// The statement is generated because the table name is a constructor
// parameter; the name is validated in Open before interpolation.
func ensureSchema(db *sql.DB, table string) error {
	stmt := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			k TEXT PRIMARY KEY,
			v TEXT NOT NULL
		)
	`, table)
	if _, err := db.Exec(stmt); err != nil {
		return engineError(fmt.Sprintf("create table %s", table), err)
	}
	return nil
}
