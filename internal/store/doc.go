// Package store provides a minimal key-value abstraction over an embedded
// SQL engine (SQLite). Keys map to JSON-serialized values in a single
// two-column table; durability, transactions, and query execution are
// delegated entirely to the engine.
//
// # Storage layout
//
// One table per store, created on construction if absent:
//
//	CREATE TABLE IF NOT EXISTS duckno_kv (
//		k TEXT PRIMARY KEY,
//		v TEXT NOT NULL
//	)
//
// Values are stored as canonical JSON text (compact, sorted object keys)
// produced by the jsonval package.
//
// # Location resolution
//
// The constructor resolves the storage location before opening: the
// ":memory:" sentinel or the Memory option yields a volatile store; no
// path defaults to duckno.db in the working directory; an extensionless
// path is placed inside it if it is an existing directory and otherwise
// treated as a bare file name gaining a .db extension; any other path is
// used verbatim. Parent directories are created as needed.
//
// # Concurrency
//
// The store adds no coordination of its own. Atomicity of the replace
// (DELETE + INSERT in one transaction) and isolation between concurrent
// callers come from the engine. SQLite permits a single writer per file;
// contention waits up to the 5s busy timeout and then surfaces as a
// STORAGE_BUSY error.
//
// # Errors
//
// All failures are *StoreError values carrying an ErrorCode; match with
// the Is* predicates. Close is the one exception to surfacing failures:
// it is idempotent and never returns an error.
package store
