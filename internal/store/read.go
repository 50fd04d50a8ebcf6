package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/duckno/internal/jsonval"
)

// Get returns the value stored under key, or def (with a nil error) when
// the key is absent. Stored text that fails to parse is a CORRUPT_RECORD
// error; it indicates tampering or corruption outside this API, since Set
// only writes canonical JSON.
func (s *Store) Get(ctx context.Context, key string, def jsonval.Value) (jsonval.Value, error) {
	if key == "" {
		return nil, NewInvalidKey()
	}
	if err := s.checkOpen("get"); err != nil {
		return nil, err
	}

	var raw string
	err := s.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT v FROM %s WHERE k = ?", s.table), key,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return def, nil
	}
	if err != nil {
		return nil, engineError("get: query", err)
	}

	val, err := jsonval.Unmarshal([]byte(raw))
	if err != nil {
		return nil, NewCorruptRecord(key, err)
	}
	return val, nil
}

// Keys returns every stored key in ascending bytewise order, which for
// UTF-8 text is lexicographic code-point order (the engine's BINARY
// collation). An empty store yields an empty slice, never an error.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	if err := s.checkOpen("keys"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		fmt.Sprintf("SELECT k FROM %s ORDER BY k", s.table),
	)
	if err != nil {
		return nil, engineError("keys: query", err)
	}
	defer rows.Close()

	keys := []string{}
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, engineError("keys: scan", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, engineError("keys: iterate", err)
	}

	return keys, nil
}
