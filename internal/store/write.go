package store

import (
	"context"
	"fmt"

	"github.com/roach88/duckno/internal/jsonval"
)

// Set stores a value under the given key, replacing any existing record.
//
// The write is atomic: DELETE of the old record and INSERT of the new one
// happen in a single transaction, so a concurrent reader never observes
// the key absent mid-replacement. On any failure the transaction is rolled
// back and the store keeps its prior state.
func (s *Store) Set(ctx context.Context, key string, v jsonval.Value) error {
	if key == "" {
		return NewInvalidKey()
	}
	if err := s.checkOpen("set"); err != nil {
		return err
	}

	payload, err := jsonval.Marshal(v)
	if err != nil {
		return NewSerializationError(key, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return engineError("set: begin tx", err)
	}
	defer tx.Rollback() // No-op if committed

	if _, err := tx.ExecContext(ctx,
		fmt.Sprintf("DELETE FROM %s WHERE k = ?", s.table), key,
	); err != nil {
		return engineError("set: delete existing", err)
	}

	if _, err := tx.ExecContext(ctx,
		fmt.Sprintf("INSERT INTO %s (k, v) VALUES (?, ?)", s.table), key, string(payload),
	); err != nil {
		return engineError("set: insert", err)
	}

	if err := tx.Commit(); err != nil {
		return engineError("set: commit", err)
	}

	return nil
}

// SetAny converts a native Go value via jsonval.FromAny and stores it.
// Conversion failure is a SERIALIZATION error; nothing is written.
func (s *Store) SetAny(ctx context.Context, key string, v any) error {
	if key == "" {
		return NewInvalidKey()
	}
	val, err := jsonval.FromAny(v)
	if err != nil {
		return NewSerializationError(key, err)
	}
	return s.Set(ctx, key, val)
}
