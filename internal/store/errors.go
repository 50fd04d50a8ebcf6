package store

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// ErrorCode categorizes store errors.
type ErrorCode string

const (
	// ErrCodeInvalidKey indicates an empty key. Raised before any I/O.
	ErrCodeInvalidKey ErrorCode = "INVALID_KEY"

	// ErrCodeSerialization indicates a value could not be converted to
	// its canonical text form. No mutation occurs.
	ErrCodeSerialization ErrorCode = "SERIALIZATION"

	// ErrCodeCorruptRecord indicates stored text failed to parse on read.
	ErrCodeCorruptRecord ErrorCode = "CORRUPT_RECORD"

	// ErrCodeStorageUnavailable indicates the engine could not be opened
	// or an engine-level I/O operation failed.
	ErrCodeStorageUnavailable ErrorCode = "STORAGE_UNAVAILABLE"

	// ErrCodeStorageBusy indicates lock contention that outlasted the
	// engine's busy timeout.
	ErrCodeStorageBusy ErrorCode = "STORAGE_BUSY"

	// ErrCodeStoreClosed indicates an operation on a closed store.
	ErrCodeStoreClosed ErrorCode = "STORE_CLOSED"
)

// StoreError is the structured error type for all store operations.
type StoreError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Key identifies the affected record, when one is involved.
	Key string

	// Err is the underlying cause (optional).
	Err error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Key != "" {
		return fmt.Sprintf("%s: %s (key=%q)", e.Code, msg, e.Key)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

// Unwrap returns the underlying cause.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewInvalidKey creates a StoreError for an invalid key.
func NewInvalidKey() *StoreError {
	return &StoreError{
		Code:    ErrCodeInvalidKey,
		Message: "key must be a non-empty string",
	}
}

// NewSerializationError creates a StoreError for an unserializable value.
func NewSerializationError(key string, err error) *StoreError {
	return &StoreError{
		Code:    ErrCodeSerialization,
		Message: "value is not JSON-serializable",
		Key:     key,
		Err:     err,
	}
}

// NewCorruptRecord creates a StoreError for unparseable stored text.
func NewCorruptRecord(key string, err error) *StoreError {
	return &StoreError{
		Code:    ErrCodeCorruptRecord,
		Message: "stored value is not valid JSON",
		Key:     key,
		Err:     err,
	}
}

// NewStorageUnavailable creates a StoreError for an engine-level failure.
func NewStorageUnavailable(msg string, err error) *StoreError {
	return &StoreError{
		Code:    ErrCodeStorageUnavailable,
		Message: msg,
		Err:     err,
	}
}

// NewStoreClosed creates a StoreError for an operation after Close.
func NewStoreClosed(op string) *StoreError {
	return &StoreError{
		Code:    ErrCodeStoreClosed,
		Message: fmt.Sprintf("%s on closed store", op),
	}
}

// engineError classifies an engine-level failure. SQLITE_BUSY and
// SQLITE_LOCKED become STORAGE_BUSY (the busy timeout elapsed without the
// lock freeing); everything else is STORAGE_UNAVAILABLE.
func engineError(msg string, err error) *StoreError {
	var se sqlite3.Error
	if errors.As(err, &se) && (se.Code == sqlite3.ErrBusy || se.Code == sqlite3.ErrLocked) {
		return &StoreError{
			Code:    ErrCodeStorageBusy,
			Message: msg,
			Err:     err,
		}
	}
	return NewStorageUnavailable(msg, err)
}

// IsInvalidKey returns true if the error is an invalid-key error.
// Uses errors.As to handle wrapped errors.
func IsInvalidKey(err error) bool {
	return hasCode(err, ErrCodeInvalidKey)
}

// IsSerializationError returns true if the error is a serialization error.
func IsSerializationError(err error) bool {
	return hasCode(err, ErrCodeSerialization)
}

// IsCorruptRecord returns true if the error is a corrupt-record error.
func IsCorruptRecord(err error) bool {
	return hasCode(err, ErrCodeCorruptRecord)
}

// IsStorageUnavailable returns true if the error is a storage-unavailable error.
func IsStorageUnavailable(err error) bool {
	return hasCode(err, ErrCodeStorageUnavailable)
}

// IsStorageBusy returns true if the error is a lock-contention error.
func IsStorageBusy(err error) bool {
	return hasCode(err, ErrCodeStorageBusy)
}

// IsStoreClosed returns true if the error is a store-closed error.
func IsStoreClosed(err error) bool {
	return hasCode(err, ErrCodeStoreClosed)
}

func hasCode(err error, code ErrorCode) bool {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Code == code
	}
	return false
}
