package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// MemorySentinel is the reserved path meaning a volatile in-memory database.
const MemorySentinel = ":memory:"

// DefaultFileName is the database file name used when the caller gives no
// path, or gives a directory.
const DefaultFileName = "duckno.db"

// Location is a resolved storage location: either a database file on disk
// or a volatile in-memory instance.
type Location struct {
	// File is the database file path. Empty when Memory is true.
	File string

	// Memory marks a volatile, non-persisted instance.
	Memory bool
}

// DSN returns the driver data source name for the location.
func (l Location) DSN() string {
	if l.Memory {
		return MemorySentinel
	}
	return l.File
}

// ResolveLocation applies the storage location policy:
//
//  1. memory flag set, or path is the ":memory:" sentinel → in-memory.
//  2. No path → DefaultFileName in the current working directory.
//  3. Path without extension: an existing directory gets DefaultFileName
//     inside it; otherwise the path is a bare file name — parent
//     directories are created and a ".db" extension appended.
//  4. Path with extension → explicit file path, parent directories created.
//
// Directory creation failures are reported as STORAGE_UNAVAILABLE.
func ResolveLocation(path string, memory bool) (Location, error) {
	if memory || path == MemorySentinel {
		return Location{Memory: true}, nil
	}

	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return Location{}, NewStorageUnavailable("resolve working directory", err)
		}
		return Location{File: filepath.Join(cwd, DefaultFileName)}, nil
	}

	if filepath.Ext(path) == "" {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return Location{File: filepath.Join(path, DefaultFileName)}, nil
		}
		// Bare file name without an extension: create the parent and
		// append ".db" (an extensionless path never ends in .db/.duckdb).
		if err := ensureParent(path); err != nil {
			return Location{}, err
		}
		return Location{File: path + ".db"}, nil
	}

	if err := ensureParent(path); err != nil {
		return Location{}, err
	}
	return Location{File: path}, nil
}

func ensureParent(path string) error {
	parent := filepath.Dir(path)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return NewStorageUnavailable(fmt.Sprintf("create directory %q", parent), err)
	}
	return nil
}
