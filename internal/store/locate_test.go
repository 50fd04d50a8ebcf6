package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveLocation_MemoryFlag(t *testing.T) {
	loc, err := ResolveLocation("", true)
	if err != nil {
		t.Fatalf("ResolveLocation() failed: %v", err)
	}
	if !loc.Memory {
		t.Error("expected in-memory location")
	}
	if loc.File != "" {
		t.Errorf("in-memory location has file %q", loc.File)
	}
	if loc.DSN() != MemorySentinel {
		t.Errorf("DSN() = %q, want %q", loc.DSN(), MemorySentinel)
	}
}

func TestResolveLocation_MemorySentinel(t *testing.T) {
	loc, err := ResolveLocation(MemorySentinel, false)
	if err != nil {
		t.Fatalf("ResolveLocation() failed: %v", err)
	}
	if !loc.Memory {
		t.Error("sentinel path should resolve to in-memory location")
	}
}

func TestResolveLocation_DefaultPath(t *testing.T) {
	tmp := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() failed: %v", err)
	}
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("Chdir() failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	loc, err := ResolveLocation("", false)
	if err != nil {
		t.Fatalf("ResolveLocation() failed: %v", err)
	}
	if loc.Memory {
		t.Fatal("expected file-backed location")
	}

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() failed: %v", err)
	}
	want := filepath.Join(cwd, DefaultFileName)
	if loc.File != want {
		t.Errorf("File = %q, want %q", loc.File, want)
	}
}

func TestResolveLocation_BareNameWithoutExtension(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "data", "sub")

	loc, err := ResolveLocation(path, false)
	if err != nil {
		t.Fatalf("ResolveLocation() failed: %v", err)
	}
	if want := path + ".db"; loc.File != want {
		t.Errorf("File = %q, want %q", loc.File, want)
	}

	// Parent directory must exist afterwards
	if info, err := os.Stat(filepath.Join(tmp, "data")); err != nil || !info.IsDir() {
		t.Errorf("parent directory was not created: %v", err)
	}
}

func TestResolveLocation_ExistingDirectory(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "data", "sub")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}

	loc, err := ResolveLocation(dir, false)
	if err != nil {
		t.Fatalf("ResolveLocation() failed: %v", err)
	}
	if want := filepath.Join(dir, DefaultFileName); loc.File != want {
		t.Errorf("File = %q, want %q", loc.File, want)
	}
}

func TestResolveLocation_ExplicitFilePath(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "data", "mydata.duckdb")

	loc, err := ResolveLocation(path, false)
	if err != nil {
		t.Fatalf("ResolveLocation() failed: %v", err)
	}
	if loc.File != path {
		t.Errorf("File = %q, want %q", loc.File, path)
	}
	if info, err := os.Stat(filepath.Join(tmp, "data")); err != nil || !info.IsDir() {
		t.Errorf("parent directory was not created: %v", err)
	}
}

func TestResolveLocation_ParentCreationFailure(t *testing.T) {
	tmp := t.TempDir()

	// A regular file where a parent directory is needed
	blocker := filepath.Join(tmp, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	_, err := ResolveLocation(filepath.Join(blocker, "nested", "db.duckdb"), false)
	if err == nil {
		t.Fatal("expected error when parent cannot be created")
	}
	if !IsStorageUnavailable(err) {
		t.Errorf("expected STORAGE_UNAVAILABLE, got %v", err)
	}
}
