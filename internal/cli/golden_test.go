package cli

import (
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// newGoldie builds the golden comparator for CLI output envelopes.
// To regenerate golden files, run:
//
//	go test ./internal/cli -update
func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

// seededDB prepares a database with a fixed set of records.
func seededDB(t *testing.T) string {
	t.Helper()
	db := filepath.Join(t.TempDir(), "golden.db")

	_, err := runCommand(t, "set", "alpha", `{"name":"Ada"}`, "--db", db)
	require.NoError(t, err)
	_, err = runCommand(t, "set", "beta", "42", "--db", db)
	require.NoError(t, err)

	return db
}

func TestGolden_KeysText(t *testing.T) {
	db := seededDB(t)

	out, err := runCommand(t, "keys", "--db", db)
	require.NoError(t, err)

	newGoldie(t).Assert(t, "keys_text", []byte(out))
}

func TestGolden_KeysJSON(t *testing.T) {
	db := seededDB(t)

	out, err := runCommand(t, "keys", "--db", db, "--format", "json")
	require.NoError(t, err)

	newGoldie(t).Assert(t, "keys_json", []byte(out))
}

func TestGolden_GetText(t *testing.T) {
	db := seededDB(t)

	out, err := runCommand(t, "get", "alpha", "--db", db)
	require.NoError(t, err)

	newGoldie(t).Assert(t, "get_text", []byte(out))
}

func TestGolden_GetJSON(t *testing.T) {
	db := seededDB(t)

	out, err := runCommand(t, "get", "alpha", "--db", db, "--format", "json")
	require.NoError(t, err)

	newGoldie(t).Assert(t, "get_json", []byte(out))
}

func TestGolden_SetJSON(t *testing.T) {
	db := filepath.Join(t.TempDir(), "golden.db")

	out, err := runCommand(t, "set", "alpha", `{"name":"Ada"}`, "--db", db, "--format", "json")
	require.NoError(t, err)

	newGoldie(t).Assert(t, "set_json", []byte(out))
}
