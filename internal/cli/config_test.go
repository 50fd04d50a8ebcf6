package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "duckno.yaml")
	require.NoError(t, writeFile(path, "path: data/app.db\ntable: app_kv\n"))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "data/app.db", cfg.Path)
	assert.Equal(t, "app_kv", cfg.Table)
	assert.False(t, cfg.Memory)
}

func TestLoadConfigRejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "duckno.yaml")
	require.NoError(t, writeFile(path, "path: x.db\nbogus: true\n"))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestExplicitConfigApplied(t *testing.T) {
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "conf.yaml")
	require.NoError(t, writeFile(cfgPath, "memory: true\n"))

	out, err := runCommand(t, "path", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "(memory)\n", out)
}

func TestFlagsWinOverConfig(t *testing.T) {
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "conf.yaml")
	otherDB := filepath.Join(tmp, "other.db")
	require.NoError(t, writeFile(cfgPath, "path: "+filepath.Join(tmp, "config.db")+"\n"))

	out, err := runCommand(t, "path", "--config", cfgPath, "--db", otherDB)
	require.NoError(t, err)
	assert.Equal(t, otherDB+"\n", out)
}

func TestImplicitConfigPickedUpFromWorkingDirectory(t *testing.T) {
	tmp := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	require.NoError(t, writeFile(filepath.Join(tmp, defaultConfigFile), "memory: true\n"))

	out, err := runCommand(t, "path")
	require.NoError(t, err)
	assert.Equal(t, "(memory)\n", out)
}

func TestBrokenExplicitConfigIsCommandError(t *testing.T) {
	_, err := runCommand(t, "path", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
