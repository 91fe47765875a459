package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME and the working directory at an empty temp dir so
// no real config or locations file is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("LOCGRID_DATA_DIR", "")
	t.Chdir(dir)
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_Structure(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "locgrid", cmd.Use)
	assert.NotNil(t, cmd.RunE)

	for _, name := range []string{"browse", "keys", "version"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}
	for _, flag := range []string{"config", "locations", "log-file", "log-level"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "missing --%s", flag)
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "locgrid version dev\n", out)
}

func TestKeysCmd_Defaults(t *testing.T) {
	isolate(t)

	out, err := execute(t, "keys")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, []string{"KEY", "GROUP", "ACTION"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"left", "column", "-1"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"right", "column", "+1"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"up", "row", "-1"}, strings.Fields(lines[3]))
	assert.Equal(t, []string{"down", "row", "+1"}, strings.Fields(lines[4]))
	assert.Equal(t, []string{"home", "boundary", "first"}, strings.Fields(lines[5]))
	assert.Equal(t, []string{"end", "boundary", "last"}, strings.Fields(lines[6]))
	assert.Contains(t, lines[7], "row 0, column 0")
}

func TestKeysCmd_ExplicitConfig(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "keys.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[keys.columns]
h = -1
l = 1

[grid.initial]
row = 2
`), 0o644))

	out, err := execute(t, "keys", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "h ")
	assert.Contains(t, out, "left ")
	assert.Contains(t, out, "row 2, column 0")
}

func TestKeysCmd_OverlappingConfigFails(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("keys:\n  columns:\n    j: 1\n  rows:\n    j: 1\n"), 0o644))

	_, err := execute(t, "keys", "--config", path)
	assert.ErrorContains(t, err, `"j"`)
}

func TestBrowseCmd_MissingLocationsFile(t *testing.T) {
	dir := isolate(t)

	_, err := execute(t, "browse", "--locations", filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfig_FlagsOverride(t *testing.T) {
	isolate(t)
	t.Setenv("LOCGRID_LOG_LEVEL", "warn")

	cfg, err := loadConfig(&rootOptions{logLevel: "debug", logFile: "x.log", locations: "l.yaml"})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "x.log", cfg.Log.File)
	assert.Equal(t, "l.yaml", cfg.Locations)
}

func TestPrepare_DemoLocations(t *testing.T) {
	isolate(t)

	_, opts, err := prepare(&rootOptions{})
	require.NoError(t, err)
	assert.Len(t, opts.Locations, 5)
	assert.Equal(t, -1, opts.Grid.RowDirections["up"])
}
