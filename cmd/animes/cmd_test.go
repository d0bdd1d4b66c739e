package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/kerbaras/animes/pkg/data"
	"github.com/kerbaras/animes/pkg/instance"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func runCLI(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", dir)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{
		"--config", filepath.Join(dir, "config.ini"),
		"--data-dir", filepath.Join(dir, "data"),
	}, args...))

	err := rootCmd.Execute()
	resetFlags(rootCmd)
	return out.String(), err
}

func listJSON(t *testing.T, dir string) map[string]data.Anime {
	t.Helper()
	out, err := runCLI(t, dir, "list", "--json")
	require.NoError(t, err)

	var animes map[string]data.Anime
	require.NoError(t, json.Unmarshal([]byte(out), &animes))
	return animes
}

func TestAddAndList(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, dir, "add", "friday", "Sousou", "no", "Frieren")
	require.NoError(t, err)
	assert.Contains(t, out, "Sousou no Frieren")

	animes := listJSON(t, dir)
	require.Len(t, animes, 1)
	for _, a := range animes {
		assert.Equal(t, "Sousou no Frieren", a.Title)
		assert.Equal(t, "friday", a.Day)
		assert.Equal(t, 0, a.Episodes)
	}

	out, err = runCLI(t, dir, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Tracking 1 anime")
	assert.Contains(t, out, "Sousou no Frieren")
}

func TestListEmpty(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing tracked yet")
}

func TestEpisodes(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, dir, "add", "monday", "Mushishi")
	require.NoError(t, err)

	_, err = runCLI(t, dir, "episodes", "mushishi")
	require.NoError(t, err)
	out, err := runCLI(t, dir, "show", "Mushishi")
	require.NoError(t, err)
	assert.Contains(t, out, "Episodes: 1")

	_, err = runCLI(t, dir, "episodes", "Mushishi", "12")
	require.NoError(t, err)
	out, err = runCLI(t, dir, "show", "Mushishi")
	require.NoError(t, err)
	assert.Contains(t, out, "Episodes: 12")

	_, err = runCLI(t, dir, "episodes", "Mushishi", "--by=-20")
	require.NoError(t, err)
	out, err = runCLI(t, dir, "show", "Mushishi")
	require.NoError(t, err)
	assert.Contains(t, out, "Episodes: 0")

	_, err = runCLI(t, dir, "episodes", "Mushishi", "many")
	assert.Error(t, err)
}

func TestEpisodesOnUnknownTitleAnnouncesNewRecord(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, dir, "add", "friday", "Frieren")
	require.NoError(t, err)

	out, err := runCLI(t, dir, "episodes", "Frierne")
	require.NoError(t, err)
	assert.Contains(t, out, "created new record Frierne")

	out, err = runCLI(t, dir, "episodes", "Frieren")
	require.NoError(t, err)
	assert.NotContains(t, out, "created new record")

	animes := listJSON(t, dir)
	require.Len(t, animes, 2)
	assert.Equal(t, 1, animes["Frierne"].Episodes)
}

func TestEditKeepsUnsetFields(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, dir, "add", "monday", "Mushishi")
	require.NoError(t, err)
	_, err = runCLI(t, dir, "episodes", "Mushishi", "5")
	require.NoError(t, err)

	_, err = runCLI(t, dir, "edit", "Mushishi", "--title", "Mushishi Zoku Shou")
	require.NoError(t, err)

	animes := listJSON(t, dir)
	require.Len(t, animes, 1)
	for _, a := range animes {
		assert.Equal(t, "Mushishi Zoku Shou", a.Title)
		assert.Equal(t, "monday", a.Day)
		assert.Equal(t, 5, a.Episodes)
	}
}

func TestEditUnknownIDCreatesRecord(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, dir, "edit", "custom-id", "--day", "sunday", "--title", "One Piece")
	require.NoError(t, err)
	assert.Contains(t, out, "created new record custom-id")

	animes := listJSON(t, dir)
	require.Contains(t, animes, "custom-id")
	assert.Equal(t, "One Piece", animes["custom-id"].Title)
}

func TestDeleteIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, dir, "add", "monday", "Mushishi")
	require.NoError(t, err)

	_, err = runCLI(t, dir, "delete", "Mushishi")
	require.NoError(t, err)
	assert.Empty(t, listJSON(t, dir))

	_, err = runCLI(t, dir, "rm", "Mushishi")
	assert.NoError(t, err)
}

func TestShowUnknown(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), "show", "nothing")
	assert.EqualError(t, err, `no anime matches "nothing"`)
}

func TestAmbiguousTitle(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, dir, "add", "monday", "Mushishi")
	require.NoError(t, err)
	_, err = runCLI(t, dir, "add", "tuesday", "mushishi")
	require.NoError(t, err)

	_, err = runCLI(t, dir, "delete", "MUSHISHI")
	assert.ErrorContains(t, err, "2 animes are titled")
	assert.Len(t, listJSON(t, dir), 2)
}

func TestBounds(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, dir, "bounds")
	require.NoError(t, err)
	assert.Contains(t, out, "No geometry saved yet, defaulting to 80x24 cells")

	store, err := data.Open(filepath.Join(dir, "data"), data.BackendJSON)
	require.NoError(t, err)
	require.NoError(t, store.SetBounds(data.Bounds{X: data.IntPtr(10), Y: data.IntPtr(20), Width: 500, Height: 600}))
	require.NoError(t, store.Close())

	out, err = runCLI(t, dir, "bounds")
	require.NoError(t, err)
	assert.Contains(t, out, "Size:     500x600")
	assert.Contains(t, out, "Position: 10,20")

	_, err = runCLI(t, dir, "bounds", "--reset")
	require.NoError(t, err)
	out, err = runCLI(t, dir, "bounds")
	require.NoError(t, err)
	assert.Contains(t, out, "No geometry saved yet")
}

func TestConfigCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, dir, "--backend", "DuckDB", "config")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, "config.ini"))
	assert.Contains(t, out, "backend  = duckdb")
	assert.Contains(t, out, "data_dir = "+filepath.Join(dir, "data"))
	assert.Contains(t, out, "file     = "+filepath.Join(dir, "data", "logs", "animes.log"))
	assert.Contains(t, out, "size     = 80x24 cells")
}

func TestInvalidBackendFlag(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), "--backend", "sqlite", "list")
	assert.ErrorContains(t, err, "storage.backend must be json or duckdb")
}

func TestWritersRespectInstanceLock(t *testing.T) {
	dir := t.TempDir()
	lock, err := instance.Acquire(filepath.Join(dir, "data", "animes.lock"))
	require.NoError(t, err)
	defer lock.Release()

	_, err = runCLI(t, dir, "add", "monday", "Mushishi")
	assert.ErrorIs(t, err, instance.ErrAlreadyRunning)

	// Readers do not need the lock
	_, err = runCLI(t, dir, "list")
	assert.NoError(t, err)
}
