package platform

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/deskmate/pkg/core"
)

func TestOpenSchedule_Defaults(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := OpenSchedule(ctx, WithDir(dir))
	require.NoError(t, err)
	assert.Equal(t, 0, store.Len())

	_, err = store.Add(ctx, core.Task{Title: "Stand-up", Datetime: "2026-03-01 09:00"})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, DefaultScheduleFile))
	assert.NoError(t, err)

	state := store.State().(core.StoreState)
	assert.True(t, state.Sorted)
}

func TestOpenNotepad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, DefaultConfigFile)
	require.NoError(t, os.WriteFile(cfgPath, []byte("notepad_file: notes.yaml\n"), 0644))
	ctx := context.Background()

	store, err := OpenNotepad(ctx, WithDir(dir), WithConfigFile(cfgPath))
	require.NoError(t, err)

	_, err = store.Add(ctx, core.Note{Title: "yaml backed", CreatedAt: "2026-02-20 10:00"})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "notes.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "title: yaml backed")
}

func TestOpenNotepad_ExplicitFileBeatsConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, DefaultConfigFile)
	require.NoError(t, os.WriteFile(cfgPath, []byte("notepad_file: notes.yaml\n"), 0644))

	store, err := OpenNotepad(context.Background(),
		WithDir(dir),
		WithConfigFile(cfgPath),
		WithNotepadFile("override.json"),
	)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "override.json"), store.State().(core.StoreState).Path)
}

func TestOpen_MalformedDataFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultNotepadFile), []byte("{broken"), 0644))

	_, err := OpenNotepad(context.Background(), WithDir(dir))
	assert.Error(t, err)

	_, err = OpenSchedule(context.Background(), WithDir(dir), WithConfigFile(filepath.Join(dir, "absent.yaml")))
	assert.Error(t, err)
}
