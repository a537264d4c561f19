package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const watchedLevel = `name: %s
end_x: 1000
spawn: {x: 10, y: 10}
platforms:
  - {type: grass, x: 0, y: 200, w: 1000, h: 40}
coins:
  - {x: 500, y: 100}
`

func writeLevel(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "levels", name+".yaml"), []byte(body), 0o644))
}

func nextReload(t *testing.T, w *Watcher) LevelReload {
	t.Helper()
	select {
	case r := <-w.Reloads():
		return r
	case <-time.After(3 * time.Second):
		t.Fatal("no reload within 3s")
		return LevelReload{}
	}
}

func TestWatcher_ReloadsChangedLevel(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "levels"), 0o755))
	writeLevel(t, dir, "hills", sprintfLevel("Hills"))

	w, err := NewWatcher(dir, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	writeLevel(t, dir, "hills", sprintfLevel("Windy Hills"))

	r := nextReload(t, w)
	require.NoError(t, r.Err)
	assert.Equal(t, "hills", r.Name)
	assert.Equal(t, "hills", r.Level.ID)
	assert.Equal(t, "Windy Hills", r.Level.Name)
}

func TestWatcher_ReportsInvalidLevel(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "levels"), 0o755))

	w, err := NewWatcher(dir, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	writeLevel(t, dir, "broken", "name: [")

	r := nextReload(t, w)
	assert.Equal(t, "broken", r.Name)
	assert.Nil(t, r.Level)
	assert.Error(t, r.Err)
}

func TestWatcher_MissingLevelsDir(t *testing.T) {
	_, err := NewWatcher(t.TempDir(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: watch")
}

func TestWatcher_CloseTwice(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "levels"), 0o755))

	w, err := NewWatcher(dir, nil)
	require.NoError(t, err)
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func sprintfLevel(name string) string {
	return fmt.Sprintf(watchedLevel, name)
}
