package watcher_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/vimcore/internal/watcher"
)

func startWatcher(t *testing.T, paths ...string) <-chan string {
	t.Helper()
	w, err := watcher.New(watcher.Config{Paths: paths, Debounce: 50 * time.Millisecond})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	ch, err := w.Start()
	require.NoError(t, err)
	return ch
}

func TestWatcher_DebouncesBurst(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "keys.vim")
	require.NoError(t, os.WriteFile(script, []byte("dw"), 0o644))

	onChange := startWatcher(t, script)

	for i := range 10 {
		require.NoError(t, os.WriteFile(script, []byte(fmt.Sprintf("dw%d", i)), 0o644))
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case path := <-onChange:
		require.Equal(t, "keys.vim", filepath.Base(path))
	case <-time.After(2 * time.Second):
		t.Fatal("expected a notification")
	}

	select {
	case <-onChange:
		t.Fatal("burst should produce a single notification")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "keys.vim")
	require.NoError(t, os.WriteFile(script, []byte("x"), 0o644))

	onChange := startWatcher(t, script)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("y"), 0o644))

	select {
	case path := <-onChange:
		t.Fatalf("unexpected notification for %s", path)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_MultipleFiles(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "keys.vim")
	text := filepath.Join(dir, "input.txt")
	onChange := startWatcher(t, script, text)

	require.NoError(t, os.WriteFile(text, []byte("hello"), 0o644))
	select {
	case path := <-onChange:
		require.Equal(t, "input.txt", filepath.Base(path))
	case <-time.After(2 * time.Second):
		t.Fatal("expected a notification for the text file")
	}
}

func TestNew_RequiresPaths(t *testing.T) {
	_, err := watcher.New(watcher.Config{})
	require.Error(t, err)
}

func TestStart_MissingDirectory(t *testing.T) {
	w, err := watcher.New(watcher.DefaultConfig(filepath.Join(t.TempDir(), "nope", "keys.vim")))
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	_, err = w.Start()
	require.Error(t, err)
}

func TestStop_Idempotent(t *testing.T) {
	w, err := watcher.New(watcher.DefaultConfig(filepath.Join(t.TempDir(), "keys.vim")))
	require.NoError(t, err)
	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
}
