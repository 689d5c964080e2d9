package log

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	ts := time.Date(2025, 12, 6, 10, 45, 0, 0, time.UTC)

	got := format(ts, LevelDebug, CatVim, "", "abandoned command", []any{"keys", "d", "key", "z"})
	require.Equal(t, "2025-12-06T10:45:00 [DEBUG] [vim] abandoned command keys=d key=z\n", got)

	got = format(ts, LevelWarn, CatBuffer, "abc", "odd", []any{"orphan"})
	require.Equal(t, "2025-12-06T10:45:00 [WARN] [buffer] odd orphan=<missing> session=abc\n", got)
}

func TestLogging_WritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	restore := InitWriter(&buf)
	defer restore()

	Info(CatReplay, "replay finished", "keys", 4)
	ErrorErr(CatConfig, "save failed", errors.New("disk full"))
	ErrorErr(CatConfig, "nil error", nil)

	out := buf.String()
	require.Contains(t, out, "[INFO] [replay] replay finished keys=4")
	require.Contains(t, out, "[ERROR] [config] save failed error=disk full")
	require.Contains(t, out, "nil error error=<nil>")
}

func TestLogging_MinLevelAndDisable(t *testing.T) {
	var buf bytes.Buffer
	restore := InitWriter(&buf)
	defer restore()

	SetMinLevel(LevelWarn)
	Debug(CatVim, "hidden")
	Warn(CatVim, "shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")

	SetEnabled(false)
	Error(CatVim, "muted")
	require.NotContains(t, buf.String(), "muted")
}

func TestLogging_SessionStamp(t *testing.T) {
	var buf bytes.Buffer
	restore := InitWriter(&buf)
	defer restore()

	SetSession("1234")
	Debug(CatUI, "key")
	require.True(t, strings.HasSuffix(buf.String(), " session=1234\n"))
}

func TestLogging_NoLoggerIsSilent(t *testing.T) {
	install(nil)
	require.NotPanics(t, func() {
		Debug(CatVim, "nobody listening")
		SetEnabled(true)
		SetMinLevel(LevelDebug)
		SetSession("x")
	})
	require.Nil(t, NewListener(context.Background()))
}

func TestInit_AppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	cleanup, err := Init(path)
	require.NoError(t, err)

	Info(CatConfig, "loaded", "path", "config.yaml")
	cleanup()
	defer install(nil)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "[INFO] [config] loaded path=config.yaml")
}

func TestInit_BadPath(t *testing.T) {
	_, err := Init(filepath.Join(t.TempDir(), "missing", "dir", "x.log"))
	require.Error(t, err)
}

func TestNewListener_ReceivesEntries(t *testing.T) {
	restore := InitWriter(&bytes.Buffer{})
	defer restore()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listener := NewListener(ctx)
	require.NotNil(t, listener)

	Debug(CatWatcher, "file changed", "path", "keys.txt")
	event, ok := listener.Listen()().(LogEvent)
	require.True(t, ok)
	require.Contains(t, event.Payload, "[watcher] file changed path=keys.txt")
}

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]Level{"debug": LevelDebug, "INFO": LevelInfo, "warning": LevelWarn, " error ": LevelError} {
		got, err := ParseLevel(name)
		require.NoError(t, err)
		require.Equal(t, want, got)
		require.NotEqual(t, "UNKNOWN", got.String())
	}
	_, err := ParseLevel("loud")
	require.Error(t, err)
}
