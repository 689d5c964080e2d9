package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/vimcore/internal/config"
)

// execute runs the root command with a throwaway config file and returns its
// output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, config.WriteDefaultConfig(cfgPath))
	return executeWithConfig(t, cfgPath, args...)
}

func executeWithConfig(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()

	viper.Reset()
	cfg = config.Config{}
	replayText, replayFile, replayKeys, replayScript = "", "", "", ""
	replayWatch, replayDiff = false, false
	t.Cleanup(func() {
		viper.Reset()
		for _, name := range []string{"text", "file", "keys", "script", "watch", "diff"} {
			_ = replayCmd.Flags().Lookup(name).Value.Set(replayCmd.Flags().Lookup(name).DefValue)
			replayCmd.Flags().Lookup(name).Changed = false
		}
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestReplay_Keys(t *testing.T) {
	out, err := execute(t, "replay", "--text", "hello world", "--keys", "dw", "--diff=false")
	require.NoError(t, err)
	require.Equal(t, "world\n---\ncursor:   1:1\nmode:     NORMAL\nregister: \"hello \" (charwise)\n", out)
}

func TestReplay_DiffFromConfig(t *testing.T) {
	out, err := execute(t, "replay", "--text", "a\nb", "--keys", "dd")
	require.NoError(t, err)
	require.Contains(t, out, "- a\n  b\n")
	require.Contains(t, out, "register: \"a\" (linewise)")
}

func TestReplay_Files(t *testing.T) {
	dir := t.TempDir()
	textPath := filepath.Join(dir, "input.txt")
	scriptPath := filepath.Join(dir, "edit.keys")
	require.NoError(t, os.WriteFile(textPath, []byte("one two\n"), 0o644))
	require.NoError(t, os.WriteFile(scriptPath, []byte("cwuno <Esc>\n:w<CR>\n"), 0o644))

	out, err := execute(t, "replay", "--file", textPath, "--script", scriptPath, "--diff=false")
	require.NoError(t, err)
	require.Contains(t, out, "uno two\n---\n")
	require.Contains(t, out, "submitted\n")
}

func TestReplay_PendingAndOutput(t *testing.T) {
	out, err := execute(t, "replay", "--text", "abc", "--keys", ":set paste<CR>2d", "--diff=false")
	require.NoError(t, err)
	require.Contains(t, out, "pending:  2d\n")
	require.Contains(t, out, "output:   Paste mode ON\n")
}

func TestReplay_BadScript(t *testing.T) {
	_, err := execute(t, "replay", "--text", "abc", "--keys", "<Nope>")
	require.Error(t, err)
	require.Contains(t, err.Error(), "parsing key script")
}

func TestReplay_MissingFile(t *testing.T) {
	_, err := execute(t, "replay", "--file", filepath.Join(t.TempDir(), "missing.txt"), "--keys", "x")
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading text file")
}

func TestReplay_WatchNeedsFiles(t *testing.T) {
	_, err := execute(t, "replay", "--text", "abc", "--keys", "x", "--watch")
	require.Error(t, err)
	require.Contains(t, err.Error(), "--watch")
}

func TestVersion(t *testing.T) {
	SetVersion("1.2.3")
	defer SetVersion("dev")

	out, err := execute(t, "version")
	require.NoError(t, err)
	require.Equal(t, "vimcore 1.2.3\n", out)
}

func TestReplay_UndoDisabledByConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("editor:\n  undo_limit: 0\n"), 0o600))

	out, err := executeWithConfig(t, cfgPath, "replay", "--text", "hello", "--keys", "xu", "--diff=false")
	require.NoError(t, err)
	require.Equal(t, "ello\n---\ncursor:   1:1\nmode:     NORMAL\nregister: \"h\" (charwise)\n", out)
}

func TestInvalidConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("editor:\n  undo_limit: -1\n"), 0o600))

	viper.Reset()
	t.Cleanup(viper.Reset)
	rootCmd.SetArgs([]string{"--config", cfgPath, "version"})
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)

	err := rootCmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "editor.undo_limit")
}
