package markdown

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

func TestNew(t *testing.T) {
	for _, w := range []int{40, 80, 120} {
		r, err := New(w, "")
		require.NoError(t, err)
		require.Equal(t, w, r.Width())
	}
}

func TestNew_LightStyle(t *testing.T) {
	_, err := New(80, "light")
	require.NoError(t, err)
}

func TestRender_Table(t *testing.T) {
	r, err := New(80, "dark")
	require.NoError(t, err)

	out, err := r.Render("# Motions\n\n| Key | Action |\n|---|---|\n| `w` | next word |\n")
	require.NoError(t, err)

	plain := stripANSI(out)
	require.Contains(t, plain, "Motions")
	require.Contains(t, plain, "next word")
}

func TestRender_Wraps(t *testing.T) {
	r, err := New(20, "dark")
	require.NoError(t, err)

	out, err := r.Render(strings.Repeat("word ", 20))
	require.NoError(t, err)
	require.Greater(t, strings.Count(stripANSI(strings.TrimSpace(out)), "\n"), 1)
}
