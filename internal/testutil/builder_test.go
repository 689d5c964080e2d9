package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/vimcore/internal/keys"
	"github.com/zjrosen/vimcore/internal/vim"
)

func TestBuilder_PlaysScriptsInOrder(t *testing.T) {
	s := NewBuilder(t, "hello world").
		Keys("dw").
		Keys("P").
		Build()

	require.Equal(t, "hello world", s.Buffer.Text())
	require.Equal(t, [2]int{0, 5}, s.Cursor())
	require.Len(t, s.Actions, 3)
	require.True(t, s.Result.Changed)
}

func TestBuilder_WithCursor(t *testing.T) {
	s := NewBuilder(t, "abc\ndef").WithCursor(1, 1).Keys("x").Build()
	require.Equal(t, "abc\ndf", s.Buffer.Text())
	require.Equal(t, vim.Register{Text: "e"}, s.Engine.Register())
}

func TestBuilder_Options(t *testing.T) {
	s := NewBuilder(t, "abc").WithOptions(NoUndo()).Keys("xu").Build()
	require.Equal(t, "bc", s.Buffer.Text())
	require.False(t, s.Buffer.CanUndo())

	s = NewBuilder(t, "abc").WithOptions(UndoLimit(1)).Keys("xxuu").Build()
	// Only the newest step is kept, so the second undo has nothing to restore.
	require.Equal(t, "bc", s.Buffer.Text())
}

func TestBuilder_Presets(t *testing.T) {
	s := NewBuilder(t, "").WithProse().Keys("dd").Build()
	require.Equal(t, "jumps over the lazy dog.\n\nfoo(bar, baz) -- qux", s.Buffer.Text())

	s = NewBuilder(t, "").WithUnicode().Keys("x").Build()
	require.Equal(t, "éllo wörld", s.Buffer.Lines()[0])
	require.Len(t, Samples, 3)
}

func TestSession_Feed(t *testing.T) {
	s := NewBuilder(t, "").Build()
	s.Feed(keys.Runes(":w")...)
	s.Feed(keys.Enter)
	require.True(t, s.Result.Submitted)
	require.Equal(t, vim.ModeNormal, s.Engine.State())
}
