package vim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOperator_CharacterWise(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		row      int
		col      int
		keys     string
		want     Action
		register string
	}{
		{"dw", []string{"hello world"}, 0, 0, "dw", DeleteRange{0, 0, 0, 6}, "hello "},
		{"dw on last word", []string{"hello world"}, 0, 6, "dw", DeleteRange{0, 6, 0, 11}, "world"},
		{"db", []string{"hello world"}, 0, 6, "db", DeleteRange{0, 0, 0, 6}, "hello "},
		{"de", []string{"hello world"}, 0, 0, "de", DeleteRange{0, 0, 0, 4}, "hell"},
		{"d$", []string{"hello"}, 0, 2, "d$", DeleteRange{0, 2, 0, 5}, "llo"},
		{"d0", []string{"hello world"}, 0, 6, "d0", DeleteRange{0, 0, 0, 6}, "hello "},
		{"dl on last char", []string{"hello"}, 0, 4, "dl", DeleteRange{0, 4, 0, 5}, "o"},
		{"df is inclusive", []string{"hello world"}, 0, 0, "dfo", DeleteRange{0, 0, 0, 5}, "hello"},
		{"d2f", []string{"hello world"}, 0, 0, "d2fo", DeleteRange{0, 0, 0, 8}, "hello wo"},
		{"dF is exclusive", []string{"hello world"}, 0, 7, "dFh", DeleteRange{0, 0, 0, 7}, "hello w"},
		{"df over multibyte", []string{"a→b→c"}, 0, 0, "df→", DeleteRange{0, 0, 0, 4}, "a→"},
		{"counts multiply", []string{"a b c d e f g h"}, 0, 0, "2d3w", DeleteRange{0, 0, 0, 12}, "a b c d e f "},
		{"dj is a multi-line range", []string{"hello", "world"}, 0, 2, "dj", DeleteRange{0, 2, 1, 2}, "llo\nwo"},
		{"dgg", []string{"a", "b", "c"}, 2, 0, "dgg", DeleteRange{0, 0, 2, 0}, "a\nb\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New()
			got := feed(e, tt.lines, tt.row, tt.col, tt.keys)
			require.Equal(t, tt.want, got)
			require.Equal(t, Register{Text: tt.register}, e.Register())
			require.Equal(t, ModeNormal, e.State())
			_, pending := e.PendingOperator()
			require.False(t, pending)
		})
	}
}

func TestOperator_Yank(t *testing.T) {
	tests := []struct {
		name     string
		col      int
		keys     string
		want     Action
		register string
	}{
		{"yw", 0, "yw", MoveCursor{Row: 0, Col: 0}, "hello "},
		{"yb moves to range start", 6, "yb", MoveCursor{Row: 0, Col: 0}, "hello "},
		{"y$", 6, "y$", MoveCursor{Row: 0, Col: 6}, "world"},
		{"yf is inclusive", 0, "yfo", MoveCursor{Row: 0, Col: 0}, "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New()
			got := feed(e, []string{"hello world"}, 0, tt.col, tt.keys)
			require.Equal(t, tt.want, got)
			require.Equal(t, Register{Text: tt.register}, e.Register())
		})
	}
}

func TestOperator_Change(t *testing.T) {
	e := New()
	got := feed(e, []string{"hello world"}, 0, 0, "cw")
	require.Equal(t, Batch{Actions: []Action{DeleteRange{0, 0, 0, 6}, ChangeMode{Mode: ModeInsert}}}, got)
	require.Equal(t, ModeInsert, e.State())
	require.Equal(t, "hello ", e.Register().Text)

	// An empty range still enters Insert mode.
	e = New()
	got = feed(e, []string{"hello"}, 0, 0, "ch")
	require.Equal(t, ChangeMode{Mode: ModeInsert}, got)
	require.Equal(t, ModeInsert, e.State())
	require.Empty(t, e.Register().Text)
}

func TestOperator_EmptyRangeIsNoOp(t *testing.T) {
	e := New()
	e.HandleKey('x', false, []string{"abc"}, 0, 0)

	require.Equal(t, NoOp{}, feed(e, []string{"hello"}, 0, 0, "dh"))
	require.Equal(t, NoOp{}, feed(e, []string{"hello"}, 0, 0, "y0"))
	require.Equal(t, "a", e.Register().Text)
}

func TestOperator_Abandoned(t *testing.T) {
	tests := []struct {
		name string
		keys string
	}{
		{"unknown motion", "dx"},
		{"f without match", "dfz"},
		{"mismatched doubled key", "dy"},
		{"g followed by other key", "dgx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New()
			lines := []string{"hello world"}
			require.Equal(t, NoOp{}, feed(e, lines, 0, 0, tt.keys))
			_, pending := e.PendingOperator()
			require.False(t, pending)
			require.Empty(t, e.PendingKeys())
			require.Empty(t, e.Register().Text)
			require.Equal(t, ModeNormal, e.State())
		})
	}
}

func TestOperator_LineWise(t *testing.T) {
	t.Run("dd", func(t *testing.T) {
		e := New()
		got := feed(e, []string{"hello", "world"}, 0, 0, "dd")
		require.Equal(t, DeleteLine{Row: 0}, got)
		require.Equal(t, Register{Text: "hello", Linewise: true}, e.Register())
	})

	t.Run("count dd", func(t *testing.T) {
		e := New()
		got := feed(e, []string{"a", "b", "c"}, 0, 0, "2dd")
		require.Equal(t, Batch{Actions: []Action{DeleteLine{Row: 0}, DeleteLine{Row: 0}}}, got)
		require.Equal(t, Register{Text: "a\nb", Linewise: true}, e.Register())
	})

	t.Run("count after operator", func(t *testing.T) {
		e := New()
		got := feed(e, []string{"a", "b", "c"}, 0, 0, "d2d")
		require.Equal(t, Batch{Actions: []Action{DeleteLine{Row: 0}, DeleteLine{Row: 0}}}, got)
	})

	t.Run("count past the last line", func(t *testing.T) {
		e := New()
		got := feed(e, []string{"a", "b", "c"}, 1, 0, "5dd")
		require.Equal(t, Batch{Actions: []Action{DeleteLine{Row: 1}, DeleteLine{Row: 1}}}, got)
		require.Equal(t, "b\nc", e.Register().Text)
	})

	t.Run("cc", func(t *testing.T) {
		e := New()
		got := feed(e, []string{"hello", "world"}, 0, 3, "cc")
		require.Equal(t, Batch{Actions: []Action{DeleteRange{0, 0, 0, 5}, ChangeMode{Mode: ModeInsert}}}, got)
		require.Equal(t, Register{Text: "hello", Linewise: true}, e.Register())
		require.Equal(t, ModeInsert, e.State())
	})

	t.Run("2cc", func(t *testing.T) {
		e := New()
		got := feed(e, []string{"one", "two", "three"}, 0, 0, "2cc")
		require.Equal(t, Batch{Actions: []Action{DeleteRange{0, 0, 1, 3}, ChangeMode{Mode: ModeInsert}}}, got)
		require.Equal(t, "one\ntwo", e.Register().Text)
	})

	t.Run("yy", func(t *testing.T) {
		e := New()
		got := feed(e, []string{"hello", "world"}, 1, 2, "yy")
		require.Equal(t, NoOp{}, got)
		require.Equal(t, Register{Text: "world", Linewise: true}, e.Register())
		require.Equal(t, ModeNormal, e.State())
	})
}

func TestOperatorRange(t *testing.T) {
	lines := []string{"hello world"}

	start, end, ok := operatorRange("b", 1, lines, 0, 6)
	require.True(t, ok)
	require.Equal(t, Position{Row: 0, Col: 0}, start)
	require.Equal(t, Position{Row: 0, Col: 6}, end)

	_, _, ok = operatorRange("fz", 1, lines, 0, 0)
	require.False(t, ok)

	_, _, ok = operatorRange("q", 1, lines, 0, 0)
	require.False(t, ok)
}
