package keys

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zjrosen/vimcore/internal/vim"
)

func TestParseScript(t *testing.T) {
	tests := []struct {
		script string
		want   []Key
	}{
		{"dw", []Key{Plain('d'), Plain('w')}},
		{"ihi<Esc>", []Key{Plain('i'), Plain('h'), Plain('i'), Escape}},
		{":wq<CR>", []Key{Plain(':'), Plain('w'), Plain('q'), Enter}},
		{"<esc><ENTER><Return>", []Key{Escape, Enter, Enter}},
		{"<BS><Del><Tab><NL><Space>", []Key{Backspace, Plain(vim.KeyDelete), Tab, Plain('\n'), Plain(' ')}},
		{"<C-r><C-R>", []Key{Ctrl('r'), Ctrl('r')}},
		{"<C-[>", []Key{Escape}},
		{"a<lt>b", []Key{Plain('a'), Plain('<'), Plain('b')}},
		{"dd\nx\r\n", []Key{Plain('d'), Plain('d'), Plain('x')}},
		{"fé", []Key{Plain('f'), Plain('é')}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.script, func(t *testing.T) {
			got, err := ParseScript(tt.script)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseScript_Errors(t *testing.T) {
	tests := []struct {
		script string
		pos    int
		msg    string
	}{
		{"ab<Esc", 2, "unterminated <"},
		{"x<Foo>", 1, "unknown key <Foo>"},
		{"<C-ab>", 0, "unknown key <C-ab>"},
		{"a\xffb", 1, "invalid UTF-8"},
	}

	for _, tt := range tests {
		t.Run(tt.script, func(t *testing.T) {
			_, err := ParseScript(tt.script)
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			require.Equal(t, tt.pos, perr.Pos)
			require.Equal(t, tt.msg, perr.Msg)
			require.Contains(t, err.Error(), "key script")
		})
	}
}

func TestFormat(t *testing.T) {
	keys := []Key{Plain('d'), Plain('w'), Escape, Enter, Backspace, Tab, Plain('<'), Ctrl('r'), Plain('\x12'), Plain('日')}
	require.Equal(t, "dw<Esc><CR><BS><Tab><lt><C-r><C-r>日", Format(keys))
	require.Equal(t, "<Esc>", Escape.String())
}

func TestFormat_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		keys := rapid.SliceOf(rapid.SampledFrom([]Key{
			Plain('a'), Plain('Z'), Plain(' '), Plain('<'), Plain('>'), Plain('é'),
			Escape, Enter, Backspace, Tab, Plain(vim.KeyDelete), Plain(vim.KeyNewline),
			Ctrl('r'), Ctrl('c'),
		})).Draw(t, "keys")

		got, err := ParseScript(Format(keys))
		require.NoError(t, err)
		if len(keys) == 0 {
			require.Empty(t, got)
			return
		}
		require.Equal(t, keys, got)
	})
}

func TestRunes(t *testing.T) {
	require.Equal(t, []Key{Plain('h'), Plain('é')}, Runes("hé"))
}
