package keys

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/zjrosen/vimcore/internal/vim"
)

// ParseError reports a malformed key script.
type ParseError struct {
	Pos int // byte offset of the offending '<'
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("key script: %s at offset %d", e.Msg, e.Pos)
}

// named maps the lower-cased names of <...> keys to their runes.
var named = map[string]rune{
	"esc":    vim.KeyEscape,
	"cr":     vim.KeyEnter,
	"enter":  vim.KeyEnter,
	"return": vim.KeyEnter,
	"nl":     vim.KeyNewline,
	"bs":     vim.KeyBackspace,
	"del":    vim.KeyDelete,
	"tab":    vim.KeyTab,
	"space":  ' ',
	"lt":     '<',
}

// ParseScript parses vim key notation such as "dw<Esc>:wq<CR>".
//
// Recognised names (case-insensitive): <Esc>, <CR>/<Enter>/<Return>, <NL>,
// <BS>, <Del>, <Tab>, <Space>, <lt> and <C-x> for Ctrl+x. A literal '<' must
// be written <lt>. Raw line breaks are ignored so scripts can span lines.
func ParseScript(script string) ([]Key, error) {
	var out []Key
	for i := 0; i < len(script); {
		r, size := utf8.DecodeRuneInString(script[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			return nil, &ParseError{Pos: i, Msg: "invalid UTF-8"}
		case r == '\n' || r == '\r':
			i += size
			continue
		case r != '<':
			out = append(out, Plain(r))
			i += size
			continue
		}

		end := strings.IndexByte(script[i:], '>')
		if end < 0 {
			return nil, &ParseError{Pos: i, Msg: "unterminated <"}
		}
		k, err := parseNamed(script[i+1 : i+end])
		if err != nil {
			return nil, &ParseError{Pos: i, Msg: err.Error()}
		}
		out = append(out, k)
		i += end + 1
	}
	return out, nil
}

func parseNamed(name string) (Key, error) {
	lower := strings.ToLower(name)
	if r, ok := named[lower]; ok {
		return Plain(r), nil
	}
	if rest, ok := strings.CutPrefix(lower, "c-"); ok {
		r, size := utf8.DecodeRuneInString(rest)
		if size > 0 && size == len(rest) {
			if r == '[' {
				return Escape, nil
			}
			return Ctrl(r), nil
		}
	}
	return Key{}, fmt.Errorf("unknown key <%s>", name)
}

// Format renders keys in the notation ParseScript accepts.
func Format(keys []Key) string {
	var b strings.Builder
	for _, k := range keys {
		if k.Ctrl {
			fmt.Fprintf(&b, "<C-%c>", k.Rune)
			continue
		}
		switch k.Rune {
		case vim.KeyEscape:
			b.WriteString("<Esc>")
		case vim.KeyEnter:
			b.WriteString("<CR>")
		case vim.KeyNewline:
			b.WriteString("<NL>")
		case vim.KeyBackspace:
			b.WriteString("<BS>")
		case vim.KeyDelete:
			b.WriteString("<Del>")
		case vim.KeyTab:
			b.WriteString("<Tab>")
		case '<':
			b.WriteString("<lt>")
		default:
			if k.Rune >= 1 && k.Rune <= 26 {
				// Other control characters as their Ctrl+letter spelling.
				fmt.Fprintf(&b, "<C-%c>", 'a'+k.Rune-1)
				continue
			}
			b.WriteRune(k.Rune)
		}
	}
	return b.String()
}
