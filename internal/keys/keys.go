// Package keys converts terminal key events and key-script text into the
// (rune, ctrl) pairs the vim engine consumes, and defines the playground's
// own key bindings.
package keys

import (
	"github.com/zjrosen/vimcore/internal/vim"
)

// Key is one key event as delivered to vim.Engine.HandleKey.
type Key struct {
	Rune rune
	Ctrl bool
}

// Plain returns a key without modifiers.
func Plain(r rune) Key {
	return Key{Rune: r}
}

// Ctrl returns Ctrl held with r.
func Ctrl(r rune) Key {
	return Key{Rune: r, Ctrl: true}
}

var (
	Escape    = Plain(vim.KeyEscape)
	Enter     = Plain(vim.KeyEnter)
	Backspace = Plain(vim.KeyBackspace)
	Tab       = Plain(vim.KeyTab)
)

// String renders the key in key-script notation.
func (k Key) String() string {
	return Format([]Key{k})
}

// Runes converts plain text into keys, one per rune.
func Runes(s string) []Key {
	out := make([]Key, 0, len(s))
	for _, r := range s {
		out = append(out, Plain(r))
	}
	return out
}
