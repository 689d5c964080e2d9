package keys

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rivo/uniseg"

	"github.com/zjrosen/vimcore/internal/vim"
)

// FromTea converts a Bubble Tea key message into engine keys. It returns nil
// for keys the engine has no use for (arrows, function keys).
//
// Alt-modified keys become Escape followed by the key, as terminals send
// them. Pasted text is split by grapheme cluster so a CRLF pair becomes a
// single Enter.
func FromTea(msg tea.KeyMsg) []Key {
	var out []Key
	if msg.Alt {
		out = append(out, Escape)
	}

	switch msg.Type {
	case tea.KeyRunes:
		if msg.Paste {
			return append(out, splitPaste(string(msg.Runes))...)
		}
		return append(out, Runes(string(msg.Runes))...)
	case tea.KeySpace:
		return append(out, Plain(' '))
	case tea.KeyEnter:
		return append(out, Enter)
	case tea.KeyTab:
		return append(out, Tab)
	case tea.KeyEsc:
		return append(out, Escape)
	case tea.KeyBackspace, tea.KeyCtrlH:
		return append(out, Backspace)
	}

	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		return append(out, Ctrl('a'+rune(msg.Type-tea.KeyCtrlA)))
	}
	return nil
}

// splitPaste turns pasted text into keys. Line breaks of any flavour become
// Enter; everything else is typed literally.
func splitPaste(s string) []Key {
	var out []Key
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		switch cluster {
		case "\r\n", "\r", "\n":
			out = append(out, Plain(vim.KeyEnter))
		default:
			out = append(out, Runes(cluster)...)
		}
	}
	return out
}
