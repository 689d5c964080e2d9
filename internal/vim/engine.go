// Package vim implements a modal (vi-style) editing engine for input buffers.
//
// The engine owns no text. The host passes the current lines and cursor on
// every key event and applies the Action that comes back:
//
//	e := vim.New()
//	action := e.HandleKey('d', false, lines, row, col)
//	host.Apply(action)
//
// Cursor columns are byte offsets and are always kept on UTF-8 boundaries.
// An Engine is not safe for concurrent use; it is meant to be driven from a
// single input loop.
package vim

import (
	"github.com/zjrosen/vimcore/internal/log"
)

// Special keys as delivered to HandleKey.
const (
	KeyEscape    = '\x1b'
	KeyEnter     = '\r'
	KeyNewline   = '\n'
	KeyBackspace = '\x08'
	KeyDelete    = '\x7f'
	KeyTab       = '\t'
	keyCtrlR     = '\x12'
)

// maxCount caps count prefixes so digit runs cannot overflow.
const maxCount = 99999

var emptyBuffer = []string{""}

// Engine is the vim state machine. The zero value is not usable; call New.
type Engine struct {
	mode     Mode
	register Register

	count    int      // accumulated count prefix, 0 when none
	pending  Operator // operator waiting for a motion
	opCount  int      // count typed before the pending operator
	prefix   rune     // 'g' while waiting for the second key of gg
	awaiting rune     // 'f', 'F' or 'r' while waiting for a character
	keys     []rune   // keys of the command being built

	last   *recordedCommand
	insert insertSession

	anchor  *Position
	cmdline []rune

	pasteMode bool
}

// New creates an engine in Normal mode.
func New() *Engine {
	return &Engine{mode: ModeNormal}
}

// State returns the current mode.
func (e *Engine) State() Mode {
	return e.mode
}

// CommandBuffer returns the command line typed so far in Command mode.
func (e *Engine) CommandBuffer() string {
	return string(e.cmdline)
}

// Register returns the contents of the unnamed register.
func (e *Engine) Register() Register {
	return e.register
}

// VisualAnchor returns the fixed end of the visual selection.
func (e *Engine) VisualAnchor() (Position, bool) {
	if e.anchor == nil {
		return Position{}, false
	}
	return *e.anchor, true
}

// PendingOperator returns the operator waiting for a motion, if any.
func (e *Engine) PendingOperator() (Operator, bool) {
	return e.pending, e.pending != 0
}

// PendingKeys returns the keys of the partially typed command (for a
// "showcmd" area), e.g. "2d" or "df".
func (e *Engine) PendingKeys() string {
	return string(e.keys)
}

// PasteMode reports whether ":set paste" is active.
func (e *Engine) PasteMode() bool {
	return e.pasteMode
}

// Reset returns to Normal mode and drops any partially typed command, visual
// selection or command line. The register and the dot-repeat record are kept.
func (e *Engine) Reset() {
	e.mode = ModeNormal
	e.clearPending()
	e.insert = insertSession{}
	e.anchor = nil
	e.cmdline = e.cmdline[:0]
}

// HandleKey processes one key event and returns the action the host must apply.
//
// key is the character (or one of the Key* constants), ctrl reports whether
// Ctrl was held. lines and (row, col) describe the host buffer and are never
// modified. Out-of-range cursors are clamped.
func (e *Engine) HandleKey(key rune, ctrl bool, lines []string, row, col int) Action {
	if len(lines) == 0 {
		lines = emptyBuffer
	}
	row = clampRow(lines, row)
	col = floorBoundary(lines[row], col)

	switch e.mode {
	case ModeInsert:
		return e.handleInsert(key, ctrl, lines, row, col)
	case ModeVisual:
		return e.handleVisual(key, ctrl, lines, row, col)
	case ModeCommand:
		return e.handleCommand(key, ctrl)
	default:
		return e.handleNormal(key, ctrl, lines, row, col)
	}
}

// isEscape reports whether the key leaves the current mode (Esc or Ctrl+[).
func isEscape(key rune, ctrl bool) bool {
	return key == KeyEscape || (ctrl && key == '[')
}

// clearPending drops the operator, count and character-argument state.
func (e *Engine) clearPending() {
	e.count = 0
	e.pending = 0
	e.opCount = 0
	e.prefix = 0
	e.awaiting = 0
	e.keys = e.keys[:0]
}

// abandon clears pending state after an unrecognized key.
func (e *Engine) abandon(key rune) Action {
	if len(e.keys) > 0 {
		log.Debug(log.CatVim, "abandoned command", "keys", string(e.keys), "key", string(key))
	}
	e.clearPending()
	return NoOp{}
}

// accumulateDigit adds a count digit. A leading '0' is not a count.
func (e *Engine) accumulateDigit(key rune) bool {
	if key < '0' || key > '9' || (key == '0' && e.count == 0) {
		return false
	}
	e.count = min(e.count*10+int(key-'0'), maxCount)
	e.keys = append(e.keys, key)
	return true
}

// takeCount returns the count prefix (1 when none was typed) and resets it.
func (e *Engine) takeCount() int {
	n := max(e.count, 1)
	e.count = 0
	return n
}

// takeOperatorCount combines the counts typed before and after the pending
// operator ("2d3w" deletes six words) and resets both.
func (e *Engine) takeOperatorCount() int {
	n := max(e.opCount, 1) * max(e.count, 1)
	e.opCount = 0
	e.count = 0
	return min(n, maxCount)
}

// motionKey folds the two-key gg sequence into a single motion name. wait is
// true when key was a first g; motion is empty when a g was followed by
// anything other than another g.
func (e *Engine) motionKey(key rune) (motion string, wait bool) {
	if e.prefix == 'g' {
		e.prefix = 0
		if key == 'g' {
			e.keys = append(e.keys, key)
			return "gg", false
		}
		return "", false
	}
	if key == 'g' {
		e.prefix = 'g'
		e.keys = append(e.keys, key)
		return "", true
	}
	return string(key), false
}
