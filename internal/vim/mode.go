package vim

// Mode represents the current vim editing mode.
type Mode int

const (
	// ModeNormal is the default vim mode for navigation and commands.
	ModeNormal Mode = iota
	// ModeInsert is the mode for inserting text.
	ModeInsert
	// ModeVisual is the mode for character-wise visual selection.
	ModeVisual
	// ModeCommand is the ":" command-line mode.
	ModeCommand
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeVisual:
		return "VISUAL"
	case ModeCommand:
		return "COMMAND"
	default:
		return "UNKNOWN"
	}
}

// Label returns the status-line label vim shows for the mode.
func (m Mode) Label() string {
	switch m {
	case ModeNormal:
		return "-- NORMAL --"
	case ModeInsert:
		return "-- INSERT --"
	case ModeVisual:
		return "-- VISUAL --"
	case ModeCommand:
		return ":"
	default:
		return ""
	}
}

// ParseMode converts a mode name ("normal", "insert", ...) to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "normal", "NORMAL":
		return ModeNormal, true
	case "insert", "INSERT":
		return ModeInsert, true
	case "visual", "VISUAL":
		return ModeVisual, true
	case "command", "COMMAND":
		return ModeCommand, true
	}
	return ModeNormal, false
}

// Operator is a command that needs a motion (or a doubled key) to know its range.
// The zero value means no operator is pending.
type Operator int

const (
	OpDelete Operator = iota + 1
	OpChange
	OpYank
)

// Key returns the key that starts the operator.
func (o Operator) Key() rune {
	switch o {
	case OpDelete:
		return 'd'
	case OpChange:
		return 'c'
	case OpYank:
		return 'y'
	default:
		return 0
	}
}

func (o Operator) String() string {
	switch o {
	case OpDelete:
		return "delete"
	case OpChange:
		return "change"
	case OpYank:
		return "yank"
	default:
		return "none"
	}
}

// operatorForKey maps an operator key to its Operator.
func operatorForKey(key rune) Operator {
	switch key {
	case 'd':
		return OpDelete
	case 'c':
		return OpChange
	case 'y':
		return OpYank
	default:
		return 0
	}
}

// Position is a cursor position. Col is a byte offset into the line and is
// always on a UTF-8 boundary.
type Position struct {
	Row int
	Col int
}

// Before reports whether p sorts before o in (row, col) order.
func (p Position) Before(o Position) bool {
	return p.Row < o.Row || (p.Row == o.Row && p.Col < o.Col)
}

// normalizeRange orders two positions so the first is never after the second.
func normalizeRange(a, b Position) (start, end Position) {
	if b.Before(a) {
		return b, a
	}
	return a, b
}

// Register is the single unnamed register holding the last yank or delete.
type Register struct {
	Text     string
	Linewise bool
}
