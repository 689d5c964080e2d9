package vim

import "slices"

// insertSession tracks what is typed between entering and leaving Insert mode
// so the session can be repeated with a count or with dot.
type insertSession struct {
	origin *recordedCommand // command that entered Insert mode, nil for visual c
	typed  []rune           // literal runes, KeyBackspace and KeyNewline
}

func (e *Engine) handleInsert(key rune, ctrl bool, lines []string, row, col int) Action {
	if isEscape(key, ctrl) || (ctrl && key == 'c') {
		return e.exitInsert()
	}
	if ctrl {
		return NoOp{}
	}

	switch key {
	case KeyBackspace, KeyDelete:
		e.insert.typed = append(e.insert.typed, KeyBackspace)
		return Backspace{}
	case KeyEnter, KeyNewline:
		e.insert.typed = append(e.insert.typed, KeyNewline)
		return InsertNewline{}
	}

	if !isLiteral(key) {
		return NoOp{}
	}
	e.insert.typed = append(e.insert.typed, key)
	return InsertChar{Ch: key}
}

// enterInsert moves the cursor for an insert command (i, a, A, I, o, O) and
// switches to Insert mode.
func (e *Engine) enterInsert(origin *recordedCommand, lines []string, row, col int) Action {
	actions := primeInsert(origin.keys[0], lines, row, col)
	e.beginInsert(origin)
	return batch(append(actions, ChangeMode{Mode: ModeInsert})...)
}

func (e *Engine) beginInsert(origin *recordedCommand) {
	e.clearPending()
	e.anchor = nil
	e.mode = ModeInsert
	e.insert = insertSession{origin: origin}
}

// exitInsert returns to Normal mode. Counted inserts ("3ihi<Esc>") repeat
// the typed text before leaving.
func (e *Engine) exitInsert() Action {
	session := e.insert
	e.insert = insertSession{}
	e.mode = ModeNormal
	e.clearPending()

	var actions []Action
	if session.origin != nil && len(session.typed) > 0 {
		rec := *session.origin
		rec.inserted = slices.Clone(session.typed)
		e.record(&rec)

		if rec.kind == recordInsert {
			entry := rec.keys[0]
			for range rec.count - 1 {
				if entry == 'o' || entry == 'O' {
					actions = append(actions, InsertNewline{})
				}
				actions = append(actions, typedActions(rec.inserted)...)
			}
		}
	}

	return batch(append(actions, ChangeMode{Mode: ModeNormal})...)
}

// primeInsert returns the cursor movements that precede typing for an insert
// command.
func primeInsert(entry rune, lines []string, row, col int) []Action {
	line := lineAt(lines, row)
	switch entry {
	case 'a':
		return []Action{MoveCursor{Row: row, Col: nextBoundary(line, col)}}
	case 'A':
		return []Action{MoveCursor{Row: row, Col: len(line)}}
	case 'I':
		return []Action{MoveCursor{Row: row, Col: firstNonBlank(line)}}
	case 'o':
		return []Action{MoveCursor{Row: row, Col: len(line)}, InsertNewline{}}
	case 'O':
		return []Action{MoveCursor{Row: row, Col: 0}, InsertNewline{}, MoveCursor{Row: row, Col: 0}}
	default:
		return []Action{MoveCursor{Row: row, Col: col}}
	}
}

// typedActions replays recorded Insert-mode keys as actions.
func typedActions(typed []rune) []Action {
	actions := make([]Action, 0, len(typed))
	for _, r := range typed {
		switch r {
		case KeyBackspace:
			actions = append(actions, Backspace{})
		case KeyNewline:
			actions = append(actions, InsertNewline{})
		default:
			actions = append(actions, InsertChar{Ch: r})
		}
	}
	return actions
}
