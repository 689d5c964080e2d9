package vim

import "strings"

func (e *Engine) handleNormal(key rune, ctrl bool, lines []string, row, col int) Action {
	if (ctrl && (key == 'r' || key == 'R')) || key == keyCtrlR {
		e.clearPending()
		return Redo{}
	}
	if ctrl || key == KeyEscape {
		return e.abandon(key)
	}

	if e.awaiting != 0 {
		cmd := e.awaiting
		e.awaiting = 0
		return e.handleCharArgument(cmd, key, lines, row, col)
	}

	motion, wait := e.motionKey(key)
	if wait {
		return NoOp{}
	}
	if motion == "" {
		return e.abandon(key)
	}
	if motion != "gg" && e.accumulateDigit(key) {
		return NoOp{}
	}

	if e.pending != 0 {
		return e.handleOperatorKey(motion, key, lines, row, col)
	}

	if isMotion(motion) {
		pos, _ := ResolveMotion(motion, e.takeCount(), lines, row, col)
		e.clearPending()
		return MoveCursor{Row: pos.Row, Col: restingCol(lines[pos.Row], pos.Col)}
	}

	switch key {
	case 'f', 'F', 'r':
		e.awaiting = key
		e.keys = append(e.keys, key)
		return NoOp{}

	case 'i', 'a', 'A', 'I', 'o', 'O':
		count := e.takeCount()
		e.clearPending()
		return e.enterInsert(&recordedCommand{kind: recordInsert, count: count, keys: []rune{key}}, lines, row, col)

	case 'v':
		e.clearPending()
		e.mode = ModeVisual
		e.anchor = &Position{Row: row, Col: col}
		return ChangeMode{Mode: ModeVisual}

	case ':':
		e.clearPending()
		e.mode = ModeCommand
		e.cmdline = e.cmdline[:0]
		return ChangeMode{Mode: ModeCommand}

	case 'd', 'c', 'y':
		e.opCount = e.count
		e.count = 0
		e.pending = operatorForKey(key)
		e.keys = append(e.keys, key)
		return NoOp{}

	case 'x':
		count := e.takeCount()
		e.clearPending()
		action := e.deleteChars(count, lines, row, col)
		if _, noop := action.(NoOp); !noop {
			e.record(&recordedCommand{kind: recordSimple, count: count, keys: []rune{'x'}})
		}
		return action

	case 'p', 'P':
		count := e.takeCount()
		e.clearPending()
		action := e.paste(key, count)
		if _, noop := action.(NoOp); !noop {
			e.record(&recordedCommand{kind: recordSimple, count: count, keys: []rune{key}})
		}
		return action

	case 'u':
		e.clearPending()
		return Undo{}

	case '.':
		count := e.count
		e.clearPending()
		return e.repeatLast(count, lines, row, col)
	}

	return e.abandon(key)
}

// deleteChars deletes count characters from the cursor (x) and yanks them.
func (e *Engine) deleteChars(count int, lines []string, row, col int) Action {
	line := lineAt(lines, row)
	if col >= len(line) {
		return NoOp{}
	}
	end := advanceRunes(line, col, count)
	e.register = Register{Text: line[col:end]}
	return DeleteRange{StartRow: row, StartCol: col, EndRow: row, EndCol: end}
}

// paste returns the paste action for p (after) or P (before), repeating the
// register count times.
func (e *Engine) paste(key rune, count int) Action {
	if e.register.Text == "" {
		return NoOp{}
	}
	text := e.register.Text
	if count > 1 {
		if e.register.Linewise {
			parts := make([]string, count)
			for i := range parts {
				parts[i] = text
			}
			text = strings.Join(parts, "\n")
		} else {
			text = strings.Repeat(text, count)
		}
	}
	if key == 'P' {
		return PasteBefore{Text: text, Linewise: e.register.Linewise}
	}
	return PasteAfter{Text: text, Linewise: e.register.Linewise}
}
