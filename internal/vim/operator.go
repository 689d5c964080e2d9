package vim

import "strings"

// handleOperatorKey interprets the key typed after d, c or y.
func (e *Engine) handleOperatorKey(motion string, key rune, lines []string, row, col int) Action {
	op := e.pending

	switch {
	case motion == string(op.Key()):
		e.keys = append(e.keys, key)
		return e.completeOperator(op, e.takeOperatorCount(), motion, lines, row, col)
	case motion == "f" || motion == "F":
		e.awaiting = key
		e.keys = append(e.keys, key)
		return NoOp{}
	case isMotion(motion):
		if motion != "gg" {
			e.keys = append(e.keys, key)
		}
		return e.completeOperator(op, e.takeOperatorCount(), motion, lines, row, col)
	}

	return e.abandon(key)
}

// completeOperator runs op over the range selected by keys, records it for
// dot-repeat and, for change, starts the insert session.
func (e *Engine) completeOperator(op Operator, count int, keys string, lines []string, row, col int) Action {
	actions, ok := e.operatorEdit(op, count, keys, lines, row, col)
	if !ok {
		motion := []rune(keys)
		return e.abandon(motion[len(motion)-1])
	}
	e.clearPending()

	rec := &recordedCommand{kind: recordOperator, operator: op, count: count, keys: []rune(keys)}
	e.record(rec)

	if op == OpChange {
		e.beginInsert(rec)
		return batch(append(actions, ChangeMode{Mode: ModeInsert})...)
	}
	return batch(actions...)
}

// operatorEdit updates the register for op over the range selected by keys and
// returns the primitive edits. ok is false when the motion fails or selects
// nothing for delete and yank.
func (e *Engine) operatorEdit(op Operator, count int, keys string, lines []string, row, col int) ([]Action, bool) {
	if keys == string(op.Key()) {
		return e.lineEdit(op, count, lines, row), true
	}

	start, end, ok := operatorRange(keys, count, lines, row, col)
	if !ok {
		return nil, false
	}
	if start == end {
		return nil, op == OpChange
	}

	e.register = Register{Text: textInRange(lines, start, end)}
	switch op {
	case OpYank:
		return []Action{MoveCursor{Row: start.Row, Col: start.Col}}, true
	default:
		return []Action{deleteRange(start, end)}, true
	}
}

// lineEdit handles the doubled operators dd, cc and yy over count lines.
func (e *Engine) lineEdit(op Operator, count int, lines []string, row int) []Action {
	end := min(row+count, len(lines))
	e.register = Register{Text: strings.Join(lines[row:end], "\n"), Linewise: true}

	switch op {
	case OpDelete:
		actions := make([]Action, end-row)
		for i := range actions {
			actions[i] = DeleteLine{Row: row}
		}
		return actions
	case OpChange:
		return []Action{DeleteRange{StartRow: row, StartCol: 0, EndRow: end - 1, EndCol: len(lines[end-1])}}
	default:
		return nil
	}
}

// operatorRange resolves the half-open range an operator covers for a motion.
func operatorRange(keys string, count int, lines []string, row, col int) (start, end Position, ok bool) {
	line := lineAt(lines, row)
	cursor := Position{Row: row, Col: col}

	switch {
	case keys == "$":
		return cursor, Position{Row: row, Col: len(line)}, true
	case keys == "0":
		return Position{Row: row, Col: 0}, cursor, true
	case len(keys) > 1 && keys[0] == 'f':
		target, found := ResolveMotion(keys, count, lines, row, col)
		if !found {
			return Position{}, Position{}, false
		}
		// f includes the character it lands on.
		return cursor, Position{Row: row, Col: nextBoundary(line, target.Col)}, true
	case len(keys) > 1 && keys[0] == 'F':
		target, found := ResolveMotion(keys, count, lines, row, col)
		if !found {
			return Position{}, Position{}, false
		}
		return target, cursor, true
	}

	target, found := ResolveMotion(keys, count, lines, row, col)
	if !found {
		return Position{}, Position{}, false
	}
	start, end = normalizeRange(cursor, target)
	return start, end, true
}

func deleteRange(start, end Position) DeleteRange {
	return DeleteRange{StartRow: start.Row, StartCol: start.Col, EndRow: end.Row, EndCol: end.Col}
}
