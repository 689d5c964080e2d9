package vim

func (e *Engine) handleVisual(key rune, ctrl bool, lines []string, row, col int) Action {
	if isEscape(key, ctrl) {
		return e.exitVisual()
	}
	if ctrl {
		return e.abandon(key)
	}

	if e.awaiting != 0 {
		cmd := e.awaiting
		e.awaiting = 0
		if !isLiteral(key) {
			return e.abandon(key)
		}
		pos, ok := ResolveMotion(string(cmd)+string(key), e.takeCount(), lines, row, col)
		e.clearPending()
		if !ok {
			return NoOp{}
		}
		return MoveCursor{Row: pos.Row, Col: pos.Col}
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

	if isMotion(motion) {
		pos, _ := ResolveMotion(motion, e.takeCount(), lines, row, col)
		e.clearPending()
		return MoveCursor{Row: pos.Row, Col: restingCol(lines[pos.Row], pos.Col)}
	}

	switch key {
	case 'v':
		return e.exitVisual()
	case 'f', 'F':
		e.awaiting = key
		e.keys = append(e.keys, key)
		return NoOp{}
	case 'd', 'x':
		return e.visualOperator(OpDelete, lines, row, col)
	case 'c':
		return e.visualOperator(OpChange, lines, row, col)
	case 'y':
		return e.visualOperator(OpYank, lines, row, col)
	}

	return e.abandon(key)
}

func (e *Engine) exitVisual() Action {
	e.clearPending()
	e.anchor = nil
	e.mode = ModeNormal
	return ChangeMode{Mode: ModeNormal}
}

// visualSelection returns the selected range. The selection runs from the
// earlier of anchor and cursor up to, not including, the later one, so a
// selection extended rightwards leaves out the character under the cursor and
// the same two positions give the same range in either direction. When the
// two coincide the character under the cursor is selected.
func (e *Engine) visualSelection(lines []string, row, col int) (start, end Position) {
	cursor := Position{Row: row, Col: col}
	anchor := cursor
	if e.anchor != nil {
		anchor = *e.anchor
		anchor.Row = clampRow(lines, anchor.Row)
		anchor.Col = floorBoundary(lines[anchor.Row], anchor.Col)
	}
	if anchor == cursor {
		return cursor, Position{Row: row, Col: nextBoundary(lines[row], col)}
	}
	return normalizeRange(anchor, cursor)
}

// visualOperator applies op to the selection and leaves Visual mode.
func (e *Engine) visualOperator(op Operator, lines []string, row, col int) Action {
	start, end := e.visualSelection(lines, row, col)
	e.clearPending()
	e.anchor = nil
	e.mode = ModeNormal

	var edit []Action
	if start != end {
		e.register = Register{Text: textInRange(lines, start, end)}
		edit = append(edit, deleteRange(start, end))
	}

	switch op {
	case OpYank:
		return Batch{Actions: []Action{MoveCursor{Row: start.Row, Col: start.Col}, ChangeMode{Mode: ModeNormal}}}
	case OpChange:
		e.beginInsert(nil)
		return batch(append(edit, ChangeMode{Mode: ModeInsert})...)
	default:
		return batch(append(edit, ChangeMode{Mode: ModeNormal})...)
	}
}
