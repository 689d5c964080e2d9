package vim

import "unicode"

// handleCharArgument completes f, F or r with the character that follows.
func (e *Engine) handleCharArgument(cmd, ch rune, lines []string, row, col int) Action {
	if !isLiteral(ch) {
		return e.abandon(ch)
	}
	e.keys = append(e.keys, ch)

	if cmd == 'r' {
		e.clearPending()
		line := lineAt(lines, row)
		if col >= len(line) {
			return NoOp{}
		}
		e.record(&recordedCommand{kind: recordSimple, count: 1, keys: []rune{'r', ch}})
		return ReplaceChar{Row: row, Col: col, Ch: ch}
	}

	motion := string(cmd) + string(ch)
	if e.pending != 0 {
		return e.completeOperator(e.pending, e.takeOperatorCount(), motion, lines, row, col)
	}

	pos, ok := ResolveMotion(motion, e.takeCount(), lines, row, col)
	e.clearPending()
	if !ok {
		return NoOp{}
	}
	return MoveCursor{Row: pos.Row, Col: pos.Col}
}

// isLiteral reports whether r can be inserted or searched for as text.
func isLiteral(r rune) bool {
	return r == KeyTab || (r >= 0 && r <= unicode.MaxRune && !unicode.IsControl(r))
}
