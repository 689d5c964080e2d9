package vim

import "unicode/utf8"

// ResolveMotion computes where a motion lands from (row, col).
//
// motion is the motion's key sequence: "h", "l", "j", "k", "w", "b", "e",
// "0", "^", "$", "gg", "G", or "f"/"F" followed by the target character.
// count < 1 is treated as 1. The second result is false for unknown motions
// and for f/F searches with fewer than count matches.
//
// "l" may land on len(line) here; Normal and Visual mode clamp the result
// onto the last character through restingCol.
func ResolveMotion(motion string, count int, lines []string, row, col int) (Position, bool) {
	if count < 1 {
		count = 1
	}
	if len(lines) == 0 {
		lines = emptyBuffer
	}
	row = clampRow(lines, row)
	line := lines[row]
	col = floorBoundary(line, col)

	switch motion {
	case "h":
		return Position{Row: row, Col: retreatRunes(line, col, count)}, true
	case "l":
		return Position{Row: row, Col: advanceRunes(line, col, count)}, true
	case "0":
		return Position{Row: row, Col: 0}, true
	case "^":
		return Position{Row: row, Col: firstNonBlank(line)}, true
	case "$":
		return Position{Row: row, Col: lastRuneStart(line)}, true
	case "w":
		return wordForward(lines, row, col, count), true
	case "b":
		return wordBackward(lines, row, col, count), true
	case "e":
		return wordEnd(lines, row, col, count), true
	case "j":
		target := min(row+count, len(lines)-1)
		return Position{Row: target, Col: clampColumn(lines[target], col)}, true
	case "k":
		target := max(row-count, 0)
		return Position{Row: target, Col: clampColumn(lines[target], col)}, true
	case "gg":
		return Position{}, true
	case "G":
		last := len(lines) - 1
		return Position{Row: last, Col: lastRuneStart(lines[last])}, true
	}

	if len(motion) > 1 && (motion[0] == 'f' || motion[0] == 'F') {
		ch, _ := utf8.DecodeRuneInString(motion[1:])
		var (
			pos int
			ok  bool
		)
		if motion[0] == 'f' {
			pos, ok = findForward(line, col, ch, count)
		} else {
			pos, ok = findBackward(line, col, ch, count)
		}
		if !ok {
			return Position{}, false
		}
		return Position{Row: row, Col: pos}, true
	}

	return Position{}, false
}

// isMotion reports whether motion is handled by ResolveMotion without a
// character argument.
func isMotion(motion string) bool {
	switch motion {
	case "h", "l", "j", "k", "w", "b", "e", "0", "^", "$", "gg", "G":
		return true
	}
	return false
}

// clampColumn keeps col within the last valid index of line, on a rune start.
func clampColumn(line string, col int) int {
	return floorBoundary(line, min(col, max(len(line)-1, 0)))
}

// restingCol clamps a column to where the cursor may rest outside Insert mode.
func restingCol(line string, col int) int {
	return min(floorBoundary(line, col), lastRuneStart(line))
}

func clampRow(lines []string, row int) int {
	return max(min(row, len(lines)-1), 0)
}

// wordForward moves count words forward (w). At the end of a line it lands on
// the first non-blank character of the next line.
func wordForward(lines []string, row, col, count int) Position {
	r, c := row, col
	for range count {
		line := lineAt(lines, r)
		if c >= len(line) {
			if r+1 < len(lines) {
				r++
				c = firstNonBlank(lines[r])
			}
			continue
		}

		pos := c
		if cls := classAt(line, pos); cls != classBlank {
			pos = skipClass(line, pos, cls)
		}
		pos = skipClass(line, pos, classBlank)

		if pos >= len(line) && r+1 < len(lines) {
			r++
			c = firstNonBlank(lines[r])
		} else {
			c = pos
		}
	}
	return Position{Row: r, Col: c}
}

// wordBackward moves count words backward (b), continuing from the end of the
// previous line when it reaches column 0.
func wordBackward(lines []string, row, col, count int) Position {
	r, c := row, col
	for range count {
		if c == 0 {
			if r == 0 {
				break
			}
			r--
			c = len(lines[r])
		}

		line := lineAt(lines, r)
		pos := c
		for pos > 0 && classBefore(line, pos) == classBlank {
			pos = prevBoundary(line, pos)
		}
		if pos == 0 {
			c = 0
			continue
		}

		cls := classBefore(line, pos)
		for pos > 0 && classBefore(line, pos) == cls {
			pos = prevBoundary(line, pos)
		}
		c = pos
	}
	return Position{Row: r, Col: c}
}

// wordEnd moves to the last character of the count-th following word (e).
func wordEnd(lines []string, row, col, count int) Position {
	r, c := row, col
	for range count {
		line := lineAt(lines, r)
		pos := c
		if pos < len(line) {
			pos = nextBoundary(line, pos)
		}

		for {
			line = lineAt(lines, r)
			pos = skipClass(line, pos, classBlank)
			if pos < len(line) || r+1 >= len(lines) {
				break
			}
			r++
			pos = 0
		}

		line = lineAt(lines, r)
		if pos >= len(line) {
			c = lastRuneStart(line)
			continue
		}

		cls := classAt(line, pos)
		for {
			next := nextBoundary(line, pos)
			if next >= len(line) || classAt(line, next) != cls {
				break
			}
			pos = next
		}
		c = pos
	}
	return Position{Row: r, Col: c}
}
