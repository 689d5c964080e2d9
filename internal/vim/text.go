package vim

import "unicode/utf8"

// Character classes for word motions.
const (
	classBlank = iota
	classWord
	classPunct
)

// runeClass classifies r for word motions. Only ASCII letters, digits and
// underscore count as word characters; every other non-blank rune is punctuation.
func runeClass(r rune) int {
	switch {
	case r == ' ' || r == '\t':
		return classBlank
	case r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'):
		return classWord
	default:
		return classPunct
	}
}

// classAt returns the class of the rune starting at byte offset i.
func classAt(s string, i int) int {
	r, _ := utf8.DecodeRuneInString(s[i:])
	return runeClass(r)
}

// classBefore returns the class of the rune ending at byte offset i.
func classBefore(s string, i int) int {
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return runeClass(r)
}

// nextBoundary returns the offset of the rune after the one at i, or len(s).
func nextBoundary(s string, i int) int {
	if i >= len(s) {
		return len(s)
	}
	_, size := utf8.DecodeRuneInString(s[i:])
	return i + size
}

// prevBoundary returns the offset of the rune before i, or 0.
func prevBoundary(s string, i int) int {
	if i <= 0 {
		return 0
	}
	if i > len(s) {
		i = len(s)
	}
	_, size := utf8.DecodeLastRuneInString(s[:i])
	return i - size
}

// floorBoundary clamps i into [0, len(s)] and moves it back onto a rune start.
func floorBoundary(s string, i int) int {
	if i <= 0 {
		return 0
	}
	if i >= len(s) {
		return len(s)
	}
	for i > 0 && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}

// lastRuneStart returns the offset of the last rune in s (0 for an empty line).
// This is the right-most column the cursor may rest on outside Insert mode.
func lastRuneStart(s string) int {
	if s == "" {
		return 0
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return len(s) - size
}

// advanceRunes moves n runes forward from i, stopping at len(s).
func advanceRunes(s string, i, n int) int {
	for ; n > 0 && i < len(s); n-- {
		i = nextBoundary(s, i)
	}
	return i
}

// retreatRunes moves n runes back from i, stopping at 0.
func retreatRunes(s string, i, n int) int {
	for ; n > 0 && i > 0; n-- {
		i = prevBoundary(s, i)
	}
	return i
}

// firstNonBlank returns the offset of the first byte that is not a space or
// tab, or 0 when the line is blank.
func firstNonBlank(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\t' {
			return i
		}
	}
	return 0
}

// skipClass advances from i over runes of class cls.
func skipClass(s string, i, cls int) int {
	for i < len(s) && classAt(s, i) == cls {
		i = nextBoundary(s, i)
	}
	return i
}

// findForward returns the offset of the count-th ch strictly after col.
func findForward(s string, col int, ch rune, count int) (int, bool) {
	found := 0
	for i, r := range s {
		if i <= col {
			continue
		}
		if r == ch {
			found++
			if found == count {
				return i, true
			}
		}
	}
	return 0, false
}

// findBackward returns the offset of the count-th ch strictly before col.
func findBackward(s string, col int, ch rune, count int) (int, bool) {
	found := 0
	for i := floorBoundary(s, col); i > 0; {
		r, size := utf8.DecodeLastRuneInString(s[:i])
		i -= size
		if r == ch {
			found++
			if found == count {
				return i, true
			}
		}
	}
	return 0, false
}

// lineAt returns lines[row], or "" when row is out of range.
func lineAt(lines []string, row int) string {
	if row < 0 || row >= len(lines) {
		return ""
	}
	return lines[row]
}

// textInRange returns the text covered by the half-open range [start, end),
// joining rows with "\n".
func textInRange(lines []string, start, end Position) string {
	if start.Row == end.Row {
		line := lineAt(lines, start.Row)
		s := floorBoundary(line, start.Col)
		e := floorBoundary(line, end.Col)
		if s >= e {
			return ""
		}
		return line[s:e]
	}

	var out []byte
	for row := start.Row; row <= end.Row && row < len(lines); row++ {
		line := lines[row]
		switch row {
		case start.Row:
			out = append(out, line[floorBoundary(line, start.Col):]...)
		case end.Row:
			out = append(out, '\n')
			out = append(out, line[:floorBoundary(line, end.Col)]...)
		default:
			out = append(out, '\n')
			out = append(out, line...)
		}
	}
	return string(out)
}
