package buffer

import "unicode/utf8"

func nextBoundary(s string, i int) int {
	if i >= len(s) {
		return len(s)
	}
	_, size := utf8.DecodeRuneInString(s[i:])
	return i + size
}

func prevBoundary(s string, i int) int {
	if i <= 0 {
		return 0
	}
	_, size := utf8.DecodeLastRuneInString(s[:min(i, len(s))])
	return min(i, len(s)) - size
}

func floorBoundary(s string, i int) int {
	for i > 0 && i < len(s) && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}

func lastRuneStart(s string) int {
	if s == "" {
		return 0
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return len(s) - size
}

func firstNonBlank(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\t' {
			return i
		}
	}
	return 0
}
