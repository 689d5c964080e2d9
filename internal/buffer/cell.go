package buffer

import "github.com/rivo/uniseg"

// Cell is the grapheme under the cursor and where it sits on screen.
type Cell struct {
	Grapheme string // " " when the cursor is past the end of the line
	Start    int    // byte offset of the cluster in the line
	Column   int    // display column of the cell's left edge
	Width    int    // display width in cells (2 for wide runes)
}

// CursorCell returns the grapheme cluster containing the cursor. A cursor
// inside a multi-rune cluster (e.g. a flag or a combining sequence) reports
// the whole cluster.
func (b *Buffer) CursorCell() Cell {
	line := b.lines[b.row]
	column := 0

	g := uniseg.NewGraphemes(line)
	for g.Next() {
		start, end := g.Positions()
		if b.col < end {
			return Cell{Grapheme: g.Str(), Start: start, Column: column, Width: max(g.Width(), 1)}
		}
		column += g.Width()
	}
	return Cell{Grapheme: " ", Start: len(line), Column: column, Width: 1}
}
