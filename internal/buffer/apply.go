package buffer

import (
	"strings"

	"github.com/zjrosen/vimcore/internal/log"
	"github.com/zjrosen/vimcore/internal/pubsub"
	"github.com/zjrosen/vimcore/internal/vim"
)

// ApplyResult reports the effects of an action that are not buffer edits.
type ApplyResult struct {
	Changed   bool     // content changed
	Submitted bool     // Submit was applied
	Cleared   bool     // ClearInput was applied
	Messages  []string // CommandOutput messages, in order
}

// Apply applies a (possibly batched) action. A Batch is applied in order and
// forms a single undo step; the edits of an Insert session are grouped with
// the command that opened it.
func (b *Buffer) Apply(action vim.Action) ApplyResult {
	var res ApplyResult

	b.stepped = false
	if vim.ChangesContent(action) {
		b.stepped = b.checkpoint()
	}

	for _, a := range vim.Flatten(action) {
		b.applyOne(a, &res)
	}
	// Positions are only clamped to the resting column once the whole batch
	// is applied: "A" moves past the end before it enters Insert mode.
	b.clampCursor()

	if res.Changed {
		b.publish(pubsub.UpdatedEvent)
	}
	if res.Cleared {
		b.publish(pubsub.DeletedEvent)
	}
	return res
}

// checkpoint records an undo step unless the open Insert session already has
// one. It reports whether a step was recorded.
func (b *Buffer) checkpoint() bool {
	if b.group {
		if b.groupHasStep {
			return false
		}
		b.groupHasStep = true
	}
	b.history.push(b.Snapshot())
	return true
}

func (b *Buffer) applyOne(a vim.Action, res *ApplyResult) {
	switch a := a.(type) {
	case vim.NoOp:
	case vim.InsertChar:
		b.insertText(string(a.Ch))
		res.Changed = true
	case vim.InsertNewline:
		b.insertNewline()
		res.Changed = true
	case vim.Backspace:
		res.Changed = b.backspace() || res.Changed
	case vim.DeleteRange:
		b.deleteRange(a)
		res.Changed = true
	case vim.DeleteLine:
		b.deleteLine(a.Row)
		res.Changed = true
	case vim.MoveCursor:
		p := b.clampPos(a.Row, a.Col)
		b.row, b.col = p.Row, p.Col
	case vim.ChangeMode:
		b.changeMode(a.Mode)
	case vim.ReplaceChar:
		res.Changed = b.replaceChar(a) || res.Changed
	case vim.PasteAfter:
		b.paste(a.Text, a.Linewise, true)
		res.Changed = true
	case vim.PasteBefore:
		b.paste(a.Text, a.Linewise, false)
		res.Changed = true
	case vim.Submit:
		res.Submitted = true
	case vim.ClearInput:
		b.lines = []string{""}
		b.row, b.col = 0, 0
		res.Cleared = true
		res.Changed = true
	case vim.Undo:
		res.Changed = b.undo() || res.Changed
	case vim.Redo:
		res.Changed = b.redo() || res.Changed
	case vim.CommandOutput:
		res.Messages = append(res.Messages, a.Message)
	default:
		log.Warn(log.CatBuffer, "unhandled action", "type", a)
	}
}

func (b *Buffer) changeMode(m vim.Mode) {
	prev := b.mode
	b.mode = m
	switch {
	case m == vim.ModeInsert && prev != vim.ModeInsert:
		b.group = true
		// A change command (cw, cc, o) already recorded the step.
		b.groupHasStep = b.stepped
	case m != vim.ModeInsert && prev == vim.ModeInsert:
		b.group = false
		b.groupHasStep = false
		// Leaving Insert mode steps back onto the last inserted character.
		b.col = prevBoundary(b.lines[b.row], b.col)
	}
}

func (b *Buffer) insertText(s string) {
	line := b.lines[b.row]
	b.lines[b.row] = line[:b.col] + s + line[b.col:]
	b.col += len(s)
}

func (b *Buffer) insertNewline() {
	line := b.lines[b.row]
	head, tail := line[:b.col], line[b.col:]
	b.lines[b.row] = head
	b.lines = insertLines(b.lines, b.row+1, tail)
	b.row++
	b.col = 0
}

func (b *Buffer) backspace() bool {
	if b.col > 0 {
		line := b.lines[b.row]
		start := prevBoundary(line, b.col)
		b.lines[b.row] = line[:start] + line[b.col:]
		b.col = start
		return true
	}
	if b.row == 0 {
		return false
	}
	prev := b.lines[b.row-1]
	b.lines[b.row-1] = prev + b.lines[b.row]
	b.lines = removeLines(b.lines, b.row, b.row+1)
	b.row--
	b.col = len(prev)
	return true
}

func (b *Buffer) deleteRange(r vim.DeleteRange) {
	start := b.clampPos(r.StartRow, r.StartCol)
	end := b.clampPos(r.EndRow, r.EndCol)
	if end.Before(start) {
		start, end = end, start
	}

	head := b.lines[start.Row][:start.Col]
	tail := b.lines[end.Row][end.Col:]
	b.lines[start.Row] = head + tail
	b.lines = removeLines(b.lines, start.Row+1, end.Row+1)
	b.row, b.col = start.Row, start.Col
}

func (b *Buffer) deleteLine(row int) {
	if row < 0 || row >= len(b.lines) {
		return
	}
	b.lines = removeLines(b.lines, row, row+1)
	if len(b.lines) == 0 {
		b.lines = []string{""}
	}
	b.row = min(row, len(b.lines)-1)
	b.col = firstNonBlank(b.lines[b.row])
}

func (b *Buffer) replaceChar(r vim.ReplaceChar) bool {
	if r.Row < 0 || r.Row >= len(b.lines) {
		return false
	}
	line := b.lines[r.Row]
	if r.Col < 0 || r.Col >= len(line) {
		return false
	}
	col := floorBoundary(line, r.Col)
	next := nextBoundary(line, col)
	b.lines[r.Row] = line[:col] + string(r.Ch) + line[next:]
	b.row, b.col = r.Row, col
	return true
}

// paste inserts text. Line-wise text becomes whole lines below (after) or
// above the cursor line. Character-wise text is inserted at the cursor
// offset in both directions, so a deleted span put back at the same cursor
// restores the line. Single-line text leaves the cursor on its last rune.
func (b *Buffer) paste(text string, linewise, after bool) {
	if linewise {
		at := b.row
		if after {
			at++
		}
		b.lines = insertLines(b.lines, at, strings.Split(text, "\n")...)
		b.row = at
		b.col = firstNonBlank(b.lines[at])
		return
	}

	line := b.lines[b.row]
	at := floorBoundary(line, min(b.col, len(line)))

	parts := strings.Split(text, "\n")
	if len(parts) == 1 {
		b.lines[b.row] = line[:at] + text + line[at:]
		b.col = at + lastRuneStart(text)
		return
	}

	// Multi-line character-wise text splits the cursor line around it and
	// leaves the cursor at the start of the pasted text.
	last := len(parts) - 1
	tail := line[at:]
	b.lines[b.row] = line[:at] + parts[0]
	parts[last] += tail
	b.lines = insertLines(b.lines, b.row+1, parts[1:]...)
	b.col = at
}

type pos struct{ Row, Col int }

func (p pos) Before(o pos) bool {
	return p.Row < o.Row || (p.Row == o.Row && p.Col < o.Col)
}

func (b *Buffer) clampPos(row, col int) pos {
	row = max(min(row, len(b.lines)-1), 0)
	line := b.lines[row]
	return pos{Row: row, Col: floorBoundary(line, max(min(col, len(line)), 0))}
}

func insertLines(lines []string, at int, add ...string) []string {
	out := make([]string, 0, len(lines)+len(add))
	out = append(out, lines[:at]...)
	out = append(out, add...)
	return append(out, lines[at:]...)
}

func removeLines(lines []string, from, to int) []string {
	if from >= to {
		return lines
	}
	return append(lines[:from:from], lines[to:]...)
}
