// Package buffer is a reference host for the vim engine: a multi-line text
// buffer with a byte-offset cursor that applies vim.Action values, keeps an
// undo history and publishes content changes.
//
// A Buffer is not safe for concurrent use. Subscribers receive copies.
package buffer

import (
	"context"
	"strings"

	"github.com/zjrosen/vimcore/internal/log"
	"github.com/zjrosen/vimcore/internal/pubsub"
	"github.com/zjrosen/vimcore/internal/vim"
)

// DefaultUndoLimit is the number of undo steps kept when no limit is set.
const DefaultUndoLimit = 1000

// Snapshot is the buffer content and cursor at one point in time.
type Snapshot struct {
	Lines []string
	Row   int
	Col   int
}

// Text joins the snapshot lines with newlines.
func (s Snapshot) Text() string {
	return strings.Join(s.Lines, "\n")
}

// Buffer holds the text being edited.
type Buffer struct {
	lines []string
	row   int
	col   int
	mode  vim.Mode

	history *history
	// group is true while an Insert session is open; its edits share one
	// undo step.
	group        bool
	groupHasStep bool
	stepped      bool // the action being applied recorded an undo step

	broker *pubsub.Broker[Snapshot]
}

// Option configures a Buffer.
type Option func(*Buffer)

// WithUndoLimit caps the undo history. n <= 0 disables undo.
func WithUndoLimit(n int) Option {
	return func(b *Buffer) {
		b.history.limit = n
	}
}

// New creates a buffer holding text with the cursor at (0, 0).
func New(text string, opts ...Option) *Buffer {
	b := &Buffer{
		lines:   splitLines(text),
		mode:    vim.ModeNormal,
		history: newHistory(DefaultUndoLimit),
		broker:  pubsub.NewBroker[Snapshot](),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}

// Lines returns a copy of the buffer lines.
func (b *Buffer) Lines() []string {
	return append([]string(nil), b.lines...)
}

// View returns the buffer lines without copying. Callers must not modify the
// slice; it is what the engine's HandleKey expects.
func (b *Buffer) View() []string {
	return b.lines
}

// Text returns the buffer content joined with newlines.
func (b *Buffer) Text() string {
	return strings.Join(b.lines, "\n")
}

// Cursor returns the cursor position.
func (b *Buffer) Cursor() (row, col int) {
	return b.row, b.col
}

// Mode returns the mode last reported through a ChangeMode action.
func (b *Buffer) Mode() vim.Mode {
	return b.mode
}

// SetMode overrides the tracked mode, e.g. when vim mode is turned off and
// the buffer behaves as a plain insert-only editor.
func (b *Buffer) SetMode(m vim.Mode) {
	b.mode = m
	b.group = false
	b.clampCursor()
}

// SetCursor moves the cursor, clamping it into the buffer.
func (b *Buffer) SetCursor(row, col int) {
	b.row, b.col = row, col
	b.clampCursor()
}

// Snapshot returns a copy of the current content and cursor.
func (b *Buffer) Snapshot() Snapshot {
	return Snapshot{Lines: b.Lines(), Row: b.row, Col: b.col}
}

// Reset replaces the content with text and clears the history.
func (b *Buffer) Reset(text string) {
	b.lines = splitLines(text)
	b.row, b.col = 0, 0
	b.mode = vim.ModeNormal
	b.group = false
	b.history.clear()
	b.publish(pubsub.UpdatedEvent)
}

// Subscribe returns a channel of content changes until ctx is done.
func (b *Buffer) Subscribe(ctx context.Context) <-chan pubsub.Event[Snapshot] {
	return b.broker.Subscribe(ctx)
}

// Close closes all subscriptions.
func (b *Buffer) Close() {
	b.broker.Close()
}

// CanUndo reports whether Undo would change anything.
func (b *Buffer) CanUndo() bool {
	return len(b.history.undo) > 0
}

// CanRedo reports whether Redo would change anything.
func (b *Buffer) CanRedo() bool {
	return len(b.history.redo) > 0
}

// Undo restores the state before the last change.
func (b *Buffer) Undo() bool {
	if !b.undo() {
		return false
	}
	b.publish(pubsub.UpdatedEvent)
	return true
}

// Redo re-applies the last undone change.
func (b *Buffer) Redo() bool {
	if !b.redo() {
		return false
	}
	b.publish(pubsub.UpdatedEvent)
	return true
}

func (b *Buffer) undo() bool {
	s, ok := b.history.popUndo(b.Snapshot())
	if !ok {
		log.Debug(log.CatBuffer, "nothing to undo")
		return false
	}
	b.restore(s)
	log.Debug(log.CatBuffer, "undo", "remaining", len(b.history.undo))
	return true
}

func (b *Buffer) redo() bool {
	s, ok := b.history.popRedo(b.Snapshot())
	if !ok {
		log.Debug(log.CatBuffer, "nothing to redo")
		return false
	}
	b.restore(s)
	return true
}

func (b *Buffer) restore(s Snapshot) {
	b.lines = s.Lines
	b.row, b.col = s.Row, s.Col
	b.group = false
	b.clampCursor()
}

func (b *Buffer) publish(t pubsub.EventType) {
	b.broker.Publish(t, b.Snapshot())
}

// clampCursor keeps the cursor inside the buffer and on a rune boundary.
// Outside Insert mode the cursor rests on a character, not past the end.
func (b *Buffer) clampCursor() {
	if len(b.lines) == 0 {
		b.lines = []string{""}
	}
	b.row = max(min(b.row, len(b.lines)-1), 0)
	line := b.lines[b.row]
	b.col = floorBoundary(line, max(min(b.col, len(line)), 0))
	if b.mode != vim.ModeInsert {
		b.col = min(b.col, lastRuneStart(line))
	}
}
