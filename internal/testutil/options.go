package testutil

import "github.com/zjrosen/vimcore/internal/buffer"

// UndoLimit caps the session buffer's history.
func UndoLimit(n int) buffer.Option {
	return buffer.WithUndoLimit(n)
}

// NoUndo disables the session buffer's history.
func NoUndo() buffer.Option {
	return buffer.WithUndoLimit(0)
}
