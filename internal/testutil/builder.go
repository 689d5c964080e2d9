// Package testutil builds editing sessions for tests: a buffer seeded with
// text, an engine, and a key script fed through both.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/vimcore/internal/buffer"
	"github.com/zjrosen/vimcore/internal/keys"
	"github.com/zjrosen/vimcore/internal/vim"
)

// Builder accumulates a session setup and plays it on Build.
type Builder struct {
	t       *testing.T
	text    string
	row     int
	col     int
	opts    []buffer.Option
	scripts []string
}

// Session is a built session. Result merges the ApplyResult of every key.
type Session struct {
	Buffer  *buffer.Buffer
	Engine  *vim.Engine
	Result  buffer.ApplyResult
	Actions []vim.Action
}

// NewBuilder starts a session over text.
func NewBuilder(t *testing.T, text string) *Builder {
	t.Helper()
	return &Builder{t: t, text: text}
}

// WithCursor places the cursor before any key is fed.
func (b *Builder) WithCursor(row, col int) *Builder {
	b.row, b.col = row, col
	return b
}

// WithOptions passes options to buffer.New.
func (b *Builder) WithOptions(opts ...buffer.Option) *Builder {
	b.opts = append(b.opts, opts...)
	return b
}

// Keys appends a key script; scripts are played in the order added.
func (b *Builder) Keys(script string) *Builder {
	b.scripts = append(b.scripts, script)
	return b
}

// Build creates the buffer and engine and feeds every script.
func (b *Builder) Build() *Session {
	b.t.Helper()

	s := &Session{
		Buffer: buffer.New(b.text, b.opts...),
		Engine: vim.New(),
	}
	b.t.Cleanup(s.Buffer.Close)
	s.Buffer.SetCursor(b.row, b.col)

	for _, script := range b.scripts {
		ks, err := keys.ParseScript(script)
		require.NoError(b.t, err, "script %q", script)
		s.Feed(ks...)
	}
	return s
}

// Feed sends keys through the engine and applies each action.
func (s *Session) Feed(ks ...keys.Key) {
	for _, k := range ks {
		row, col := s.Buffer.Cursor()
		action := s.Engine.HandleKey(k.Rune, k.Ctrl, s.Buffer.View(), row, col)
		s.Actions = append(s.Actions, action)

		res := s.Buffer.Apply(action)
		s.Result.Changed = s.Result.Changed || res.Changed
		s.Result.Submitted = s.Result.Submitted || res.Submitted
		s.Result.Cleared = s.Result.Cleared || res.Cleared
		s.Result.Messages = append(s.Result.Messages, res.Messages...)
	}
}

// Cursor returns the buffer cursor as a pair for compact assertions.
func (s *Session) Cursor() [2]int {
	row, col := s.Buffer.Cursor()
	return [2]int{row, col}
}
