// Package replay runs a key script against a fresh buffer and engine and
// reports the outcome. It backs the replay command and end-to-end tests.
package replay

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/zjrosen/vimcore/internal/buffer"
	"github.com/zjrosen/vimcore/internal/keys"
	"github.com/zjrosen/vimcore/internal/log"
	"github.com/zjrosen/vimcore/internal/vim"
)

// Options configures a replay run.
type Options struct {
	Text      string     // initial buffer content
	Script    string     // key script in <Esc>/<CR>/<C-x> notation; ignored when Keys is set
	Keys      []keys.Key // pre-parsed keys
	UndoLimit *int       // buffer undo history; nil uses buffer.DefaultUndoLimit, 0 disables undo
	Diff      bool       // compute a line diff of the buffer
}

// Result is the state after every key has been applied.
type Result struct {
	Session   string
	Before    string
	Text      string
	Row, Col  int
	Mode      vim.Mode
	Register  vim.Register
	Pending   string   // keys of an unfinished command
	Outputs   []string // CommandOutput messages in order
	Submitted bool
	Cleared   bool
	Keys      int // number of keys fed
	Diff      string
}

// Run feeds the keys to a new engine and applies every action to a buffer
// seeded with opts.Text. It stops early with ctx's error when ctx is done.
func Run(ctx context.Context, opts Options) (Result, error) {
	ks := opts.Keys
	if ks == nil {
		parsed, err := keys.ParseScript(opts.Script)
		if err != nil {
			return Result{}, fmt.Errorf("parsing key script: %w", err)
		}
		ks = parsed
	}

	limit := buffer.DefaultUndoLimit
	if opts.UndoLimit != nil {
		limit = *opts.UndoLimit
	}
	buf := buffer.New(opts.Text, buffer.WithUndoLimit(limit))
	defer buf.Close()
	engine := vim.New()

	res := Result{
		Session: uuid.NewString(),
		Before:  buf.Text(),
	}
	log.Debug(log.CatReplay, "replay started", "session", res.Session, "keys", len(ks))

	for i, k := range ks {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("replay interrupted after %d keys: %w", i, err)
		}
		row, col := buf.Cursor()
		applied := buf.Apply(engine.HandleKey(k.Rune, k.Ctrl, buf.View(), row, col))
		res.Outputs = append(res.Outputs, applied.Messages...)
		res.Submitted = res.Submitted || applied.Submitted
		res.Cleared = res.Cleared || applied.Cleared
		res.Keys++
	}

	res.Text = buf.Text()
	res.Row, res.Col = buf.Cursor()
	res.Mode = engine.State()
	res.Register = engine.Register()
	res.Pending = engine.PendingKeys()
	if opts.Diff {
		res.Diff = LineDiff(res.Before, res.Text)
	}

	log.Info(log.CatReplay, "replay finished",
		"session", res.Session,
		"keys", res.Keys,
		"mode", res.Mode.String(),
		"changed", res.Before != res.Text)
	return res, nil
}
