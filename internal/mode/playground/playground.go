// Package playground is an interactive Bubble Tea host for the vim engine:
// keys go to the engine, actions are applied to a reference buffer and the
// result is rendered with the engine's mode and pending keys.
package playground

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/zjrosen/vimcore/internal/buffer"
	"github.com/zjrosen/vimcore/internal/keys"
	"github.com/zjrosen/vimcore/internal/log"
	"github.com/zjrosen/vimcore/internal/pubsub"
	"github.com/zjrosen/vimcore/internal/vim"
)

// Config seeds a playground session.
type Config struct {
	Text          string
	VimMode       bool
	UndoLimit     int    // 0 disables undo
	MarkdownStyle string // "dark" (default) or "light"
}

// Model holds the playground state.
type Model struct {
	ctx     context.Context
	cfg     Config
	session string

	engine *vim.Engine
	buf    *buffer.Buffer

	bufEvents   <-chan pubsub.Event[buffer.Snapshot]
	logListener *log.LogListener

	vimEnabled bool
	showHelp   bool
	showLog    bool
	helpText   string
	logs       logPane

	message   string
	submitted []string
	edits     int

	width    int
	height   int
	quitting bool
}

// New creates a playground bound to ctx. Cancelling ctx stops the buffer and
// log subscriptions.
func New(ctx context.Context, cfg Config) Model {
	buf := buffer.New(cfg.Text, buffer.WithUndoLimit(cfg.UndoLimit))

	m := Model{
		ctx:         ctx,
		cfg:         cfg,
		session:     uuid.NewString(),
		engine:      vim.New(),
		buf:         buf,
		bufEvents:   buf.Subscribe(ctx),
		logListener: log.NewListener(ctx),
		vimEnabled:  cfg.VimMode,
		logs:        newLogPane(),
	}
	if !m.vimEnabled {
		buf.SetMode(vim.ModeInsert)
	}
	log.Info(log.CatUI, "playground started", "session", m.session, "vim", m.vimEnabled)
	return m
}

// Session returns the session ID stamped on this playground's log entries.
func (m Model) Session() string {
	return m.session
}

// Text returns the buffer content.
func (m Model) Text() string {
	return m.buf.Text()
}

// VimEnabled reports whether keys currently go through the vim engine.
func (m Model) VimEnabled() bool {
	return m.vimEnabled
}

// Submitted returns the texts submitted with ":w" or ":wq", oldest first.
func (m Model) Submitted() []string {
	return m.submitted
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{pubsub.ListenCmd(m.ctx, m.bufEvents)}
	if m.logListener != nil {
		cmds = append(cmds, m.logListener.Listen())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showHelp {
			m.helpText = m.renderHelp()
		}
		return m, nil

	case pubsub.Event[buffer.Snapshot]:
		m.edits++
		return m, pubsub.ListenCmd(m.ctx, m.bufEvents)

	case pubsub.Event[string]:
		m.logs.append(msg.Payload)
		return m, m.logListener.Listen()

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Playground.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Playground.Help):
		m.showHelp = !m.showHelp
		if m.showHelp {
			m.helpText = m.renderHelp()
		}
		return m, nil

	case key.Matches(msg, keys.Playground.ToggleLog):
		m.showLog = !m.showLog
		return m, nil

	case key.Matches(msg, keys.Playground.LogLevel):
		m.logs.cycleLevel()
		return m, nil

	case key.Matches(msg, keys.Playground.ToggleVim):
		m.setVimEnabled(!m.vimEnabled)
		return m, nil

	case key.Matches(msg, keys.Playground.Reset):
		m.engine.Reset()
		m.buf.Reset(m.cfg.Text)
		if !m.vimEnabled {
			m.buf.SetMode(vim.ModeInsert)
		}
		m.message = "buffer reset"
		return m, nil
	}

	for _, k := range keys.FromTea(msg) {
		m.feed(k)
	}
	return m, nil
}

// feed sends one key through the engine (or the plain editor) and applies
// the resulting action to the buffer.
func (m *Model) feed(k keys.Key) {
	var action vim.Action
	if m.vimEnabled {
		row, col := m.buf.Cursor()
		action = m.engine.HandleKey(k.Rune, k.Ctrl, m.buf.View(), row, col)
	} else {
		action = plainAction(k)
	}

	before := m.buf.Text()
	res := m.buf.Apply(action)
	log.Debug(log.CatUI, "key", "key", k.String(), "action", actionName(action), "changed", res.Changed)

	if len(res.Messages) > 0 {
		m.message = res.Messages[len(res.Messages)-1]
	}
	if res.Submitted {
		m.submitted = append(m.submitted, before)
		m.message = "submitted"
	}
	if res.Cleared {
		m.message = "cleared"
	}
}

func (m *Model) setVimEnabled(enabled bool) {
	m.vimEnabled = enabled
	m.engine.Reset()
	if enabled {
		m.buf.SetMode(vim.ModeNormal)
		m.message = "vim mode on"
	} else {
		m.buf.SetMode(vim.ModeInsert)
		m.message = "vim mode off"
	}
	log.Info(log.CatUI, "vim mode toggled", "enabled", enabled)
}

// plainAction maps a key to an edit for the insert-only editor used when vim
// mode is off.
func plainAction(k keys.Key) vim.Action {
	if k.Ctrl {
		return vim.NoOp{}
	}
	switch k.Rune {
	case vim.KeyEnter, vim.KeyNewline:
		return vim.InsertNewline{}
	case vim.KeyBackspace, vim.KeyDelete:
		return vim.Backspace{}
	case vim.KeyEscape:
		return vim.NoOp{}
	}
	return vim.InsertChar{Ch: k.Rune}
}

func (m Model) renderHelp() string {
	in := helpInput{width: max(m.width-4, 20), style: m.cfg.MarkdownStyle}
	out, err := helpCache.Get(m.ctx, fmt.Sprintf("%s:%d", in.style, in.width), in, 0)
	if err != nil {
		log.ErrorErr(log.CatUI, "rendering help", err)
		return cheatSheet
	}
	return out
}
