package playground

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/rivo/uniseg"

	"github.com/zjrosen/vimcore/internal/keys"
	"github.com/zjrosen/vimcore/internal/ui/styles"
	"github.com/zjrosen/vimcore/internal/vim"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	logPaneHeight = 8
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	width, height := m.size()

	footer := []string{m.statusLine(width), m.messageLine(width)}
	var panes []string
	if m.showHelp {
		panes = append(panes, m.helpText, m.bindingsLine(width))
	}
	if m.showLog {
		panes = append(panes, m.logs.view(width, logPaneHeight))
	}

	used := 2 // editor borders
	for _, s := range footer {
		used += lipgloss.Height(s)
	}
	for _, s := range panes {
		used += lipgloss.Height(s)
	}
	editor := m.editorView(width-2, max(height-used, 1))

	parts := append([]string{editor}, panes...)
	parts = append(parts, footer...)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) size() (int, int) {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}

// mode returns the mode shown to the user.
func (m Model) mode() vim.Mode {
	if !m.vimEnabled {
		return vim.ModeInsert
	}
	return m.engine.State()
}

func (m Model) editorView(width, height int) string {
	lines := m.buf.View()
	row, _ := m.buf.Cursor()

	top := 0
	if row >= height {
		top = row - height + 1
	}
	bottom := min(top+height, len(lines))

	gutter := len(fmt.Sprint(len(lines)))
	var rendered []string
	for r := top; r < bottom; r++ {
		number := styles.LineNumberStyle.Render(fmt.Sprintf("%*d ", gutter, r+1))
		text := ansi.Truncate(m.renderLine(lines[r], r), max(width-gutter-1, 1), "")
		rendered = append(rendered, number+text)
	}

	style := styles.PaneStyle
	if m.vimEnabled {
		style = styles.FocusedPaneStyle
	}
	return style.Width(width).Render(strings.Join(rendered, "\n"))
}

type cellClass int

const (
	cellPlain cellClass = iota
	cellSelected
	cellCursor
)

// renderLine styles one buffer line: the visual selection and the cursor
// cell. Styling is applied per grapheme cluster so a cursor never splits one.
func (m Model) renderLine(line string, row int) string {
	crow, _ := m.buf.Cursor()
	cursor := -1
	if row == crow {
		cursor = m.buf.CursorCell().Start
	}
	selStart, selEnd := m.selectionOnRow(line, row)

	cursorStyle := styles.CursorStyle
	if m.mode() == vim.ModeInsert {
		cursorStyle = styles.InsertCursorStyle
	}
	render := func(class cellClass, s string) string {
		switch class {
		case cellCursor:
			return cursorStyle.Render(s)
		case cellSelected:
			return styles.SelectionStyle.Render(s)
		}
		return s
	}

	var sb, run strings.Builder
	runClass := cellPlain
	flush := func() {
		if run.Len() > 0 {
			sb.WriteString(render(runClass, run.String()))
			run.Reset()
		}
	}

	g := uniseg.NewGraphemes(line)
	for g.Next() {
		start, _ := g.Positions()
		class := cellPlain
		switch {
		case start == cursor:
			class = cellCursor
		case start >= selStart && start < selEnd:
			class = cellSelected
		}
		if class != runClass {
			flush()
			runClass = class
		}
		run.WriteString(g.Str())
	}
	flush()

	if cursor >= len(line) {
		sb.WriteString(render(cellCursor, " "))
	}
	return sb.String()
}

// selectionOnRow returns the byte range of the visual selection on row, or
// an empty range when there is none.
func (m Model) selectionOnRow(line string, row int) (int, int) {
	anchor, ok := m.engine.VisualAnchor()
	if !ok || !m.vimEnabled {
		return 0, 0
	}
	crow, ccol := m.buf.Cursor()
	start, end := anchor, vim.Position{Row: crow, Col: ccol}
	if end.Before(start) {
		start, end = end, start
	}
	if start == end {
		// The selection covers the cursor cell, which is already styled.
		return 0, 0
	}
	if row < start.Row || row > end.Row {
		return 0, 0
	}
	from, to := 0, len(line)
	if row == start.Row {
		from = start.Col
	}
	if row == end.Row {
		to = end.Col
	}
	return from, to
}

func (m Model) statusLine(width int) string {
	var indicator string
	if m.vimEnabled {
		mode := m.engine.State()
		indicator = styles.ModeStyle(mode).Render(mode.String())
	} else {
		indicator = styles.PlainModeStyle.Render("PLAIN")
	}

	lines := m.buf.View()
	row, col := m.buf.Cursor()
	// Display column, 1-based, counting wide runes as two cells.
	displayCol := runewidth.StringWidth(lines[row][:col]) + 1

	fields := []string{fmt.Sprintf("Ln %d, Col %d", row+1, displayCol), fmt.Sprintf("edits %d", m.edits)}
	if pending := m.engine.PendingKeys(); pending != "" {
		fields = append([]string{pending}, fields...)
	}
	if m.engine.PasteMode() {
		fields = append(fields, "[paste]")
	}
	if n := len(m.submitted); n > 0 {
		fields = append(fields, styles.SubmitStyle.Render(fmt.Sprintf("submitted %d", n)))
	}

	line := indicator + " " + styles.StatusTextStyle.Render(strings.Join(fields, "  "))
	return ansi.Truncate(line, width, "…")
}

func (m Model) messageLine(width int) string {
	if m.vimEnabled && m.engine.State() == vim.ModeCommand {
		return ansi.Truncate(":"+m.engine.CommandBuffer(), width, "")
	}
	if m.message == "" {
		return styles.HintStyle.Render("f1 help")
	}
	return styles.MessageStyle.Render(wordwrap.String(m.message, width))
}

func (m Model) bindingsLine(width int) string {
	var hints []string
	for _, b := range keys.PlaygroundHelp() {
		hints = append(hints, b.Help().Key+" "+b.Help().Desc)
	}
	return ansi.Truncate(styles.HintStyle.Render(strings.Join(hints, " • ")), width, "…")
}

func actionName(a vim.Action) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", a), "vim.")
}
