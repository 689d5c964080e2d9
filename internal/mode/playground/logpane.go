package playground

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/zjrosen/vimcore/internal/log"
	"github.com/zjrosen/vimcore/internal/ui/styles"
)

const logPaneCapacity = 500

// logPane keeps the most recent log entries received from the log broker.
type logPane struct {
	entries  []string
	minLevel log.Level
}

func newLogPane() logPane {
	return logPane{minLevel: log.LevelDebug}
}

func (p *logPane) append(entry string) {
	p.entries = append(p.entries, strings.TrimSuffix(entry, "\n"))
	if over := len(p.entries) - logPaneCapacity; over > 0 {
		p.entries = append(p.entries[:0:0], p.entries[over:]...)
	}
}

// cycleLevel steps the filter DEBUG -> INFO -> WARN -> ERROR -> DEBUG.
func (p *logPane) cycleLevel() {
	if p.minLevel >= log.LevelError {
		p.minLevel = log.LevelDebug
		return
	}
	p.minLevel++
}

// view renders the newest entries that fit in height lines.
func (p logPane) view(width, height int) string {
	var lines []string
	for _, entry := range p.entries {
		if p.matchesLevel(entry) {
			lines = append(lines, entry)
		}
	}

	title := styles.HintStyle.Render("Logs (" + p.minLevel.String() + "+)")
	body := height - 1
	if len(lines) == 0 {
		empty := lipgloss.NewStyle().Foreground(styles.TextMutedColor).Italic(true)
		return title + "\n" + empty.Render("No logs to display")
	}
	if len(lines) > body {
		lines = lines[len(lines)-body:]
	}

	var sb strings.Builder
	sb.WriteString(title)
	for _, entry := range lines {
		sb.WriteString("\n")
		sb.WriteString(colorizeEntry(entry, width))
	}
	return sb.String()
}

// matchesLevel reports whether entry is at or above the filter level.
// Entries without a recognised level are always shown.
func (p logPane) matchesLevel(entry string) bool {
	level, ok := entryLevel(entry)
	return !ok || level >= p.minLevel
}

func entryLevel(entry string) (log.Level, bool) {
	switch {
	case strings.Contains(entry, "[ERROR]"):
		return log.LevelError, true
	case strings.Contains(entry, "[WARN]"):
		return log.LevelWarn, true
	case strings.Contains(entry, "[INFO]"):
		return log.LevelInfo, true
	case strings.Contains(entry, "[DEBUG]"):
		return log.LevelDebug, true
	}
	return 0, false
}

func colorizeEntry(entry string, maxWidth int) string {
	if maxWidth > 3 && ansi.StringWidth(entry) > maxWidth {
		entry = ansi.Truncate(entry, maxWidth-3, "...")
	}

	color := lipgloss.TerminalColor(styles.TextPrimaryColor)
	if level, ok := entryLevel(entry); ok {
		switch level {
		case log.LevelError:
			color = styles.StatusErrorColor
		case log.LevelWarn:
			color = styles.StatusWarningColor
		case log.LevelInfo:
			color = styles.StatusInfoColor
		default:
			color = styles.TextMutedColor
		}
	}
	return lipgloss.NewStyle().Foreground(color).Render(entry)
}
