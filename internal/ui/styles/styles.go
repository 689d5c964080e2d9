// Package styles contains Lip Gloss style definitions.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/vimcore/internal/vim"
)

var (
	// Text hierarchy
	TextPrimaryColor = lipgloss.AdaptiveColor{Light: "#1F1F1F", Dark: "#CCCCCC"}
	TextMutedColor   = lipgloss.AdaptiveColor{Light: "#8C8C8C", Dark: "#696969"}

	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"}
	BorderFocusedColor = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"}

	// Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#DF8E1D", Dark: "#FECA57"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}
	StatusInfoColor    = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#54A0FF"}

	// Mode indicator backgrounds (Catppuccin)
	ModeNormalColor  = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"} // blue
	ModeInsertColor  = lipgloss.AdaptiveColor{Light: "#40A02B", Dark: "#A6E3A1"} // green
	ModeVisualColor  = lipgloss.AdaptiveColor{Light: "#8839EF", Dark: "#CBA6F7"} // mauve
	ModeCommandColor = lipgloss.AdaptiveColor{Light: "#FE640B", Dark: "#FAB387"} // peach
	ModePlainColor   = lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#6C7086"} // overlay0

	modeTextColor = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}

	baseModeStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(modeTextColor)

	PlainModeStyle = baseModeStyle.Background(ModePlainColor)

	CursorStyle       = lipgloss.NewStyle().Reverse(true)
	InsertCursorStyle = lipgloss.NewStyle().Underline(true)
	SelectionStyle    = lipgloss.NewStyle().Background(lipgloss.AdaptiveColor{Light: "#CCD0DA", Dark: "#45475A"})

	LineNumberStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	StatusTextStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor)
	HintStyle       = lipgloss.NewStyle().Foreground(TextMutedColor)
	MessageStyle    = lipgloss.NewStyle().Foreground(StatusInfoColor)
	SubmitStyle     = lipgloss.NewStyle().Foreground(StatusSuccessColor).Bold(true)

	PaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderDefaultColor)
	FocusedPaneStyle = PaneStyle.BorderForeground(BorderFocusedColor)
)

// ModeStyle returns the indicator style for an engine mode.
func ModeStyle(m vim.Mode) lipgloss.Style {
	switch m {
	case vim.ModeInsert:
		return baseModeStyle.Background(ModeInsertColor)
	case vim.ModeVisual:
		return baseModeStyle.Background(ModeVisualColor)
	case vim.ModeCommand:
		return baseModeStyle.Background(ModeCommandColor)
	default:
		return baseModeStyle.Background(ModeNormalColor)
	}
}
