package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/fidsort/pkg/fidsort"
)

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("245") // Gray
	ColorSuccess   = lipgloss.Color("34")  // Green
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorError     = lipgloss.Color("196") // Red
	ColorMuted     = lipgloss.Color("240") // Dark gray
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	PathStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	UnselectedStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)
)

// Symbols for visual feedback.
const (
	SymbolCursor  = "›"
	SymbolFolder  = "▸"
	SymbolCheck   = "✓"
	SymbolCross   = "✗"
	SymbolSkip    = "–"
	SymbolPending = "•"
)

// FileStatusStyle picks the style for a scan status.
func FileStatusStyle(s fidsort.FileStatus) lipgloss.Style {
	switch s {
	case fidsort.StatusReady:
		return SuccessStyle
	case fidsort.StatusAlreadySorted:
		return MutedStyle
	case fidsort.StatusNoIdentifier:
		return WarningStyle
	default:
		return ErrorStyle
	}
}

// OutcomeSymbol renders the leading mark for a relocation outcome.
func OutcomeSymbol(s fidsort.OutcomeStatus) string {
	switch {
	case s.IsSuccess():
		return SuccessStyle.Render(SymbolCheck)
	case s == fidsort.OutcomeError:
		return ErrorStyle.Render(SymbolCross)
	default:
		return MutedStyle.Render(SymbolSkip)
	}
}
