package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorText   = lipgloss.Color("#F4F4F5")
	colorMuted  = lipgloss.Color("#A1A1AA")
	colorFaint  = lipgloss.Color("#71717A")
	colorBorder = lipgloss.Color("#3F3F46")
	colorAccent = lipgloss.Color("#FFFFFF")
	colorChipBg = lipgloss.Color("#18181B")
)

// Styles contains all reusable Lipgloss styles for the TUI.
type Styles struct {
	// Header
	Name     lipgloss.Style
	Headline lipgloss.Style

	// Tab bar
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style

	// List
	Item         lipgloss.Style
	SelectedItem lipgloss.Style
	ItemDetail   lipgloss.Style

	// Modal
	Modal         lipgloss.Style
	ModalTitle    lipgloss.Style
	ModalSubtitle lipgloss.Style
	Meta          lipgloss.Style
	SectionHeader lipgloss.Style
	Chip          lipgloss.Style

	Footer lipgloss.Style
}

// DefaultStyles returns the dark theme used by the browser.
func DefaultStyles() Styles {
	return Styles{
		Name:     lipgloss.NewStyle().Bold(true).Foreground(colorText),
		Headline: lipgloss.NewStyle().Foreground(colorMuted),

		Tab:       lipgloss.NewStyle().Padding(0, 1).Foreground(colorMuted),
		ActiveTab: lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("#000000")).Background(colorAccent),

		Item:         lipgloss.NewStyle().PaddingLeft(2).Foreground(colorText),
		SelectedItem: lipgloss.NewStyle().PaddingLeft(1).Bold(true).Foreground(colorAccent).Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(colorAccent),
		ItemDetail:   lipgloss.NewStyle().PaddingLeft(2).Foreground(colorFaint),

		Modal:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(1, 2),
		ModalTitle:    lipgloss.NewStyle().Bold(true).Foreground(colorText),
		ModalSubtitle: lipgloss.NewStyle().Foreground(colorMuted),
		Meta:          lipgloss.NewStyle().Foreground(colorFaint),
		SectionHeader: lipgloss.NewStyle().Bold(true).Foreground(colorMuted).MarginTop(1),
		Chip:          lipgloss.NewStyle().Padding(0, 1).Foreground(colorText).Background(colorChipBg),

		Footer: lipgloss.NewStyle().Foreground(colorFaint).MarginTop(1),
	}
}
