package widgets

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha values, kept in sync with the core theme.
const (
	colorAccent  lipgloss.Color = "#f5c2e7"
	colorFocus   lipgloss.Color = "#b4befe"
	colorSubtle  lipgloss.Color = "#bac2de"
	colorBorder  lipgloss.Color = "#585b70"
	colorSurface lipgloss.Color = "#313244"
	colorMantle  lipgloss.Color = "#181825"
)
