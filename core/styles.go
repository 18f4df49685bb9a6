package core

import "github.com/charmbracelet/lipgloss"

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	bannerTitleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	bannerPathStyle  = lipgloss.NewStyle().Foreground(colorMuted)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)

	jumpPromptStyle = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	jumpMatchStyle  = lipgloss.NewStyle().Foreground(colorSubtext1)

	keyStyle      = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorMuted)
)
