package tui

import (
	"github.com/charmbracelet/lipgloss"

	"prodp/internal/tui/theme"
)

var (
	// App banner above every view
	BannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary).
			PaddingLeft(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(theme.Border)

	StatusBarStyle = theme.StatusBar

	HelpStyle = theme.HelpHint
)
