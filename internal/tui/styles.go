package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, the subset this app uses.
const (
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface0 lipgloss.Color = "#313244"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorMauve    lipgloss.Color = "#cba6f7"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorMauve)

	chatNameStyle    = lipgloss.NewStyle().Foreground(colorText)
	chatPreviewStyle = lipgloss.NewStyle().Foreground(colorSubtext0)
	selectedStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)

	userHeaderStyle      = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	assistantHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	timestampStyle       = lipgloss.NewStyle().Foreground(colorOverlay0)

	inputStyle = lipgloss.NewStyle().
			Foreground(colorText).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(colorSurface0)

	helpStyle = lipgloss.NewStyle().Foreground(colorOverlay0)
)
