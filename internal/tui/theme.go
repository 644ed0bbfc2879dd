package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText     lipgloss.Color = "#cdd6f4"
	colorMuted    lipgloss.Color = "#a6adc8"
	colorBorder   lipgloss.Color = "#585b70"
	colorAccent   lipgloss.Color = "#89b4fa"
	colorSuccess  lipgloss.Color = "#a6e3a1"
	colorError    lipgloss.Color = "#f38ba8"
	colorMantle   lipgloss.Color = "#181825"
	colorSurface0 lipgloss.Color = "#313244"
)

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	headerAppStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(colorMantle)
	headerTagStyle = lipgloss.NewStyle().Foreground(colorMuted).Background(colorMantle)
	headerBarStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorText)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)

	screenTitleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	textStyle        = lipgloss.NewStyle().Foreground(colorText)
	mutedStyle       = lipgloss.NewStyle().Foreground(colorMuted)
	separatorStyle   = lipgloss.NewStyle().Foreground(colorBorder)
	labelStyle       = lipgloss.NewStyle().Foreground(colorMuted)
	valueStyle       = lipgloss.NewStyle().Foreground(colorText)
	choiceStyle      = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	cursorStyle      = lipgloss.NewStyle().Foreground(colorAccent)
)
