package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")
	zoneFg    = lipgloss.Color("#EF4444")
	targetFg  = lipgloss.Color("#7F1D1D")
	previewFg = lipgloss.Color("#FACC15")
	finishFg  = lipgloss.Color("#3B82F6")
	hoverFg   = lipgloss.Color("#FFA500")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
	errStyle   = lipgloss.NewStyle().Foreground(zoneFg)

	// canvas layers
	zoneStyle    = lipgloss.NewStyle().Foreground(zoneFg)
	targetStyle  = lipgloss.NewStyle().Foreground(targetFg)
	previewStyle = lipgloss.NewStyle().Foreground(previewFg)
	startStyle   = lipgloss.NewStyle().Foreground(zoneFg).Bold(true)
	finishStyle  = lipgloss.NewStyle().Foreground(finishFg).Bold(true)
	hoverStyle   = lipgloss.NewStyle().Foreground(hoverFg)
)
