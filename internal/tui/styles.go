package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	primaryColor   = lipgloss.AdaptiveColor{Light: "#2C3E50", Dark: "#ECF0F1"}
	secondaryColor = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	accentColor    = lipgloss.AdaptiveColor{Light: "#8E44AD", Dark: "#BB8FCE"}
	errorColor     = lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#F87171"}

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	subtleStyle = lipgloss.NewStyle().Foreground(secondaryColor)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(errorColor)
	labelStyle  = lipgloss.NewStyle().Foreground(secondaryColor).Width(24)
	valueStyle  = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)

	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).
			Background(accentColor).Padding(0, 1)
	tabStyle = lipgloss.NewStyle().Foreground(secondaryColor).Padding(0, 1)

	panelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(secondaryColor).Padding(0, 1).MarginBottom(1)
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor)

	barColors = map[string]lipgloss.Color{
		"positive": lipgloss.Color("#27AE60"),
		"negative": lipgloss.Color("#C0392B"),
		"neutral":  lipgloss.Color("#7F8C8D"),
	}
)

// hslColor converts a CSS "hsl(h, s%, l%)" value into a terminal colour.
// Unparseable values fall back to the accent colour.
func hslColor(css string) lipgloss.TerminalColor {
	var h, s, l float64
	if _, err := fmt.Sscanf(css, "hsl(%f, %f%%, %f%%)", &h, &s, &l); err != nil {
		return accentColor
	}
	return lipgloss.Color(colorful.Hsl(h, s/100, l/100).Clamped().Hex())
}
