package tui

import (
	"github.com/charmbracelet/lipgloss"

	"hullview/internal/render"
)

// The viewer chrome reuses the plot palette so the title and hover marker
// match the image output. Layer colours come from render.PaletteHex.
var (
	textFg   = lipgloss.AdaptiveColor{Light: "#1F2933", Dark: "#D9DEE5"}
	mutedFg  = lipgloss.AdaptiveColor{Light: "#7B8794", Dark: "#7B8794"}
	frameCol = lipgloss.AdaptiveColor{Light: "#CBD2D9", Dark: "#323F4B"}
	titleFg  = lipgloss.Color(render.Palette[0])
	hoverFg  = lipgloss.Color(render.Palette[1])

	appStyle   = lipgloss.NewStyle().Foreground(textFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(frameCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(titleFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(mutedFg)
	hoverStyle = lipgloss.NewStyle().Foreground(hoverFg).Bold(true)
)
