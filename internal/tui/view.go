package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	contentWidth := max(10, m.width)
	_, _, mapWidth, mapHeight := m.layout()

	// Header
	title := m.scene.Style.Title
	if title == "" {
		title = "hullview"
	}
	header := titleStyle.Render(" " + title + " ")
	header = lipgloss.NewStyle().Width(contentWidth).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	var mapView string
	switch {
	case m.showAttrs:
		tw := min(mapWidth, 48)
		m.tbl.SetWidth(tw - 4)
		m.tbl.SetHeight(min(mapHeight-2, 20))
		box := boxStyle.Width(tw).Render(m.tbl.View())
		mapView = lipgloss.Place(mapWidth, mapHeight, lipgloss.Center, lipgloss.Center, box)
	case m.pasteMode:
		m.ta.SetWidth(mapWidth)
		m.ta.SetHeight(min(mapHeight, 12))
		mapView = lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(m.ta.View())
	default:
		mapView = lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(m.renderMap(mapWidth, mapHeight))
	}

	if m.inspectPopup != "" && !m.showAttrs && !m.pasteMode {
		box := boxStyle.MaxWidth(max(20, min(52, mapWidth))).Render(m.inspectPopup)
		mapView = lipgloss.Place(mapWidth, mapHeight, lipgloss.Left, lipgloss.Top, box)
	}

	body := mapView
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	}

	// Footer / help
	status := dimStyle.Render(" " + m.status + " ")
	coords := ""
	if m.hoverHasData {
		coords = dimStyle.Render("  " + formatXY(m.hoverX, m.hoverY) + "  ")
	}
	spacer := max(0, contentWidth-lipgloss.Width(status)-lipgloss.Width(coords))
	statusLine := lipgloss.JoinHorizontal(lipgloss.Bottom, status, strings.Repeat(" ", spacer), coords)
	footer := lipgloss.JoinVertical(lipgloss.Left, statusLine, m.renderHelp())

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).MaxHeight(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"←↓↑→ pan",
		"+/- zoom",
		"y flip",
		"1-9 layer",
		"tab list",
		"p paste",
		"i info",
		"q quit",
	}
	return dimStyle.Render(" " + strings.Join(keys, "  "))
}
