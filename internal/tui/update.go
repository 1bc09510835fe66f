package tui

import (
	"fmt"
	"strconv"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"hullview/internal/geom"
)

// layout returns the map area origin and size; it must match View.
func (m Model) layout() (originX, originY, w, h int) {
	sw := 0
	if m.showSidebar {
		sw = sidebarWidth + 1
	}
	h = max(4, m.height-headerHeight-footerHeight)
	w = max(10, max(10, m.width)-sw-1)
	return sw, headerHeight, w, h
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		_, _, w, h := m.layout()
		m.mapW, m.mapH = w, h
		m.l.SetSize(sidebarWidth-2, h-2)
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				m.status = "view mode"
				return m, nil
			case "enter":
				text := strings.TrimSpace(m.ta.Value())
				if err := m.pasteLayer(text); err != nil {
					m.status = "paste error: " + err.Error()
					return m, nil
				}
				m.status = fmt.Sprintf("rendered %s", m.scene.Layers[len(m.scene.Layers)-1].Label)
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		if m.showAttrs {
			switch msg.String() {
			case "esc", "a":
				m.showAttrs = false
				return m, nil
			case "ctrl+c", "q":
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		switch key := msg.String(); key {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			n, _ := strconv.Atoi(key)
			m.toggleLayer(n - 1)
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "0":
			m.zoom = 1.0
			m.offsetX, m.offsetY = 0, 0
			m.status = "view reset"
		case "y":
			m.invertY = !m.invertY
			if m.invertY {
				m.status = "y axis: down"
			} else {
				m.status = "y axis: up"
			}
		case "tab":
			m.showSidebar = !m.showSidebar
		case "p":
			m.pasteMode = true
			m.ta.SetValue("")
			m.status = "paste mode"
			return m, m.ta.Focus()
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showAttrs = true
			m.refreshAttrsFromCurrent()
		case "i":
			m.inspect()
		case "esc":
			m.inspectPopup = ""
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(layerItem); ok {
					m.toggleLayer(it.idx)
				}
				return m, nil
			}
		case "up":
			m.offsetY--
		case "down":
			m.offsetY++
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	case tea.MouseMsg:
		m.hover(msg.X, msg.Y)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// hover tracks the mouse over the map area and snaps to the nearest vertex.
func (m *Model) hover(x, y int) {
	ox, oy, w, h := m.layout()
	if x < ox || x >= ox+w || y < oy || y >= oy+h {
		m.hovering = false
		m.hoverHasData = false
		return
	}
	cx, cy := x-ox, y-oy
	m.hoverX, m.hoverY, m.hoverHasData = m.cellToXY(cx, cy, w, h)
	if _, bx, by, ok := m.nearestVertex(cx*2, cy*4, w, h); ok {
		m.hovering = true
		m.hoverMicX, m.hoverMicY = bx, by
		return
	}
	m.hovering = false
}

func (m *Model) inspect() {
	v, ok := m.inspectNearest()
	if !ok {
		m.inspectPopup = "no vertex nearby"
		m.status = m.inspectPopup
		return
	}
	l := m.scene.Layers[v.layer]
	n := pointCount(l)
	meta := []string{
		fmt.Sprintf("layer: %s", l.Label),
		fmt.Sprintf("vertex: #%d %s", v.index, formatXY(v.x, v.y)),
	}
	if sum, err := geom.Summarize(l.Xs[:n], l.Ys[:n]); err == nil {
		meta = append(meta,
			fmt.Sprintf("points: %d", sum.Count),
			fmt.Sprintf("bbox: [%.4f, %.4f, %.4f, %.4f]", sum.BBox.MinX, sum.BBox.MinY, sum.BBox.MaxX, sum.BBox.MaxY),
			fmt.Sprintf("centroid: %s", formatXY(sum.CentroidX, sum.CentroidY)),
		)
	}
	m.inspectPopup = strings.Join(meta, "\n")
	m.status = "inspect popup"
}
