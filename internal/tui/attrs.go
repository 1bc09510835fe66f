package tui

import (
	"strconv"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshAttrsFromCurrent fills the coordinate table from the first visible layer.
func (m *Model) refreshAttrsFromCurrent() {
	idx := -1
	for i, v := range m.visible {
		if v {
			idx = i
			break
		}
	}
	if idx < 0 {
		m.showAttrs = false
		m.status = "no visible layer"
		return
	}
	l := m.scene.Layers[idx]
	n := pointCount(l)
	rows := make([]table.Row, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, table.Row{
			strconv.Itoa(i),
			strconv.FormatFloat(l.Xs[i], 'g', 10, 64),
			strconv.FormatFloat(l.Ys[i], 'g', 10, 64),
		})
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns([]table.Column{
		{Title: "#", Width: 5},
		{Title: "x", Width: 16},
		{Title: "y", Width: 16},
	})
	m.tbl.SetRows(rows)
	m.status = "points of " + l.Label
}
