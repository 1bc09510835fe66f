package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"hullview/internal/geom"
	"hullview/internal/render"
)

type layerItem struct {
	title, desc string
	idx         int
}

func (f layerItem) Title() string       { return f.title }
func (f layerItem) Description() string { return f.desc }
func (f layerItem) FilterValue() string { return f.title }

// pointCount is the number of distinct input points in l.
func pointCount(l render.Layer) int {
	n := len(l.Xs)
	if l.Close && n > 1 {
		n--
	}
	return n
}

func (m *Model) refreshLayers() {
	items := make([]list.Item, 0, len(m.scene.Layers))
	for i, l := range m.scene.Layers {
		state := "shown"
		if !m.visible[i] {
			state = "hidden"
		}
		items = append(items, layerItem{
			title: fmt.Sprintf("%d %s", i+1, l.Label),
			desc:  fmt.Sprintf("%d pts  %s", pointCount(l), state),
			idx:   i,
		})
	}
	m.l.SetItems(items)
}

func (m *Model) toggleLayer(i int) {
	if i < 0 || i >= len(m.visible) {
		return
	}
	m.visible[i] = !m.visible[i]
	state := "shown"
	if !m.visible[i] {
		state = "hidden"
	}
	m.status = fmt.Sprintf("%s: %s", m.scene.Layers[i].Label, state)
	m.refreshLayers()
}

// pasteLayer parses a coordinate list typed into the textarea and adds it as a closed layer.
func (m *Model) pasteLayer(text string) error {
	xs, ys, err := geom.ParseCoordList(text)
	if err != nil {
		return err
	}
	m.pasted++
	scene, err := render.BuildScene([]render.Layer{{
		Label:  fmt.Sprintf("pasted %d", m.pasted),
		Xs:     xs,
		Ys:     ys,
		Close:  true,
		Marker: true,
		Line:   true,
	}}, m.scene.Style)
	if err != nil {
		return err
	}
	m.addLayer(scene.Layers[0])
	return nil
}

func summaryStatus(scene render.Scene) string {
	parts := make([]string, 0, len(scene.Layers))
	for _, l := range scene.Layers {
		parts = append(parts, fmt.Sprintf("%s=%d", l.Label, pointCount(l)))
	}
	return "loaded: " + strings.Join(parts, " ")
}
