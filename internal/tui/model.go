package tui

import (
	"math"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"hullview/internal/geom"
	"hullview/internal/render"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int
	invertY bool

	status string

	// Data
	scene   render.Scene
	visible []bool
	bbox    geom.BBox

	// layer list
	l list.Model

	// last rendered map size (for inspect)
	mapW int
	mapH int

	// paste mode
	pasteMode bool
	pasted    int
	ta        textarea.Model

	// inspect popup
	inspectPopup string

	// hover state
	hovering     bool
	hoverMicX    int
	hoverMicY    int
	hoverHasData bool
	hoverX       float64
	hoverY       float64

	// coordinate table
	showAttrs bool
	tbl       table.Model
}

// New builds a viewer for scene. Every layer starts visible.
func New(scene render.Scene) Model {
	m := Model{
		helpVisible: true,
		zoom:        1.0,
		invertY:     scene.Style.InvertY,
		status:      "hullview ready",
		scene:       scene,
		visible:     make([]bool, len(scene.Layers)),
	}
	for i := range m.visible {
		m.visible[i] = true
	}
	m.bbox = viewBox(scene)
	// list setup
	d := list.NewDefaultDelegate()
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Layers"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	m.refreshLayers()
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste a coordinate list like [[1,2],[3,4]]. Press Enter to render; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// coordinate table setup (rows filled per layer)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	if len(scene.Layers) > 0 {
		m.status = summaryStatus(scene)
	}
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// viewBox bounds the finite points of scene. A degenerate box is padded so
// single points and axis-aligned segments still map onto the canvas.
func viewBox(scene render.Scene) geom.BBox {
	var xs, ys []float64
	for _, l := range scene.Layers {
		for j := 0; j < pointCount(l); j++ {
			if finite(l.Xs[j]) && finite(l.Ys[j]) {
				xs = append(xs, l.Xs[j])
				ys = append(ys, l.Ys[j])
			}
		}
	}
	bb := geom.Bounds(xs, ys)
	if bb.Width() <= 0 {
		bb.MinX--
		bb.MaxX++
	}
	if bb.Height() <= 0 {
		bb.MinY--
		bb.MaxY++
	}
	return bb
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// addLayer appends l (already closed if needed) and makes it visible.
func (m *Model) addLayer(l render.Layer) {
	m.scene.Layers = append(m.scene.Layers, l)
	m.visible = append(m.visible, true)
	m.bbox = viewBox(m.scene)
	m.refreshLayers()
}

// Layers reports the scene as currently held by the viewer, including pasted layers.
func (m Model) Layers() []render.Layer { return m.scene.Layers }

// Visible reports whether layer i is drawn.
func (m Model) Visible(i int) bool { return i >= 0 && i < len(m.visible) && m.visible[i] }
