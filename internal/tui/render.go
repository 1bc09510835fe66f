package tui

import (
	"strconv"
	"strings"

	"hullview/internal/render"
)

// normalize maps data coordinates into the zoomed unit square, with y
// pointing down when invertY is set.
func (m Model) normalize(x, y float64) (float64, float64) {
	nx := unit(x, m.bbox.MinX, m.bbox.MaxX)
	ny := unit(y, m.bbox.MinY, m.bbox.MaxY)
	if !m.invertY {
		ny = 1 - ny
	}
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	return zx, zy
}

// unit places v on [lo, hi] as a fraction. Halving first keeps the span
// finite for boxes as wide as the float64 range.
func unit(v, lo, hi float64) float64 {
	return (v/2 - lo/2) / (hi/2 - lo/2)
}

// lerp is the inverse of unit.
func lerp(t, lo, hi float64) float64 {
	d := t * (hi/2 - lo/2)
	return lo + d + d
}

// screenInt truncates a screen coordinate, saturating far off-canvas values.
func screenInt(v float64) int {
	const limit = 1 << 24
	switch {
	case v > limit:
		return limit
	case v < -limit:
		return -limit
	}
	return int(v)
}

// screenXYMicro maps data coordinates into a 2x4 microgrid per cell for braille rendering.
func (m Model) screenXYMicro(x, y float64, w, h int) (int, int) {
	zx, zy := m.normalize(x, y)
	sx := screenInt(zx*float64(w*2-1)) + m.offsetX*2
	sy := screenInt(zy*float64(h*4-1)) + m.offsetY*4
	return sx, sy
}

// screenXY maps data coordinates to cell coordinates considering zoom and pan.
func (m Model) screenXY(x, y float64, w, h int) (int, int) {
	zx, zy := m.normalize(x, y)
	sx := screenInt(zx*float64(w-1)) + m.offsetX
	sy := screenInt(zy*float64(h-1)) + m.offsetY
	return sx, sy
}

// cellToXY converts a map cell back to data coordinates.
func (m Model) cellToXY(cx, cy, w, h int) (float64, float64, bool) {
	if w <= 1 || h <= 1 {
		return 0, 0, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := float64(cy-m.offsetY) / float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	if !m.invertY {
		ny = 1 - ny
	}
	return lerp(nx, m.bbox.MinX, m.bbox.MaxX), lerp(ny, m.bbox.MinY, m.bbox.MaxY), true
}

func (m Model) colors() []string {
	out := make([]string, len(m.scene.Layers))
	for i := range out {
		out[i] = render.PaletteHex(i)
	}
	return out
}

func (m Model) renderMap(w, h int) string {
	c := newCanvas(w, h)
	style := m.scene.Style
	for i, l := range m.scene.Layers {
		if !m.visible[i] {
			continue
		}
		if style.Lines && l.Line {
			for j := 1; j < len(l.Xs); j++ {
				if !vertexFinite(l, j-1) || !vertexFinite(l, j) {
					continue
				}
				x0, y0 := m.screenXYMicro(l.Xs[j-1], l.Ys[j-1], w, h)
				x1, y1 := m.screenXYMicro(l.Xs[j], l.Ys[j], w, h)
				c.drawLine(x0, y0, x1, y1, i)
			}
		}
		if style.Markers && l.Marker {
			for j := range l.Xs {
				if !vertexFinite(l, j) {
					continue
				}
				mx, my := m.screenXYMicro(l.Xs[j], l.Ys[j], w, h)
				c.drawMarker(mx, my, i)
			}
		}
	}
	// annotations go on top of every layer's dots
	for i, l := range m.scene.Layers {
		if !m.visible[i] {
			continue
		}
		for j, text := range l.Annotations() {
			if text == "" || !vertexFinite(l, j) {
				continue
			}
			cx, cy := m.screenXY(l.Xs[j], l.Ys[j], w, h)
			c.putText(cx+1, cy, text, i)
		}
	}
	if m.hovering {
		c.putText(m.hoverMicX/2, m.hoverMicY/4, "◯", hoverOwner)
	}
	return strings.Join(c.lines(m.colors()), "\n")
}

func vertexFinite(l render.Layer, j int) bool {
	return finite(l.Xs[j]) && finite(l.Ys[j])
}

type vertex struct {
	layer, index int
	x, y         float64
}

// nearestVertex finds the visible vertex closest to micro-pixel (mx, my).
func (m Model) nearestVertex(mx, my, w, h int) (vertex, int, int, bool) {
	best, found := 0, false
	var bv vertex
	var bx, by int
	for i, l := range m.scene.Layers {
		if !m.visible[i] {
			continue
		}
		for j := 0; j < pointCount(l); j++ {
			if !vertexFinite(l, j) {
				continue
			}
			sx, sy := m.screenXYMicro(l.Xs[j], l.Ys[j], w, h)
			dx := sx - mx
			dy := sy - my
			d := dx*dx + dy*dy
			if !found || d < best {
				best, found = d, true
				bv = vertex{layer: i, index: j, x: l.Xs[j], y: l.Ys[j]}
				bx, by = sx, sy
			}
		}
	}
	return bv, bx, by, found
}

// inspectNearest finds the vertex closest to the viewport centre.
func (m Model) inspectNearest() (vertex, bool) {
	w, h := m.mapW, m.mapH
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	v, _, _, ok := m.nearestVertex(w, h*2, w, h)
	return v, ok
}

func formatXY(x, y float64) string {
	return "x=" + strconv.FormatFloat(x, 'f', 4, 64) + " y=" + strconv.FormatFloat(y, 'f', 4, 64)
}
