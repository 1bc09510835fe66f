package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	noOwner    = -1
	hoverOwner = -2
)

// canvas is a braille micro-pixel buffer: each terminal cell holds a 2x4 dot
// grid. Cells remember which layer touched them last so they can be coloured,
// and may carry a text rune that overrides the dots.
type canvas struct {
	w, h  int       // in cells
	mask  [][]uint8 // per-cell 8-bit braille mask
	owner [][]int
	text  [][]rune
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h}
	c.mask = make([][]uint8, h)
	c.owner = make([][]int, h)
	c.text = make([][]rune, h)
	for i := 0; i < h; i++ {
		c.mask[i] = make([]uint8, w)
		c.owner[i] = make([]int, w)
		c.text[i] = make([]rune, w)
		for j := range c.owner[i] {
			c.owner[i][j] = noOwner
		}
	}
	return c
}

// braille dot bits indexed by [column][row] within a cell
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (c *canvas) setPixel(mx, my, layer int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= c.h || cx >= c.w {
		return
	}
	c.mask[cy][cx] |= dotBits[rx][ry]
	c.owner[cy][cx] = layer
}

// outcode bits for clipping against the microgrid.
const (
	outLeft = 1 << iota
	outRight
	outTop
	outBottom
)

func (c *canvas) outcode(x, y int) int {
	code := 0
	switch {
	case x < 0:
		code |= outLeft
	case x > c.w*2-1:
		code |= outRight
	}
	switch {
	case y < 0:
		code |= outTop
	case y > c.h*4-1:
		code |= outBottom
	}
	return code
}

// clip trims the segment to the microgrid (Cohen-Sutherland). ok is false when
// nothing of it is visible.
func (c *canvas) clip(x0, y0, x1, y1 int) (int, int, int, int, bool) {
	maxX, maxY := c.w*2-1, c.h*4-1
	if maxX < 0 || maxY < 0 {
		return 0, 0, 0, 0, false
	}
	c0, c1 := c.outcode(x0, y0), c.outcode(x1, y1)
	// each pass puts one endpoint on an edge; integer rounding can nudge it
	// just outside another, so the passes are bounded
	for pass := 0; pass < 8; pass++ {
		switch {
		case c0|c1 == 0:
			return x0, y0, x1, y1, true
		case c0&c1 != 0:
			return 0, 0, 0, 0, false
		}
		out := c0
		if out == 0 {
			out = c1
		}
		var x, y int
		switch {
		case out&outBottom != 0:
			x, y = x0+(x1-x0)*(maxY-y0)/(y1-y0), maxY
		case out&outTop != 0:
			x, y = x0+(x1-x0)*(0-y0)/(y1-y0), 0
		case out&outRight != 0:
			x, y = maxX, y0+(y1-y0)*(maxX-x0)/(x1-x0)
		default:
			x, y = 0, y0+(y1-y0)*(0-x0)/(x1-x0)
		}
		if out == c0 {
			x0, y0, c0 = x, y, c.outcode(x, y)
		} else {
			x1, y1, c1 = x, y, c.outcode(x, y)
		}
	}
	return 0, 0, 0, 0, false
}

// drawLine draws the visible part of a line on the microgrid using Bresenham.
func (c *canvas) drawLine(x0, y0, x1, y1, layer int) {
	x0, y0, x1, y1, ok := c.clip(x0, y0, x1, y1)
	if !ok {
		return
	}
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.setPixel(x0, y0, layer)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// drawMarker draws a small plus centred on a micro-pixel.
func (c *canvas) drawMarker(mx, my, layer int) {
	c.setPixel(mx, my, layer)
	c.setPixel(mx-1, my, layer)
	c.setPixel(mx+1, my, layer)
	c.setPixel(mx, my-1, layer)
	c.setPixel(mx, my+1, layer)
}

// putText writes s starting at cell (cx, cy), clipped to the canvas.
func (c *canvas) putText(cx, cy int, s string, owner int) {
	if cy < 0 || cy >= c.h {
		return
	}
	for i, r := range []rune(s) {
		x := cx + i
		if x < 0 || x >= c.w {
			continue
		}
		c.text[cy][x] = r
		c.owner[cy][x] = owner
	}
}

func (c *canvas) cell(x, y int) rune {
	if r := c.text[y][x]; r != 0 {
		return r
	}
	if m := c.mask[y][x]; m != 0 {
		return rune(0x2800 + int(m))
	}
	return ' '
}

// lines renders the canvas, colouring runs of cells by owning layer.
func (c *canvas) lines(colors []string) []string {
	styleFor := func(owner int) lipgloss.Style {
		switch {
		case owner == hoverOwner:
			return hoverStyle
		case owner >= 0 && len(colors) > 0:
			return lipgloss.NewStyle().Foreground(lipgloss.Color(colors[owner%len(colors)]))
		}
		return lipgloss.NewStyle()
	}
	out := make([]string, c.h)
	for y := 0; y < c.h; y++ {
		var b strings.Builder
		run := make([]rune, 0, c.w)
		runOwner := noOwner
		flush := func() {
			if len(run) == 0 {
				return
			}
			if runOwner == noOwner {
				b.WriteString(string(run))
			} else {
				b.WriteString(styleFor(runOwner).Render(string(run)))
			}
			run = run[:0]
		}
		for x := 0; x < c.w; x++ {
			r := c.cell(x, y)
			o := c.owner[y][x]
			if r == ' ' {
				o = noOwner
			}
			if o != runOwner {
				flush()
				runOwner = o
			}
			run = append(run, r)
		}
		flush()
		out[y] = b.String()
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
