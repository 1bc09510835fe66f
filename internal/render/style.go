package render

import (
	"image/color"
	"strconv"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	lineWidth   = vg.Length(1.5)
	glyphRadius = vg.Length(3)
)

// Palette cycles per layer. Hex strings double as lipgloss colours in the viewer.
var Palette = []string{
	"#1F77B4",
	"#FF7F0E",
	"#2CA02C",
	"#D62728",
	"#9467BD",
	"#8C564B",
}

// PaletteHex returns the colour for layer i.
func PaletteHex(i int) string {
	return Palette[i%len(Palette)]
}

// Color converts "#rrggbb" or "rrggbbaa" to a color.Color; anything else is black.
func Color(hash string) color.Color {
	hash = strings.TrimPrefix(hash, "#")
	if len(hash) != 6 && len(hash) != 8 {
		return color.Black
	}
	c := color.RGBA{A: 255}
	cs := []*uint8{&c.R, &c.G, &c.B, &c.A}
	for i := 0; i < len(hash); i += 2 {
		ui, err := strconv.ParseUint(hash[i:i+2], 16, 8)
		if err != nil {
			return color.Black
		}
		*cs[i/2] = uint8(ui)
	}
	return c
}

func layerLineStyle(i int) draw.LineStyle {
	return draw.LineStyle{Color: Color(PaletteHex(i)), Width: lineWidth}
}

func layerGlyphStyle(i int) draw.GlyphStyle {
	return draw.GlyphStyle{Color: Color(PaletteHex(i)), Radius: glyphRadius, Shape: draw.CircleGlyph{}}
}
