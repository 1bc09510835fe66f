// Package render turns parsed point sequences into a Scene and hands it to a Sink.
package render

import (
	"fmt"

	"hullview/internal/geom"
)

// Sink is anything that can present a Scene: an interactive viewer, an image
// file, or a recorder in tests. Draw may block until the viewer is dismissed.
type Sink interface {
	Draw(Scene) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Scene) error

func (f SinkFunc) Draw(s Scene) error { return f(s) }

// Style holds presentation switches shared by every layer.
type Style struct {
	Title   string
	InvertY bool
	Markers bool
	Lines   bool
}

func DefaultStyle() Style {
	return Style{Title: "convex hull", InvertY: true, Markers: true, Lines: true}
}

// Layer is one dataset to draw.
type Layer struct {
	Label    string
	Xs, Ys   []float64
	Close    bool
	Annotate AnnotateMode
	Marker   bool
	Line     bool
}

// Scene is what a Sink receives: closed, validated layers plus the style.
type Scene struct {
	Style  Style
	Layers []Layer
}

// Bounds covers every point of every layer.
func (s Scene) Bounds() geom.BBox {
	var xs, ys []float64
	for _, l := range s.Layers {
		xs = append(xs, l.Xs...)
		ys = append(ys, l.Ys...)
	}
	return geom.Bounds(xs, ys)
}

// Render validates the layers, closes those marked Close, and passes the scene
// to sink. Nothing reaches the sink if any layer is invalid.
func Render(layers []Layer, style Style, sink Sink) error {
	if len(layers) == 0 {
		return geom.ErrEmptyInput
	}
	scene, err := BuildScene(layers, style)
	if err != nil {
		return err
	}
	return sink.Draw(scene)
}

// BuildScene is Render without the sink.
func BuildScene(layers []Layer, style Style) (Scene, error) {
	scene := Scene{Style: style, Layers: make([]Layer, 0, len(layers))}
	for _, l := range layers {
		if err := geom.CheckAligned(l.Xs, l.Ys); err != nil {
			return Scene{}, fmt.Errorf("layer %q: %w", l.Label, err)
		}
		if l.Close {
			xs, ys, err := geom.ClosePolygon(l.Xs, l.Ys)
			if err != nil {
				return Scene{}, fmt.Errorf("layer %q: %w", l.Label, err)
			}
			l.Xs, l.Ys = xs, ys
		}
		scene.Layers = append(scene.Layers, l)
	}
	return scene, nil
}
