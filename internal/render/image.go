package render

import (
	"fmt"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ImageSink saves the scene to Path. The format follows the extension
// (png, svg, pdf, jpg, jpeg, eps, tif, tiff).
type ImageSink struct {
	Path   string
	Width  vg.Length
	Height vg.Length
}

func (s ImageSink) Draw(scene Scene) error {
	if !SupportedImage(s.Path) {
		return fmt.Errorf("unsupported image format: %q", filepath.Ext(s.Path))
	}
	p, err := NewPlot(scene)
	if err != nil {
		return err
	}
	w, h := s.Width, s.Height
	if w <= 0 {
		w = 6 * vg.Inch
	}
	if h <= 0 {
		h = w
	}
	if err := p.Save(w, h, s.Path); err != nil {
		return fmt.Errorf("save %s: %w", s.Path, err)
	}
	return nil
}

// SupportedImage reports whether path has an extension ImageSink can write.
func SupportedImage(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".svg", ".pdf", ".jpg", ".jpeg", ".eps", ".tif", ".tiff":
		return true
	}
	return false
}

// NewPlot builds the gonum plot for scene: scatter markers, a connecting line
// and annotations per layer, with the Y axis inverted when the style asks for it.
func NewPlot(scene Scene) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = scene.Style.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	if scene.Style.InvertY {
		p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	}
	p.Add(plotter.NewGrid())

	for i, l := range scene.Layers {
		xys := make(plotter.XYs, len(l.Xs))
		for j := range l.Xs {
			xys[j].X, xys[j].Y = l.Xs[j], l.Ys[j]
		}
		var legend []plot.Thumbnailer
		if scene.Style.Lines && l.Line {
			line, err := plotter.NewLine(xys)
			if err != nil {
				return nil, fmt.Errorf("layer %q: %w", l.Label, err)
			}
			line.LineStyle = layerLineStyle(i)
			p.Add(line)
			legend = append(legend, line)
		}
		if scene.Style.Markers && l.Marker {
			sc, err := plotter.NewScatter(xys)
			if err != nil {
				return nil, fmt.Errorf("layer %q: %w", l.Label, err)
			}
			sc.GlyphStyle = layerGlyphStyle(i)
			p.Add(sc)
			legend = append(legend, sc)
		}
		if ann := l.Annotations(); len(ann) > 0 {
			labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys[:len(ann)], Labels: ann})
			if err != nil {
				return nil, fmt.Errorf("layer %q: %w", l.Label, err)
			}
			labels.Offset = vg.Point{X: glyphRadius + 1, Y: glyphRadius + 1}
			p.Add(labels)
		}
		if l.Label != "" && len(legend) > 0 {
			p.Legend.Add(l.Label, legend...)
		}
	}
	return p, nil
}
