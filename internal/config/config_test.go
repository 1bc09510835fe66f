package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"hullview/internal/render"
)

const sample = `
title: hull debug
invert_y: true
output: out.svg
width: 4in
datasets:
  - label: sorted set
    path: sorted_set.txt
    annotate: index
    line: false
    optional: true
  - label: convex hull
    path: convex_hull.txt
    close: true
  - label: start
    path: /abs/start.txt
    annotate: label
    optional: true
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)
	require.Len(t, cfg.Datasets, 3)

	assert.Equal(t, "hull debug", cfg.Title)
	assert.Equal(t, render.AnnotateIndex, cfg.Datasets[0].Annotate)
	assert.True(t, cfg.Datasets[0].Optional)
	assert.True(t, cfg.Datasets[1].Close)
	assert.Equal(t, render.AnnotateLabel, cfg.Datasets[2].Annotate)

	l := cfg.Datasets[0].Layer([]float64{1}, []float64{2})
	assert.True(t, l.Marker)
	assert.False(t, l.Line)
	assert.False(t, l.Close)

	w, h, err := cfg.Size()
	require.NoError(t, err)
	assert.Equal(t, 4*vg.Inch, w)
	assert.Equal(t, vg.Length(0), h)
}

func TestStyleDefaults(t *testing.T) {
	s := Default().Style()
	assert.True(t, s.InvertY)
	assert.True(t, s.Markers)
	assert.True(t, s.Lines)
	assert.Equal(t, "convex hull", s.Title)

	cfg := Default()
	cfg.InvertY = Bool(false)
	assert.False(t, cfg.Style().InvertY)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Len(t, cfg.Datasets, 1)
	assert.Equal(t, "convex_hull.txt", cfg.Datasets[0].Path)
	assert.True(t, cfg.Datasets[0].Close)
}

func TestValidate(t *testing.T) {
	tests := map[string]string{
		"no datasets":     "title: x\n",
		"empty path":      "datasets:\n  - label: a\n",
		"duplicate label": "datasets:\n  - path: a.txt\n  - path: b/a.txt\n",
		"bad annotate":    "datasets:\n  - path: a.txt\n    annotate: arrows\n",
		"bad output":      "output: plot.bmp\ndatasets:\n  - path: a.txt\n",
		"bad width":       "width: wide\ndatasets:\n  - path: a.txt\n",
		"unknown format":  "datasets:\n  - path: a.kml\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad_ResolvesRelativePaths(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "hullview.yaml")
	require.NoError(t, os.WriteFile(p, []byte(sample), 0o644))

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sorted_set.txt"), cfg.Datasets[0].Path)
	assert.Equal(t, filepath.Join(dir, "convex_hull.txt"), cfg.Datasets[1].Path)
	assert.Equal(t, "/abs/start.txt", cfg.Datasets[2].Path)
	// output is taken as given
	assert.Equal(t, "out.svg", cfg.Output)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLabelOrBase(t *testing.T) {
	assert.Equal(t, "convex_hull", Dataset{Path: "data/convex_hull.txt"}.LabelOrBase())
	assert.Equal(t, "hull", Dataset{Label: "hull", Path: "x.txt"}.LabelOrBase())
}
