package app

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hullview/internal/config"
	"hullview/internal/geom"
	"hullview/internal/render"
)

func quietLogger() *log.Logger { return log.New(io.Discard) }

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestRun_ThreeDatasets(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{Datasets: []config.Dataset{
		{Label: "sorted set", Path: write(t, dir, "sorted_set.txt", "[[0,0],[2,1],[4,0]]"), Annotate: render.AnnotateIndex, Line: config.Bool(false)},
		{Label: "convex hull", Path: write(t, dir, "convex_hull.txt", "[[0,0],[4,0],[2,3]]"), Close: true},
		{Label: "start", Path: write(t, dir, "start.txt", "[[0,0]]"), Annotate: render.AnnotateLabel},
	}}

	rec := &render.Recorder{}
	require.NoError(t, Run(cfg, rec, quietLogger()))
	scene, ok := rec.Last()
	require.True(t, ok)
	require.Len(t, scene.Layers, 3)

	assert.Equal(t, []float64{0, 2, 4}, scene.Layers[0].Xs)
	assert.False(t, scene.Layers[0].Line)
	assert.Equal(t, []float64{0, 4, 2, 0}, scene.Layers[1].Xs)
	assert.Equal(t, []float64{0, 0, 3, 0}, scene.Layers[1].Ys)
	assert.Equal(t, []string{"start"}, scene.Layers[2].Annotations())
	assert.True(t, scene.Style.InvertY)
}

func TestLoadLayers_SkipsMissingOptional(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{Datasets: []config.Dataset{
		{Label: "sorted set", Path: filepath.Join(dir, "sorted_set.txt"), Optional: true},
		{Label: "convex hull", Path: write(t, dir, "convex_hull.txt", "[[1,2],[3,4]]"), Close: true},
	}}
	layers, err := LoadLayers(cfg, quietLogger())
	require.NoError(t, err)
	require.Len(t, layers, 1)
	assert.Equal(t, "convex hull", layers[0].Label)
}

func TestLoadLayers_MissingRequired(t *testing.T) {
	cfg := config.Config{Datasets: []config.Dataset{
		{Path: filepath.Join(t.TempDir(), "convex_hull.txt")},
	}}
	_, err := LoadLayers(cfg, quietLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "convex_hull.txt")
}

func TestLoadLayers_OptionalStillParsed(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{Datasets: []config.Dataset{
		{Path: write(t, dir, "start.txt", "[[1,2],[3]]"), Optional: true},
	}}
	_, err := LoadLayers(cfg, quietLogger())
	assert.ErrorIs(t, err, geom.ErrFormat)
}

func TestLoadLayers_AllOptionalMissing(t *testing.T) {
	cfg := config.Config{Datasets: []config.Dataset{
		{Path: filepath.Join(t.TempDir(), "a.txt"), Optional: true},
	}}
	_, err := LoadLayers(cfg, quietLogger())
	assert.ErrorIs(t, err, geom.ErrEmptyInput)
}

func TestRun_ParseErrorSkipsSink(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{Datasets: []config.Dataset{
		{Path: write(t, dir, "convex_hull.txt", "[[a,2]]"), Close: true},
	}}
	rec := &render.Recorder{}
	err := Run(cfg, rec, quietLogger())
	assert.ErrorIs(t, err, geom.ErrParse)
	assert.Empty(t, rec.Scenes)
}

func TestSink(t *testing.T) {
	viewer := &render.Recorder{}
	s, err := Sink(config.Default(), viewer)
	require.NoError(t, err)
	assert.Same(t, viewer, s)

	cfg := config.Default()
	cfg.Output = "hull.png"
	cfg.Width = "3in"
	s, err = Sink(cfg, viewer)
	require.NoError(t, err)
	img, ok := s.(render.ImageSink)
	require.True(t, ok)
	assert.Equal(t, "hull.png", img.Path)
}
