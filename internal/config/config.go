// Package config describes which datasets to plot and how.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"

	"hullview/internal/geom"
	"hullview/internal/render"
)

const DefaultPath = "hullview.yaml"

// Dataset is one named input file. Optional datasets are skipped when the file
// does not exist.
type Dataset struct {
	Label    string              `yaml:"label"`
	Path     string              `yaml:"path"`
	Close    bool                `yaml:"close"`
	Annotate render.AnnotateMode `yaml:"annotate"`
	Marker   *bool               `yaml:"marker"`
	Line     *bool               `yaml:"line"`
	Optional bool                `yaml:"optional"`
}

type Config struct {
	Title    string    `yaml:"title"`
	InvertY  *bool     `yaml:"invert_y"`
	Markers  *bool     `yaml:"markers"`
	Lines    *bool     `yaml:"lines"`
	Output   string    `yaml:"output"`
	Width    string    `yaml:"width"`
	Height   string    `yaml:"height"`
	Datasets []Dataset `yaml:"datasets"`
}

// Default plots convex_hull.txt from the working directory as a closed polygon.
func Default() Config {
	return Config{
		Title: "convex hull",
		Datasets: []Dataset{
			{Label: "convex hull", Path: "convex_hull.txt", Close: true},
		},
	}
}

// Load reads a YAML config. Relative dataset paths are resolved against the
// directory holding the file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	dir := filepath.Dir(path)
	for i, d := range cfg.Datasets {
		if d.Path != "" && !filepath.IsAbs(d.Path) {
			cfg.Datasets[i].Path = filepath.Join(dir, d.Path)
		}
	}
	return cfg, nil
}

// Parse decodes and validates a YAML config.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if len(c.Datasets) == 0 {
		return errors.New("no datasets configured")
	}
	seen := make(map[string]bool, len(c.Datasets))
	for i, d := range c.Datasets {
		if strings.TrimSpace(d.Path) == "" {
			return fmt.Errorf("dataset %d: empty path", i)
		}
		if !geom.Supported(d.Path) {
			return fmt.Errorf("dataset %d: unsupported file %q", i, d.Path)
		}
		label := d.LabelOrBase()
		if seen[label] {
			return fmt.Errorf("dataset %d: duplicate label %q", i, label)
		}
		seen[label] = true
	}
	if c.Output != "" && !render.SupportedImage(c.Output) {
		return fmt.Errorf("output %q: unsupported image format", c.Output)
	}
	if _, _, err := c.Size(); err != nil {
		return err
	}
	return nil
}

// LabelOrBase returns the label, falling back to the file's base name.
func (d Dataset) LabelOrBase() string {
	if d.Label != "" {
		return d.Label
	}
	return strings.TrimSuffix(filepath.Base(d.Path), filepath.Ext(d.Path))
}

// Layer turns a dataset and its parsed points into a render layer.
func (d Dataset) Layer(xs, ys []float64) render.Layer {
	return render.Layer{
		Label:    d.LabelOrBase(),
		Xs:       xs,
		Ys:       ys,
		Close:    d.Close,
		Annotate: d.Annotate,
		Marker:   boolOr(d.Marker, true),
		Line:     boolOr(d.Line, true),
	}
}

func (c Config) Style() render.Style {
	s := render.DefaultStyle()
	if c.Title != "" {
		s.Title = c.Title
	}
	s.InvertY = boolOr(c.InvertY, true)
	s.Markers = boolOr(c.Markers, true)
	s.Lines = boolOr(c.Lines, true)
	return s
}

// Size parses Width and Height ("6in", "15cm", "400pt"). Zero means the sink default.
func (c Config) Size() (w, h vg.Length, err error) {
	if c.Width != "" {
		if w, err = vg.ParseLength(c.Width); err != nil {
			return 0, 0, fmt.Errorf("width: %w", err)
		}
	}
	if c.Height != "" {
		if h, err = vg.ParseLength(c.Height); err != nil {
			return 0, 0, fmt.Errorf("height: %w", err)
		}
	}
	return w, h, nil
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

// Bool returns a pointer to v, for building configs in code.
func Bool(v bool) *bool { return &v }
