// Package app wires configuration, loading and rendering together.
package app

import (
	"errors"
	"io/fs"

	"github.com/charmbracelet/log"

	"hullview/internal/config"
	"hullview/internal/geom"
	"hullview/internal/render"
)

// LoadLayers reads every configured dataset in order. Optional datasets whose
// file is missing are skipped; any other failure stops loading.
func LoadLayers(cfg config.Config, logger *log.Logger) ([]render.Layer, error) {
	layers := make([]render.Layer, 0, len(cfg.Datasets))
	for _, d := range cfg.Datasets {
		s, err := geom.Load(d.Path)
		if err != nil {
			if d.Optional && errors.Is(err, fs.ErrNotExist) {
				logger.Warn("skipping optional dataset", "label", d.LabelOrBase(), "path", d.Path)
				continue
			}
			return nil, err
		}
		logger.Debug("loaded dataset", "label", d.LabelOrBase(), "path", d.Path, "points", s.Len())
		layers = append(layers, d.Layer(s.Xs, s.Ys))
	}
	if len(layers) == 0 {
		return nil, geom.ErrEmptyInput
	}
	return layers, nil
}

// Sink picks the image sink when cfg names an output file, otherwise viewer.
func Sink(cfg config.Config, viewer render.Sink) (render.Sink, error) {
	if cfg.Output == "" {
		return viewer, nil
	}
	w, h, err := cfg.Size()
	if err != nil {
		return nil, err
	}
	return render.ImageSink{Path: cfg.Output, Width: w, Height: h}, nil
}

// Run loads the datasets and renders them. It returns once the sink is done,
// which for the interactive viewer means once the user has closed it.
func Run(cfg config.Config, sink render.Sink, logger *log.Logger) error {
	layers, err := LoadLayers(cfg, logger)
	if err != nil {
		return err
	}
	logger.Debug("rendering", "layers", len(layers), "invert_y", cfg.Style().InvertY)
	return render.Render(layers, cfg.Style(), sink)
}
