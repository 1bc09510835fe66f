package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"hullview/internal/app"
	"hullview/internal/config"
	"hullview/internal/geom"
	"hullview/internal/render"
	"hullview/internal/tui"
)

type rootOptions struct {
	configPath string
	output     string
	title      string
	noInvert   bool
	open       bool
	debug      bool
	dryRun     bool

	viewer render.Sink
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(tui.Sink{})
}

func newRootCmdWith(viewer render.Sink) *cobra.Command {
	opts := &rootOptions{viewer: viewer}
	cmd := &cobra.Command{
		Use:   "hullview [file...]",
		Short: "Plot coordinate lists as closed polygons",
		Long: `Plot coordinate lists such as [[x0,y0],[x1,y1],...] as closed polygons
with scatter markers and connecting lines. The y axis points down by default.

Without file arguments the datasets come from --config, or from hullview.yaml
if present, or convex_hull.txt in the working directory.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args, opts, newLogger(cmd.ErrOrStderr(), opts.debug))
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML file listing datasets and style")
	f.StringVarP(&opts.output, "output", "o", "", "write the plot to this image file instead of opening the viewer")
	f.StringVar(&opts.title, "title", "", "plot title")
	f.BoolVar(&opts.noInvert, "no-invert", false, "draw y growing upward")
	f.BoolVar(&opts.open, "open", false, "do not close polygons given as file arguments")
	f.BoolVar(&opts.dryRun, "dry-run", false, "parse and validate, print a summary, do not render")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(newParseCmd(opts))
	return cmd
}

func newLogger(w io.Writer, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{Prefix: "hullview"})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func runRoot(cmd *cobra.Command, args []string, opts *rootOptions, logger *log.Logger) error {
	cfg, err := resolveConfig(opts, args, logger)
	if err != nil {
		return err
	}
	if opts.dryRun {
		rec := &render.Recorder{}
		if err := app.Run(cfg, rec, logger); err != nil {
			return err
		}
		scene, _ := rec.Last()
		return printSummary(cmd.OutOrStdout(), scene)
	}
	sink, err := app.Sink(cfg, opts.viewer)
	if err != nil {
		return err
	}
	if err := app.Run(cfg, sink, logger); err != nil {
		return err
	}
	if cfg.Output != "" {
		logger.Info("wrote plot", "path", cfg.Output)
	}
	return nil
}

// resolveConfig layers file arguments and flags over the config file or defaults.
func resolveConfig(opts *rootOptions, args []string, logger *log.Logger) (config.Config, error) {
	cfg := config.Default()
	path := opts.configPath
	if path == "" {
		if _, err := os.Stat(config.DefaultPath); err == nil {
			path = config.DefaultPath
		} else if !errors.Is(err, fs.ErrNotExist) {
			return config.Config{}, err
		}
	}
	if path != "" {
		c, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		logger.Debug("using config", "path", path, "datasets", len(c.Datasets))
		cfg = c
	}
	if len(args) > 0 {
		cfg.Datasets = nil
		for _, a := range args {
			cfg.Datasets = append(cfg.Datasets, config.Dataset{Path: a, Close: !opts.open})
		}
		if opts.title == "" && len(args) == 1 {
			cfg.Title = cfg.Datasets[0].LabelOrBase()
		}
	}
	if opts.output != "" {
		cfg.Output = opts.output
	}
	if opts.title != "" {
		cfg.Title = opts.title
	}
	if opts.noInvert {
		cfg.InvertY = config.Bool(false)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func printSummary(w io.Writer, scene render.Scene) error {
	for _, l := range scene.Layers {
		n := len(l.Xs)
		if l.Close && n > 1 {
			n--
		}
		sum, err := geom.Summarize(l.Xs[:n], l.Ys[:n])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s: %d points, bbox [%g %g %g %g], centroid (%g, %g), closed=%v\n",
			l.Label, sum.Count, sum.BBox.MinX, sum.BBox.MinY, sum.BBox.MaxX, sum.BBox.MaxY,
			sum.CentroidX, sum.CentroidY, l.Close)
		if err != nil {
			return err
		}
	}
	return nil
}
