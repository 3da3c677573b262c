// Package experiment runs one decay simulation end to end: resolve the
// strain, validate and compute, then write and present the artifacts.
package experiment

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/san-kum/mycodecay/internal/decay"
	"github.com/san-kum/mycodecay/internal/logging"
	"github.com/san-kum/mycodecay/internal/plot"
	"github.com/san-kum/mycodecay/internal/report"
	"github.com/san-kum/mycodecay/internal/strain"
	"github.com/san-kum/mycodecay/internal/viz"
)

type Config struct {
	Strain        string
	Days          int
	InitialFibers float64
	PlotPath      string
	OutputDir     string
	Theme         viz.Theme
}

// Presenter shows a rendered plot to the user.
type Presenter interface {
	Present(ctx context.Context, run *decay.Run, a viz.Artifacts) error
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(ctx context.Context, run *decay.Run, a viz.Artifacts) error

func (f PresenterFunc) Present(ctx context.Context, run *decay.Run, a viz.Artifacts) error {
	return f(ctx, run, a)
}

type Experiment struct {
	cfg       Config
	logger    *slog.Logger
	out       io.Writer
	presenter Presenter
}

func New(cfg Config) *Experiment {
	if cfg.PlotPath == "" {
		cfg.PlotPath = plot.DefaultPath
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = report.DefaultDir
	}
	if cfg.Theme.Name == "" {
		cfg.Theme = viz.ThemeMycelium
	}
	return &Experiment{
		cfg:    cfg,
		logger: logging.Discard(),
		out:    os.Stdout,
	}
}

// Setup wires the experiment's logger, summary destination and presenter.
// Nil arguments keep the defaults; a nil presenter skips presentation.
func (e *Experiment) Setup(logger *slog.Logger, out io.Writer, presenter Presenter) {
	if logger != nil {
		e.logger = logger
	}
	if out != nil {
		e.out = out
	}
	e.presenter = presenter
}

// Run executes the simulation. Invalid input is reported before any file is
// written. Interruption between steps returns ctx.Err(). A run that stops
// after the plot is saved removes it again, so either both artifacts exist
// or neither was produced by this run.
func (e *Experiment) Run(ctx context.Context) (*decay.Run, error) {
	p := strain.Resolve(e.cfg.Strain, e.logger)

	run, err := decay.Simulate(p, e.cfg.Days, e.cfg.InitialFibers)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("simulated decay",
		"strain", p.ID, "days", run.Days, "initial_fibers", run.InitialFibers,
		"remaining", run.Remaining(), "risk_score", run.RiskScore)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := plot.Save(run, e.cfg.PlotPath); err != nil {
		return nil, fmt.Errorf("save plot: %w", err)
	}
	e.logger.Debug("plot written", "path", e.cfg.PlotPath)

	artifacts := viz.Artifacts{Plot: e.cfg.PlotPath}
	if e.presenter != nil {
		if err := e.presenter.Present(ctx, run, artifacts); err != nil {
			e.discardPlot()
			return nil, fmt.Errorf("present plot: %w", err)
		}
	}

	if err := ctx.Err(); err != nil {
		e.discardPlot()
		return nil, err
	}

	path, err := report.New(e.cfg.OutputDir).Write(run)
	if err != nil {
		e.discardPlot()
		return nil, fmt.Errorf("write report: %w", err)
	}
	e.logger.Debug("report written", "path", path, "rows", report.RowCount(run.Days))
	artifacts.Report = path

	fmt.Fprintf(e.out, "\n%s\n\n", viz.Summary(run, artifacts, e.cfg.Theme))

	return run, nil
}

func (e *Experiment) discardPlot() {
	if err := os.Remove(e.cfg.PlotPath); err != nil && !os.IsNotExist(err) {
		e.logger.Warn("could not remove plot", "path", e.cfg.PlotPath, "err", err)
	}
}
