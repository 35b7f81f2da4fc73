package analyzer

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"

	"github.com/google/uuid"

	"github.com/northloop/trendlens-cli/internal/charts"
	"github.com/northloop/trendlens-cli/internal/dataset"
	"github.com/northloop/trendlens-cli/internal/report"
)

// Analyzer runs the full pipeline: load and clean the dataset, print the
// statistics report, render the composed chart figure. Loading is the only
// fatal step; a reporter failure degrades to an error log and the charts
// still render.
type Analyzer struct {
	Path      string
	ChartPath string
	ChartOpts charts.Options
	Out       io.Writer
	Log       *slog.Logger
}

// Run executes the pipeline. The returned error is non-nil only when the
// dataset could not be loaded or the figure could not be written.
func (a *Analyzer) Run() error {
	log := a.Log.With("run_id", uuid.NewString())

	ds, err := dataset.LoadClean(a.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Error("dataset not found", "path", a.Path)
		} else {
			log.Error("failed to load dataset", "path", a.Path, "error", err)
		}
		return err
	}
	log.Info("dataset loaded and cleaned", "path", a.Path, "rows", len(ds.Rows), "columns", len(ds.Columns))

	if err := report.New(a.Out).Print(ds); err != nil {
		// Fatal to the reporter step only; charts still run.
		log.Error("statistics report failed", "error", err)
	}

	if err := charts.Render(ds, a.ChartPath, a.ChartOpts, log); err != nil {
		log.Error("failed to render charts", "error", err)
		return err
	}

	log.Info("analysis complete", "figure", a.ChartPath)
	return nil
}
