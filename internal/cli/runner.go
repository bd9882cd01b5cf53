package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/shaiso/Starfield/internal/domain"
	"github.com/shaiso/Starfield/internal/engine"
	"github.com/shaiso/Starfield/internal/telemetry"
)

// Runner выполняет анализ одного файла.
type Runner struct {
	Output  *Output
	Logger  *slog.Logger
	Metrics *telemetry.Metrics
	Sinks   []Sink
}

// Run разбирает файл, печатает отчёт и передаёт сводку в sinks.
//
// Ошибка разбора возвращается до того, как что-либо напечатано.
// Ошибки sinks только логируются.
func (r *Runner) Run(ctx context.Context, path string) (*domain.Analysis, error) {
	a := domain.NewAnalysis(path)
	logger := telemetry.WithAnalysisID(r.Logger, a.ID.String())
	ctx = telemetry.WithLogger(ctx, logger)

	a.MarkRunning()
	logger.Info("reading file", "path", path)

	start := time.Now()
	initial, err := engine.ParseFile(path)
	r.Metrics.ObserveStage(engine.StageParse, time.Since(start))
	if err != nil {
		a.MarkFailed(err.Error())
		logger.Error("analysis failed", "error", err)
		r.deliver(ctx, a)
		return a, err
	}

	logger.Debug("parsed",
		"width", initial.Grid.Width(),
		"height", initial.Grid.Height(),
		"galaxies", len(initial.Galaxies),
		"expand_rows", len(initial.Plan.Rows),
		"expand_columns", len(initial.Plan.Columns),
	)

	expanded, res := engine.Analyze(initial, r.Metrics.ObserveStage)
	a.MarkSucceeded(initial, expanded, res)

	r.Output.Report(initial, expanded, res)

	logger.Info("analysis finished",
		"galaxies", a.Galaxies,
		"pairs", a.Pairs,
		"sum", a.Sum,
		"duration", a.Duration(),
	)

	r.deliver(ctx, a)
	return a, nil
}

func (r *Runner) deliver(ctx context.Context, a *domain.Analysis) {
	if err := deliver(ctx, r.Sinks, a); err != nil {
		telemetry.FromContext(ctx).Warn("failed to deliver analysis", "error", err)
	}
}
