package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shaiso/Starfield/internal/domain"
	"github.com/shaiso/Starfield/internal/mq"
	"github.com/shaiso/Starfield/internal/repo"
	"github.com/shaiso/Starfield/internal/telemetry"
)

// ErrSinkFailed — хотя бы один sink не принял анализ.
var ErrSinkFailed = errors.New("sink failed")

// Sink получает сводку завершённого анализа.
type Sink interface {
	Name() string
	Deliver(ctx context.Context, a *domain.Analysis) error
}

// NewSinks собирает sinks, включённые в cfg.
func NewSinks(cfg Config, metrics *telemetry.Metrics, logger *slog.Logger) []Sink {
	var sinks []Sink

	if cfg.MetricsTextfile != "" {
		sinks = append(sinks, &metricsSink{metrics: metrics, path: cfg.MetricsTextfile})
	}
	if cfg.DatabaseURL != "" {
		sinks = append(sinks, &dbSink{dsn: cfg.DatabaseURL})
	}
	if cfg.RabbitMQURL != "" {
		sinks = append(sinks, &mqSink{url: cfg.RabbitMQURL, logger: logger})
	}

	return sinks
}

// deliver отдаёт анализ каждому sink. Ошибка одного sink
// не мешает остальным.
func deliver(ctx context.Context, sinks []Sink, a *domain.Analysis) error {
	var errs []error
	for _, s := range sinks {
		if err := s.Deliver(ctx, a); err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %w", ErrSinkFailed, s.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// metricsSink выгружает метрики в textfile.
type metricsSink struct {
	metrics *telemetry.Metrics
	path    string
}

func (s *metricsSink) Name() string { return "metrics" }

func (s *metricsSink) Deliver(_ context.Context, a *domain.Analysis) error {
	s.metrics.Record(a)
	return s.metrics.WriteTextfile(s.path)
}

// dbSink сохраняет анализ в PostgreSQL.
type dbSink struct {
	dsn string
}

func (s *dbSink) Name() string { return "database" }

func (s *dbSink) Deliver(ctx context.Context, a *domain.Analysis) error {
	pool, err := repo.NewPool(ctx, s.dsn)
	if err != nil {
		return err
	}
	defer pool.Close()

	analyses := repo.NewAnalysisRepo(pool)
	if err := analyses.EnsureSchema(ctx); err != nil {
		return err
	}
	return analyses.Create(ctx, a)
}

// mqSink публикует analysis.completed.
type mqSink struct {
	url    string
	logger *slog.Logger
}

func (s *mqSink) Name() string { return "rabbitmq" }

func (s *mqSink) Deliver(ctx context.Context, a *domain.Analysis) error {
	conn, err := mq.NewConnection(ctx, s.url, s.logger)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := mq.SetupTopology(ctx, conn); err != nil {
		return err
	}
	return mq.NewPublisher(conn, s.logger).PublishAnalysisCompleted(ctx, a)
}
