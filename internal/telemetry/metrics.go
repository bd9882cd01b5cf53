package telemetry

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/shaiso/Starfield/internal/domain"
)

// Значения label stage для размеров сетки.
const (
	stageInitial  = "initial"
	stageExpanded = "expanded"
)

// Metrics — метрики одного анализа.
//
// Registry собственный, а не prometheus.DefaultRegisterer:
// в textfile попадают только метрики starfield.
type Metrics struct {
	registry *prometheus.Registry

	galaxies        prometheus.Gauge
	pairs           prometheus.Gauge
	distanceSum     prometheus.Gauge
	expandedRows    prometheus.Gauge
	expandedColumns prometheus.Gauge
	gridWidth       *prometheus.GaugeVec
	gridHeight      *prometheus.GaugeVec
	stageDuration   *prometheus.HistogramVec
	analyses        *prometheus.CounterVec
}

// NewMetrics создаёт и регистрирует метрики.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		galaxies: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "starfield_galaxies",
			Help: "Number of galaxies in the analysed space",
		}),
		pairs: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "starfield_pairs",
			Help: "Number of galaxy pairs measured",
		}),
		distanceSum: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "starfield_distance_sum",
			Help: "Sum of Manhattan distances between all galaxy pairs after expansion",
		}),
		expandedRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "starfield_expanded_rows",
			Help: "Number of empty rows duplicated by expansion",
		}),
		expandedColumns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "starfield_expanded_columns",
			Help: "Number of empty columns duplicated by expansion",
		}),
		gridWidth: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "starfield_grid_width",
			Help: "Grid width in cells",
		}, []string{"stage"}),
		gridHeight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "starfield_grid_height",
			Help: "Grid height in cells",
		}, []string{"stage"}),
		stageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "starfield_stage_duration_seconds",
			Help:    "Duration of pipeline stages",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"stage"}),
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "starfield_analyses_total",
			Help: "Analyses finished, by status",
		}, []string{"status"}),
	}

	m.registry.MustRegister(
		m.galaxies,
		m.pairs,
		m.distanceSum,
		m.expandedRows,
		m.expandedColumns,
		m.gridWidth,
		m.gridHeight,
		m.stageDuration,
		m.analyses,
	)

	return m
}

// Registry возвращает registry с метриками (для тестов и экспорта).
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveStage записывает длительность стадии конвейера.
// Сигнатура совпадает с engine.StageObserver.
func (m *Metrics) ObserveStage(stage string, d time.Duration) {
	m.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// Record переносит сводку анализа в метрики.
func (m *Metrics) Record(a *domain.Analysis) {
	m.analyses.WithLabelValues(string(a.Status)).Inc()
	if a.Status != domain.AnalysisStatusSucceeded {
		return
	}

	m.galaxies.Set(float64(a.Galaxies))
	m.pairs.Set(float64(a.Pairs))
	m.distanceSum.Set(float64(a.Sum))
	m.expandedRows.Set(float64(a.ExpandedRows))
	m.expandedColumns.Set(float64(a.ExpandedColumns))

	m.gridWidth.WithLabelValues(stageInitial).Set(float64(a.Initial.Width))
	m.gridHeight.WithLabelValues(stageInitial).Set(float64(a.Initial.Height))
	m.gridWidth.WithLabelValues(stageExpanded).Set(float64(a.Expanded.Width))
	m.gridHeight.WithLabelValues(stageExpanded).Set(float64(a.Expanded.Height))
}

// WriteTextfile выгружает метрики в файл в текстовом формате Prometheus.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
