package domain

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisStatus — статус выполнения анализа.
//
// Жизненный цикл:
//
//	PENDING → RUNNING → SUCCEEDED
//	                  ↘ FAILED
type AnalysisStatus string

const (
	// AnalysisStatusPending — анализ создан, файл ещё не прочитан.
	AnalysisStatusPending AnalysisStatus = "PENDING"

	// AnalysisStatusRunning — конвейер parse → expand → measure выполняется.
	AnalysisStatusRunning AnalysisStatus = "RUNNING"

	// AnalysisStatusSucceeded — расстояния посчитаны.
	AnalysisStatusSucceeded AnalysisStatus = "SUCCEEDED"

	// AnalysisStatusFailed — анализ завершился с ошибкой.
	AnalysisStatusFailed AnalysisStatus = "FAILED"
)

// IsTerminal возвращает true, если статус финальный.
func (s AnalysisStatus) IsTerminal() bool {
	switch s {
	case AnalysisStatusSucceeded, AnalysisStatusFailed:
		return true
	default:
		return false
	}
}

// Size — размеры сетки.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// SizeOf возвращает размеры сетки.
func SizeOf(g Grid) Size {
	return Size{Width: g.Width(), Height: g.Height()}
}

// Analysis — одно выполнение конвейера над одним входным файлом.
//
// Analysis не хранит саму сетку — только сводку, которая уходит
// в логи, метрики, БД и RabbitMQ.
type Analysis struct {
	// ID — уникальный идентификатор анализа.
	ID uuid.UUID `json:"id"`

	// Source — путь к входному файлу.
	Source string `json:"source"`

	// Status — текущий статус.
	Status AnalysisStatus `json:"status"`

	// Initial — размеры исходной сетки.
	Initial Size `json:"initial"`

	// Expanded — размеры сетки после расширения.
	Expanded Size `json:"expanded"`

	// Galaxies — количество галактик.
	Galaxies int `json:"galaxies"`

	// ExpandedRows, ExpandedColumns — сколько строк и столбцов продублировано.
	ExpandedRows    int `json:"expanded_rows"`
	ExpandedColumns int `json:"expanded_columns"`

	// Pairs и Sum — итог подсчёта расстояний.
	Pairs int `json:"pairs"`
	Sum   int `json:"sum"`

	// StartedAt — время перехода в RUNNING.
	StartedAt *time.Time `json:"started_at,omitempty"`

	// FinishedAt — время завершения (успешного или с ошибкой).
	FinishedAt *time.Time `json:"finished_at,omitempty"`

	// Error — текст ошибки, если анализ завершился с FAILED.
	Error string `json:"error,omitempty"`

	// CreatedAt — время создания.
	CreatedAt time.Time `json:"created_at"`
}

// NewAnalysis создаёт анализ в статусе PENDING.
func NewAnalysis(source string) *Analysis {
	return &Analysis{
		ID:        uuid.New(),
		Source:    source,
		Status:    AnalysisStatusPending,
		CreatedAt: time.Now(),
	}
}

// Duration возвращает продолжительность выполнения.
// Возвращает 0, если анализ ещё не завершён.
func (a *Analysis) Duration() time.Duration {
	if a.StartedAt == nil || a.FinishedAt == nil {
		return 0
	}
	return a.FinishedAt.Sub(*a.StartedAt)
}

// MarkRunning переводит анализ в статус RUNNING.
func (a *Analysis) MarkRunning() {
	now := time.Now()
	a.Status = AnalysisStatusRunning
	a.StartedAt = &now
}

// MarkSucceeded заполняет сводку и переводит анализ в SUCCEEDED.
func (a *Analysis) MarkSucceeded(initial, expanded *Dimension, res Result) {
	now := time.Now()
	a.Status = AnalysisStatusSucceeded
	a.FinishedAt = &now

	a.Initial = SizeOf(initial.Grid)
	a.Expanded = SizeOf(expanded.Grid)
	a.Galaxies = len(expanded.Galaxies)
	a.ExpandedRows = len(initial.Plan.Rows)
	a.ExpandedColumns = len(initial.Plan.Columns)
	a.Pairs = res.Pairs
	a.Sum = res.Sum
}

// MarkFailed переводит анализ в статус FAILED с ошибкой.
func (a *Analysis) MarkFailed(err string) {
	now := time.Now()
	a.Status = AnalysisStatusFailed
	a.FinishedAt = &now
	a.Error = err
}
