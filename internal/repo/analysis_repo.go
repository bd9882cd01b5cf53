package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/shaiso/Starfield/internal/domain"
)

// uniqueViolation — SQLSTATE нарушения уникальности.
const uniqueViolation = "23505"

// schema — таблица анализов. Создаётся через EnsureSchema.
const schema = `
	CREATE TABLE IF NOT EXISTS analyses (
		id               uuid PRIMARY KEY,
		source           text        NOT NULL,
		status           text        NOT NULL,
		initial_width    integer     NOT NULL,
		initial_height   integer     NOT NULL,
		expanded_width   integer     NOT NULL,
		expanded_height  integer     NOT NULL,
		galaxies         integer     NOT NULL,
		expanded_rows    integer     NOT NULL,
		expanded_columns integer     NOT NULL,
		pairs            bigint      NOT NULL,
		distance_sum     bigint      NOT NULL,
		started_at       timestamptz,
		finished_at      timestamptz,
		error            text,
		created_at       timestamptz NOT NULL
	)
`

// analysisColumns — порядок колонок для SELECT, совпадает со scanAnalysis.
const analysisColumns = `
	id, source, status, initial_width, initial_height, expanded_width,
	expanded_height, galaxies, expanded_rows, expanded_columns, pairs,
	distance_sum, started_at, finished_at, error, created_at
`

// DB — методы *pgxpool.Pool, которые использует репозиторий.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// AnalysisRepo — репозиторий для работы с анализами.
type AnalysisRepo struct {
	pool DB
}

// NewAnalysisRepo создаёт новый AnalysisRepo.
func NewAnalysisRepo(pool DB) *AnalysisRepo {
	return &AnalysisRepo{pool: pool}
}

// EnsureSchema создаёт таблицу analyses, если её нет.
func (r *AnalysisRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create analyses table: %w", err)
	}
	return nil
}

// Create сохраняет анализ.
func (r *AnalysisRepo) Create(ctx context.Context, a *domain.Analysis) error {
	query := `
		INSERT INTO analyses (` + analysisColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err := r.pool.Exec(ctx, query,
		a.ID,
		a.Source,
		a.Status,
		a.Initial.Width,
		a.Initial.Height,
		a.Expanded.Width,
		a.Expanded.Height,
		a.Galaxies,
		a.ExpandedRows,
		a.ExpandedColumns,
		a.Pairs,
		a.Sum,
		a.StartedAt,
		a.FinishedAt,
		nullString(a.Error),
		a.CreatedAt,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("insert analysis: %w", err)
	}
	return nil
}

// GetByID возвращает анализ по ID.
func (r *AnalysisRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Analysis, error) {
	query := `SELECT ` + analysisColumns + ` FROM analyses WHERE id = $1`
	return scanAnalysis(r.pool.QueryRow(ctx, query, id))
}

// ListRecent возвращает последние анализы, новые первыми.
func (r *AnalysisRepo) ListRecent(ctx context.Context, limit int) ([]domain.Analysis, error) {
	query := `
		SELECT ` + analysisColumns + `
		FROM analyses
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	defer rows.Close()

	var analyses []domain.Analysis
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, *a)
	}
	return analyses, rows.Err()
}

// scanAnalysis сканирует одну строку в Analysis.
// pgx.Rows тоже реализует pgx.Row.
func scanAnalysis(row pgx.Row) (*domain.Analysis, error) {
	var a domain.Analysis
	var analysisError *string

	err := row.Scan(
		&a.ID,
		&a.Source,
		&a.Status,
		&a.Initial.Width,
		&a.Initial.Height,
		&a.Expanded.Width,
		&a.Expanded.Height,
		&a.Galaxies,
		&a.ExpandedRows,
		&a.ExpandedColumns,
		&a.Pairs,
		&a.Sum,
		&a.StartedAt,
		&a.FinishedAt,
		&analysisError,
		&a.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan analysis: %w", err)
	}

	if analysisError != nil {
		a.Error = *analysisError
	}

	return &a, nil
}

// nullString возвращает nil для пустой строки (для NULL в БД).
func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
