package pg

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/addsub/internal/domain"
	"github.com/DjordjeVuckovic/addsub/internal/history"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(pool *ConnectionPool) *Store {
	return &Store{db: pool.conn}
}

func (s *Store) Save(ctx context.Context, e domain.Evaluation) (uuid.UUID, error) {
	history.Prepare(&e, time.Now)

	cmd := `
        INSERT INTO evaluations (id, expression, canonical, result, error, strict, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (id) DO UPDATE SET
            expression = EXCLUDED.expression,
            canonical = EXCLUDED.canonical,
            result = EXCLUDED.result,
            error = EXCLUDED.error,
            strict = EXCLUDED.strict
        RETURNING id;
    `
	var id uuid.UUID
	err := s.db.QueryRow(
		ctx,
		cmd,
		e.ID,
		e.Expression,
		e.Canonical,
		e.Result,
		e.Error,
		e.Strict,
		e.CreatedAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert evaluation: %w", err)
	}

	slog.Debug("Saved evaluation to postgres history", "id", id)
	return id, nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*domain.Evaluation, error) {
	query := `
        SELECT id, expression, canonical, result, error, strict, created_at
        FROM evaluations
        WHERE id = $1;
    `
	e, err := scanEvaluation(s.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, history.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get evaluation %s: %w", id, err)
	}
	return e, nil
}

func (s *Store) List(ctx context.Context, limit int) ([]domain.Evaluation, error) {
	query := `
        SELECT id, expression, canonical, result, error, strict, created_at
        FROM evaluations
        ORDER BY created_at DESC, id DESC
        LIMIT $1;
    `
	rows, err := s.db.Query(ctx, query, history.ClampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Evaluation, 0)
	for rows.Next() {
		e, err := scanEvaluation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan evaluation: %w", err)
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate evaluations: %w", err)
	}
	return out, nil
}

func scanEvaluation(row pgx.Row) (*domain.Evaluation, error) {
	var e domain.Evaluation
	err := row.Scan(&e.ID, &e.Expression, &e.Canonical, &e.Result, &e.Error, &e.Strict, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

var _ history.Store = (*Store)(nil)

func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}
