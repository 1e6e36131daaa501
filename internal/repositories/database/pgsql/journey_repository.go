package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leadup-vn/leadup_backend/internal/core/domain"
	portsrepo "github.com/leadup-vn/leadup_backend/internal/core/ports/repositories"
	"github.com/leadup-vn/leadup_backend/internal/models"
	"github.com/leadup-vn/leadup_backend/internal/utils/mapping"
)

type PgxJourneyRepository struct {
	BaseRepository
}

// newPgxJourneyRepository creates a new repository for journey progress data.
func newPgxJourneyRepository(pool *pgxpool.Pool) portsrepo.JourneyRepositoryWithTx {
	return &PgxJourneyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.JourneyRepositoryWithTx = (*PgxJourneyRepository)(nil)

// UpsertJourneyProgress inserts or updates the progress row for one day.
func (r *PgxJourneyRepository) UpsertJourneyProgress(ctx context.Context, progress domain.JourneyProgress) error {
	m := mapping.ToModelJourneyProgress(progress)

	query := `
		INSERT INTO journey_progress (user_id, day, completed, note, completed_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, day) DO UPDATE SET
			completed = EXCLUDED.completed,
			note = EXCLUDED.note,
			completed_at = EXCLUDED.completed_at;
	`

	_, err := r.Pool.Exec(ctx, query, m.UserID, m.Day, m.Completed, m.Note, m.CompletedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert journey progress for day %d: %w", m.Day, err)
	}
	return nil
}

// ListJourneyProgress retrieves the user's per-day progress rows ordered by day.
func (r *PgxJourneyRepository) ListJourneyProgress(ctx context.Context, userID string) ([]domain.JourneyProgress, error) {
	query := `
		SELECT user_id, day, completed, note, completed_at
		FROM journey_progress
		WHERE user_id = $1
		ORDER BY day;
	`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query journey progress: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.JourneyProgress, error) {
		var m models.JourneyProgress
		err := row.Scan(&m.UserID, &m.Day, &m.Completed, &m.Note, &m.CompletedAt)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan journey progress: %w", err)
	}

	return mapping.ToDomainJourneyProgressSlice(ms), nil
}
