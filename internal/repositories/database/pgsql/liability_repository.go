package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leadup-vn/leadup_backend/internal/apperrors"
	"github.com/leadup-vn/leadup_backend/internal/core/domain"
	portsrepo "github.com/leadup-vn/leadup_backend/internal/core/ports/repositories"
	"github.com/leadup-vn/leadup_backend/internal/models"
	"github.com/leadup-vn/leadup_backend/internal/utils/mapping"
)

const liabilityColumns = `liability_id, user_id, name, amount, type, account_scope,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxLiabilityRepository struct {
	BaseRepository
}

// newPgxLiabilityRepository creates a new repository for liability data.
func newPgxLiabilityRepository(pool *pgxpool.Pool) portsrepo.LiabilityRepositoryWithTx {
	return &PgxLiabilityRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.LiabilityRepositoryWithTx = (*PgxLiabilityRepository)(nil)

func scanLiability(row pgx.Row) (models.Liability, error) {
	var m models.Liability
	err := row.Scan(
		&m.LiabilityID,
		&m.UserID,
		&m.Name,
		&m.Amount,
		&m.Type,
		&m.AccountScope,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveLiability inserts a new liability.
func (r *PgxLiabilityRepository) SaveLiability(ctx context.Context, liability domain.Liability) error {
	m := mapping.ToModelLiability(liability)

	query := `
		INSERT INTO liabilities (` + liabilityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.LiabilityID,
		m.UserID,
		m.Name,
		m.Amount,
		m.Type,
		m.AccountScope,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save liability %s: %w", m.LiabilityID, err)
	}
	return nil
}

// UpdateLiability updates an existing liability owned by the user.
func (r *PgxLiabilityRepository) UpdateLiability(ctx context.Context, liability domain.Liability) error {
	m := mapping.ToModelLiability(liability)

	query := `
		UPDATE liabilities SET
			name = $3,
			amount = $4,
			type = $5,
			account_scope = $6,
			last_updated_at = $7,
			last_updated_by = $8
		WHERE liability_id = $1 AND user_id = $2;
	`

	tag, err := r.Pool.Exec(ctx, query,
		m.LiabilityID,
		m.UserID,
		m.Name,
		m.Amount,
		m.Type,
		m.AccountScope,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update liability %s: %w", m.LiabilityID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteLiability removes a liability owned by the user.
func (r *PgxLiabilityRepository) DeleteLiability(ctx context.Context, userID, liabilityID string) error {
	query := `DELETE FROM liabilities WHERE liability_id = $1 AND user_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, liabilityID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete liability %s: %w", liabilityID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindLiabilityByID retrieves a liability by id, scoped to its owner.
func (r *PgxLiabilityRepository) FindLiabilityByID(ctx context.Context, userID, liabilityID string) (*domain.Liability, error) {
	query := `SELECT ` + liabilityColumns + ` FROM liabilities WHERE liability_id = $1 AND user_id = $2;`

	m, err := scanLiability(r.Pool.QueryRow(ctx, query, liabilityID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find liability %s: %w", liabilityID, err)
	}

	d := mapping.ToDomainLiability(m)
	return &d, nil
}

// ListLiabilities retrieves all liabilities owned by the user.
func (r *PgxLiabilityRepository) ListLiabilities(ctx context.Context, userID string) ([]domain.Liability, error) {
	query := `SELECT ` + liabilityColumns + ` FROM liabilities WHERE user_id = $1 ORDER BY created_at;`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query liabilities: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Liability, error) {
		return scanLiability(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan liabilities: %w", err)
	}

	return mapping.ToDomainLiabilitySlice(ms), nil
}
