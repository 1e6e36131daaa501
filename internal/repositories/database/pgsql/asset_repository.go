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

const assetColumns = `asset_id, user_id, name, value, type, account_scope,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxAssetRepository struct {
	BaseRepository
}

// newPgxAssetRepository creates a new repository for asset data.
func newPgxAssetRepository(pool *pgxpool.Pool) portsrepo.AssetRepositoryWithTx {
	return &PgxAssetRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.AssetRepositoryWithTx = (*PgxAssetRepository)(nil)

func scanAsset(row pgx.Row) (models.Asset, error) {
	var m models.Asset
	err := row.Scan(
		&m.AssetID,
		&m.UserID,
		&m.Name,
		&m.Value,
		&m.Type,
		&m.AccountScope,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveAsset inserts a new asset.
func (r *PgxAssetRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	m := mapping.ToModelAsset(asset)

	query := `
		INSERT INTO assets (` + assetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.AssetID,
		m.UserID,
		m.Name,
		m.Value,
		m.Type,
		m.AccountScope,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save asset %s: %w", m.AssetID, err)
	}
	return nil
}

// UpdateAsset updates an existing asset owned by the user.
func (r *PgxAssetRepository) UpdateAsset(ctx context.Context, asset domain.Asset) error {
	m := mapping.ToModelAsset(asset)

	query := `
		UPDATE assets SET
			name = $3,
			value = $4,
			type = $5,
			account_scope = $6,
			last_updated_at = $7,
			last_updated_by = $8
		WHERE asset_id = $1 AND user_id = $2;
	`

	tag, err := r.Pool.Exec(ctx, query,
		m.AssetID,
		m.UserID,
		m.Name,
		m.Value,
		m.Type,
		m.AccountScope,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update asset %s: %w", m.AssetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteAsset removes an asset owned by the user.
func (r *PgxAssetRepository) DeleteAsset(ctx context.Context, userID, assetID string) error {
	query := `DELETE FROM assets WHERE asset_id = $1 AND user_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, assetID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete asset %s: %w", assetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindAssetByID retrieves an asset by id, scoped to its owner.
func (r *PgxAssetRepository) FindAssetByID(ctx context.Context, userID, assetID string) (*domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE asset_id = $1 AND user_id = $2;`

	m, err := scanAsset(r.Pool.QueryRow(ctx, query, assetID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find asset %s: %w", assetID, err)
	}

	d := mapping.ToDomainAsset(m)
	return &d, nil
}

// ListAssets retrieves all assets owned by the user.
func (r *PgxAssetRepository) ListAssets(ctx context.Context, userID string) ([]domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE user_id = $1 ORDER BY created_at;`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Asset, error) {
		return scanAsset(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan assets: %w", err)
	}

	return mapping.ToDomainAssetSlice(ms), nil
}
