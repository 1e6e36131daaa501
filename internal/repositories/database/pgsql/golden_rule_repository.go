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

const goldenRuleColumns = `rule_id, user_id, title, description, is_compliant, score_weight,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxGoldenRuleRepository struct {
	BaseRepository
}

// newPgxGoldenRuleRepository creates a new repository for golden rule data.
func newPgxGoldenRuleRepository(pool *pgxpool.Pool) portsrepo.GoldenRuleRepositoryWithTx {
	return &PgxGoldenRuleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.GoldenRuleRepositoryWithTx = (*PgxGoldenRuleRepository)(nil)

func scanGoldenRule(row pgx.Row) (models.GoldenRule, error) {
	var m models.GoldenRule
	err := row.Scan(
		&m.RuleID,
		&m.UserID,
		&m.Title,
		&m.Description,
		&m.IsCompliant,
		&m.ScoreWeight,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveGoldenRules inserts a batch of rules in one transaction. Used to seed
// the default set for a new user.
func (r *PgxGoldenRuleRepository) SaveGoldenRules(ctx context.Context, rules []domain.GoldenRule) error {
	query := `
		INSERT INTO golden_rules (` + goldenRuleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	for _, rule := range rules {
		m := mapping.ToModelGoldenRule(rule)
		_, err := tx.Exec(ctx, query,
			m.RuleID,
			m.UserID,
			m.Title,
			m.Description,
			m.IsCompliant,
			m.ScoreWeight,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to save golden rule %s: %w", m.RuleID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// UpdateGoldenRule updates an existing rule owned by the user.
func (r *PgxGoldenRuleRepository) UpdateGoldenRule(ctx context.Context, rule domain.GoldenRule) error {
	m := mapping.ToModelGoldenRule(rule)

	query := `
		UPDATE golden_rules SET
			is_compliant = $3,
			last_updated_at = $4,
			last_updated_by = $5
		WHERE rule_id = $1 AND user_id = $2;
	`

	tag, err := r.Pool.Exec(ctx, query,
		m.RuleID,
		m.UserID,
		m.IsCompliant,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update golden rule %s: %w", m.RuleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindGoldenRuleByID retrieves a rule by id, scoped to its owner.
func (r *PgxGoldenRuleRepository) FindGoldenRuleByID(ctx context.Context, userID, ruleID string) (*domain.GoldenRule, error) {
	query := `SELECT ` + goldenRuleColumns + ` FROM golden_rules WHERE rule_id = $1 AND user_id = $2;`

	m, err := scanGoldenRule(r.Pool.QueryRow(ctx, query, ruleID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find golden rule %s: %w", ruleID, err)
	}

	d := mapping.ToDomainGoldenRule(m)
	return &d, nil
}

// ListGoldenRules retrieves all rules owned by the user in seed order.
// rule_id is "rule-N", so ordering needs the numeric suffix.
func (r *PgxGoldenRuleRepository) ListGoldenRules(ctx context.Context, userID string) ([]domain.GoldenRule, error) {
	query := `
		SELECT ` + goldenRuleColumns + `
		FROM golden_rules
		WHERE user_id = $1
		ORDER BY split_part(rule_id, '-', 2)::int;
	`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query golden rules: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.GoldenRule, error) {
		return scanGoldenRule(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan golden rules: %w", err)
	}

	return mapping.ToDomainGoldenRuleSlice(ms), nil
}
