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

type PgxPlaybookRepository struct {
	BaseRepository
}

// newPgxPlaybookRepository creates a new repository for saved playbook data.
func newPgxPlaybookRepository(pool *pgxpool.Pool) portsrepo.PlaybookRepositoryWithTx {
	return &PgxPlaybookRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PlaybookRepositoryWithTx = (*PgxPlaybookRepository)(nil)

// SavePlaybookState inserts or replaces the user's saved scenario.
func (r *PgxPlaybookRepository) SavePlaybookState(ctx context.Context, state domain.PlaybookState) error {
	m, err := mapping.ToModelPlaybookState(state)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO playbook_states (user_id, monthly_income, essential_cost, emergency_fund,
			debt_pay_monthly, has_high_rate_debt, business_mode, custom_jar_pcts, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id) DO UPDATE SET
			monthly_income = EXCLUDED.monthly_income,
			essential_cost = EXCLUDED.essential_cost,
			emergency_fund = EXCLUDED.emergency_fund,
			debt_pay_monthly = EXCLUDED.debt_pay_monthly,
			has_high_rate_debt = EXCLUDED.has_high_rate_debt,
			business_mode = EXCLUDED.business_mode,
			custom_jar_pcts = EXCLUDED.custom_jar_pcts,
			updated_at = EXCLUDED.updated_at;
	`

	_, err = r.Pool.Exec(ctx, query,
		m.UserID,
		m.MonthlyIncome,
		m.EssentialCost,
		m.EmergencyFund,
		m.DebtPayMonthly,
		m.HasHighRateDebt,
		m.BusinessMode,
		m.CustomJarPcts,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save playbook state: %w", err)
	}
	return nil
}

// FindPlaybookState retrieves the user's saved scenario.
func (r *PgxPlaybookRepository) FindPlaybookState(ctx context.Context, userID string) (*domain.PlaybookState, error) {
	query := `
		SELECT user_id, monthly_income, essential_cost, emergency_fund,
			debt_pay_monthly, has_high_rate_debt, business_mode, custom_jar_pcts, updated_at
		FROM playbook_states
		WHERE user_id = $1;
	`

	var m models.PlaybookState
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&m.UserID,
		&m.MonthlyIncome,
		&m.EssentialCost,
		&m.EmergencyFund,
		&m.DebtPayMonthly,
		&m.HasHighRateDebt,
		&m.BusinessMode,
		&m.CustomJarPcts,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find playbook state: %w", err)
	}

	d, err := mapping.ToDomainPlaybookState(m)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// SavePlanProgress inserts or replaces checklist progress for one list.
func (r *PgxPlaybookRepository) SavePlanProgress(ctx context.Context, progress domain.PlanProgress) error {
	m, err := mapping.ToModelPlanProgress(progress)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO plan_progress (user_id, list_key, checked, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, list_key) DO UPDATE SET
			checked = EXCLUDED.checked,
			updated_at = EXCLUDED.updated_at;
	`

	_, err = r.Pool.Exec(ctx, query, m.UserID, m.ListKey, m.Checked, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save plan progress for %s: %w", m.ListKey, err)
	}
	return nil
}

// FindPlanProgress retrieves checklist progress for one action list.
func (r *PgxPlaybookRepository) FindPlanProgress(ctx context.Context, userID, listKey string) (*domain.PlanProgress, error) {
	query := `
		SELECT user_id, list_key, checked, updated_at
		FROM plan_progress
		WHERE user_id = $1 AND list_key = $2;
	`

	var m models.PlanProgress
	err := r.Pool.QueryRow(ctx, query, userID, listKey).Scan(&m.UserID, &m.ListKey, &m.Checked, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find plan progress for %s: %w", listKey, err)
	}

	d, err := mapping.ToDomainPlanProgress(m)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
