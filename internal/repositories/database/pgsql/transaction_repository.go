package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/leadup-vn/leadup_backend/internal/apperrors"
	"github.com/leadup-vn/leadup_backend/internal/core/domain"
	portsrepo "github.com/leadup-vn/leadup_backend/internal/core/ports/repositories"
	"github.com/leadup-vn/leadup_backend/internal/models"
	"github.com/leadup-vn/leadup_backend/internal/utils/mapping"
	"github.com/leadup-vn/leadup_backend/internal/utils/pagination"
)

const transactionColumns = `transaction_id, user_id, category_id, amount, description, type, date,
	payment_method, account_scope, classification, is_asset, is_liability,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.UserID,
		&m.CategoryID,
		&m.Amount,
		&m.Description,
		&m.Type,
		&m.Date,
		&m.PaymentMethod,
		&m.AccountScope,
		&m.Classification,
		&m.IsAsset,
		&m.IsLiability,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveTransaction inserts a new transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.UserID,
		m.CategoryID,
		m.Amount,
		m.Description,
		m.Type,
		m.Date,
		m.PaymentMethod,
		m.AccountScope,
		m.Classification,
		m.IsAsset,
		m.IsLiability,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// UpdateTransaction updates an existing transaction owned by the user.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)

	query := `
		UPDATE transactions SET
			category_id = $3,
			amount = $4,
			description = $5,
			date = $6,
			payment_method = $7,
			account_scope = $8,
			classification = $9,
			is_asset = $10,
			is_liability = $11,
			last_updated_at = $12,
			last_updated_by = $13
		WHERE transaction_id = $1 AND user_id = $2;
	`

	tag, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.UserID,
		m.CategoryID,
		m.Amount,
		m.Description,
		m.Date,
		m.PaymentMethod,
		m.AccountScope,
		m.Classification,
		m.IsAsset,
		m.IsLiability,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", m.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransaction removes a transaction owned by the user.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	query := `DELETE FROM transactions WHERE transaction_id = $1 AND user_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, transactionID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindTransactionByID retrieves a transaction by id, scoped to its owner.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1 AND user_id = $2;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

// ListTransactions retrieves a filtered page of the user's transactions,
// newest first, keyset-paginated on (date, created_at).
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, userID string, params portsrepo.ListTransactionsParams) ([]domain.Transaction, string, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}

	var sb strings.Builder
	sb.WriteString(`SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1`)
	args := []any{userID}

	addFilter := func(clause string, value any) {
		args = append(args, value)
		fmt.Fprintf(&sb, " AND %s = $%d", clause, len(args))
	}
	if params.Type != "" {
		addFilter("type", string(params.Type))
	}
	if params.CategoryID != "" {
		addFilter("category_id", params.CategoryID)
	}
	if params.AccountScope != "" {
		addFilter("account_scope", string(params.AccountScope))
	}
	if !params.From.IsZero() {
		args = append(args, params.From)
		fmt.Fprintf(&sb, " AND date >= $%d", len(args))
	}
	if !params.To.IsZero() {
		args = append(args, params.To)
		fmt.Fprintf(&sb, " AND date <= $%d", len(args))
	}
	if params.NextToken != "" {
		cursorDate, cursorCreatedAt, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		args = append(args, cursorDate, cursorCreatedAt)
		fmt.Fprintf(&sb, " AND (date, created_at) < ($%d, $%d)", len(args)-1, len(args))
	}

	// Fetch one extra row to detect whether another page exists.
	args = append(args, limit+1)
	fmt.Fprintf(&sb, " ORDER BY date DESC, created_at DESC LIMIT $%d;", len(args))

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to scan transactions: %w", err)
	}

	nextToken := ""
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		nextToken = pagination.EncodeToken(last.Date, last.CreatedAt)
	}

	return mapping.ToDomainTransactionSlice(ms), nextToken, nil
}

// ListTransactionsSince retrieves all of the user's transactions dated on or
// after the given instant, newest first.
func (r *PgxTransactionRepository) ListTransactionsSince(ctx context.Context, userID string, since time.Time) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1 AND date >= $2
		ORDER BY date DESC, created_at DESC;
	`

	rows, err := r.Pool.Query(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions since %s: %w", since.Format(time.RFC3339), err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}

	return mapping.ToDomainTransactionSlice(ms), nil
}

// SumExpensesByCategory totals expense amounts per category over a date range.
func (r *PgxTransactionRepository) SumExpensesByCategory(ctx context.Context, userID string, from, to time.Time) (map[string]decimal.Decimal, error) {
	query := `
		SELECT category_id, COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE user_id = $1 AND type = 'expense' AND date >= $2 AND date <= $3
		GROUP BY category_id;
	`

	rows, err := r.Pool.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query expense sums: %w", err)
	}
	defer rows.Close()

	sums := make(map[string]decimal.Decimal)
	for rows.Next() {
		var categoryID string
		var total decimal.Decimal
		if err := rows.Scan(&categoryID, &total); err != nil {
			return nil, fmt.Errorf("failed to scan expense sum: %w", err)
		}
		sums[categoryID] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read expense sums: %w", err)
	}

	return sums, nil
}
