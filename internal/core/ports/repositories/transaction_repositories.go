package repositories

import (
	"context"
	"time"

	"github.com/leadup-vn/leadup_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListTransactionsParams carries the optional filters and cursor for listing
// a user's transactions. Zero values mean "no filter".
type ListTransactionsParams struct {
	Type         domain.TransactionType
	CategoryID   string
	AccountScope domain.AccountScope
	From         time.Time
	To           time.Time
	Limit        int
	// NextToken is an opaque cursor returned by a previous page.
	NextToken string
}

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a single transaction owned by the user.
	FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a page of transactions newest first, along
	// with an opaque token for the next page ("" when exhausted).
	ListTransactions(ctx context.Context, userID string, params ListTransactionsParams) ([]domain.Transaction, string, error)

	// ListTransactionsSince retrieves all transactions dated on or after the
	// given instant, newest first. Used by the pyramid snapshot.
	ListTransactionsSince(ctx context.Context, userID string, since time.Time) ([]domain.Transaction, error)

	// SumExpensesByCategory totals expense amounts per category over a date
	// range. Used to derive budget spent figures.
	SumExpensesByCategory(ctx context.Context, userID string, from, to time.Time) (map[string]decimal.Decimal, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction persists changes to an existing transaction.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction owned by the user.
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends the facade with transaction capabilities
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
