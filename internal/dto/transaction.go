package dto

import (
	"time"

	"github.com/leadup-vn/leadup_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// Classification is optional; when empty the category default applies.
type CreateTransactionRequest struct {
	CategoryID     string          `json:"categoryID" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Description    string          `json:"description"`
	Type           string          `json:"type" binding:"required,oneof=income expense"`
	Date           time.Time       `json:"date" binding:"required"`
	PaymentMethod  string          `json:"paymentMethod" binding:"omitempty,oneof=cash credit_card bank_transfer"`
	AccountScope   string          `json:"accountScope" binding:"omitempty,oneof=personal business"`
	Classification string          `json:"classification" binding:"omitempty,oneof=need want"`
	IsAsset        bool            `json:"isAsset"`
	IsLiability    bool            `json:"isLiability"`
}

// UpdateTransactionRequest defines the mutable fields of a transaction.
// Pointer fields distinguish "not provided" from zero values.
type UpdateTransactionRequest struct {
	CategoryID     *string          `json:"categoryID,omitempty"`
	Amount         *decimal.Decimal `json:"amount,omitempty"`
	Description    *string          `json:"description,omitempty"`
	Date           *time.Time       `json:"date,omitempty"`
	PaymentMethod  *string          `json:"paymentMethod,omitempty" binding:"omitempty,oneof=cash credit_card bank_transfer"`
	AccountScope   *string          `json:"accountScope,omitempty" binding:"omitempty,oneof=personal business"`
	Classification *string          `json:"classification,omitempty" binding:"omitempty,oneof=need want"`
	IsAsset        *bool            `json:"isAsset,omitempty"`
	IsLiability    *bool            `json:"isLiability,omitempty"`
}

// ListTransactionsRequest carries the query filters for listing transactions.
type ListTransactionsRequest struct {
	Type         string     `form:"type" binding:"omitempty,oneof=income expense"`
	CategoryID   string     `form:"categoryID"`
	AccountScope string     `form:"accountScope" binding:"omitempty,oneof=personal business"`
	From         *time.Time `form:"from" time_format:"2006-01-02"`
	To           *time.Time `form:"to" time_format:"2006-01-02"`
	Limit        int        `form:"limit" binding:"omitempty,min=1,max=200"`
	NextToken    string     `form:"nextToken"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID  string          `json:"transactionID"`
	CategoryID     string          `json:"categoryID"`
	Amount         decimal.Decimal `json:"amount"`
	Description    string          `json:"description"`
	Type           string          `json:"type"`
	Date           time.Time       `json:"date"`
	PaymentMethod  string          `json:"paymentMethod"`
	AccountScope   string          `json:"accountScope"`
	Classification string          `json:"classification,omitempty"`
	IsAsset        bool            `json:"isAsset"`
	IsLiability    bool            `json:"isLiability"`
	CreatedAt      time.Time       `json:"createdAt"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
}

// ListTransactionsResponse is a page of transactions plus the cursor for the
// next page. NextToken is empty when the listing is exhausted.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    string                `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain Transaction to its response DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:  txn.TransactionID,
		CategoryID:     txn.CategoryID,
		Amount:         txn.Amount,
		Description:    txn.Description,
		Type:           string(txn.Type),
		Date:           txn.Date,
		PaymentMethod:  string(txn.PaymentMethod),
		AccountScope:   string(txn.AccountScope),
		Classification: string(txn.Classification),
		IsAsset:        txn.IsAsset,
		IsLiability:    txn.IsLiability,
		CreatedAt:      txn.CreatedAt,
		LastUpdatedAt:  txn.LastUpdatedAt,
	}
}

// ToListTransactionsResponse converts a page of domain Transactions to its response DTO
func ToListTransactionsResponse(txns []domain.Transaction, nextToken string) ListTransactionsResponse {
	res := ListTransactionsResponse{
		Transactions: make([]TransactionResponse, len(txns)),
		NextToken:    nextToken,
	}
	for i := range txns {
		res.Transactions[i] = ToTransactionResponse(&txns[i])
	}
	return res
}
