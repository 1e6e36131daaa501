package mapping

import (
	"github.com/leadup-vn/leadup_backend/internal/core/domain"
	"github.com/leadup-vn/leadup_backend/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:  d.TransactionID,
		UserID:         d.UserID,
		CategoryID:     d.CategoryID,
		Amount:         d.Amount,
		Description:    d.Description,
		Type:           string(d.Type),
		Date:           d.Date,
		PaymentMethod:  string(d.PaymentMethod),
		AccountScope:   string(d.AccountScope),
		Classification: string(d.Classification),
		IsAsset:        d.IsAsset,
		IsLiability:    d.IsLiability,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:  m.TransactionID,
		UserID:         m.UserID,
		CategoryID:     m.CategoryID,
		Amount:         m.Amount,
		Description:    m.Description,
		Type:           domain.TransactionType(m.Type),
		Date:           m.Date,
		PaymentMethod:  domain.PaymentMethod(m.PaymentMethod),
		AccountScope:   domain.AccountScope(m.AccountScope),
		Classification: domain.SpendingClassification(m.Classification),
		IsAsset:        m.IsAsset,
		IsLiability:    m.IsLiability,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
