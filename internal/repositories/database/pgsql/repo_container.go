package pgsql

import (
	portsrepo "github.com/leadup-vn/leadup_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		AssetRepo:       newPgxAssetRepository(dbPool),
		LiabilityRepo:   newPgxLiabilityRepository(dbPool),
		CategoryRepo:    newPgxCategoryRepository(dbPool),
		GoldenRuleRepo:  newPgxGoldenRuleRepository(dbPool),
		BudgetRepo:      newPgxBudgetRepository(dbPool),
		JourneyRepo:     newPgxJourneyRepository(dbPool),
		PlaybookRepo:    newPgxPlaybookRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
	}
}
