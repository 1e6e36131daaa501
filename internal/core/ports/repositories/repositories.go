package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TransactionRepo TransactionRepositoryFacade
	AssetRepo       AssetRepositoryFacade
	LiabilityRepo   LiabilityRepositoryFacade
	CategoryRepo    CategoryRepositoryFacade
	GoldenRuleRepo  GoldenRuleRepositoryFacade
	BudgetRepo      BudgetRepositoryFacade
	JourneyRepo     JourneyRepositoryFacade
	PlaybookRepo    PlaybookRepositoryFacade
	UserRepo        UserRepositoryFacade
}
