package services

import (
	"github.com/leadup-vn/leadup_backend/internal/core/engine"
	portsrepo "github.com/leadup-vn/leadup_backend/internal/core/ports/repositories"
	portssvc "github.com/leadup-vn/leadup_backend/internal/core/ports/services"
	"github.com/leadup-vn/leadup_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Record services first, the evaluation services read through them
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.CategoryRepo)
	container.Asset = NewAssetService(repos.AssetRepo)
	container.Liability = NewLiabilityService(repos.LiabilityRepo)
	container.NetWorth = NewNetWorthService(repos.AssetRepo, repos.LiabilityRepo)
	container.Category = NewCategoryService(repos.CategoryRepo)
	container.GoldenRule = NewGoldenRuleService(repos.GoldenRuleRepo)
	container.Budget = NewBudgetService(repos.BudgetRepo, repos.TransactionRepo)
	container.Journey = NewJourneyService(repos.JourneyRepo)
	container.Playbook = NewPlaybookService(repos.PlaybookRepo)

	// One engine instance serves all users; it memoises per input snapshot.
	pyramidEngine := engine.NewPyramidEngine()
	container.Pyramid = NewPyramidService(
		repos.TransactionRepo,
		repos.AssetRepo,
		repos.LiabilityRepo,
		repos.GoldenRuleRepo,
		pyramidEngine,
	)

	container.Coach = NewCoachService(cfg, container.Pyramid, container.NetWorth)

	container.User = NewUserService(repos.UserRepo, container.Category, container.GoldenRule)

	container.TokenService = NewTokenService(cfg, container.User)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}
