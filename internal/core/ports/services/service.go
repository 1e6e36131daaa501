package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Transaction TransactionSvcFacade
	Asset       AssetSvcFacade
	Liability   LiabilitySvcFacade
	NetWorth    NetWorthSvc
	Category    CategorySvcFacade
	GoldenRule  GoldenRuleSvcFacade
	Budget      BudgetSvcFacade
	Journey     JourneySvcFacade
	Playbook    PlaybookSvcFacade
	Pyramid     PyramidSvcFacade
	Coach       CoachSvcFacade
	User        UserSvcFacade

	TokenService       TokenSvcFacade
	GoogleOAuthHandler GoogleOAuthHandlerSvcFacade
}
