package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	PolicyRepo        PolicyRepositoryFacade
	CoverageRepo      CoverageRepositoryFacade
	EntityRepo        EntityRepositoryFacade
	CompanyRepo       CompanyRepositoryFacade
	StudentRepo       StudentRepositoryFacade
	InsuredRecordRepo InsuredRecordRepositoryFacade
	EndorsementRepo   EndorsementRepositoryFacade
	AuditRepo         AuditRepositoryFacade
	NotificationRepo  NotificationRepositoryFacade
	DocumentRepo      DocumentRepositoryFacade
	PremiumRepo       PremiumRepositoryFacade
	UserRepo          UserRepositoryFacade
	ReportingRepo     ReportingRepository
}
