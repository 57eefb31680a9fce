package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Auth         AuthSvcFacade
	Token        TokenSvcFacade
	Policy       PolicySvcFacade
	Coverage     CoverageSvcFacade
	Endorsement  EndorsementSvcFacade
	Audit        AuditSvcFacade
	Notification NotificationSvcFacade
	Scanner      ExpiryScannerSvc
	Company      CompanySvcFacade
	Student      StudentSvcFacade
	Insured      InsuredSvcFacade
	Entity       EntitySvcFacade
	Document     DocumentSvcFacade
	Reporting    ReportingSvcFacade
}
