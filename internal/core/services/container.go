package services

import (
	portsrepo "github.com/policyzen/policyzen_app/internal/core/ports/repositories"
	portssvc "github.com/policyzen/policyzen_app/internal/core/ports/services"
	"github.com/policyzen/policyzen_app/internal/pdf"
	"github.com/policyzen/policyzen_app/internal/platform/config"
)

// NewServiceContainer creates the service container with properly initialized
// dependencies.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	renderer := pdf.NewRenderer(cfg.DocumentStorageDir)

	container := &portssvc.ServiceContainer{}

	container.Token = NewTokenServiceImpl(cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer)
	container.Auth = NewAuthServiceImpl(repos.UserRepo, container.Token)

	container.Policy = NewPolicyServiceImpl(repos.PolicyRepo, repos.CoverageRepo, repos.PremiumRepo, repos.NotificationRepo, repos.UserRepo)
	container.Document = NewDocumentServiceImpl(repos.DocumentRepo, cfg.DocumentStorageDir)
	container.Coverage = NewCoverageServiceImpl(
		repos.CoverageRepo,
		repos.PolicyRepo,
		repos.StudentRepo,
		repos.EntityRepo,
		WithCertificateRenderer(renderer, repos.DocumentRepo),
		WithDocumentStore(container.Document),
	)
	container.Endorsement = NewEndorsementServiceImpl(
		repos.EndorsementRepo,
		repos.PolicyRepo,
		repos.AuditRepo,
		repos.DocumentRepo,
		renderer,
	)
	container.Audit = NewAuditServiceImpl(repos.AuditRepo)
	container.Notification = NewNotificationServiceImpl(repos.NotificationRepo)
	container.Scanner = NewExpiryScannerServiceImpl(
		repos.PolicyRepo,
		repos.EndorsementRepo,
		repos.NotificationRepo,
		repos.UserRepo,
	)

	container.Company = NewCompanyServiceImpl(repos.CompanyRepo)
	container.Student = NewStudentServiceImpl(repos.StudentRepo, repos.CompanyRepo, repos.PremiumRepo)
	container.Entity = NewEntityServiceImpl(repos.EntityRepo, repos.StudentRepo, repos.InsuredRecordRepo)
	container.Insured = NewInsuredServiceImpl(repos.InsuredRecordRepo, repos.CompanyRepo)
	container.Reporting = NewReportingServiceImpl(repos.ReportingRepo, repos.AuditRepo)

	return container
}
