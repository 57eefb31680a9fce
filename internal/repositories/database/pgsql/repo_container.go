package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/policyzen/policyzen_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PolicyRepo:        newPgxPolicyRepository(dbPool),
		CoverageRepo:      newPgxCoverageRepository(dbPool),
		EntityRepo:        newPgxEntityRepository(dbPool),
		CompanyRepo:       newPgxCompanyRepository(dbPool),
		StudentRepo:       newPgxStudentRepository(dbPool),
		InsuredRecordRepo: newPgxInsuredRecordRepository(dbPool),
		EndorsementRepo:   newPgxEndorsementRepository(dbPool),
		AuditRepo:         newPgxAuditRepository(dbPool),
		NotificationRepo:  newPgxNotificationRepository(dbPool),
		DocumentRepo:      newPgxDocumentRepository(dbPool),
		PremiumRepo:       newPgxPremiumRepository(dbPool),
		UserRepo:          newPgxUserRepository(dbPool),
		ReportingRepo:     newReportingRepository(dbPool),
	}
}
