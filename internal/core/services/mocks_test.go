package services_test

import (
	"context"
	"io"
	"time"

	"github.com/policyzen/policyzen_app/internal/core/domain"
	portsrepo "github.com/policyzen/policyzen_app/internal/core/ports/repositories"
	portssvc "github.com/policyzen/policyzen_app/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// MockPolicyRepository is a mock type for the PolicyRepositoryFacade interface
type MockPolicyRepository struct {
	mock.Mock
}

func (m *MockPolicyRepository) FindPolicyByID(ctx context.Context, policyID string) (*domain.Policy, error) {
	args := m.Called(ctx, policyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Policy), args.Error(1)
}

func (m *MockPolicyRepository) FindPolicyByNumber(ctx context.Context, policyNumber string) (*domain.Policy, error) {
	args := m.Called(ctx, policyNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Policy), args.Error(1)
}

func (m *MockPolicyRepository) ListPolicies(ctx context.Context, status *domain.PolicyStatus, limit int, offset int) ([]domain.Policy, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Policy), args.Error(1)
}

func (m *MockPolicyRepository) ListPoliciesExpiringBetween(ctx context.Context, from time.Time, to time.Time) ([]domain.Policy, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Policy), args.Error(1)
}

func (m *MockPolicyRepository) ListExpiredActivePolicies(ctx context.Context, asOf time.Time) ([]domain.Policy, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Policy), args.Error(1)
}

func (m *MockPolicyRepository) SavePolicy(ctx context.Context, policy domain.Policy) error {
	args := m.Called(ctx, policy)
	return args.Error(0)
}

func (m *MockPolicyRepository) UpdatePolicy(ctx context.Context, policy domain.Policy) error {
	args := m.Called(ctx, policy)
	return args.Error(0)
}

func (m *MockPolicyRepository) DeletePolicy(ctx context.Context, policyID string) error {
	args := m.Called(ctx, policyID)
	return args.Error(0)
}

// MockCoverageRepository is a mock type for the CoverageRepositoryFacade interface
type MockCoverageRepository struct {
	mock.Mock
}

func (m *MockCoverageRepository) FindAttachmentsByPolicy(ctx context.Context, policyID string, activeOnly bool) ([]domain.CoverageAttachment, error) {
	args := m.Called(ctx, policyID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CoverageAttachment), args.Error(1)
}

func (m *MockCoverageRepository) FindAttachmentsByEntity(ctx context.Context, entityID string) ([]domain.CoverageAttachment, error) {
	args := m.Called(ctx, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CoverageAttachment), args.Error(1)
}

func (m *MockCoverageRepository) CountActiveAttachments(ctx context.Context, policyID string) (int, error) {
	args := m.Called(ctx, policyID)
	return args.Int(0), args.Error(1)
}

func (m *MockCoverageRepository) FindActiveEntityIDsByPolicy(ctx context.Context, policyID string) ([]string, error) {
	args := m.Called(ctx, policyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCoverageRepository) ApplyCoverageOperation(ctx context.Context, op domain.CoverageOperation) (*domain.CoverageOutcome, error) {
	args := m.Called(ctx, op)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CoverageOutcome), args.Error(1)
}

// MockStudentRepository is a mock type for the StudentRepositoryFacade interface
type MockStudentRepository struct {
	mock.Mock
}

func (m *MockStudentRepository) FindStudentByID(ctx context.Context, studentID string) (*domain.Student, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}

func (m *MockStudentRepository) FindStudentsByIDs(ctx context.Context, studentIDs []string) (map[string]domain.Student, error) {
	args := m.Called(ctx, studentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Student), args.Error(1)
}

func (m *MockStudentRepository) ListStudents(ctx context.Context, companyID string, limit int, offset int) ([]domain.Student, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Student), args.Error(1)
}

func (m *MockStudentRepository) SaveStudent(ctx context.Context, student domain.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *MockStudentRepository) UpdateStudent(ctx context.Context, student domain.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *MockStudentRepository) DeleteStudent(ctx context.Context, studentID string) error {
	args := m.Called(ctx, studentID)
	return args.Error(0)
}

// MockEntityRepository is a mock type for the EntityRepositoryFacade interface
type MockEntityRepository struct {
	mock.Mock
}

func (m *MockEntityRepository) FindEntityByID(ctx context.Context, entityID string) (*domain.Entity, error) {
	args := m.Called(ctx, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entity), args.Error(1)
}

func (m *MockEntityRepository) FindEntityByRef(ctx context.Context, ref domain.EntityRef) (*domain.Entity, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entity), args.Error(1)
}

func (m *MockEntityRepository) FindEntitiesByIDs(ctx context.Context, entityIDs []string) (map[string]domain.Entity, error) {
	args := m.Called(ctx, entityIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Entity), args.Error(1)
}

func (m *MockEntityRepository) ListEntitiesByCompany(ctx context.Context, companyID string, limit int, offset int) ([]domain.Entity, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entity), args.Error(1)
}

func (m *MockEntityRepository) SaveEntity(ctx context.Context, entity domain.Entity) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

// MockEndorsementRepository is a mock type for the EndorsementRepositoryFacade interface
type MockEndorsementRepository struct {
	mock.Mock
}

func (m *MockEndorsementRepository) FindEndorsementByID(ctx context.Context, endorsementID string) (*domain.Endorsement, error) {
	args := m.Called(ctx, endorsementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Endorsement), args.Error(1)
}

func (m *MockEndorsementRepository) ListEndorsementsByPolicy(ctx context.Context, policyID string, limit int, offset int) ([]domain.Endorsement, error) {
	args := m.Called(ctx, policyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Endorsement), args.Error(1)
}

func (m *MockEndorsementRepository) ListEndorsementsEffectiveBetween(ctx context.Context, from time.Time, to time.Time) ([]domain.Endorsement, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Endorsement), args.Error(1)
}

func (m *MockEndorsementRepository) DeleteEndorsement(ctx context.Context, endorsementID string) error {
	args := m.Called(ctx, endorsementID)
	return args.Error(0)
}

// MockNotificationRepository is a mock type for the NotificationRepositoryFacade interface
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) FindNotificationByID(ctx context.Context, notificationID string) (*domain.Notification, error) {
	args := m.Called(ctx, notificationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) ListNotificationsByUser(ctx context.Context, userID string, unreadOnly bool, limit int, offset int) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, unreadOnly, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) CountUnreadByUser(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationRepository) HasRecentNotification(ctx context.Context, userID string, notifType string, referenceType string, referenceID string, since time.Time) (bool, error) {
	args := m.Called(ctx, userID, notifType, referenceType, referenceID, since)
	return args.Bool(0), args.Error(1)
}

func (m *MockNotificationRepository) GetNotificationStats(ctx context.Context, userID string) (*domain.NotificationStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NotificationStats), args.Error(1)
}

func (m *MockNotificationRepository) SaveNotifications(ctx context.Context, notifications []domain.Notification) error {
	args := m.Called(ctx, notifications)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkNotificationRead(ctx context.Context, notificationID string, userID string, now time.Time) error {
	args := m.Called(ctx, notificationID, userID, now)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkAllNotificationsRead(ctx context.Context, userID string, now time.Time) (int, error) {
	args := m.Called(ctx, userID, now)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationRepository) DeleteNotification(ctx context.Context, notificationID string, userID string) error {
	args := m.Called(ctx, notificationID, userID)
	return args.Error(0)
}

func (m *MockNotificationRepository) DeleteExpiredBefore(ctx context.Context, cutoff time.Time, now time.Time) (int, error) {
	args := m.Called(ctx, cutoff, now)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationRepository) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int, error) {
	args := m.Called(ctx, cutoff)
	return args.Int(0), args.Error(1)
}

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockAuditRepository is a mock type for the AuditRepositoryFacade interface
type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) FindAuditEntryByID(ctx context.Context, auditID string) (*domain.AuditEntry, error) {
	args := m.Called(ctx, auditID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuditEntry), args.Error(1)
}

func (m *MockAuditRepository) ListAuditEntriesByPolicy(ctx context.Context, policyID string, before time.Time, limit int) ([]domain.AuditEntry, error) {
	args := m.Called(ctx, policyID, before, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditEntry), args.Error(1)
}

func (m *MockAuditRepository) ListAuditEntriesByEntity(ctx context.Context, entityID string, before time.Time, limit int) ([]domain.AuditEntry, error) {
	args := m.Called(ctx, entityID, before, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditEntry), args.Error(1)
}

func (m *MockAuditRepository) ListRecentAuditEntries(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditEntry), args.Error(1)
}

func (m *MockAuditRepository) ListAuditEntriesByEndorsement(ctx context.Context, endorsementID string) ([]domain.AuditEntry, error) {
	args := m.Called(ctx, endorsementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditEntry), args.Error(1)
}

// MockCompanyRepository is a mock type for the CompanyRepositoryFacade interface
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) ListCompanies(ctx context.Context, limit int, offset int) ([]domain.Company, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) DeleteCompany(ctx context.Context, companyID string) error {
	args := m.Called(ctx, companyID)
	return args.Error(0)
}

// MockInsuredRecordRepository is a mock type for the InsuredRecordRepositoryFacade interface
type MockInsuredRecordRepository struct {
	mock.Mock
}

func (m *MockInsuredRecordRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockInsuredRecordRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockInsuredRecordRepository) FindVesselByID(ctx context.Context, vesselID string) (*domain.Vessel, error) {
	args := m.Called(ctx, vesselID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vessel), args.Error(1)
}

func (m *MockInsuredRecordRepository) SaveVessel(ctx context.Context, vessel domain.Vessel) error {
	args := m.Called(ctx, vessel)
	return args.Error(0)
}

func (m *MockInsuredRecordRepository) FindVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockInsuredRecordRepository) SaveVehicle(ctx context.Context, vehicle domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

// MockDocumentStore is a mock type for the DocumentSvcFacade interface
type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) GetDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentStore) ListDocumentsByOwner(ctx context.Context, ownerType domain.DocumentOwnerType, ownerID string) ([]domain.Document, error) {
	args := m.Called(ctx, ownerType, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

func (m *MockDocumentStore) StoreDocument(ctx context.Context, doc domain.Document, contents io.Reader) (*domain.Document, error) {
	args := m.Called(ctx, doc, contents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentStore) OpenDocument(ctx context.Context, documentID string) (*domain.Document, io.ReadCloser, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Document), args.Get(1).(io.ReadCloser), args.Error(2)
}

func (m *MockDocumentStore) DeleteDocument(ctx context.Context, documentID string, requestingUserID string) error {
	args := m.Called(ctx, documentID, requestingUserID)
	return args.Error(0)
}

// Compile-time interface checks for the mocks shared across suites.
var (
	_ portsrepo.PolicyRepositoryFacade        = (*MockPolicyRepository)(nil)
	_ portsrepo.CoverageRepositoryFacade      = (*MockCoverageRepository)(nil)
	_ portsrepo.StudentRepositoryFacade       = (*MockStudentRepository)(nil)
	_ portsrepo.EntityRepositoryFacade        = (*MockEntityRepository)(nil)
	_ portsrepo.EndorsementRepositoryFacade   = (*MockEndorsementRepository)(nil)
	_ portsrepo.NotificationRepositoryFacade  = (*MockNotificationRepository)(nil)
	_ portsrepo.UserRepositoryFacade          = (*MockUserRepository)(nil)
	_ portsrepo.AuditRepositoryFacade         = (*MockAuditRepository)(nil)
	_ portsrepo.CompanyRepositoryFacade       = (*MockCompanyRepository)(nil)
	_ portsrepo.InsuredRecordRepositoryFacade = (*MockInsuredRecordRepository)(nil)
	_ portssvc.DocumentSvcFacade              = (*MockDocumentStore)(nil)
)
