package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/policyzen/policyzen_app/internal/apperrors"
	"github.com/policyzen/policyzen_app/internal/core/domain"
	portsrepo "github.com/policyzen/policyzen_app/internal/core/ports/repositories"
	portssvc "github.com/policyzen/policyzen_app/internal/core/ports/services"
	"github.com/policyzen/policyzen_app/internal/dto"
	"github.com/policyzen/policyzen_app/internal/pdf"
	"github.com/shopspring/decimal"
)

// defaultStudentSumInsured applies when a student record has no sum insured set.
var defaultStudentSumInsured = decimal.NewFromInt(1000000)

const studentPageSize = 200

// coverageServiceImpl implements the CoverageSvcFacade interface
type coverageServiceImpl struct {
	BaseService
	coverageRepo  portsrepo.CoverageRepositoryFacade
	policyRepo    portsrepo.PolicyRepositoryFacade
	studentRepo   portsrepo.StudentRepositoryFacade
	entityRepo    portsrepo.EntityRepositoryFacade
	documentRepo  portsrepo.DocumentRepositoryFacade
	documentStore portssvc.DocumentSvcFacade
	renderer      *pdf.Renderer
}

// CoverageServiceOption is a functional option for configuring the coverage service
type CoverageServiceOption func(*coverageServiceImpl)

// WithCertificateRenderer enables endorsement certificate generation after a
// committed batch.
func WithCertificateRenderer(renderer *pdf.Renderer, documentRepo portsrepo.DocumentRepositoryFacade) CoverageServiceOption {
	return func(s *coverageServiceImpl) {
		s.renderer = renderer
		s.documentRepo = documentRepo
	}
}

// WithDocumentStore enables linking uploaded supporting documents to the
// endorsement a removal batch creates.
func WithDocumentStore(store portssvc.DocumentSvcFacade) CoverageServiceOption {
	return func(s *coverageServiceImpl) {
		s.documentStore = store
	}
}

// NewCoverageServiceImpl creates a new coverage service with the provided options
func NewCoverageServiceImpl(
	coverageRepo portsrepo.CoverageRepositoryFacade,
	policyRepo portsrepo.PolicyRepositoryFacade,
	studentRepo portsrepo.StudentRepositoryFacade,
	entityRepo portsrepo.EntityRepositoryFacade,
	options ...CoverageServiceOption,
) portssvc.CoverageSvcFacade {
	svc := &coverageServiceImpl{
		coverageRepo: coverageRepo,
		policyRepo:   policyRepo,
		studentRepo:  studentRepo,
		entityRepo:   entityRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure coverageServiceImpl implements the CoverageSvcFacade interface
var _ portssvc.CoverageSvcFacade = (*coverageServiceImpl)(nil)

// AddStudentsToPolicy attaches the requested students to the policy in one
// atomic batch. Each student's pro-rata premium for one year of cover from
// their joining date debits the policy balance. Students that cannot be
// processed are reported in the outcome; only a batch with zero successes
// leaves the ledger untouched.
func (s *coverageServiceImpl) AddStudentsToPolicy(ctx context.Context, policyID string, req dto.AddStudentsRequest, requestingUserID string) (*domain.CoverageOutcome, error) {
	policy, err := s.policyRepo.FindPolicyByID(ctx, policyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find policy for student addition", "policy_id", policyID)
		return nil, err
	}
	if policy.Status != domain.PolicyActive {
		return nil, apperrors.NewAppError(http.StatusUnprocessableEntity,
			fmt.Sprintf("policy %s is %s, students can only be added to an active policy", policy.PolicyNumber, policy.Status),
			apperrors.ErrConflict)
	}

	students, err := s.studentRepo.FindStudentsByIDs(ctx, req.StudentIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to load students for addition", "policy_id", policyID)
		return nil, err
	}

	now := time.Now()
	var preFailed []domain.CoverageFailure
	items := make([]domain.CoverageItem, 0, len(req.StudentIDs))
	for _, studentID := range req.StudentIDs {
		student, ok := students[studentID]
		if !ok {
			preFailed = append(preFailed, domain.CoverageFailure{
				StudentID: studentID,
				Reason:    "student not found",
			})
			continue
		}

		joining := now
		if student.DateOfJoining != nil {
			joining = *student.DateOfJoining
		}
		// Cover runs one year from the joining date.
		exit := joining.AddDate(1, 0, 0)

		sumInsured := student.SumInsured
		if sumInsured.IsZero() {
			sumInsured = defaultStudentSumInsured
		}
		breakdown := CalculatePremium(sumInsured, joining, exit)

		items = append(items, domain.CoverageItem{
			StudentID:   student.StudentID,
			StudentName: student.Name,
			Entity:      s.entityCandidate(student, requestingUserID, now),
			Amount:      breakdown.FinalPremium,
			Breakdown:   &breakdown,
		})
	}

	if len(items) == 0 {
		s.LogInfo(ctx, "No resolvable students in addition request", "policy_id", policyID, "requested", len(req.StudentIDs))
		return &domain.CoverageOutcome{
			Failed:        preFailed,
			TotalAmount:   decimal.Zero,
			BalanceBefore: policy.SumInsured,
			BalanceAfter:  policy.SumInsured,
		}, nil
	}

	op := domain.CoverageOperation{
		PolicyID:        policyID,
		Action:          domain.CoverageAdd,
		TransactionType: domain.Debit,
		EffectiveDate:   now,
		Description:     fmt.Sprintf("Addition of %d student(s) with calculated premium", len(items)),
		Items:           items,
		PerformedBy:     requestingUserID,
	}
	outcome, err := s.coverageRepo.ApplyCoverageOperation(ctx, op)
	if err != nil {
		s.LogError(ctx, err, "Bulk student addition failed", "policy_id", policyID)
		return nil, err
	}
	outcome.Failed = append(preFailed, outcome.Failed...)

	s.LogInfo(ctx, "Students added to policy",
		"policy_id", policyID,
		"succeeded", len(outcome.Succeeded),
		"failed", len(outcome.Failed),
		"total_debited", outcome.TotalAmount.String())

	s.generateCertificate(ctx, *policy, outcome, domain.CoverageAdd, requestingUserID)
	return outcome, nil
}

// RemoveStudentsFromPolicy terminates the requested students' coverage in one
// atomic batch, crediting each pro-rata refund back to the sum insured. The
// refund spans the joining date through the exit date (today when omitted).
func (s *coverageServiceImpl) RemoveStudentsFromPolicy(ctx context.Context, policyID string, req dto.RemoveStudentsRequest, requestingUserID string) (*domain.CoverageOutcome, error) {
	if strings.TrimSpace(req.Reason) == "" {
		return nil, apperrors.NewAppError(http.StatusBadRequest, "A reason for student removal is required", apperrors.ErrValidation)
	}

	policy, err := s.policyRepo.FindPolicyByID(ctx, policyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find policy for student removal", "policy_id", policyID)
		return nil, err
	}

	students, err := s.studentRepo.FindStudentsByIDs(ctx, req.StudentIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to load students for removal", "policy_id", policyID)
		return nil, err
	}

	now := time.Now()
	exitDate := now
	if req.ExitDate != nil {
		exitDate = *req.ExitDate
	}

	var preFailed []domain.CoverageFailure
	items := make([]domain.CoverageItem, 0, len(req.StudentIDs))
	for _, studentID := range req.StudentIDs {
		student, ok := students[studentID]
		if !ok {
			preFailed = append(preFailed, domain.CoverageFailure{
				StudentID: studentID,
				Reason:    "student not found",
			})
			continue
		}

		joining := now
		if student.DateOfJoining != nil {
			joining = *student.DateOfJoining
		}
		exit := exitDate
		if exit.Before(joining) {
			exit = joining
		}

		sumInsured := student.SumInsured
		if sumInsured.IsZero() {
			sumInsured = defaultStudentSumInsured
		}
		breakdown := CalculatePremium(sumInsured, joining, exit)

		items = append(items, domain.CoverageItem{
			StudentID:   student.StudentID,
			StudentName: student.Name,
			Entity:      s.entityCandidate(student, requestingUserID, now),
			Amount:      breakdown.FinalPremium,
			Breakdown:   &breakdown,
		})
	}

	if len(items) == 0 {
		s.LogInfo(ctx, "No resolvable students in removal request", "policy_id", policyID, "requested", len(req.StudentIDs))
		return &domain.CoverageOutcome{
			Failed:        preFailed,
			TotalAmount:   decimal.Zero,
			BalanceBefore: policy.SumInsured,
			BalanceAfter:  policy.SumInsured,
		}, nil
	}

	description := fmt.Sprintf("Removal of %d student(s) with calculated refund: %s", len(items), req.Reason)
	op := domain.CoverageOperation{
		PolicyID:        policyID,
		Action:          domain.CoverageRemove,
		TransactionType: domain.Credit,
		EffectiveDate:   now,
		Description:     description,
		Items:           items,
		PerformedBy:     requestingUserID,
	}
	outcome, err := s.coverageRepo.ApplyCoverageOperation(ctx, op)
	if err != nil {
		s.LogError(ctx, err, "Bulk student removal failed", "policy_id", policyID)
		return nil, err
	}
	outcome.Failed = append(preFailed, outcome.Failed...)

	s.LogInfo(ctx, "Students removed from policy",
		"policy_id", policyID,
		"succeeded", len(outcome.Succeeded),
		"failed", len(outcome.Failed),
		"total_credited", outcome.TotalAmount.String())

	s.generateCertificate(ctx, *policy, outcome, domain.CoverageRemove, requestingUserID)
	s.attachSupportingDocuments(ctx, outcome, req, requestingUserID)
	return outcome, nil
}

// ListPolicyStudents retrieves the students currently covered by a policy.
func (s *coverageServiceImpl) ListPolicyStudents(ctx context.Context, policyID string) ([]domain.Student, error) {
	if _, err := s.policyRepo.FindPolicyByID(ctx, policyID); err != nil {
		return nil, err
	}
	studentIDs, err := s.coveredStudentIDs(ctx, policyID)
	if err != nil {
		return nil, err
	}
	if len(studentIDs) == 0 {
		return []domain.Student{}, nil
	}
	students, err := s.studentRepo.FindStudentsByIDs(ctx, studentIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to load covered students", "policy_id", policyID)
		return nil, err
	}
	result := make([]domain.Student, 0, len(studentIDs))
	for _, id := range studentIDs {
		if student, ok := students[id]; ok {
			result = append(result, student)
		}
	}
	return result, nil
}

// ListAvailableStudents retrieves a company's students not currently covered
// by the given policy.
func (s *coverageServiceImpl) ListAvailableStudents(ctx context.Context, policyID string, companyID string) ([]domain.Student, error) {
	coveredIDs, err := s.coveredStudentIDs(ctx, policyID)
	if err != nil {
		return nil, err
	}
	covered := make(map[string]struct{}, len(coveredIDs))
	for _, id := range coveredIDs {
		covered[id] = struct{}{}
	}

	var available []domain.Student
	for offset := 0; ; offset += studentPageSize {
		page, err := s.studentRepo.ListStudents(ctx, companyID, studentPageSize, offset)
		if err != nil {
			s.LogError(ctx, err, "Failed to list company students", "company_id", companyID)
			return nil, err
		}
		for _, student := range page {
			if _, ok := covered[student.StudentID]; !ok {
				available = append(available, student)
			}
		}
		if len(page) < studentPageSize {
			break
		}
	}
	if available == nil {
		available = []domain.Student{}
	}
	return available, nil
}

// coveredStudentIDs resolves the policy's active entity wrappers down to the
// student IDs behind them. Non-student entity types are skipped.
func (s *coverageServiceImpl) coveredStudentIDs(ctx context.Context, policyID string) ([]string, error) {
	entityIDs, err := s.coverageRepo.FindActiveEntityIDsByPolicy(ctx, policyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list active coverage entities", "policy_id", policyID)
		return nil, err
	}
	if len(entityIDs) == 0 {
		return nil, nil
	}
	entities, err := s.entityRepo.FindEntitiesByIDs(ctx, entityIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to load coverage entities", "policy_id", policyID)
		return nil, err
	}
	studentIDs := make([]string, 0, len(entityIDs))
	for _, entityID := range entityIDs {
		entity, ok := entities[entityID]
		if !ok || entity.Type != domain.EntityStudent {
			continue
		}
		studentIDs = append(studentIDs, entity.RefID)
	}
	return studentIDs, nil
}

// entityCandidate builds the wrapper row for a student. For additions the
// ledger creates it when no wrapper exists yet; for removals only the ref is
// used to resolve the existing row.
func (s *coverageServiceImpl) entityCandidate(student domain.Student, userID string, now time.Time) domain.Entity {
	return domain.Entity{
		EntityID:    uuid.NewString(),
		CompanyID:   student.CompanyID,
		Type:        domain.EntityStudent,
		RefID:       student.StudentID,
		Description: "Student: " + student.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
}

// attachSupportingDocuments stores the files uploaded with a removal request
// and links them to the endorsement the batch created. Failures are logged,
// never rolled back; the ledger commit already happened.
func (s *coverageServiceImpl) attachSupportingDocuments(ctx context.Context, outcome *domain.CoverageOutcome, req dto.RemoveStudentsRequest, userID string) {
	if s.documentStore == nil || outcome.Endorsement == nil || len(req.Documents) == 0 {
		return
	}
	docType := req.DocumentType
	if docType == "" {
		docType = domain.DocTypeSupporting
	}
	for _, upload := range req.Documents {
		doc := domain.Document{
			OwnerType:    domain.DocumentOwnerEndorsement,
			OwnerID:      outcome.Endorsement.EndorsementID,
			Name:         upload.Name,
			FileType:     upload.ContentType,
			DocumentType: docType,
			UploadedBy:   userID,
			UploadedAt:   time.Now(),
		}
		stored, err := s.documentStore.StoreDocument(ctx, doc, upload.Contents)
		if err != nil {
			s.LogError(ctx, err, "Failed to store supporting document",
				"name", upload.Name,
				"endorsement_id", outcome.Endorsement.EndorsementID)
			continue
		}
		outcome.Documents = append(outcome.Documents, *stored)
	}
}

// generateCertificate renders and records the endorsement certificate for a
// committed batch. Failures are logged, never rolled back; the ledger commit
// already happened.
func (s *coverageServiceImpl) generateCertificate(ctx context.Context, policy domain.Policy, outcome *domain.CoverageOutcome, action domain.CoverageAction, userID string) {
	if s.renderer == nil || outcome.Endorsement == nil {
		return
	}
	policy.SumInsured = outcome.BalanceAfter
	path, size, err := s.renderer.RenderEndorsementCertificate(pdf.CertificateData{
		Policy:       policy,
		Endorsement:  *outcome.Endorsement,
		Action:       action,
		Items:        outcome.Succeeded,
		TotalAmount:  outcome.TotalAmount,
		BalanceAfter: outcome.BalanceAfter,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to render endorsement certificate",
			"endorsement_number", outcome.Endorsement.EndorsementNumber)
		return
	}
	if s.documentRepo == nil {
		return
	}
	doc := domain.Document{
		DocumentID:   uuid.NewString(),
		OwnerType:    domain.DocumentOwnerEndorsement,
		OwnerID:      outcome.Endorsement.EndorsementID,
		Name:         outcome.Endorsement.EndorsementNumber + ".pdf",
		FilePath:     path,
		FileType:     "application/pdf",
		FileSize:     size,
		DocumentType: domain.DocTypeEndorsementCertificate,
		UploadedBy:   userID,
		UploadedAt:   time.Now(),
	}
	if err := s.documentRepo.SaveDocument(ctx, doc); err != nil {
		s.LogError(ctx, err, "Failed to record endorsement certificate document",
			"endorsement_number", outcome.Endorsement.EndorsementNumber)
		return
	}
	s.LogInfo(ctx, "Endorsement certificate generated",
		"endorsement_number", outcome.Endorsement.EndorsementNumber,
		"path", path)
}
