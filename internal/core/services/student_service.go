package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/policyzen/policyzen_app/internal/core/domain"
	portsrepo "github.com/policyzen/policyzen_app/internal/core/ports/repositories"
	portssvc "github.com/policyzen/policyzen_app/internal/core/ports/services"
	"github.com/policyzen/policyzen_app/internal/dto"
)

// studentServiceImpl implements the StudentSvcFacade interface
type studentServiceImpl struct {
	BaseService
	studentRepo portsrepo.StudentRepositoryFacade
	companyRepo portsrepo.CompanyRepositoryFacade
	premiumRepo portsrepo.PremiumReader
}

// NewStudentServiceImpl creates a new student service
func NewStudentServiceImpl(studentRepo portsrepo.StudentRepositoryFacade, companyRepo portsrepo.CompanyRepositoryFacade, premiumRepo portsrepo.PremiumReader) portssvc.StudentSvcFacade {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		companyRepo: companyRepo,
		premiumRepo: premiumRepo,
	}
}

// Ensure studentServiceImpl implements the StudentSvcFacade interface
var _ portssvc.StudentSvcFacade = (*studentServiceImpl)(nil)

func (s *studentServiceImpl) GetStudentByID(ctx context.Context, studentID string) (*domain.Student, error) {
	return s.studentRepo.FindStudentByID(ctx, studentID)
}

func (s *studentServiceImpl) ListStudents(ctx context.Context, companyID string, limit int, offset int) ([]domain.Student, error) {
	if limit <= 0 {
		limit = studentPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return s.studentRepo.ListStudents(ctx, companyID, limit, offset)
}

func (s *studentServiceImpl) CreateStudent(ctx context.Context, req dto.CreateStudentRequest, creatorUserID string) (*domain.Student, error) {
	if _, err := s.companyRepo.FindCompanyByID(ctx, req.CompanyID); err != nil {
		return nil, err
	}

	now := time.Now()
	sumInsured := defaultStudentSumInsured
	if req.SumInsured != nil && !req.SumInsured.IsZero() {
		sumInsured = *req.SumInsured
	}
	joining := now
	if req.DateOfJoining != nil {
		joining = *req.DateOfJoining
	}

	student := domain.Student{
		StudentID:     uuid.NewString(),
		CompanyID:     req.CompanyID,
		Name:          req.Name,
		Email:         req.Email,
		StudentCode:   req.StudentCode,
		SumInsured:    sumInsured,
		DateOfJoining: &joining,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.studentRepo.SaveStudent(ctx, student); err != nil {
		s.LogError(ctx, err, "Failed to save student", "company_id", req.CompanyID)
		return nil, err
	}
	s.LogInfo(ctx, "Student created", "student_id", student.StudentID)
	return &student, nil
}

func (s *studentServiceImpl) UpdateStudent(ctx context.Context, studentID string, req dto.UpdateStudentRequest, requestingUserID string) (*domain.Student, error) {
	student, err := s.studentRepo.FindStudentByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.Email != nil {
		student.Email = *req.Email
	}
	if req.StudentCode != nil {
		student.StudentCode = *req.StudentCode
	}
	if req.SumInsured != nil {
		student.SumInsured = *req.SumInsured
	}
	if req.DateOfJoining != nil {
		student.DateOfJoining = req.DateOfJoining
	}
	student.LastUpdatedAt = time.Now()
	student.LastUpdatedBy = requestingUserID

	if err := s.studentRepo.UpdateStudent(ctx, *student); err != nil {
		s.LogError(ctx, err, "Failed to update student", "student_id", studentID)
		return nil, err
	}
	return student, nil
}

func (s *studentServiceImpl) ListStudentPremiums(ctx context.Context, studentID string) ([]domain.StudentPolicyPremium, error) {
	if _, err := s.studentRepo.FindStudentByID(ctx, studentID); err != nil {
		return nil, err
	}
	return s.premiumRepo.ListPremiumsByStudent(ctx, studentID)
}

func (s *studentServiceImpl) DeleteStudent(ctx context.Context, studentID string, requestingUserID string) error {
	if _, err := s.studentRepo.FindStudentByID(ctx, studentID); err != nil {
		return err
	}
	if err := s.studentRepo.DeleteStudent(ctx, studentID); err != nil {
		s.LogError(ctx, err, "Failed to delete student", "student_id", studentID)
		return err
	}
	s.LogInfo(ctx, "Student deleted", "student_id", studentID, "deleted_by", requestingUserID)
	return nil
}
