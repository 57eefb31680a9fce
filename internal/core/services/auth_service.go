package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/policyzen/policyzen_app/internal/apperrors"
	"github.com/policyzen/policyzen_app/internal/core/domain"
	portsrepo "github.com/policyzen/policyzen_app/internal/core/ports/repositories"
	portssvc "github.com/policyzen/policyzen_app/internal/core/ports/services"
	"github.com/policyzen/policyzen_app/internal/dto"
	"github.com/policyzen/policyzen_app/internal/utils"
)

// authServiceImpl implements the AuthSvcFacade interface
type authServiceImpl struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	tokenSvc portssvc.TokenSvcFacade
}

// NewAuthServiceImpl creates a new auth service
func NewAuthServiceImpl(userRepo portsrepo.UserRepositoryFacade, tokenSvc portssvc.TokenSvcFacade) portssvc.AuthSvcFacade {
	return &authServiceImpl{
		userRepo: userRepo,
		tokenSvc: tokenSvc,
	}
}

// Ensure authServiceImpl implements the AuthSvcFacade interface
var _ portssvc.AuthSvcFacade = (*authServiceImpl)(nil)

func (s *authServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same response for unknown user and wrong password.
			return nil, apperrors.NewAppError(http.StatusUnauthorized, "invalid credentials", apperrors.ErrForbidden)
		}
		s.LogError(ctx, err, "Failed to look up user at login", "username", req.Username)
		return nil, err
	}
	if user.Status != domain.UserActive {
		return nil, apperrors.NewAppError(http.StatusUnauthorized, "account is disabled", apperrors.ErrForbidden)
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.NewAppError(http.StatusUnauthorized, "invalid credentials", apperrors.ErrForbidden)
	}

	token, expiresAt, err := s.tokenSvc.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "User logged in", "user_id", user.UserID)
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.ToUserResponse(user),
	}, nil
}

func (s *authServiceImpl) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	if existing, err := s.userRepo.FindUserByUsername(ctx, req.Username); err == nil && existing != nil {
		return nil, apperrors.NewAppError(http.StatusConflict, "username is already taken", apperrors.ErrDuplicate)
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, err
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		Name:         req.Name,
		PasswordHash: hash,
		Status:       domain.UserActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", "username", req.Username)
		return nil, err
	}

	s.LogInfo(ctx, "User created", "user_id", user.UserID, "created_by", creatorUserID)
	return &user, nil
}

func (s *authServiceImpl) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}
