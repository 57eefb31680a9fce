package services

import (
	"context"
	"time"

	"github.com/policyzen/policyzen_app/internal/core/domain"
	"github.com/policyzen/policyzen_app/internal/dto"
)

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT for the user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateAccessToken verifies a token and returns the user ID it carries.
	ValidateAccessToken(ctx context.Context, tokenString string) (string, error)
}

// AuthSvcFacade defines login and user management operations.
type AuthSvcFacade interface {
	// Login verifies credentials and issues an access token.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)

	// CreateUser registers a new user with a hashed password.
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)

	// GetUserByID retrieves a user.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
