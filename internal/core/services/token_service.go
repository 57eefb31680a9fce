package services

import (
	"context"
	"net/http"
	"time"

	"github.com/policyzen/policyzen_app/internal/apperrors"
	"github.com/policyzen/policyzen_app/internal/core/domain"
	portssvc "github.com/policyzen/policyzen_app/internal/core/ports/services"
	"github.com/policyzen/policyzen_app/internal/utils"
)

// tokenServiceImpl implements the TokenSvcFacade interface
type tokenServiceImpl struct {
	BaseService
	secret string
	expiry time.Duration
	issuer string
}

// NewTokenServiceImpl creates a new token service
func NewTokenServiceImpl(secret string, expiry time.Duration, issuer string) portssvc.TokenSvcFacade {
	return &tokenServiceImpl{
		secret: secret,
		expiry: expiry,
		issuer: issuer,
	}
}

// Ensure tokenServiceImpl implements the TokenSvcFacade interface
var _ portssvc.TokenSvcFacade = (*tokenServiceImpl)(nil)

func (s *tokenServiceImpl) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	token, err := utils.GenerateJWT(user.UserID, s.secret, s.expiry, s.issuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token", "user_id", user.UserID)
		return "", time.Time{}, err
	}
	return token, time.Now().Add(s.expiry), nil
}

func (s *tokenServiceImpl) ValidateAccessToken(ctx context.Context, tokenString string) (string, error) {
	claims, err := utils.ParseAndValidateJWT(tokenString, s.secret)
	if err != nil {
		return "", apperrors.NewAppError(http.StatusUnauthorized, "invalid or expired token", err)
	}
	return claims.Subject, nil
}
