package services

import (
	"context"

	"github.com/policyzen/policyzen_app/internal/core/domain"
	"github.com/policyzen/policyzen_app/internal/dto"
)

// EndorsementSvcFacade defines read, certificate and removal operations for
// endorsements. Endorsements themselves are created only by coverage
// operations.
type EndorsementSvcFacade interface {
	// GetEndorsementByID retrieves an endorsement with its entity IDs.
	GetEndorsementByID(ctx context.Context, endorsementID string) (*domain.Endorsement, error)

	// ListEndorsementsByPolicy retrieves a page of a policy's endorsements.
	ListEndorsementsByPolicy(ctx context.Context, policyID string, params dto.ListEndorsementsParams) (*dto.ListEndorsementsResponse, error)

	// RegenerateCertificate renders the PDF certificate for an endorsement
	// again and returns the stored document metadata.
	RegenerateCertificate(ctx context.Context, endorsementID string, requestingUserID string) (*domain.Document, error)

	// DeleteEndorsement removes an endorsement record without reversing the
	// balance movements it produced.
	DeleteEndorsement(ctx context.Context, endorsementID string, actingUserID string) error
}
