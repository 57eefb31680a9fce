package dto

import (
	"io"
	"time"

	"github.com/policyzen/policyzen_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AddStudentsRequest defines a bulk addition of students to a policy.
// Each student's own joining date drives its pro-rata premium.
type AddStudentsRequest struct {
	StudentIDs []string `json:"studentIDs" binding:"required,min=1,dive,required"`
}

// DocumentUpload carries one uploaded file from the transport layer into a
// coverage operation. Contents is consumed once while storing.
type DocumentUpload struct {
	Name        string
	ContentType string
	Contents    io.Reader
}

// RemoveStudentsRequest defines a bulk removal of students from a policy.
// ExitDate defaults to today when omitted. Reason is carried into the
// endorsement description; supporting documents uploaded with the request
// are linked to the created endorsement.
type RemoveStudentsRequest struct {
	StudentIDs   []string   `json:"studentIDs" form:"studentIDs" binding:"required,min=1,dive,required"`
	ExitDate     *time.Time `json:"exitDate" form:"exitDate" time_format:"2006-01-02"`
	Reason       string     `json:"reason" form:"reason" binding:"required"`
	DocumentType string     `json:"documentType" form:"documentType"`

	// Documents is populated by the handler from the multipart form, never
	// bound directly.
	Documents []DocumentUpload `json:"-" form:"-"`
}

// CoverageSuccessItem reports one processed student with its ledger amount.
type CoverageSuccessItem struct {
	StudentID   string                `json:"studentID"`
	StudentName string                `json:"studentName"`
	EntityID    string                `json:"entityID"`
	Amount      decimal.Decimal       `json:"amount"`
	Breakdown   *PremiumBreakdownResp `json:"breakdown,omitempty"`
}

// CoverageFailureItem reports one skipped student and why.
type CoverageFailureItem struct {
	StudentID   string `json:"studentID"`
	StudentName string `json:"studentName"`
	Reason      string `json:"reason"`
}

// BulkCoverageResponse is the result of a bulk add or remove. Succeeded and
// Failed together cover every requested student exactly once.
type BulkCoverageResponse struct {
	Succeeded     []CoverageSuccessItem `json:"succeeded"`
	Failed        []CoverageFailureItem `json:"failed"`
	Endorsement   *EndorsementResponse  `json:"endorsement,omitempty"`
	Documents     []DocumentResponse    `json:"documents,omitempty"`
	TotalAmount   decimal.Decimal       `json:"totalAmount"`
	BalanceBefore decimal.Decimal       `json:"balanceBefore"`
	BalanceAfter  decimal.Decimal       `json:"balanceAfter"`
}

// ToBulkCoverageResponse converts a domain.CoverageOutcome to its DTO.
func ToBulkCoverageResponse(out *domain.CoverageOutcome) BulkCoverageResponse {
	resp := BulkCoverageResponse{
		Succeeded:     make([]CoverageSuccessItem, len(out.Succeeded)),
		Failed:        make([]CoverageFailureItem, len(out.Failed)),
		TotalAmount:   out.TotalAmount,
		BalanceBefore: out.BalanceBefore,
		BalanceAfter:  out.BalanceAfter,
	}
	if len(out.Documents) > 0 {
		resp.Documents = ToDocumentResponses(out.Documents)
	}
	for i, s := range out.Succeeded {
		item := CoverageSuccessItem{
			StudentID:   s.StudentID,
			StudentName: s.StudentName,
			EntityID:    s.EntityID,
			Amount:      s.Amount,
		}
		if s.Breakdown != nil {
			b := ToPremiumBreakdownResp(*s.Breakdown)
			item.Breakdown = &b
		}
		resp.Succeeded[i] = item
	}
	for i, f := range out.Failed {
		resp.Failed[i] = CoverageFailureItem{
			StudentID:   f.StudentID,
			StudentName: f.StudentName,
			Reason:      f.Reason,
		}
	}
	if out.Endorsement != nil {
		e := ToEndorsementResponse(out.Endorsement)
		resp.Endorsement = &e
	}
	return resp
}
