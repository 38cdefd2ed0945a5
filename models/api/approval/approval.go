package approvalapimodels

import (
	"staff-portal-backend/models"

	"github.com/pkg/errors"
)

type SubmitRequest struct {
	Type   models.ApprovalType  `json:"type"`
	Detail string               `json:"detail"`
	Data   *models.ApprovalData `json:"data,omitempty"`
}

func (r SubmitRequest) Validate() error {
	switch r.Type {
	case models.ApprovalProfileUpdate, models.ApprovalDocument,
		models.ApprovalLeaveRequest, models.ApprovalBioData:
	default:
		return errors.New("unknown request type")
	}
	if r.Detail == "" {
		return errors.New("detail is required")
	}
	return nil
}

type DecisionRequest struct {
	Outcome models.ApprovalStatus `json:"outcome"`
	// FieldDecisions carries per-field outcomes for bio-data reviews.
	FieldDecisions map[string]models.ApprovalStatus `json:"field_decisions,omitempty"`
}

func (r DecisionRequest) Validate() error {
	if !r.Outcome.IsTerminal() {
		return errors.New("outcome must be approved, rejected or partially_approved")
	}
	return nil
}
