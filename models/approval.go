package models

import "time"

type ApprovalType string

const (
	ApprovalProfileUpdate ApprovalType = "Profile Update"
	ApprovalDocument      ApprovalType = "Document"
	ApprovalLeaveRequest  ApprovalType = "Leave Request"
	ApprovalBioData       ApprovalType = "Bio Data"
)

type ApprovalStatus string

const (
	ApprovalPending           ApprovalStatus = "pending"
	ApprovalApproved          ApprovalStatus = "approved"
	ApprovalRejected          ApprovalStatus = "rejected"
	ApprovalPartiallyApproved ApprovalStatus = "partially_approved"
)

// IsTerminal reports whether the status ends the item's lifecycle.
func (s ApprovalStatus) IsTerminal() bool {
	return s == ApprovalApproved || s == ApprovalRejected || s == ApprovalPartiallyApproved
}

// ApprovalData is the optional payload of a request: a linked document for
// document approvals, or a field map for bio-data submissions.
type ApprovalData struct {
	DocumentID string            `json:"document_id,omitempty"`
	Fields     map[string]string `json:"fields,omitempty"`
}

type ApprovalItem struct {
	ID     string       `json:"id"`
	Type   ApprovalType `json:"type"`
	User   string       `json:"user"` // requester's "First Last" display name
	Detail string       `json:"detail"`
	Date   time.Time    `json:"date"`
	Status ApprovalStatus `json:"status"`
	Data   *ApprovalData  `json:"data,omitempty"`
	// FieldStatuses holds per-field outcomes when a bio-data submission is
	// partially approved.
	FieldStatuses map[string]ApprovalStatus `json:"field_statuses,omitempty"`
}
