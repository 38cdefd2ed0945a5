package models

import "time"

type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationAlert   NotificationType = "alert"
)

type Notification struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
	// Addressing: exactly one of TargetUserID / TargetRole is expected to be
	// set; both empty means the notice is visible to everyone.
	TargetUserID string `json:"target_user_id,omitempty"`
	TargetRole   string `json:"target_role,omitempty"`
}

// VisibleTo applies the addressing rule: user id match, role match,
// the "all" role, or an unaddressed notice.
func (n Notification) VisibleTo(viewer User) bool {
	if n.TargetUserID != "" && n.TargetUserID == viewer.ID {
		return true
	}
	if n.TargetRole != "" && n.TargetRole == string(viewer.Role) {
		return true
	}
	if n.TargetRole == TargetRoleAll {
		return true
	}
	return n.TargetUserID == "" && n.TargetRole == ""
}
