package rbac

import "staff-portal-backend/models"

// Role gating for the workflow layer. Screens render whatever they like;
// the providers consult these before applying a transition.

// CanDecide reports whether the actor may decide a pending approval item.
func CanDecide(actor models.User, item models.ApprovalItem) bool {
	if actor.Role.IsStaff() {
		return false
	}
	return item.Status == models.ApprovalPending
}

// CanTransition reports whether the actor may move the ticket directly to the
// target status. Staff never transition tickets; they create and reply only.
// The resolved -> in-progress revival is reserved for the reply-reopens rule
// and is never a direct transition.
func CanTransition(actor models.User, ticket models.Complaint, target models.TicketStatus) bool {
	if actor.Role.IsStaff() {
		return false
	}
	switch target {
	case models.TicketResolved:
		return ticket.Status == models.TicketOpen || ticket.Status == models.TicketInProgress
	case models.TicketEscalated:
		if actor.Role != models.UserRoleHR {
			return false
		}
		return ticket.Status == models.TicketOpen || ticket.Status == models.TicketInProgress
	case models.TicketInProgress:
		return ticket.Status == models.TicketOpen
	}
	return false
}
