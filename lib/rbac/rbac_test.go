package rbac

import (
	"testing"

	"github.com/stretchr/testify/require"

	"staff-portal-backend/models"
)

func TestCanDecide(t *testing.T) {
	staff := models.User{ID: "u1", Role: models.UserRoleStaff}
	hr := models.User{ID: "u2", Role: models.UserRoleHR}
	admin := models.User{ID: "u3", Role: models.UserRoleAdmin}

	pending := models.ApprovalItem{ID: "a1", Status: models.ApprovalPending}
	decided := models.ApprovalItem{ID: "a2", Status: models.ApprovalApproved}

	require.False(t, CanDecide(staff, pending))
	require.True(t, CanDecide(hr, pending))
	require.True(t, CanDecide(admin, pending))
	require.False(t, CanDecide(hr, decided))
	require.False(t, CanDecide(admin, decided))
}

func TestCanTransition(t *testing.T) {
	staff := models.User{ID: "u1", Role: models.UserRoleStaff}
	hr := models.User{ID: "u2", Role: models.UserRoleHR}
	admin := models.User{ID: "u3", Role: models.UserRoleAdmin}

	ticket := func(status models.TicketStatus) models.Complaint {
		return models.Complaint{ID: "t1", Status: status}
	}

	t.Run("staff never transition", func(t *testing.T) {
		for _, target := range []models.TicketStatus{
			models.TicketInProgress, models.TicketResolved, models.TicketEscalated,
		} {
			require.False(t, CanTransition(staff, ticket(models.TicketOpen), target))
		}
	})

	t.Run("resolve", func(t *testing.T) {
		require.True(t, CanTransition(hr, ticket(models.TicketOpen), models.TicketResolved))
		require.True(t, CanTransition(admin, ticket(models.TicketInProgress), models.TicketResolved))
		require.False(t, CanTransition(hr, ticket(models.TicketResolved), models.TicketResolved))
		require.False(t, CanTransition(hr, ticket(models.TicketEscalated), models.TicketResolved))
	})

	t.Run("escalate is hr only and never twice", func(t *testing.T) {
		require.True(t, CanTransition(hr, ticket(models.TicketOpen), models.TicketEscalated))
		require.True(t, CanTransition(hr, ticket(models.TicketInProgress), models.TicketEscalated))
		require.False(t, CanTransition(admin, ticket(models.TicketOpen), models.TicketEscalated))
		require.False(t, CanTransition(hr, ticket(models.TicketEscalated), models.TicketEscalated))
	})

	t.Run("reopening is reserved for the reply rule", func(t *testing.T) {
		require.False(t, CanTransition(hr, ticket(models.TicketResolved), models.TicketInProgress))
		require.True(t, CanTransition(hr, ticket(models.TicketOpen), models.TicketInProgress))
	})
}
