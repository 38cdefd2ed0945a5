package notificationhandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	notificationstore "staff-portal-backend/lib/notification/store"
	staffstore "staff-portal-backend/lib/staff/store"
	"staff-portal-backend/lib/utils/clock"
	"staff-portal-backend/models"
)

var (
	jane  = models.User{ID: "u1", FirstName: "Jane", LastName: "Doe", Role: models.UserRoleStaff}
	john  = models.User{ID: "u2", FirstName: "John", LastName: "Smith", Role: models.UserRoleHR}
	mary  = models.User{ID: "u3", FirstName: "Mary", LastName: "Johnson", Role: models.UserRoleAdmin}
	peter = models.User{ID: "u4", FirstName: "Peter", LastName: "Okafor", Role: models.UserRoleStaff}
)

func newTestProvider(t *testing.T) (Provider, *clock.Stub) {
	t.Helper()
	clk := clock.NewStub(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	users := staffstore.NewInstance([]models.User{jane, john, mary, peter})
	return NewInstance(notificationstore.NewInstance(nil), users, nil, clk), clk
}

func TestVisibilityRule(t *testing.T) {
	provider, _ := newTestProvider(t)

	toJane := provider.Add(Input{Title: "direct", Type: models.NotificationInfo, TargetUserID: jane.ID})
	toHR := provider.Add(Input{Title: "role", Type: models.NotificationInfo, TargetRole: string(models.UserRoleHR)})
	toAll := provider.Add(Input{Title: "broadcast", Type: models.NotificationInfo, TargetRole: models.TargetRoleAll})
	unaddressed := provider.Add(Input{Title: "open", Type: models.NotificationInfo})

	cases := []struct {
		name   string
		viewer models.User
		want   map[string]bool
	}{
		{"target user", jane, map[string]bool{toJane.ID: true, toHR.ID: false, toAll.ID: true, unaddressed.ID: true}},
		{"role match", john, map[string]bool{toJane.ID: false, toHR.ID: true, toAll.ID: true, unaddressed.ID: true}},
		{"no match beyond all", mary, map[string]bool{toJane.ID: false, toHR.ID: false, toAll.ID: true, unaddressed.ID: true}},
		{"other staff", peter, map[string]bool{toJane.ID: false, toHR.ID: false, toAll.ID: true, unaddressed.ID: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			visible := map[string]bool{}
			for _, rec := range provider.VisibleFor(tc.viewer) {
				visible[rec.ID] = true
			}
			for id, want := range tc.want {
				require.Equal(t, want, visible[id], "notification %v", id)
			}
		})
	}
}

func TestAddPrependsAndSortsByDate(t *testing.T) {
	provider, clk := newTestProvider(t)

	first := provider.Add(Input{Title: "first", Type: models.NotificationInfo})
	clk.Advance(time.Minute)
	second := provider.Add(Input{Title: "second", Type: models.NotificationInfo})

	feed := provider.VisibleFor(jane)
	require.Len(t, feed, 2)
	require.Equal(t, second.ID, feed[0].ID)
	require.Equal(t, first.ID, feed[1].ID)
	require.False(t, feed[0].Read)
}

func TestMarkRead(t *testing.T) {
	provider, _ := newTestProvider(t)
	rec := provider.Add(Input{Title: "n", Type: models.NotificationInfo, TargetUserID: jane.ID})

	provider.MarkRead("missing") // no-op
	require.Equal(t, 1, provider.UnreadCount(jane))

	provider.MarkRead(rec.ID)
	require.Equal(t, 0, provider.UnreadCount(jane))
}

func TestMarkAllReadScopedToViewer(t *testing.T) {
	provider, _ := newTestProvider(t)
	provider.Add(Input{Title: "for jane", Type: models.NotificationInfo, TargetUserID: jane.ID})
	provider.Add(Input{Title: "for hr", Type: models.NotificationInfo, TargetRole: string(models.UserRoleHR)})
	provider.Add(Input{Title: "broadcast", Type: models.NotificationInfo, TargetRole: models.TargetRoleAll})

	provider.MarkAllRead(jane)
	require.Equal(t, 0, provider.UnreadCount(jane))
	// the HR-only notice must not have been touched
	require.Equal(t, 2, provider.UnreadCount(john))

	t.Run("idempotent", func(t *testing.T) {
		provider.MarkAllRead(jane)
		require.Equal(t, 0, provider.UnreadCount(jane))
	})
}
