package approvalhandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	approvalstore "staff-portal-backend/lib/approval/store"
	documenthandler "staff-portal-backend/lib/document"
	documentstore "staff-portal-backend/lib/document/store"
	notificationhandler "staff-portal-backend/lib/notification"
	notificationstore "staff-portal-backend/lib/notification/store"
	staffstore "staff-portal-backend/lib/staff/store"
	"staff-portal-backend/lib/utils/clock"
	"staff-portal-backend/models"
	approvalapimodels "staff-portal-backend/models/api/approval"
)

var (
	jane = models.User{ID: "u1", FirstName: "Jane", LastName: "Doe", Role: models.UserRoleStaff}
	john = models.User{ID: "u2", FirstName: "John", LastName: "Smith", Role: models.UserRoleHR}
)

type fixture struct {
	provider      Provider
	documents     documenthandler.Provider
	docStore      documentstore.Provider
	notifications notificationhandler.Provider
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	clk := clock.NewStub(time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC))
	users := staffstore.NewInstance([]models.User{jane, john})
	notifications := notificationhandler.NewInstance(notificationstore.NewInstance(nil), users, nil, clk)
	docStore := documentstore.NewInstance(nil)
	documents := documenthandler.NewInstance(docStore, clk)
	return fixture{
		provider:      NewInstance(approvalstore.NewInstance(nil), users, documents, notifications, clk),
		documents:     documents,
		docStore:      docStore,
		notifications: notifications,
	}
}

func TestSubmitLeaveRequest(t *testing.T) {
	f := newFixture(t)

	rec := f.provider.Submit(jane, approvalapimodels.SubmitRequest{
		Type:   models.ApprovalLeaveRequest,
		Detail: "Annual leave, two weeks in October",
	})

	items := f.provider.List()
	require.Len(t, items, 1)
	require.Equal(t, models.ApprovalPending, items[0].Status)
	require.Equal(t, models.ApprovalLeaveRequest, items[0].Type)
	require.Equal(t, "Jane Doe", items[0].User)

	hrFeed := f.notifications.VisibleFor(john)
	require.Len(t, hrFeed, 1)
	require.Equal(t, string(models.UserRoleHR), hrFeed[0].TargetRole)

	// the requester sees nothing until a decision lands
	require.Empty(t, f.notifications.VisibleFor(jane))
	require.Equal(t, models.ApprovalPending, rec.Status)
}

func TestDecideDocumentApprovalCascades(t *testing.T) {
	f := newFixture(t)
	f.docStore.Prepend(models.Document{ID: "d2", UserID: jane.ID, Title: "Degree Certificate", Version: 1, Status: models.DocumentPending})

	item := f.provider.Submit(jane, approvalapimodels.SubmitRequest{
		Type:   models.ApprovalDocument,
		Detail: "Degree Certificate upload",
		Data:   &models.ApprovalData{DocumentID: "d2"},
	})

	err := f.provider.Decide(john, item.ID, approvalapimodels.DecisionRequest{Outcome: models.ApprovalApproved})
	require.Nil(t, err)

	doc, err := f.documents.Get("d2")
	require.Nil(t, err)
	require.Equal(t, models.DocumentApproved, doc.Status)

	got, err := f.provider.Get(item.ID)
	require.Nil(t, err)
	require.Equal(t, models.ApprovalApproved, got.Status)

	feed := f.notifications.VisibleFor(jane)
	require.Len(t, feed, 1)
	require.Equal(t, jane.ID, feed[0].TargetUserID)
	require.Equal(t, models.NotificationSuccess, feed[0].Type)
}

func TestDecideRejectionNotifiesWithAlert(t *testing.T) {
	f := newFixture(t)
	item := f.provider.Submit(jane, approvalapimodels.SubmitRequest{
		Type:   models.ApprovalProfileUpdate,
		Detail: "Change of address",
	})

	require.Nil(t, f.provider.Decide(john, item.ID, approvalapimodels.DecisionRequest{Outcome: models.ApprovalRejected}))

	feed := f.notifications.VisibleFor(jane)
	require.Len(t, feed, 1)
	require.Equal(t, models.NotificationAlert, feed[0].Type)
}

func TestDecideBioDataPartially(t *testing.T) {
	f := newFixture(t)
	item := f.provider.Submit(jane, approvalapimodels.SubmitRequest{
		Type:   models.ApprovalBioData,
		Detail: "Bio data update",
		Data: &models.ApprovalData{Fields: map[string]string{
			"phone":          "0800-000-000",
			"marital_status": "married",
		}},
	})

	decisions := map[string]models.ApprovalStatus{
		"phone":          models.ApprovalApproved,
		"marital_status": models.ApprovalRejected,
	}
	require.Nil(t, f.provider.Decide(john, item.ID, approvalapimodels.DecisionRequest{
		Outcome:        models.ApprovalPartiallyApproved,
		FieldDecisions: decisions,
	}))

	got, err := f.provider.Get(item.ID)
	require.Nil(t, err)
	require.Equal(t, models.ApprovalPartiallyApproved, got.Status)
	require.Equal(t, decisions, got.FieldStatuses)
}

func TestDecideIsTerminal(t *testing.T) {
	f := newFixture(t)
	item := f.provider.Submit(jane, approvalapimodels.SubmitRequest{
		Type:   models.ApprovalLeaveRequest,
		Detail: "Casual leave",
	})

	require.Nil(t, f.provider.Decide(john, item.ID, approvalapimodels.DecisionRequest{Outcome: models.ApprovalApproved}))
	// a second decision is stored nowhere; the first outcome stands
	require.Nil(t, f.provider.Decide(john, item.ID, approvalapimodels.DecisionRequest{Outcome: models.ApprovalRejected}))

	got, err := f.provider.Get(item.ID)
	require.Nil(t, err)
	require.Equal(t, models.ApprovalApproved, got.Status)
}

func TestDecideEdgeCases(t *testing.T) {
	f := newFixture(t)

	t.Run("staff may not decide", func(t *testing.T) {
		item := f.provider.Submit(jane, approvalapimodels.SubmitRequest{Type: models.ApprovalLeaveRequest, Detail: "x"})
		require.ErrorIs(t, f.provider.Decide(jane, item.ID, approvalapimodels.DecisionRequest{Outcome: models.ApprovalApproved}), ErrForbidden)
	})

	t.Run("unknown id succeeds with no effect", func(t *testing.T) {
		require.Nil(t, f.provider.Decide(john, "missing", approvalapimodels.DecisionRequest{Outcome: models.ApprovalApproved}))
	})

	t.Run("unresolved requester skips the notice only", func(t *testing.T) {
		ghost := models.User{ID: "u9", FirstName: "No", LastName: "Body", Role: models.UserRoleStaff}
		item := f.provider.Submit(ghost, approvalapimodels.SubmitRequest{Type: models.ApprovalLeaveRequest, Detail: "x"})

		before := len(f.notifications.VisibleFor(jane))
		require.Nil(t, f.provider.Decide(john, item.ID, approvalapimodels.DecisionRequest{Outcome: models.ApprovalApproved}))

		got, err := f.provider.Get(item.ID)
		require.Nil(t, err)
		require.Equal(t, models.ApprovalApproved, got.Status)
		require.Len(t, f.notifications.VisibleFor(jane), before)
	})
}
