package approvalhandler

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	approvalstore "staff-portal-backend/lib/approval/store"
	documenthandler "staff-portal-backend/lib/document"
	notificationhandler "staff-portal-backend/lib/notification"
	"staff-portal-backend/lib/rbac"
	staffstore "staff-portal-backend/lib/staff/store"
	"staff-portal-backend/lib/utils/clock"
	"staff-portal-backend/localstore"
	"staff-portal-backend/models"
	approvalapimodels "staff-portal-backend/models/api/approval"
)

type Provider interface {
	Submit(requester models.User, req approvalapimodels.SubmitRequest) models.ApprovalItem
	Decide(actor models.User, id string, decision approvalapimodels.DecisionRequest) error
	List() []models.ApprovalItem
	Get(id string) (models.ApprovalItem, error)
}

var Instance Provider

var (
	ErrNotFound  = errors.New("approval item not found")
	ErrForbidden = errors.New("actor may not decide this request")
)

func NewHandler(storage *localstore.Storage, staffStore staffstore.Provider, documents documenthandler.Provider, notifications notificationhandler.Provider, clk clock.Provider) {
	Instance = NewInstance(approvalstore.NewInstance(storage), staffStore, documents, notifications, clk)
}

func NewInstance(store approvalstore.Provider, staffStore staffstore.Provider, documents documenthandler.Provider, notifications notificationhandler.Provider, clk clock.Provider) Provider {
	return &impl{
		store:         store,
		staffStore:    staffStore,
		documents:     documents,
		notifications: notifications,
		clock:         clk,
	}
}

type impl struct {
	store         approvalstore.Provider
	staffStore    staffstore.Provider
	documents     documenthandler.Provider
	notifications notificationhandler.Provider
	clock         clock.Provider
}

func (i *impl) getLogger(id string) *log.Entry {
	return log.WithField("approval_id", id)
}

// Submit files a pending item and announces it to the HR role.
func (i *impl) Submit(requester models.User, req approvalapimodels.SubmitRequest) models.ApprovalItem {
	rec := models.ApprovalItem{
		ID:     uuid.NewString(),
		Type:   req.Type,
		User:   requester.GetFullName(),
		Detail: req.Detail,
		Date:   i.clock.Now(),
		Status: models.ApprovalPending,
		Data:   req.Data,
	}
	i.store.Prepend(rec)
	i.notifications.Add(notificationhandler.Input{
		Title:      "New Approval Request",
		Message:    fmt.Sprintf("%s submitted a %s request.", rec.User, rec.Type),
		Type:       models.NotificationInfo,
		TargetRole: string(models.UserRoleHR),
	})
	return rec
}

// Decide records the terminal outcome of a pending item, cascading a binary
// document decision into the document store and notifying the requester when
// their identity resolves.
func (i *impl) Decide(actor models.User, id string, decision approvalapimodels.DecisionRequest) error {
	logger := i.getLogger(id)
	item, found := i.store.GetByID(id)
	if !found {
		// a decision on a vanished request succeeds with no effect
		logger.Warn("approval item not found, decision skipped")
		return nil
	}
	if actor.Role.IsStaff() {
		return ErrForbidden
	}
	if !rbac.CanDecide(actor, *item) {
		// already decided; storage is idempotent, nothing to revisit
		logger.WithField("status", item.Status).Warn("approval item already decided")
		return nil
	}

	// partially_approved is never forwarded to a document, binary outcomes only
	if item.Type == models.ApprovalDocument && item.Data != nil && item.Data.DocumentID != "" &&
		decision.Outcome != models.ApprovalPartiallyApproved {
		docStatus := models.DocumentRejected
		if decision.Outcome == models.ApprovalApproved {
			docStatus = models.DocumentApproved
		}
		if err := i.documents.SetStatus(item.Data.DocumentID, docStatus); err != nil {
			logger.WithError(err).Error("failed to update linked document status")
		}
	}

	if requester, ok := i.staffStore.FindByFullName(item.User); ok {
		i.notifications.Add(decisionNotice(*requester, *item, decision.Outcome))
	} else {
		// exact-name lookup missed: record the decision, skip the notice
		logger.WithField("requester", item.User).Warn("requester identity not resolved")
	}

	i.store.SetDecision(id, decision.Outcome, decision.FieldDecisions)
	return nil
}

func decisionNotice(requester models.User, item models.ApprovalItem, outcome models.ApprovalStatus) notificationhandler.Input {
	title := "Request Rejected"
	noticeType := models.NotificationAlert
	message := fmt.Sprintf("Your %s request has been rejected.", item.Type)
	switch outcome {
	case models.ApprovalApproved:
		title = "Request Approved"
		noticeType = models.NotificationSuccess
		message = fmt.Sprintf("Your %s request has been approved.", item.Type)
	case models.ApprovalPartiallyApproved:
		title = "Request Partially Approved"
		message = fmt.Sprintf("Your %s request has been partially approved.", item.Type)
	}
	return notificationhandler.Input{
		Title:        title,
		Message:      message,
		Type:         noticeType,
		TargetUserID: requester.ID,
	}
}

func (i *impl) List() []models.ApprovalItem {
	return i.store.List()
}

func (i *impl) Get(id string) (models.ApprovalItem, error) {
	rec, found := i.store.GetByID(id)
	if !found {
		return models.ApprovalItem{}, ErrNotFound
	}
	return *rec, nil
}
