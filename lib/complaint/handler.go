package complainthandler

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	complaintstore "staff-portal-backend/lib/complaint/store"
	notificationhandler "staff-portal-backend/lib/notification"
	"staff-portal-backend/lib/rbac"
	"staff-portal-backend/lib/utils/clock"
	"staff-portal-backend/localstore"
	"staff-portal-backend/models"
	complaintapimodels "staff-portal-backend/models/api/complaint"
)

type Provider interface {
	Create(actor models.User, req complaintapimodels.CreateRequest) models.Complaint
	PostMessage(actor models.User, ticketID, content string) (models.Complaint, error)
	SetStatus(actor models.User, ticketID string, status models.TicketStatus) error
	Resolve(actor models.User, ticketID string) error
	Escalate(actor models.User, ticketID string) error
	Get(ticketID string) (models.Complaint, error)
	List() []models.Complaint
	ListByCreator(userID string) []models.Complaint
}

var Instance Provider

var (
	ErrNotFound  = errors.New("ticket not found")
	ErrForbidden = errors.New("transition not allowed for this actor")
)

func NewHandler(storage *localstore.Storage, notifications notificationhandler.Provider, clk clock.Provider) {
	Instance = NewInstance(complaintstore.NewInstance(storage), notifications, clk)
}

func NewInstance(store complaintstore.Provider, notifications notificationhandler.Provider, clk clock.Provider) Provider {
	return &impl{
		store:         store,
		notifications: notifications,
		clock:         clk,
	}
}

type impl struct {
	store         complaintstore.Provider
	notifications notificationhandler.Provider
	clock         clock.Provider
}

func (i *impl) Create(actor models.User, req complaintapimodels.CreateRequest) models.Complaint {
	now := i.clock.Now()
	rec := models.Complaint{
		ID:          uuid.NewString(),
		Subject:     req.Subject,
		Category:    req.Category,
		Priority:    req.Priority,
		Status:      models.TicketOpen,
		CreatorID:   actor.ID,
		CreatorName: actor.GetFullName(),
		CreatedAt:   now,
		UpdatedAt:   now,
		Messages:    []models.Message{},
	}
	i.store.Prepend(rec)
	i.notifications.Add(notificationhandler.Input{
		Title:      "New Support Ticket",
		Message:    fmt.Sprintf("%s opened a ticket: %s", rec.CreatorName, rec.Subject),
		Type:       models.NotificationInfo,
		TargetRole: string(models.UserRoleHR),
	})
	return rec
}

// PostMessage appends a reply. Posting to a resolved ticket revives it: the
// status flips to in-progress before the message is appended, regardless of
// who posts.
func (i *impl) PostMessage(actor models.User, ticketID, content string) (models.Complaint, error) {
	rec, found := i.store.GetByID(ticketID)
	if !found {
		return models.Complaint{}, ErrNotFound
	}
	ticket := *rec
	if ticket.Status == models.TicketResolved {
		ticket.Status = models.TicketInProgress
	}
	msg := models.Message{
		ID:         uuid.NewString(),
		SenderID:   actor.ID,
		SenderName: actor.GetFullName(),
		SenderRole: actor.Role,
		Content:    content,
		CreatedAt:  i.clock.Now(),
	}
	ticket.Messages = append(ticket.Messages, msg)
	ticket.UpdatedAt = msg.CreatedAt
	if !i.store.Update(ticket) {
		return models.Complaint{}, ErrNotFound
	}
	// notify the creator about staff-side replies; never about their own
	if !actor.Role.IsStaff() && actor.ID != ticket.CreatorID {
		i.notifications.Add(notificationhandler.Input{
			Title:        "New Reply",
			Message:      fmt.Sprintf("%s replied to your ticket: %s", msg.SenderName, ticket.Subject),
			Type:         models.NotificationInfo,
			TargetUserID: ticket.CreatorID,
		})
	}
	return ticket, nil
}

// SetStatus applies a gated direct transition and tells the creator.
func (i *impl) SetStatus(actor models.User, ticketID string, status models.TicketStatus) error {
	rec, found := i.store.GetByID(ticketID)
	if !found {
		return ErrNotFound
	}
	if !rbac.CanTransition(actor, *rec, status) {
		return ErrForbidden
	}
	ticket := *rec
	ticket.Status = status
	ticket.UpdatedAt = i.clock.Now()
	if !i.store.Update(ticket) {
		return ErrNotFound
	}
	noticeType := models.NotificationInfo
	switch status {
	case models.TicketResolved:
		noticeType = models.NotificationSuccess
	case models.TicketEscalated:
		noticeType = models.NotificationWarning
	}
	i.notifications.Add(notificationhandler.Input{
		Title:        "Ticket Updated",
		Message:      fmt.Sprintf("Your ticket %q is now %s.", ticket.Subject, status),
		Type:         noticeType,
		TargetUserID: ticket.CreatorID,
	})
	return nil
}

// Resolve closes the dialogue with an audit note and the status change.
func (i *impl) Resolve(actor models.User, ticketID string) error {
	rec, found := i.store.GetByID(ticketID)
	if !found {
		return ErrNotFound
	}
	if !rbac.CanTransition(actor, *rec, models.TicketResolved) {
		return ErrForbidden
	}
	if err := i.appendSystemNote(ticketID, fmt.Sprintf("Ticket resolved by %s", actor.GetFullName())); err != nil {
		return err
	}
	return i.SetStatus(actor, ticketID, models.TicketResolved)
}

// Escalate hands the ticket to the admin level; an escalated ticket cannot be
// escalated again (enforced by the transition gate).
func (i *impl) Escalate(actor models.User, ticketID string) error {
	rec, found := i.store.GetByID(ticketID)
	if !found {
		return ErrNotFound
	}
	if !rbac.CanTransition(actor, *rec, models.TicketEscalated) {
		return ErrForbidden
	}
	if err := i.appendSystemNote(ticketID, fmt.Sprintf("Ticket escalated by %s", actor.GetFullName())); err != nil {
		return err
	}
	return i.SetStatus(actor, ticketID, models.TicketEscalated)
}

// appendSystemNote adds a ***...*** audit message without triggering the
// reply side effects.
func (i *impl) appendSystemNote(ticketID, note string) error {
	rec, found := i.store.GetByID(ticketID)
	if !found {
		return ErrNotFound
	}
	ticket := *rec
	msg := models.Message{
		ID:         uuid.NewString(),
		SenderID:   "system",
		SenderName: "System",
		SenderRole: models.UserRoleAdmin,
		Content:    models.SystemNote(note),
		CreatedAt:  i.clock.Now(),
	}
	ticket.Messages = append(ticket.Messages, msg)
	ticket.UpdatedAt = msg.CreatedAt
	if !i.store.Update(ticket) {
		return ErrNotFound
	}
	return nil
}

func (i *impl) Get(ticketID string) (models.Complaint, error) {
	rec, found := i.store.GetByID(ticketID)
	if !found {
		return models.Complaint{}, ErrNotFound
	}
	return *rec, nil
}

func (i *impl) List() []models.Complaint {
	return i.store.List()
}

func (i *impl) ListByCreator(userID string) []models.Complaint {
	list := i.store.List()
	result := make([]models.Complaint, 0, len(list))
	for _, rec := range list {
		if rec.CreatorID == userID {
			result = append(result, rec)
		}
	}
	return result
}
