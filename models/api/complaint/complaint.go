package complaintapimodels

import (
	"staff-portal-backend/models"

	"github.com/pkg/errors"
)

type CreateRequest struct {
	Subject  string                `json:"subject"`
	Category string                `json:"category"`
	Priority models.TicketPriority `json:"priority"`
}

func (r CreateRequest) Validate() error {
	if r.Subject == "" {
		return errors.New("subject is required")
	}
	if r.Category == "" {
		return errors.New("category is required")
	}
	switch r.Priority {
	case models.TicketPriorityLow, models.TicketPriorityMedium, models.TicketPriorityHigh:
		return nil
	}
	return errors.New("unknown priority")
}

type MessageRequest struct {
	Content string `json:"content"`
}

func (r MessageRequest) Validate() error {
	if r.Content == "" {
		return errors.New("content is required")
	}
	return nil
}

type StatusRequest struct {
	Status models.TicketStatus `json:"status"`
}

func (r StatusRequest) Validate() error {
	switch r.Status {
	case models.TicketOpen, models.TicketInProgress, models.TicketResolved, models.TicketEscalated:
		return nil
	}
	return errors.New("unknown status")
}
