package models

import (
	"strings"
	"time"
)

type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in-progress"
	TicketResolved   TicketStatus = "resolved"
	TicketEscalated  TicketStatus = "escalated"
)

type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
)

type Complaint struct {
	ID          string         `json:"id"`
	Subject     string         `json:"subject"`
	Category    string         `json:"category"`
	Priority    TicketPriority `json:"priority"`
	Status      TicketStatus   `json:"status"`
	CreatorID   string         `json:"creator_id"`
	CreatorName string         `json:"creator_name"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	Messages    []Message      `json:"messages"`
}

type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	SenderRole UserRole  `json:"sender_role"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// IsSystem marks audit notes, written as content wrapped in ***...***.
func (m Message) IsSystem() bool {
	return strings.HasPrefix(m.Content, "***") && strings.HasSuffix(m.Content, "***")
}

// SystemNote formats an audit note in the ***...*** convention.
func SystemNote(content string) string {
	return "***" + content + "***"
}
