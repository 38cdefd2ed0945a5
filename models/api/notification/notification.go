package notificationapimodels

import (
	"fmt"
	"time"

	"staff-portal-backend/models"
)

type NotificationView struct {
	ID      string                  `json:"id"`
	Title   string                  `json:"title"`
	Message string                  `json:"message"`
	Type    models.NotificationType `json:"type"`
	Read    bool                    `json:"read"`
	Date    string                  `json:"date"` // relative, e.g. "5 minutes ago"
}

func Convert(rec models.Notification, now time.Time) NotificationView {
	return NotificationView{
		ID:      rec.ID,
		Title:   rec.Title,
		Message: rec.Message,
		Type:    rec.Type,
		Read:    rec.Read,
		Date:    relativeTime(rec.CreatedAt, now),
	}
}

func relativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "Just now"
	case d < time.Hour:
		return fmt.Sprintf("%d minutes ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%d days ago", int(d.Hours()/24))
	}
}

type UnreadCountView struct {
	Count int `json:"count"`
}
