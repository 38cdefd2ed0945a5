package models

import "time"

type DocumentStatus string

const (
	DocumentPending  DocumentStatus = "pending"
	DocumentApproved DocumentStatus = "approved"
	DocumentRejected DocumentStatus = "rejected"
)

type Document struct {
	ID         string            `json:"id"`
	UserID     string            `json:"user_id"`
	Title      string            `json:"title"`
	Category   string            `json:"category"`
	Status     DocumentStatus    `json:"status"`
	Version    int               `json:"version"`
	Size       string            `json:"size"`
	FileType   string            `json:"file_type"`
	ContentURL string            `json:"content_url,omitempty"`
	UploadedAt time.Time         `json:"uploaded_at"`
	History    []DocumentVersion `json:"history"` // superseded versions only, most recent first
}

// DocumentVersion is an immutable snapshot of a superseded document record.
type DocumentVersion struct {
	Version    int            `json:"version"`
	Title      string         `json:"title"`
	Category   string         `json:"category"`
	Status     DocumentStatus `json:"status"`
	Size       string         `json:"size"`
	FileType   string         `json:"file_type"`
	ContentURL string         `json:"content_url,omitempty"`
	UploadedAt time.Time      `json:"uploaded_at"`
}

// Snapshot archives the whole current record, history excluded.
func (d Document) Snapshot() DocumentVersion {
	return DocumentVersion{
		Version:    d.Version,
		Title:      d.Title,
		Category:   d.Category,
		Status:     d.Status,
		Size:       d.Size,
		FileType:   d.FileType,
		ContentURL: d.ContentURL,
		UploadedAt: d.UploadedAt,
	}
}
