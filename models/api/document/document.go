package documentapimodels

import (
	"staff-portal-backend/models"

	"github.com/pkg/errors"
)

type UploadRequest struct {
	Title      string `json:"title"`
	Category   string `json:"category"`
	Size       string `json:"size"`
	FileType   string `json:"file_type"`
	ContentURL string `json:"content_url"`
}

func (r UploadRequest) Validate() error {
	if r.Title == "" {
		return errors.New("title is required")
	}
	if r.Category == "" {
		return errors.New("category is required")
	}
	return nil
}

type StatusRequest struct {
	Status models.DocumentStatus `json:"status"`
}

func (r StatusRequest) Validate() error {
	if r.Status != models.DocumentApproved && r.Status != models.DocumentRejected {
		return errors.New("status must be approved or rejected")
	}
	return nil
}
