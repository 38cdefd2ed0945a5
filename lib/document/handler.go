package documenthandler

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	documentstore "staff-portal-backend/lib/document/store"
	"staff-portal-backend/lib/utils/clock"
	"staff-portal-backend/localstore"
	"staff-portal-backend/models"
	documentapimodels "staff-portal-backend/models/api/document"
)

type Provider interface {
	Add(userID string, upload documentapimodels.UploadRequest) models.Document
	Update(rec models.Document) error
	// AddVersion archives the current record into history and applies the
	// upload as the next version.
	AddVersion(id string, upload documentapimodels.UploadRequest) (models.Document, error)
	SetStatus(id string, status models.DocumentStatus) error
	Get(id string) (models.Document, error)
	List() []models.Document
	ListByUser(userID string) []models.Document
}

var Instance Provider

func NewHandler(storage *localstore.Storage, clk clock.Provider) {
	Instance = NewInstance(documentstore.NewInstance(storage), clk)
}

func NewInstance(store documentstore.Provider, clk clock.Provider) Provider {
	return &impl{
		store: store,
		clock: clk,
	}
}

type impl struct {
	store documentstore.Provider
	clock clock.Provider
}

var ErrNotFound = errors.New("document not found")

func (i *impl) Add(userID string, upload documentapimodels.UploadRequest) models.Document {
	rec := models.Document{
		ID:         uuid.NewString(),
		UserID:     userID,
		Title:      upload.Title,
		Category:   upload.Category,
		Status:     models.DocumentPending,
		Version:    1,
		Size:       upload.Size,
		FileType:   upload.FileType,
		ContentURL: upload.ContentURL,
		UploadedAt: i.clock.Now(),
		History:    []models.DocumentVersion{},
	}
	i.store.Prepend(rec)
	return rec
}

func (i *impl) Update(rec models.Document) error {
	if !i.store.Update(rec) {
		return ErrNotFound
	}
	return nil
}

func (i *impl) AddVersion(id string, upload documentapimodels.UploadRequest) (models.Document, error) {
	current, found := i.store.GetByID(id)
	if !found {
		return models.Document{}, ErrNotFound
	}
	rec := *current
	// history never contains the current version, superseded ones only,
	// most recent first
	rec.History = append([]models.DocumentVersion{current.Snapshot()}, current.History...)
	rec.Version = current.Version + 1
	rec.Title = upload.Title
	rec.Category = upload.Category
	rec.Status = models.DocumentPending
	rec.Size = upload.Size
	rec.FileType = upload.FileType
	rec.ContentURL = upload.ContentURL
	rec.UploadedAt = i.clock.Now()
	if err := i.Update(rec); err != nil {
		return models.Document{}, err
	}
	return rec, nil
}

func (i *impl) SetStatus(id string, status models.DocumentStatus) error {
	if status != models.DocumentApproved && status != models.DocumentRejected {
		return errors.Errorf("unsupported document status %v", status)
	}
	if !i.store.SetStatus(id, status) {
		return ErrNotFound
	}
	return nil
}

func (i *impl) Get(id string) (models.Document, error) {
	rec, found := i.store.GetByID(id)
	if !found {
		return models.Document{}, ErrNotFound
	}
	return *rec, nil
}

func (i *impl) List() []models.Document {
	return i.store.List()
}

func (i *impl) ListByUser(userID string) []models.Document {
	list := i.store.List()
	result := make([]models.Document, 0, len(list))
	for _, rec := range list {
		if rec.UserID == userID {
			result = append(result, rec)
		}
	}
	return result
}
