package documentstore

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"staff-portal-backend/localstore"
	"staff-portal-backend/models"
)

type Provider interface {
	List() []models.Document
	GetByID(id string) (rec *models.Document, found bool)
	Prepend(rec models.Document)
	Update(rec models.Document) bool
	SetStatus(id string, status models.DocumentStatus) bool
}

func NewInstance(storage *localstore.Storage) Provider {
	i := &impl{storage: storage}
	if storage != nil {
		found, err := storage.Get(localstore.KeyDocuments, &i.docs)
		if err != nil {
			log.WithError(err).Error("failed to hydrate documents")
		}
		if !found {
			i.docs = []models.Document{}
		}
	}
	return i
}

type impl struct {
	mu      sync.Mutex
	storage *localstore.Storage
	docs    []models.Document
}

func (i *impl) List() []models.Document {
	i.mu.Lock()
	defer i.mu.Unlock()
	result := make([]models.Document, len(i.docs))
	copy(result, i.docs)
	return result
}

func (i *impl) GetByID(id string) (*models.Document, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	for k := range i.docs {
		if i.docs[k].ID == id {
			rec := i.docs[k]
			return &rec, true
		}
	}
	return nil, false
}

func (i *impl) Prepend(rec models.Document) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.docs = append([]models.Document{rec}, i.docs...)
	i.persist()
}

// Update replaces the document with a matching id wholesale. The caller is
// responsible for having moved the prior state into the history list.
func (i *impl) Update(rec models.Document) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	for k := range i.docs {
		if i.docs[k].ID == rec.ID {
			i.docs[k] = rec
			i.persist()
			return true
		}
	}
	return false
}

// SetStatus patches only the status field, leaving version and history
// untouched.
func (i *impl) SetStatus(id string, status models.DocumentStatus) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	for k := range i.docs {
		if i.docs[k].ID == id {
			i.docs[k].Status = status
			i.persist()
			return true
		}
	}
	return false
}

func (i *impl) persist() {
	if i.storage == nil {
		return
	}
	if err := i.storage.Put(localstore.KeyDocuments, i.docs); err != nil {
		log.WithError(err).Error("failed to persist documents")
	}
}
