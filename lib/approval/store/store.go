package approvalstore

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"staff-portal-backend/localstore"
	"staff-portal-backend/models"
)

type Provider interface {
	List() []models.ApprovalItem
	GetByID(id string) (rec *models.ApprovalItem, found bool)
	Prepend(rec models.ApprovalItem)
	SetDecision(id string, status models.ApprovalStatus, fieldStatuses map[string]models.ApprovalStatus) bool
}

func NewInstance(storage *localstore.Storage) Provider {
	i := &impl{storage: storage}
	if storage != nil {
		found, err := storage.Get(localstore.KeyApprovals, &i.items)
		if err != nil {
			log.WithError(err).Error("failed to hydrate approval items")
		}
		if !found {
			i.items = []models.ApprovalItem{}
		}
	}
	return i
}

type impl struct {
	mu      sync.Mutex
	storage *localstore.Storage
	items   []models.ApprovalItem
}

func (i *impl) List() []models.ApprovalItem {
	i.mu.Lock()
	defer i.mu.Unlock()
	result := make([]models.ApprovalItem, len(i.items))
	copy(result, i.items)
	return result
}

func (i *impl) GetByID(id string) (*models.ApprovalItem, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	for k := range i.items {
		if i.items[k].ID == id {
			rec := i.items[k]
			return &rec, true
		}
	}
	return nil, false
}

func (i *impl) Prepend(rec models.ApprovalItem) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.items = append([]models.ApprovalItem{rec}, i.items...)
	i.persist()
}

func (i *impl) SetDecision(id string, status models.ApprovalStatus, fieldStatuses map[string]models.ApprovalStatus) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	for k := range i.items {
		if i.items[k].ID == id {
			i.items[k].Status = status
			if len(fieldStatuses) > 0 {
				i.items[k].FieldStatuses = fieldStatuses
			}
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
	if err := i.storage.Put(localstore.KeyApprovals, i.items); err != nil {
		log.WithError(err).Error("failed to persist approval items")
	}
}
