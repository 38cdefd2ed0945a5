package complaintstore

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"staff-portal-backend/localstore"
	"staff-portal-backend/models"
)

type Provider interface {
	List() []models.Complaint
	GetByID(id string) (rec *models.Complaint, found bool)
	Prepend(rec models.Complaint)
	Update(rec models.Complaint) bool
}

func NewInstance(storage *localstore.Storage) Provider {
	i := &impl{storage: storage}
	if storage != nil {
		found, err := storage.Get(localstore.KeyComplaints, &i.tickets)
		if err != nil {
			log.WithError(err).Error("failed to hydrate tickets")
		}
		if !found {
			i.tickets = []models.Complaint{}
		}
	}
	return i
}

type impl struct {
	mu      sync.Mutex
	storage *localstore.Storage
	tickets []models.Complaint
}

func (i *impl) List() []models.Complaint {
	i.mu.Lock()
	defer i.mu.Unlock()
	result := make([]models.Complaint, len(i.tickets))
	copy(result, i.tickets)
	return result
}

func (i *impl) GetByID(id string) (*models.Complaint, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	for k := range i.tickets {
		if i.tickets[k].ID == id {
			rec := i.tickets[k]
			return &rec, true
		}
	}
	return nil, false
}

func (i *impl) Prepend(rec models.Complaint) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.tickets = append([]models.Complaint{rec}, i.tickets...)
	i.persist()
}

func (i *impl) Update(rec models.Complaint) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	for k := range i.tickets {
		if i.tickets[k].ID == rec.ID {
			i.tickets[k] = rec
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
	if err := i.storage.Put(localstore.KeyComplaints, i.tickets); err != nil {
		log.WithError(err).Error("failed to persist tickets")
	}
}
