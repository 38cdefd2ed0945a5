package notificationstore

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"staff-portal-backend/localstore"
	"staff-portal-backend/models"
)

type Provider interface {
	List() []models.Notification
	Prepend(rec models.Notification)
	MarkRead(id string) bool
	MarkAllRead(viewer models.User) int
}

func NewInstance(storage *localstore.Storage) Provider {
	i := &impl{storage: storage}
	if storage != nil {
		found, err := storage.Get(localstore.KeyNotifications, &i.feed)
		if err != nil {
			log.WithError(err).Error("failed to hydrate notification feed")
		}
		if !found {
			i.feed = []models.Notification{}
		}
	}
	return i
}

type impl struct {
	mu      sync.Mutex
	storage *localstore.Storage
	// feed holds the full unfiltered feed, newest-first by insertion.
	feed []models.Notification
}

func (i *impl) List() []models.Notification {
	i.mu.Lock()
	defer i.mu.Unlock()
	result := make([]models.Notification, len(i.feed))
	copy(result, i.feed)
	return result
}

func (i *impl) Prepend(rec models.Notification) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.feed = append([]models.Notification{rec}, i.feed...)
	i.persist()
}

func (i *impl) MarkRead(id string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	for k := range i.feed {
		if i.feed[k].ID == id {
			i.feed[k].Read = true
			i.persist()
			return true
		}
	}
	return false
}

// MarkAllRead flips the read flag on every notification visible to the
// viewer; notifications addressed elsewhere are left untouched.
func (i *impl) MarkAllRead(viewer models.User) int {
	i.mu.Lock()
	defer i.mu.Unlock()
	flipped := 0
	for k := range i.feed {
		if !i.feed[k].Read && i.feed[k].VisibleTo(viewer) {
			i.feed[k].Read = true
			flipped++
		}
	}
	if flipped > 0 {
		i.persist()
	}
	return flipped
}

// persist mirrors the full feed; failures are logged and swallowed.
func (i *impl) persist() {
	if i.storage == nil {
		return
	}
	if err := i.storage.Put(localstore.KeyNotifications, i.feed); err != nil {
		log.WithError(err).Error("failed to persist notification feed")
	}
}
