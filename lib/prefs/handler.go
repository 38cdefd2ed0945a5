package prefshandler

import (
	log "github.com/sirupsen/logrus"

	"staff-portal-backend/localstore"
	prefsapimodels "staff-portal-backend/models/api/prefs"
)

// Provider persists per-user screen preferences: the staff-directory filter
// blob and the theme string. Reads fall back to defaults, writes are
// best-effort.
type Provider interface {
	GetDirectoryFilters(userID string) prefsapimodels.DirectoryFilters
	SaveDirectoryFilters(userID string, filters prefsapimodels.DirectoryFilters)
	GetTheme(userID string) string
	SaveTheme(userID string, theme string)
}

var Instance Provider

func NewHandler(storage *localstore.Storage) {
	Instance = NewInstance(storage)
}

func NewInstance(storage *localstore.Storage) Provider {
	return &impl{storage: storage}
}

type impl struct {
	storage *localstore.Storage
}

func (i *impl) GetDirectoryFilters(userID string) prefsapimodels.DirectoryFilters {
	var filters prefsapimodels.DirectoryFilters
	if i.storage == nil {
		return filters
	}
	if _, err := i.storage.Get(localstore.KeyDirectoryFilters(userID), &filters); err != nil {
		log.WithError(err).Error("failed to read directory filters")
	}
	return filters
}

func (i *impl) SaveDirectoryFilters(userID string, filters prefsapimodels.DirectoryFilters) {
	if i.storage == nil {
		return
	}
	if err := i.storage.Put(localstore.KeyDirectoryFilters(userID), filters); err != nil {
		log.WithError(err).Error("failed to persist directory filters")
	}
}

func (i *impl) GetTheme(userID string) string {
	theme := "light"
	if i.storage == nil {
		return theme
	}
	if _, err := i.storage.Get(localstore.KeyTheme(userID), &theme); err != nil {
		log.WithError(err).Error("failed to read theme")
	}
	return theme
}

func (i *impl) SaveTheme(userID string, theme string) {
	if i.storage == nil {
		return
	}
	if err := i.storage.Put(localstore.KeyTheme(userID), theme); err != nil {
		log.WithError(err).Error("failed to persist theme")
	}
}
