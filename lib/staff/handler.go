package staffhandler

import (
	"github.com/pkg/errors"

	staffstore "staff-portal-backend/lib/staff/store"
	"staff-portal-backend/models"
	prefsapimodels "staff-portal-backend/models/api/prefs"
)

type Provider interface {
	Directory(filter prefsapimodels.DirectoryFilters) []models.User
	GetByID(userID string) (models.User, error)
}

var Instance Provider

var ErrNotFound = errors.New("staff member not found")

func NewHandler(store staffstore.Provider) {
	Instance = NewInstance(store)
}

func NewInstance(store staffstore.Provider) Provider {
	return &impl{store: store}
}

type impl struct {
	store staffstore.Provider
}

func (i *impl) Directory(filter prefsapimodels.DirectoryFilters) []models.User {
	return i.store.List(filter)
}

func (i *impl) GetByID(userID string) (models.User, error) {
	rec, found := i.store.GetByID(userID)
	if !found {
		return models.User{}, ErrNotFound
	}
	return *rec, nil
}
