package staffstore

import (
	"strings"

	"staff-portal-backend/models"
	prefsapimodels "staff-portal-backend/models/api/prefs"
)

// Provider serves the seeded staff directory. The list is read-only in this
// layer: identities are created by seed data only.
type Provider interface {
	List(filter prefsapimodels.DirectoryFilters) []models.User
	GetByID(userID string) (rec *models.User, found bool)
	GetByEmail(email string) (rec *models.User, found bool)
	FirstByRole(role models.UserRole) (rec *models.User, found bool)
	First() (rec *models.User, found bool)
	FindByFullName(fullName string) (rec *models.User, found bool)
}

func NewInstance(users []models.User) Provider {
	return &impl{users: users}
}

type impl struct {
	users []models.User
}

func (i *impl) List(filter prefsapimodels.DirectoryFilters) []models.User {
	result := make([]models.User, 0, len(i.users))
	search := strings.ToLower(filter.Search)
	for _, user := range i.users {
		if filter.Role != "" && filter.Role != string(user.Role) {
			continue
		}
		if filter.Department != "" && filter.Department != user.Department {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(user.GetFullName()), search) &&
			!strings.Contains(strings.ToLower(user.Email), search) {
			continue
		}
		result = append(result, user)
	}
	return result
}

func (i *impl) GetByID(userID string) (*models.User, bool) {
	for k := range i.users {
		if i.users[k].ID == userID {
			rec := i.users[k]
			return &rec, true
		}
	}
	return nil, false
}

func (i *impl) GetByEmail(email string) (*models.User, bool) {
	for k := range i.users {
		if strings.EqualFold(i.users[k].Email, email) {
			rec := i.users[k]
			return &rec, true
		}
	}
	return nil, false
}

func (i *impl) FirstByRole(role models.UserRole) (*models.User, bool) {
	for k := range i.users {
		if i.users[k].Role == role {
			rec := i.users[k]
			return &rec, true
		}
	}
	return nil, false
}

func (i *impl) First() (*models.User, bool) {
	if len(i.users) == 0 {
		return nil, false
	}
	rec := i.users[0]
	return &rec, true
}

// FindByFullName resolves a requester by exact "First Last" match; the first
// seeded match wins when names collide.
func (i *impl) FindByFullName(fullName string) (*models.User, bool) {
	for k := range i.users {
		if i.users[k].GetFullName() == fullName {
			rec := i.users[k]
			return &rec, true
		}
	}
	return nil, false
}
