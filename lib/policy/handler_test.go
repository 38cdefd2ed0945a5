package policyhandler

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"staff-portal-backend/lib/utils/clock"
	"staff-portal-backend/localstore"
	"staff-portal-backend/models"
	policyapimodels "staff-portal-backend/models/api/policy"
)

var hrAuthor = models.User{ID: "u2", FirstName: "John", LastName: "Smith", Role: models.UserRoleHR}

func newProvider(t *testing.T, storage *localstore.Storage) Provider {
	t.Helper()
	return NewInstance(storage, clock.NewStub(time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)))
}

func TestSeededOnEmptyStorage(t *testing.T) {
	provider := newProvider(t, nil)

	list := provider.List()
	require.Len(t, list, 2)

	rec, err := provider.Get("p1")
	require.Nil(t, err)
	require.Equal(t, "Code of Conduct", rec.Title)

	_, err = provider.Get("missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPublishPrepends(t *testing.T) {
	provider := newProvider(t, nil)

	rec := provider.Publish(hrAuthor, policyapimodels.PublishRequest{
		Title:    "Remote Work Policy",
		Content:  "Up to two remote days per week, subject to supervisor approval.",
		Version:  "1.0",
		Category: "HR",
	})
	require.Equal(t, "John Smith", rec.Author)

	list := provider.List()
	require.Len(t, list, 3)
	require.Equal(t, rec.ID, list[0].ID)

	got, err := provider.Get(rec.ID)
	require.Nil(t, err)
	require.Equal(t, "Remote Work Policy", got.Title)
}

func TestPublishedPoliciesSurviveRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portal.json")
	storage, err := localstore.Open(path)
	require.Nil(t, err)

	provider := newProvider(t, storage)
	rec := provider.Publish(hrAuthor, policyapimodels.PublishRequest{
		Title:    "Expense Policy",
		Content:  "Claims above the monthly cap need director sign-off.",
		Version:  "1.2",
		Category: "Finance",
	})

	reopened, err := localstore.Open(path)
	require.Nil(t, err)
	restored := newProvider(t, reopened)
	require.Len(t, restored.List(), 3)
	got, err := restored.Get(rec.ID)
	require.Nil(t, err)
	require.Equal(t, "Expense Policy", got.Title)
}
