package sessionhandler

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	staffstore "staff-portal-backend/lib/staff/store"
	"staff-portal-backend/lib/utils/clock"
	"staff-portal-backend/localstore"
	"staff-portal-backend/models"
)

const testDelay = 800 * time.Millisecond

func staticToken(user models.User) (string, error) {
	return "token-" + user.ID, nil
}

func newProvider(t *testing.T, storage *localstore.Storage) (Provider, *clock.Stub) {
	t.Helper()
	clk := clock.NewStub(time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC))
	return NewInstance(storage, staffstore.NewInstance(staffstore.SeedUsers()), clk, testDelay, staticToken), clk
}

func TestLoginResolvesIdentity(t *testing.T) {
	provider, _ := newProvider(t, nil)

	t.Run("by email", func(t *testing.T) {
		resp, err := provider.Login("john.smith@staffportal.example", "")
		require.Nil(t, err)
		require.Equal(t, "u2", resp.User.ID)
		require.Equal(t, "token-u2", resp.AccessToken)
	})

	t.Run("by fallback role", func(t *testing.T) {
		resp, err := provider.Login("nobody@staffportal.example", models.UserRoleAdmin)
		require.Nil(t, err)
		require.Equal(t, "u3", resp.User.ID)
	})

	t.Run("first seeded user last", func(t *testing.T) {
		resp, err := provider.Login("nobody@staffportal.example", "")
		require.Nil(t, err)
		require.Equal(t, "u1", resp.User.ID)
	})
}

func TestLoginWaitsSimulatedDelay(t *testing.T) {
	provider, clk := newProvider(t, nil)

	require.False(t, provider.IsLoading())
	_, err := provider.Login("jane.doe@staffportal.example", "")
	require.Nil(t, err)
	require.Equal(t, testDelay, clk.Slept)
	require.False(t, provider.IsLoading())

	current, ok := provider.Current()
	require.True(t, ok)
	require.Equal(t, "u1", current.ID)
}

func TestLoginEmptyDirectory(t *testing.T) {
	clk := clock.NewStub(time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC))
	provider := NewInstance(nil, staffstore.NewInstance(nil), clk, testDelay, staticToken)

	_, err := provider.Login("jane.doe@staffportal.example", models.UserRoleHR)
	require.ErrorIs(t, err, ErrNoIdentity)
	_, ok := provider.Current()
	require.False(t, ok)
}

func TestSessionPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portal.json")
	storage, err := localstore.Open(path)
	require.Nil(t, err)

	provider, _ := newProvider(t, storage)
	require.True(t, provider.Ready())
	_, ok := provider.Current()
	require.False(t, ok)

	_, err = provider.Login("mary.johnson@staffportal.example", "")
	require.Nil(t, err)

	t.Run("restored on restart", func(t *testing.T) {
		reopened, err := localstore.Open(path)
		require.Nil(t, err)
		restored, _ := newProvider(t, reopened)
		require.True(t, restored.Ready())
		current, ok := restored.Current()
		require.True(t, ok)
		require.Equal(t, "u3", current.ID)
	})

	t.Run("logout clears the record", func(t *testing.T) {
		provider.Logout()
		_, ok := provider.Current()
		require.False(t, ok)

		reopened, err := localstore.Open(path)
		require.Nil(t, err)
		restored, _ := newProvider(t, reopened)
		_, ok = restored.Current()
		require.False(t, ok)
	})
}
