package sessionhandler

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	staffstore "staff-portal-backend/lib/staff/store"
	"staff-portal-backend/lib/utils/clock"
	"staff-portal-backend/localstore"
	"staff-portal-backend/models"
	authapimodels "staff-portal-backend/models/api/auth"
)

// Provider holds the authenticated identity. Until Ready reports true the
// session is indeterminate: neither authenticated nor anonymous.
type Provider interface {
	Login(email string, fallbackRole models.UserRole) (authapimodels.JWTResponse, error)
	Logout()
	Current() (models.User, bool)
	Ready() bool
	IsLoading() bool
}

var Instance Provider

var ErrNoIdentity = errors.New("no identity could be resolved")

// TokenFunc issues an access token for a resolved identity.
type TokenFunc func(user models.User) (string, error)

func NewHandler(storage *localstore.Storage, staffStore staffstore.Provider, clk clock.Provider, loginDelay time.Duration, tokenFn TokenFunc) {
	Instance = NewInstance(storage, staffStore, clk, loginDelay, tokenFn)
}

func NewInstance(storage *localstore.Storage, staffStore staffstore.Provider, clk clock.Provider, loginDelay time.Duration, tokenFn TokenFunc) Provider {
	i := &impl{
		storage:    storage,
		staffStore: staffStore,
		clock:      clk,
		loginDelay: loginDelay,
		tokenFn:    tokenFn,
	}
	i.hydrate()
	return i
}

type impl struct {
	mu         sync.Mutex
	storage    *localstore.Storage
	staffStore staffstore.Provider
	clock      clock.Provider
	loginDelay time.Duration
	tokenFn    TokenFunc

	current *models.User
	ready   bool
	loading bool
}

// hydrate restores the persisted identity before the session is marked ready.
func (i *impl) hydrate() {
	defer func() {
		i.mu.Lock()
		i.ready = true
		i.mu.Unlock()
	}()
	if i.storage == nil {
		return
	}
	var user models.User
	found, err := i.storage.Get(localstore.KeySession, &user)
	if err != nil {
		log.WithError(err).Error("failed to restore session")
		return
	}
	if found {
		i.mu.Lock()
		i.current = &user
		i.mu.Unlock()
	}
}

// Login resolves a seeded identity by email, falling back to the first user
// holding fallbackRole, then to the first seeded user. The loading flag stays
// true for the simulated network delay.
func (i *impl) Login(email string, fallbackRole models.UserRole) (authapimodels.JWTResponse, error) {
	i.mu.Lock()
	i.loading = true
	i.mu.Unlock()
	defer func() {
		i.mu.Lock()
		i.loading = false
		i.mu.Unlock()
	}()

	i.clock.Sleep(i.loginDelay)

	user, found := i.staffStore.GetByEmail(email)
	if !found && fallbackRole != "" {
		user, found = i.staffStore.FirstByRole(fallbackRole)
	}
	if !found {
		user, found = i.staffStore.First()
	}
	if !found {
		return authapimodels.JWTResponse{}, ErrNoIdentity
	}

	i.mu.Lock()
	i.current = user
	i.mu.Unlock()
	i.persist(*user)

	token, err := i.tokenFn(*user)
	if err != nil {
		return authapimodels.JWTResponse{}, errors.Wrap(err, "failed to issue token")
	}
	return authapimodels.JWTResponse{
		AccessToken: token,
		User:        *user,
	}, nil
}

func (i *impl) Logout() {
	i.mu.Lock()
	i.current = nil
	i.mu.Unlock()
	if i.storage == nil {
		return
	}
	if err := i.storage.Delete(localstore.KeySession); err != nil {
		log.WithError(err).Error("failed to clear persisted session")
	}
}

func (i *impl) Current() (models.User, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.current == nil {
		return models.User{}, false
	}
	return *i.current, true
}

func (i *impl) Ready() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.ready
}

func (i *impl) IsLoading() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.loading
}

func (i *impl) persist(user models.User) {
	if i.storage == nil {
		return
	}
	if err := i.storage.Put(localstore.KeySession, user); err != nil {
		log.WithError(err).Error("failed to persist session")
	}
}
