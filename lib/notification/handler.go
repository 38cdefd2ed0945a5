package notificationhandler

import (
	"sort"

	"github.com/google/uuid"

	notificationstore "staff-portal-backend/lib/notification/store"
	staffstore "staff-portal-backend/lib/staff/store"
	"staff-portal-backend/lib/utils/clock"
	"staff-portal-backend/localstore"
	"staff-portal-backend/models"
	prefsapimodels "staff-portal-backend/models/api/prefs"
)

// Pusher delivers a freshly added notification to connected viewers.
type Pusher interface {
	Push(userIDs []string, rec models.Notification)
}

// Input is a notification without the store-assigned id, timestamp and read
// flag.
type Input struct {
	Title        string
	Message      string
	Type         models.NotificationType
	TargetUserID string
	TargetRole   string
}

type Provider interface {
	Add(input Input) models.Notification
	MarkRead(id string)
	MarkAllRead(viewer models.User)
	VisibleFor(viewer models.User) []models.Notification
	UnreadCount(viewer models.User) int
}

var Instance Provider

func NewHandler(storage *localstore.Storage, staffStore staffstore.Provider, pusher Pusher, clk clock.Provider) {
	Instance = NewInstance(notificationstore.NewInstance(storage), staffStore, pusher, clk)
}

// NewInstance builds an isolated provider, used directly by tests.
func NewInstance(store notificationstore.Provider, staffStore staffstore.Provider, pusher Pusher, clk clock.Provider) Provider {
	return &impl{
		store:      store,
		staffStore: staffStore,
		pusher:     pusher,
		clock:      clk,
	}
}

type impl struct {
	store      notificationstore.Provider
	staffStore staffstore.Provider
	pusher     Pusher
	clock      clock.Provider
}

func (i *impl) Add(input Input) models.Notification {
	rec := models.Notification{
		ID:           uuid.NewString(),
		Title:        input.Title,
		Message:      input.Message,
		Type:         input.Type,
		Read:         false,
		CreatedAt:    i.clock.Now(),
		TargetUserID: input.TargetUserID,
		TargetRole:   input.TargetRole,
	}
	i.store.Prepend(rec)
	if i.pusher != nil {
		i.pusher.Push(i.resolveTargets(rec), rec)
	}
	return rec
}

func (i *impl) MarkRead(id string) {
	// no-op when the id is absent
	i.store.MarkRead(id)
}

func (i *impl) MarkAllRead(viewer models.User) {
	i.store.MarkAllRead(viewer)
}

// VisibleFor filters the feed by the addressing rule and sorts by creation
// date descending for display.
func (i *impl) VisibleFor(viewer models.User) []models.Notification {
	feed := i.store.List()
	result := make([]models.Notification, 0, len(feed))
	for _, rec := range feed {
		if rec.VisibleTo(viewer) {
			result = append(result, rec)
		}
	}
	sort.SliceStable(result, func(a, b int) bool {
		return result[a].CreatedAt.After(result[b].CreatedAt)
	})
	return result
}

func (i *impl) UnreadCount(viewer models.User) int {
	count := 0
	for _, rec := range i.store.List() {
		if !rec.Read && rec.VisibleTo(viewer) {
			count++
		}
	}
	return count
}

func (i *impl) resolveTargets(rec models.Notification) []string {
	if rec.TargetUserID != "" {
		return []string{rec.TargetUserID}
	}
	users := i.staffStore.List(prefsapimodels.DirectoryFilters{})
	ids := make([]string, 0, len(users))
	for _, user := range users {
		if rec.VisibleTo(user) {
			ids = append(ids, user.ID)
		}
	}
	return ids
}
