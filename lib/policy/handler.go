package policyhandler

import (
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"staff-portal-backend/lib/utils/clock"
	"staff-portal-backend/localstore"
	"staff-portal-backend/models"
	policyapimodels "staff-portal-backend/models/api/policy"
)

// Provider is the published-policy collection. Append-only: no edit or
// delete is modeled.
type Provider interface {
	List() []models.Policy
	Get(id string) (models.Policy, error)
	Publish(author models.User, req policyapimodels.PublishRequest) models.Policy
}

var Instance Provider

var ErrNotFound = errors.New("policy not found")

func NewHandler(storage *localstore.Storage, clk clock.Provider) {
	Instance = NewInstance(storage, clk)
}

func NewInstance(storage *localstore.Storage, clk clock.Provider) Provider {
	i := &impl{storage: storage, clock: clk}
	found := false
	if storage != nil {
		var err error
		found, err = storage.Get(localstore.KeyPolicies, &i.policies)
		if err != nil {
			log.WithError(err).Error("failed to hydrate policies")
		}
	}
	if !found {
		i.policies = seedPolicies(clk)
		i.persist()
	}
	return i
}

type impl struct {
	mu       sync.Mutex
	storage  *localstore.Storage
	clock    clock.Provider
	policies []models.Policy
}

func (i *impl) List() []models.Policy {
	i.mu.Lock()
	defer i.mu.Unlock()
	result := make([]models.Policy, len(i.policies))
	copy(result, i.policies)
	return result
}

func (i *impl) Get(id string) (models.Policy, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	for _, rec := range i.policies {
		if rec.ID == id {
			return rec, nil
		}
	}
	return models.Policy{}, ErrNotFound
}

func (i *impl) Publish(author models.User, req policyapimodels.PublishRequest) models.Policy {
	rec := models.Policy{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Content:     req.Content,
		Version:     req.Version,
		Category:    req.Category,
		Author:      author.GetFullName(),
		LastUpdated: i.clock.Now(),
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	i.policies = append([]models.Policy{rec}, i.policies...)
	i.persist()
	return rec
}

func (i *impl) persist() {
	if i.storage == nil {
		return
	}
	if err := i.storage.Put(localstore.KeyPolicies, i.policies); err != nil {
		log.WithError(err).Error("failed to persist policies")
	}
}

func seedPolicies(clk clock.Provider) []models.Policy {
	now := clk.Now()
	return []models.Policy{
		{
			ID:          "p1",
			Title:       "Code of Conduct",
			Content:     "All staff are expected to act with integrity and professionalism at all times.",
			Version:     "2.1",
			Category:    "General",
			Author:      "Mary Johnson",
			LastUpdated: now,
		},
		{
			ID:          "p2",
			Title:       "Leave Policy",
			Content:     "Annual leave must be requested at least two weeks in advance through the approvals screen.",
			Version:     "1.4",
			Category:    "HR",
			Author:      "John Smith",
			LastUpdated: now,
		},
	}
}
