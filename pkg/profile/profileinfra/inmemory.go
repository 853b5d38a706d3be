package profileinfra

import (
	"context"
	"sort"
	"sync"

	"github.com/nextalk-ai/nextalk/pkg/kernel"
	"github.com/nextalk-ai/nextalk/pkg/profile"
)

// InMemoryProfileRepository keeps profiles in process memory, for development
// and tests
type InMemoryProfileRepository struct {
	mu       sync.RWMutex
	profiles map[kernel.ProfileID]*profile.UserProfile
}

// NewInMemoryProfileRepository creates an empty in-memory repository
func NewInMemoryProfileRepository() *InMemoryProfileRepository {
	return &InMemoryProfileRepository{
		profiles: make(map[kernel.ProfileID]*profile.UserProfile),
	}
}

func (r *InMemoryProfileRepository) Create(ctx context.Context, p *profile.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *p
	r.profiles[p.ID] = &cp
	return nil
}

func (r *InMemoryProfileRepository) GetByID(ctx context.Context, id kernel.ProfileID) (*profile.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[id]
	if !ok {
		return nil, profile.ErrProfileNotFound().WithDetail("profile_id", id.String())
	}

	cp := *p
	return &cp, nil
}

func (r *InMemoryProfileRepository) List(ctx context.Context) ([]*profile.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*profile.UserProfile, 0, len(r.profiles))
	for _, p := range r.profiles {
		cp := *p
		result = append(result, &cp)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}
