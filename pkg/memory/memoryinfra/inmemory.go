package memoryinfra

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/nextalk-ai/nextalk/pkg/kernel"
	"github.com/nextalk-ai/nextalk/pkg/memory"
)

// InMemoryMemoryRepository keeps memories in process memory, for development
// and tests
type InMemoryMemoryRepository struct {
	mu       sync.RWMutex
	memories map[kernel.MemoryID]*memory.Memory
}

// NewInMemoryMemoryRepository creates an empty in-memory repository
func NewInMemoryMemoryRepository() *InMemoryMemoryRepository {
	return &InMemoryMemoryRepository{
		memories: make(map[kernel.MemoryID]*memory.Memory),
	}
}

func (r *InMemoryMemoryRepository) Create(ctx context.Context, m *memory.Memory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *m
	r.memories[m.ID] = &cp
	return nil
}

func (r *InMemoryMemoryRepository) ListRecent(ctx context.Context, profileID kernel.ProfileID, limit int) ([]*memory.Memory, error) {
	result, err := r.collect(profileID)
	if err != nil {
		return nil, err
	}

	// Used memories first by last_used_at, never-used ones after, newest first
	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		switch {
		case a.LastUsedAt != nil && b.LastUsedAt != nil:
			if !a.LastUsedAt.Equal(*b.LastUsedAt) {
				return a.LastUsedAt.After(*b.LastUsedAt)
			}
		case a.LastUsedAt != nil:
			return true
		case b.LastUsedAt != nil:
			return false
		}
		return a.CreatedAt.After(b.CreatedAt)
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *InMemoryMemoryRepository) ListByProfile(ctx context.Context, profileID kernel.ProfileID) ([]*memory.Memory, error) {
	result, err := r.collect(profileID)
	if err != nil {
		return nil, err
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

func (r *InMemoryMemoryRepository) collect(profileID kernel.ProfileID) ([]*memory.Memory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*memory.Memory, 0)
	for _, m := range r.memories {
		if m.UserProfileID != profileID {
			continue
		}
		cp := *m
		result = append(result, &cp)
	}
	return result, nil
}

func (r *InMemoryMemoryRepository) Touch(ctx context.Context, ids []kernel.MemoryID, usedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range ids {
		m, ok := r.memories[id]
		if !ok {
			continue
		}
		if m.LastUsedAt == nil || m.LastUsedAt.Before(usedAt) {
			t := usedAt
			m.LastUsedAt = &t
		}
	}
	return nil
}

func (r *InMemoryMemoryRepository) Delete(ctx context.Context, profileID kernel.ProfileID, id kernel.MemoryID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.memories[id]
	if !ok || m.UserProfileID != profileID {
		return memory.ErrMemoryNotFound().WithDetail("memory_id", id.String())
	}

	delete(r.memories, id)
	return nil
}
