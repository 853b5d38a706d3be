package memory

import (
	"context"
	"time"

	"github.com/nextalk-ai/nextalk/pkg/kernel"
)

// Repository defines persistence operations for long-term memories
type Repository interface {
	// Create inserts a new memory record
	Create(ctx context.Context, m *Memory) error

	// ListRecent returns up to limit memories of a profile, most recently
	// used first; never-used memories sort after used ones, newest first
	ListRecent(ctx context.Context, profileID kernel.ProfileID, limit int) ([]*Memory, error)

	// ListByProfile returns every memory of a profile, newest first
	ListByProfile(ctx context.Context, profileID kernel.ProfileID) ([]*Memory, error)

	// Touch stamps last_used_at on the given memories. The timestamp never
	// moves backwards on a record.
	Touch(ctx context.Context, ids []kernel.MemoryID, usedAt time.Time) error

	// Delete removes a memory of the given profile
	Delete(ctx context.Context, profileID kernel.ProfileID, id kernel.MemoryID) error
}
