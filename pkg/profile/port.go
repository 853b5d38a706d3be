package profile

import (
	"context"

	"github.com/nextalk-ai/nextalk/pkg/kernel"
)

// Repository defines persistence operations for user profiles
type Repository interface {
	Create(ctx context.Context, p *UserProfile) error
	GetByID(ctx context.Context, id kernel.ProfileID) (*UserProfile, error)
	List(ctx context.Context) ([]*UserProfile, error)
}
