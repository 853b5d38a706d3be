package profilesrv

import (
	"context"

	"github.com/nextalk-ai/nextalk/pkg/kernel"
	"github.com/nextalk-ai/nextalk/pkg/profile"
)

// ProfileService provides business operations for user profiles
type ProfileService struct {
	repo profile.Repository
}

// NewProfileService creates a new profile service
func NewProfileService(repo profile.Repository) *ProfileService {
	return &ProfileService{
		repo: repo,
	}
}

// CreateProfile registers a new user profile
func (s *ProfileService) CreateProfile(ctx context.Context, req profile.CreateProfileRequest) (*profile.UserProfile, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p := profile.NewUserProfile(req.DisplayName, req.Timezone, req.Preferences)
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// GetProfile returns a profile by id
func (s *ProfileService) GetProfile(ctx context.Context, id kernel.ProfileID) (*profile.UserProfile, error) {
	return s.repo.GetByID(ctx, id)
}

// ListProfiles returns all registered profiles
func (s *ProfileService) ListProfiles(ctx context.Context) ([]*profile.UserProfile, error) {
	return s.repo.List(ctx)
}
