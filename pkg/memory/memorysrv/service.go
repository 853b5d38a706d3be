package memorysrv

import (
	"context"

	"github.com/nextalk-ai/nextalk/pkg/kernel"
	"github.com/nextalk-ai/nextalk/pkg/memory"
	"github.com/nextalk-ai/nextalk/pkg/profile"
)

// MemoryService provides business operations for long-term memories
type MemoryService struct {
	memoryRepo  memory.Repository
	profileRepo profile.Repository
}

// NewMemoryService creates a new memory service
func NewMemoryService(memoryRepo memory.Repository, profileRepo profile.Repository) *MemoryService {
	return &MemoryService{
		memoryRepo:  memoryRepo,
		profileRepo: profileRepo,
	}
}

// SaveMemory stores a new memory for the given profile
func (s *MemoryService) SaveMemory(ctx context.Context, profileID kernel.ProfileID, req memory.CreateMemoryRequest) (*memory.Memory, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.profileRepo.GetByID(ctx, profileID); err != nil {
		return nil, err
	}

	m := memory.NewMemory(profileID, req.MemType, req.Content)
	if err := s.memoryRepo.Create(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}

// ListMemories returns every memory of the given profile
func (s *MemoryService) ListMemories(ctx context.Context, profileID kernel.ProfileID) ([]*memory.Memory, error) {
	if _, err := s.profileRepo.GetByID(ctx, profileID); err != nil {
		return nil, err
	}

	return s.memoryRepo.ListByProfile(ctx, profileID)
}

// DeleteMemory removes one memory of the given profile
func (s *MemoryService) DeleteMemory(ctx context.Context, profileID kernel.ProfileID, id kernel.MemoryID) error {
	if _, err := s.profileRepo.GetByID(ctx, profileID); err != nil {
		return err
	}

	return s.memoryRepo.Delete(ctx, profileID, id)
}
