package chat

import (
	"context"

	"github.com/nextalk-ai/nextalk/pkg/kernel"
	"github.com/nextalk-ai/nextalk/pkg/memory"
)

// Selector picks which long-term memories enter the prompt for a turn. The
// user message is part of the contract so smarter strategies (embedding
// similarity) can slot in without touching the orchestrator.
type Selector interface {
	Select(ctx context.Context, profileID kernel.ProfileID, message string, topN int) ([]*memory.Memory, error)
}

// RecencySelector returns the most recently used memories regardless of the
// message content
type RecencySelector struct {
	repo memory.Repository
}

// NewRecencySelector creates a recency-based selector
func NewRecencySelector(repo memory.Repository) *RecencySelector {
	return &RecencySelector{repo: repo}
}

func (s *RecencySelector) Select(ctx context.Context, profileID kernel.ProfileID, message string, topN int) ([]*memory.Memory, error) {
	return s.repo.ListRecent(ctx, profileID, topN)
}
