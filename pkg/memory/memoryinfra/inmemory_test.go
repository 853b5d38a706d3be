package memoryinfra

import (
	"context"
	"testing"
	"time"

	"github.com/nextalk-ai/nextalk/pkg/errx"
	"github.com/nextalk-ai/nextalk/pkg/kernel"
	"github.com/nextalk-ai/nextalk/pkg/memory"
	"github.com/nextalk-ai/nextalk/pkg/ptrx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, repo *InMemoryMemoryRepository, profileID kernel.ProfileID, content string, createdAt time.Time, lastUsedAt *time.Time) *memory.Memory {
	t.Helper()

	m := memory.NewMemory(profileID, "", content)
	m.CreatedAt = createdAt
	m.LastUsedAt = lastUsedAt
	require.NoError(t, repo.Create(context.Background(), m))
	return m
}

func TestListRecentOrdersUsedBeforeUnused(t *testing.T) {
	repo := NewInMemoryMemoryRepository()
	ctx := context.Background()
	profileID := kernel.NewProfileID()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	seed(t, repo, profileID, "never used, newest", base.Add(3*time.Hour), nil)
	seed(t, repo, profileID, "never used, oldest", base, nil)
	seed(t, repo, profileID, "used long ago", base.Add(time.Hour), ptrx.Time(base.Add(24*time.Hour)))
	seed(t, repo, profileID, "used recently", base.Add(2*time.Hour), ptrx.Time(base.Add(48*time.Hour)))

	memories, err := repo.ListRecent(ctx, profileID, 10)
	require.NoError(t, err)
	require.Len(t, memories, 4)

	assert.Equal(t, "used recently", memories[0].Content)
	assert.Equal(t, "used long ago", memories[1].Content)
	assert.Equal(t, "never used, newest", memories[2].Content)
	assert.Equal(t, "never used, oldest", memories[3].Content)
}

func TestListRecentAppliesLimit(t *testing.T) {
	repo := NewInMemoryMemoryRepository()
	ctx := context.Background()
	profileID := kernel.NewProfileID()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 8; i++ {
		seed(t, repo, profileID, "fact", base.Add(time.Duration(i)*time.Minute), nil)
	}

	memories, err := repo.ListRecent(ctx, profileID, 5)
	require.NoError(t, err)
	assert.Len(t, memories, 5)
}

func TestListByProfileOrdersByCreation(t *testing.T) {
	repo := NewInMemoryMemoryRepository()
	ctx := context.Background()
	profileID := kernel.NewProfileID()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	seed(t, repo, profileID, "older", base, ptrx.Time(base.Add(time.Hour)))
	seed(t, repo, profileID, "newer", base.Add(time.Minute), nil)

	memories, err := repo.ListByProfile(ctx, profileID)
	require.NoError(t, err)
	require.Len(t, memories, 2)

	// Creation order wins here even though the older one was used
	assert.Equal(t, "newer", memories[0].Content)
	assert.Equal(t, "older", memories[1].Content)
}

func TestTouchNeverMovesBackwards(t *testing.T) {
	repo := NewInMemoryMemoryRepository()
	ctx := context.Background()
	profileID := kernel.NewProfileID()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	m := seed(t, repo, profileID, "fact", base, ptrx.Time(base.Add(time.Hour)))

	// An earlier stamp must not rewind the existing one
	require.NoError(t, repo.Touch(ctx, []kernel.MemoryID{m.ID}, base))

	memories, err := repo.ListByProfile(ctx, profileID)
	require.NoError(t, err)
	require.Len(t, memories, 1)
	assert.Equal(t, base.Add(time.Hour), *memories[0].LastUsedAt)

	// A later stamp advances it
	require.NoError(t, repo.Touch(ctx, []kernel.MemoryID{m.ID}, base.Add(2*time.Hour)))

	memories, err = repo.ListByProfile(ctx, profileID)
	require.NoError(t, err)
	assert.Equal(t, base.Add(2*time.Hour), *memories[0].LastUsedAt)
}

func TestDeleteRequiresOwningProfile(t *testing.T) {
	repo := NewInMemoryMemoryRepository()
	ctx := context.Background()
	owner := kernel.NewProfileID()
	stranger := kernel.NewProfileID()

	m := seed(t, repo, owner, "fact", time.Now().UTC(), nil)

	err := repo.Delete(ctx, stranger, m.ID)
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeNotFound))

	require.NoError(t, repo.Delete(ctx, owner, m.ID))

	memories, err := repo.ListByProfile(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, memories)
}
