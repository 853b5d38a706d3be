package profileinfra

import (
	"context"
	"testing"

	"github.com/nextalk-ai/nextalk/pkg/errx"
	"github.com/nextalk-ai/nextalk/pkg/kernel"
	"github.com/nextalk-ai/nextalk/pkg/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryProfileRoundTrip(t *testing.T) {
	repo := NewInMemoryProfileRepository()
	ctx := context.Background()

	p := profile.NewUserProfile("Ana", "America/Lima", profile.Preferences{"lang": "es"})
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)

	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, "Ana", got.DisplayName)
	assert.Equal(t, "America/Lima", got.Timezone)
	assert.Equal(t, "es", got.Preferences["lang"])
}

func TestInMemoryProfileNotFound(t *testing.T) {
	repo := NewInMemoryProfileRepository()

	_, err := repo.GetByID(context.Background(), kernel.NewProfileID())

	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeNotFound))
}

func TestInMemoryProfileListNewestFirst(t *testing.T) {
	repo := NewInMemoryProfileRepository()
	ctx := context.Background()

	first := profile.NewUserProfile("First", "", nil)
	second := profile.NewUserProfile("Second", "", nil)
	second.CreatedAt = first.CreatedAt.Add(1)

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	profiles, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "Second", profiles[0].DisplayName)
	assert.Equal(t, "First", profiles[1].DisplayName)
}
