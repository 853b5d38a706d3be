package profilesrv

import (
	"context"
	"testing"

	"github.com/nextalk-ai/nextalk/pkg/errx"
	"github.com/nextalk-ai/nextalk/pkg/profile"
	"github.com/nextalk-ai/nextalk/pkg/profile/profileinfra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProfileDefaultsTimezone(t *testing.T) {
	service := NewProfileService(profileinfra.NewInMemoryProfileRepository())

	p, err := service.CreateProfile(context.Background(), profile.CreateProfileRequest{
		DisplayName: "Ana",
	})
	require.NoError(t, err)

	assert.Equal(t, "UTC", p.Timezone)
	assert.NotNil(t, p.Preferences)
	assert.NotEmpty(t, p.ID)
}

func TestCreateProfileRequiresDisplayName(t *testing.T) {
	service := NewProfileService(profileinfra.NewInMemoryProfileRepository())

	_, err := service.CreateProfile(context.Background(), profile.CreateProfileRequest{})

	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeValidation))
}

func TestGetProfileAfterCreate(t *testing.T) {
	service := NewProfileService(profileinfra.NewInMemoryProfileRepository())
	ctx := context.Background()

	created, err := service.CreateProfile(ctx, profile.CreateProfileRequest{
		DisplayName: "Ana",
		Timezone:    "America/Lima",
		Preferences: profile.Preferences{"lang": "es"},
	})
	require.NoError(t, err)

	got, err := service.GetProfile(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "America/Lima", got.Timezone)
}
