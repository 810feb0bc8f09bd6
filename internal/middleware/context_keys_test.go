package middleware_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/middleware"
)

func TestProfileCache_PutThenGet(t *testing.T) {
	cache := &middleware.ProfileCache{}
	userID := uuid.NewString()
	profile := &domain.Profile{
		ProfileID:      uuid.NewString(),
		UserID:         userID,
		OrganizationID: uuid.NewString(),
		Role:           domain.RolePM,
	}

	cache.Put(userID, profile)

	got, ok := cache.Get(userID)
	require.True(t, ok)
	assert.Equal(t, profile, got)
}

func TestProfileCache_MissForUnknownUser(t *testing.T) {
	cache := &middleware.ProfileCache{}

	got, ok := cache.Get(uuid.NewString())
	assert.False(t, ok)
	assert.Nil(t, got)
}

// A nil profile must never turn into a cache hit: a (nil, true) answer would
// let an authorization check proceed without a profile to inspect.
func TestProfileCache_NilProfileIsNeverAHit(t *testing.T) {
	cache := &middleware.ProfileCache{}
	userID := uuid.NewString()

	cache.Put(userID, nil)

	got, ok := cache.Get(userID)
	assert.False(t, ok)
	assert.Nil(t, got)
}
