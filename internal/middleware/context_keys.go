package middleware

import (
	"context"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
)

// userIDKey is the key used to store the authenticated user's ID in the request context.
const userIDKey = contextKey("userID")

// profileCacheKey is the key for the per-request resolved-profile cache.
const profileCacheKey = contextKey("profileCache")

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	return GetUserIDFromCtx(c.Request.Context())
}

// GetUserIDFromCtx retrieves the authenticated user ID from a standard context.
func GetUserIDFromCtx(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// ProfileCache is a per-request cache of resolved caller profiles. The
// organization lookup must be side-effect-free and must never be re-evaluated
// recursively inside an authorization check, so every request carries exactly
// one cache and the resolver consults it first.
type ProfileCache struct {
	mu       sync.Mutex
	profiles map[string]*domain.Profile
}

// Get returns the cached profile for a user, if present. A nil entry counts
// as a miss so callers never receive a hit without a profile.
func (pc *ProfileCache) Get(userID string) (*domain.Profile, bool) {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	p, ok := pc.profiles[userID]
	if p == nil {
		return nil, false
	}
	return p, ok
}

// Put stores a resolved profile. Nil profiles are dropped; absence is not
// cached, the repository answers that on every lookup.
func (pc *ProfileCache) Put(userID string, profile *domain.Profile) {
	if profile == nil {
		return
	}
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.profiles == nil {
		pc.profiles = make(map[string]*domain.Profile)
	}
	pc.profiles[userID] = profile
}

// ProfileCacheMiddleware injects a fresh ProfileCache into every request context.
func ProfileCacheMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.WithValue(c.Request.Context(), profileCacheKey, &ProfileCache{})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// GetProfileCacheFromCtx retrieves the per-request profile cache, or nil when
// the middleware was not applied (e.g. in unit tests).
func GetProfileCacheFromCtx(ctx context.Context) *ProfileCache {
	if ctx == nil {
		return nil
	}
	cache, _ := ctx.Value(profileCacheKey).(*ProfileCache)
	return cache
}
