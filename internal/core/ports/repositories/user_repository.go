package repositories

import (
	"context"
	"time"

	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
)

// UserRepositoryFacade defines persistence operations for authentication identities.
type UserRepositoryFacade interface {
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	// UpdateRefreshToken stores (or clears, with nils) the hashed refresh token.
	UpdateRefreshToken(ctx context.Context, userID string, tokenHash *string, expiry *time.Time) error
}
