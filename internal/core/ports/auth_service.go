package ports

import (
	"context"

	"github.com/atelierhub/design-collab/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password string, role domain.Role) (*domain.User, error)
	Login(ctx context.Context, username, password, remoteAddr string) (string, *domain.User, error)
}

// LoginLimiter throttles repeated login attempts for a key (username + caller
// address). Allow returns false when the attempt budget for the current window
// is exhausted. Implementations may fail open: a non-nil error with allowed
// true means the limiter itself was unavailable.
type LoginLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
