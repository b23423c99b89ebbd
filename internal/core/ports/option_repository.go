package ports

import (
	"context"

	"github.com/atelierhub/design-collab/internal/core/domain"
)

// OptionRepository defines persistence operations for the option catalogue.
type OptionRepository interface {
	FindAll(ctx context.Context) ([]*domain.Option, error)
	// ReplaceAll deletes every existing option and inserts opts in their place,
	// returning the inserted documents with ids assigned.
	ReplaceAll(ctx context.Context, opts []*domain.Option) ([]*domain.Option, error)
}
