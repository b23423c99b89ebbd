package ports

import (
	"context"
	"time"

	"github.com/atelierhub/design-collab/internal/core/domain"
)

// ProjectInput carries the client-supplied project fields for both create and
// update. Updates overwrite every field here unconditionally.
type ProjectInput struct {
	Name           string
	StartDate      time.Time
	EndDate        time.Time
	Budget         float64
	ClientUsername string
}

// ProjectService defines use-case operations for projects.
type ProjectService interface {
	Create(ctx context.Context, designerID string, in ProjectInput) (*domain.Project, error)
	Update(ctx context.Context, designerID, projectID string, in ProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, designerID, projectID string) error
	ListFor(ctx context.Context, user *domain.User) ([]*domain.Project, error)
	GetOne(ctx context.Context, user *domain.User, projectID string) (*domain.Project, error)
}
