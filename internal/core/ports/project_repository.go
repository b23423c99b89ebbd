package ports

import (
	"context"
	"time"

	"github.com/atelierhub/design-collab/internal/core/domain"
)

// ProjectScope restricts reads to what the requesting user may see.
// Exactly one field is set: CreatedBy for designers, ClientID for clients.
type ProjectScope struct {
	CreatedBy string // non-empty = only projects created by this designer
	ClientID  string // non-empty = only projects listing this client id
}

// ProjectUpdate carries the full set of mutable project fields. Updates are
// a wholesale replace of these fields; AssociatedClients and CreatedBy are
// never touched after creation.
type ProjectUpdate struct {
	Name           string
	StartDate      time.Time
	EndDate        time.Time
	Budget         float64
	ClientUsername string
}

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	Insert(ctx context.Context, p *domain.Project) (*domain.Project, error)
	// FindOne retrieves a single project by id within scope. An id that exists
	// outside the scope is reported as domain.ErrProjectNotFound.
	FindOne(ctx context.Context, id string, scope ProjectScope) (*domain.Project, error)
	List(ctx context.Context, scope ProjectScope) ([]*domain.Project, error)
	// Update replaces the mutable fields of the project with the given id,
	// provided it was created by createdBy, and returns the updated document.
	Update(ctx context.Context, id, createdBy string, upd ProjectUpdate) (*domain.Project, error)
	// Delete removes the project with the given id, provided it was created by
	// createdBy.
	Delete(ctx context.Context, id, createdBy string) error
}
