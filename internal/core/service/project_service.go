package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/atelierhub/design-collab/internal/core/domain"
	"github.com/atelierhub/design-collab/internal/core/ports"
)

// ProjectService owns the project lifecycle and its visibility rules:
// designers see what they created, clients see what they are associated with,
// and a project outside the caller's scope is indistinguishable from one that
// does not exist.
type ProjectService struct {
	projects ports.ProjectRepository
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewProjectService(projects ports.ProjectRepository, users ports.UserRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{projects: projects, users: users, logger: logger}
}

// Create resolves the client username and persists a new project owned by the
// designer, with the resolved client as its initial association.
func (s *ProjectService) Create(ctx context.Context, designerID string, in ports.ProjectInput) (*domain.Project, error) {
	client, err := s.users.FindByUsername(ctx, in.ClientUsername)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrClientNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.projects.Insert(ctx, &domain.Project{
		Name:              in.Name,
		StartDate:         in.StartDate,
		EndDate:           in.EndDate,
		Budget:            in.Budget,
		ClientUsername:    in.ClientUsername,
		CreatedBy:         designerID,
		AssociatedClients: []string{client.ID},
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("project_id", created.ID).Str("designer_id", designerID).Str("client", in.ClientUsername).Msg("project created")
	return created, nil
}

// Update overwrites every mutable field of the project. Only the creating
// designer may update; a project owned by someone else reads as not found.
// Client associations are fixed at creation and not touched here.
func (s *ProjectService) Update(ctx context.Context, designerID, projectID string, in ports.ProjectInput) (*domain.Project, error) {
	updated, err := s.projects.Update(ctx, projectID, designerID, ports.ProjectUpdate{
		Name:           in.Name,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		Budget:         in.Budget,
		ClientUsername: in.ClientUsername,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("project_id", projectID).Str("designer_id", designerID).Msg("project updated")
	return updated, nil
}

// Delete removes the project. Only the creating designer may delete.
func (s *ProjectService) Delete(ctx context.Context, designerID, projectID string) error {
	if err := s.projects.Delete(ctx, projectID, designerID); err != nil {
		return err
	}

	s.logger.Info().Str("project_id", projectID).Str("designer_id", designerID).Msg("project deleted")
	return nil
}

// ListFor returns the projects visible to the user under their role's scope.
func (s *ProjectService) ListFor(ctx context.Context, user *domain.User) ([]*domain.Project, error) {
	scope, err := scopeFor(user)
	if err != nil {
		return nil, err
	}
	return s.projects.List(ctx, scope)
}

// GetOne returns a single project if it falls inside the user's scope.
func (s *ProjectService) GetOne(ctx context.Context, user *domain.User, projectID string) (*domain.Project, error) {
	scope, err := scopeFor(user)
	if err != nil {
		return nil, err
	}
	return s.projects.FindOne(ctx, projectID, scope)
}

func scopeFor(user *domain.User) (ports.ProjectScope, error) {
	switch user.Role {
	case domain.RoleDesigner:
		return ports.ProjectScope{CreatedBy: user.ID}, nil
	case domain.RoleClient:
		return ports.ProjectScope{ClientID: user.ID}, nil
	default:
		return ports.ProjectScope{}, domain.ErrProjectNotFound
	}
}
