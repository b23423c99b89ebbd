package ports

import (
	"context"

	"github.com/atelierhub/design-collab/internal/core/domain"
)

// PreferenceGroup is one topic with its option names, as submitted by a
// designer saving design preferences.
type PreferenceGroup struct {
	TopicName string
	Options   []string
}

// OptionService defines use-case operations for the shared option catalogue.
type OptionService interface {
	List(ctx context.Context) ([]*domain.Option, error)
	// Replace supersedes the entire catalogue with the flattened groups.
	Replace(ctx context.Context, groups []PreferenceGroup) ([]*domain.Option, error)
}
