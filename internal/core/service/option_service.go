package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/atelierhub/design-collab/internal/core/domain"
	"github.com/atelierhub/design-collab/internal/core/ports"
)

// OptionService owns the shared option catalogue. The catalogue has no
// per-entry lifecycle: designers submit their full preferences and the new set
// supersedes everything that was there before.
type OptionService struct {
	options ports.OptionRepository
	logger  zerolog.Logger
}

func NewOptionService(options ports.OptionRepository, logger zerolog.Logger) *OptionService {
	return &OptionService{options: options, logger: logger}
}

func (s *OptionService) List(ctx context.Context) ([]*domain.Option, error) {
	return s.options.FindAll(ctx)
}

// Replace flattens the submitted groups into options (one per option string,
// typed by its topic) and swaps them in for the current catalogue.
func (s *OptionService) Replace(ctx context.Context, groups []ports.PreferenceGroup) ([]*domain.Option, error) {
	opts := make([]*domain.Option, 0)
	for _, group := range groups {
		for _, name := range group.Options {
			opts = append(opts, &domain.Option{Name: name, Type: group.TopicName})
		}
	}

	saved, err := s.options.ReplaceAll(ctx, opts)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("count", len(saved)).Int("topics", len(groups)).Msg("option catalogue replaced")
	return saved, nil
}
