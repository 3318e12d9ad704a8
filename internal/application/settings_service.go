package application

import (
	"context"
	"errors"

	"tvstream/internal/port/driven"
	"tvstream/internal/settings"
)

// SettingsService provides use cases for the site settings document.
type SettingsService struct {
	repo driven.SettingsRepository
}

// NewSettingsService creates a new SettingsService with the given
// repository.
func NewSettingsService(repo driven.SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

// Get retrieves the stored settings, falling back to the defaults when
// nothing has been configured yet.
func (s *SettingsService) Get(ctx context.Context) (settings.Settings, error) {
	stored, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, settings.ErrNotConfigured) {
			return settings.Default(), nil
		}
		return settings.Settings{}, err
	}
	return stored, nil
}

// Update replaces the provided sections of the settings document and
// keeps the others. Returns the merged result.
func (s *SettingsService) Update(ctx context.Context, about *settings.About, social *settings.Social) (settings.Settings, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return settings.Settings{}, err
	}

	if about != nil {
		current.About = *about
	}
	if social != nil {
		current.Social = *social
	}

	if err := s.repo.Save(ctx, current); err != nil {
		return settings.Settings{}, err
	}

	return current, nil
}
