package application

import (
	"context"
	"testing"

	"tvstream/internal/settings"
)

func TestSettingsService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("falls back to defaults when unconfigured", func(t *testing.T) {
		repo := &mockSettingsRepository{
			GetFunc: func(ctx context.Context) (settings.Settings, error) {
				return settings.Settings{}, settings.ErrNotConfigured
			},
		}

		service := NewSettingsService(repo)

		got, err := service.Get(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		want := settings.Default()
		if got.About.Title != want.About.Title {
			t.Errorf("expected default about title, got %v", got.About.Title)
		}
	})

	t.Run("returns stored settings", func(t *testing.T) {
		repo := &mockSettingsRepository{
			GetFunc: func(ctx context.Context) (settings.Settings, error) {
				return settings.Settings{About: settings.About{Title: "Custom"}}, nil
			},
		}

		service := NewSettingsService(repo)

		got, err := service.Get(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.About.Title != "Custom" {
			t.Errorf("expected Custom, got %v", got.About.Title)
		}
	})
}

func TestSettingsService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces only provided sections", func(t *testing.T) {
		stored := settings.Default()

		var saved settings.Settings
		repo := &mockSettingsRepository{
			GetFunc: func(ctx context.Context) (settings.Settings, error) {
				return stored, nil
			},
			SaveFunc: func(ctx context.Context, s settings.Settings) error {
				saved = s
				return nil
			},
		}

		service := NewSettingsService(repo)

		about := settings.About{Title: "New About", Content: "Updated"}
		merged, err := service.Update(ctx, &about, nil)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if merged.About.Title != "New About" {
			t.Errorf("expected New About, got %v", merged.About.Title)
		}
		if merged.Social != stored.Social {
			t.Error("expected social section to be untouched")
		}
		if saved.About.Title != "New About" {
			t.Errorf("expected persisted about, got %v", saved.About.Title)
		}
	})
}
