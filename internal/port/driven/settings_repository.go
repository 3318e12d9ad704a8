package driven

import (
	"context"

	"tvstream/internal/settings"
)

// SettingsRepository defines the interface for the single site
// settings document. This is a driven port implemented by concrete
// adapters.
type SettingsRepository interface {
	// Get retrieves the stored settings. Returns
	// settings.ErrNotConfigured when nothing has been stored yet.
	Get(ctx context.Context) (settings.Settings, error)

	// Save stores the settings document, replacing any prior value.
	Save(ctx context.Context, s settings.Settings) error
}
