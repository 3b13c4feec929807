package driving

import "github.com/daisy-days/daisyd/internal/core/domain"

// SettingsService manages the adapter-level application settings.
type SettingsService interface {
	// Get retrieves current settings, applying defaults for unset keys.
	Get() (*domain.AppSettings, error)

	// Save persists settings.
	Save(settings *domain.AppSettings) error
}
