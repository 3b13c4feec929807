package services

import (
	"fmt"

	"github.com/daisy-days/daisyd/internal/core/domain"
	"github.com/daisy-days/daisyd/internal/core/ports/driven"
	"github.com/daisy-days/daisyd/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDefaultTitle = "generate.title"
	keyTheme        = "generate.theme"
	keySearchLimit  = "search.limit"
	keyHTTPAddr     = "mcp.http_addr"
)

// SettingsService manages application settings on top of the config
// store, applying built-in defaults for unset keys.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	return &domain.AppSettings{
		DefaultTitle: s.getString(keyDefaultTitle, defaults.DefaultTitle),
		SearchLimit:  s.getInt(keySearchLimit, defaults.SearchLimit),
		HTTPAddr:     s.getString(keyHTTPAddr, defaults.HTTPAddr),
		Theme:        s.getString(keyTheme, defaults.Theme),
	}, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings.SearchLimit <= 0 {
		return fmt.Errorf("search limit %d: %w", settings.SearchLimit, domain.ErrInvalidInput)
	}

	if err := s.configStore.Set(keyDefaultTitle, settings.DefaultTitle); err != nil {
		return fmt.Errorf("save default title: %w", err)
	}
	if err := s.configStore.Set(keySearchLimit, settings.SearchLimit); err != nil {
		return fmt.Errorf("save search limit: %w", err)
	}
	if err := s.configStore.Set(keyHTTPAddr, settings.HTTPAddr); err != nil {
		return fmt.Errorf("save http addr: %w", err)
	}
	if err := s.configStore.Set(keyTheme, settings.Theme); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}

	return nil
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}
