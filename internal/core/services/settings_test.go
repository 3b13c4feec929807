package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daisy-days/daisyd/internal/core/domain"
)

// fakeConfigStore is a hand-rolled in-memory driven.ConfigStore.
type fakeConfigStore struct {
	data map[string]any
}

func newFakeConfigStore() *fakeConfigStore {
	return &fakeConfigStore{data: make(map[string]any)}
}

func (f *fakeConfigStore) Get(key string) (any, bool) {
	val, ok := f.data[key]
	return val, ok
}

func (f *fakeConfigStore) GetString(key string) string {
	if s, ok := f.data[key].(string); ok {
		return s
	}
	return ""
}

func (f *fakeConfigStore) GetInt(key string) int {
	switch v := f.data[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	}
	return 0
}

func (f *fakeConfigStore) GetBool(key string) bool {
	b, _ := f.data[key].(bool)
	return b
}

func (f *fakeConfigStore) Set(key string, value any) error {
	f.data[key] = value
	return nil
}

func (f *fakeConfigStore) Save() error { return nil }

func TestSettingsService_Get(t *testing.T) {
	t.Run("returns defaults when nothing is configured", func(t *testing.T) {
		svc := NewSettingsService(newFakeConfigStore())

		settings, err := svc.Get()
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultAppSettings(), settings)
	})

	t.Run("configured values override defaults", func(t *testing.T) {
		store := newFakeConfigStore()
		store.data["generate.title"] = "Dashboard"
		store.data["search.limit"] = 5
		store.data["generate.theme"] = "dark"

		svc := NewSettingsService(store)

		settings, err := svc.Get()
		require.NoError(t, err)
		assert.Equal(t, "Dashboard", settings.DefaultTitle)
		assert.Equal(t, 5, settings.SearchLimit)
		assert.Equal(t, "dark", settings.Theme)
		assert.Equal(t, ":8080", settings.HTTPAddr)
	})

	t.Run("non-positive limit falls back to default", func(t *testing.T) {
		store := newFakeConfigStore()
		store.data["search.limit"] = -1

		svc := NewSettingsService(store)

		settings, err := svc.Get()
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultSearchLimit, settings.SearchLimit)
	})
}

func TestSettingsService_Save(t *testing.T) {
	t.Run("round-trips through the store", func(t *testing.T) {
		store := newFakeConfigStore()
		svc := NewSettingsService(store)

		want := &domain.AppSettings{
			DefaultTitle: "Shop",
			SearchLimit:  7,
			HTTPAddr:     ":9090",
			Theme:        "cupcake",
		}
		require.NoError(t, svc.Save(want))

		got, err := svc.Get()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("rejects non-positive limit", func(t *testing.T) {
		svc := NewSettingsService(newFakeConfigStore())

		err := svc.Save(&domain.AppSettings{SearchLimit: 0})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
