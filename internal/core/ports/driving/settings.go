package driving

import "github.com/Itterum/ts-app/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings, filling defaults.
	Get() domain.Settings

	// SetBackend persists the storage backend.
	SetBackend(backend domain.StorageBackend) error

	// SetIDLength persists the generated id length.
	SetIDLength(length int) error

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings
}
