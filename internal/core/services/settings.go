package services

import (
	"fmt"

	"github.com/Itterum/ts-app/internal/core/domain"
	"github.com/Itterum/ts-app/internal/core/ports/driven"
	"github.com/Itterum/ts-app/internal/core/ports/driving"
)

// Configuration keys.
const (
	keyStorageBackend = "storage.backend"
	keyIDLength       = "ids.length"
	keyBcryptCost     = "security.bcrypt_cost"
	keyLogVerbose     = "log.verbose"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService reads and writes application settings through a ConfigStore.
type SettingsService struct {
	config driven.ConfigStore
}

// NewSettingsService creates a settings service backed by config.
func NewSettingsService(config driven.ConfigStore) *SettingsService {
	return &SettingsService{config: config}
}

// Get returns the configured settings. Missing or invalid values fall
// back to the defaults.
func (s *SettingsService) Get() domain.Settings {
	settings := domain.DefaultSettings()
	if s.config == nil {
		return settings
	}

	backend := domain.StorageBackend(s.config.GetString(keyStorageBackend, settings.Backend.String()))
	if backend.IsValid() {
		settings.Backend = backend
	}
	settings.IDLength = s.config.GetInt(keyIDLength, settings.IDLength)
	settings.BcryptCost = s.config.GetInt(keyBcryptCost, settings.BcryptCost)
	settings.Verbose = s.config.GetBool(keyLogVerbose, settings.Verbose)
	return settings
}

// SetBackend persists the storage backend.
func (s *SettingsService) SetBackend(backend domain.StorageBackend) error {
	if !backend.IsValid() {
		return fmt.Errorf("unknown storage backend %q", backend)
	}
	if s.config == nil {
		return domain.ErrNotConfigured
	}
	return s.config.Set(keyStorageBackend, backend.String())
}

// SetIDLength persists the generated id length.
func (s *SettingsService) SetIDLength(length int) error {
	if length <= 0 {
		return fmt.Errorf("id length must be positive, got %d", length)
	}
	if s.config == nil {
		return domain.ErrNotConfigured
	}
	return s.config.Set(keyIDLength, length)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// Path returns the location of the underlying configuration, if any.
func (s *SettingsService) Path() string {
	if s.config == nil {
		return ""
	}
	return s.config.Path()
}
