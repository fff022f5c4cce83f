package memory

import (
	"sync"

	"github.com/Itterum/ts-app/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore is an in-memory implementation of driven.ConfigStore.
// It backs the CLI when no configuration directory is usable, and tests.
type ConfigStore struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewConfigStore creates a new in-memory config store seeded with values.
func NewConfigStore(values map[string]any) *ConfigStore {
	s := &ConfigStore{
		values: make(map[string]any, len(values)),
	}
	for k, v := range values {
		s.values[k] = v
	}
	return s
}

// Get retrieves a configuration value by key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	return val, ok
}

// GetString retrieves a string configuration value.
func (s *ConfigStore) GetString(key, fallback string) string {
	if str, ok := s.valueOf(key).(string); ok {
		return str
	}
	return fallback
}

// GetInt retrieves an integer configuration value.
func (s *ConfigStore) GetInt(key string, fallback int) int {
	switch v := s.valueOf(key).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return fallback
	}
}

// GetBool retrieves a boolean configuration value.
func (s *ConfigStore) GetBool(key string, fallback bool) bool {
	if b, ok := s.valueOf(key).(bool); ok {
		return b
	}
	return fallback
}

func (s *ConfigStore) valueOf(key string) any {
	val, _ := s.Get(key)
	return val
}

// Set stores a configuration value.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Load reads configuration from storage (no-op for memory store).
func (s *ConfigStore) Load() error {
	return nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return ":memory:"
}
