package driven

// ConfigStore provides access to application configuration.
// Keys use dot notation for nested tables (e.g. "storage.backend").
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string value, or fallback if the key is
	// missing or holds another type.
	GetString(key, fallback string) string

	// GetInt retrieves an integer value, or fallback if the key is
	// missing or holds another type.
	GetInt(key string, fallback int) int

	// GetBool retrieves a boolean value, or fallback if the key is
	// missing or holds another type.
	GetBool(key string, fallback bool) bool

	// Set stores a configuration value and persists it immediately.
	Set(key string, value any) error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
