package domain

import "fmt"

// StorageBackend selects the EntityStore implementation.
type StorageBackend string

// Available storage backends. Both keep data only for the life of the process.
const (
	// StorageMemory keeps entities in Go maps.
	StorageMemory StorageBackend = "memory"

	// StorageSQLite keeps entities in an in-memory SQLite database.
	StorageSQLite StorageBackend = "sqlite"
)

// IsValid returns true if the backend is recognised.
func (b StorageBackend) IsValid() bool {
	switch b {
	case StorageMemory, StorageSQLite:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b StorageBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b StorageBackend) Description() string {
	switch b {
	case StorageMemory:
		return "Memory (Go maps)"
	case StorageSQLite:
		return "SQLite (in-memory database)"
	default:
		return "Unknown"
	}
}

// ParseStorageBackend converts s to a StorageBackend.
func ParseStorageBackend(s string) (StorageBackend, error) {
	b := StorageBackend(s)
	if !b.IsValid() {
		return "", fmt.Errorf("unknown storage backend %q", s)
	}
	return b, nil
}

// Settings holds application settings.
type Settings struct {
	// Backend selects the entity store implementation.
	Backend StorageBackend

	// IDLength is the length of generated entity ids.
	IDLength int

	// BcryptCost is the password hashing cost. Zero selects the library default.
	BcryptCost int

	// Verbose enables debug logging.
	Verbose bool
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Backend:  StorageMemory,
		IDLength: 32,
	}
}
