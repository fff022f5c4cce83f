package domain

import (
	"encoding/json"
	"fmt"
)

// idField is the JSON key of every entity's identifier.
const idField = "id"

// Patch is a partial entity keyed by JSON field name.
type Patch map[string]any

// Has reports whether the patch sets field.
func (p Patch) Has(field string) bool {
	_, ok := p[field]
	return ok
}

// Merge returns current with the fields in patch overlaid. The merge is
// shallow: a patched field replaces the whole stored value. The id field
// is never overwritten and unknown fields are ignored.
func Merge[T Entity](current T, patch Patch) (T, error) {
	var zero T

	raw, err := json.Marshal(current)
	if err != nil {
		return zero, fmt.Errorf("encoding entity: %w", err)
	}

	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(raw, &fields); err != nil {
		return zero, fmt.Errorf("decoding entity fields: %w", err)
	}

	for key, value := range patch {
		if key == idField {
			continue
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			return zero, fmt.Errorf("%w: field %q: %v", ErrInvalidPatch, key, err)
		}
		fields[key] = encoded
	}

	merged, err := json.Marshal(fields)
	if err != nil {
		return zero, fmt.Errorf("encoding merged fields: %w", err)
	}

	var result T
	if err := json.Unmarshal(merged, &result); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidPatch, err)
	}
	return result, nil
}
