// Package idgen provides identifier generators for new entities.
package idgen

import (
	"strings"

	"github.com/google/uuid"

	"github.com/Itterum/ts-app/internal/core/ports/driven"
)

// Length bounds for generated ids. A UUID carries 32 hex digits.
const (
	MinLength     = 8
	MaxLength     = 32
	DefaultLength = MaxLength
)

// Ensure UUIDGenerator implements the interface.
var _ driven.IDGenerator = (*UUIDGenerator)(nil)

// UUIDGenerator produces random UUIDs with the dashes removed,
// optionally truncated. Shorter ids collide sooner.
type UUIDGenerator struct {
	length int
}

// NewUUIDGenerator creates a generator emitting ids of length characters,
// clamped to [MinLength, MaxLength]. Zero selects DefaultLength.
func NewUUIDGenerator(length int) *UUIDGenerator {
	switch {
	case length == 0:
		length = DefaultLength
	case length < MinLength:
		length = MinLength
	case length > MaxLength:
		length = MaxLength
	}
	return &UUIDGenerator{length: length}
}

// Generate returns a new identifier.
func (g *UUIDGenerator) Generate() string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return id[:g.length]
}

// Length returns the length of generated ids.
func (g *UUIDGenerator) Length() int {
	return g.length
}
