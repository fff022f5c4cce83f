package idgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUUIDGenerator_Length(t *testing.T) {
	tests := []struct {
		name  string
		input int
		want  int
	}{
		{"zero uses default", 0, DefaultLength},
		{"original short form", 10, 10},
		{"below minimum", 3, MinLength},
		{"negative", -1, MinLength},
		{"above maximum", 64, MaxLength},
		{"maximum", 32, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewUUIDGenerator(tt.input)

			assert.Equal(t, tt.want, gen.Length())
			assert.Len(t, gen.Generate(), tt.want)
		})
	}
}

func TestUUIDGenerator_Generate_HexWithoutDashes(t *testing.T) {
	id := NewUUIDGenerator(0).Generate()

	assert.NotContains(t, id, "-")
	assert.Regexp(t, "^[0-9a-f]{32}$", id)
}

func TestUUIDGenerator_Generate_Distinct(t *testing.T) {
	gen := NewUUIDGenerator(10)
	seen := make(map[string]bool)

	for i := 0; i < 1000; i++ {
		id := gen.Generate()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
