package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrMissingIdentifier", ErrMissingIdentifier},
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidPatch", ErrInvalidPatch},
		{"ErrNotConfigured", ErrNotConfigured},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestNotFoundError_Message(t *testing.T) {
	err := &NotFoundError{ID: "missing"}

	assert.Equal(t, "Entity with id missing not found", err.Error())
}

func TestNotFoundError_MatchesSentinel(t *testing.T) {
	var err error = &NotFoundError{ID: "u1"}

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrMissingIdentifier)

	wrapped := fmt.Errorf("deleting: %w", err)
	assert.ErrorIs(t, wrapped, ErrNotFound)
}

func TestOperationError_Error(t *testing.T) {
	err := NewOperationError(OpUpdate, &NotFoundError{ID: "missing"})

	assert.Equal(t, OpUpdate, err.Operation)
	assert.Equal(t, "Entity with id missing not found", err.Cause)
	assert.Equal(t, "failed to update entity: Entity with id missing not found", err.Error())
}

func TestOperationError_Unwrap(t *testing.T) {
	cause := errors.New("disk on fire")
	err := NewOperationError(OpCreate, cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "disk on fire", err.Cause)
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"nil", nil, KindNone},
		{"missing identifier", ErrMissingIdentifier, KindMissingIdentifier},
		{"not found sentinel", ErrNotFound, KindNotFound},
		{"not found typed", &NotFoundError{ID: "x"}, KindNotFound},
		{"invalid patch wrapped", fmt.Errorf("%w: year", ErrInvalidPatch), KindInvalidPatch},
		{"operation failed", NewOperationError(OpDelete, &NotFoundError{ID: "x"}), KindOperationFailed},
		{"operation failed wrapped", fmt.Errorf("cli: %w", NewOperationError(OpCreate, ErrMissingIdentifier)), KindOperationFailed},
		{"unknown", errors.New("boom"), KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}
