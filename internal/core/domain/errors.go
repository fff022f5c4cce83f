package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent entity management failures.
// These are distinct from infrastructure errors.
var (
	// ErrMissingIdentifier indicates an entity was created without an id.
	ErrMissingIdentifier = errors.New("entity id is required")

	// ErrNotFound indicates no entity is stored under the requested id.
	ErrNotFound = errors.New("not found")

	// ErrInvalidPatch indicates a patch value does not fit the entity's field.
	ErrInvalidPatch = errors.New("invalid patch")

	// ErrNotConfigured indicates a gateway was built without a store.
	ErrNotConfigured = errors.New("store not configured")
)

// NotFoundError reports the id that an update or delete could not find.
// It matches ErrNotFound with errors.Is.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Entity with id %s not found", e.ID)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Operation names one of the entity operations.
type Operation string

// Entity operations.
const (
	OpCreate Operation = "create"
	OpRead   Operation = "read"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
	OpList   Operation = "list"
)

// OperationError is the gateway-level failure wrapping any store error.
// Cause holds the message of the originating error.
type OperationError struct {
	Operation Operation
	Cause     string
	Err       error
}

// NewOperationError wraps err as a failure of op.
func NewOperationError(op Operation, err error) *OperationError {
	return &OperationError{Operation: op, Cause: err.Error(), Err: err}
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("failed to %s entity: %s", e.Operation, e.Cause)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// ErrorKind tags an error with its place in the taxonomy so callers can
// branch on it without type assertions.
type ErrorKind string

// Error kinds.
const (
	KindNone              ErrorKind = ""
	KindMissingIdentifier ErrorKind = "MissingIdentifier"
	KindNotFound          ErrorKind = "NotFound"
	KindInvalidPatch      ErrorKind = "InvalidPatch"
	KindOperationFailed   ErrorKind = "OperationFailed"
	KindUnknown           ErrorKind = "Unknown"
)

// KindOf returns the kind of err. A gateway error is always
// KindOperationFailed, whatever it wraps.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	var opErr *OperationError
	switch {
	case errors.As(err, &opErr):
		return KindOperationFailed
	case errors.Is(err, ErrMissingIdentifier):
		return KindMissingIdentifier
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidPatch):
		return KindInvalidPatch
	default:
		return KindUnknown
	}
}
