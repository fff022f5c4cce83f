package services

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/Itterum/ts-app/internal/core/domain"
	"github.com/Itterum/ts-app/internal/core/ports/driven"
)

// passwordField is the patch key carrying a new password.
const passwordField = "password"

// Ensure PasswordHashingStore implements the interface.
var _ driven.EntityStore[domain.User] = (*PasswordHashingStore)(nil)

// PasswordHashingStore wraps a user store and replaces plaintext
// passwords with bcrypt hashes before they reach it.
type PasswordHashingStore struct {
	driven.EntityStore[domain.User]
	cost int
}

// NewPasswordHashingStore decorates inner. A cost outside bcrypt's
// accepted range falls back to bcrypt.DefaultCost.
func NewPasswordHashingStore(inner driven.EntityStore[domain.User], cost int) *PasswordHashingStore {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHashingStore{EntityStore: inner, cost: cost}
}

// Create hashes the user's password and stores the user.
// An empty password is stored as-is.
func (s *PasswordHashingStore) Create(ctx context.Context, user domain.User) (domain.Confirmation, error) {
	if user.ID == "" {
		return domain.Confirmation{}, domain.ErrMissingIdentifier
	}
	if user.Password != "" {
		hashed, err := s.hash(user.Password)
		if err != nil {
			return domain.Confirmation{}, err
		}
		user.Password = hashed
	}
	return s.EntityStore.Create(ctx, user)
}

// Update hashes a password carried by the patch before delegating.
// The caller's patch is not modified.
func (s *PasswordHashingStore) Update(ctx context.Context, id string, patch domain.Patch) (domain.Confirmation, error) {
	plain, ok := patch[passwordField].(string)
	if !ok || plain == "" {
		return s.EntityStore.Update(ctx, id, patch)
	}

	hashed, err := s.hash(plain)
	if err != nil {
		return domain.Confirmation{}, err
	}

	hashedPatch := make(domain.Patch, len(patch))
	for k, v := range patch {
		hashedPatch[k] = v
	}
	hashedPatch[passwordField] = hashed
	return s.EntityStore.Update(ctx, id, hashedPatch)
}

func (s *PasswordHashingStore) hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), s.cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hashed), nil
}

// CheckPassword reports whether plain matches the user's stored hash.
func CheckPassword(user domain.User, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(plain)) == nil
}
