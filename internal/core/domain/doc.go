// Package domain defines the core entity types for ts-app.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Entity: The constraint every stored record satisfies
//   - User, Car: Built-in entity types
//   - Patch: A partial set of fields applied by an update
//   - Confirmation: The success value of a mutating operation
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
