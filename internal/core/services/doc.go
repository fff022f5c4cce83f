// Package services implements the driving port interfaces.
// Services contain the core logic and delegate storage to driven
// ports (adapters).
//
//   - Gateway: Forwards entity operations and reports every failure
//     as a *domain.OperationError
//   - PasswordHashingStore: Decorates a user store so passwords are
//     only ever stored as bcrypt hashes
package services
