package driven

// IDGenerator produces short opaque identifiers for new entities.
// Implementations must not repeat an identifier within a process.
type IDGenerator interface {
	Generate() string
}
