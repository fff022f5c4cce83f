package domain

import "fmt"

// Confirmation is the success result of a mutating operation.
type Confirmation struct {
	Operation Operation
	ID        string
}

// String renders the confirmation as a sentence, e.g. "Entity u1 has been created.".
func (c Confirmation) String() string {
	var verb string
	switch c.Operation {
	case OpCreate:
		verb = "created"
	case OpUpdate:
		verb = "updated"
	case OpDelete:
		verb = "deleted"
	default:
		verb = string(c.Operation) + "d"
	}
	return fmt.Sprintf("Entity %s has been %s.", c.ID, verb)
}
