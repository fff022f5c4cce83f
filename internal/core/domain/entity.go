package domain

// Entity is a record identified by a unique string id.
type Entity interface {
	GetID() string
}

// User is a person known to the application.
type User struct {
	// ID is the unique identifier for the user.
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Email is the contact address.
	Email string `json:"email"`

	// Password holds a bcrypt hash once stored through the hashing store.
	Password string `json:"password"`
}

// GetID returns the user's id.
func (u User) GetID() string {
	return u.ID
}

// Car is a vehicle record.
type Car struct {
	ID    string `json:"id"`
	Brand string `json:"brand"`
	Model string `json:"model"`
	Year  int    `json:"year"`
	Color string `json:"color"`
}

// GetID returns the car's id.
func (c Car) GetID() string {
	return c.ID
}
