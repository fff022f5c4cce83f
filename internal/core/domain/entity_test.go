package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_GetID(t *testing.T) {
	user := User{ID: "u1", Name: "John"}

	assert.Equal(t, "u1", user.GetID())
}

func TestCar_GetID(t *testing.T) {
	car := Car{ID: "c1", Brand: "Toyota", Model: "Corolla", Year: 2020, Color: "blue"}

	assert.Equal(t, "c1", car.GetID())
}

func TestEntity_ZeroValueHasEmptyID(t *testing.T) {
	var user User
	var car Car

	assert.Empty(t, user.GetID())
	assert.Empty(t, car.GetID())
}

func TestConfirmation_String(t *testing.T) {
	tests := []struct {
		op   Operation
		want string
	}{
		{OpCreate, "Entity u1 has been created."},
		{OpUpdate, "Entity u1 has been updated."},
		{OpDelete, "Entity u1 has been deleted."},
	}

	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			assert.Equal(t, tt.want, Confirmation{Operation: tt.op, ID: "u1"}.String())
		})
	}
}
