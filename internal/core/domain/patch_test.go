package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_OverwritesPatchedFields(t *testing.T) {
	user := User{ID: "u1", Name: "John", Email: "john@example.com", Password: "secret"}

	merged, err := Merge(user, Patch{"name": "Jane"})

	require.NoError(t, err)
	assert.Equal(t, User{ID: "u1", Name: "Jane", Email: "john@example.com", Password: "secret"}, merged)
}

func TestMerge_PreservesUnpatchedFields(t *testing.T) {
	car := Car{ID: "c1", Brand: "Toyota", Model: "Corolla", Year: 2020, Color: "blue"}

	merged, err := Merge(car, Patch{"color": "red", "year": 2021})

	require.NoError(t, err)
	assert.Equal(t, "Toyota", merged.Brand)
	assert.Equal(t, "Corolla", merged.Model)
	assert.Equal(t, 2021, merged.Year)
	assert.Equal(t, "red", merged.Color)
}

func TestMerge_EmptyPatch(t *testing.T) {
	car := Car{ID: "c1", Brand: "Volvo"}

	merged, err := Merge(car, Patch{})

	require.NoError(t, err)
	assert.Equal(t, car, merged)
}

func TestMerge_NilPatch(t *testing.T) {
	user := User{ID: "u1", Name: "John"}

	merged, err := Merge(user, nil)

	require.NoError(t, err)
	assert.Equal(t, user, merged)
}

func TestMerge_IgnoresID(t *testing.T) {
	user := User{ID: "u1", Name: "John"}

	merged, err := Merge(user, Patch{"id": "u2", "name": "Jane"})

	require.NoError(t, err)
	assert.Equal(t, "u1", merged.ID)
	assert.Equal(t, "Jane", merged.Name)
}

func TestMerge_IgnoresUnknownFields(t *testing.T) {
	user := User{ID: "u1", Name: "John"}

	merged, err := Merge(user, Patch{"nickname": "JJ"})

	require.NoError(t, err)
	assert.Equal(t, user, merged)
}

func TestMerge_TypeMismatch(t *testing.T) {
	car := Car{ID: "c1", Year: 2020}

	_, err := Merge(car, Patch{"year": "next year"})

	assert.ErrorIs(t, err, ErrInvalidPatch)
}

func TestMerge_UnencodableValue(t *testing.T) {
	user := User{ID: "u1"}

	_, err := Merge(user, Patch{"name": make(chan int)})

	assert.ErrorIs(t, err, ErrInvalidPatch)
}

func TestMerge_DoesNotMutateInput(t *testing.T) {
	user := User{ID: "u1", Name: "John"}

	_, err := Merge(user, Patch{"name": "Jane"})

	require.NoError(t, err)
	assert.Equal(t, "John", user.Name)
}

func TestPatch_Has(t *testing.T) {
	patch := Patch{"name": "Jane", "email": nil}

	assert.True(t, patch.Has("name"))
	assert.True(t, patch.Has("email"))
	assert.False(t, patch.Has("password"))
}
