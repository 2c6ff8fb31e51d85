package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPersonArgs() (string, string, time.Time, string, string, string) {
	return "John Doe",
		"john@example.com",
		time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		"12345678901",
		"New York",
		"NY"
}

func TestNewPersonValid(t *testing.T) {
	name, email, dob, cpf, city, state := validPersonArgs()

	person, err := NewPerson(nil, name, email, dob, cpf, city, state, nil, nil, nil, nil)
	require.NoError(t, err)

	assert.Nil(t, person.PersonID)
	assert.Equal(t, "John Doe", person.Name)
	assert.Equal(t, "john@example.com", person.Email)
	assert.Equal(t, dob, person.DateOfBirth)
	assert.Equal(t, "12345678901", person.CPF)
	assert.Equal(t, "New York", person.City)
	assert.Equal(t, "NY", person.State)
	assert.Nil(t, person.Telephone)
	assert.Nil(t, person.Address)
	assert.Nil(t, person.CreatedAt)
	assert.Nil(t, person.UpdatedAt)
}

func TestNewPersonOptionalFields(t *testing.T) {
	name, email, dob, cpf, city, state := validPersonArgs()
	telephone := "555-1234"
	address := "123 Main St"

	person, err := NewPerson(nil, name, email, dob, cpf, city, state, &telephone, &address, nil, nil)
	require.NoError(t, err)

	require.NotNil(t, person.Telephone)
	assert.Equal(t, "555-1234", *person.Telephone)
	require.NotNil(t, person.Address)
	assert.Equal(t, "123 Main St", *person.Address)
}

func TestNewPersonMissingFields(t *testing.T) {
	tests := []struct {
		testName string
		mutate   func(name, email *string, dob *time.Time, cpf, city, state *string)
		wantMsg  string
	}{
		{
			testName: "missing name",
			mutate: func(name, email *string, dob *time.Time, cpf, city, state *string) {
				*name = ""
			},
			wantMsg: "Name is required",
		},
		{
			testName: "missing email",
			mutate: func(name, email *string, dob *time.Time, cpf, city, state *string) {
				*email = ""
			},
			wantMsg: "Email is required",
		},
		{
			testName: "missing date of birth",
			mutate: func(name, email *string, dob *time.Time, cpf, city, state *string) {
				*dob = time.Time{}
			},
			wantMsg: "Date of birth is required",
		},
		{
			testName: "missing cpf",
			mutate: func(name, email *string, dob *time.Time, cpf, city, state *string) {
				*cpf = ""
			},
			wantMsg: "CPF is required",
		},
		{
			testName: "missing city",
			mutate: func(name, email *string, dob *time.Time, cpf, city, state *string) {
				*city = ""
			},
			wantMsg: "City is required",
		},
		{
			testName: "missing state",
			mutate: func(name, email *string, dob *time.Time, cpf, city, state *string) {
				*state = ""
			},
			wantMsg: "State is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.testName, func(t *testing.T) {
			name, email, dob, cpf, city, state := validPersonArgs()
			tt.mutate(&name, &email, &dob, &cpf, &city, &state)

			person, err := NewPerson(nil, name, email, dob, cpf, city, state, nil, nil, nil, nil)
			require.Error(t, err)
			assert.Nil(t, person)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantMsg, validationErr.Message)
		})
	}
}

// El primer campo faltante gana: con todos los campos vacíos la validación
// reporta name, luego email, y así en orden fijo.
func TestNewPersonValidationOrder(t *testing.T) {
	_, err := NewPerson(nil, "", "", time.Time{}, "", "", "", nil, nil, nil, nil)
	require.Error(t, err)
	assert.Equal(t, "Name is required", err.Error())

	_, err = NewPerson(nil, "John Doe", "", time.Time{}, "", "", "", nil, nil, nil, nil)
	require.Error(t, err)
	assert.Equal(t, "Email is required", err.Error())

	_, err = NewPerson(nil, "John Doe", "john@example.com", time.Time{}, "", "", "", nil, nil, nil, nil)
	require.Error(t, err)
	assert.Equal(t, "Date of birth is required", err.Error())

	_, err = NewPerson(nil, "John Doe", "john@example.com", time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), "", "", "", nil, nil, nil, nil)
	require.Error(t, err)
	assert.Equal(t, "CPF is required", err.Error())

	_, err = NewPerson(nil, "John Doe", "john@example.com", time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), "12345678901", "", "", nil, nil, nil, nil)
	require.Error(t, err)
	assert.Equal(t, "City is required", err.Error())

	_, err = NewPerson(nil, "John Doe", "john@example.com", time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), "12345678901", "New York", "", nil, nil, nil, nil)
	require.Error(t, err)
	assert.Equal(t, "State is required", err.Error())
}
