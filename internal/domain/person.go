package domain

import "time"

// Person representa una persona registrada en el sistema.
// Es un value object inmutable: se construye vía NewPerson y nunca se
// modifica en el lugar; cada cambio produce una instancia nueva.
type Person struct {
	PersonID    *int       `json:"id"` // nil hasta que la persistencia asigna el ID
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	DateOfBirth time.Time  `json:"dateOfBirth"`
	CPF         string     `json:"cpf"`
	City        string     `json:"city"`
	State       string     `json:"state"`
	Telephone   *string    `json:"telephone,omitempty"` // Puntero para permitir NULL
	Address     *string    `json:"address,omitempty"`   // Puntero para permitir NULL
	CreatedAt   *time.Time `json:"createdAt,omitempty"` // Asignado por la persistencia
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"` // Asignado por la persistencia
}

// NewPerson construye una persona validando los campos obligatorios.
// La validación sigue un orden fijo y falla con el primer campo faltante:
// name, email, dateOfBirth, cpf, city, state.
func NewPerson(
	id *int,
	name string,
	email string,
	dateOfBirth time.Time,
	cpf string,
	city string,
	state string,
	telephone *string,
	address *string,
	createdAt *time.Time,
	updatedAt *time.Time,
) (*Person, error) {
	if name == "" {
		return nil, &ValidationError{Message: "Name is required"}
	}
	if email == "" {
		return nil, &ValidationError{Message: "Email is required"}
	}
	if dateOfBirth.IsZero() {
		return nil, &ValidationError{Message: "Date of birth is required"}
	}
	if cpf == "" {
		return nil, &ValidationError{Message: "CPF is required"}
	}
	if city == "" {
		return nil, &ValidationError{Message: "City is required"}
	}
	if state == "" {
		return nil, &ValidationError{Message: "State is required"}
	}

	return &Person{
		PersonID:    id,
		Name:        name,
		Email:       email,
		DateOfBirth: dateOfBirth,
		CPF:         cpf,
		City:        city,
		State:       state,
		Telephone:   telephone,
		Address:     address,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

// PersonRepository define las operaciones de persistencia de personas
type PersonRepository interface {
	// Create persiste una persona nueva y devuelve la versión persistida
	// con ID y timestamps asignados
	Create(person *Person) (*Person, error)
	// FindAll devuelve todas las personas en orden de inserción
	FindAll() ([]Person, error)
	// FindByID busca una persona por su ID; devuelve (nil, nil) si no existe
	FindByID(id int) (*Person, error)
	// Update actualiza los datos de una persona existente y devuelve la
	// versión persistida; falla con ErrPersonNotFound si el ID no existe
	Update(id int, person *Person) (*Person, error)
	// Delete elimina una persona; falla con ErrPersonNotFound si el ID no existe
	Delete(id int) error
}
