package application

import (
	"time"

	"github.com/antoniopedrodev/people-manager/internal/domain"
)

// PersonDTO es la representación de una persona en el wire. La fecha de
// nacimiento se serializa como fecha de calendario (YYYY-MM-DD) y los
// timestamps como RFC 3339; los campos opcionales se omiten cuando faltan.
type PersonDTO struct {
	PersonID    *int    `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	DateOfBirth string  `json:"dateOfBirth"`
	CPF         string  `json:"cpf"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	Address     *string `json:"address,omitempty"`
	Telephone   *string `json:"telephone,omitempty"`
	CreatedAt   *string `json:"createdAt,omitempty"`
	UpdatedAt   *string `json:"updatedAt,omitempty"`
}

// ToPersonDTO convierte domain.Person a su representación wire
func ToPersonDTO(person *domain.Person) PersonDTO {
	return PersonDTO{
		PersonID:    person.PersonID,
		Name:        person.Name,
		Email:       person.Email,
		DateOfBirth: person.DateOfBirth.Format("2006-01-02"),
		CPF:         person.CPF,
		City:        person.City,
		State:       person.State,
		Address:     person.Address,
		Telephone:   person.Telephone,
		CreatedAt:   formatTimestamp(person.CreatedAt),
		UpdatedAt:   formatTimestamp(person.UpdatedAt),
	}
}

// ToPersonDTOList convierte una lista de personas a sus representaciones wire
func ToPersonDTOList(persons []domain.Person) []PersonDTO {
	dtos := make([]PersonDTO, 0, len(persons))
	for i := range persons {
		dtos = append(dtos, ToPersonDTO(&persons[i]))
	}
	return dtos
}

// formatTimestamp serializa un timestamp opcional como RFC 3339
func formatTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.UTC().Format(time.RFC3339)
	return &formatted
}
