package application

import (
	"fmt"
	"time"

	"github.com/antoniopedrodev/people-manager/internal/domain"
)

// PersonInput contiene los datos que el cliente puede enviar para crear o
// actualizar una persona. La fecha de nacimiento llega como string en
// formato YYYY-MM-DD y se parsea aquí.
type PersonInput struct {
	Name        string
	Email       string
	DateOfBirth string
	CPF         string
	City        string
	State       string
	Telephone   *string
	Address     *string
}

type PersonService struct {
	personRepo domain.PersonRepository
}

// NewPersonService crea una nueva instancia del servicio de personas
func NewPersonService(personRepo domain.PersonRepository) *PersonService {
	return &PersonService{
		personRepo: personRepo,
	}
}

// parseDateOfBirth convierte la fecha de nacimiento del formato de entrada
// (YYYY-MM-DD) a time.Time
func parseDateOfBirth(value string) (time.Time, error) {
	dateOfBirth, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, &domain.ValidationError{
			Message: fmt.Sprintf("Date of birth '%s' is not a valid date", value),
		}
	}
	return dateOfBirth, nil
}

// CreatePerson construye una persona sin ID a partir de los datos de
// entrada y la delega al repositorio. Los errores del repositorio y de la
// validación de la entidad se propagan sin clasificar.
func (s *PersonService) CreatePerson(input PersonInput) (*domain.Person, error) {
	dateOfBirth, err := parseDateOfBirth(input.DateOfBirth)
	if err != nil {
		return nil, err
	}

	person, err := domain.NewPerson(
		nil,
		input.Name,
		input.Email,
		dateOfBirth,
		input.CPF,
		input.City,
		input.State,
		input.Telephone,
		input.Address,
		nil,
		nil,
	)
	if err != nil {
		return nil, err
	}

	return s.personRepo.Create(person)
}

// GetAllPersons devuelve todas las personas en orden de inserción
func (s *PersonService) GetAllPersons() ([]domain.Person, error) {
	return s.personRepo.FindAll()
}

// GetPersonByID obtiene una persona por su ID. Devuelve (nil, nil) cuando la
// persona no existe; la ausencia no es un error.
func (s *PersonService) GetPersonByID(id int) (*domain.Person, error) {
	return s.personRepo.FindByID(id)
}

// UpdatePerson construye una persona con el ID destino a partir de los datos
// de entrada y la delega al repositorio
func (s *PersonService) UpdatePerson(id int, input PersonInput) (*domain.Person, error) {
	dateOfBirth, err := parseDateOfBirth(input.DateOfBirth)
	if err != nil {
		return nil, err
	}

	person, err := domain.NewPerson(
		&id,
		input.Name,
		input.Email,
		dateOfBirth,
		input.CPF,
		input.City,
		input.State,
		input.Telephone,
		input.Address,
		nil,
		nil,
	)
	if err != nil {
		return nil, err
	}

	return s.personRepo.Update(id, person)
}

// DeletePerson elimina una persona por su ID
func (s *PersonService) DeletePerson(id int) error {
	return s.personRepo.Delete(id)
}
