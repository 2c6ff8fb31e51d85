package repository

import (
	"sync"
	"time"

	"github.com/antoniopedrodev/people-manager/internal/domain"
)

// MemoryPersonRepository es una implementación en memoria del repositorio
// de personas. Replica la semántica del adaptador de Postgres (IDs
// seriales, timestamps del sistema, unicidad de email y CPF) y se usa en
// los tests en lugar de una base de datos real.
type MemoryPersonRepository struct {
	mu      sync.Mutex
	nextID  int
	persons []domain.Person
}

// NewMemoryPersonRepository crea un repositorio de personas en memoria vacío
func NewMemoryPersonRepository() *MemoryPersonRepository {
	return &MemoryPersonRepository{nextID: 1}
}

// Create persiste una persona nueva asignando ID y timestamps
func (r *MemoryPersonRepository) Create(person *domain.Person) (*domain.Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.hasDuplicate(person.Email, person.CPF, nil) {
		return nil, domain.ErrDuplicatePerson
	}

	id := r.nextID
	r.nextID++
	now := time.Now()

	stored := *person
	stored.PersonID = &id
	stored.CreatedAt = &now
	stored.UpdatedAt = &now
	r.persons = append(r.persons, stored)

	copied := stored
	return &copied, nil
}

// FindAll devuelve todas las personas en orden de inserción
func (r *MemoryPersonRepository) FindAll() ([]domain.Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	persons := make([]domain.Person, len(r.persons))
	copy(persons, r.persons)
	return persons, nil
}

// FindByID busca una persona por su ID; (nil, nil) cuando no existe
func (r *MemoryPersonRepository) FindByID(id int) (*domain.Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.persons {
		if *r.persons[i].PersonID == id {
			copied := r.persons[i]
			return &copied, nil
		}
	}
	return nil, nil
}

// Update actualiza los datos de una persona existente
func (r *MemoryPersonRepository) Update(id int, person *domain.Person) (*domain.Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.persons {
		if *r.persons[i].PersonID != id {
			continue
		}

		if r.hasDuplicate(person.Email, person.CPF, &id) {
			return nil, domain.ErrDuplicatePerson
		}

		now := time.Now()
		stored := *person
		stored.PersonID = &id
		stored.CreatedAt = r.persons[i].CreatedAt
		stored.UpdatedAt = &now
		r.persons[i] = stored

		copied := stored
		return &copied, nil
	}

	return nil, domain.ErrPersonNotFound
}

// Delete elimina una persona por su ID
func (r *MemoryPersonRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.persons {
		if *r.persons[i].PersonID == id {
			r.persons = append(r.persons[:i], r.persons[i+1:]...)
			return nil
		}
	}
	return domain.ErrPersonNotFound
}

// hasDuplicate verifica la unicidad de email y CPF, ignorando la propia
// persona cuando se trata de una actualización
func (r *MemoryPersonRepository) hasDuplicate(email, cpf string, excludeID *int) bool {
	for i := range r.persons {
		if excludeID != nil && *r.persons[i].PersonID == *excludeID {
			continue
		}
		if r.persons[i].Email == email || r.persons[i].CPF == cpf {
			return true
		}
	}
	return false
}
