package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/antoniopedrodev/people-manager/internal/domain"
	"github.com/lib/pq"
)

// uniqueViolation es el código de pq para violaciones de unicidad
const uniqueViolation = "23505"

type personRepository struct {
	db *sql.DB
}

// NewPersonRepository crea una nueva instancia del repositorio de personas
// sobre Postgres
func NewPersonRepository(db *sql.DB) domain.PersonRepository {
	return &personRepository{db: db}
}

const personColumns = `
	person_id,
	name,
	email,
	date_of_birth,
	cpf,
	city,
	state,
	telephone,
	address,
	created_at,
	updated_at
`

// scanPerson lee una fila y la rehidrata a través de la factory del dominio,
// de modo que una fila malformada también se rechaza al cargarla
func scanPerson(row *sql.Row) (*domain.Person, error) {
	var (
		personID    int
		name        string
		email       string
		dateOfBirth sql.NullTime
		cpf         string
		city        string
		state       string
		telephone   sql.NullString
		address     sql.NullString
		createdAt   sql.NullTime
		updatedAt   sql.NullTime
	)

	err := row.Scan(
		&personID,
		&name,
		&email,
		&dateOfBirth,
		&cpf,
		&city,
		&state,
		&telephone,
		&address,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	return buildPerson(personID, name, email, dateOfBirth, cpf, city, state, telephone, address, createdAt, updatedAt)
}

// buildPerson convierte los valores escaneados a la entidad del dominio
func buildPerson(
	personID int,
	name string,
	email string,
	dateOfBirth sql.NullTime,
	cpf string,
	city string,
	state string,
	telephone sql.NullString,
	address sql.NullString,
	createdAt sql.NullTime,
	updatedAt sql.NullTime,
) (*domain.Person, error) {
	person, err := domain.NewPerson(
		&personID,
		name,
		email,
		dateOfBirth.Time,
		cpf,
		city,
		state,
		nullStringPtr(telephone),
		nullStringPtr(address),
		nullTimePtr(createdAt),
		nullTimePtr(updatedAt),
	)
	if err != nil {
		// Una fila malformada es corrupción del almacenamiento, no un error
		// del cliente: no se conserva el tipo de validación para que el
		// handler no la clasifique como 400
		return nil, fmt.Errorf("fila de persona inválida en almacenamiento: %s", err)
	}
	return person, nil
}

// Create persiste una persona nueva. El ID y los timestamps los asigna la
// base de datos.
func (r *personRepository) Create(person *domain.Person) (*domain.Person, error) {
	query := `
		INSERT INTO person (
			name,
			email,
			date_of_birth,
			cpf,
			city,
			state,
			telephone,
			address
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + personColumns

	row := r.db.QueryRow(
		query,
		person.Name,
		person.Email,
		person.DateOfBirth,
		person.CPF,
		person.City,
		person.State,
		nullString(person.Telephone),
		nullString(person.Address),
	)

	created, err := scanPerson(row)
	if err != nil {
		return nil, translateError("error al crear persona", err)
	}

	return created, nil
}

// FindAll devuelve todas las personas en orden de inserción (el person_id
// serial crece en ese orden)
func (r *personRepository) FindAll() ([]domain.Person, error) {
	query := `SELECT ` + personColumns + ` FROM person ORDER BY person_id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error al listar personas: %w", err)
	}
	defer rows.Close()

	persons := []domain.Person{}
	for rows.Next() {
		var (
			personID    int
			name        string
			email       string
			dateOfBirth sql.NullTime
			cpf         string
			city        string
			state       string
			telephone   sql.NullString
			address     sql.NullString
			createdAt   sql.NullTime
			updatedAt   sql.NullTime
		)

		err := rows.Scan(
			&personID,
			&name,
			&email,
			&dateOfBirth,
			&cpf,
			&city,
			&state,
			&telephone,
			&address,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error al listar personas: %w", err)
		}

		person, err := buildPerson(personID, name, email, dateOfBirth, cpf, city, state, telephone, address, createdAt, updatedAt)
		if err != nil {
			return nil, err
		}
		persons = append(persons, *person)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al listar personas: %w", err)
	}

	return persons, nil
}

// FindByID obtiene una persona por su ID; (nil, nil) cuando no existe
func (r *personRepository) FindByID(id int) (*domain.Person, error) {
	query := `SELECT ` + personColumns + ` FROM person WHERE person_id = $1`

	person, err := scanPerson(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // No existe, devolver nil sin error
	}
	if err != nil {
		return nil, fmt.Errorf("error al buscar persona: %w", err)
	}

	return person, nil
}

// Update actualiza los datos de una persona existente
func (r *personRepository) Update(id int, person *domain.Person) (*domain.Person, error) {
	query := `
		UPDATE person
		SET
			name = $1,
			email = $2,
			date_of_birth = $3,
			cpf = $4,
			city = $5,
			state = $6,
			telephone = $7,
			address = $8,
			updated_at = NOW()
		WHERE person_id = $9
		RETURNING ` + personColumns

	row := r.db.QueryRow(
		query,
		person.Name,
		person.Email,
		person.DateOfBirth,
		person.CPF,
		person.City,
		person.State,
		nullString(person.Telephone),
		nullString(person.Address),
		id,
	)

	updated, err := scanPerson(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPersonNotFound
	}
	if err != nil {
		return nil, translateError("error al actualizar persona", err)
	}

	return updated, nil
}

// Delete elimina una persona por su ID
func (r *personRepository) Delete(id int) error {
	result, err := r.db.Exec(`DELETE FROM person WHERE person_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error al eliminar persona: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar eliminación: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrPersonNotFound
	}

	return nil
}

// translateError mapea errores del driver a los errores etiquetados del
// dominio; las violaciones de unicidad (email o CPF duplicado) se vuelven
// ErrDuplicatePerson
func translateError(context string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return domain.ErrDuplicatePerson
	}
	return fmt.Errorf("%s: %w", context, err)
}

// nullString convierte *string a sql.NullString
func nullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}

// nullStringPtr convierte sql.NullString a *string
func nullStringPtr(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	return &value.String
}

// nullTimePtr convierte sql.NullTime a *time.Time
func nullTimePtr(value sql.NullTime) *time.Time {
	if !value.Valid {
		return nil
	}
	return &value.Time
}
