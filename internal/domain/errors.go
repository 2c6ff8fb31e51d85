package domain

import "errors"

// Errores etiquetados que los adaptadores de repositorio devuelven en lugar
// de códigos propios del motor de base de datos. El handler HTTP los
// clasifica con errors.Is / errors.As; cualquier otro error cuenta como
// falla de almacenamiento.
var (
	// ErrPersonNotFound indica que el ID no corresponde a ninguna persona
	ErrPersonNotFound = errors.New("person not found")
	// ErrDuplicatePerson indica una violación de unicidad de email o CPF
	ErrDuplicatePerson = errors.New("email or cpf already exists")
)

// ValidationError indica que la construcción de la entidad falló por un
// campo obligatorio faltante
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
