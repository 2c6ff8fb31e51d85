package http

import (
	"errors"
	"log"
	"strconv"

	"github.com/antoniopedrodev/people-manager/internal/application"
	"github.com/antoniopedrodev/people-manager/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type PersonHandler struct {
	service  *application.PersonService
	validate *validator.Validate
}

// PersonRequest representa el cuerpo de las peticiones de creación y
// actualización de personas. Los campos obligatorios del esquema se validan
// aquí, antes de llegar al servicio.
type PersonRequest struct {
	Name        string  `json:"name" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	DateOfBirth string  `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	CPF         string  `json:"cpf" validate:"required"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	Address     *string `json:"address,omitempty"`
	Telephone   *string `json:"telephone,omitempty"`
}

// ErrorResponse representa el cuerpo JSON de las respuestas de error
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewPersonHandler crea una nueva instancia del handler de personas
func NewPersonHandler(service *application.PersonService) *PersonHandler {
	return &PersonHandler{
		service:  service,
		validate: validator.New(),
	}
}

// toInput convierte el request validado a los datos de entrada del servicio
func (r *PersonRequest) toInput() application.PersonInput {
	return application.PersonInput{
		Name:        r.Name,
		Email:       r.Email,
		DateOfBirth: r.DateOfBirth,
		CPF:         r.CPF,
		City:        r.City,
		State:       r.State,
		Telephone:   r.Telephone,
		Address:     r.Address,
	}
}

// CreatePerson crea una nueva persona
//
//	@Summary	Create a new person
//	@Tags		People
//	@Accept		json
//	@Produce	json
//	@Param		person	body		PersonRequest	true	"Person data"
//	@Success	201		{object}	application.PersonDTO
//	@Failure	400		{object}	ErrorResponse
//	@Failure	500		{object}	ErrorResponse
//	@Router		/people [post]
func (h *PersonHandler) CreatePerson(c *fiber.Ctx) error {
	req, err := h.parseRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: err.Error(),
		})
	}

	person, err := h.service.CreatePerson(req.toInput())
	if err != nil {
		return h.respondError(c, "Error al crear persona", err)
	}

	return c.Status(fiber.StatusCreated).JSON(application.ToPersonDTO(person))
}

// GetAllPersons obtiene todas las personas
//
//	@Summary	Get all people
//	@Tags		People
//	@Produce	json
//	@Success	200	{array}		application.PersonDTO
//	@Failure	500	{object}	ErrorResponse
//	@Router		/people [get]
func (h *PersonHandler) GetAllPersons(c *fiber.Ctx) error {
	persons, err := h.service.GetAllPersons()
	if err != nil {
		return h.respondError(c, "Error al listar personas", err)
	}

	return c.JSON(application.ToPersonDTOList(persons))
}

// GetPersonByID obtiene una persona por su ID
//
//	@Summary	Get a person by ID
//	@Tags		People
//	@Produce	json
//	@Param		id	path		int	true	"Person ID"
//	@Success	200	{object}	application.PersonDTO
//	@Failure	404	{object}	ErrorResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/people/{id} [get]
func (h *PersonHandler) GetPersonByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid person ID",
		})
	}

	person, err := h.service.GetPersonByID(id)
	if err != nil {
		return h.respondError(c, "Error al buscar persona", err)
	}

	// La ausencia no es un error del servicio; se traduce a 404 aquí
	if person == nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "Person not found",
		})
	}

	return c.JSON(application.ToPersonDTO(person))
}

// UpdatePerson actualiza los datos de una persona existente
//
//	@Summary	Update a person by ID
//	@Tags		People
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"Person ID"
//	@Param		person	body		PersonRequest	true	"Person data"
//	@Success	200		{object}	application.PersonDTO
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	500		{object}	ErrorResponse
//	@Router		/people/{id} [put]
func (h *PersonHandler) UpdatePerson(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid person ID",
		})
	}

	req, err := h.parseRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: err.Error(),
		})
	}

	person, err := h.service.UpdatePerson(id, req.toInput())
	if err != nil {
		return h.respondError(c, "Error al actualizar persona", err)
	}

	return c.JSON(application.ToPersonDTO(person))
}

// DeletePerson elimina una persona por su ID
//
//	@Summary	Delete a person by ID
//	@Tags		People
//	@Produce	json
//	@Param		id	path	int	true	"Person ID"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/people/{id} [delete]
func (h *PersonHandler) DeletePerson(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid person ID",
		})
	}

	if err := h.service.DeletePerson(id); err != nil {
		return h.respondError(c, "Error al eliminar persona", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// parseRequest parsea y valida el cuerpo de la petición
func (h *PersonHandler) parseRequest(c *fiber.Ctx) (*PersonRequest, error) {
	var req PersonRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, errors.New("Invalid request body")
	}

	if err := h.validate.Struct(&req); err != nil {
		return nil, errors.New(validationMessage(err))
	}

	return &req, nil
}

// parseID extrae el ID numérico del path
func parseID(c *fiber.Ctx) (int, error) {
	return strconv.Atoi(c.Params("id"))
}

// respondError clasifica el error y escribe la respuesta HTTP. Es el único
// punto donde los errores del servicio se traducen a códigos de estado:
// validación → 400, duplicado → 400, no encontrado → 404, el resto → 500
// con log del error inesperado.
func (h *PersonHandler) respondError(c *fiber.Ctx, operation string, err error) error {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: validationErr.Message,
		})
	case errors.Is(err, domain.ErrDuplicatePerson):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Email or CPF already exists",
		})
	case errors.Is(err, domain.ErrPersonNotFound):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "Person not found",
		})
	default:
		log.Printf("%s: %v", operation, err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Internal server error",
		})
	}
}

// validationMessage arma un mensaje legible a partir del primer error de
// validación del esquema
func validationMessage(err error) string {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return "Invalid request body"
	}

	fe := fieldErrors[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "Email must be a valid email address"
	case "datetime":
		return "DateOfBirth must be a date in format YYYY-MM-DD"
	default:
		return fe.Field() + " is invalid"
	}
}
