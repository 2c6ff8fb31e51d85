package http

import "github.com/gofiber/fiber/v2"

// RegisterPersonRoutes registra las rutas de personas bajo el router dado
func RegisterPersonRoutes(router fiber.Router, handler *PersonHandler) {
	people := router.Group("/people")
	people.Post("/", handler.CreatePerson)
	people.Get("/", handler.GetAllPersons)
	people.Get("/:id", handler.GetPersonByID)
	people.Put("/:id", handler.UpdatePerson)
	people.Delete("/:id", handler.DeletePerson)
}
