package main

import (
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/antoniopedrodev/people-manager/docs"
	"github.com/antoniopedrodev/people-manager/internal/application"
	"github.com/antoniopedrodev/people-manager/internal/config"
	"github.com/antoniopedrodev/people-manager/internal/infrastructure/repository"
	handlers "github.com/antoniopedrodev/people-manager/internal/interfaces/http"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

// @title						People Manager API
// @version					1.0.0
// @description				API documentation for the People Manager application
// @host						localhost:3000
// @BasePath					/api
// @schemes					http
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.GetDBConnString())
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Error pinging database: %v", err)
	}

	app := fiber.New()

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string {
			return uuid.NewString()
		},
	}))
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
		ExposeHeaders:    "Content-Length",
		MaxAge:           86400,
	}))

	// Personas
	personRepo := repository.NewPersonRepository(db)
	personService := application.NewPersonService(personRepo)
	personHandler := handlers.NewPersonHandler(personService)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Documentación Swagger
	app.Get("/documentation/*", swagger.HandlerDefault)

	api := app.Group("/api")
	handlers.RegisterPersonRoutes(api, personHandler)

	// Apagado ordenado: cerrar el servidor antes de soltar el pool de la BD
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		if err := app.Shutdown(); err != nil {
			log.Printf("Error shutting down server: %v", err)
		}
	}()

	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
