package http

import (
	"todo-api/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// Options struct
type Options struct {
	Debug       bool
	MaxPageSize int
}

// NewApp creates the fiber app with the error handler and the global
// middleware installed. Routes are added by RegisterRoutes.
func NewApp(opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "todo-api",
		ErrorHandler: ErrorHandler,
	})
	app.Use(requestid.New(requestid.Config{
		Header:     logger.CorrelationIDHeader,
		Generator:  uuid.NewString,
		ContextKey: logger.CorrelationIDKey,
	}))
	app.Use(AccessLog())
	app.Use(recover.New(recover.Config{
		EnableStackTrace: opts.Debug,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, " + logger.CorrelationIDHeader,
		ExposeHeaders: "Location, " + logger.CorrelationIDHeader + ", " + HeaderPerPage + ", " + HeaderCurrentPage + ", " + HeaderTotalPages + ", " + HeaderTotalEntries,
	}))
	app.Use(helmet.New())
	app.Use(compress.New())
	return app
}

// RegisterRoutes mounts the todo routes and, last, the not-found handler.
// Anything registered on app after this call is unreachable.
func RegisterRoutes(app *fiber.App, hdl *HTTPHandler, opts Options) {
	app.Get("/", hdl.Root)
	app.Get("/ping", hdl.Ping)
	app.Get("/health", hdl.HealthCheck)

	v1 := app.Group("/api/v1")
	{
		v1.Get("/todo", PaginationParams(opts.MaxPageSize), hdl.ListTodos)
		v1.Get("/todo/:id", hdl.GetTodo)
		v1.Post("/todo", hdl.CreateTodo)
		v1.Put("/todo", hdl.UpdateTodo)
		v1.Delete("/todo/:id", hdl.DeleteTodo)
	}

	app.Use(NotFound)
}
