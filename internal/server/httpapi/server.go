// Package httpapi exposes the public HTTP interface: registration, login,
// and the token-protected task routes. Handlers never touch storage
// directly; they translate between JSON and the service layer and always
// pass the authenticated user id explicitly.
package httpapi

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"taskdeck/internal/logging"
	"taskdeck/internal/server/models"
)

// UserProvider is the authentication surface consumed by the handlers.
type UserProvider interface {
	Register(ctx context.Context, email string, password string) (*models.User, error)
	Login(ctx context.Context, email string, password string) (string, error)
}

// TaskProvider is the owner-bound task surface consumed by the handlers.
type TaskProvider interface {
	Create(ctx context.Context, ownerID string, title, description, status string) (*models.Task, error)
	List(ctx context.Context, ownerID string) ([]*models.Task, error)
	Get(ctx context.Context, ownerID string, taskID string) (*models.Task, error)
	Update(ctx context.Context, ownerID string, taskID string, title, description, status string) (*models.Task, error)
	Delete(ctx context.Context, ownerID string, taskID string) error
}

type Server struct {
	address   string
	logger    logging.Logger
	users     UserProvider
	tasks     TaskProvider
	jwtSecret []byte
}

func NewServer(addr string, l logging.Logger, us UserProvider, ts TaskProvider, secretKey string) *Server {
	return &Server{
		address:   addr,
		logger:    l.With("module", "http_server"),
		users:     us,
		tasks:     ts,
		jwtSecret: []byte(secretKey),
	}
}

// newApp builds the Fiber application with all routes registered.
// Split out from Run so tests can drive it with app.Test.
func (s *Server) newApp() *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	api := app.Group("/api")
	api.Get("/health", s.health)

	u := api.Group("/users")
	u.Post("/register", s.register)
	u.Post("/login", s.login)

	t := api.Group("/tasks", s.authMiddleware())
	t.Get("/", s.listTasks)
	t.Post("/", s.createTask)
	t.Get("/:id", s.getTask)
	t.Put("/:id", s.updateTask)
	t.Delete("/:id", s.deleteTask)

	return app
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	app := s.newApp()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		_ = app.ShutdownWithTimeout(5 * time.Second)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := app.Listen(s.address); err != nil {
		return err
	}

	return nil
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
}
