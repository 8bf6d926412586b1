// Package httpapi exposes the account and reporting operations over
// HTTP/JSON using fiber. Authorization is declared per route: handlers
// registered behind requireAuth only run for requests carrying a valid
// bearer token.
package httpapi

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/dmitrijs2005/webmanager/internal/logging"
	"github.com/dmitrijs2005/webmanager/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address   string
	logger    logging.Logger
	employees *services.EmployeeService
	hosting   *services.HostingService
	jwtSecret []byte
}

func NewServer(address string, l logging.Logger, es *services.EmployeeService, hs *services.HostingService, secretKey string) *Server {
	return &Server{
		address:   address,
		logger:    l.With("module", "httpapi"),
		employees: es,
		hosting:   hs,
		jwtSecret: []byte(secretKey),
	}
}

func (s *Server) newApp() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Use(cors.New())
	app.Use(s.requestLogger())

	app.Post("/register", s.handleRegister)
	app.Post("/login", s.handleLogin)

	authRequired := s.requireAuth()
	app.Get("/users", authRequired, s.handleListUsers)
	app.Get("/users/:userId", authRequired, s.handleUserDetail)

	return app
}

func (s *Server) Run(ctx context.Context) error {
	app := s.newApp()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	return app.Listen(s.address)
}
