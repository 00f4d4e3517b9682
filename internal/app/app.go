// Package app assembles the HTTP application: GraphQL, document content,
// health and metrics endpoints on a single fiber app.
package app

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"

	"github.com/labtrack/labtrack/internal/api/middleware"
	"github.com/labtrack/labtrack/internal/auth"
	"github.com/labtrack/labtrack/internal/config"
	"github.com/labtrack/labtrack/internal/graph"
	"github.com/labtrack/labtrack/internal/logger"
	"github.com/labtrack/labtrack/internal/metrics"
	"github.com/labtrack/labtrack/internal/services"
	"github.com/labtrack/labtrack/pkg/api/v1/handlers"
	"github.com/labtrack/labtrack/pkg/api/v1/routes"
)

// Deps are the collaborators the application is built from
type Deps struct {
	DB       *gorm.DB
	Services *services.Services
	// Verifier validates bearer tokens. Without one every request is anonymous.
	Verifier auth.Verifier
	// Metrics is optional; /metrics is only mounted when set
	Metrics     *metrics.Metrics
	Server      config.ServerConfig
	RequireAuth bool
}

// NewApp builds the fiber application serving every route
func NewApp(d Deps) (*fiber.App, error) {
	if d.DB == nil || d.Services == nil {
		return nil, errors.New("app: database and services are required")
	}

	schema, err := graph.NewSchema(d.Services, graph.Options{
		RequireAuth: d.RequireAuth,
		MaxDepth:    d.Server.MaxQueryDepth,
		Metrics:     d.Metrics,
	})
	if err != nil {
		return nil, err
	}

	bodyLimit := d.Server.BodyLimitMB << 20
	if bodyLimit <= 0 {
		bodyLimit = fiber.DefaultBodyLimit
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          errorHandler,
		BodyLimit:             bodyLimit,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(middleware.Logger())
	if d.Metrics != nil {
		app.Use(d.Metrics.Middleware())
	}

	api := handlers.NewAPIHandler(d.Services.Documents, d.DB)
	h := routes.Handlers{
		Health:   handlers.NewHealthHandler(api),
		Document: handlers.NewDocumentHandler(api),
		GraphQL: adaptor.HTTPHandler(graph.NewHandler(schema, graph.HandlerOptions{
			Verifier:     d.Verifier,
			CORSOrigins:  d.Server.CORSOrigins,
			Metrics:      d.Metrics,
			MaxBodyBytes: int64(bodyLimit),
		})),
	}
	if d.Metrics != nil {
		h.Metrics = d.Metrics.Handler()
	}
	if d.Verifier != nil {
		h.Auth = auth.FiberMiddleware(d.Verifier, d.RequireAuth)
	}
	routes.RegisterRoutes(app, h)

	return app, nil
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	msg := err.Error()
	if code == fiber.StatusInternalServerError {
		logger.Errorf("unhandled error on %s %s: %v", c.Method(), c.Path(), err)
		msg = handlers.ErrMsgInternal
	}

	return c.Status(code).JSON(handlers.ErrorResponse{
		Error: msg,
		Code:  handlers.CodeFor(code),
	})
}
