package routes

import (
	"venturehive/internal/delivery/http/handler"
	"venturehive/internal/delivery/http/middleware"
	v1 "venturehive/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	Health    *handler.HealthHandler
	V1        v1.Handlers
	AuthMW    *middleware.AuthMiddleware
	AccessLog *middleware.AccessLogMiddleware
	ErrorMW   *middleware.ErrorMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	if r.ErrorMW != nil {
		app.Use(r.ErrorMW.Middleware())
	}
	if r.AccessLog != nil {
		app.Use(r.AccessLog.Middleware())
	}

	if r.Health != nil {
		r.Health.RegisterRoutes(app)
	}

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.V1, r.AuthMW)
}
