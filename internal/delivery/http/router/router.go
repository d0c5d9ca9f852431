// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"carvalue/internal/delivery/http/middleware"
	"carvalue/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	ReportHandler     *handler.ReportHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	reportHandler     *handler.ReportHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		reportHandler:     params.ReportHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint, outside the session machinery
	e.GET("/health", handler.HealthCheck)

	// Every other route carries a session
	authGroup := e.Group("/auth", r.sessionMiddleware.LoadSession)
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/signin", r.authHandler.Signin)
		authGroup.POST("/signout", r.authHandler.Signout)
		authGroup.GET("/whoami", r.authHandler.WhoAmI, r.sessionMiddleware.Authenticate)

		// User lookups. The static /whoami route above wins over /:id.
		authGroup.GET("", r.authHandler.FindUsers)
		authGroup.GET("/:id", r.authHandler.FindUser)
	}

	reportGroup := e.Group("/reports", r.sessionMiddleware.LoadSession)
	{
		// The estimate lookup is public
		reportGroup.GET("", r.reportHandler.GetEstimate)

		// Submitting requires a signed-in user
		reportGroup.POST("", r.reportHandler.CreateReport, r.sessionMiddleware.Authenticate)

		// Ruling requires an admin
		reportGroup.PATCH("/:id", r.reportHandler.ChangeApproval,
			r.sessionMiddleware.Authenticate, r.sessionMiddleware.RequireAdmin)
	}
}
