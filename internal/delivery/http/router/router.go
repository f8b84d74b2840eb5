// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"lexsite/internal/delivery/http/middleware"
	"lexsite/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler     *handler.AccountHandler
	PublicationHandler *handler.PublicationHandler
	CaseHandler        *handler.CaseHandler
	SiteHandler        *handler.SiteHandler
	AdminHandler       *handler.AdminHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler     *handler.AccountHandler
	publicationHandler *handler.PublicationHandler
	caseHandler        *handler.CaseHandler
	siteHandler        *handler.SiteHandler
	adminHandler       *handler.AdminHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:     params.AccountHandler,
		publicationHandler: params.PublicationHandler,
		caseHandler:        params.CaseHandler,
		siteHandler:        params.SiteHandler,
		adminHandler:       params.AdminHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public site surface, no authentication
	e.GET("/site/:slug", r.siteHandler.GetSitePage)
	e.GET("/api/site/:slug", r.siteHandler.GetSiteData)

	// Owner dashboard routes
	meGroup := e.Group("/api/me")
	meGroup.Use(r.authMiddleware.Authenticate)
	{
		meGroup.GET("", r.accountHandler.GetMe)
		meGroup.PATCH("", r.accountHandler.UpdateMe)
		meGroup.GET("/overview", r.accountHandler.GetOverview)

		meGroup.PUT("/site", r.publicationHandler.UpsertSite)
		meGroup.GET("/site/qr", r.publicationHandler.GetSiteQR)

		meGroup.POST("/cases", r.caseHandler.CreateCase)
		meGroup.GET("/cases", r.caseHandler.ListCases)
		meGroup.DELETE("/cases/:id", r.caseHandler.DeleteCase)
		meGroup.GET("/specialties", r.caseHandler.ListSpecialties)
	}

	// Privileged directory, allowlisted emails only
	adminGroup := e.Group("/api/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.GET("/accounts", r.adminHandler.ListAccounts)
	}
}
