package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/deskware/helpdesk-system/internal/api/handler"
	"github.com/deskware/helpdesk-system/internal/api/middleware"
	"github.com/deskware/helpdesk-system/internal/auth"
	"github.com/deskware/helpdesk-system/internal/core/domain"
	"github.com/deskware/helpdesk-system/internal/core/ports"
)

// Deps carries everything the router needs to wire routes.
type Deps struct {
	Issuer        *auth.Issuer
	AuthService   ports.AuthService
	RoleService   ports.RoleService
	TicketService ports.TicketService
	Mongo         *mongo.Database
	Redis         *redis.Client
	Logger        zerolog.Logger
}

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echoprometheus.NewMiddleware("helpdesk"))

	// --- Health probes and operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	authHandler := handler.NewAuthHandler(deps.AuthService)
	ticketHandler := handler.NewTicketHandler(deps.TicketService)
	adminHandler := handler.NewAdminHandler(deps.RoleService, deps.TicketService)

	authenticated := middleware.Auth(deps.Issuer)
	agentOrAdmin := middleware.RequireRoles(domain.RoleSupportAgent, domain.RoleAdmin)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)

	api := e.Group("/api")

	// --- Public auth routes ---
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// --- Self-service profile ---
	api.GET("/auth/profile", authHandler.Profile, authenticated)
	api.PUT("/auth/profile", authHandler.UpdateProfile, authenticated)

	// --- Tickets ---
	tickets := api.Group("/tickets", authenticated)
	tickets.GET("", ticketHandler.List)
	tickets.POST("", ticketHandler.Create)
	tickets.GET("/all", ticketHandler.ListAll, agentOrAdmin)
	tickets.GET("/:id", ticketHandler.Get)
	tickets.PUT("/:id", ticketHandler.Update)
	tickets.POST("/:id/responses", ticketHandler.AddResponse, agentOrAdmin)

	// --- Admin workflow ---
	admin := api.Group("/admin", authenticated, adminOnly)
	admin.GET("/role-requests", adminHandler.ListRoleRequests)
	admin.PUT("/role-requests/:id", adminHandler.ResolveRoleRequest)
	admin.GET("/users", adminHandler.ListUsers)
	admin.PUT("/users/:id/role", adminHandler.OverrideUserRole)
	admin.PUT("/tickets/:id/assign", adminHandler.AssignTicket)

	return e
}
