package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/photoclub/membership-system/internal/api/handler"
	"github.com/photoclub/membership-system/internal/api/middleware"
	"github.com/photoclub/membership-system/internal/core/service"
	mongodb "github.com/photoclub/membership-system/internal/infrastructure/db/mongo"
	redisdb "github.com/photoclub/membership-system/internal/infrastructure/db/redis"
	"github.com/photoclub/membership-system/internal/infrastructure/http/handlers"
	"github.com/photoclub/membership-system/internal/web"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, photosDir string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = web.NewRenderer()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("membership"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	sessionStore := redisdb.NewSessionStore(rdb)
	authService := service.NewAuthService(userRepo, sessionStore, log)
	directoryService := service.NewDirectoryService(userRepo, sessionStore, log)

	authHandler := handler.NewAuthHandler(authService)
	memberHandler := handler.NewMemberHandler(photosDir)
	adminHandler := handler.NewAdminHandler(directoryService)
	pageHandler := handler.NewPageHandler(directoryService)

	// Every request resolves its session once, up front.
	e.Use(middleware.LoadSession(sessionStore, log))
	requireAdmin := middleware.RequireAdmin(userRepo, log)

	// --- Auth API ---
	e.POST("/api/login", authHandler.Login)
	e.POST("/api/register", authHandler.Register)
	e.GET("/api/logout", authHandler.Logout)

	// --- Member API ---
	// These check the session in-handler: their failure mode is a fixed
	// status response, not the login redirect the page gate produces.
	e.GET("/api/members/getUsername", memberHandler.GetUsername)
	e.GET("/api/members/randomPhoto", memberHandler.RandomPhoto)
	e.GET("/api/members/randomPhoto/:id", memberHandler.RandomPhoto)

	// --- Admin API ---
	adminAPI := e.Group("/api/admin", middleware.RequireAuthenticated, requireAdmin)
	adminAPI.GET("/grantAdmin/:userId", adminHandler.GrantAdmin)
	adminAPI.GET("/revokeAdmin/:userId", adminHandler.RevokeAdmin)

	// --- Pages ---
	e.GET("/", pageHandler.Index)
	e.GET("/login", pageHandler.LoginPage)
	e.GET("/register", pageHandler.RegisterPage)
	e.GET("/members", pageHandler.MembersPage, middleware.RequireAuthenticated)
	e.GET("/admin", pageHandler.AdminPage, middleware.RequireAuthenticated, requireAdmin)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	e.RouteNotFound("/*", pageHandler.NotFound)

	return e
}
