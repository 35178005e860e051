package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/niko-dev25/threadirc/internal/api/handler"
	"github.com/niko-dev25/threadirc/internal/api/middleware"
	"github.com/niko-dev25/threadirc/internal/core/domain"
	"github.com/niko-dev25/threadirc/internal/core/ports"
	"github.com/niko-dev25/threadirc/internal/core/store"
)

// Deps carries everything the router needs. Clients may be nil when the
// corresponding backend is not configured; the readiness probe skips them.
type Deps struct {
	Forum       *store.Store
	Auth        ports.AuthService
	Content     ports.ContentService
	Roles       ports.RoleService
	Audit       ports.AuditService
	JWTSecret   string
	Log         zerolog.Logger
	MongoClient *mongo.Client
	RedisClient *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("threadirc"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	channelHandler := handler.NewChannelHandler(deps.Content)
	threadHandler := handler.NewThreadHandler(deps.Content)
	roleHandler := handler.NewRoleHandler(deps.Roles)
	auditHandler := handler.NewAuditHandler(deps.Audit)

	authRequired := middleware.Auth(deps.JWTSecret)

	// --- Auth routes ---
	v1 := e.Group("/v1")
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)
	v1.GET("/auth/session", authHandler.Session, authRequired)
	v1.DELETE("/auth/session", authHandler.ClearSession, authRequired)

	// --- Forum routes ---
	v1.GET("/channels", channelHandler.List, authRequired)
	v1.POST("/channels", channelHandler.Create, authRequired)
	v1.GET("/channels/:channelID", channelHandler.Get, authRequired)
	v1.POST("/channels/:channelID/threads", threadHandler.Create, authRequired)
	v1.GET("/channels/:channelID/threads/:threadID", threadHandler.Get, authRequired)
	v1.POST("/channels/:channelID/threads/:threadID/comments", threadHandler.Comment, authRequired)
	v1.POST("/channels/:channelID/threads/:threadID/posts/:postID/vote", threadHandler.Vote, authRequired)
	v1.DELETE("/channels/:channelID/threads/:threadID/posts/:postID", threadHandler.Delete, authRequired)

	// --- Roles and members ---
	v1.GET("/roles", roleHandler.ListRoles, authRequired)
	v1.POST("/roles", roleHandler.CreateRole, authRequired)
	v1.GET("/members", roleHandler.ListMembers, authRequired)
	v1.PUT("/members/:userID/role", roleHandler.AssignRole, authRequired)

	// --- Audit trail (moderators only) ---
	v1.GET("/audit", auditHandler.Recent, authRequired,
		middleware.RequirePermission(deps.Forum, domain.PermDeleteAnyPost))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.MongoClient, deps.RedisClient)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
