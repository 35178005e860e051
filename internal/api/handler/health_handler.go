package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandler serves the liveness probe.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Liveness reports that the process is alive.
//
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// HealthDependenciesHandler serves the readiness probe by pinging the
// backing stores. Either client may be nil when the backend is not
// configured; nil dependencies are skipped.
type HealthDependenciesHandler struct {
	mongoClient *mongo.Client
	redisClient *redis.Client
}

func NewHealthDependenciesHandler(mongoClient *mongo.Client, redisClient *redis.Client) *HealthDependenciesHandler {
	return &HealthDependenciesHandler{mongoClient: mongoClient, redisClient: redisClient}
}

// Readiness reports whether the backing stores are reachable.
//
// @Summary      Readiness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /health/ready [get]
func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	ctx := c.Request().Context()

	checks := map[string]string{}
	ready := true

	if h.redisClient != nil {
		status := "ok"
		pingCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
		if err := h.redisClient.Ping(pingCtx).Err(); err != nil {
			status = "unreachable"
			ready = false
		}
		cancel()
		checks["redis"] = status
	}

	if h.mongoClient != nil {
		status := "ok"
		pingCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
		if err := h.mongoClient.Ping(pingCtx, nil); err != nil {
			status = "unreachable"
			ready = false
		}
		cancel()
		checks["mongo"] = status
	}

	if !ready {
		return c.JSON(http.StatusServiceUnavailable, checks)
	}
	return c.JSON(http.StatusOK, checks)
}
