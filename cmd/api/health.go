package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"mader-backend/internal/infrastructure/database"
	"mader-backend/pkg/container"
)

const healthTimeout = 2 * time.Second

type healthChecker interface {
	HealthCheck(ctx context.Context) error
}

type databaseHealth interface {
	healthChecker
	Stats() (*database.PoolStats, error)
}

// redisCheck returns nil when login throttling runs without redis
func redisCheck(c *container.Container) healthChecker {
	if c.Redis == nil {
		return nil
	}
	return c.Redis
}

// healthHandler answers GET /health. Only the database decides the status
// code; redis is optional and reported for information.
func healthHandler(db databaseHealth, redis healthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		health := gin.H{"status": "ok", "database": "ok"}
		statusCode := http.StatusOK

		if err := db.HealthCheck(ctx); err != nil {
			health["status"] = "degraded"
			health["database"] = "unavailable"
			statusCode = http.StatusServiceUnavailable
		} else if stats, err := db.Stats(); err == nil {
			health["pool"] = stats
		}

		switch {
		case redis == nil:
			health["redis"] = "disabled"
		case redis.HealthCheck(ctx) != nil:
			health["redis"] = "unavailable"
		default:
			health["redis"] = "ok"
		}

		c.JSON(statusCode, health)
	}
}
