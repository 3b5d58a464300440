package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/deppfellow/realestate/internal/middleware"
	"github.com/deppfellow/realestate/internal/server"
	"github.com/labstack/echo/v4"
)

// healthProbe checks one dependency. A failing optional probe is reported
// but does not make the service unhealthy.
type healthProbe struct {
	name     string
	optional bool
	ping     func(ctx context.Context) error
}

// HealthHandler answers GET /status for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
	probes []healthProbe
}

// NewHealthHandler probes the database, and redis when it is configured,
// subject to observability.health_checks.
func NewHealthHandler(s *server.Server) *HealthHandler {
	h := &HealthHandler{Handler: NewHandler(s)}

	obs := s.Config.Observability
	if obs.CheckEnabled("database") && s.DB != nil {
		h.probes = append(h.probes, healthProbe{name: "database", ping: s.DB.Ping})
	}
	if obs.CheckEnabled("redis") && s.Redis != nil {
		h.probes = append(h.probes, healthProbe{
			name:     "redis",
			optional: true,
			ping: func(ctx context.Context) error {
				return s.Redis.Ping(ctx).Err()
			},
		})
	}

	return h
}

// CheckHealth returns 200 when every required probe passes and 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := make(map[string]interface{}, len(h.probes))
	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	isHealthy := true
	for _, probe := range h.probes {
		ctx, cancel := context.WithTimeout(c.Request().Context(), h.server.Config.Observability.HealthChecks.Timeout)
		probeStart := time.Now()
		err := probe.ping(ctx)
		elapsed := time.Since(probeStart)
		cancel()

		if err != nil {
			checks[probe.name] = map[string]interface{}{
				"status":        "unhealthy",
				"response_time": elapsed.String(),
				"error":         err.Error(),
			}
			if !probe.optional {
				isHealthy = false
			}

			logger.Error().
				Err(err).
				Str("check", probe.name).
				Dur("response_time", elapsed).
				Msg("health check failed")

			if app := h.server.LoggerService.GetApplication(); app != nil {
				app.RecordCustomEvent("HealthCheckError", map[string]interface{}{
					"check_type":       probe.name,
					"operation":        "health_check",
					"error_type":       probe.name + "_unhealthy",
					"response_time_ms": elapsed.Milliseconds(),
					"error_message":    err.Error(),
				})
			}
			continue
		}

		checks[probe.name] = map[string]interface{}{
			"status":        "healthy",
			"response_time": elapsed.String(),
		}
	}

	if !isHealthy {
		response["status"] = "unhealthy"
		logger.Warn().Dur("total_duration", time.Since(start)).Msg("service unhealthy")
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().Dur("total_duration", time.Since(start)).Msg("health check passed")
	return c.JSON(http.StatusOK, response)
}
