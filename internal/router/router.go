// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/deppfellow/realestate/internal/handler"
	"github.com/deppfellow/realestate/internal/middleware"
	"github.com/deppfellow/realestate/internal/server"
	"github.com/labstack/echo/v4"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// Order matters: tracing and the request id must exist before the
	// context logger is derived, and the logger before the request log.
	// The limiter sits behind the request log so rejections are logged.
	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.RateLimit.Limiter(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)

	v1 := router.Group("/api/v1")
	registerUserRoutes(v1, h)
	registerAgencyRoutes(v1, h)
	registerPropertyRoutes(v1, h)
	registerListingRoutes(v1, h)
	registerMarketRoutes(v1, h)
	registerActivityRoutes(v1, h)
	registerComparisonRoutes(v1, h)

	return router
}
