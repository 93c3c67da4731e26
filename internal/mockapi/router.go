// Package mockapi wires the development fixture server that stands in for
// the remote admin API: the same routes, payloads, and error envelope the
// dashboard expects in production, backed by in-memory state.
package mockapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/majadash/admin-console/internal/mockapi/handler"
	"github.com/majadash/admin-console/internal/mockapi/middleware"
	"github.com/majadash/admin-console/internal/mockapi/store"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(s *store.Store, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("maja_mockapi"))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(s, jwtSecret, 24*time.Hour)
	productHandler := handler.NewProductHandler(s)
	userHandler := handler.NewUserHandler(s)
	authMiddleware := middleware.Auth(jwtSecret)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)

	// --- Products: any authenticated operator ---
	products := e.Group("/products", authMiddleware)
	products.GET("", productHandler.List)
	products.POST("", productHandler.Create)
	products.PATCH("/:id", productHandler.Update)
	products.DELETE("/:id", productHandler.Delete)

	// --- Users: admin only ---
	users := e.Group("/users", authMiddleware, middleware.RBAC("admin"))
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.PATCH("/:id", userHandler.Update)
	users.PATCH("/:id/status", userHandler.SetStatus)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	return e
}
