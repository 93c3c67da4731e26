package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/majadash/admin-console/internal/core/domain"
	"github.com/majadash/admin-console/internal/mockapi/metrics"
	"github.com/majadash/admin-console/internal/mockapi/store"
)

// UserHandler serves the /users routes. The whole group sits behind the
// admin RBAC middleware.
type UserHandler struct {
	store *store.Store
}

func NewUserHandler(s *store.Store) *UserHandler {
	return &UserHandler{store: s}
}

func (h *UserHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.ListUsers())
}

func (h *UserHandler) Create(c echo.Context) error {
	var req domain.CreateUserData
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.store.CreateUser(req)
	if err != nil {
		return err
	}
	metrics.UserMutationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, created)
}

// Update edits an account. The payload never carries a password; password
// changes are out of this API's scope entirely.
func (h *UserHandler) Update(c echo.Context) error {
	var req domain.UpdateUserData
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.store.UpdateUser(c.Param("id"), req)
	if err != nil {
		return err
	}
	metrics.UserMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, updated)
}

type statusRequest struct {
	IsActive bool `json:"isActive"`
}

// SetStatus is the dedicated activation endpoint used by the status toggle.
func (h *UserHandler) SetStatus(c echo.Context) error {
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.store.SetUserActive(c.Param("id"), req.IsActive)
	if err != nil {
		return err
	}
	metrics.UserMutationsTotal.WithLabelValues("status").Inc()
	return c.JSON(http.StatusOK, updated)
}
