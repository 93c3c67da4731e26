package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/majadash/admin-console/internal/core/domain"
	"github.com/majadash/admin-console/internal/mockapi/metrics"
	"github.com/majadash/admin-console/internal/mockapi/store"
)

// ProductHandler serves the /products routes.
type ProductHandler struct {
	store *store.Store
}

func NewProductHandler(s *store.Store) *ProductHandler {
	return &ProductHandler{store: s}
}

func (h *ProductHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.ListProducts())
}

func (h *ProductHandler) Create(c echo.Context) error {
	var req domain.CreateProductData
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created := h.store.CreateProduct(req)
	metrics.ProductMutationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, created)
}

// Update applies a partial patch. The stock-adjustment flow sends only
// {"stock": n}; the edit form sends the full set of fields.
func (h *ProductHandler) Update(c echo.Context) error {
	var patch store.ProductPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.store.UpdateProduct(c.Param("id"), patch)
	if err != nil {
		return err
	}
	metrics.ProductMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, updated)
}

func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.store.DeleteProduct(c.Param("id")); err != nil {
		return err
	}
	metrics.ProductMutationsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
}
