package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pedroescher01/gestorpro-premium-sub001/internal/inventory"
	"github.com/pedroescher01/gestorpro-premium-sub001/internal/model"
	"github.com/pedroescher01/gestorpro-premium-sub001/pkg/logger"
	"go.uber.org/zap"
)

// ListInventory returns every product with its stock status and value
func (h *Handler) ListInventory(c echo.Context) error {
	log := logger.FromEcho(c)

	products, err := h.products.List(c.Request().Context())
	if err != nil {
		log.Error("Failed to list products", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve inventory"})
	}

	assessments := inventory.AssessAll(products)
	h.metrics.UpdateInventory(assessments)

	if status := c.QueryParam("status"); status != "" {
		filtered := assessments[:0]
		for _, a := range assessments {
			if string(a.Status) == status {
				filtered = append(filtered, a)
			}
		}
		assessments = filtered
	}
	return c.JSON(http.StatusOK, assessments)
}

// PatchProduct adjusts stock or price. An unknown id is a no-op answered with 204.
func (h *Handler) PatchProduct(c echo.Context) error {
	id := c.Param("id")
	log := logger.FromEcho(c).With(zap.String("product_id", id))

	var patch model.ProductPatch
	if err := c.Bind(&patch); err != nil {
		log.Warn("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if err := patch.Validate(); err != nil {
		log.Warn("Rejected product patch", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx := c.Request().Context()
	matched, err := h.products.Update(ctx, id, patch)
	if err != nil {
		log.Error("Failed to update product", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update product"})
	}
	if !matched {
		log.Warn("Product not found for update")
		return c.NoContent(http.StatusNoContent)
	}

	p, found, err := h.products.Get(ctx, id)
	if err != nil {
		log.Error("Failed to reload product", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve inventory"})
	}
	if !found {
		return c.NoContent(http.StatusNoContent)
	}

	a := inventory.Assess(p)
	log.Info("Product updated",
		zap.Int("stock_quantity", a.StockQuantity),
		zap.String("status", string(a.Status)))
	return c.JSON(http.StatusOK, a)
}
