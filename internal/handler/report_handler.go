package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pedroescher01/gestorpro-premium-sub001/pkg/logger"
	"go.uber.org/zap"
)

// GetSummary loads a fresh snapshot and returns the dashboard summary
func (h *Handler) GetSummary(c echo.Context) error {
	log := logger.FromEcho(c)

	summary, err := h.reports.Summary(c.Request().Context())
	if err != nil {
		log.Error("Failed to build summary", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to build summary"})
	}

	h.metrics.UpdateSummary(summary)
	log.Info("Summary computed",
		zap.Int("total_products", summary.TotalProducts),
		zap.Int("low_stock_count", summary.LowStockCount),
		zap.String("balance", summary.Balance.StringFixed(2)))
	return c.JSON(http.StatusOK, summary)
}
