package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pedroescher01/gestorpro-premium-sub001/internal/model"
	"github.com/pedroescher01/gestorpro-premium-sub001/internal/recipe"
	"github.com/pedroescher01/gestorpro-premium-sub001/internal/report"
	"github.com/pedroescher01/gestorpro-premium-sub001/prometheus"
	"go.uber.org/zap"
)

// InputLister lists the input catalog
type InputLister interface {
	List(ctx context.Context) ([]model.Input, error)
}

// ProductStore lists, fetches and patches products
type ProductStore interface {
	List(ctx context.Context) ([]model.Product, error)
	Get(ctx context.Context, id string) (model.Product, bool, error)
	Update(ctx context.Context, id string, patch model.ProductPatch) (bool, error)
}

// Handler serves the recipe, inventory and report endpoints
type Handler struct {
	recipes  *recipe.Store
	inputs   InputLister
	products ProductStore
	reports  *report.Loader
	metrics  *prometheus.Metrics
}

func New(recipes *recipe.Store, inputs InputLister, products ProductStore, reports *report.Loader, metrics *prometheus.Metrics) *Handler {
	return &Handler{
		recipes:  recipes,
		inputs:   inputs,
		products: products,
		reports:  reports,
		metrics:  metrics,
	}
}

// Register mounts the API routes on g
func (h *Handler) Register(g *echo.Group) {
	g.GET("/inputs", h.ListInputs)

	g.GET("/recipes", h.ListRecipes)
	g.GET("/recipes/:id", h.GetRecipe)
	g.GET("/recipes/:id/cost", h.GetRecipeCost)
	g.POST("/recipes", h.CreateRecipe)
	g.PUT("/recipes/:id", h.UpdateRecipe)
	g.DELETE("/recipes/:id", h.DeleteRecipe)
	g.DELETE("/recipes/:id/lines/:index", h.RemoveRecipeLine)

	g.GET("/inventory", h.ListInventory)
	g.PATCH("/products/:id", h.PatchProduct)

	g.GET("/reports/summary", h.GetSummary)
}

// respondError maps store errors to HTTP responses
func respondError(c echo.Context, log *zap.Logger, msg string, err error) error {
	var ve *recipe.ValidationError
	switch {
	case errors.As(err, &ve):
		log.Warn(msg, zap.String("field", ve.Field), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": ve.Message, "field": ve.Field})
	case errors.Is(err, recipe.ErrNotFound):
		log.Warn(msg, zap.Error(err))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Recipe not found"})
	default:
		log.Error(msg, zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": msg})
	}
}
