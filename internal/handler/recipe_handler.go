package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pedroescher01/gestorpro-premium-sub001/internal/model"
	"github.com/pedroescher01/gestorpro-premium-sub001/internal/recipe"
	"github.com/pedroescher01/gestorpro-premium-sub001/pkg/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// LineRequest is one requested recipe line
type LineRequest struct {
	InputID  string          `json:"input_id"`
	Quantity decimal.Decimal `json:"quantity"`
}

// RecipeRequest defines the body for recipe creation/replacement
type RecipeRequest struct {
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	YieldQuantity int           `json:"yield_quantity"`
	Lines         []LineRequest `json:"lines"`
}

// ListInputs returns the input catalog
func (h *Handler) ListInputs(c echo.Context) error {
	log := logger.FromEcho(c)

	inputs, err := h.inputs.List(c.Request().Context())
	if err != nil {
		log.Error("Failed to list inputs", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve inputs"})
	}
	return c.JSON(http.StatusOK, inputs)
}

// ListRecipes handles retrieving recipes with optional text filter and sort
func (h *Handler) ListRecipes(c echo.Context) error {
	log := logger.FromEcho(c)
	filter := c.QueryParam("q")
	order := recipe.ParseSortOrder(c.QueryParam("sort"))

	recipes, err := h.recipes.List(c.Request().Context(), filter, order)
	if err != nil {
		return respondError(c, log, "Failed to retrieve recipes", err)
	}

	log.Debug("Recipes retrieved",
		zap.String("filter", filter),
		zap.String("sort", string(order)),
		zap.Int("count", len(recipes)))
	return c.JSON(http.StatusOK, recipes)
}

// GetRecipe handles retrieving a single recipe by ID
func (h *Handler) GetRecipe(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	r, err := h.recipes.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, log.With(zap.String("recipe_id", id)), "Failed to retrieve recipe", err)
	}
	return c.JSON(http.StatusOK, r)
}

// GetRecipeCost prices a recipe at current input costs
func (h *Handler) GetRecipeCost(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	costing, err := h.recipes.Costing(c.Request().Context(), id)
	if err != nil {
		return respondError(c, log.With(zap.String("recipe_id", id)), "Failed to price recipe", err)
	}
	if len(costing.Missing) > 0 {
		log.Warn("Recipe references inputs missing from the catalog",
			zap.String("recipe_id", id),
			zap.Strings("input_ids", costing.Missing))
	}
	return c.JSON(http.StatusOK, costing)
}

// CreateRecipe composes and stores a new recipe
func (h *Handler) CreateRecipe(c echo.Context) error {
	log := logger.FromEcho(c)

	var req RecipeRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	saved, err := h.compose(c, &recipe.Draft{}, req)
	if err != nil {
		h.metrics.RecordRecipeOperation("create", "error")
		return respondError(c, log, "Failed to create recipe", err)
	}

	h.metrics.RecordRecipeOperation("create", "ok")
	log.Info("Recipe created",
		zap.String("recipe_id", saved.ID),
		zap.String("name", saved.Name),
		zap.Int("lines", len(saved.Lines)))
	return c.JSON(http.StatusCreated, saved)
}

// UpdateRecipe replaces the full line set of an existing recipe
func (h *Handler) UpdateRecipe(c echo.Context) error {
	id := c.Param("id")
	log := logger.FromEcho(c).With(zap.String("recipe_id", id))

	var req RecipeRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	saved, err := h.compose(c, &recipe.Draft{ID: id}, req)
	if err != nil {
		h.metrics.RecordRecipeOperation("update", "error")
		return respondError(c, log, "Failed to update recipe", err)
	}

	h.metrics.RecordRecipeOperation("update", "ok")
	log.Info("Recipe updated",
		zap.String("name", saved.Name),
		zap.Int("lines", len(saved.Lines)))
	return c.JSON(http.StatusOK, saved)
}

// RemoveRecipeLine drops the line at :index from a stored recipe. An index
// out of range leaves the lines untouched; removing the last line is rejected.
func (h *Handler) RemoveRecipeLine(c echo.Context) error {
	id := c.Param("id")
	log := logger.FromEcho(c).With(zap.String("recipe_id", id))

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		log.Warn("Invalid line index", zap.String("index", c.Param("index")))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid line index", "field": "index"})
	}

	ctx := c.Request().Context()
	existing, err := h.recipes.Get(ctx, id)
	if err != nil {
		return respondError(c, log, "Failed to update recipe", err)
	}

	d := recipe.DraftFrom(existing)
	d.RemoveLine(index)
	saved, err := h.recipes.Replace(ctx, id, d)
	if err != nil {
		h.metrics.RecordRecipeOperation("remove_line", "error")
		return respondError(c, log, "Failed to update recipe", err)
	}

	h.metrics.RecordRecipeOperation("remove_line", "ok")
	log.Info("Recipe line removed",
		zap.Int("index", index),
		zap.Int("lines", len(saved.Lines)))
	return c.JSON(http.StatusOK, saved)
}

// DeleteRecipe removes a recipe. Deleting an unknown id succeeds.
func (h *Handler) DeleteRecipe(c echo.Context) error {
	log := logger.FromEcho(c).With(zap.String("recipe_id", c.Param("id")))

	if err := h.recipes.Delete(c.Request().Context(), c.Param("id")); err != nil {
		h.metrics.RecordRecipeOperation("delete", "error")
		return respondError(c, log, "Failed to delete recipe", err)
	}

	h.metrics.RecordRecipeOperation("delete", "ok")
	log.Info("Recipe deleted")
	return c.NoContent(http.StatusNoContent)
}

// compose fills d from req and stores it. A draft carrying an id must
// replace an existing recipe.
func (h *Handler) compose(c echo.Context, d *recipe.Draft, req RecipeRequest) (model.Recipe, error) {
	ctx := c.Request().Context()
	d.Name = req.Name
	d.Description = req.Description
	d.YieldQuantity = req.YieldQuantity

	specs := make([]recipe.LineSpec, len(req.Lines))
	for i, l := range req.Lines {
		specs[i] = recipe.LineSpec{InputID: l.InputID, Quantity: l.Quantity}
	}
	if err := h.recipes.AddLines(ctx, d, specs...); err != nil {
		return model.Recipe{}, err
	}

	if d.ID != "" {
		return h.recipes.Replace(ctx, d.ID, d)
	}
	return h.recipes.Save(ctx, d)
}
