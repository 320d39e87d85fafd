package recipes

import (
	"errors"

	"pantry-manager/core/logger"
	"pantry-manager/core/session"
	"pantry-manager/core/utils"
	"pantry-manager/feature/recipes/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for recipes.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the recipe routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/recipes")
	group.Post("/", h.HandleCreate)
	group.Get("/", h.HandleList)
	group.Get("/:id", h.HandleGet)
	group.Post("/:id/favorite", h.HandleToggleFavorite)
	group.Delete("/:id", h.HandleDelete)
	group.Post("/:id/make", h.HandleMake)
	group.Post("/:id/shopping-list", h.HandleShoppingList)
}

// HandleCreate stores a new recipe.
// @Summary Create Recipe
// @Description Create a recipe with its ingredients and preparation steps.
// @Tags recipes
// @Accept json
// @Produce json
// @Param request body models.CreateRequest true "Recipe"
// @Success 201 {object} models.Recipe "Created"
// @Failure 422 {object} map[string]string "Validation failed"
// @Router /recipes [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	sess, _ := session.FromCtx(c)
	l := logger.WithRayID(h.service.logger, c)

	var req models.CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	recipe, err := h.service.Create(c.Context(), sess, req)
	switch {
	case errors.Is(err, ErrInvalidRecipe):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		l.Error("Recipe create failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create recipe"})
	}

	return c.Status(fiber.StatusCreated).JSON(recipe)
}

// HandleList returns the owner's recipes.
// @Summary List Recipes
// @Description List the caller's recipes. The search filter matches recipe name, category and ingredient names.
// @Tags recipes
// @Accept json
// @Produce json
// @Param search query string false "Search over name, category and ingredients"
// @Param category query string false "Category filter"
// @Param difficulty query string false "Difficulty filter"
// @Success 200 {array} models.Recipe "Recipes"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /recipes [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	sess, _ := session.FromCtx(c)
	l := logger.WithRayID(h.service.logger, c)

	recipes, err := h.service.List(c.Context(), sess,
		c.Query("search"), c.Query("category"), c.Query("difficulty"))
	if err != nil {
		l.Error("Recipe list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list recipes"})
	}
	return c.JSON(recipes)
}

// HandleGet returns one recipe with its ingredients and steps.
// @Summary Get Recipe
// @Description Get one of the caller's recipes.
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} models.Recipe "Recipe"
// @Failure 404 {object} map[string]string "Not found"
// @Router /recipes/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	sess, _ := session.FromCtx(c)
	l := logger.WithRayID(h.service.logger, c)

	id := utils.ToInt(c.Params("id"))
	if id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid recipe id"})
	}

	recipe, err := h.service.Get(c.Context(), sess, uint(id))
	switch {
	case errors.Is(err, ErrRecipeNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		l.Error("Recipe get failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load recipe"})
	}

	return c.JSON(recipe)
}

// HandleToggleFavorite flips the recipe's favorite flag.
// @Summary Toggle Favorite
// @Description Toggle the favorite flag on one of the caller's recipes.
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} map[string]bool "New favorite state"
// @Failure 404 {object} map[string]string "Not found"
// @Router /recipes/{id}/favorite [post]
func (h *Handler) HandleToggleFavorite(c *fiber.Ctx) error {
	sess, _ := session.FromCtx(c)
	l := logger.WithRayID(h.service.logger, c)

	id := utils.ToInt(c.Params("id"))
	if id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid recipe id"})
	}

	favorite, err := h.service.ToggleFavorite(c.Context(), sess, uint(id))
	switch {
	case errors.Is(err, ErrRecipeNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		l.Error("Favorite toggle failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to toggle favorite"})
	}

	return c.JSON(fiber.Map{"favorite": favorite})
}

// HandleDelete removes a recipe.
// @Summary Delete Recipe
// @Description Delete one of the caller's recipes.
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 404 {object} map[string]string "Not found"
// @Router /recipes/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	sess, _ := session.FromCtx(c)
	l := logger.WithRayID(h.service.logger, c)

	id := utils.ToInt(c.Params("id"))
	if id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid recipe id"})
	}

	err := h.service.Delete(c.Context(), sess, uint(id))
	switch {
	case errors.Is(err, ErrRecipeNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		l.Error("Recipe delete failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete recipe"})
	}

	return c.JSON(fiber.Map{"status": "deleted"})
}

// HandleMake runs the consumption planner and applies the deductions.
// @Summary Make Recipe
// @Description Check the recipe against the inventory and, when every ingredient is covered and fresh, remove the used amounts. A blocked recipe returns every missing and expired ingredient in one report.
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} map[string]string "Recipe made"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 422 {object} map[string]interface{} "Recipe blocked"
// @Router /recipes/{id}/make [post]
func (h *Handler) HandleMake(c *fiber.Ctx) error {
	sess, _ := session.FromCtx(c)
	l := logger.WithRayID(h.service.logger, c)

	id := utils.ToInt(c.Params("id"))
	if id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid recipe id"})
	}

	plan, err := h.service.MakeRecipe(c.Context(), sess, uint(id))
	switch {
	case errors.Is(err, ErrRecipeNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		l.Error("Recipe make failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to make recipe"})
	}

	if !plan.OK() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"report":  plan.Report(),
			"missing": plan.Missing,
			"expired": plan.Expired,
		})
	}
	return c.JSON(fiber.Map{"report": plan.Report()})
}

// HandleShoppingList merges the recipe's shortfall into the shopping list.
// @Summary Add Shortfall To Shopping List
// @Description Compute, per ingredient, the amount the inventory doesn't cover and merge it into the shopping list. Repeating the call merges the same amounts again.
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} map[string]interface{} "Merge result"
// @Failure 404 {object} map[string]string "Not found"
// @Router /recipes/{id}/shopping-list [post]
func (h *Handler) HandleShoppingList(c *fiber.Ctx) error {
	sess, _ := session.FromCtx(c)
	l := logger.WithRayID(h.service.logger, c)

	id := utils.ToInt(c.Params("id"))
	if id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid recipe id"})
	}

	merge, err := h.service.AddShortfallToShoppingList(c.Context(), sess, uint(id))
	switch {
	case errors.Is(err, ErrRecipeNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		l.Error("Shortfall merge failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update shopping list"})
	}

	return c.JSON(fiber.Map{"report": merge.Report(), "added": merge.Added})
}
