package planner

import (
	"errors"

	"pantry-manager/core/logger"
	"pantry-manager/core/session"
	"pantry-manager/core/utils"
	"pantry-manager/feature/planner/models"
	"pantry-manager/feature/recipes"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the meal planner.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the planner routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/planner")
	group.Post("/", h.HandlePlan)
	group.Get("/", h.HandleList)
	group.Delete("/:id", h.HandleDelete)
}

// HandlePlan schedules a recipe on a date.
// @Summary Plan Recipe
// @Description Schedule one of the caller's recipes on a calendar day.
// @Tags planner
// @Accept json
// @Produce json
// @Param request body models.PlanRequest true "Plan"
// @Success 201 {object} models.PlannedRecipe "Planned"
// @Failure 404 {object} map[string]string "Recipe not found"
// @Failure 422 {object} map[string]string "Validation failed"
// @Router /planner [post]
func (h *Handler) HandlePlan(c *fiber.Ctx) error {
	sess, _ := session.FromCtx(c)
	l := logger.WithRayID(h.service.logger, c)

	var req models.PlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	entry, err := h.service.Plan(c.Context(), sess, req)
	switch {
	case errors.Is(err, ErrInvalidPlan):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, recipes.ErrRecipeNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		l.Error("Plan create failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to plan recipe"})
	}

	return c.Status(fiber.StatusCreated).JSON(models.NewView(*entry))
}

// HandleList returns the owner's planned recipes.
// @Summary List Planned Recipes
// @Description List the caller's planned recipes in date order, optionally limited to a date window.
// @Tags planner
// @Accept json
// @Produce json
// @Param from query string false "Window start (YYYY-MM-DD, inclusive)"
// @Param to query string false "Window end (YYYY-MM-DD, inclusive)"
// @Success 200 {array} models.View "Planned recipes"
// @Failure 422 {object} map[string]string "Validation failed"
// @Router /planner [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	sess, _ := session.FromCtx(c)
	l := logger.WithRayID(h.service.logger, c)

	entries, err := h.service.List(c.Context(), sess, c.Query("from"), c.Query("to"))
	switch {
	case errors.Is(err, ErrInvalidPlan):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		l.Error("Plan list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list planned recipes"})
	}

	return c.JSON(entries)
}

// HandleDelete removes a planned recipe.
// @Summary Delete Planned Recipe
// @Description Delete one of the caller's planned recipes.
// @Tags planner
// @Accept json
// @Produce json
// @Param id path int true "Plan ID"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 404 {object} map[string]string "Not found"
// @Router /planner/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	sess, _ := session.FromCtx(c)
	l := logger.WithRayID(h.service.logger, c)

	id := utils.ToInt(c.Params("id"))
	if id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid plan id"})
	}

	err := h.service.Delete(c.Context(), sess, uint(id))
	switch {
	case errors.Is(err, ErrPlanNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		l.Error("Plan delete failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete planned recipe"})
	}

	return c.JSON(fiber.Map{"status": "deleted"})
}
