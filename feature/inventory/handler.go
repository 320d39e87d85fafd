package inventory

import (
	"errors"
	"time"

	"pantry-manager/core/logger"
	"pantry-manager/core/session"
	"pantry-manager/core/utils"
	"pantry-manager/feature/inventory/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for inventory.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the inventory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/inventory")
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleCreate)
	group.Delete("/:id", h.HandleDelete)
	group.Get("/summary", h.HandleStatusSummary)
	group.Get("/calendar", h.HandleCalendar)
}

// HandleList returns the owner's inventory with expiration decoration.
// @Summary List Inventory
// @Description List the caller's inventory items, optionally filtered by category and name search.
// @Tags inventory
// @Accept json
// @Produce json
// @Param category query string false "Category filter"
// @Param search query string false "Name substring filter"
// @Success 200 {array} models.ItemView "Items"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /inventory [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	sess, _ := session.FromCtx(c)
	l := logger.WithRayID(h.service.logger, c)

	items, err := h.service.List(c.Context(), sess, c.Query("category"), c.Query("search"))
	if err != nil {
		l.Error("Inventory list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load inventory"})
	}

	today := time.Now()
	views := make([]models.ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, models.NewItemView(item, today))
	}
	return c.JSON(views)
}

// HandleCreate adds a new inventory item.
// @Summary Add Inventory Item
// @Description Create an inventory item for the caller. Name+unit must be unique per owner.
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body models.CreateRequest true "Item"
// @Success 201 {object} models.InventoryItem "Created"
// @Failure 409 {object} map[string]string "Duplicate name+unit"
// @Failure 422 {object} map[string]string "Validation failure"
// @Router /inventory [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	sess, _ := session.FromCtx(c)
	l := logger.WithRayID(h.service.logger, c)

	var req models.CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	item, err := h.service.Create(c.Context(), sess, req)
	switch {
	case errors.Is(err, ErrInvalidItem):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrDuplicateItem):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		l.Error("Inventory create failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create item"})
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleDelete removes an inventory item.
// @Summary Delete Inventory Item
// @Description Delete one of the caller's inventory items.
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 404 {object} map[string]string "Not found"
// @Router /inventory/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	sess, _ := session.FromCtx(c)
	l := logger.WithRayID(h.service.logger, c)

	id := utils.ToInt(c.Params("id"))
	if id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid item id"})
	}

	err := h.service.Delete(c.Context(), sess, uint(id))
	switch {
	case errors.Is(err, ErrItemNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		l.Error("Inventory delete failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete item"})
	}

	return c.JSON(fiber.Map{"status": "deleted"})
}

// HandleStatusSummary returns per-tier expiration counts.
// @Summary Expiration Status Summary
// @Description Count the caller's items per expiration tier (chart data).
// @Tags inventory
// @Accept json
// @Produce json
// @Param category query string false "Category filter"
// @Param search query string false "Name substring filter"
// @Success 200 {object} models.StatusSummary "Summary"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /inventory/summary [get]
func (h *Handler) HandleStatusSummary(c *fiber.Ctx) error {
	sess, _ := session.FromCtx(c)
	l := logger.WithRayID(h.service.logger, c)

	summary, err := h.service.StatusSummary(c.Context(), sess, c.Query("category"), c.Query("search"), time.Now())
	if err != nil {
		l.Error("Status summary failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to summarize inventory"})
	}
	return c.JSON(summary)
}

// HandleCalendar returns the expiration calendar feed.
// @Summary Expiration Calendar
// @Description Render the caller's items as calendar events colored by expiration status.
// @Tags inventory
// @Accept json
// @Produce json
// @Success 200 {array} models.CalendarEvent "Events"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /inventory/calendar [get]
func (h *Handler) HandleCalendar(c *fiber.Ctx) error {
	sess, _ := session.FromCtx(c)
	l := logger.WithRayID(h.service.logger, c)

	events, err := h.service.CalendarEvents(c.Context(), sess, time.Now())
	if err != nil {
		l.Error("Calendar feed failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to build calendar"})
	}
	return c.JSON(events)
}
