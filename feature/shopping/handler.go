package shopping

import (
	"errors"

	"pantry-manager/core/logger"
	"pantry-manager/core/session"
	"pantry-manager/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the shopping list.
type Handler struct {
	service  *Service
	exporter *Exporter
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, exporter *Exporter) *Handler {
	return &Handler{service: service, exporter: exporter}
}

// RegisterRoutes registers the shopping list routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/shopping")
	group.Get("/", h.HandleList)
	group.Delete("/:id", h.HandleDelete)
	group.Get("/export", h.HandleExport)
}

// HandleList returns the owner's shopping list.
// @Summary List Shopping List
// @Description List the caller's shopping list lines.
// @Tags shopping
// @Accept json
// @Produce json
// @Success 200 {array} models.ShoppingListLine "Lines"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /shopping [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	sess, _ := session.FromCtx(c)
	l := logger.WithRayID(h.service.logger, c)

	lines, err := h.service.List(c.Context(), sess)
	if err != nil {
		l.Error("Shopping list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load shopping list"})
	}
	return c.JSON(lines)
}

// HandleDelete removes a shopping list line.
// @Summary Delete Shopping List Line
// @Description Delete one of the caller's shopping list lines.
// @Tags shopping
// @Accept json
// @Produce json
// @Param id path int true "Line ID"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 404 {object} map[string]string "Not found"
// @Router /shopping/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	sess, _ := session.FromCtx(c)
	l := logger.WithRayID(h.service.logger, c)

	id := utils.ToInt(c.Params("id"))
	if id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid line id"})
	}

	err := h.service.Delete(c.Context(), sess, uint(id))
	switch {
	case errors.Is(err, ErrLineNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		l.Error("Shopping delete failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete line"})
	}

	return c.JSON(fiber.Map{"status": "deleted"})
}

// HandleExport downloads the shopping list as a PDF.
// @Summary Export Shopping List
// @Description Render the caller's shopping list as a PDF. A copy is archived to object storage when configured.
// @Tags shopping
// @Accept json
// @Produce application/pdf
// @Success 200 {file} binary "PDF document"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /shopping/export [get]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	sess, _ := session.FromCtx(c)
	l := logger.WithRayID(h.service.logger, c)

	doc, objectName, err := h.exporter.Export(c.Context(), sess)
	if err != nil {
		l.Error("Shopping export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to export shopping list"})
	}

	if objectName != "" {
		c.Set("X-Archive-Object", objectName)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="shopping-list.pdf"`)
	return c.Send(doc)
}
