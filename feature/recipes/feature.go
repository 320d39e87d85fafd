package recipes

import (
	"pantry-manager/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Recipes feature wired to the inventory and
// shopping services it reconciles against.
func NewFeature(db *gorm.DB, logger *zap.Logger, cfg reconcile.Config, inv InventorySource, shop ShoppingSink) *Feature {
	svc := NewService(db, logger, cfg, inv, shop)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "recipes"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service exposes the underlying service for the planner feature, which
// resolves recipe references when scheduling.
func (f *Feature) Service() *Service {
	return f.service
}
