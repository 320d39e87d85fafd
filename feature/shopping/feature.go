package shopping

import (
	"pantry-manager/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service  *Service
	exporter *Exporter
	handler  *Handler
}

// NewFeature creates a new Shopping feature.
func NewFeature(db *gorm.DB, logger *zap.Logger, client storage.Client, bucket string) *Feature {
	svc := NewService(db, logger)
	exporter := NewExporter(svc, client, bucket, logger)
	h := NewHandler(svc, exporter)
	return &Feature{service: svc, exporter: exporter, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "shopping"
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

// Service exposes the underlying service for the recipes feature, which
// snapshots and merges into the shopping list.
func (f *Feature) Service() *Service {
	return f.service
}
