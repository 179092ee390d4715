package catalog

import (
	"catalog-sync/core/moysklad"
	"catalog-sync/feature/catalog/registry"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires the catalog sync components for the application loader.
type Feature struct {
	enabled bool
	service *Service
	handler *Handler
}

// NewFeature creates the catalog feature with its own store and registry.
func NewFeature(enabled bool, client moysklad.Client, logger *zap.Logger) *Feature {
	store := NewStore()
	reg := registry.NewInMemory()
	service := NewService(client, store, reg, logger)
	return &Feature{
		enabled: enabled,
		service: service,
		handler: NewHandler(service, reg),
	}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "catalog"
}

// IsEnabled reports whether the feature is enabled in configuration.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the catalog routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service exposes the sync service, e.g. for the startup sync trigger.
func (f *Feature) Service() *Service {
	return f.service
}
