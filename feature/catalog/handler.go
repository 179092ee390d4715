package catalog

import (
	"catalog-sync/core/logger"
	"catalog-sync/feature/catalog/registry"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the catalog feature.
type Handler struct {
	service  *Service
	registry *registry.InMemory
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, reg *registry.InMemory) *Handler {
	return &Handler{service: service, registry: reg}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Post("/sync", h.HandleSyncAll)
	group.Post("/sync/stocks", h.HandleRefreshStocks)
	group.Get("/entities", h.HandleListEntities)
	group.Get("/entities/:id", h.HandleGetEntity)
	group.Get("/devices", h.HandleListDevices)
}

// HandleSyncAll triggers one full reconciliation pass.
func (h *Handler) HandleSyncAll(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	summary, err := h.service.SyncAll(c.Context())
	if err != nil {
		l.Error("Full sync failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(summary)
}

// HandleRefreshStocks triggers one stock-only refresh.
func (h *Handler) HandleRefreshStocks(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	summary, err := h.service.RefreshStocks(c.Context())
	if err != nil {
		l.Error("Stock refresh failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(summary)
}

// HandleListEntities returns all tracked entities.
func (h *Handler) HandleListEntities(c *fiber.Ctx) error {
	entities := h.service.Entities()
	return c.JSON(fiber.Map{
		"count":    len(entities),
		"entities": entities,
	})
}

// HandleGetEntity returns one tracked entity with its full attribute map.
func (h *Handler) HandleGetEntity(c *fiber.Ctx) error {
	id := c.Params("id")
	entity, ok := h.service.Entity(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "unknown entity id",
		})
	}
	return c.JSON(fiber.Map{
		"entity":     entity,
		"attributes": entity.Attributes(),
	})
}

// HandleListDevices returns the category containers with member counts.
func (h *Handler) HandleListDevices(c *fiber.Ctx) error {
	devices := h.registry.Devices()
	out := make([]fiber.Map, 0, len(devices))
	for _, d := range devices {
		out = append(out, fiber.Map{
			"device":   d,
			"entities": len(h.registry.Members(d.Name)),
		})
	}
	return c.JSON(out)
}
