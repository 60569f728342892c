package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bbq-dashboard-api/internal/domain/entity"
)

// LocationsHandler expone el registro estático de sedes.
type LocationsHandler struct{}

// NewLocationsHandler construye el handler.
func NewLocationsHandler() *LocationsHandler { return &LocationsHandler{} }

// List devuelve las sedes del negocio en orden de registro.
// GET /api/locations
func (h *LocationsHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"locations": entity.Locations()})
}
