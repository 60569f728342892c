package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/bbq-dashboard-api/internal/application/analytics"
	"github.com/jhoicas/bbq-dashboard-api/internal/application/dto"
	"github.com/jhoicas/bbq-dashboard-api/internal/domain"
	"github.com/jhoicas/bbq-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/bbq-dashboard-api/pkg/config"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc  *appanalytics.DashboardUseCase
	cfg config.DashboardConfig
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, cfg config.DashboardConfig) *DashboardHandler {
	return &DashboardHandler{uc: uc, cfg: cfg}
}

// lookbackDays resuelve el query param ?days=: ausente o no numérico usa el
// default; fuera de rango se recorta a [1, max] en lugar de rechazar.
func (h *DashboardHandler) lookbackDays(c *fiber.Ctx) int {
	days := c.QueryInt("days", h.cfg.DefaultLookbackDays)
	if days < 1 {
		days = 1
	}
	if days > h.cfg.MaxLookbackDays {
		days = h.cfg.MaxLookbackDays
	}
	return days
}

// GetOverview devuelve KPIs, serie de tiempo y comparación por sede.
// GET /api/dashboard/overview?days=14
func (h *DashboardHandler) GetOverview(c *fiber.Ctx) error {
	overview, err := h.uc.GetOverview(c.Context(), h.lookbackDays(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(overview)
}

// GetTopItems devuelve el ranking de productos más vendidos.
// GET /api/dashboard/top-items?days=14&location=all&limit=10
func (h *DashboardHandler) GetTopItems(c *fiber.Ctx) error {
	locationFilter := c.Query("location", entity.LocationAll)
	limit := c.QueryInt("limit", h.cfg.TopItemsLimit)

	items, err := h.uc.GetTopItems(c.Context(), h.lookbackDays(c), locationFilter, limit)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownLocation) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code: "UNKNOWN_LOCATION", Message: "sede desconocida: " + locationFilter,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(items)
}

// GetOnlineComparison devuelve la comparación online vs POS de la sede con
// pedidos web.
// GET /api/dashboard/online-comparison?days=14
func (h *DashboardHandler) GetOnlineComparison(c *fiber.Ctx) error {
	cmp, err := h.uc.GetOnlineComparison(c.Context(), h.lookbackDays(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(cmp)
}

// GetServerTips devuelve el total de propinas por mesero.
// GET /api/dashboard/server-tips?days=14&location=all
func (h *DashboardHandler) GetServerTips(c *fiber.Ctx) error {
	locationFilter := c.Query("location", entity.LocationAll)

	tips, err := h.uc.GetServerTips(c.Context(), h.lookbackDays(c), locationFilter)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownLocation) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code: "UNKNOWN_LOCATION", Message: "sede desconocida: " + locationFilter,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(tips)
}

// GetLocationDaily devuelve las tarjetas de día de una sede.
// GET /api/dashboard/locations/:id/daily?days=14
func (h *DashboardHandler) GetLocationDaily(c *fiber.Ctx) error {
	locationID := entity.LocationID(c.Params("id"))

	daily, err := h.uc.GetLocationDaily(c.Context(), locationID, h.lookbackDays(c))
	if err != nil {
		if errors.Is(err, domain.ErrUnknownLocation) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code: "UNKNOWN_LOCATION", Message: "sede desconocida: " + string(locationID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(daily)
}
