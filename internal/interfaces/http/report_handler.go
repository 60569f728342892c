package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bbq-dashboard-api/internal/application/dto"
	"github.com/jhoicas/bbq-dashboard-api/internal/application/reports"
	"github.com/jhoicas/bbq-dashboard-api/pkg/config"
)

// ReportHandler maneja las descargas de reportes.
type ReportHandler struct {
	uc  *reports.PDFUseCase
	cfg config.DashboardConfig
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.PDFUseCase, cfg config.DashboardConfig) *ReportHandler {
	return &ReportHandler{uc: uc, cfg: cfg}
}

// DownloadSalesReport genera y descarga el reporte PDF de ventas del período.
// GET /api/reports/sales.pdf?days=14
func (h *ReportHandler) DownloadSalesReport(c *fiber.Ctx) error {
	days := c.QueryInt("days", h.cfg.DefaultLookbackDays)
	if days < 1 {
		days = 1
	}
	if days > h.cfg.MaxLookbackDays {
		days = h.cfg.MaxLookbackDays
	}

	pdfBytes, filename, err := h.uc.DownloadSalesReport(c.Context(), days)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
