package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/bbq-dashboard-api/internal/application/analytics"
	"github.com/jhoicas/bbq-dashboard-api/internal/application/reports"
	"github.com/jhoicas/bbq-dashboard-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DashboardUC *appanalytics.DashboardUseCase
	ReportUC    *reports.PDFUseCase
	Dashboard   config.DashboardConfig
}

// Router registra las rutas de la API. Todos los endpoints son de solo
// lectura; no hay autenticación (el servicio vive detrás de la VPN de la
// oficina).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Sedes (registro estático)
	locationsHandler := NewLocationsHandler()
	api.Get("/locations", locationsHandler.List)

	// Dashboard
	dash := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Dashboard)
	dash.Get("/overview", dashboardHandler.GetOverview)
	dash.Get("/top-items", dashboardHandler.GetTopItems)
	dash.Get("/online-comparison", dashboardHandler.GetOnlineComparison)
	dash.Get("/server-tips", dashboardHandler.GetServerTips)
	dash.Get("/locations/:id/daily", dashboardHandler.GetLocationDaily)

	// Reportes
	repGroup := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, deps.Dashboard)
	repGroup.Get("/sales.pdf", reportHandler.DownloadSalesReport)
}
