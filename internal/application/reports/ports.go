// Package reports genera el reporte PDF de ventas del período para imprimir
// o enviar por correo a los dueños.
package reports

import (
	"context"

	"github.com/jhoicas/bbq-dashboard-api/internal/application/dto"
)

// SalesReportData todo lo que el generador necesita para armar el documento.
// Son salidas del motor de agregación: el generador no re-deriva ningún
// número a partir de registros crudos.
type SalesReportData struct {
	Period     dto.PeriodDTO
	KPIs       dto.KPIsDTO
	Comparison dto.LocationComparisonDTO
	TopItems   []dto.TopItemDTO
	Online     dto.OnlineComparisonDTO
}

// SalesReportGenerator renderiza el reporte y devuelve los bytes del PDF.
type SalesReportGenerator interface {
	GenerateSalesReport(ctx context.Context, data *SalesReportData) ([]byte, error)
}
