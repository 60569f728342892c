package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bbq-dashboard-api/internal/application/dto"
	"github.com/jhoicas/bbq-dashboard-api/internal/domain/entity"
)

// Summarize pliega una colección de registros diarios en un resumen de
// totales. Campos online ausentes suman cero. Nunca falla: con entrada vacía
// devuelve un resumen todo-en-cero con DaysCount = 0.
//
// DaysCount es el número de registros plegados; si hay duplicados por
// (fecha, sede) se suman igual (el dataset bien formado no los tiene, pero el
// agregador los tolera). AverageCheck NO se calcula aquí: el caller lo deriva
// con DeriveAverageCheck() como segundo paso explícito.
func Summarize(records []entity.DailySales) dto.SalesSummaryDTO {
	var s dto.SalesSummaryDTO
	for _, r := range records {
		s.TotalNetSales = s.TotalNetSales.Add(r.NetSales)
		s.TotalCashSales = s.TotalCashSales.Add(r.CashSales)
		s.TotalCreditSales = s.TotalCreditSales.Add(r.CreditCardSales)
		s.TotalTips = s.TotalTips.Add(r.CreditCardTips)
		s.TotalOnlineSales = s.TotalOnlineSales.Add(r.OnlineSalesOrZero())
		s.TotalChecks += r.CheckCount
		s.DaysCount++
	}
	return s
}

// ComputeKPIs calcula las tarjetas principales del dashboard.
//
// Mismas reglas de suma que Summarize, pero la media diaria divide por el
// número de FECHAS CALENDARIO DISTINTAS en la colección (no por registros:
// un día con las dos sedes cuenta una sola vez). Ambas divisiones tienen
// guarda de cero explícita.
func ComputeKPIs(records []entity.DailySales) dto.KPIsDTO {
	var totalSales, totalOnline, totalTips decimal.Decimal
	totalChecks := 0
	dates := make(map[string]struct{}, len(records))

	for _, r := range records {
		totalSales = totalSales.Add(r.NetSales)
		totalOnline = totalOnline.Add(r.OnlineSalesOrZero())
		totalTips = totalTips.Add(r.CreditCardTips)
		totalChecks += r.CheckCount
		dates[r.DateKey()] = struct{}{}
	}

	avgCheck := decimal.Zero
	if totalChecks > 0 {
		avgCheck = totalSales.Div(decimal.NewFromInt(int64(totalChecks))).Round(2)
	}
	dailyAvg := decimal.Zero
	if len(dates) > 0 {
		dailyAvg = totalSales.Div(decimal.NewFromInt(int64(len(dates)))).Round(2)
	}

	return dto.KPIsDTO{
		TotalSales:   totalSales,
		TotalOnline:  totalOnline,
		TotalTips:    totalTips,
		TotalChecks:  totalChecks,
		AvgCheck:     avgCheck,
		DailyAvg:     dailyAvg,
		DaysWithData: len(dates),
	}
}

// CompareLocations construye la vista de comparación por sede: un resumen por
// cada sede del registro (con AverageCheck ya derivado) más el combinado.
// Una sede sin registros en la ventana aparece con resumen en ceros.
func CompareLocations(records []entity.DailySales) dto.LocationComparisonDTO {
	perLocation := make(map[entity.LocationID][]entity.DailySales)
	for _, r := range records {
		perLocation[r.Location] = append(perLocation[r.Location], r)
	}

	out := dto.LocationComparisonDTO{
		Locations: make([]dto.LocationSummaryDTO, 0, len(entity.Locations())),
	}
	for _, loc := range entity.Locations() {
		summary := Summarize(perLocation[loc.ID])
		summary.DeriveAverageCheck()
		out.Locations = append(out.Locations, dto.LocationSummaryDTO{
			Location: loc,
			Summary:  summary,
		})
	}

	combined := Summarize(records)
	combined.DeriveAverageCheck()
	out.Combined = combined
	return out
}
