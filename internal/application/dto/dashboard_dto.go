package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bbq-dashboard-api/internal/domain/entity"
)

// Contrato JSON de los montos: viajan como NÚMEROS JSON (1200, 25.5), no como
// strings. El frontend consume net_sales y los KPIs como numéricos y los
// opera sin parsear. Decimal conserva la precisión del lado del servidor; la
// serialización sin comillas es solo el formato de salida.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// SalesSummaryDTO agregado de totales sobre una colección de registros diarios.
//
// Se construye en dos pasos (protocolo del agregador): primero el fold que
// suma los campos, después DeriveAverageCheck() rellena el ratio. Separar los
// pasos permite inspeccionar las sumas intermedias antes de dividir.
//
// DaysCount cuenta REGISTROS plegados, no fechas distintas. La media diaria
// del KPI usa fechas distintas (ver KPIsDTO.DailyAvg); las dos definiciones
// conviven a propósito en sus respectivos call sites.
type SalesSummaryDTO struct {
	TotalNetSales    decimal.Decimal `json:"total_net_sales"`
	TotalCashSales   decimal.Decimal `json:"total_cash_sales"`
	TotalCreditSales decimal.Decimal `json:"total_credit_sales"`
	TotalTips        decimal.Decimal `json:"total_tips"`
	TotalOnlineSales decimal.Decimal `json:"total_online_sales"`
	TotalChecks      int             `json:"total_checks"`
	AverageCheck     decimal.Decimal `json:"average_check"`
	DaysCount        int             `json:"days_count"`
}

// DeriveAverageCheck rellena AverageCheck = TotalNetSales / TotalChecks,
// redondeado a 2 decimales; cero si no hubo checks. Paso post-fold.
func (s *SalesSummaryDTO) DeriveAverageCheck() {
	if s.TotalChecks <= 0 {
		s.AverageCheck = decimal.Zero
		return
	}
	s.AverageCheck = s.TotalNetSales.
		Div(decimal.NewFromInt(int64(s.TotalChecks))).
		Round(2)
}

// KPIsDTO tarjetas principales del dashboard.
type KPIsDTO struct {
	TotalSales   decimal.Decimal `json:"total_sales"`
	TotalOnline  decimal.Decimal `json:"total_online"`
	TotalTips    decimal.Decimal `json:"total_tips"`
	TotalChecks  int             `json:"total_checks"`
	AvgCheck     decimal.Decimal `json:"avg_check"`      // TotalSales / TotalChecks
	DailyAvg     decimal.Decimal `json:"daily_avg"`      // TotalSales / fechas distintas
	DaysWithData int             `json:"days_with_data"` // fechas calendario distintas en la ventana
}

// TimeSeriesPointDTO una fila de la gráfica de tendencia: las ventas netas de
// cada sede más la serie online de la sede con pedidos web.
// Una fecha sin registro para una sede muestra cero, no null.
type TimeSeriesPointDTO struct {
	Date      string          `json:"date"`       // YYYY-MM-DD
	DateLabel string          `json:"date_label"` // ej: "Jan 2"
	HillDonut decimal.Decimal `json:"hill_donut"`
	RedBarn   decimal.Decimal `json:"red_barn"`
	Online    decimal.Decimal `json:"online"`
}

// LocationSummaryDTO resumen de una sede para la vista de comparación.
type LocationSummaryDTO struct {
	Location entity.LocationInfo `json:"location"`
	Summary  SalesSummaryDTO     `json:"summary"`
}

// LocationComparisonDTO comparación lado a lado de las sedes más el combinado.
type LocationComparisonDTO struct {
	Locations []LocationSummaryDTO `json:"locations"`
	Combined  SalesSummaryDTO      `json:"combined"`
}

// DashboardOverviewDTO respuesta de GET /api/dashboard/overview.
type DashboardOverviewDTO struct {
	Period     PeriodDTO             `json:"period"`
	KPIs       KPIsDTO               `json:"kpis"`
	TimeSeries []TimeSeriesPointDTO  `json:"time_series"`
	Comparison LocationComparisonDTO `json:"location_comparison"`
}

// DailyDetailDTO una tarjeta de día para el detalle por sede.
type DailyDetailDTO struct {
	ID              string          `json:"id"`
	Date            string          `json:"date"`
	DateLabel       string          `json:"date_label"` // ej: "Mon, Jan 2"
	NetSales        decimal.Decimal `json:"net_sales"`
	CashSales       decimal.Decimal `json:"cash_sales"`
	CreditCardSales decimal.Decimal `json:"credit_card_sales"`
	CreditCardTips  decimal.Decimal `json:"credit_card_tips"`
	CheckCount      int             `json:"check_count"`
	GuestCount      int             `json:"guest_count"`
	CheckAverage    decimal.Decimal `json:"check_average"`
	OnlineSales     decimal.Decimal `json:"online_sales"`
	OnlineOrders    int             `json:"online_orders"`
	AvgOnlineOrder  decimal.Decimal `json:"avg_online_order"`
}

// LocationDailyDTO respuesta de GET /api/dashboard/locations/:id/daily.
type LocationDailyDTO struct {
	Period   PeriodDTO           `json:"period"`
	Location entity.LocationInfo `json:"location"`
	Days     []DailyDetailDTO    `json:"days"` // fecha descendente, más reciente primero
}
