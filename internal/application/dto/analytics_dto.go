package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bbq-dashboard-api/internal/domain/entity"
)

// ── Ranking de items ──────────────────────────────────────────────────────────

// TopItemDTO un grupo (sede, producto) del ranking de más vendidos.
// GrossSales llega redondeado a 2 decimales para display; el orden del
// ranking se decidió ANTES del redondeo.
type TopItemDTO struct {
	Rank         int               `json:"rank"` // 1 = mayor venta bruta
	Location     entity.LocationID `json:"location"`
	LocationName string            `json:"location_name"`
	Emoji        string            `json:"emoji"`
	Color        string            `json:"color"` // color de la sede para la barra
	ItemName     string            `json:"item_name"`
	Category     string            `json:"category"`
	QuantitySold int               `json:"quantity_sold"`
	GrossSales   decimal.Decimal   `json:"gross_sales"`
}

// TopItemsDTO respuesta de GET /api/dashboard/top-items.
type TopItemsDTO struct {
	Period   PeriodDTO    `json:"period"`
	Location string       `json:"location"` // id de sede o "all"
	Items    []TopItemDTO `json:"items"`
}

// ── Comparador online vs POS ──────────────────────────────────────────────────

// OnlineComparisonRowDTO un día calificado (con al menos un pedido web) de la
// sede online.
type OnlineComparisonRowDTO struct {
	Date        string          `json:"date"`
	DateLabel   string          `json:"date_label"`
	OnlineSales decimal.Decimal `json:"online_sales"`
	OrderCount  int             `json:"order_count"`
	AvgOrder    decimal.Decimal `json:"avg_order"`     // online_sales / order_count, 2 decimales
	POSAvgCheck decimal.Decimal `json:"pos_avg_check"` // check_average del registro, sin tocar
}

// OnlineComparisonDTO respuesta de GET /api/dashboard/online-comparison.
//
// AvgOnlineOrder y AvgPOSCheck son medias aritméticas SIN ponderar de los
// promedios diarios (cada día pesa igual, sin importar su volumen). Es una
// simplificación deliberada, no un ratio global de sumas.
// Cero filas calificadas => escalares en cero y Rows vacío; el cliente debe
// renderizar un estado vacío, no una gráfica en ceros.
type OnlineComparisonDTO struct {
	Period         PeriodDTO                `json:"period"`
	Location       entity.LocationInfo      `json:"location"`
	AvgOnlineOrder decimal.Decimal          `json:"avg_online_order"`
	AvgPOSCheck    decimal.Decimal          `json:"avg_pos_check"`
	Difference     decimal.Decimal          `json:"difference"` // AvgOnlineOrder - AvgPOSCheck (con signo)
	Rows           []OnlineComparisonRowDTO `json:"rows"`       // fecha ascendente
}

// ── Propinas por mesero ───────────────────────────────────────────────────────

// ServerTipsRowDTO total de propinas de un mesero en la ventana.
type ServerTipsRowDTO struct {
	Location   entity.LocationID `json:"location"`
	ServerName string            `json:"server_name"`
	JobTitle   string            `json:"job_title"`
	CashTips   decimal.Decimal   `json:"cash_tips"`
	CardTips   decimal.Decimal   `json:"card_tips"`
	TotalTips  decimal.Decimal   `json:"total_tips"`
	DaysWorked int               `json:"days_worked"`
}

// ServerTipsDTO respuesta de GET /api/dashboard/server-tips.
type ServerTipsDTO struct {
	Period   PeriodDTO          `json:"period"`
	Location string             `json:"location"` // id de sede o "all"
	Servers  []ServerTipsRowDTO `json:"servers"`  // total descendente
}
