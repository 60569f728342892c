package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout formato canónico de fechas de negocio (solo fecha, sin hora).
const DateLayout = "2006-01-02"

// DailySales totales de una sede para una fecha calendario.
//
// En un dataset bien formado existe exactamente un registro por par
// (fecha, sede); el motor de agregación tolera duplicados sumándolos.
//
// Los campos online solo tienen significado para sedes con pedidos web
// habilitados; se modelan como punteros porque en la DB son columnas
// nullable. nil y cero son equivalentes para sumar, pero la rama
// "¿esta sede es online?" usa el flag del registro de sedes, no la
// presencia de estos campos.
type DailySales struct {
	ID       string
	Date     time.Time // solo fecha; la hora se ignora
	Location LocationID

	NetSales        decimal.Decimal
	CashSales       decimal.Decimal
	CreditCardSales decimal.Decimal
	CreditCardTips  decimal.Decimal
	NetCash         decimal.Decimal

	CheckCount   int
	GuestCount   int
	CheckAverage decimal.Decimal // esperado (no forzado) = NetSales / CheckCount

	OnlineSales       *decimal.Decimal
	OnlineOrderCount  *int
	OnlineFailedCount *int

	CreatedAt time.Time // informativo; no participa en agregaciones
}

// DateKey devuelve la fecha en formato YYYY-MM-DD (clave de agrupación;
// el orden lexicográfico coincide con el cronológico).
func (d DailySales) DateKey() string {
	return d.Date.Format(DateLayout)
}

// OnlineSalesOrZero normaliza el campo opcional: ausente se trata como cero.
func (d DailySales) OnlineSalesOrZero() decimal.Decimal {
	if d.OnlineSales == nil {
		return decimal.Zero
	}
	return *d.OnlineSales
}

// OnlineOrders devuelve la cantidad de pedidos web (cero si ausente).
func (d DailySales) OnlineOrders() int {
	if d.OnlineOrderCount == nil {
		return 0
	}
	return *d.OnlineOrderCount
}

// HasOnlineOrders reporta si el día registró al menos un pedido web.
// Un día con cero pedidos no califica para el comparador online/POS.
func (d DailySales) HasOnlineOrders() bool {
	return d.OnlineOrders() > 0
}
