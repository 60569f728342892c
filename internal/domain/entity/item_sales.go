package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemSales ventas de un producto en una sede para una fecha.
// La clave de agrupación del ranking es (Location, ItemName);
// Category es una etiqueta informativa y no participa en el ranking.
type ItemSales struct {
	ID       string
	Date     time.Time
	Location LocationID

	ItemName string
	Category string

	QuantitySold int
	GrossSales   decimal.Decimal
}

// DateKey devuelve la fecha en formato YYYY-MM-DD.
func (i ItemSales) DateKey() string {
	return i.Date.Format(DateLayout)
}
