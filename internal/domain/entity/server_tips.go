package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServerTips propinas declaradas por un mesero en una sede para una fecha.
type ServerTips struct {
	ID       string
	Date     time.Time
	Location LocationID

	ServerName string
	JobTitle   string

	CashTips  decimal.Decimal
	CardTips  decimal.Decimal
	TotalTips decimal.Decimal
}

// DateKey devuelve la fecha en formato YYYY-MM-DD.
func (s ServerTips) DateKey() string {
	return s.Date.Format(DateLayout)
}
