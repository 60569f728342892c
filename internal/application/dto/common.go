package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PeriodDTO ventana de consulta resuelta por el servidor.
type PeriodDTO struct {
	LookbackDays int    `json:"lookback_days"`
	StartDate    string `json:"start_date"` // YYYY-MM-DD, inclusive
	EndDate      string `json:"end_date"`   // YYYY-MM-DD, inclusive
}
