package analytics

import (
	"sort"

	"github.com/jhoicas/bbq-dashboard-api/internal/application/dto"
	"github.com/jhoicas/bbq-dashboard-api/internal/domain/entity"
)

// dateLabel etiqueta corta para el eje X de las gráficas, ej: "Jan 2".
const dateLabelLayout = "Jan 2"

// BuildTimeSeries agrupa los registros diarios por fecha y produce una fila
// por fecha lista para graficar: ventas netas de cada sede en su propia
// columna, más la columna online de la sede con pedidos web.
//
// Política de merge: el primer registro de una fecha siembra la fila con
// ceros para la otra sede; cada registro posterior sobreescribe SOLO los
// campos de su propia sede (last-write-wins por sede). Una fecha sin registro
// para una sede queda en cero, nunca ausente.
//
// Las filas salen ordenadas ascendente por fecha, ordenación que ocurre
// DESPUÉS de agrupar: los callers no deben depender del orden de entrada.
func BuildTimeSeries(records []entity.DailySales) []dto.TimeSeriesPointDTO {
	byDate := make(map[string]*dto.TimeSeriesPointDTO, len(records))
	for _, r := range records {
		key := r.DateKey()
		point, ok := byDate[key]
		if !ok {
			point = &dto.TimeSeriesPointDTO{
				Date:      key,
				DateLabel: r.Date.Format(dateLabelLayout),
			}
			byDate[key] = point
		}
		switch r.Location {
		case entity.LocationHillDonut:
			point.HillDonut = r.NetSales
		case entity.LocationRedBarn:
			point.RedBarn = r.NetSales
			point.Online = r.OnlineSalesOrZero()
		}
	}

	out := make([]dto.TimeSeriesPointDTO, 0, len(byDate))
	for _, point := range byDate {
		out = append(out, *point)
	}
	// Lexicográfico sobre YYYY-MM-DD == cronológico
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
