package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bbq-dashboard-api/internal/application/dto"
	"github.com/jhoicas/bbq-dashboard-api/internal/domain/entity"
)

// CompareOnlineVsInStore compara el valor promedio del pedido web contra el
// check promedio de POS para la sede con pedidos online habilitados.
//
// Califican solo los registros de esa sede con online_order_count > 0: un día
// con cero pedidos se EXCLUYE de la serie (no se rellena con cero) y no
// afecta las medias. Por cada día calificado:
//
//	avg_order     = online_sales / online_order_count (2 decimales)
//	pos_avg_check = check_average del registro, sin recalcular
//
// Los escalares AvgOnlineOrder / AvgPOSCheck son medias aritméticas sin
// ponderar de esos promedios diarios — cada día pesa igual sin importar su
// volumen (simplificación deliberada, no un ratio de sumas globales).
// Cero días calificados => todo en cero y Rows vacío.
func CompareOnlineVsInStore(records []entity.DailySales) dto.OnlineComparisonDTO {
	onlineLoc := entity.OnlineLocation()

	out := dto.OnlineComparisonDTO{
		Location: onlineLoc,
		Rows:     []dto.OnlineComparisonRowDTO{},
	}

	var sumAvgOrder, sumPOSCheck decimal.Decimal
	for _, r := range records {
		if r.Location != onlineLoc.ID || !r.HasOnlineOrders() {
			continue
		}
		avgOrder := r.OnlineSalesOrZero().
			Div(decimal.NewFromInt(int64(r.OnlineOrders()))).
			Round(2)

		out.Rows = append(out.Rows, dto.OnlineComparisonRowDTO{
			Date:        r.DateKey(),
			DateLabel:   r.Date.Format(dateLabelLayout),
			OnlineSales: r.OnlineSalesOrZero(),
			OrderCount:  r.OnlineOrders(),
			AvgOrder:    avgOrder,
			POSAvgCheck: r.CheckAverage,
		})
		sumAvgOrder = sumAvgOrder.Add(avgOrder)
		sumPOSCheck = sumPOSCheck.Add(r.CheckAverage)
	}

	if len(out.Rows) == 0 {
		return out
	}

	sort.Slice(out.Rows, func(i, j int) bool { return out.Rows[i].Date < out.Rows[j].Date })

	n := decimal.NewFromInt(int64(len(out.Rows)))
	out.AvgOnlineOrder = sumAvgOrder.Div(n).Round(2)
	out.AvgPOSCheck = sumPOSCheck.Div(n).Round(2)
	out.Difference = out.AvgOnlineOrder.Sub(out.AvgPOSCheck)
	return out
}
