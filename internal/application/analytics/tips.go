package analytics

import (
	"sort"

	"github.com/jhoicas/bbq-dashboard-api/internal/application/dto"
	"github.com/jhoicas/bbq-dashboard-api/internal/domain/entity"
)

// TipsByServer agrupa las propinas por (sede, mesero) dentro de la ventana y
// devuelve los totales ordenados por propina total descendente (empates en
// orden de aparición). Mismo esquema de agrupación que el ranking de items:
// los campos no sumados (cargo) vienen del primer registro del grupo y el
// redondeo a 2 decimales ocurre después de ordenar.
func TipsByServer(records []entity.ServerTips, locationFilter string) []dto.ServerTipsRowDTO {
	groups := make(map[string]*dto.ServerTipsRowDTO)
	var order []string

	for _, r := range records {
		if locationFilter != entity.LocationAll && string(r.Location) != locationFilter {
			continue
		}
		key := string(r.Location) + "|" + r.ServerName
		g, ok := groups[key]
		if !ok {
			g = &dto.ServerTipsRowDTO{
				Location:   r.Location,
				ServerName: r.ServerName,
				JobTitle:   r.JobTitle,
			}
			groups[key] = g
			order = append(order, key)
		}
		g.CashTips = g.CashTips.Add(r.CashTips)
		g.CardTips = g.CardTips.Add(r.CardTips)
		g.TotalTips = g.TotalTips.Add(r.TotalTips)
		g.DaysWorked++
	}

	ranked := make([]*dto.ServerTipsRowDTO, 0, len(order))
	for _, key := range order {
		ranked = append(ranked, groups[key])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalTips.GreaterThan(ranked[j].TotalTips)
	})

	out := make([]dto.ServerTipsRowDTO, 0, len(ranked))
	for _, g := range ranked {
		row := *g
		row.CashTips = row.CashTips.Round(2)
		row.CardTips = row.CardTips.Round(2)
		row.TotalTips = row.TotalTips.Round(2)
		out = append(out, row)
	}
	return out
}
