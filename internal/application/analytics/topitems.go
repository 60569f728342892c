package analytics

import (
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bbq-dashboard-api/internal/application/dto"
	"github.com/jhoicas/bbq-dashboard-api/internal/domain/entity"
)

// DefaultTopItemsLimit tope por defecto del ranking de items.
const DefaultTopItemsLimit = 10

// itemGroup acumulador por clave compuesta (sede, nombre de producto).
type itemGroup struct {
	location entity.LocationID
	itemName string
	category string
	quantity int
	gross    decimal.Decimal
}

// TopItems agrupa las ventas por (sede, producto), suma cantidad y venta
// bruta, y devuelve el top `limit` ordenado por venta bruta descendente.
//
//   - locationFilter: un id de sede, o entity.LocationAll para no filtrar.
//   - Empates conservan el orden de aparición en la entrada (sort estable).
//   - Los campos no sumados (categoría) se toman del PRIMER registro del
//     grupo; si un registro posterior trae otra categoría se registra un log
//     de debug y se conserva la primera (sin regla de reconciliación).
//   - El redondeo a 2 decimales es solo para display y ocurre después de
//     ordenar: la suma sin redondear decide el ranking.
func TopItems(records []entity.ItemSales, locationFilter string, limit int) []dto.TopItemDTO {
	if limit <= 0 {
		limit = DefaultTopItemsLimit
	}

	groups := make(map[string]*itemGroup)
	var order []string // orden de primer encuentro, para el sort estable

	for _, r := range records {
		if locationFilter != entity.LocationAll && string(r.Location) != locationFilter {
			continue
		}
		key := string(r.Location) + "|" + r.ItemName
		g, ok := groups[key]
		if !ok {
			g = &itemGroup{
				location: r.Location,
				itemName: r.ItemName,
				category: r.Category,
			}
			groups[key] = g
			order = append(order, key)
		} else if r.Category != g.category {
			log.Debug().
				Str("item", r.ItemName).
				Str("location", string(r.Location)).
				Str("kept", g.category).
				Str("seen", r.Category).
				Msg("categoría inconsistente dentro del grupo; se conserva la primera")
		}
		g.quantity += r.QuantitySold
		g.gross = g.gross.Add(r.GrossSales)
	}

	ranked := make([]*itemGroup, 0, len(order))
	for _, key := range order {
		ranked = append(ranked, groups[key])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].gross.GreaterThan(ranked[j].gross)
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]dto.TopItemDTO, 0, len(ranked))
	for i, g := range ranked {
		loc, _ := entity.LocationByID(g.location)
		out = append(out, dto.TopItemDTO{
			Rank:         i + 1,
			Location:     g.location,
			LocationName: loc.ShortName,
			Emoji:        loc.Emoji,
			Color:        loc.Color,
			ItemName:     g.itemName,
			Category:     g.category,
			QuantitySold: g.quantity,
			GrossSales:   g.gross.Round(2), // redondeo post-orden
		})
	}
	return out
}
