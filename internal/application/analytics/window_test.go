package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bbq-dashboard-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// refNow instante de referencia fijo para que los tests sean deterministas.
var refNow = time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)

// dayRecord registro diario mínimo para una fecha relativa a refNow.
func dayRecord(daysAgo int, loc entity.LocationID, netSales float64) entity.DailySales {
	return entity.DailySales{
		ID:       "rec",
		Date:     refNow.AddDate(0, 0, -daysAgo),
		Location: loc,
		NetSales: decimal.NewFromFloat(netSales),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests SelectWindow
// ──────────────────────────────────────────────────────────────────────────────

// El corte es inclusivo: un registro exactamente a lookbackDays de distancia
// pertenece a la ventana; uno un día más viejo queda fuera.
func TestSelectWindow_CorteInclusivo(t *testing.T) {
	records := []entity.DailySales{
		dayRecord(7, entity.LocationHillDonut, 100), // justo en el corte
		dayRecord(8, entity.LocationHillDonut, 200), // un día fuera
	}

	out := SelectWindow(records, 7, refNow)

	require.Len(t, out, 1, "solo el registro en el corte debe sobrevivir")
	assert.Equal(t, records[0].Date, out[0].Date)
}

// La comparación es por día calendario: la hora del registro y la hora del
// instante de referencia no cambian el resultado.
func TestSelectWindow_IgnoraLaHora(t *testing.T) {
	lateNight := entity.DailySales{
		Date:     time.Date(2024, 1, 8, 23, 59, 59, 0, time.UTC), // = refNow - 7 días
		Location: entity.LocationHillDonut,
	}

	out := SelectWindow([]entity.DailySales{lateNight}, 7, refNow)

	assert.Len(t, out, 1, "un registro a las 23:59 del día de corte sigue dentro")
}

// El selector preserva el orden de entrada tal cual (el repositorio entrega
// fecha descendente, pero la ventana no debe reordenar nada).
func TestSelectWindow_PreservaOrdenDeEntrada(t *testing.T) {
	records := []entity.DailySales{
		dayRecord(0, entity.LocationHillDonut, 1),
		dayRecord(3, entity.LocationRedBarn, 2),
		dayRecord(1, entity.LocationHillDonut, 3),
	}

	out := SelectWindow(records, 14, refNow)

	require.Len(t, out, 3)
	assert.True(t, out[0].NetSales.Equal(decimal.NewFromInt(1)))
	assert.True(t, out[1].NetSales.Equal(decimal.NewFromInt(2)))
	assert.True(t, out[2].NetSales.Equal(decimal.NewFromInt(3)))
}

// Entrada vacía produce colección vacía, nunca nil panic ni error.
func TestSelectWindow_EntradaVacia(t *testing.T) {
	out := SelectWindow(nil, 7, refNow)
	assert.Empty(t, out)
}

// Los selectores de items y propinas aplican el mismo corte calendario.
func TestSelectItemWindow_MismoCorte(t *testing.T) {
	records := []entity.ItemSales{
		{Date: refNow.AddDate(0, 0, -7), Location: entity.LocationHillDonut, ItemName: "Glazed Donut"},
		{Date: refNow.AddDate(0, 0, -8), Location: entity.LocationHillDonut, ItemName: "Coffee (Large)"},
	}

	out := SelectItemWindow(records, 7, refNow)

	require.Len(t, out, 1)
	assert.Equal(t, "Glazed Donut", out[0].ItemName)
}

func TestSelectTipsWindow_MismoCorte(t *testing.T) {
	records := []entity.ServerTips{
		{Date: refNow.AddDate(0, 0, -7), Location: entity.LocationHillDonut, ServerName: "Taylor Wilkes"},
		{Date: refNow.AddDate(0, 0, -8), Location: entity.LocationHillDonut, ServerName: "Sarah Johnson"},
	}

	out := SelectTipsWindow(records, 7, refNow)

	require.Len(t, out, 1)
	assert.Equal(t, "Taylor Wilkes", out[0].ServerName)
}
