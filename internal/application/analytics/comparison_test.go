package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bbq-dashboard-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// onlineDay registro de Red Barn con pedidos web.
func onlineDay(date time.Time, onlineSales float64, orders int, posAvgCheck float64) entity.DailySales {
	return entity.DailySales{
		Date:             date,
		Location:         entity.LocationRedBarn,
		CheckAverage:     dec(posAvgCheck),
		OnlineSales:      decPtr(onlineSales),
		OnlineOrderCount: intPtr(orders),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CompareOnlineVsInStore
// ──────────────────────────────────────────────────────────────────────────────

// Caso base: dos días calificados. Las medias son aritméticas SIN ponderar
// sobre los promedios diarios y la diferencia lleva signo.
func TestCompareOnlineVsInStore_MediasSinPonderar(t *testing.T) {
	d1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	records := []entity.DailySales{
		onlineDay(d1, 100, 4, 22), // avg_order 25.00
		onlineDay(d2, 150, 6, 28), // avg_order 25.00
	}

	out := CompareOnlineVsInStore(records)

	require.Len(t, out.Rows, 2)
	assert.Equal(t, "25.00", out.AvgOnlineOrder.StringFixed(2))
	assert.Equal(t, "25.00", out.AvgPOSCheck.StringFixed(2), "(22+28)/2")
	assert.True(t, out.Difference.IsZero())
	assert.Equal(t, entity.LocationRedBarn, out.Location.ID)
}

// Un día sin pedidos (count cero o nil) se excluye de la serie y de las medias,
// no se rellena con cero.
func TestCompareOnlineVsInStore_ExcluyeDiasSinPedidos(t *testing.T) {
	d1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	d3 := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	records := []entity.DailySales{
		onlineDay(d1, 100, 4, 20),
		onlineDay(d2, 0, 0, 30), // cero pedidos: fuera
		{Date: d3, Location: entity.LocationRedBarn, CheckAverage: dec(25)}, // sin campos online: fuera
	}

	out := CompareOnlineVsInStore(records)

	require.Len(t, out.Rows, 1)
	assert.Equal(t, "2024-01-01", out.Rows[0].Date)
	assert.Equal(t, "20.00", out.AvgPOSCheck.StringFixed(2), "solo el día calificado pesa")
}

// Los registros de la sede sin canal online nunca califican, tengan lo que
// tengan en sus campos.
func TestCompareOnlineVsInStore_IgnoraSedeSinOnline(t *testing.T) {
	d := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	hd := entity.DailySales{
		Date:             d,
		Location:         entity.LocationHillDonut,
		OnlineSales:      decPtr(500),
		OnlineOrderCount: intPtr(10),
	}

	out := CompareOnlineVsInStore([]entity.DailySales{hd})

	assert.Empty(t, out.Rows)
}

// Sin días calificados: escalares en cero y Rows vacío (no nil), para que el
// cliente pueda distinguir "sin datos" sin chequear null.
func TestCompareOnlineVsInStore_EstadoVacio(t *testing.T) {
	out := CompareOnlineVsInStore(nil)

	assert.NotNil(t, out.Rows)
	assert.Empty(t, out.Rows)
	assert.True(t, out.AvgOnlineOrder.IsZero())
	assert.True(t, out.AvgPOSCheck.IsZero())
	assert.True(t, out.Difference.IsZero())
}

// Las filas salen ascendentes por fecha aunque la entrada venga descendente.
func TestCompareOnlineVsInStore_FilasAscendentes(t *testing.T) {
	d1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	records := []entity.DailySales{
		onlineDay(d2, 150, 6, 28),
		onlineDay(d1, 100, 4, 22),
	}

	out := CompareOnlineVsInStore(records)

	require.Len(t, out.Rows, 2)
	assert.Equal(t, "2024-01-01", out.Rows[0].Date)
	assert.Equal(t, "2024-01-02", out.Rows[1].Date)
}

// La diferencia conserva el signo cuando el pedido online promedio queda por
// debajo del ticket POS.
func TestCompareOnlineVsInStore_DiferenciaNegativa(t *testing.T) {
	d := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out := CompareOnlineVsInStore([]entity.DailySales{
		onlineDay(d, 60, 4, 30), // avg_order 15.00 vs POS 30.00
	})

	assert.Equal(t, "-15.00", out.Difference.StringFixed(2))
}
