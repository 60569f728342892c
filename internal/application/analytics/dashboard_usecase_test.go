package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bbq-dashboard-api/internal/domain"
	"github.com/jhoicas/bbq-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/bbq-dashboard-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del repositorio
// ──────────────────────────────────────────────────────────────────────────────

type fakeSalesRepo struct {
	daily []entity.DailySales
	items []entity.ItemSales
	tips  []entity.ServerTips

	dailyErr error
	itemsErr error
	tipsErr  error
}

func (f *fakeSalesRepo) GetDailySales(_ context.Context, _ int) ([]entity.DailySales, error) {
	return f.daily, f.dailyErr
}

func (f *fakeSalesRepo) GetItemSales(_ context.Context, _ int) ([]entity.ItemSales, error) {
	return f.items, f.itemsErr
}

func (f *fakeSalesRepo) GetServerTips(_ context.Context, _ int) ([]entity.ServerTips, error) {
	return f.tips, f.tipsErr
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GetOverview
// ──────────────────────────────────────────────────────────────────────────────

func TestGetOverview_PipelineCompleto(t *testing.T) {
	today := time.Now()
	repo := &fakeSalesRepo{
		daily: []entity.DailySales{
			{Date: today, Location: entity.LocationHillDonut, NetSales: dec(800), CheckCount: 40},
			{Date: today, Location: entity.LocationRedBarn, NetSales: dec(400), CheckCount: 20,
				OnlineSales: decPtr(100), OnlineOrderCount: intPtr(4)},
		},
	}
	uc := NewDashboardUseCase(repo, testLogger())

	out, err := uc.GetOverview(context.Background(), 14)

	require.NoError(t, err)
	assert.Equal(t, 14, out.Period.LookbackDays)
	assert.True(t, out.KPIs.TotalSales.Equal(dec(1200)))
	assert.Equal(t, 60, out.KPIs.TotalChecks)
	require.Len(t, out.TimeSeries, 1)
	require.Len(t, out.Comparison.Locations, 2)
}

// Un fallo del repositorio NO es un error para el cliente: el caso de uso lo
// degrada a colección vacía y la respuesta es un dashboard sin datos.
func TestGetOverview_FalloDeFetchDegradaAVacio(t *testing.T) {
	repo := &fakeSalesRepo{dailyErr: errors.New("conexión rechazada")}
	uc := NewDashboardUseCase(repo, testLogger())

	out, err := uc.GetOverview(context.Background(), 14)

	require.NoError(t, err, "el fallo de store nunca llega al handler")
	assert.True(t, out.KPIs.TotalSales.IsZero())
	assert.Empty(t, out.TimeSeries)
	assert.Equal(t, 0, out.KPIs.DaysWithData)
}

// Registros fuera de la ventana que el repositorio entregue de más se
// descartan en memoria con el mismo corte calendario.
func TestGetOverview_ReaplicaLaVentana(t *testing.T) {
	repo := &fakeSalesRepo{
		daily: []entity.DailySales{
			{Date: time.Now(), Location: entity.LocationHillDonut, NetSales: dec(100)},
			{Date: time.Now().AddDate(0, 0, -45), Location: entity.LocationHillDonut, NetSales: dec(999)},
		},
	}
	uc := NewDashboardUseCase(repo, testLogger())

	out, err := uc.GetOverview(context.Background(), 14)

	require.NoError(t, err)
	assert.True(t, out.KPIs.TotalSales.Equal(dec(100)), "el registro viejo no debe sumar")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GetTopItems / GetServerTips — validación de sede
// ──────────────────────────────────────────────────────────────────────────────

func TestGetTopItems_SedeDesconocida(t *testing.T) {
	uc := NewDashboardUseCase(&fakeSalesRepo{}, testLogger())

	_, err := uc.GetTopItems(context.Background(), 14, "food_truck", 10)

	assert.ErrorIs(t, err, domain.ErrUnknownLocation)
}

func TestGetTopItems_FiltroAllEsValido(t *testing.T) {
	uc := NewDashboardUseCase(&fakeSalesRepo{}, testLogger())

	out, err := uc.GetTopItems(context.Background(), 14, entity.LocationAll, 10)

	require.NoError(t, err)
	assert.Equal(t, entity.LocationAll, out.Location)
}

func TestGetServerTips_SedeDesconocida(t *testing.T) {
	uc := NewDashboardUseCase(&fakeSalesRepo{}, testLogger())

	_, err := uc.GetServerTips(context.Background(), 14, "food_truck")

	assert.ErrorIs(t, err, domain.ErrUnknownLocation)
}

func TestGetServerTips_SinDatosDevuelveListaVacia(t *testing.T) {
	uc := NewDashboardUseCase(&fakeSalesRepo{}, testLogger())

	out, err := uc.GetServerTips(context.Background(), 14, entity.LocationAll)

	require.NoError(t, err)
	assert.NotNil(t, out.Servers)
	assert.Empty(t, out.Servers)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GetLocationDaily
// ──────────────────────────────────────────────────────────────────────────────

func TestGetLocationDaily_SedeDesconocida(t *testing.T) {
	uc := NewDashboardUseCase(&fakeSalesRepo{}, testLogger())

	_, err := uc.GetLocationDaily(context.Background(), "food_truck", 14)

	assert.ErrorIs(t, err, domain.ErrUnknownLocation)
}

// Las tarjetas salen más recientes primero y con tope de 7 aunque la ventana
// traiga más días.
func TestGetLocationDaily_RecientesPrimeroConTope(t *testing.T) {
	var records []entity.DailySales
	for i := 0; i < 10; i++ {
		records = append(records, entity.DailySales{
			Date:     time.Now().AddDate(0, 0, -i),
			Location: entity.LocationHillDonut,
			NetSales: dec(float64(100 + i)),
		})
	}
	uc := NewDashboardUseCase(&fakeSalesRepo{daily: records}, testLogger())

	out, err := uc.GetLocationDaily(context.Background(), entity.LocationHillDonut, 30)

	require.NoError(t, err)
	require.Len(t, out.Days, 7)
	assert.Greater(t, out.Days[0].Date, out.Days[1].Date, "fecha descendente")
}

// Solo aparecen los días de la sede pedida.
func TestGetLocationDaily_FiltraPorSede(t *testing.T) {
	today := time.Now()
	repo := &fakeSalesRepo{
		daily: []entity.DailySales{
			{Date: today, Location: entity.LocationHillDonut, NetSales: dec(800)},
			{Date: today, Location: entity.LocationRedBarn, NetSales: dec(400)},
		},
	}
	uc := NewDashboardUseCase(repo, testLogger())

	out, err := uc.GetLocationDaily(context.Background(), entity.LocationRedBarn, 14)

	require.NoError(t, err)
	require.Len(t, out.Days, 1)
	assert.True(t, out.Days[0].NetSales.Equal(dec(400)))
}

// El promedio del pedido online de la tarjeta se deriva del propio registro.
func TestGetLocationDaily_AvgOnlinePorTarjeta(t *testing.T) {
	repo := &fakeSalesRepo{
		daily: []entity.DailySales{
			{Date: time.Now(), Location: entity.LocationRedBarn, NetSales: dec(400),
				OnlineSales: decPtr(120), OnlineOrderCount: intPtr(4)},
		},
	}
	uc := NewDashboardUseCase(repo, testLogger())

	out, err := uc.GetLocationDaily(context.Background(), entity.LocationRedBarn, 14)

	require.NoError(t, err)
	require.Len(t, out.Days, 1)
	assert.Equal(t, "30.00", out.Days[0].AvgOnlineOrder.StringFixed(2))
}
