package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bbq-dashboard-api/internal/application/dto"
	"github.com/jhoicas/bbq-dashboard-api/internal/domain"
	"github.com/jhoicas/bbq-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/bbq-dashboard-api/internal/domain/repository"
	"github.com/jhoicas/bbq-dashboard-api/pkg/logger"
)

// dailyDetailCap máximo de tarjetas de día en el detalle por sede.
const dailyDetailCap = 7

// DashboardUseCase orquesta el pipeline del dashboard:
// repositorio → selector de ventana → agregadores → DTOs.
//
// Un fallo de fetch se recupera AQUÍ sustituyéndolo por la colección vacía
// (con log de warn): las funciones de agregación nunca ven el error y el
// cliente recibe un estado "sin datos", jamás un 500 por fallo de store.
type DashboardUseCase struct {
	salesRepo repository.SalesRepository
	log       *logger.Logger
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(salesRepo repository.SalesRepository, log *logger.Logger) *DashboardUseCase {
	return &DashboardUseCase{salesRepo: salesRepo, log: log}
}

// fetchDailySales trae los registros diarios de la ventana; en fallo devuelve
// la colección vacía (contrato de la interfaz de fetch: vacío = sin datos).
func (uc *DashboardUseCase) fetchDailySales(ctx context.Context, lookbackDays int) []entity.DailySales {
	records, err := uc.salesRepo.GetDailySales(ctx, lookbackDays)
	if err != nil {
		uc.log.Warn().Err(err).Int("lookback_days", lookbackDays).
			Msg("fetch de ventas diarias falló; se continúa con colección vacía")
		return nil
	}
	return records
}

func (uc *DashboardUseCase) fetchItemSales(ctx context.Context, lookbackDays int) []entity.ItemSales {
	records, err := uc.salesRepo.GetItemSales(ctx, lookbackDays)
	if err != nil {
		uc.log.Warn().Err(err).Int("lookback_days", lookbackDays).
			Msg("fetch de ventas por producto falló; se continúa con colección vacía")
		return nil
	}
	return records
}

func (uc *DashboardUseCase) fetchServerTips(ctx context.Context, lookbackDays int) []entity.ServerTips {
	records, err := uc.salesRepo.GetServerTips(ctx, lookbackDays)
	if err != nil {
		uc.log.Warn().Err(err).Int("lookback_days", lookbackDays).
			Msg("fetch de propinas falló; se continúa con colección vacía")
		return nil
	}
	return records
}

// period arma el PeriodDTO resuelto para una ventana terminada hoy.
func period(lookbackDays int, now time.Time) dto.PeriodDTO {
	return dto.PeriodDTO{
		LookbackDays: lookbackDays,
		StartDate:    windowCutoff(lookbackDays, now).Format(entity.DateLayout),
		EndDate:      dateOnly(now).Format(entity.DateLayout),
	}
}

// GetOverview construye la respuesta principal del dashboard: KPIs, serie de
// tiempo y comparación por sede, todo derivado de un único fetch ventaneado.
// El repositorio ya aplica la ventana en SQL; el selector se re-aplica en
// memoria con el instante de referencia explícito para que el corte sea
// exacto e idéntico al de los demás endpoints.
func (uc *DashboardUseCase) GetOverview(ctx context.Context, lookbackDays int) (*dto.DashboardOverviewDTO, error) {
	now := time.Now()
	records := SelectWindow(uc.fetchDailySales(ctx, lookbackDays), lookbackDays, now)

	return &dto.DashboardOverviewDTO{
		Period:     period(lookbackDays, now),
		KPIs:       ComputeKPIs(records),
		TimeSeries: BuildTimeSeries(records),
		Comparison: CompareLocations(records),
	}, nil
}

// GetTopItems devuelve el ranking de productos más vendidos en la ventana.
// locationFilter: id de sede o "all"; limit <= 0 usa el default del motor.
func (uc *DashboardUseCase) GetTopItems(ctx context.Context, lookbackDays int, locationFilter string, limit int) (*dto.TopItemsDTO, error) {
	if locationFilter != entity.LocationAll && !entity.IsValidLocation(entity.LocationID(locationFilter)) {
		return nil, domain.ErrUnknownLocation
	}

	now := time.Now()
	records := SelectItemWindow(uc.fetchItemSales(ctx, lookbackDays), lookbackDays, now)

	return &dto.TopItemsDTO{
		Period:   period(lookbackDays, now),
		Location: locationFilter,
		Items:    TopItems(records, locationFilter, limit),
	}, nil
}

// GetOnlineComparison devuelve la comparación online vs POS de la sede con
// pedidos web para la ventana dada.
func (uc *DashboardUseCase) GetOnlineComparison(ctx context.Context, lookbackDays int) (*dto.OnlineComparisonDTO, error) {
	now := time.Now()
	records := SelectWindow(uc.fetchDailySales(ctx, lookbackDays), lookbackDays, now)

	out := CompareOnlineVsInStore(records)
	out.Period = period(lookbackDays, now)
	return &out, nil
}

// GetLocationDaily devuelve las tarjetas de día de una sede, más recientes
// primero, tope de 7 (el mismo recorte de la vista original por pestaña).
func (uc *DashboardUseCase) GetLocationDaily(ctx context.Context, locationID entity.LocationID, lookbackDays int) (*dto.LocationDailyDTO, error) {
	loc, ok := entity.LocationByID(locationID)
	if !ok {
		return nil, domain.ErrUnknownLocation
	}

	now := time.Now()
	records := SelectWindow(uc.fetchDailySales(ctx, lookbackDays), lookbackDays, now)

	var days []dto.DailyDetailDTO
	for _, r := range records {
		if r.Location != locationID {
			continue
		}
		days = append(days, buildDailyDetail(r))
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date > days[j].Date })
	if len(days) > dailyDetailCap {
		days = days[:dailyDetailCap]
	}
	if days == nil {
		days = []dto.DailyDetailDTO{}
	}

	return &dto.LocationDailyDTO{
		Period:   period(lookbackDays, now),
		Location: loc,
		Days:     days,
	}, nil
}

// GetServerTips devuelve el total de propinas por mesero en la ventana.
func (uc *DashboardUseCase) GetServerTips(ctx context.Context, lookbackDays int, locationFilter string) (*dto.ServerTipsDTO, error) {
	if locationFilter != entity.LocationAll && !entity.IsValidLocation(entity.LocationID(locationFilter)) {
		return nil, domain.ErrUnknownLocation
	}

	now := time.Now()
	records := SelectTipsWindow(uc.fetchServerTips(ctx, lookbackDays), lookbackDays, now)

	servers := TipsByServer(records, locationFilter)
	if servers == nil {
		servers = []dto.ServerTipsRowDTO{}
	}
	return &dto.ServerTipsDTO{
		Period:   period(lookbackDays, now),
		Location: locationFilter,
		Servers:  servers,
	}, nil
}

// buildDailyDetail convierte un registro diario en tarjeta de detalle.
func buildDailyDetail(r entity.DailySales) dto.DailyDetailDTO {
	avgOnline := decimal.Zero
	if r.HasOnlineOrders() {
		avgOnline = r.OnlineSalesOrZero().
			Div(decimal.NewFromInt(int64(r.OnlineOrders()))).
			Round(2)
	}
	return dto.DailyDetailDTO{
		ID:              r.ID,
		Date:            r.DateKey(),
		DateLabel:       r.Date.Format("Mon, Jan 2"),
		NetSales:        r.NetSales,
		CashSales:       r.CashSales,
		CreditCardSales: r.CreditCardSales,
		CreditCardTips:  r.CreditCardTips,
		CheckCount:      r.CheckCount,
		GuestCount:      r.GuestCount,
		CheckAverage:    r.CheckAverage,
		OnlineSales:     r.OnlineSalesOrZero(),
		OnlineOrders:    r.OnlineOrders(),
		AvgOnlineOrder:  avgOnline,
	}
}
