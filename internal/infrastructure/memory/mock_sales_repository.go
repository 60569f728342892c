// Package memory implementa SalesRepository con un dataset sintético en
// memoria para demo y desarrollo local sin conexión a la base.
package memory

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bbq-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/bbq-dashboard-api/internal/domain/repository"
)

var _ repository.SalesRepository = (*MockSalesRepo)(nil)

// mockDays días de historia que genera el dataset (cubre la ventana máxima de la UI).
const mockDays = 30

// MockSalesRepo dataset sintético generado una vez al construir; las
// consultas aplican la misma ventana y el mismo orden descendente que el
// adaptador de Postgres.
type MockSalesRepo struct {
	daily []entity.DailySales
	items []entity.ItemSales
	tips  []entity.ServerTips
}

// NewMockSalesRepository genera el dataset con la semilla dada (misma semilla,
// mismos datos; útil para demos reproducibles).
func NewMockSalesRepository(seed int64) *MockSalesRepo {
	rng := rand.New(rand.NewSource(seed))
	today := time.Now()
	return &MockSalesRepo{
		daily: GenerateDailySales(rng, today, mockDays),
		items: GenerateItemSales(rng, today, mockDays),
		tips:  GenerateServerTips(rng, today, mockDays),
	}
}

// GetDailySales filtra el dataset a la ventana, fecha descendente.
func (r *MockSalesRepo) GetDailySales(_ context.Context, lookbackDays int) ([]entity.DailySales, error) {
	cutoff := cutoffDate(lookbackDays)
	var out []entity.DailySales
	for _, rec := range r.daily {
		if !rec.Date.Before(cutoff) {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

// GetItemSales filtra el dataset a la ventana, fecha descendente.
func (r *MockSalesRepo) GetItemSales(_ context.Context, lookbackDays int) ([]entity.ItemSales, error) {
	cutoff := cutoffDate(lookbackDays)
	var out []entity.ItemSales
	for _, rec := range r.items {
		if !rec.Date.Before(cutoff) {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

// GetServerTips filtra el dataset a la ventana, fecha descendente.
func (r *MockSalesRepo) GetServerTips(_ context.Context, lookbackDays int) ([]entity.ServerTips, error) {
	cutoff := cutoffDate(lookbackDays)
	var out []entity.ServerTips
	for _, rec := range r.tips {
		if !rec.Date.Before(cutoff) {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func cutoffDate(lookbackDays int) time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -lookbackDays)
}

// ── Generadores ───────────────────────────────────────────────────────────────

// GenerateDailySales produce `days` días de totales por sede terminando hoy.
// Hill Donut factura más volumen; Red Barn suma pedidos web. Los fines de
// semana llevan un multiplicador de 1.4.
func GenerateDailySales(rng *rand.Rand, today time.Time, days int) []entity.DailySales {
	var data []entity.DailySales

	for i := days - 1; i >= 0; i-- {
		date := dateOnly(today).AddDate(0, 0, -i)
		weekend := 1.0
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			weekend = 1.4
		}

		// Hill Donut: mayor volumen, sin canal online
		hdSales := money((800 + rng.Float64()*400) * weekend)
		hdCash := money(hdSales.InexactFloat64() * (0.08 + rng.Float64()*0.05))
		hdCredit := hdSales.Sub(hdCash)
		hdTips := money(hdCredit.InexactFloat64() * (0.08 + rng.Float64()*0.04))
		hdChecks := int(hdSales.InexactFloat64()/15) + rng.Intn(10)

		data = append(data, entity.DailySales{
			ID:              uuid.NewString(),
			Date:            date,
			Location:        entity.LocationHillDonut,
			NetSales:        hdSales,
			CashSales:       hdCash,
			CreditCardSales: hdCredit,
			CreditCardTips:  hdTips,
			NetCash:         hdCash.Sub(hdTips),
			CheckCount:      hdChecks,
			GuestCount:      int(hdSales.InexactFloat64()/12) + rng.Intn(15),
			CheckAverage:    avgCheck(hdSales, hdChecks),
			CreatedAt:       today,
		})

		// Red Barn: menor volumen, con pedidos web
		rbSales := money((400 + rng.Float64()*300) * weekend)
		rbCash := money(rbSales.InexactFloat64() * (0.05 + rng.Float64()*0.08))
		rbCredit := rbSales.Sub(rbCash)
		rbTips := money(rbCredit.InexactFloat64() * (0.06 + rng.Float64()*0.05))
		rbChecks := int(rbSales.InexactFloat64()/25) + rng.Intn(8)
		rbOnline := money((50 + rng.Float64()*150) * weekend)
		rbOrders := int(rbOnline.InexactFloat64()/35) + rng.Intn(3)
		rbFailed := 0
		if rng.Float64() > 0.7 {
			rbFailed = rng.Intn(3)
		}

		data = append(data, entity.DailySales{
			ID:                uuid.NewString(),
			Date:              date,
			Location:          entity.LocationRedBarn,
			NetSales:          rbSales,
			CashSales:         rbCash,
			CreditCardSales:   rbCredit,
			CreditCardTips:    rbTips,
			NetCash:           rbCash.Sub(rbTips),
			CheckCount:        rbChecks,
			GuestCount:        int(rbSales.InexactFloat64()/20) + rng.Intn(10),
			CheckAverage:      avgCheck(rbSales, rbChecks),
			OnlineSales:       &rbOnline,
			OnlineOrderCount:  &rbOrders,
			OnlineFailedCount: &rbFailed,
			CreatedAt:         today,
		})
	}

	return data
}

// menú sintético por sede: nombre, categoría, cantidad base y precio.
type mockItem struct {
	name     string
	category string
	baseQty  int
	price    float64
}

var hdMenu = []mockItem{
	{"Glazed Donut", "Donuts", 45, 2.50},
	{"Pancake Stack", "Breakfast", 28, 12.99},
	{"Coffee (Large)", "Beverages", 65, 3.50},
	{"Bacon Egg & Cheese", "Breakfast", 22, 9.99},
	{"Apple Fritter", "Donuts", 18, 3.99},
}

var rbMenu = []mockItem{
	{"Bacon Barn Burger", "Burgers", 15, 14.99},
	{"Classic Burger", "Burgers", 12, 12.99},
	{"Bacon Mac Attack", "Burgers", 10, 15.99},
	{"Smoked Wings (12ct)", "Appetizers", 8, 16.99},
	{"Fresh Lemonade", "Beverages", 25, 4.50},
	{"Apple Cider Donuts", "Desserts", 20, 5.99},
}

// GenerateItemSales produce ventas por producto para cada día y sede.
func GenerateItemSales(rng *rand.Rand, today time.Time, days int) []entity.ItemSales {
	var data []entity.ItemSales

	emit := func(date time.Time, loc entity.LocationID, menu []mockItem) {
		for _, it := range menu {
			qty := it.baseQty/2 + rng.Intn(it.baseQty)
			data = append(data, entity.ItemSales{
				ID:           uuid.NewString(),
				Date:         date,
				Location:     loc,
				ItemName:     it.name,
				Category:     it.category,
				QuantitySold: qty,
				GrossSales:   money(float64(qty) * it.price),
			})
		}
	}

	for i := days - 1; i >= 0; i-- {
		date := dateOnly(today).AddDate(0, 0, -i)
		emit(date, entity.LocationHillDonut, hdMenu)
		emit(date, entity.LocationRedBarn, rbMenu)
	}
	return data
}

var hdServers = []string{"Taylor Wilkes", "Antonio Medina", "Sarah Johnson"}
var rbServers = []string{"Mike Chen", "Jessica Torres"}

// GenerateServerTips produce propinas por mesero. Red Barn algunos días opera
// el dueño y no hay propinas declaradas.
func GenerateServerTips(rng *rand.Rand, today time.Time, days int) []entity.ServerTips {
	var data []entity.ServerTips

	for i := days - 1; i >= 0; i-- {
		date := dateOnly(today).AddDate(0, 0, -i)

		for idx, name := range hdServers {
			job := "Server"
			card := money(40 + rng.Float64()*60)
			if idx == 1 { // turno de prep, sin propinas
				job = "Prep"
				card = decimal.Zero
			}
			data = append(data, entity.ServerTips{
				ID:         uuid.NewString(),
				Date:       date,
				Location:   entity.LocationHillDonut,
				ServerName: name,
				JobTitle:   job,
				CashTips:   decimal.Zero,
				CardTips:   card,
				TotalTips:  card,
			})
		}

		if rng.Float64() > 0.3 {
			for _, name := range rbServers {
				card := money(25 + rng.Float64()*40)
				data = append(data, entity.ServerTips{
					ID:         uuid.NewString(),
					Date:       date,
					Location:   entity.LocationRedBarn,
					ServerName: name,
					JobTitle:   "Server",
					CashTips:   decimal.Zero,
					CardTips:   card,
					TotalTips:  card,
				})
			}
		}
	}
	return data
}

// ── helpers ───────────────────────────────────────────────────────────────────

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func money(v float64) decimal.Decimal { return decimal.NewFromFloat(v).Round(2) }

func avgCheck(sales decimal.Decimal, checks int) decimal.Decimal {
	if checks <= 0 {
		return decimal.Zero
	}
	return sales.Div(decimal.NewFromInt(int64(checks))).Round(2)
}
