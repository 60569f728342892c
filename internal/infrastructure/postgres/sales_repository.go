package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/bbq-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/bbq-dashboard-api/internal/domain/repository"
)

var _ repository.SalesRepository = (*SalesRepo)(nil)

// SalesRepo consultas de solo lectura sobre las tablas del dashboard.
//
// Las tres consultas aplican la ventana en SQL (date >= CURRENT_DATE - N) y
// devuelven fecha DESCENDENTE, que es el contrato del colaborador de fetch;
// el motor reordena en memoria donde necesita ascendente.
type SalesRepo struct {
	pool *pgxpool.Pool
}

// NewSalesRepository construye el adaptador.
func NewSalesRepository(pool *pgxpool.Pool) *SalesRepo {
	return &SalesRepo{pool: pool}
}

// GetDailySales devuelve los totales diarios por sede dentro de la ventana.
// Las columnas online son nullable: se escanean a punteros y el dominio
// normaliza ausencia a cero donde corresponde.
func (r *SalesRepo) GetDailySales(ctx context.Context, lookbackDays int) ([]entity.DailySales, error) {
	const query = `
	SELECT
	    id, date, location,
	    net_sales, cash_sales, credit_card_sales, credit_card_tips, net_cash,
	    check_count, guest_count, check_average,
	    online_sales, online_order_count, online_failed_count,
	    created_at
	FROM daily_sales
	WHERE date >= CURRENT_DATE - $1::int
	ORDER BY date DESC`

	rows, err := r.pool.Query(ctx, query, lookbackDays)
	if err != nil {
		return nil, fmt.Errorf("sales.GetDailySales: %w", err)
	}
	defer rows.Close()

	var results []entity.DailySales
	for rows.Next() {
		var row entity.DailySales
		if err := rows.Scan(
			&row.ID,
			&row.Date,
			&row.Location,
			&row.NetSales,
			&row.CashSales,
			&row.CreditCardSales,
			&row.CreditCardTips,
			&row.NetCash,
			&row.CheckCount,
			&row.GuestCount,
			&row.CheckAverage,
			&row.OnlineSales,
			&row.OnlineOrderCount,
			&row.OnlineFailedCount,
			&row.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("sales.GetDailySales scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetItemSales devuelve las ventas por producto dentro de la ventana.
func (r *SalesRepo) GetItemSales(ctx context.Context, lookbackDays int) ([]entity.ItemSales, error) {
	const query = `
	SELECT
	    id, date, location, item_name, category, quantity_sold, gross_sales
	FROM item_sales
	WHERE date >= CURRENT_DATE - $1::int
	ORDER BY date DESC`

	rows, err := r.pool.Query(ctx, query, lookbackDays)
	if err != nil {
		return nil, fmt.Errorf("sales.GetItemSales: %w", err)
	}
	defer rows.Close()

	var results []entity.ItemSales
	for rows.Next() {
		var row entity.ItemSales
		if err := rows.Scan(
			&row.ID,
			&row.Date,
			&row.Location,
			&row.ItemName,
			&row.Category,
			&row.QuantitySold,
			&row.GrossSales,
		); err != nil {
			return nil, fmt.Errorf("sales.GetItemSales scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetServerTips devuelve las propinas por mesero dentro de la ventana.
func (r *SalesRepo) GetServerTips(ctx context.Context, lookbackDays int) ([]entity.ServerTips, error) {
	const query = `
	SELECT
	    id, date, location, server_name, job_title,
	    cash_tips, card_tips, total_tips
	FROM server_tips
	WHERE date >= CURRENT_DATE - $1::int
	ORDER BY date DESC`

	rows, err := r.pool.Query(ctx, query, lookbackDays)
	if err != nil {
		return nil, fmt.Errorf("sales.GetServerTips: %w", err)
	}
	defer rows.Close()

	var results []entity.ServerTips
	for rows.Next() {
		var row entity.ServerTips
		if err := rows.Scan(
			&row.ID,
			&row.Date,
			&row.Location,
			&row.ServerName,
			&row.JobTitle,
			&row.CashTips,
			&row.CardTips,
			&row.TotalTips,
		); err != nil {
			return nil, fmt.Errorf("sales.GetServerTips scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
