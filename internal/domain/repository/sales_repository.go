package repository

import (
	"context"

	"github.com/jhoicas/bbq-dashboard-api/internal/domain/entity"
)

// SalesRepository define las consultas de lectura del dashboard de ventas.
// Las implementaciones son read-only (el pipeline de sincronización POS
// escribe por fuera de este servicio).
//
// Contrato común de los tres métodos:
//   - Devuelven registros con date >= hoy - lookbackDays (inclusive),
//     ordenados por fecha DESCENDENTE (orden del colaborador).
//   - El motor NO debe reutilizar ese orden: donde necesita ascendente,
//     reordena internamente.
//   - Un resultado vacío es válido ("sin datos"), nunca un error.
type SalesRepository interface {
	// GetDailySales devuelve los totales diarios por sede dentro de la ventana.
	GetDailySales(ctx context.Context, lookbackDays int) ([]entity.DailySales, error)

	// GetItemSales devuelve las ventas por producto dentro de la ventana.
	GetItemSales(ctx context.Context, lookbackDays int) ([]entity.ItemSales, error)

	// GetServerTips devuelve las propinas por mesero dentro de la ventana.
	GetServerTips(ctx context.Context, lookbackDays int) ([]entity.ServerTips, error)
}
