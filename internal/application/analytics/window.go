// Package analytics contiene el motor de agregación del dashboard de ventas:
// transformaciones puras sobre colecciones en memoria (selección de ventana,
// resúmenes, series de tiempo, ranking de items y comparador online/POS) más
// el caso de uso que las orquesta contra el repositorio de lectura.
package analytics

import (
	"time"

	"github.com/jhoicas/bbq-dashboard-api/internal/domain/entity"
)

// dateOnly trunca un instante a su fecha calendario (medianoche local).
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// windowCutoff calcula el corte inclusivo de la ventana: referenceNow menos
// lookbackDays en unidades de día calendario (AddDate, no resta de
// milisegundos) para no acumular sesgo por DST o zona horaria.
// Un referenceNow cero significa "ahora"; los tests siempre lo inyectan.
func windowCutoff(lookbackDays int, referenceNow time.Time) time.Time {
	if referenceNow.IsZero() {
		referenceNow = time.Now()
	}
	return dateOnly(referenceNow).AddDate(0, 0, -lookbackDays)
}

// SelectWindow filtra los registros diarios cuya fecha sea igual o posterior
// al corte (referenceNow - lookbackDays), preservando el orden de entrada.
// Sin efectos secundarios; determinista dado referenceNow.
func SelectWindow(records []entity.DailySales, lookbackDays int, referenceNow time.Time) []entity.DailySales {
	cutoff := windowCutoff(lookbackDays, referenceNow)
	out := make([]entity.DailySales, 0, len(records))
	for _, r := range records {
		if !dateOnly(r.Date).Before(cutoff) {
			out = append(out, r)
		}
	}
	return out
}

// SelectItemWindow filtra registros de ventas por producto con el mismo
// criterio de corte que SelectWindow.
func SelectItemWindow(records []entity.ItemSales, lookbackDays int, referenceNow time.Time) []entity.ItemSales {
	cutoff := windowCutoff(lookbackDays, referenceNow)
	out := make([]entity.ItemSales, 0, len(records))
	for _, r := range records {
		if !dateOnly(r.Date).Before(cutoff) {
			out = append(out, r)
		}
	}
	return out
}

// SelectTipsWindow filtra registros de propinas con el mismo corte.
func SelectTipsWindow(records []entity.ServerTips, lookbackDays int, referenceNow time.Time) []entity.ServerTips {
	cutoff := windowCutoff(lookbackDays, referenceNow)
	out := make([]entity.ServerTips, 0, len(records))
	for _, r := range records {
		if !dateOnly(r.Date).Before(cutoff) {
			out = append(out, r)
		}
	}
	return out
}
