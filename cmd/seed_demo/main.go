// seed_demo genera un script SQL con datos de demostración (mismo dataset
// sintético que sirve el modo demo en memoria) para poblar una base local.
//
// Uso: go run ./cmd/seed_demo [días] [semilla]
// Por defecto genera 30 días con semilla fija.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_demo.sql
package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/bbq-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/bbq-dashboard-api/internal/infrastructure/memory"
)

const outputPath = "internal/infrastructure/postgres/migrations/002_seed_demo.sql"

func main() {
	days := 30
	seed := int64(20240101)
	if len(os.Args) > 1 {
		if n, err := strconv.Atoi(os.Args[1]); err == nil && n > 0 {
			days = n
		}
	}
	if len(os.Args) > 2 {
		if n, err := strconv.ParseInt(os.Args[2], 10, 64); err == nil {
			seed = n
		}
	}

	rng := rand.New(rand.NewSource(seed))
	today := time.Now()

	daily := memory.GenerateDailySales(rng, today, days)
	items := memory.GenerateItemSales(rng, today, days)
	tips := memory.GenerateServerTips(rng, today, days)

	var sb strings.Builder
	sb.WriteString("-- Datos de demostración generados por cmd/seed_demo.\n")
	sb.WriteString(fmt.Sprintf("-- %d días terminando en %s, semilla %d.\n\n",
		days, today.Format(entity.DateLayout), seed))

	sb.WriteString("BEGIN;\n\n")
	sb.WriteString("DELETE FROM server_tips;\nDELETE FROM item_sales;\nDELETE FROM daily_sales;\n\n")

	for _, d := range daily {
		online, orders, failed := "NULL", "NULL", "NULL"
		if d.OnlineSales != nil {
			online = d.OnlineSales.StringFixed(2)
		}
		if d.OnlineOrderCount != nil {
			orders = strconv.Itoa(*d.OnlineOrderCount)
		}
		if d.OnlineFailedCount != nil {
			failed = strconv.Itoa(*d.OnlineFailedCount)
		}
		sb.WriteString(fmt.Sprintf(
			"INSERT INTO daily_sales (id, date, location, net_sales, cash_sales, credit_card_sales, credit_card_tips, net_cash, check_count, guest_count, check_average, online_sales, online_order_count, online_failed_count)\n"+
				"VALUES ('%s', '%s', '%s', %s, %s, %s, %s, %s, %d, %d, %s, %s, %s, %s);\n",
			d.ID, d.DateKey(), d.Location,
			d.NetSales.StringFixed(2), d.CashSales.StringFixed(2),
			d.CreditCardSales.StringFixed(2), d.CreditCardTips.StringFixed(2),
			d.NetCash.StringFixed(2),
			d.CheckCount, d.GuestCount, d.CheckAverage.StringFixed(2),
			online, orders, failed,
		))
	}
	sb.WriteString("\n")

	for _, it := range items {
		sb.WriteString(fmt.Sprintf(
			"INSERT INTO item_sales (id, date, location, item_name, category, quantity_sold, gross_sales)\n"+
				"VALUES ('%s', '%s', '%s', '%s', '%s', %d, %s);\n",
			it.ID, it.DateKey(), it.Location,
			sqlEscape(it.ItemName), sqlEscape(it.Category),
			it.QuantitySold, it.GrossSales.StringFixed(2),
		))
	}
	sb.WriteString("\n")

	for _, tp := range tips {
		sb.WriteString(fmt.Sprintf(
			"INSERT INTO server_tips (id, date, location, server_name, job_title, cash_tips, card_tips, total_tips)\n"+
				"VALUES ('%s', '%s', '%s', '%s', '%s', %s, %s, %s);\n",
			tp.ID, tp.DateKey(), tp.Location,
			sqlEscape(tp.ServerName), sqlEscape(tp.JobTitle),
			tp.CashTips.StringFixed(2), tp.CardTips.StringFixed(2), tp.TotalTips.StringFixed(2),
		))
	}

	sb.WriteString("\nCOMMIT;\n")

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Crear directorio: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(outputPath, []byte(sb.String()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generado %s: %d daily, %d items, %d tips\n",
		outputPath, len(daily), len(items), len(tips))
}

// sqlEscape duplica comillas simples para literales SQL.
func sqlEscape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
