// Package pdf implementa la generación del reporte de ventas del período
// que los dueños imprimen o reciben por correo.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + rango de fechas del período                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Ventas | Online | Propinas | Checks | Ticket | Media  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SEDES: tabla lado a lado (ventas, checks, ticket por sede)  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOP PRODUCTOS: # | Sede | Producto | Cant | Ventas          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ONLINE vs POS: promedios y diferencia                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/bbq-dashboard-api/internal/application/reports"
	"github.com/jhoicas/bbq-dashboard-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 180, Green: 60, Blue: 30}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// usPrinter agrupa miles al estilo de EE.UU. ("1,234.56").
var usPrinter = message.NewPrinter(language.AmericanEnglish)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa reports.SalesReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

var _ reports.SalesReportGenerator = (*MarotoReportGenerator)(nil)

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateSalesReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateSalesReport(
	_ context.Context,
	data *reports.SalesReportData,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Ventas", true).
		Build()

	m := maroto.New(cfg)

	// Header
	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	// KPIs del período
	m.AddRows(sectionTitleRow("INDICADORES DEL PERÍODO"))
	m.AddRows(kpiRows(data)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	// Comparación por sede
	m.AddRows(sectionTitleRow("VENTAS POR SEDE"))
	m.AddRows(locationHeaderRow())
	for _, r := range locationRows(data) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	// Top productos
	m.AddRows(sectionTitleRow("TOP PRODUCTOS"))
	m.AddRows(itemsHeaderRow())
	for _, r := range itemRows(data) {
		m.AddRows(r)
	}

	// Online vs POS (solo si la sede online tuvo pedidos en la ventana)
	if len(data.Online.Rows) > 0 {
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		m.AddRows(sectionTitleRow("PEDIDOS ONLINE vs. MOSTRADOR"))
		m.AddRows(onlineRow(data))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y rango de fechas del período (der).
func headerRow(data *reports.SalesReportData) core.Row {
	rango := fmt.Sprintf("%s — %s  (%d días)",
		data.Period.StartDate, data.Period.EndDate, data.Period.LookbackDays)

	return row.New(14).Add(
		col.New(7).Add(
			text.New("Reporte de Ventas", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(reportSubtitle(), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PERÍODO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(rango, props.Text{
				Size: 9, Align: align.Right, Top: 7,
			}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}),
	))
}

// kpiRows: dos filas de tres tarjetas cada una.
func kpiRows(data *reports.SalesReportData) []core.Row {
	card := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 5}),
		)
	}
	k := data.KPIs
	return []core.Row{
		row.New(12).Add(
			card("Ventas totales", currency(k.TotalSales)),
			card("Ventas online", currency(k.TotalOnline)),
			card("Propinas", currency(k.TotalTips)),
		),
		row.New(12).Add(
			card("Checks", usPrinter.Sprintf("%d", k.TotalChecks)),
			card("Ticket promedio", currency(k.AvgCheck)),
			card("Promedio diario", currency(k.DailyAvg)),
		),
	}
}

// locationHeaderRow: cabecera de la tabla de sedes.
func locationHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorGray, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("Sede", 4, align.Left),
		h("Ventas netas", 3, align.Right),
		h("Checks", 2, align.Right),
		h("Ticket prom.", 3, align.Right),
	)
}

// locationRows: una fila por sede más la fila combinada.
func locationRows(data *reports.SalesReportData) []core.Row {
	cell := func(s string, size int, a align.Type, bold bool) core.Col {
		st := fontstyle.Normal
		if bold {
			st = fontstyle.Bold
		}
		return col.New(size).Add(text.New(s, props.Text{
			Style: st, Size: 8, Align: a, Top: 1,
		}))
	}

	var result []core.Row
	for _, ls := range data.Comparison.Locations {
		result = append(result, row.New(6).Add(
			cell(ls.Location.Name, 4, align.Left, false),
			cell(currency(ls.Summary.TotalNetSales), 3, align.Right, false),
			cell(usPrinter.Sprintf("%d", ls.Summary.TotalChecks), 2, align.Right, false),
			cell(currency(ls.Summary.AverageCheck), 3, align.Right, false),
		))
	}
	comb := data.Comparison.Combined
	result = append(result, row.New(6).Add(
		cell("Combinado", 4, align.Left, true),
		cell(currency(comb.TotalNetSales), 3, align.Right, true),
		cell(usPrinter.Sprintf("%d", comb.TotalChecks), 2, align.Right, true),
		cell(currency(comb.AverageCheck), 3, align.Right, true),
	))
	return result
}

// itemsHeaderRow: cabecera de la tabla de productos.
func itemsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorGray, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("#", 1, align.Center),
		h("Sede", 3, align.Left),
		h("Producto", 4, align.Left),
		h("Cant.", 1, align.Right),
		h("Ventas", 3, align.Right),
	)
}

// itemRows: una fila por producto del ranking.
func itemRows(data *reports.SalesReportData) []core.Row {
	result := make([]core.Row, 0, len(data.TopItems))
	for _, it := range data.TopItems {
		result = append(result, row.New(6).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Rank),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				it.LocationName,
				props.Text{Size: 8, Align: align.Left, Top: 1},
			)),
			col.New(4).Add(text.New(
				it.ItemName,
				props.Text{Size: 8, Align: align.Left, Top: 1},
			)),
			col.New(1).Add(text.New(
				usPrinter.Sprintf("%d", it.QuantitySold),
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
			col.New(3).Add(text.New(
				currency(it.GrossSales),
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
		))
	}
	return result
}

// onlineRow: promedios online vs mostrador y la diferencia con signo.
func onlineRow(data *reports.SalesReportData) core.Row {
	o := data.Online
	card := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 5}),
		)
	}
	diff := currency(o.Difference)
	if o.Difference.IsPositive() {
		diff = "+" + diff
	}
	return row.New(12).Add(
		card("Pedido online promedio", currency(o.AvgOnlineOrder)),
		card("Ticket POS promedio", currency(o.AvgPOSCheck)),
		card("Diferencia", diff),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// reportSubtitle nombres de las sedes tal como figuran en el registro.
func reportSubtitle() string {
	names := make([]string, 0, 2)
	for _, loc := range entity.Locations() {
		names = append(names, loc.Name)
	}
	return strings.Join(names, " + ")
}

// currency formatea un monto con símbolo y miles al estilo "$1,234.56".
func currency(d decimal.Decimal) string {
	return usPrinter.Sprintf("$%.2f", d.InexactFloat64())
}
