package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/bbq-dashboard-api/internal/application/analytics"
	"github.com/jhoicas/bbq-dashboard-api/internal/application/dto"
	"github.com/jhoicas/bbq-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/bbq-dashboard-api/internal/domain/repository"
	"github.com/jhoicas/bbq-dashboard-api/pkg/logger"
)

// reportTopItems número de items en la tabla del reporte.
const reportTopItems = 10

// PDFUseCase compone los agregados del período y delega el render al
// generador. Fuente de datos: SalesRepository (lectura); los números salen
// todos del motor de agregación para que el PDF nunca discrepe de la UI.
type PDFUseCase struct {
	salesRepo repository.SalesRepository
	generator SalesReportGenerator
	log       *logger.Logger
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(salesRepo repository.SalesRepository, generator SalesReportGenerator, log *logger.Logger) *PDFUseCase {
	return &PDFUseCase{salesRepo: salesRepo, generator: generator, log: log}
}

// DownloadSalesReport arma el reporte de la ventana y genera el PDF.
//
// Los dos fetches (diarios e items) corren en paralelo; un fallo de
// cualquiera se degrada a colección vacía con warn, igual que en el
// dashboard: el reporte sale con secciones en cero, nunca con error de store.
//
// Retorna (pdfBytes, filename, nil) o el error del render.
func (uc *PDFUseCase) DownloadSalesReport(ctx context.Context, lookbackDays int) (pdfBytes []byte, filename string, err error) {
	now := time.Now()

	type dailyResult struct{ records []entity.DailySales }
	type itemsResult struct{ records []entity.ItemSales }

	dailyCh := make(chan dailyResult, 1)
	itemsCh := make(chan itemsResult, 1)

	go func() {
		records, ferr := uc.salesRepo.GetDailySales(ctx, lookbackDays)
		if ferr != nil {
			uc.log.Warn().Err(ferr).Msg("reporte: fetch de ventas diarias falló; secciones en cero")
			records = nil
		}
		dailyCh <- dailyResult{records}
	}()
	go func() {
		records, ferr := uc.salesRepo.GetItemSales(ctx, lookbackDays)
		if ferr != nil {
			uc.log.Warn().Err(ferr).Msg("reporte: fetch de items falló; ranking vacío")
			records = nil
		}
		itemsCh <- itemsResult{records}
	}()

	daily := analytics.SelectWindow((<-dailyCh).records, lookbackDays, now)
	items := analytics.SelectItemWindow((<-itemsCh).records, lookbackDays, now)

	data := &SalesReportData{
		Period: dto.PeriodDTO{
			LookbackDays: lookbackDays,
			StartDate:    dateOnly(now).AddDate(0, 0, -lookbackDays).Format(entity.DateLayout),
			EndDate:      dateOnly(now).Format(entity.DateLayout),
		},
		KPIs:       analytics.ComputeKPIs(daily),
		Comparison: analytics.CompareLocations(daily),
		TopItems:   analytics.TopItems(items, entity.LocationAll, reportTopItems),
		Online:     analytics.CompareOnlineVsInStore(daily),
	}

	pdfBytes, err = uc.generator.GenerateSalesReport(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generar PDF: %w", err)
	}

	filename = fmt.Sprintf("sales-report-%dd-%s.pdf", lookbackDays, now.Format(entity.DateLayout))
	return pdfBytes, filename, nil
}

// dateOnly trunca un instante a su fecha calendario.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
