package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/invoice-system/internal/application/dto"
	"github.com/jhoicas/invoice-system/internal/domain/entity"
	"github.com/jhoicas/invoice-system/internal/domain/repository"
	"github.com/jhoicas/invoice-system/internal/infrastructure/pdf"
)

// ReportUseCase reporte PDF del listado de facturas filtrado.
type ReportUseCase struct {
	invoices repository.InvoiceRepository
	reporter InvoiceListReporter
	settings ExportSettings
	now      func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(invoices repository.InvoiceRepository, reporter InvoiceListReporter, settings ExportSettings) *ReportUseCase {
	return &ReportUseCase{invoices: invoices, reporter: reporter, settings: settings, now: time.Now}
}

// InvoiceListPDF genera el reporte de la página de facturas que devuelve el filtro.
func (uc *ReportUseCase) InvoiceListPDF(ctx context.Context, q dto.InvoiceListQuery) (content []byte, filename string, err error) {
	filter := FilterFromQuery(q)
	page, err := uc.invoices.List(ctx, filter)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: listar facturas: %w", err)
	}
	now := uc.now()
	content, err = uc.reporter.GenerateInvoiceListPDF(ctx, pdf.ReportInput{
		Company:     uc.settings.Company,
		FilterLabel: DescribeFilter(filter),
		Page:        page,
		GeneratedAt: now,
	})
	if err != nil {
		return nil, "", err
	}
	return content, fmt.Sprintf("invoices-%s.pdf", now.Format("2006-01-02")), nil
}

// DescribeFilter descripción legible de los filtros aplicados.
func DescribeFilter(f entity.InvoiceFilter) string {
	var parts []string
	add := func(label, v string) {
		if v != "" {
			parts = append(parts, label+": "+v)
		}
	}
	add("Invoice", f.InvoiceID)
	add("Customer", f.CustomerName)
	add("Subject", f.Subject)
	add("Issued", f.IssueDate)
	add("Due", f.DueDate)
	add("Status", string(f.Status))
	if len(parts) == 0 {
		return "All invoices"
	}
	return strings.Join(parts, " · ")
}
