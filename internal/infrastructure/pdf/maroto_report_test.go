package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-system/internal/domain"
	"github.com/jhoicas/invoice-system/internal/domain/document"
	"github.com/jhoicas/invoice-system/internal/domain/entity"
	"github.com/jhoicas/invoice-system/internal/infrastructure/pdf"
)

func TestMarotoReport_GeneraPDF(t *testing.T) {
	page := &entity.InvoicePage{
		Invoices: []entity.InvoiceSummary{
			{ID: 1, InvoiceNumber: "INV-1", CustomerName: "Acme", Subject: "Logo", DueDate: time.Now(), TotalAmount: decimal.NewFromInt(110), Status: entity.InvoiceStatusPaid},
			{ID: 2, InvoiceNumber: "INV-2", CustomerName: "Globex", Subject: "Website redesign and hosting for a year", DueDate: time.Now(), TotalAmount: decimal.NewFromInt(55), Status: entity.InvoiceStatusUnpaid},
		},
		Pagination: entity.Pagination{TotalItems: 2, TotalPages: 1, CurrentPage: 1},
	}

	out, err := pdf.NewMarotoReportGenerator().GenerateInvoiceListPDF(context.Background(), pdf.ReportInput{
		Company:     document.Company{Name: "Discovery Designs"},
		FilterLabel: "status: unpaid",
		Page:        page,
		GeneratedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestMarotoReport_PaginaNula(t *testing.T) {
	_, err := pdf.NewMarotoReportGenerator().GenerateInvoiceListPDF(context.Background(), pdf.ReportInput{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
