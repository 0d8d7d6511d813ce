package billing_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/invoice-system/internal/domain/document"
	"github.com/jhoicas/invoice-system/internal/domain/entity"
	"github.com/jhoicas/invoice-system/internal/domain/invoice"
	"github.com/jhoicas/invoice-system/internal/infrastructure/pdf"
)

// MockInvoiceRepo implementación mock de repository.InvoiceRepository.
type MockInvoiceRepo struct {
	mock.Mock
}

func (m *MockInvoiceRepo) List(ctx context.Context, f entity.InvoiceFilter) (*entity.InvoicePage, error) {
	args := m.Called(ctx, f)
	page, _ := args.Get(0).(*entity.InvoicePage)
	return page, args.Error(1)
}

func (m *MockInvoiceRepo) GetByID(ctx context.Context, id int64) (*entity.InvoiceDetail, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*entity.InvoiceDetail)
	return d, args.Error(1)
}

func (m *MockInvoiceRepo) Create(ctx context.Context, sub invoice.Submission) error {
	return m.Called(ctx, sub).Error(0)
}

func (m *MockInvoiceRepo) Update(ctx context.Context, id int64, sub invoice.Submission) error {
	return m.Called(ctx, id, sub).Error(0)
}

// MockPDFRenderer implementación mock de billing.InvoicePDFRenderer.
type MockPDFRenderer struct {
	mock.Mock
}

func (m *MockPDFRenderer) RenderInvoice(ctx context.Context, model *document.Model, opts pdf.Options) ([]byte, error) {
	args := m.Called(ctx, model, opts)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

// MockExportLog implementación mock de repository.ExportLogRepository.
type MockExportLog struct {
	mock.Mock
}

func (m *MockExportLog) Create(ctx context.Context, l *entity.ExportLog) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockExportLog) ListByInvoice(ctx context.Context, invoiceID int64, limit int) ([]entity.ExportLog, error) {
	args := m.Called(ctx, invoiceID, limit)
	logs, _ := args.Get(0).([]entity.ExportLog)
	return logs, args.Error(1)
}
