package billing_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-system/internal/application/billing"
	"github.com/jhoicas/invoice-system/internal/domain"
	"github.com/jhoicas/invoice-system/internal/domain/document"
	"github.com/jhoicas/invoice-system/internal/domain/entity"
	"github.com/jhoicas/invoice-system/internal/infrastructure/pdf"
	"github.com/jhoicas/invoice-system/pkg/logger"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func detailFixture() *entity.InvoiceDetail {
	return &entity.InvoiceDetail{
		ID:            7,
		InvoiceNumber: "INV-007",
		IssueDate:     time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		Subject:       "Consulting",
		Customer:      &entity.Customer{ID: 3, Name: "Acme", Address: "Main St"},
		Items: []entity.DetailItem{
			{ItemID: 9, ItemName: "Hours", Type: "service", Quantity: 2, Price: decimal.NewFromInt(125), TotalPrice: decimal.NewFromInt(250)},
		},
		Subtotal:    decimal.NewFromInt(250),
		Tax:         decimal.NewFromInt(25),
		TotalAmount: decimal.NewFromInt(275),
		Status:      entity.InvoiceStatusUnpaid,
	}
}

type pdfFixture struct {
	repo     *MockInvoiceRepo
	renderer *MockPDFRenderer
	audit    *MockExportLog
	tracker  *billing.ExportTracker
	uc       *billing.PDFUseCase
}

func newPDFFixture(errTTL time.Duration) *pdfFixture {
	f := &pdfFixture{
		repo:     new(MockInvoiceRepo),
		renderer: new(MockPDFRenderer),
		audit:    new(MockExportLog),
		tracker:  billing.NewExportTracker(errTTL, time.Hour),
	}
	f.audit.On("Create", mock.Anything, mock.Anything).Return(nil).Maybe()
	f.uc = billing.NewPDFUseCase(f.repo, f.renderer, f.audit, f.tracker, nil, billing.ExportSettings{
		Company:  document.Company{Name: "Your Company Name"},
		Defaults: pdf.DefaultOptions(),
	}, logger.Nop())
	return f
}

// ─────────────────────────────────────────────────────────────────────────────
// Export
// ─────────────────────────────────────────────────────────────────────────────

func TestExport_GeneraPDFConNombrePorDefecto(t *testing.T) {
	f := newPDFFixture(time.Hour)
	f.repo.On("GetByID", mock.Anything, int64(7)).Return(detailFixture(), nil)
	f.renderer.On("RenderInvoice", mock.Anything, mock.MatchedBy(func(m *document.Model) bool {
		return m.InvoiceNumber == "INV-007" && m.Summary.TaxLabel == "Tax (10%)" && m.Summary.AmountDue == "$275.00"
	}), mock.Anything).Return([]byte("%PDF-1.3"), nil)

	res, err := f.uc.Export(context.Background(), 7, pdf.Options{})
	require.NoError(t, err)

	today := time.Now().Format("2006-01-02")
	assert.Equal(t, "invoice-INV-007-"+today+".pdf", res.Filename)
	assert.Equal(t, []byte("%PDF-1.3"), res.Content)
	assert.NotEmpty(t, res.ID)

	s := f.tracker.State()
	assert.False(t, s.Pending)
	assert.Equal(t, fmt.Sprintf(`PDF "%s" downloaded successfully`, res.Filename), s.Success)

	f.audit.AssertCalled(t, "Create", mock.Anything, mock.MatchedBy(func(l *entity.ExportLog) bool {
		return l.Status == entity.ExportStatusSucceeded && l.Mode == entity.ExportModePDF && l.InvoiceNumber == "INV-007"
	}))
}

func TestExport_UsaOpcionesPorDefectoDelServidor(t *testing.T) {
	f := newPDFFixture(time.Hour)
	f.repo.On("GetByID", mock.Anything, int64(7)).Return(detailFixture(), nil)
	f.renderer.On("RenderInvoice", mock.Anything, mock.Anything, mock.MatchedBy(func(o pdf.Options) bool {
		return o.Format == pdf.FormatLetter && o.Orientation == pdf.OrientationPortrait &&
			o.Quality == pdf.DefaultQuality && o.Margins == pdf.UniformMargins(pdf.DefaultMarginMM) &&
			o.Filename == "custom.pdf"
	})).Return([]byte("%PDF"), nil)

	res, err := f.uc.Export(context.Background(), 7, pdf.Options{Filename: "custom.pdf", Format: "LETTER"})
	require.NoError(t, err)
	assert.Equal(t, "custom.pdf", res.Filename)
}

func TestExport_MargenesPorLado(t *testing.T) {
	f := newPDFFixture(time.Hour)
	f.repo.On("GetByID", mock.Anything, int64(7)).Return(detailFixture(), nil)
	f.renderer.On("RenderInvoice", mock.Anything, mock.Anything, mock.MatchedBy(func(o pdf.Options) bool {
		return o.Margins == pdf.Margins{Top: 5, Right: pdf.DefaultMarginMM, Bottom: 12, Left: pdf.DefaultMarginMM}
	})).Return([]byte("%PDF"), nil)

	_, err := f.uc.Export(context.Background(), 7, pdf.Options{Margins: pdf.Margins{Top: 5, Bottom: 12}})
	require.NoError(t, err)
	f.renderer.AssertExpectations(t)
}

func TestExport_NombreDeArchivoSaneado(t *testing.T) {
	f := newPDFFixture(time.Hour)
	f.repo.On("GetByID", mock.Anything, int64(7)).Return(detailFixture(), nil)
	f.renderer.On("RenderInvoice", mock.Anything, mock.Anything, mock.Anything).Return([]byte("%PDF"), nil)

	res, err := f.uc.Export(context.Background(), 7, pdf.Options{Filename: "../\"factura\"\r\n"})
	require.NoError(t, err)
	assert.Equal(t, "factura.pdf", res.Filename)
	assert.Equal(t, `PDF "factura.pdf" downloaded successfully`, f.tracker.State().Success)
}

// Escenario: factura sin cliente -> se rechaza, no hay archivo y el aviso se borra solo.
func TestExport_SinClienteRechazadaYAvisoTemporal(t *testing.T) {
	f := newPDFFixture(50 * time.Millisecond)
	d := detailFixture()
	d.Customer = nil
	f.repo.On("GetByID", mock.Anything, int64(7)).Return(d, nil)

	res, err := f.uc.Export(context.Background(), 7, pdf.Options{})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, domain.ErrExportPrecondition))
	f.renderer.AssertNotCalled(t, "RenderInvoice", mock.Anything, mock.Anything, mock.Anything)

	assert.Equal(t, document.MsgCustomerRequired, f.tracker.State().Error)
	require.Eventually(t, func() bool { return f.tracker.State().Error == "" }, time.Second, 10*time.Millisecond)
}

func TestExport_BackendCaidoMensajeDeRed(t *testing.T) {
	f := newPDFFixture(time.Hour)
	f.repo.On("GetByID", mock.Anything, int64(7)).Return(nil, fmt.Errorf("%w: dial tcp", domain.ErrBackendUnavailable))

	_, err := f.uc.Export(context.Background(), 7, pdf.Options{})
	require.Error(t, err)
	assert.Equal(t, billing.MsgNetworkError, f.tracker.State().Error)
}

func TestExport_FalloDeRender(t *testing.T) {
	f := newPDFFixture(time.Hour)
	f.repo.On("GetByID", mock.Anything, int64(7)).Return(detailFixture(), nil)
	f.renderer.On("RenderInvoice", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("font missing"))

	_, err := f.uc.Export(context.Background(), 7, pdf.Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRender))
	assert.Equal(t, billing.MsgGenerateFailed, f.tracker.State().Error)
	f.audit.AssertCalled(t, "Create", mock.Anything, mock.MatchedBy(func(l *entity.ExportLog) bool {
		return l.Status == entity.ExportStatusFailed && l.Error == billing.MsgGenerateFailed
	}))
}

func TestExport_OpcionesInvalidasNoTocanElTracker(t *testing.T) {
	f := newPDFFixture(time.Hour)

	_, err := f.uc.Export(context.Background(), 7, pdf.Options{Format: "a3"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Equal(t, billing.ExportState{}, f.tracker.State())
	f.repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestExport_RechazaSiHayOtraEnCurso(t *testing.T) {
	f := newPDFFixture(time.Hour)
	_, ok := f.tracker.Begin()
	require.True(t, ok)

	_, err := f.uc.Export(context.Background(), 7, pdf.Options{})
	assert.ErrorIs(t, err, domain.ErrExportInProgress)
	f.repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestHistory_MapeaRegistros(t *testing.T) {
	f := newPDFFixture(time.Hour)
	created := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
	f.audit.On("ListByInvoice", mock.Anything, int64(7), 5).Return([]entity.ExportLog{
		{ID: "a", InvoiceNumber: "INV-007", Mode: entity.ExportModePDF, Status: entity.ExportStatusSucceeded, CreatedAt: created},
	}, nil)

	logs, err := f.uc.History(context.Background(), 7, 5)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "2025-03-02T10:00:00Z", logs[0].CreatedAt)
}
