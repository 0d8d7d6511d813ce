package billing_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-system/internal/application/billing"
	"github.com/jhoicas/invoice-system/internal/domain"
	"github.com/jhoicas/invoice-system/internal/domain/document"
)

// ─────────────────────────────────────────────────────────────────────────────
// ExportTracker
// ─────────────────────────────────────────────────────────────────────────────

func TestTracker_SegundaExportacionRechazada(t *testing.T) {
	tr := billing.NewExportTracker(time.Second, time.Second)

	id, ok := tr.Begin()
	require.True(t, ok)
	assert.NotEmpty(t, id)
	assert.True(t, tr.State().Pending)

	_, ok = tr.Begin()
	assert.False(t, ok, "no se solapan exportaciones")
}

func TestTracker_ErrorSeBorraTrasTTL(t *testing.T) {
	tr := billing.NewExportTracker(50*time.Millisecond, time.Hour)
	id, _ := tr.Begin()

	tr.Fail(id, "Customer information is required")
	s := tr.State()
	assert.False(t, s.Pending)
	assert.Equal(t, "Customer information is required", s.Error)

	require.Eventually(t, func() bool { return tr.State().Error == "" }, time.Second, 10*time.Millisecond)
}

func TestTracker_ExitoSeBorraTrasTTL(t *testing.T) {
	tr := billing.NewExportTracker(time.Hour, 50*time.Millisecond)
	id, _ := tr.Begin()

	tr.Succeed(id, `PDF "invoice-1.pdf" downloaded successfully`)
	assert.Equal(t, `PDF "invoice-1.pdf" downloaded successfully`, tr.State().Success)

	require.Eventually(t, func() bool { return tr.State().Success == "" }, time.Second, 10*time.Millisecond)
}

func TestTracker_NuevaExportacionDetieneTemporizadores(t *testing.T) {
	tr := billing.NewExportTracker(30*time.Millisecond, time.Hour)
	first, _ := tr.Begin()
	tr.Fail(first, "boom")

	second, ok := tr.Begin()
	require.True(t, ok)
	tr.Succeed(second, "ok")

	time.Sleep(80 * time.Millisecond)
	s := tr.State()
	assert.Equal(t, second, s.ID)
	assert.Equal(t, "ok", s.Success, "el temporizador viejo no toca el estado nuevo")
	assert.Empty(t, s.Error)
}

func TestTracker_IgnoraIDsObsoletos(t *testing.T) {
	tr := billing.NewExportTracker(time.Hour, time.Hour)
	id, _ := tr.Begin()

	tr.Fail("otro-id", "no aplica")
	assert.True(t, tr.State().Pending)

	tr.Succeed(id, "ok")
	assert.False(t, tr.State().Pending)
}

// ─────────────────────────────────────────────────────────────────────────────
// NormalizeExportError
// ─────────────────────────────────────────────────────────────────────────────

func TestNormalizeExportError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"precondición tal cual", &document.PreconditionError{Message: document.MsgItemsRequired}, document.MsgItemsRequired},
		{"precondición envuelta", fmt.Errorf("pdf: %w", &document.PreconditionError{Message: document.MsgNumberMissing}), document.MsgNumberMissing},
		{"backend caído", fmt.Errorf("%w: dial tcp", domain.ErrBackendUnavailable), billing.MsgNetworkError},
		{"no encontrada", fmt.Errorf("%w: invoice", domain.ErrNotFound), billing.MsgInvoiceMissing},
		{"render", fmt.Errorf("%w: gofpdf", domain.ErrRender), billing.MsgGenerateFailed},
		{"desconocido", errors.New("x"), billing.MsgGenerateFailed},
		{"nil", nil, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, billing.NormalizeExportError(tc.err))
		})
	}
}
