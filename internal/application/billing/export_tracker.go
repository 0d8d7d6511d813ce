package billing

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Tiempos por defecto de visibilidad de los avisos.
const (
	DefaultErrorTTL   = 5 * time.Second
	DefaultSuccessTTL = 3 * time.Second
)

// ExportState estado observable de la exportación.
type ExportState struct {
	ID      string
	Pending bool
	Error   string
	Success string
}

// ExportTracker lleva el estado pending/error/éxito de una única exportación a
// la vez. Los avisos se borran solos pasado su TTL; iniciar una exportación
// nueva detiene los temporizadores de la anterior.
type ExportTracker struct {
	mu         sync.Mutex
	state      ExportState
	errorTTL   time.Duration
	successTTL time.Duration
	timers     []*time.Timer
}

// NewExportTracker construye el tracker. TTL <= 0 usa el valor por defecto.
func NewExportTracker(errorTTL, successTTL time.Duration) *ExportTracker {
	if errorTTL <= 0 {
		errorTTL = DefaultErrorTTL
	}
	if successTTL <= 0 {
		successTTL = DefaultSuccessTTL
	}
	return &ExportTracker{errorTTL: errorTTL, successTTL: successTTL}
}

// Begin marca una exportación como en curso y devuelve su ID. Si ya hay una
// pendiente devuelve ok=false y no cambia el estado.
func (t *ExportTracker) Begin() (id string, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state.Pending {
		return "", false
	}
	t.stopTimersLocked()
	t.state = ExportState{ID: uuid.New().String(), Pending: true}
	return t.state.ID, true
}

// Fail termina la exportación id con un mensaje de error visible durante errorTTL.
func (t *ExportTracker) Fail(id, msg string) {
	t.finish(id, func(s *ExportState) { s.Error = msg }, t.errorTTL, func(s *ExportState) { s.Error = "" })
}

// Succeed termina la exportación id con un mensaje de éxito visible durante successTTL.
func (t *ExportTracker) Succeed(id, msg string) {
	t.finish(id, func(s *ExportState) { s.Success = msg }, t.successTTL, func(s *ExportState) { s.Success = "" })
}

// State devuelve una copia del estado actual.
func (t *ExportTracker) State() ExportState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Stop detiene los temporizadores pendientes (apagado del servidor).
func (t *ExportTracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopTimersLocked()
}

func (t *ExportTracker) finish(id string, set func(*ExportState), ttl time.Duration, clear func(*ExportState)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state.ID != id {
		return
	}
	t.state.Pending = false
	set(&t.state)
	t.timers = append(t.timers, time.AfterFunc(ttl, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		if t.state.ID == id {
			clear(&t.state)
		}
	}))
}

func (t *ExportTracker) stopTimersLocked() {
	for _, tm := range t.timers {
		tm.Stop()
	}
	t.timers = nil
}
