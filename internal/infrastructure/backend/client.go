// Package backend implementa los repositorios de facturas, clientes y artículos
// contra la API REST externa que los persiste.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/jhoicas/invoice-system/internal/domain"
	"github.com/jhoicas/invoice-system/pkg/config"
	"github.com/jhoicas/invoice-system/pkg/logger"
)

// maxBodyBytes límite de lectura de respuestas del backend.
const maxBodyBytes = 10 << 20

// Client cliente HTTP con reintentos para la API del backend.
type Client struct {
	http    *retryablehttp.Client
	baseURL string
	log     *logger.Logger
}

// NewClient construye el cliente. Reintenta errores de red y respuestas 5xx.
func NewClient(cfg config.BackendConfig, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("backend")

	rc := retryablehttp.NewClient()
	rc.RetryMax = cfg.RetryMax
	rc.RetryWaitMin = 100 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	rc.HTTPClient.Timeout = cfg.Timeout
	rc.Logger = leveledLogger{log: log}
	// Devolver la última respuesta en lugar de un error genérico para poder
	// leer el sobre de error del backend.
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &Client{
		http:    rc,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		log:     log,
	}
}

// envelope formato estándar de respuesta del backend.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *envelopeError  `json:"error,omitempty"`
}

type envelopeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// do ejecuta la petición y decodifica envelope.data en out (si out no es nil).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("backend: serializar petición: %w", err)
		}
		payload = b
	}

	var reqBody any
	if payload != nil {
		reqBody = payload
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("backend: construir petición: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("backend inaccesible")
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: leer respuesta: %v", domain.ErrBackendUnavailable, err)
	}
	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("backend")

	var env envelope
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil && resp.StatusCode < 300 {
			return fmt.Errorf("backend: respuesta no es JSON válido: %w", err)
		}
	}

	if resp.StatusCode >= 300 || (len(raw) > 0 && !env.Success && env.Error != nil) {
		return statusError(resp.StatusCode, env)
	}
	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("backend: decodificar data: %w", err)
	}
	return nil
}

// statusError traduce el status HTTP y el sobre de error a errores de dominio.
func statusError(status int, env envelope) error {
	msg := env.Message
	if env.Error != nil {
		msg = env.Error.Message
		if env.Error.Details != "" {
			msg += ": " + env.Error.Details
		}
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	switch {
	case status == http.StatusNotFound || (env.Error != nil && env.Error.Code == "NOT_FOUND"):
		return fmt.Errorf("%w: %s", domain.ErrNotFound, msg)
	case status == http.StatusConflict:
		return fmt.Errorf("%w: %s", domain.ErrDuplicate, msg)
	case status >= 500:
		return fmt.Errorf("%w: %d %s", domain.ErrBackendUnavailable, status, msg)
	default:
		return fmt.Errorf("%w: %d %s", domain.ErrBackendRejected, status, msg)
	}
}

// Health comprueba GET /health del backend.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil, nil)
}

// IsUnavailable indica si el error se debe a que el backend no respondió.
func IsUnavailable(err error) bool {
	return errors.Is(err, domain.ErrBackendUnavailable)
}

// leveledLogger adapta logger.Logger a retryablehttp.LeveledLogger.
type leveledLogger struct {
	log *logger.Logger
}

func (l leveledLogger) Error(msg string, kv ...interface{}) { l.log.Error().Fields(kv).Msg(msg) }
func (l leveledLogger) Info(msg string, kv ...interface{})  { l.log.Debug().Fields(kv).Msg(msg) }
func (l leveledLogger) Debug(msg string, kv ...interface{}) { l.log.Trace().Fields(kv).Msg(msg) }
func (l leveledLogger) Warn(msg string, kv ...interface{})  { l.log.Warn().Fields(kv).Msg(msg) }
