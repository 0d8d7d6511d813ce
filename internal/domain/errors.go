package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrConflict            = errors.New("conflicto con el estado actual")
	ErrDraftNotSubmittable = errors.New("el borrador no cumple los requisitos de envío")

	// Exportación (PDF / impresión).
	ErrExportPrecondition = errors.New("la factura no cumple los requisitos de exportación")
	ErrExportInProgress   = errors.New("ya hay una exportación en curso")
	ErrRender             = errors.New("fallo al renderizar el documento")

	// Backend REST externo.
	ErrBackendUnavailable = errors.New("backend de facturación no disponible")
	ErrBackendRejected    = errors.New("el backend rechazó la petición")
)
