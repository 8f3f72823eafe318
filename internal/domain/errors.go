package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// ValidationError describe una entrada rechazada antes de leer estado alguno.
// Field señala el campo ofensivo para que el operador pueda corregirlo.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validación: %s: %s", e.Field, e.Message)
}

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// InsufficientStockError indica que un retiro dejaría el stock negativo.
// Incluye la cantidad actual para que el caller corrija el operando.
type InsufficientStockError struct {
	WarehouseID string
	ProductID   string
	Current     int64
	Requested   int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: se pidió retirar %d y hay %d (bodega %s, producto %s)",
		e.Requested, e.Current, e.WarehouseID, e.ProductID)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// ConflictError indica que la versión base que cargó el caller quedó obsoleta.
// El caller debe releer el registro y reintentar con datos frescos; el motor
// nunca reintenta por su cuenta con operandos viejos.
type ConflictError struct {
	WarehouseID     string
	ProductID       string
	ExpectedVersion int64
	CurrentVersion  int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflicto de concurrencia: versión esperada %d, actual %d (bodega %s, producto %s)",
		e.ExpectedVersion, e.CurrentVersion, e.WarehouseID, e.ProductID)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }
