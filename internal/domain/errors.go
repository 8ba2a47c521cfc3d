package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias de infraestructura).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrEstadoInvalido     = errors.New("transición de estado inválida")
	ErrProductoNoListo    = errors.New("el producto no está listo para producción")
	ErrUnidadIncompatible = errors.New("unidad de medida del producto y el envase no coinciden")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrSinDatosCalidad    = errors.New("la fase no tiene evaluaciones de calidad activas")
)

// StockInsuficienteError identifica el material cuya disponibilidad no alcanza
// para la reserva solicitada. Satisface errors.Is(err, ErrInsufficientStock).
type StockInsuficienteError struct {
	MaterialID string
	Nombre     string
	Disponible decimal.Decimal
	Requerido  decimal.Decimal
}

func (e *StockInsuficienteError) Error() string {
	return fmt.Sprintf("stock insuficiente de %s: disponible %s, requerido %s",
		e.Nombre, e.Disponible.String(), e.Requerido.String())
}

func (e *StockInsuficienteError) Unwrap() error { return ErrInsufficientStock }
