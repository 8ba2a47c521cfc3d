package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de materiales (registro de auditoría, append-only).
const (
	MovimientoRESERVA    = "RESERVA"    // reserva provisional al crear la orden
	MovimientoCONFIRMADO = "CONFIRMADO" // reserva consumida al aprobar la orden
	MovimientoDEVUELTO   = "DEVUELTO"   // reserva liberada al cancelar/rechazar
)

// MovimientoMaterial registra una operación del libro de materiales.
// Nunca se actualiza ni se borra; la suma de RESERVA menos CONFIRMADO/DEVUELTO
// de un material debe igualar su StockReservado actual.
type MovimientoMaterial struct {
	ID         string
	OrdenID    string // orden de producción que originó el movimiento
	MaterialID string
	Tipo       string
	Cantidad   decimal.Decimal // siempre positiva
	Fecha      time.Time
}
