package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de producción. PENDIENTE es el único origen;
// APROBADA, CANCELADA y RECHAZADA son terminales (nunca se vuelve a PENDIENTE).
const (
	OrdenPENDIENTE = "PENDIENTE"
	OrdenAPROBADA  = "APROBADA"
	OrdenCANCELADA = "CANCELADA"
	OrdenRECHAZADA = "RECHAZADA"
)

// OrdenProduccion solicita producir una cantidad de un producto en un envase.
// Al crearla se reserva el stock de materiales y se calcula la fecha estimada
// de fin contra el calendario laboral. FechaValidacion se fija exactamente una
// vez, en la primera transición fuera de PENDIENTE.
type OrdenProduccion struct {
	ID               string
	ProductoID       string
	EnvaseID         string
	LoteID           string
	Cantidad         decimal.Decimal // en UnidadMedida del producto, > 0
	FechaPlanificada time.Time
	FechaEstimadaFin time.Time
	FechaValidacion  *time.Time
	Estado           string
	CreatedAt        time.Time
}

// EsDestinoDevolucion valida los estados admitidos por returnOrder.
func EsDestinoDevolucion(estado string) bool {
	return estado == OrdenCANCELADA || estado == OrdenRECHAZADA
}
