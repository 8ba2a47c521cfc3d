package entity

import "time"

// Estados de un lote.
const (
	LotePENDIENTE  = "PENDIENTE"
	LoteENPROCESO  = "EN_PROCESO"
	LoteCOMPLETADO = "COMPLETADO"
	LoteCANCELADO  = "CANCELADO"
)

// Lote es la instancia física de producción de una orden (relación 1:1).
// Cantidad es el número entero de unidades de envase a producir.
type Lote struct {
	ID               string
	Codigo           string // ej. IPA-20260830-A3F2
	EnvaseID         string
	Cantidad         int
	Estado           string
	FechaCreacion    time.Time
	FechaPlanificada time.Time
	FechaInicio      *time.Time
	FechaFin         *time.Time
}
