package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una fase de producción en curso.
// PENDIENTE → EN_PROCESO → BAJO_REVISION → {COMPLETADA, SIENDO_AJUSTADA, RECHAZADA};
// SIENDO_AJUSTADA → BAJO_REVISION (reenvío). COMPLETADA y RECHAZADA son terminales.
const (
	FaseProduccionPENDIENTE      = "PENDIENTE"
	FaseProduccionENPROCESO      = "EN_PROCESO"
	FaseProduccionBAJOREVISION   = "BAJO_REVISION"
	FaseProduccionSIENDOAJUSTADA = "SIENDO_AJUSTADA"
	FaseProduccionCOMPLETADA     = "COMPLETADA"
	FaseProduccionRECHAZADA      = "RECHAZADA"
)

// FaseProduccion es la instancia de una fase plantilla para un lote concreto.
// Entrada/Salida son los valores reales medidos por el operario;
// EntradaEstandar/SalidaEstandar los esperados según la receta escalada.
type FaseProduccion struct {
	ID              string
	LoteID          string
	Tipo            string
	Orden           int
	Estado          string
	Entrada         decimal.Decimal
	EntradaEstandar decimal.Decimal
	Salida          decimal.Decimal
	SalidaEstandar  decimal.Decimal
	UnidadSalida    string
	SectorID        *string
	FechaInicio     *time.Time
	FechaFin        *time.Time
}

// EsTerminal indica si la fase ya no admite transiciones.
func (f *FaseProduccion) EsTerminal() bool {
	return f.Estado == FaseProduccionCOMPLETADA || f.Estado == FaseProduccionRECHAZADA
}
