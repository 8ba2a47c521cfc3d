package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
)

// CrearOrdenRequest cuerpo para crear una orden de producción.
type CrearOrdenRequest struct {
	ProductoID       string          `json:"producto_id"`
	EnvaseID         string          `json:"envase_id"`
	Cantidad         decimal.Decimal `json:"cantidad"`
	FechaPlanificada time.Time       `json:"fecha_planificada"`
}

// DevolverOrdenRequest destino de una devolución: CANCELADA o RECHAZADA.
type DevolverOrdenRequest struct {
	Destino string `json:"destino"`
}

// OrdenResponse representación HTTP de una orden.
type OrdenResponse struct {
	ID               string          `json:"id"`
	ProductoID       string          `json:"producto_id"`
	EnvaseID         string          `json:"envase_id"`
	LoteID           string          `json:"lote_id"`
	Cantidad         decimal.Decimal `json:"cantidad"`
	FechaPlanificada time.Time       `json:"fecha_planificada"`
	FechaEstimadaFin time.Time       `json:"fecha_estimada_fin"`
	FechaValidacion  *time.Time      `json:"fecha_validacion,omitempty"`
	Estado           string          `json:"estado"`
	CreatedAt        time.Time       `json:"created_at"`
}

// ToOrdenResponse proyecta la entidad a la respuesta HTTP.
func ToOrdenResponse(o *entity.OrdenProduccion) OrdenResponse {
	return OrdenResponse{
		ID:               o.ID,
		ProductoID:       o.ProductoID,
		EnvaseID:         o.EnvaseID,
		LoteID:           o.LoteID,
		Cantidad:         o.Cantidad,
		FechaPlanificada: o.FechaPlanificada,
		FechaEstimadaFin: o.FechaEstimadaFin,
		FechaValidacion:  o.FechaValidacion,
		Estado:           o.Estado,
		CreatedAt:        o.CreatedAt,
	}
}
