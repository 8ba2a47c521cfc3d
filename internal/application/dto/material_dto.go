package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
)

// MaterialResponse stock actual de una materia prima, con el disponible derivado.
type MaterialResponse struct {
	ID              string          `json:"id"`
	Nombre          string          `json:"nombre"`
	UnidadMedida    string          `json:"unidad_medida"`
	StockTotal      decimal.Decimal `json:"stock_total"`
	StockReservado  decimal.Decimal `json:"stock_reservado"`
	StockDisponible decimal.Decimal `json:"stock_disponible"`
	StockMinimo     decimal.Decimal `json:"stock_minimo"`
}

// ToMaterialResponse proyecta la entidad a la respuesta HTTP.
func ToMaterialResponse(m *entity.Material) MaterialResponse {
	return MaterialResponse{
		ID:              m.ID,
		Nombre:          m.Nombre,
		UnidadMedida:    m.UnidadMedida,
		StockTotal:      m.StockTotal,
		StockReservado:  m.StockReservado,
		StockDisponible: m.StockDisponible(),
		StockMinimo:     m.StockMinimo,
	}
}

// MovimientoResponse fila del registro de auditoría del libro de materiales.
type MovimientoResponse struct {
	ID         string          `json:"id"`
	OrdenID    string          `json:"orden_id"`
	MaterialID string          `json:"material_id"`
	Tipo       string          `json:"tipo"`
	Cantidad   decimal.Decimal `json:"cantidad"`
	Fecha      time.Time       `json:"fecha"`
}

// ToMovimientoResponse proyecta la entidad a la respuesta HTTP.
func ToMovimientoResponse(m *entity.MovimientoMaterial) MovimientoResponse {
	return MovimientoResponse{
		ID:         m.ID,
		OrdenID:    m.OrdenID,
		MaterialID: m.MaterialID,
		Tipo:       m.Tipo,
		Cantidad:   m.Cantidad,
		Fecha:      m.Fecha,
	}
}
