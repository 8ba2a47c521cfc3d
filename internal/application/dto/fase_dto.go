package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
)

// RevisionRequest cantidades reales medidas al enviar la fase a revisión.
type RevisionRequest struct {
	Entrada decimal.Decimal `json:"entrada"`
	Salida  decimal.Decimal `json:"salida"`
}

// EvaluacionRequest resultado de un parámetro en la ronda vigente.
type EvaluacionRequest struct {
	ParametroID string          `json:"parametro_id"`
	Valor       decimal.Decimal `json:"valor"`
	Aprobado    bool            `json:"aprobado"`
}

// RegistrarEvaluacionesRequest cuerpo para registrar la ronda de evaluaciones.
type RegistrarEvaluacionesRequest struct {
	Evaluaciones []EvaluacionRequest `json:"evaluaciones"`
}

// FaseResponse representación HTTP de una fase en curso.
type FaseResponse struct {
	ID           string          `json:"id"`
	LoteID       string          `json:"lote_id"`
	Tipo         string          `json:"tipo"`
	Orden        int             `json:"orden"`
	Estado       string          `json:"estado"`
	Entrada      decimal.Decimal `json:"entrada"`
	Salida       decimal.Decimal `json:"salida"`
	UnidadSalida string          `json:"unidad_salida,omitempty"`
	SectorID     *string         `json:"sector_id,omitempty"`
	FechaInicio  *time.Time      `json:"fecha_inicio,omitempty"`
	FechaFin     *time.Time      `json:"fecha_fin,omitempty"`
}

// ToFaseResponse proyecta la entidad a la respuesta HTTP.
func ToFaseResponse(f *entity.FaseProduccion) FaseResponse {
	return FaseResponse{
		ID:           f.ID,
		LoteID:       f.LoteID,
		Tipo:         f.Tipo,
		Orden:        f.Orden,
		Estado:       f.Estado,
		Entrada:      f.Entrada,
		Salida:       f.Salida,
		UnidadSalida: f.UnidadSalida,
		SectorID:     f.SectorID,
		FechaInicio:  f.FechaInicio,
		FechaFin:     f.FechaFin,
	}
}

// CalidadResponse fila del historial de evaluaciones de una fase.
type CalidadResponse struct {
	ID              string          `json:"id"`
	ParametroID     string          `json:"parametro_id"`
	Valor           decimal.Decimal `json:"valor"`
	Aprobado        bool            `json:"aprobado"`
	Activo          bool            `json:"activo"`
	Version         int             `json:"version"`
	FechaEvaluacion time.Time       `json:"fecha_evaluacion"`
}

// ToCalidadResponse proyecta la entidad a la respuesta HTTP.
func ToCalidadResponse(c *entity.CalidadFase) CalidadResponse {
	return CalidadResponse{
		ID:              c.ID,
		ParametroID:     c.ParametroID,
		Valor:           c.Valor,
		Aprobado:        c.Aprobado,
		Activo:          c.Activo,
		Version:         c.Version,
		FechaEvaluacion: c.FechaEvaluacion,
	}
}
