package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CalidadFase es la evaluación de un parámetro de calidad sobre una fase en una
// ronda (versión) concreta. Las filas con Activo=true forman la ronda vigente;
// al cerrar la ronda pasan a Activo=false y se conservan como historial.
// Dentro de una versión, las filas son todas activas o todas históricas.
type CalidadFase struct {
	ID               string
	FaseProduccionID string
	ParametroID      string
	Valor            decimal.Decimal
	Aprobado         bool
	Activo           bool
	Version          int // >= 1
	FechaEvaluacion  time.Time
}
