package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa una cerveza (u otro producto de proceso) con su secuencia
// de fases y receta asociadas por ID. CantidadEstandar es la cantidad de
// referencia sobre la que está expresada la receta.
type Producto struct {
	ID               string
	Nombre           string
	Descripcion      string
	UnidadMedida     string // debe coincidir con la del envase al crear órdenes
	CantidadEstandar decimal.Decimal
	EstaListo        bool // false mientras falten fases o receta
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
