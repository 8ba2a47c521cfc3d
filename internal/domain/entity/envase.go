package entity

import "github.com/shopspring/decimal"

// Envase representa un tipo de empaque (botella 330ml, barril 50l, lata 473ml).
// Cantidad es la capacidad de una unidad de envase en UnidadMedida.
type Envase struct {
	ID           string
	Nombre       string
	UnidadMedida string
	Cantidad     decimal.Decimal
}
