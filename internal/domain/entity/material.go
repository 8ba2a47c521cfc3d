package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material representa una materia prima de la planta (malta, lúpulo, levadura, etc.).
// StockReservado nunca supera StockTotal; el disponible es derivado, nunca se persiste.
type Material struct {
	ID             string
	Nombre         string
	UnidadMedida   string // kg, g, l, ml, unidad
	StockTotal     decimal.Decimal
	StockReservado decimal.Decimal
	StockMinimo    decimal.Decimal // umbral de alerta de stock bajo
	UpdatedAt      time.Time
}

// StockDisponible devuelve StockTotal - StockReservado.
func (m *Material) StockDisponible() decimal.Decimal {
	return m.StockTotal.Sub(m.StockReservado)
}

// BajoMinimo indica si el disponible cayó por debajo del umbral configurado.
func (m *Material) BajoMinimo() bool {
	return m.StockDisponible().LessThan(m.StockMinimo)
}
