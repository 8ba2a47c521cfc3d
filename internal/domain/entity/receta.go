package entity

import "github.com/shopspring/decimal"

// LineaReceta una materia prima requerida por una fase del producto, expresada
// por CantidadEstandar del producto. La cantidad real de una orden se obtiene
// multiplicando por el factor de escala (cantidad orden / cantidad estándar).
type LineaReceta struct {
	ID                string
	FaseProductoID    string
	MaterialID        string
	CantidadPorUnidad decimal.Decimal // > 0
}
