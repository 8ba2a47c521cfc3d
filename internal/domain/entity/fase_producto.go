package entity

import "github.com/shopspring/decimal"

// Tipos de fase del proceso cervecero.
const (
	FaseMOLIENDA          = "MOLIENDA"
	FaseMACERACION        = "MACERACION"
	FaseFILTRACION        = "FILTRACION"
	FaseCOCCION           = "COCCION"
	FaseFERMENTACION      = "FERMENTACION"
	FaseMADURACION        = "MADURACION"
	FaseGASIFICACION      = "GASIFICACION"
	FaseENVASADO          = "ENVASADO"
	FaseDESALCOHOLIZACION = "DESALCOHOLIZACION"
)

// FaseProducto es la plantilla de una fase dentro de la secuencia de un producto.
// EsActiva=true: la fase solo avanza en horario laboral (molienda, cocción).
// EsActiva=false: transcurre de forma continua, 24/7 (fermentación, maduración).
type FaseProducto struct {
	ID             string
	ProductoID     string
	Tipo           string
	Orden          int // posición en la secuencia, desde 1
	HorasEstimadas decimal.Decimal
	EsActiva       bool
	UnidadSalida   string
}
