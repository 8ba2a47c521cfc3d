package entity

// ParametroCalidad define un parámetro evaluable (densidad, pH, IBU, color...).
// EsCritico=true: una evaluación desaprobada rechaza la fase de forma terminal;
// si no, la fase pasa a ajuste y puede reenviarse.
type ParametroCalidad struct {
	ID           string
	Nombre       string
	UnidadMedida string
	EsCritico    bool
}
