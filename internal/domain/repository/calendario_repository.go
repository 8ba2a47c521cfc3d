package repository

import "github.com/jhoicas/Cerveceria-api/internal/domain/planificacion"

// CalendarioRepository puerto de lectura del calendario laboral de la planta.
// El motor nunca lo muta; la configuración es de un colaborador externo.
type CalendarioRepository interface {
	GetCalendario() (*planificacion.Calendario, error)
}
