package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Cerveceria-api/internal/domain/planificacion"
	"github.com/jhoicas/Cerveceria-api/internal/domain/repository"
)

var _ repository.CalendarioRepository = (*CalendarioRepo)(nil)

// CalendarioRepo lee la configuración del calendario laboral de la planta.
// La tabla dias_laborales guarda una fila por día de semana (0=domingo..6=sábado)
// con apertura y cierre en minutos desde medianoche.
type CalendarioRepo struct {
	q Querier
}

// NewCalendarioRepository construye el adaptador del calendario.
func NewCalendarioRepository(q Querier) *CalendarioRepo {
	return &CalendarioRepo{q: q}
}

// GetCalendario arma el calendario a partir de las filas configuradas.
// Los días sin fila quedan no laborables.
func (r *CalendarioRepo) GetCalendario() (*planificacion.Calendario, error) {
	query := `SELECT dia_semana, es_laborable, apertura, cierre FROM dias_laborales`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("get calendario: %w", err)
	}
	defer rows.Close()

	dias := make(map[time.Weekday]planificacion.DiaLaboral)
	for rows.Next() {
		var diaSemana int
		var esLaborable bool
		var apertura, cierre int
		if err := rows.Scan(&diaSemana, &esLaborable, &apertura, &cierre); err != nil {
			return nil, fmt.Errorf("scan dia laboral: %w", err)
		}
		if diaSemana < 0 || diaSemana > 6 {
			return nil, fmt.Errorf("get calendario: dia_semana %d fuera de rango", diaSemana)
		}
		dias[time.Weekday(diaSemana)] = planificacion.DiaLaboral{
			EsLaborable: esLaborable,
			Apertura:    planificacion.HoraDia(apertura),
			Cierre:      planificacion.HoraDia(cierre),
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get calendario: %w", err)
	}
	return planificacion.NuevoCalendario(dias), nil
}
