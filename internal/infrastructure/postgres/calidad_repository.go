package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/Cerveceria-api/internal/domain/repository"
)

var _ repository.CalidadFaseRepository = (*CalidadFaseRepo)(nil)
var _ repository.ParametroCalidadRepository = (*ParametroCalidadRepo)(nil)

// CalidadFaseRepo implementación de CalidadFaseRepository sobre PostgreSQL.
type CalidadFaseRepo struct {
	q Querier
}

// NewCalidadFaseRepository construye el adaptador de calidad. Pasar pool o tx (Querier).
func NewCalidadFaseRepository(q Querier) *CalidadFaseRepo {
	return &CalidadFaseRepo{q: q}
}

const calidadColumns = `id, fase_produccion_id, parametro_id, valor, aprobado, activo, version, fecha_evaluacion`

// Create persiste una evaluación de calidad.
func (r *CalidadFaseRepo) Create(e *entity.CalidadFase) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	query := `
		INSERT INTO calidad_fase (` + calidadColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.FaseProduccionID, e.ParametroID, e.Valor,
		e.Aprobado, e.Activo, e.Version, e.FechaEvaluacion)
	if err != nil {
		return fmt.Errorf("create calidad: %w", err)
	}
	return nil
}

// ListActivas devuelve las filas de la ronda vigente de la fase.
func (r *CalidadFaseRepo) ListActivas(faseID string) ([]*entity.CalidadFase, error) {
	query := `SELECT ` + calidadColumns + ` FROM calidad_fase WHERE fase_produccion_id = $1 AND activo = true`
	return r.list(query, faseID, "list calidad activas")
}

// MaxVersion devuelve la versión máxima registrada para la fase; 0 si no hay filas.
func (r *CalidadFaseRepo) MaxVersion(faseID string) (int, error) {
	query := `SELECT COALESCE(MAX(version), 0) FROM calidad_fase WHERE fase_produccion_id = $1`
	var max int
	if err := r.q.QueryRow(context.Background(), query, faseID).Scan(&max); err != nil {
		return 0, fmt.Errorf("max version calidad: %w", err)
	}
	return max, nil
}

// ExistenActivas indica si la ronda vigente sigue abierta.
func (r *CalidadFaseRepo) ExistenActivas(faseID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM calidad_fase WHERE fase_produccion_id = $1 AND activo = true)`
	var existe bool
	if err := r.q.QueryRow(context.Background(), query, faseID).Scan(&existe); err != nil {
		return false, fmt.Errorf("existen calidad activas: %w", err)
	}
	return existe, nil
}

// DesactivarActivas cierra la ronda vigente; las filas quedan como historial.
func (r *CalidadFaseRepo) DesactivarActivas(faseID string) error {
	query := `UPDATE calidad_fase SET activo = false WHERE fase_produccion_id = $1 AND activo = true`
	if _, err := r.q.Exec(context.Background(), query, faseID); err != nil {
		return fmt.Errorf("desactivar calidad activas: %w", err)
	}
	return nil
}

// ListHistorial devuelve todas las evaluaciones de la fase, rondas cerradas incluidas.
func (r *CalidadFaseRepo) ListHistorial(faseID string) ([]*entity.CalidadFase, error) {
	query := `SELECT ` + calidadColumns + ` FROM calidad_fase WHERE fase_produccion_id = $1 ORDER BY version ASC, fecha_evaluacion ASC`
	return r.list(query, faseID, "list calidad historial")
}

func (r *CalidadFaseRepo) list(query, faseID, op string) ([]*entity.CalidadFase, error) {
	rows, err := r.q.Query(context.Background(), query, faseID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.CalidadFase
	for rows.Next() {
		var e entity.CalidadFase
		if err := rows.Scan(&e.ID, &e.FaseProduccionID, &e.ParametroID, &e.Valor,
			&e.Aprobado, &e.Activo, &e.Version, &e.FechaEvaluacion); err != nil {
			return nil, fmt.Errorf("scan calidad: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// ParametroCalidadRepo implementación de ParametroCalidadRepository sobre PostgreSQL.
type ParametroCalidadRepo struct {
	q Querier
}

// NewParametroCalidadRepository construye el adaptador de parámetros de calidad.
func NewParametroCalidadRepository(q Querier) *ParametroCalidadRepo {
	return &ParametroCalidadRepo{q: q}
}

// GetByID obtiene un parámetro por ID.
func (r *ParametroCalidadRepo) GetByID(id string) (*entity.ParametroCalidad, error) {
	query := `SELECT id, nombre, unidad_medida, es_critico FROM parametros_calidad WHERE id = $1`
	var p entity.ParametroCalidad
	err := r.q.QueryRow(context.Background(), query, id).Scan(&p.ID, &p.Nombre, &p.UnidadMedida, &p.EsCritico)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get parametro: %w", err)
	}
	return &p, nil
}

// EsCritico indica si el parámetro está marcado como crítico.
func (r *ParametroCalidadRepo) EsCritico(id string) (bool, error) {
	p, err := r.GetByID(id)
	if err != nil {
		return false, err
	}
	if p == nil {
		return false, fmt.Errorf("parametro %s no existe", id)
	}
	return p.EsCritico, nil
}
