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

var _ repository.FaseProduccionRepository = (*FaseProduccionRepo)(nil)

// FaseProduccionRepo implementación de FaseProduccionRepository sobre PostgreSQL.
type FaseProduccionRepo struct {
	q Querier
}

// NewFaseProduccionRepository construye el adaptador de fases. Pasar pool o tx (Querier).
func NewFaseProduccionRepository(q Querier) *FaseProduccionRepo {
	return &FaseProduccionRepo{q: q}
}

const faseColumns = `id, lote_id, tipo, orden, estado, entrada, entrada_estandar, salida, salida_estandar, unidad_salida, sector_id, fecha_inicio, fecha_fin`

// CreateBatch persiste todas las fases instanciadas para un lote.
func (r *FaseProduccionRepo) CreateBatch(fases []*entity.FaseProduccion) error {
	query := `
		INSERT INTO fases_produccion (` + faseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	for _, f := range fases {
		if f.ID == "" {
			f.ID = uuid.New().String()
		}
		_, err := r.q.Exec(context.Background(), query,
			f.ID, f.LoteID, f.Tipo, f.Orden, f.Estado,
			f.Entrada, f.EntradaEstandar, f.Salida, f.SalidaEstandar,
			f.UnidadSalida, f.SectorID, f.FechaInicio, f.FechaFin)
		if err != nil {
			return fmt.Errorf("create fase %s: %w", f.Tipo, err)
		}
	}
	return nil
}

// GetByID obtiene una fase por ID.
func (r *FaseProduccionRepo) GetByID(id string) (*entity.FaseProduccion, error) {
	query := `SELECT ` + faseColumns + ` FROM fases_produccion WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get fase")
}

// GetForUpdate obtiene la fase y bloquea la fila. El bloqueo serializa tanto
// la transición de estado como la inferencia de la versión de calidad vigente.
func (r *FaseProduccionRepo) GetForUpdate(id string) (*entity.FaseProduccion, error) {
	query := `SELECT ` + faseColumns + ` FROM fases_produccion WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get fase for update")
}

// Actualizar persiste estado, mediciones y fechas de la fase.
func (r *FaseProduccionRepo) Actualizar(f *entity.FaseProduccion) error {
	query := `
		UPDATE fases_produccion
		SET estado = $2, entrada = $3, salida = $4, fecha_inicio = $5, fecha_fin = $6
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		f.ID, f.Estado, f.Entrada, f.Salida, f.FechaInicio, f.FechaFin)
	if err != nil {
		return fmt.Errorf("actualizar fase: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("actualizar fase: fase %s no existe", f.ID)
	}
	return nil
}

// ListByLote devuelve las fases del lote ordenadas por posición en la secuencia.
func (r *FaseProduccionRepo) ListByLote(loteID string) ([]*entity.FaseProduccion, error) {
	query := `SELECT ` + faseColumns + ` FROM fases_produccion WHERE lote_id = $1 ORDER BY orden ASC`
	rows, err := r.q.Query(context.Background(), query, loteID)
	if err != nil {
		return nil, fmt.Errorf("list fases lote: %w", err)
	}
	defer rows.Close()
	var list []*entity.FaseProduccion
	for rows.Next() {
		var f entity.FaseProduccion
		if err := rows.Scan(&f.ID, &f.LoteID, &f.Tipo, &f.Orden, &f.Estado,
			&f.Entrada, &f.EntradaEstandar, &f.Salida, &f.SalidaEstandar,
			&f.UnidadSalida, &f.SectorID, &f.FechaInicio, &f.FechaFin); err != nil {
			return nil, fmt.Errorf("scan fase: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

func (r *FaseProduccionRepo) scanOne(row pgx.Row, op string) (*entity.FaseProduccion, error) {
	var f entity.FaseProduccion
	err := row.Scan(&f.ID, &f.LoteID, &f.Tipo, &f.Orden, &f.Estado,
		&f.Entrada, &f.EntradaEstandar, &f.Salida, &f.SalidaEstandar,
		&f.UnidadSalida, &f.SectorID, &f.FechaInicio, &f.FechaFin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &f, nil
}
