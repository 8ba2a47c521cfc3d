package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/Cerveceria-api/internal/domain/repository"
)

var _ repository.MovimientoMaterialRepository = (*MovimientoMaterialRepo)(nil)

// MovimientoMaterialRepo implementación sobre PostgreSQL (usable con pool o tx).
type MovimientoMaterialRepo struct {
	q Querier
}

// NewMovimientoMaterialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoMaterialRepository(q Querier) *MovimientoMaterialRepo {
	return &MovimientoMaterialRepo{q: q}
}

// Create persiste un movimiento del libro de materiales (append-only).
func (r *MovimientoMaterialRepo) Create(mov *entity.MovimientoMaterial) error {
	if mov.ID == "" {
		mov.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movimientos_material (id, orden_id, material_id, tipo, cantidad, fecha)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		mov.ID, mov.OrdenID, mov.MaterialID, mov.Tipo, mov.Cantidad, mov.Fecha)
	if err != nil {
		return fmt.Errorf("create movimiento: %w", err)
	}
	return nil
}

// ListByMaterial lista los movimientos de un material en un rango de fechas.
func (r *MovimientoMaterialRepo) ListByMaterial(materialID string, from, to *time.Time, limit, offset int) ([]*entity.MovimientoMaterial, error) {
	query := `
		SELECT id, orden_id, material_id, tipo, cantidad, fecha
		FROM movimientos_material WHERE material_id = $1`
	args := []any{materialID}
	pos := 2
	if from != nil {
		query += fmt.Sprintf(" AND fecha >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND fecha <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY fecha DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimientos por material: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovimientoMaterial
	for rows.Next() {
		var m entity.MovimientoMaterial
		if err := rows.Scan(&m.ID, &m.OrdenID, &m.MaterialID, &m.Tipo, &m.Cantidad, &m.Fecha); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// ListByOrden lista los movimientos originados por una orden.
func (r *MovimientoMaterialRepo) ListByOrden(ordenID string) ([]*entity.MovimientoMaterial, error) {
	query := `
		SELECT id, orden_id, material_id, tipo, cantidad, fecha
		FROM movimientos_material WHERE orden_id = $1
		ORDER BY fecha ASC`
	rows, err := r.q.Query(context.Background(), query, ordenID)
	if err != nil {
		return nil, fmt.Errorf("list movimientos por orden: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovimientoMaterial
	for rows.Next() {
		var m entity.MovimientoMaterial
		if err := rows.Scan(&m.ID, &m.OrdenID, &m.MaterialID, &m.Tipo, &m.Cantidad, &m.Fecha); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
