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

var _ repository.OrdenRepository = (*OrdenRepo)(nil)
var _ repository.LoteRepository = (*LoteRepo)(nil)

// OrdenRepo implementación de OrdenRepository sobre PostgreSQL (usable con pool o tx).
type OrdenRepo struct {
	q Querier
}

// NewOrdenRepository construye el adaptador de órdenes. Pasar pool o tx (Querier).
func NewOrdenRepository(q Querier) *OrdenRepo {
	return &OrdenRepo{q: q}
}

const ordenColumns = `id, producto_id, envase_id, lote_id, cantidad, fecha_planificada, fecha_estimada_fin, fecha_validacion, estado, created_at`

// Create persiste una orden nueva (PENDIENTE).
func (r *OrdenRepo) Create(o *entity.OrdenProduccion) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	query := `
		INSERT INTO ordenes_produccion (` + ordenColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.ProductoID, o.EnvaseID, o.LoteID, o.Cantidad,
		o.FechaPlanificada, o.FechaEstimadaFin, o.FechaValidacion, o.Estado, o.CreatedAt)
	if err != nil {
		return fmt.Errorf("create orden: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID.
func (r *OrdenRepo) GetByID(id string) (*entity.OrdenProduccion, error) {
	query := `SELECT ` + ordenColumns + ` FROM ordenes_produccion WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get orden")
}

// GetForUpdate obtiene la orden y bloquea la fila: dos transiciones
// concurrentes de la misma orden quedan serializadas.
func (r *OrdenRepo) GetForUpdate(id string) (*entity.OrdenProduccion, error) {
	query := `SELECT ` + ordenColumns + ` FROM ordenes_produccion WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get orden for update")
}

// ActualizarEstado persiste Estado y FechaValidacion.
func (r *OrdenRepo) ActualizarEstado(o *entity.OrdenProduccion) error {
	query := `
		UPDATE ordenes_produccion
		SET estado = $2, fecha_validacion = $3
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, o.ID, o.Estado, o.FechaValidacion)
	if err != nil {
		return fmt.Errorf("actualizar estado orden: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("actualizar estado orden: orden %s no existe", o.ID)
	}
	return nil
}

// List lista órdenes, opcionalmente filtradas por estado.
func (r *OrdenRepo) List(estado string, limit, offset int) ([]*entity.OrdenProduccion, error) {
	query := `SELECT ` + ordenColumns + ` FROM ordenes_produccion`
	args := []any{}
	pos := 1
	if estado != "" {
		query += fmt.Sprintf(" WHERE estado = $%d", pos)
		args = append(args, estado)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ordenes: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrdenProduccion
	for rows.Next() {
		var o entity.OrdenProduccion
		if err := rows.Scan(&o.ID, &o.ProductoID, &o.EnvaseID, &o.LoteID, &o.Cantidad,
			&o.FechaPlanificada, &o.FechaEstimadaFin, &o.FechaValidacion, &o.Estado, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan orden: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

func (r *OrdenRepo) scanOne(row pgx.Row, op string) (*entity.OrdenProduccion, error) {
	var o entity.OrdenProduccion
	err := row.Scan(&o.ID, &o.ProductoID, &o.EnvaseID, &o.LoteID, &o.Cantidad,
		&o.FechaPlanificada, &o.FechaEstimadaFin, &o.FechaValidacion, &o.Estado, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &o, nil
}

// LoteRepo implementación de LoteRepository sobre PostgreSQL (usable con pool o tx).
type LoteRepo struct {
	q Querier
}

// NewLoteRepository construye el adaptador de lotes. Pasar pool o tx (Querier).
func NewLoteRepository(q Querier) *LoteRepo {
	return &LoteRepo{q: q}
}

const loteColumns = `id, codigo, envase_id, cantidad, estado, fecha_creacion, fecha_planificada, fecha_inicio, fecha_fin`

// Create persiste un lote nuevo.
func (r *LoteRepo) Create(l *entity.Lote) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	query := `
		INSERT INTO lotes (` + loteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.Codigo, l.EnvaseID, l.Cantidad, l.Estado,
		l.FechaCreacion, l.FechaPlanificada, l.FechaInicio, l.FechaFin)
	if err != nil {
		return fmt.Errorf("create lote: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID.
func (r *LoteRepo) GetByID(id string) (*entity.Lote, error) {
	query := `SELECT ` + loteColumns + ` FROM lotes WHERE id = $1`
	var l entity.Lote
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.Codigo, &l.EnvaseID, &l.Cantidad, &l.Estado,
		&l.FechaCreacion, &l.FechaPlanificada, &l.FechaInicio, &l.FechaFin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lote: %w", err)
	}
	return &l, nil
}

// Actualizar persiste estado y fechas del lote.
func (r *LoteRepo) Actualizar(l *entity.Lote) error {
	query := `
		UPDATE lotes
		SET estado = $2, fecha_inicio = $3, fecha_fin = $4
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, l.ID, l.Estado, l.FechaInicio, l.FechaFin)
	if err != nil {
		return fmt.Errorf("actualizar lote: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("actualizar lote: lote %s no existe", l.ID)
	}
	return nil
}
