package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/Cerveceria-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)
var _ repository.EnvaseRepository = (*EnvaseRepo)(nil)

// ProductoRepo lectura de productos, sus fases plantilla y su receta.
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de productos. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// GetByID obtiene un producto por ID.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	query := `
		SELECT id, nombre, descripcion, unidad_medida, cantidad_estandar, esta_listo, created_at, updated_at
		FROM productos WHERE id = $1`
	var p entity.Producto
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Nombre, &p.Descripcion, &p.UnidadMedida, &p.CantidadEstandar,
		&p.EstaListo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// ListFases devuelve las plantillas de fase del producto ordenadas por secuencia.
func (r *ProductoRepo) ListFases(productoID string) ([]*entity.FaseProducto, error) {
	query := `
		SELECT id, producto_id, tipo, orden, horas_estimadas, es_activa, unidad_salida
		FROM fases_producto WHERE producto_id = $1
		ORDER BY orden ASC`
	rows, err := r.q.Query(context.Background(), query, productoID)
	if err != nil {
		return nil, fmt.Errorf("list fases producto: %w", err)
	}
	defer rows.Close()
	var list []*entity.FaseProducto
	for rows.Next() {
		var f entity.FaseProducto
		if err := rows.Scan(&f.ID, &f.ProductoID, &f.Tipo, &f.Orden,
			&f.HorasEstimadas, &f.EsActiva, &f.UnidadSalida); err != nil {
			return nil, fmt.Errorf("scan fase producto: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// ListReceta devuelve las líneas de receta de todas las fases del producto.
func (r *ProductoRepo) ListReceta(productoID string) ([]*entity.LineaReceta, error) {
	query := `
		SELECT lr.id, lr.fase_producto_id, lr.material_id, lr.cantidad_por_unidad
		FROM lineas_receta lr
		JOIN fases_producto fp ON fp.id = lr.fase_producto_id
		WHERE fp.producto_id = $1
		ORDER BY fp.orden ASC, lr.material_id ASC`
	rows, err := r.q.Query(context.Background(), query, productoID)
	if err != nil {
		return nil, fmt.Errorf("list receta: %w", err)
	}
	defer rows.Close()
	var list []*entity.LineaReceta
	for rows.Next() {
		var l entity.LineaReceta
		if err := rows.Scan(&l.ID, &l.FaseProductoID, &l.MaterialID, &l.CantidadPorUnidad); err != nil {
			return nil, fmt.Errorf("scan linea receta: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// EnvaseRepo lectura de envases.
type EnvaseRepo struct {
	q Querier
}

// NewEnvaseRepository construye el adaptador de envases. Pasar pool o tx (Querier).
func NewEnvaseRepository(q Querier) *EnvaseRepo {
	return &EnvaseRepo{q: q}
}

// GetByID obtiene un envase por ID.
func (r *EnvaseRepo) GetByID(id string) (*entity.Envase, error) {
	query := `SELECT id, nombre, unidad_medida, cantidad FROM envases WHERE id = $1`
	var e entity.Envase
	err := r.q.QueryRow(context.Background(), query, id).Scan(&e.ID, &e.Nombre, &e.UnidadMedida, &e.Cantidad)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get envase: %w", err)
	}
	return &e, nil
}
