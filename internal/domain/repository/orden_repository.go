package repository

import "github.com/jhoicas/Cerveceria-api/internal/domain/entity"

// OrdenRepository define el puerto de persistencia para órdenes de producción.
type OrdenRepository interface {
	Create(orden *entity.OrdenProduccion) error
	GetByID(id string) (*entity.OrdenProduccion, error)
	// GetForUpdate bloquea la fila de la orden para serializar transiciones de estado.
	GetForUpdate(id string) (*entity.OrdenProduccion, error)
	// ActualizarEstado persiste Estado y FechaValidacion.
	ActualizarEstado(orden *entity.OrdenProduccion) error
	List(estado string, limit, offset int) ([]*entity.OrdenProduccion, error)
}

// LoteRepository define el puerto de persistencia para lotes.
type LoteRepository interface {
	Create(lote *entity.Lote) error
	GetByID(id string) (*entity.Lote, error)
	Actualizar(lote *entity.Lote) error
}
