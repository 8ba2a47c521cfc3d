package repository

import "github.com/jhoicas/Cerveceria-api/internal/domain/entity"

// FaseProduccionRepository define el puerto de persistencia para fases en curso.
type FaseProduccionRepository interface {
	CreateBatch(fases []*entity.FaseProduccion) error
	GetByID(id string) (*entity.FaseProduccion, error)
	// GetForUpdate bloquea la fila de la fase: dos revisiones concurrentes de la
	// misma fase no deben transicionar ambas.
	GetForUpdate(id string) (*entity.FaseProduccion, error)
	Actualizar(fase *entity.FaseProduccion) error
	// ListByLote devuelve las fases del lote ordenadas por Orden ascendente.
	ListByLote(loteID string) ([]*entity.FaseProduccion, error)
}
