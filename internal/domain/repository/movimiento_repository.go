package repository

import (
	"time"

	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
)

// MovimientoMaterialRepository define el puerto para el registro de auditoría
// del libro de materiales. Solo inserta y consulta: los movimientos nunca se
// actualizan ni se borran.
type MovimientoMaterialRepository interface {
	Create(mov *entity.MovimientoMaterial) error
	ListByMaterial(materialID string, from, to *time.Time, limit, offset int) ([]*entity.MovimientoMaterial, error)
	ListByOrden(ordenID string) ([]*entity.MovimientoMaterial, error)
}
