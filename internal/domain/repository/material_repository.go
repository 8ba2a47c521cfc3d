package repository

import "github.com/jhoicas/Cerveceria-api/internal/domain/entity"

// MaterialRepository define el puerto de persistencia para materias primas.
// Dentro de transacciones del libro de materiales se usa GetForUpdate para
// serializar el check-then-reserve por material.
type MaterialRepository interface {
	GetByID(id string) (*entity.Material, error)
	// GetForUpdate bloquea la fila del material (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Material, error)
	// ActualizarStock persiste StockTotal y StockReservado.
	ActualizarStock(material *entity.Material) error
	List(limit, offset int) ([]*entity.Material, error)
}
