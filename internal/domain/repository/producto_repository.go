package repository

import "github.com/jhoicas/Cerveceria-api/internal/domain/entity"

// ProductoRepository define el puerto de lectura de productos con su secuencia
// de fases y receta. La gestión (CRUD) del maestro de productos es de un
// colaborador externo; el motor solo lee.
type ProductoRepository interface {
	GetByID(id string) (*entity.Producto, error)
	// ListFases devuelve las plantillas de fase ordenadas por Orden ascendente.
	ListFases(productoID string) ([]*entity.FaseProducto, error)
	// ListReceta devuelve las líneas de receta de todas las fases del producto.
	ListReceta(productoID string) ([]*entity.LineaReceta, error)
}

// EnvaseRepository puerto de lectura de envases.
type EnvaseRepository interface {
	GetByID(id string) (*entity.Envase, error)
}
