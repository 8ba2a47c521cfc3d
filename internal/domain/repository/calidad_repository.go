package repository

import "github.com/jhoicas/Cerveceria-api/internal/domain/entity"

// CalidadFaseRepository define el puerto para las evaluaciones de calidad de
// una fase y su versionado por rondas.
type CalidadFaseRepository interface {
	Create(eval *entity.CalidadFase) error
	// ListActivas devuelve las filas de la ronda vigente (Activo=true).
	ListActivas(faseID string) ([]*entity.CalidadFase, error)
	// MaxVersion devuelve la versión máxima registrada para la fase; 0 si no hay filas.
	MaxVersion(faseID string) (int, error)
	// ExistenActivas indica si la ronda de la versión máxima sigue abierta.
	ExistenActivas(faseID string) (bool, error)
	// DesactivarActivas cierra la ronda vigente marcando sus filas como históricas.
	DesactivarActivas(faseID string) error
	ListHistorial(faseID string) ([]*entity.CalidadFase, error)
}

// ParametroCalidadRepository puerto de lectura de definiciones de parámetros.
type ParametroCalidadRepository interface {
	GetByID(id string) (*entity.ParametroCalidad, error)
	EsCritico(id string) (bool, error)
}
