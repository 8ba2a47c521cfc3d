package fases

import "github.com/jhoicas/Cerveceria-api/internal/domain/repository"

// VersionActual resuelve la versión bajo la que se registran nuevas
// evaluaciones: la máxima vista para la fase (1 si no hay ninguna); si la
// ronda de esa versión ya fue cerrada (ninguna fila activa), la siguiente
// ronda usa máxima+1.
//
// Debe invocarse con la fila de la fase ya bloqueada (FOR UPDATE): la
// inferencia por consulta no es segura ante dos rondas concurrentes.
func VersionActual(calidadRepo repository.CalidadFaseRepository, faseID string) (int, error) {
	max, err := calidadRepo.MaxVersion(faseID)
	if err != nil {
		return 0, err
	}
	if max == 0 {
		return 1, nil
	}
	activas, err := calidadRepo.ExistenActivas(faseID)
	if err != nil {
		return 0, err
	}
	if !activas {
		return max + 1, nil
	}
	return max, nil
}

// CerrarVersion marca como histórica toda la ronda vigente de la fase,
// preservando las filas para auditoría. Tras el cierre no queda ninguna fila
// activa y la próxima ronda se abre con la versión incrementada.
func CerrarVersion(calidadRepo repository.CalidadFaseRepository, faseID string) error {
	return calidadRepo.DesactivarActivas(faseID)
}
