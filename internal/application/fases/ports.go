package fases

import (
	"context"

	"github.com/jhoicas/Cerveceria-api/internal/domain/repository"
)

// FasesTxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios de fases. La revisión bloquea la fila de la fase antes de leer
// las evaluaciones, de modo que dos revisiones concurrentes de la misma fase
// quedan serializadas.
type FasesTxRunner interface {
	RunFases(ctx context.Context, fn func(
		faseRepo repository.FaseProduccionRepository,
		loteRepo repository.LoteRepository,
		calidadRepo repository.CalidadFaseRepository,
	) error) error
}

// Notificador avisa al sector asignado cuando una fase queda rechazada.
// Fire-and-forget, fuera de la transacción.
type Notificador interface {
	FaseRechazada(faseID, sectorID string)
}
