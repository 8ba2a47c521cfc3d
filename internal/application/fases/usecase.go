package fases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cerveceria-api/internal/domain"
	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/Cerveceria-api/internal/domain/repository"
)

// FaseUseCase gobierna la máquina de estados de una fase en curso y su ciclo
// de revisión de calidad por rondas versionadas.
type FaseUseCase struct {
	txRunner      FasesTxRunner
	faseRepo      repository.FaseProduccionRepository // lecturas fuera de tx
	parametroRepo repository.ParametroCalidadRepository
	calidadRepo   repository.CalidadFaseRepository // lecturas fuera de tx
	notificador   Notificador
}

// NewFaseUseCase construye el caso de uso.
func NewFaseUseCase(
	txRunner FasesTxRunner,
	faseRepo repository.FaseProduccionRepository,
	parametroRepo repository.ParametroCalidadRepository,
	calidadRepo repository.CalidadFaseRepository,
	notificador Notificador,
) *FaseUseCase {
	return &FaseUseCase{
		txRunner:      txRunner,
		faseRepo:      faseRepo,
		parametroRepo: parametroRepo,
		calidadRepo:   calidadRepo,
		notificador:   notificador,
	}
}

// IniciarFase pasa la siguiente fase del lote de PENDIENTE a EN_PROCESO.
// Requiere que todas las fases anteriores estén COMPLETADA y que ninguna otra
// fase del lote esté en curso. Al iniciar la primera fase, el lote arranca.
func (uc *FaseUseCase) IniciarFase(ctx context.Context, faseID string) (*entity.FaseProduccion, error) {
	var fase *entity.FaseProduccion
	err := uc.txRunner.RunFases(ctx, func(
		faseRepo repository.FaseProduccionRepository,
		loteRepo repository.LoteRepository,
		calidadRepo repository.CalidadFaseRepository,
	) error {
		var err error
		fase, err = faseRepo.GetForUpdate(faseID)
		if err != nil {
			return err
		}
		if fase == nil {
			return domain.ErrNotFound
		}
		if fase.Estado != entity.FaseProduccionPENDIENTE {
			return fmt.Errorf("iniciar fase en estado %s: %w", fase.Estado, domain.ErrEstadoInvalido)
		}

		hermanas, err := faseRepo.ListByLote(fase.LoteID)
		if err != nil {
			return err
		}
		for _, h := range hermanas {
			if h.ID == fase.ID {
				continue
			}
			if h.Orden < fase.Orden && h.Estado != entity.FaseProduccionCOMPLETADA {
				return fmt.Errorf("la fase %d (%s) no está completada: %w", h.Orden, h.Tipo, domain.ErrEstadoInvalido)
			}
			if h.Estado == entity.FaseProduccionENPROCESO ||
				h.Estado == entity.FaseProduccionBAJOREVISION ||
				h.Estado == entity.FaseProduccionSIENDOAJUSTADA {
				return fmt.Errorf("el lote ya tiene una fase en curso: %w", domain.ErrConflict)
			}
		}

		ahora := time.Now()
		fase.Estado = entity.FaseProduccionENPROCESO
		fase.FechaInicio = &ahora
		if err := faseRepo.Actualizar(fase); err != nil {
			return err
		}

		lote, err := loteRepo.GetByID(fase.LoteID)
		if err != nil {
			return err
		}
		if lote != nil && lote.Estado == entity.LotePENDIENTE {
			lote.Estado = entity.LoteENPROCESO
			lote.FechaInicio = &ahora
			return loteRepo.Actualizar(lote)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return fase, nil
}

// PonerEnRevision registra las cantidades reales de entrada/salida y pasa la
// fase a BAJO_REVISION. Legal desde EN_PROCESO o SIENDO_AJUSTADA (reenvío).
func (uc *FaseUseCase) PonerEnRevision(ctx context.Context, faseID string, entrada, salida decimal.Decimal) (*entity.FaseProduccion, error) {
	var fase *entity.FaseProduccion
	err := uc.txRunner.RunFases(ctx, func(
		faseRepo repository.FaseProduccionRepository,
		_ repository.LoteRepository,
		_ repository.CalidadFaseRepository,
	) error {
		var err error
		fase, err = faseRepo.GetForUpdate(faseID)
		if err != nil {
			return err
		}
		if fase == nil {
			return domain.ErrNotFound
		}
		if fase.Estado != entity.FaseProduccionENPROCESO && fase.Estado != entity.FaseProduccionSIENDOAJUSTADA {
			return fmt.Errorf("enviar a revisión desde %s: %w", fase.Estado, domain.ErrEstadoInvalido)
		}
		fase.Entrada = entrada
		fase.Salida = salida
		fase.Estado = entity.FaseProduccionBAJOREVISION
		return faseRepo.Actualizar(fase)
	})
	if err != nil {
		return nil, err
	}
	return fase, nil
}

// EvaluacionInput resultado de medir un parámetro de calidad.
type EvaluacionInput struct {
	ParametroID string
	Valor       decimal.Decimal
	Aprobado    bool
}

// RegistrarEvaluaciones crea las filas activas de la ronda vigente para una
// fase BAJO_REVISION. La versión se resuelve bajo el lock de la fase.
func (uc *FaseUseCase) RegistrarEvaluaciones(ctx context.Context, faseID string, evaluaciones []EvaluacionInput) error {
	if len(evaluaciones) == 0 {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.RunFases(ctx, func(
		faseRepo repository.FaseProduccionRepository,
		_ repository.LoteRepository,
		calidadRepo repository.CalidadFaseRepository,
	) error {
		fase, err := faseRepo.GetForUpdate(faseID)
		if err != nil {
			return err
		}
		if fase == nil {
			return domain.ErrNotFound
		}
		if fase.Estado != entity.FaseProduccionBAJOREVISION {
			return fmt.Errorf("registrar evaluaciones en estado %s: %w", fase.Estado, domain.ErrEstadoInvalido)
		}
		version, err := VersionActual(calidadRepo, faseID)
		if err != nil {
			return err
		}
		ahora := time.Now()
		for _, ev := range evaluaciones {
			if ev.ParametroID == "" {
				return domain.ErrInvalidInput
			}
			fila := &entity.CalidadFase{
				ID:               uuid.New().String(),
				FaseProduccionID: faseID,
				ParametroID:      ev.ParametroID,
				Valor:            ev.Valor,
				Aprobado:         ev.Aprobado,
				Activo:           true,
				Version:          version,
				FechaEvaluacion:  ahora,
			}
			if err := calidadRepo.Create(fila); err != nil {
				return err
			}
		}
		return nil
	})
}

// Revisar evalúa la ronda activa de una fase BAJO_REVISION y decide:
//   - todas aprobadas → COMPLETADA (cierra la ronda; si era la última fase,
//     completa el lote);
//   - alguna desaprobada de parámetro crítico → RECHAZADA, terminal (se avisa
//     al sector asignado);
//   - desaprobadas solo no críticas → SIENDO_AJUSTADA (cierra la ronda; el
//     operario corrige y reenvía).
//
// Una fase sin evaluaciones activas no tiene nada que revisar.
func (uc *FaseUseCase) Revisar(ctx context.Context, faseID string) (*entity.FaseProduccion, error) {
	var fase *entity.FaseProduccion
	var rechazada bool

	err := uc.txRunner.RunFases(ctx, func(
		faseRepo repository.FaseProduccionRepository,
		loteRepo repository.LoteRepository,
		calidadRepo repository.CalidadFaseRepository,
	) error {
		var err error
		// El lock de la fase serializa revisiones concurrentes y protege la
		// inferencia de versión.
		fase, err = faseRepo.GetForUpdate(faseID)
		if err != nil {
			return err
		}
		if fase == nil {
			return domain.ErrNotFound
		}
		if fase.Estado != entity.FaseProduccionBAJOREVISION {
			return fmt.Errorf("revisar fase en estado %s: %w", fase.Estado, domain.ErrEstadoInvalido)
		}

		activas, err := calidadRepo.ListActivas(faseID)
		if err != nil {
			return err
		}
		if len(activas) == 0 {
			return domain.ErrSinDatosCalidad
		}

		todasAprobadas := true
		criticaDesaprobada := false
		for _, fila := range activas {
			if fila.Aprobado {
				continue
			}
			todasAprobadas = false
			critico, err := uc.parametroRepo.EsCritico(fila.ParametroID)
			if err != nil {
				return err
			}
			if critico {
				criticaDesaprobada = true
			}
		}

		ahora := time.Now()
		switch {
		case todasAprobadas:
			fase.Estado = entity.FaseProduccionCOMPLETADA
			fase.FechaFin = &ahora
			if err := CerrarVersion(calidadRepo, faseID); err != nil {
				return err
			}
			if err := faseRepo.Actualizar(fase); err != nil {
				return err
			}
			return uc.completarLoteSiTermino(faseRepo, loteRepo, fase, ahora)

		case criticaDesaprobada:
			// Cualquier parámetro crítico desaprobado rechaza la fase de forma
			// terminal, sin importar cuántos otros estén aprobados.
			fase.Estado = entity.FaseProduccionRECHAZADA
			fase.FechaFin = &ahora
			rechazada = true
			return faseRepo.Actualizar(fase)

		default:
			fase.Estado = entity.FaseProduccionSIENDOAJUSTADA
			if err := CerrarVersion(calidadRepo, faseID); err != nil {
				return err
			}
			return faseRepo.Actualizar(fase)
		}
	})
	if err != nil {
		return nil, err
	}

	if rechazada && fase.SectorID != nil {
		uc.notificador.FaseRechazada(fase.ID, *fase.SectorID)
	}
	return fase, nil
}

// GetFase lectura simple para la capa HTTP.
func (uc *FaseUseCase) GetFase(_ context.Context, faseID string) (*entity.FaseProduccion, error) {
	fase, err := uc.faseRepo.GetByID(faseID)
	if err != nil {
		return nil, err
	}
	if fase == nil {
		return nil, domain.ErrNotFound
	}
	return fase, nil
}

// ListFasesDeLote devuelve las fases de un lote en orden de secuencia.
func (uc *FaseUseCase) ListFasesDeLote(_ context.Context, loteID string) ([]*entity.FaseProduccion, error) {
	return uc.faseRepo.ListByLote(loteID)
}

// HistorialCalidad devuelve todas las rondas (activas e históricas) de una fase.
func (uc *FaseUseCase) HistorialCalidad(_ context.Context, faseID string) ([]*entity.CalidadFase, error) {
	return uc.calidadRepo.ListHistorial(faseID)
}

// completarLoteSiTermino cierra el lote cuando su última fase queda COMPLETADA.
func (uc *FaseUseCase) completarLoteSiTermino(
	faseRepo repository.FaseProduccionRepository,
	loteRepo repository.LoteRepository,
	fase *entity.FaseProduccion,
	ahora time.Time,
) error {
	hermanas, err := faseRepo.ListByLote(fase.LoteID)
	if err != nil {
		return err
	}
	for _, h := range hermanas {
		if h.ID == fase.ID {
			continue
		}
		if h.Estado != entity.FaseProduccionCOMPLETADA {
			return nil
		}
	}
	lote, err := loteRepo.GetByID(fase.LoteID)
	if err != nil {
		return err
	}
	if lote == nil {
		return nil
	}
	lote.Estado = entity.LoteCOMPLETADO
	lote.FechaFin = &ahora
	return loteRepo.Actualizar(lote)
}
