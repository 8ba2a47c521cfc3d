package ordenes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cerveceria-api/internal/application/almacen"
	"github.com/jhoicas/Cerveceria-api/internal/domain"
	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/Cerveceria-api/internal/domain/planificacion"
	"github.com/jhoicas/Cerveceria-api/internal/domain/repository"
)

// OrdenUseCase orquesta el ciclo de vida de las órdenes de producción:
// creación (estima fecha de fin y reserva materiales), aprobación (confirma la
// reserva) y devolución (cancela o rechaza liberando la reserva).
type OrdenUseCase struct {
	txRunner       TxRunner
	ordenRepo      repository.OrdenRepository // lecturas fuera de tx
	productoRepo   repository.ProductoRepository
	envaseRepo     repository.EnvaseRepository
	calendarioRepo repository.CalendarioRepository
	notificador    Notificador
	ledger         almacen.Ledger
}

// NewOrdenUseCase construye el caso de uso.
func NewOrdenUseCase(
	txRunner TxRunner,
	ordenRepo repository.OrdenRepository,
	productoRepo repository.ProductoRepository,
	envaseRepo repository.EnvaseRepository,
	calendarioRepo repository.CalendarioRepository,
	notificador Notificador,
) *OrdenUseCase {
	return &OrdenUseCase{
		txRunner:       txRunner,
		ordenRepo:      ordenRepo,
		productoRepo:   productoRepo,
		envaseRepo:     envaseRepo,
		calendarioRepo: calendarioRepo,
		notificador:    notificador,
	}
}

// CrearOrdenInput entrada para crear una orden de producción.
type CrearOrdenInput struct {
	ProductoID       string
	EnvaseID         string
	Cantidad         decimal.Decimal
	FechaPlanificada time.Time
}

// CrearOrden valida producto y envase, estima la fecha de finalización contra
// el calendario laboral, reserva el stock de la receta escalada y persiste la
// orden en PENDIENTE junto a su lote y sus fases. Si la reserva falla, nada
// queda creado.
func (uc *OrdenUseCase) CrearOrden(ctx context.Context, input CrearOrdenInput) (*entity.OrdenProduccion, error) {
	if input.ProductoID == "" || input.EnvaseID == "" || !input.Cantidad.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	producto, err := uc.productoRepo.GetByID(input.ProductoID)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	if !producto.EstaListo {
		return nil, domain.ErrProductoNoListo
	}
	envase, err := uc.envaseRepo.GetByID(input.EnvaseID)
	if err != nil {
		return nil, err
	}
	if envase == nil {
		return nil, domain.ErrNotFound
	}
	if producto.UnidadMedida != envase.UnidadMedida {
		return nil, domain.ErrUnidadIncompatible
	}
	if !producto.CantidadEstandar.GreaterThan(decimal.Zero) || !envase.Cantidad.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	plantillas, err := uc.productoRepo.ListFases(input.ProductoID)
	if err != nil {
		return nil, err
	}
	if len(plantillas) == 0 {
		return nil, domain.ErrProductoNoListo
	}
	receta, err := uc.productoRepo.ListReceta(input.ProductoID)
	if err != nil {
		return nil, err
	}
	calendario, err := uc.calendarioRepo.GetCalendario()
	if err != nil {
		return nil, err
	}

	ahora := time.Now()
	factor := input.Cantidad.Div(producto.CantidadEstandar)
	fechaFin := planificacion.EstimarFechaFin(
		planificacion.DesdePlantillas(plantillas), input.FechaPlanificada, calendario)

	// Unidades de envase: ceil — un envase parcial igual requiere un envase.
	unidades := input.Cantidad.Div(envase.Cantidad).Ceil().IntPart()

	lote := &entity.Lote{
		ID:               uuid.New().String(),
		Codigo:           generarCodigoLote(producto.Nombre, ahora),
		EnvaseID:         envase.ID,
		Cantidad:         int(unidades),
		Estado:           entity.LotePENDIENTE,
		FechaCreacion:    ahora,
		FechaPlanificada: input.FechaPlanificada,
	}
	orden := &entity.OrdenProduccion{
		ID:               uuid.New().String(),
		ProductoID:       producto.ID,
		EnvaseID:         envase.ID,
		LoteID:           lote.ID,
		Cantidad:         input.Cantidad,
		FechaPlanificada: input.FechaPlanificada,
		FechaEstimadaFin: fechaFin,
		Estado:           entity.OrdenPENDIENTE,
		CreatedAt:        ahora,
	}
	fases := instanciarFases(lote.ID, plantillas, input.Cantidad)

	err = uc.txRunner.Run(ctx, func(
		ordenRepo repository.OrdenRepository,
		loteRepo repository.LoteRepository,
		faseRepo repository.FaseProduccionRepository,
		matRepo repository.MaterialRepository,
		movRepo repository.MovimientoMaterialRepository,
	) error {
		if err := uc.ledger.Reservar(matRepo, movRepo, orden.ID, receta, factor, ahora); err != nil {
			return err
		}
		if err := loteRepo.Create(lote); err != nil {
			return err
		}
		if err := ordenRepo.Create(orden); err != nil {
			return err
		}
		return faseRepo.CreateBatch(fases)
	})
	if err != nil {
		return nil, err
	}

	// Aviso al jefe de planta: fuera de la transacción, sin afectar el resultado.
	uc.notificador.OrdenCreada(producto.Nombre, orden.ID)
	return orden, nil
}

// AprobarOrden confirma la reserva de materiales y pasa la orden a APROBADA.
// Solo es legal desde PENDIENTE; FechaValidacion se fija aquí, una única vez.
func (uc *OrdenUseCase) AprobarOrden(ctx context.Context, ordenID string) (*entity.OrdenProduccion, error) {
	var orden *entity.OrdenProduccion
	var bajos []*entity.Material

	err := uc.txRunner.Run(ctx, func(
		ordenRepo repository.OrdenRepository,
		loteRepo repository.LoteRepository,
		faseRepo repository.FaseProduccionRepository,
		matRepo repository.MaterialRepository,
		movRepo repository.MovimientoMaterialRepository,
	) error {
		var err error
		orden, err = ordenRepo.GetForUpdate(ordenID)
		if err != nil {
			return err
		}
		if orden == nil {
			return domain.ErrNotFound
		}
		if orden.Estado != entity.OrdenPENDIENTE {
			return fmt.Errorf("aprobar orden en estado %s: %w", orden.Estado, domain.ErrEstadoInvalido)
		}
		receta, factor, err := uc.recetaEscalada(orden)
		if err != nil {
			return err
		}
		ahora := time.Now()
		materiales, err := uc.ledger.Confirmar(matRepo, movRepo, orden.ID, receta, factor, ahora)
		if err != nil {
			return err
		}
		for _, m := range materiales {
			if m.BajoMinimo() {
				bajos = append(bajos, m)
			}
		}
		orden.Estado = entity.OrdenAPROBADA
		orden.FechaValidacion = &ahora
		return ordenRepo.ActualizarEstado(orden)
	})
	if err != nil {
		return nil, err
	}

	for _, m := range bajos {
		uc.notificador.StockBajo(m.ID, m.Nombre, m.StockDisponible())
	}
	return orden, nil
}

// DevolverOrden cancela o rechaza una orden PENDIENTE liberando su reserva.
// destino solo admite CANCELADA o RECHAZADA; PENDIENTE no es un destino legal.
func (uc *OrdenUseCase) DevolverOrden(ctx context.Context, ordenID, destino string) (*entity.OrdenProduccion, error) {
	if !entity.EsDestinoDevolucion(destino) {
		return nil, domain.ErrInvalidInput
	}

	var orden *entity.OrdenProduccion
	err := uc.txRunner.Run(ctx, func(
		ordenRepo repository.OrdenRepository,
		loteRepo repository.LoteRepository,
		faseRepo repository.FaseProduccionRepository,
		matRepo repository.MaterialRepository,
		movRepo repository.MovimientoMaterialRepository,
	) error {
		var err error
		orden, err = ordenRepo.GetForUpdate(ordenID)
		if err != nil {
			return err
		}
		if orden == nil {
			return domain.ErrNotFound
		}
		if orden.Estado != entity.OrdenPENDIENTE {
			return fmt.Errorf("devolver orden en estado %s: %w", orden.Estado, domain.ErrEstadoInvalido)
		}
		receta, factor, err := uc.recetaEscalada(orden)
		if err != nil {
			return err
		}
		ahora := time.Now()
		if err := uc.ledger.Devolver(matRepo, movRepo, orden.ID, receta, factor, ahora); err != nil {
			return err
		}
		orden.Estado = destino
		orden.FechaValidacion = &ahora
		if err := ordenRepo.ActualizarEstado(orden); err != nil {
			return err
		}

		lote, err := loteRepo.GetByID(orden.LoteID)
		if err != nil {
			return err
		}
		if lote != nil {
			lote.Estado = entity.LoteCANCELADO
			return loteRepo.Actualizar(lote)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return orden, nil
}

// GetOrden lectura simple para la capa HTTP.
func (uc *OrdenUseCase) GetOrden(_ context.Context, ordenID string) (*entity.OrdenProduccion, error) {
	orden, err := uc.ordenRepo.GetByID(ordenID)
	if err != nil {
		return nil, err
	}
	if orden == nil {
		return nil, domain.ErrNotFound
	}
	return orden, nil
}

// ListOrdenes lista órdenes, opcionalmente filtradas por estado.
func (uc *OrdenUseCase) ListOrdenes(_ context.Context, estado string, limit, offset int) ([]*entity.OrdenProduccion, error) {
	return uc.ordenRepo.List(estado, limit, offset)
}

// recetaEscalada recupera la receta del producto de la orden y su factor de
// escala (cantidad de la orden / cantidad estándar del producto).
func (uc *OrdenUseCase) recetaEscalada(orden *entity.OrdenProduccion) ([]*entity.LineaReceta, decimal.Decimal, error) {
	producto, err := uc.productoRepo.GetByID(orden.ProductoID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	if producto == nil {
		return nil, decimal.Zero, domain.ErrNotFound
	}
	receta, err := uc.productoRepo.ListReceta(orden.ProductoID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	return receta, orden.Cantidad.Div(producto.CantidadEstandar), nil
}

// instanciarFases materializa una FaseProduccion PENDIENTE por plantilla,
// con la entrada estándar escalada a la cantidad de la orden.
func instanciarFases(loteID string, plantillas []*entity.FaseProducto, cantidad decimal.Decimal) []*entity.FaseProduccion {
	fases := make([]*entity.FaseProduccion, 0, len(plantillas))
	for _, p := range plantillas {
		fases = append(fases, &entity.FaseProduccion{
			ID:              uuid.New().String(),
			LoteID:          loteID,
			Tipo:            p.Tipo,
			Orden:           p.Orden,
			Estado:          entity.FaseProduccionPENDIENTE,
			EntradaEstandar: cantidad,
			SalidaEstandar:  cantidad,
			UnidadSalida:    p.UnidadSalida,
		})
	}
	return fases
}

// generarCodigoLote arma un código legible: prefijo del producto + fecha + sufijo corto.
func generarCodigoLote(nombreProducto string, ahora time.Time) string {
	prefijo := strings.ToUpper(strings.ReplaceAll(nombreProducto, " ", ""))
	if len(prefijo) > 3 {
		prefijo = prefijo[:3]
	}
	sufijo := strings.ToUpper(uuid.New().String()[:4])
	return fmt.Sprintf("%s-%s-%s", prefijo, ahora.Format("20060102"), sufijo)
}
