package almacen

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cerveceria-api/internal/domain"
	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/Cerveceria-api/internal/domain/repository"
)

// Ledger aplica reservas, confirmaciones y devoluciones de materias primas.
// Sus métodos reciben repositorios atados a la transacción del caller: cualquier
// error provoca Rollback y ninguna línea queda aplicada a medias.
type Ledger struct{}

// RequerimientoMaterial cantidad total requerida de un material, ya escalada.
type RequerimientoMaterial struct {
	MaterialID string
	Cantidad   decimal.Decimal
}

// CantidadesRequeridas agrega las líneas de receta por material y las escala:
// requerido = cantidadPorUnidad * factor. Devuelve los requerimientos ordenados
// por MaterialID; el orden estable de bloqueo evita deadlocks entre órdenes.
func CantidadesRequeridas(lineas []*entity.LineaReceta, factor decimal.Decimal) []RequerimientoMaterial {
	porMaterial := make(map[string]decimal.Decimal, len(lineas))
	for _, l := range lineas {
		porMaterial[l.MaterialID] = porMaterial[l.MaterialID].Add(l.CantidadPorUnidad.Mul(factor))
	}
	reqs := make([]RequerimientoMaterial, 0, len(porMaterial))
	for id, cant := range porMaterial {
		reqs = append(reqs, RequerimientoMaterial{MaterialID: id, Cantidad: cant})
	}
	sort.Slice(reqs, func(i, j int) bool { return reqs[i].MaterialID < reqs[j].MaterialID })
	return reqs
}

// Reservar verifica la disponibilidad de todas las líneas y recién entonces
// incrementa StockReservado y registra un movimiento RESERVA por material.
// Si alguna línea no alcanza, retorna StockInsuficienteError identificando el
// material y no muta nada (la tx del caller hace Rollback).
func (Ledger) Reservar(
	matRepo repository.MaterialRepository,
	movRepo repository.MovimientoMaterialRepository,
	ordenID string,
	lineas []*entity.LineaReceta,
	factor decimal.Decimal,
	ahora time.Time,
) error {
	reqs := CantidadesRequeridas(lineas, factor)

	// Primer pase: bloquear cada material y verificar disponibilidad.
	materiales := make([]*entity.Material, 0, len(reqs))
	for _, req := range reqs {
		m, err := matRepo.GetForUpdate(req.MaterialID)
		if err != nil {
			return err
		}
		if m == nil {
			return domain.ErrNotFound
		}
		if m.StockDisponible().LessThan(req.Cantidad) {
			return &domain.StockInsuficienteError{
				MaterialID: m.ID,
				Nombre:     m.Nombre,
				Disponible: m.StockDisponible(),
				Requerido:  req.Cantidad,
			}
		}
		materiales = append(materiales, m)
	}

	// Segundo pase: todas alcanzan; aplicar la reserva y auditar.
	for i, req := range reqs {
		m := materiales[i]
		m.StockReservado = m.StockReservado.Add(req.Cantidad)
		m.UpdatedAt = ahora
		if err := matRepo.ActualizarStock(m); err != nil {
			return err
		}
		if err := registrarMovimiento(movRepo, ordenID, m.ID, entity.MovimientoRESERVA, req.Cantidad, ahora); err != nil {
			return err
		}
	}
	return nil
}

// Confirmar consume la reserva: descuenta la cantidad requerida de StockTotal y
// de StockReservado (el disponible no cambia) y registra CONFIRMADO por material.
// Devuelve los materiales actualizados para que el caller evalúe stock bajo.
func (Ledger) Confirmar(
	matRepo repository.MaterialRepository,
	movRepo repository.MovimientoMaterialRepository,
	ordenID string,
	lineas []*entity.LineaReceta,
	factor decimal.Decimal,
	ahora time.Time,
) ([]*entity.Material, error) {
	reqs := CantidadesRequeridas(lineas, factor)
	materiales := make([]*entity.Material, 0, len(reqs))
	for _, req := range reqs {
		m, err := matRepo.GetForUpdate(req.MaterialID)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, domain.ErrNotFound
		}
		// Solo es válido confirmar contra una reserva vigente suficiente.
		if m.StockReservado.LessThan(req.Cantidad) {
			return nil, domain.ErrConflict
		}
		m.StockTotal = m.StockTotal.Sub(req.Cantidad)
		m.StockReservado = m.StockReservado.Sub(req.Cantidad)
		m.UpdatedAt = ahora
		if err := matRepo.ActualizarStock(m); err != nil {
			return nil, err
		}
		if err := registrarMovimiento(movRepo, ordenID, m.ID, entity.MovimientoCONFIRMADO, req.Cantidad, ahora); err != nil {
			return nil, err
		}
		materiales = append(materiales, m)
	}
	return materiales, nil
}

// Devolver libera la reserva: descuenta StockReservado dejando StockTotal
// intacto (el stock vuelve a estar disponible) y registra DEVUELTO por material.
func (Ledger) Devolver(
	matRepo repository.MaterialRepository,
	movRepo repository.MovimientoMaterialRepository,
	ordenID string,
	lineas []*entity.LineaReceta,
	factor decimal.Decimal,
	ahora time.Time,
) error {
	reqs := CantidadesRequeridas(lineas, factor)
	for _, req := range reqs {
		m, err := matRepo.GetForUpdate(req.MaterialID)
		if err != nil {
			return err
		}
		if m == nil {
			return domain.ErrNotFound
		}
		if m.StockReservado.LessThan(req.Cantidad) {
			return domain.ErrConflict
		}
		m.StockReservado = m.StockReservado.Sub(req.Cantidad)
		m.UpdatedAt = ahora
		if err := matRepo.ActualizarStock(m); err != nil {
			return err
		}
		if err := registrarMovimiento(movRepo, ordenID, m.ID, entity.MovimientoDEVUELTO, req.Cantidad, ahora); err != nil {
			return err
		}
	}
	return nil
}

func registrarMovimiento(
	movRepo repository.MovimientoMaterialRepository,
	ordenID, materialID, tipo string,
	cantidad decimal.Decimal,
	ahora time.Time,
) error {
	return movRepo.Create(&entity.MovimientoMaterial{
		ID:         uuid.New().String(),
		OrdenID:    ordenID,
		MaterialID: materialID,
		Tipo:       tipo,
		Cantidad:   cantidad,
		Fecha:      ahora,
	})
}
