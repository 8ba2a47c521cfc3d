package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Cerveceria-api/internal/application/fases"
	"github.com/jhoicas/Cerveceria-api/internal/application/ordenes"
	"github.com/jhoicas/Cerveceria-api/internal/domain/repository"
)

// Ensure TxRunner implements ordenes.TxRunner y fases.FasesTxRunner.
var _ ordenes.TxRunner = (*TxRunner)(nil)
var _ fases.FasesTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción con los repositorios del flujo de órdenes
// (reserva/confirmación/devolución de materiales incluida) y hace Commit o
// Rollback según el resultado de fn.
func (r *TxRunner) Run(ctx context.Context, fn func(
	ordenRepo repository.OrdenRepository,
	loteRepo repository.LoteRepository,
	faseRepo repository.FaseProduccionRepository,
	matRepo repository.MaterialRepository,
	movRepo repository.MovimientoMaterialRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewOrdenRepository(tx),
		NewLoteRepository(tx),
		NewFaseProduccionRepository(tx),
		NewMaterialRepository(tx),
		NewMovimientoMaterialRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunFases inicia una transacción con los repositorios del flujo de revisión
// de fases y hace Commit o Rollback según el resultado de fn.
func (r *TxRunner) RunFases(ctx context.Context, fn func(
	faseRepo repository.FaseProduccionRepository,
	loteRepo repository.LoteRepository,
	calidadRepo repository.CalidadFaseRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewFaseProduccionRepository(tx),
		NewLoteRepository(tx),
		NewCalidadFaseRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
