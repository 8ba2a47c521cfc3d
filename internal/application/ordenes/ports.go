package ordenes

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cerveceria-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando los
// repositorios atados a esa tx. Garantiza que crear/aprobar/devolver una orden
// sea todo-o-nada: reserva, orden, lote y fases se persisten juntos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		ordenRepo repository.OrdenRepository,
		loteRepo repository.LoteRepository,
		faseRepo repository.FaseProduccionRepository,
		matRepo repository.MaterialRepository,
		movRepo repository.MovimientoMaterialRepository,
	) error) error
}

// Notificador emite avisos fire-and-forget hacia colaboradores externos.
// No forma parte del contrato transaccional: se invoca después del Commit.
type Notificador interface {
	OrdenCreada(producto, ordenID string)
	StockBajo(materialID, nombre string, disponible decimal.Decimal)
}
