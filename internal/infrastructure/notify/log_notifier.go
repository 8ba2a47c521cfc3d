package notify

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cerveceria-api/internal/application/fases"
	"github.com/jhoicas/Cerveceria-api/internal/application/ordenes"
	"github.com/jhoicas/Cerveceria-api/pkg/logger"
)

var _ ordenes.Notificador = (*LogNotifier)(nil)
var _ fases.Notificador = (*LogNotifier)(nil)

// LogNotifier emite los avisos del motor como eventos estructurados de log.
// Es el colaborador por defecto cuando la planta no tiene integrado un canal
// de mensajería; un consumidor externo puede suscribirse a estos eventos.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier construye el notificador sobre el logger de la aplicación.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// OrdenCreada avisa que una orden quedó registrada en estado PENDIENTE.
func (n *LogNotifier) OrdenCreada(producto, ordenID string) {
	n.log.Info().
		Str("evento", "orden_creada").
		Str("producto", producto).
		Str("orden_id", ordenID).
		Msg("orden de producción creada")
}

// StockBajo avisa que un material quedó por debajo de su stock mínimo.
func (n *LogNotifier) StockBajo(materialID, nombre string, disponible decimal.Decimal) {
	n.log.Warn().
		Str("evento", "stock_bajo").
		Str("material_id", materialID).
		Str("material", nombre).
		Str("disponible", disponible.String()).
		Msg("material por debajo del stock mínimo")
}

// FaseRechazada avisa al sector asignado que su fase no pasó la revisión de calidad.
func (n *LogNotifier) FaseRechazada(faseID, sectorID string) {
	n.log.Warn().
		Str("evento", "fase_rechazada").
		Str("fase_id", faseID).
		Str("sector_id", sectorID).
		Msg("fase rechazada por calidad")
}
