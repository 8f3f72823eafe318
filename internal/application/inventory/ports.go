package inventory

import (
	"context"

	"github.com/jhoicas/muebleria-stock/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es la unidad atómica del motor de ajustes:
// la mutación del StockRecord y su fila de historial se confirman juntas o
// ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRecordRepository,
		adjRepo repository.AdjustmentRepository,
	) error) error
}
