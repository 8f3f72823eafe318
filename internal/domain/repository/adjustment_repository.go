package repository

import (
	"time"

	"github.com/jhoicas/muebleria-stock/internal/domain/entity"
)

// AdjustmentFilter filtros para listar el historial de ajustes.
// Campos vacíos/nil no filtran.
type AdjustmentFilter struct {
	WarehouseID string
	ProductID   string
	From        *time.Time
	To          *time.Time
	Limit       int
	Offset      int
}

// AdjustmentRepository define el puerto de persistencia del historial de
// ajustes. Append-only: no existen Update ni Delete; la única forma en que los
// datos cambian de forma es agregando filas nuevas.
type AdjustmentRepository interface {
	Create(record *entity.AdjustmentRecord) error
	GetByID(id string) (*entity.AdjustmentRecord, error)
	// List devuelve ajustes del más reciente al más antiguo (created_at, seq).
	List(filter AdjustmentFilter) ([]*entity.AdjustmentRecord, error)
	// ListAscending devuelve todos los ajustes de un par en orden de creación,
	// para reproducir el estado actual desde cero (ley de replay).
	ListAscending(warehouseID, productID string) ([]*entity.AdjustmentRecord, error)
}
