package repository

import "github.com/jhoicas/muebleria-stock/internal/domain/entity"

// LowStockItem resultado crudo del repositorio para un registro bajo reorden.
type LowStockItem struct {
	WarehouseID   string
	ProductID     string
	StockQuantity int64
	ReorderLevel  int64
	Deficit       int64
}

// StockRecordRepository define el puerto para consultar/actualizar stock por
// bodega+producto. Las escrituras de cantidad pasan siempre por el motor de
// ajustes dentro de una transacción.
type StockRecordRepository interface {
	// Get devuelve el registro, o el estado cero si el par nunca fue ajustado.
	Get(warehouseID, productID string) (*entity.StockRecord, error)
	// GetForUpdate crea la fila en estado cero si no existe y la bloquea
	// (SELECT FOR UPDATE) en la misma operación, de modo que el primer ajuste
	// de un par nuevo no necesite un chequeo de existencia aparte.
	GetForUpdate(warehouseID, productID string) (*entity.StockRecord, error)
	// Save escribe cantidad y fecha e incrementa Version.
	Save(record *entity.StockRecord) error

	ListByProduct(productID string) ([]*entity.StockRecord, error)
	ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.StockRecord, error)

	// SetReorderLevel fija el umbral de reorden sin tocar cantidades ni Version.
	SetReorderLevel(warehouseID, productID string, level int64) error
	// SetReserved es el puerto de escritura del colaborador de reservas
	// (fulfillment, externo a este subsistema). El motor de ajustes no lo usa.
	SetReserved(warehouseID, productID string, reserved int64) error

	// ListBelowReorderLevel devuelve los registros con stock bajo su umbral,
	// ordenados por mayor déficit primero. warehouseID vacío = todas las bodegas.
	ListBelowReorderLevel(warehouseID string) ([]LowStockItem, error)
}
