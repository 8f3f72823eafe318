package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/muebleria-stock/internal/domain/entity"
	"github.com/jhoicas/muebleria-stock/internal/domain/repository"
)

var _ repository.StockRecordRepository = (*StockRecordRepo)(nil)

// StockRecordRepo implementación de StockRecordRepository sobre PostgreSQL
// (usable con pool o tx).
type StockRecordRepo struct {
	q Querier
}

// NewStockRecordRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockRecordRepository(q Querier) *StockRecordRepo {
	return &StockRecordRepo{q: q}
}

const stockRecordColumns = `warehouse_id, product_id, stock_quantity, reserved_quantity, reorder_level, version, updated_at`

// Get devuelve el registro de un par; estado cero si el par nunca fue ajustado.
func (r *StockRecordRepo) Get(warehouseID, productID string) (*entity.StockRecord, error) {
	query := `
		SELECT ` + stockRecordColumns + `
		FROM stock_records WHERE warehouse_id = $1 AND product_id = $2`
	var s entity.StockRecord
	err := r.q.QueryRow(context.Background(), query, warehouseID, productID).Scan(
		&s.WarehouseID, &s.ProductID, &s.StockQuantity, &s.ReservedQuantity,
		&s.ReorderLevel, &s.Version, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockRecord{WarehouseID: warehouseID, ProductID: productID}, nil
		}
		return nil, fmt.Errorf("get stock record: %w", err)
	}
	return &s, nil
}

// GetForUpdate crea la fila en estado cero si no existe y la bloquea
// (SELECT FOR UPDATE). Hacer el insert y el lock en la misma operación evita
// que el primer ajuste de un par nuevo corra contra otro creador de la fila.
func (r *StockRecordRepo) GetForUpdate(warehouseID, productID string) (*entity.StockRecord, error) {
	insert := `
		INSERT INTO stock_records (warehouse_id, product_id, stock_quantity, reserved_quantity, reorder_level, version, updated_at)
		VALUES ($1, $2, 0, 0, 0, 0, now())
		ON CONFLICT (warehouse_id, product_id) DO NOTHING`
	if _, err := r.q.Exec(context.Background(), insert, warehouseID, productID); err != nil {
		return nil, fmt.Errorf("init stock record: %w", err)
	}

	query := `
		SELECT ` + stockRecordColumns + `
		FROM stock_records WHERE warehouse_id = $1 AND product_id = $2
		FOR UPDATE`
	var s entity.StockRecord
	err := r.q.QueryRow(context.Background(), query, warehouseID, productID).Scan(
		&s.WarehouseID, &s.ProductID, &s.StockQuantity, &s.ReservedQuantity,
		&s.ReorderLevel, &s.Version, &s.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get stock record for update: %w", err)
	}
	return &s, nil
}

// Save escribe cantidad y fecha e incrementa version. Actualiza record.Version
// con el valor nuevo.
func (r *StockRecordRepo) Save(record *entity.StockRecord) error {
	query := `
		UPDATE stock_records
		SET stock_quantity = $3, updated_at = $4, version = version + 1
		WHERE warehouse_id = $1 AND product_id = $2
		RETURNING version`
	err := r.q.QueryRow(context.Background(), query,
		record.WarehouseID, record.ProductID, record.StockQuantity, record.UpdatedAt,
	).Scan(&record.Version)
	if err != nil {
		return fmt.Errorf("save stock record: %w", err)
	}
	return nil
}

// ListByProduct lista los registros de un producto en todas las bodegas.
func (r *StockRecordRepo) ListByProduct(productID string) ([]*entity.StockRecord, error) {
	query := `
		SELECT ` + stockRecordColumns + `
		FROM stock_records WHERE product_id = $1
		ORDER BY warehouse_id`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list stock by product: %w", err)
	}
	defer rows.Close()
	return scanStockRecords(rows)
}

// ListByWarehouse lista los registros de una bodega con paginación.
func (r *StockRecordRepo) ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.StockRecord, error) {
	query := `
		SELECT ` + stockRecordColumns + `
		FROM stock_records WHERE warehouse_id = $1
		ORDER BY updated_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, warehouseID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock by warehouse: %w", err)
	}
	defer rows.Close()
	return scanStockRecords(rows)
}

// SetReorderLevel fija el umbral de reorden; crea la fila en cero si no existe.
// No toca cantidades ni version.
func (r *StockRecordRepo) SetReorderLevel(warehouseID, productID string, level int64) error {
	query := `
		INSERT INTO stock_records (warehouse_id, product_id, stock_quantity, reserved_quantity, reorder_level, version, updated_at)
		VALUES ($1, $2, 0, 0, $3, 0, now())
		ON CONFLICT (warehouse_id, product_id)
		DO UPDATE SET reorder_level = EXCLUDED.reorder_level`
	if _, err := r.q.Exec(context.Background(), query, warehouseID, productID, level); err != nil {
		return fmt.Errorf("set reorder level: %w", err)
	}
	return nil
}

// SetReserved fija la cantidad reservada; la escribe el colaborador de
// fulfillment, nunca el motor de ajustes.
func (r *StockRecordRepo) SetReserved(warehouseID, productID string, reserved int64) error {
	query := `
		INSERT INTO stock_records (warehouse_id, product_id, stock_quantity, reserved_quantity, reorder_level, version, updated_at)
		VALUES ($1, $2, 0, $3, 0, 0, now())
		ON CONFLICT (warehouse_id, product_id)
		DO UPDATE SET reserved_quantity = EXCLUDED.reserved_quantity, updated_at = now()`
	if _, err := r.q.Exec(context.Background(), query, warehouseID, productID, reserved); err != nil {
		return fmt.Errorf("set reserved: %w", err)
	}
	return nil
}

// ListBelowReorderLevel devuelve los registros con stock bajo su umbral,
// ordenados por déficit descendente (mayor quiebre primero).
func (r *StockRecordRepo) ListBelowReorderLevel(warehouseID string) ([]repository.LowStockItem, error) {
	query := `
		SELECT warehouse_id, product_id, stock_quantity, reorder_level,
		       (reorder_level - stock_quantity) AS deficit
		FROM stock_records
		WHERE reorder_level > 0 AND stock_quantity < reorder_level`
	args := []any{}
	if warehouseID != "" {
		query += ` AND warehouse_id = $1`
		args = append(args, warehouseID)
	}
	query += ` ORDER BY (reorder_level - stock_quantity) DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list below reorder level: %w", err)
	}
	defer rows.Close()

	var items []repository.LowStockItem
	for rows.Next() {
		var it repository.LowStockItem
		if err := rows.Scan(&it.WarehouseID, &it.ProductID, &it.StockQuantity, &it.ReorderLevel, &it.Deficit); err != nil {
			return nil, fmt.Errorf("scan low stock item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func scanStockRecords(rows pgx.Rows) ([]*entity.StockRecord, error) {
	var list []*entity.StockRecord
	for rows.Next() {
		var s entity.StockRecord
		if err := rows.Scan(&s.WarehouseID, &s.ProductID, &s.StockQuantity, &s.ReservedQuantity,
			&s.ReorderLevel, &s.Version, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock record: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
