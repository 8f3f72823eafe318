package dto

import "time"

// StockRecordResponse un registro de stock por bodega.
type StockRecordResponse struct {
	WarehouseID      string    `json:"warehouse_id"`
	WarehouseName    string    `json:"warehouse_name,omitempty"`
	State            string    `json:"state,omitempty"`
	ProductID        string    `json:"product_id"`
	StockQuantity    int64     `json:"stock_quantity"`
	ReservedQuantity int64     `json:"reserved_quantity"`
	Available        int64     `json:"available"`
	ReorderLevel     int64     `json:"reorder_level"`
	LowStock         bool      `json:"low_stock"`
	Version          int64     `json:"version"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ProductAggregateResponse stock de un producto sumado sobre todas sus bodegas.
// TotalAvailable se entrega sin clamp: un valor negativo es señal de un bug de
// reservas aguas arriba y debe llegarle al caller.
type ProductAggregateResponse struct {
	ProductID      string                `json:"product_id"`
	Records        []StockRecordResponse `json:"records"`
	TotalStock     int64                 `json:"total_stock"`
	TotalReserved  int64                 `json:"total_reserved"`
	TotalAvailable int64                 `json:"total_available"`
	Warnings       []string              `json:"warnings,omitempty"`
}

// SetReorderLevelRequest body para PUT /api/inventory/stock/reorder-level.
type SetReorderLevelRequest struct {
	WarehouseID  string `json:"warehouse_id"`
	ProductID    string `json:"product_id"`
	ReorderLevel int64  `json:"reorder_level"`
}

// LowStockItemResponse un registro bajo su umbral de reorden.
type LowStockItemResponse struct {
	WarehouseID   string `json:"warehouse_id"`
	ProductID     string `json:"product_id"`
	StockQuantity int64  `json:"stock_quantity"`
	ReorderLevel  int64  `json:"reorder_level"`
	Deficit       int64  `json:"deficit"`
}

// LowStockResponse reporte de bajo stock ordenado por déficit.
type LowStockResponse struct {
	Total int                    `json:"total"`
	Items []LowStockItemResponse `json:"items"`
}
