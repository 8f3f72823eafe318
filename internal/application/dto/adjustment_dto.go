package dto

import "time"

// ApplyAdjustmentRequest body para POST /api/inventory/adjustments.
// ExpectedVersion es opcional: si el panel lo envía y la fila cambió desde que
// se cargó, el ajuste se rechaza con STOCK_CONFLICT en vez de pisar el cambio.
type ApplyAdjustmentRequest struct {
	WarehouseID     string `json:"warehouse_id"`
	ProductID       string `json:"product_id"`
	Type            string `json:"type"` // add | remove | set
	Quantity        int64  `json:"quantity"`
	Reason          string `json:"reason"`
	Notes           string `json:"notes,omitempty"`
	Actor           string `json:"actor,omitempty"` // si falta, se usa el user del token
	ExpectedVersion *int64 `json:"expected_version,omitempty"`
}

// ApplyAdjustmentResponse resultado de un ajuste aplicado.
type ApplyAdjustmentResponse struct {
	AdjustmentID     string   `json:"adjustment_id"`
	PreviousQuantity int64    `json:"previous_quantity"`
	NewQuantity      int64    `json:"new_quantity"`
	Version          int64    `json:"version"`
	Warnings         []string `json:"warnings,omitempty"`
}

// AdjustmentResponse una entrada del historial.
type AdjustmentResponse struct {
	ID               string    `json:"id"`
	WarehouseID      string    `json:"warehouse_id"`
	ProductID        string    `json:"product_id"`
	Type             string    `json:"type"`
	Quantity         int64     `json:"quantity"`
	PreviousQuantity int64     `json:"previous_quantity"`
	NewQuantity      int64     `json:"new_quantity"`
	Reason           string    `json:"reason"`
	Notes            string    `json:"notes,omitempty"`
	Actor            string    `json:"actor,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// HistoryResponse historial filtrado, del más reciente al más antiguo.
type HistoryResponse struct {
	Items []AdjustmentResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// VerifyLedgerResponse resultado del chequeo de consistencia por replay.
type VerifyLedgerResponse struct {
	WarehouseID      string `json:"warehouse_id"`
	ProductID        string `json:"product_id"`
	Consistent       bool   `json:"consistent"`
	ReplayedQuantity int64  `json:"replayed_quantity"`
	CurrentQuantity  int64  `json:"current_quantity"`
	Adjustments      int    `json:"adjustments"`
}
