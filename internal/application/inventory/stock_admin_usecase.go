package inventory

import (
	"fmt"
	"strings"

	"github.com/jhoicas/muebleria-stock/internal/application/dto"
	"github.com/jhoicas/muebleria-stock/internal/domain"
	"github.com/jhoicas/muebleria-stock/internal/domain/repository"
)

// StockAdminUseCase operaciones administrativas sobre StockRecords que no son
// ajustes de cantidad: umbral de reorden y reporte de bajo stock.
type StockAdminUseCase struct {
	stockRepo repository.StockRecordRepository
}

// NewStockAdminUseCase construye el caso de uso.
func NewStockAdminUseCase(stockRepo repository.StockRecordRepository) *StockAdminUseCase {
	return &StockAdminUseCase{stockRepo: stockRepo}
}

// SetReorderLevel fija el umbral de reorden de un par (bodega, producto).
// No es un cambio de cantidad, así que no genera fila de historial.
func (uc *StockAdminUseCase) SetReorderLevel(in dto.SetReorderLevelRequest) error {
	if strings.TrimSpace(in.WarehouseID) == "" {
		return &domain.ValidationError{Field: "warehouse_id", Message: "es requerido"}
	}
	if strings.TrimSpace(in.ProductID) == "" {
		return &domain.ValidationError{Field: "product_id", Message: "es requerido"}
	}
	if in.ReorderLevel < 0 {
		return &domain.ValidationError{Field: "reorder_level", Message: "no puede ser negativo"}
	}
	if err := uc.stockRepo.SetReorderLevel(in.WarehouseID, in.ProductID, in.ReorderLevel); err != nil {
		return fmt.Errorf("fijar umbral de reorden: %w", err)
	}
	return nil
}

// LowStock devuelve los registros bajo su umbral, mayor déficit primero.
// warehouseID vacío considera todas las bodegas.
func (uc *StockAdminUseCase) LowStock(warehouseID string) (*dto.LowStockResponse, error) {
	items, err := uc.stockRepo.ListBelowReorderLevel(warehouseID)
	if err != nil {
		return nil, fmt.Errorf("listar bajo stock: %w", err)
	}
	out := make([]dto.LowStockItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.LowStockItemResponse{
			WarehouseID:   it.WarehouseID,
			ProductID:     it.ProductID,
			StockQuantity: it.StockQuantity,
			ReorderLevel:  it.ReorderLevel,
			Deficit:       it.Deficit,
		})
	}
	return &dto.LowStockResponse{Total: len(out), Items: out}, nil
}
