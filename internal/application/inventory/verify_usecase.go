package inventory

import (
	"fmt"
	"strings"

	"github.com/jhoicas/muebleria-stock/internal/application/dto"
	"github.com/jhoicas/muebleria-stock/internal/domain"
	"github.com/jhoicas/muebleria-stock/internal/domain/repository"
)

// VerifyLedgerUseCase comprueba la ley de replay: para cualquier par (bodega,
// producto), plegar los deltas del historial en orden de creación sobre un
// estado cero debe reproducir exactamente la cantidad actual del StockRecord.
// Es un chequeo operativo de consistencia, no repara nada.
type VerifyLedgerUseCase struct {
	stockRepo repository.StockRecordRepository
	adjRepo   repository.AdjustmentRepository
}

// NewVerifyLedgerUseCase construye el caso de uso.
func NewVerifyLedgerUseCase(stockRepo repository.StockRecordRepository, adjRepo repository.AdjustmentRepository) *VerifyLedgerUseCase {
	return &VerifyLedgerUseCase{stockRepo: stockRepo, adjRepo: adjRepo}
}

// Verify repliega el historial y lo compara con el estado actual.
func (uc *VerifyLedgerUseCase) Verify(warehouseID, productID string) (*dto.VerifyLedgerResponse, error) {
	if strings.TrimSpace(warehouseID) == "" {
		return nil, &domain.ValidationError{Field: "warehouse_id", Message: "es requerido"}
	}
	if strings.TrimSpace(productID) == "" {
		return nil, &domain.ValidationError{Field: "product_id", Message: "es requerido"}
	}

	adjustments, err := uc.adjRepo.ListAscending(warehouseID, productID)
	if err != nil {
		return nil, fmt.Errorf("listar historial: %w", err)
	}
	record, err := uc.stockRepo.Get(warehouseID, productID)
	if err != nil {
		return nil, fmt.Errorf("consultar stock: %w", err)
	}

	var replayed int64
	for _, a := range adjustments {
		replayed += a.Delta()
	}

	return &dto.VerifyLedgerResponse{
		WarehouseID:      warehouseID,
		ProductID:        productID,
		Consistent:       replayed == record.StockQuantity,
		ReplayedQuantity: replayed,
		CurrentQuantity:  record.StockQuantity,
		Adjustments:      len(adjustments),
	}, nil
}
