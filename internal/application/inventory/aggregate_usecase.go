package inventory

import (
	"fmt"
	"strings"

	"github.com/jhoicas/muebleria-stock/internal/application/dto"
	"github.com/jhoicas/muebleria-stock/internal/domain"
	"github.com/jhoicas/muebleria-stock/internal/domain/entity"
	"github.com/jhoicas/muebleria-stock/internal/domain/repository"
)

// AggregateUseCase es la vista de solo lectura que suma los StockRecords de un
// producto sobre todas sus bodegas. Nunca escribe.
type AggregateUseCase struct {
	stockRepo     repository.StockRecordRepository
	warehouseRepo repository.WarehouseRepository
}

// NewAggregateUseCase construye el caso de uso.
func NewAggregateUseCase(stockRepo repository.StockRecordRepository, warehouseRepo repository.WarehouseRepository) *AggregateUseCase {
	return &AggregateUseCase{stockRepo: stockRepo, warehouseRepo: warehouseRepo}
}

// GetProductAggregate calcula los totales de un producto en el momento de la
// lectura. Un total disponible negativo se entrega tal cual, con advertencia:
// esconderlo con un clamp taparía un bug del flujo de reservas.
func (uc *AggregateUseCase) GetProductAggregate(productID string) (*dto.ProductAggregateResponse, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, &domain.ValidationError{Field: "product_id", Message: "es requerido"}
	}
	records, err := uc.stockRepo.ListByProduct(productID)
	if err != nil {
		return nil, fmt.Errorf("listar stock del producto: %w", err)
	}

	var warnings []string
	stocks := make([]entity.WarehouseStock, 0, len(records))
	for _, rec := range records {
		ws := entity.WarehouseStock{Record: *rec, LowStock: rec.IsLowStock()}
		warehouse, err := uc.warehouseRepo.GetByID(rec.WarehouseID)
		if err != nil {
			return nil, fmt.Errorf("consultar bodega %s: %w", rec.WarehouseID, err)
		}
		if warehouse != nil {
			ws.WarehouseName = warehouse.Name
			ws.State = warehouse.State
			ws.IsAvailable = warehouse.IsAvailable
			if warehouse.Capacity > 0 && rec.StockQuantity > warehouse.Capacity {
				warnings = append(warnings, fmt.Sprintf(
					"bodega %s: stock %d excede la capacidad declarada (%d)",
					warehouse.Name, rec.StockQuantity, warehouse.Capacity))
			}
		}
		if rec.Available() < 0 {
			warnings = append(warnings, fmt.Sprintf(
				"bodega %s: reservado (%d) por encima del stock (%d)",
				rec.WarehouseID, rec.ReservedQuantity, rec.StockQuantity))
		}
		stocks = append(stocks, ws)
	}

	agg := entity.NewProductAggregate(productID, stocks)
	return toAggregateResponse(agg, warnings), nil
}

// IsLowStock compara la cantidad de un par (bodega, producto) con su umbral.
func (uc *AggregateUseCase) IsLowStock(warehouseID, productID string) (bool, error) {
	record, err := uc.stockRepo.Get(warehouseID, productID)
	if err != nil {
		return false, fmt.Errorf("consultar stock: %w", err)
	}
	return record.IsLowStock(), nil
}

func toAggregateResponse(agg *entity.ProductAggregate, warnings []string) *dto.ProductAggregateResponse {
	records := make([]dto.StockRecordResponse, 0, len(agg.Records))
	for _, ws := range agg.Records {
		records = append(records, dto.StockRecordResponse{
			WarehouseID:      ws.Record.WarehouseID,
			WarehouseName:    ws.WarehouseName,
			State:            ws.State,
			ProductID:        ws.Record.ProductID,
			StockQuantity:    ws.Record.StockQuantity,
			ReservedQuantity: ws.Record.ReservedQuantity,
			Available:        ws.Record.Available(),
			ReorderLevel:     ws.Record.ReorderLevel,
			LowStock:         ws.LowStock,
			Version:          ws.Record.Version,
			UpdatedAt:        ws.Record.UpdatedAt,
		})
	}
	return &dto.ProductAggregateResponse{
		ProductID:      agg.ProductID,
		Records:        records,
		TotalStock:     agg.TotalStock,
		TotalReserved:  agg.TotalReserved,
		TotalAvailable: agg.TotalAvailable,
		Warnings:       warnings,
	}
}
