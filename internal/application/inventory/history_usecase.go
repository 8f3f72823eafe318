package inventory

import (
	"fmt"

	"github.com/jhoicas/muebleria-stock/internal/application/dto"
	"github.com/jhoicas/muebleria-stock/internal/domain/entity"
	"github.com/jhoicas/muebleria-stock/internal/domain/repository"
)

// HistoryUseCase consulta el historial de ajustes (solo lectura).
type HistoryUseCase struct {
	adjRepo repository.AdjustmentRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(adjRepo repository.AdjustmentRepository) *HistoryUseCase {
	return &HistoryUseCase{adjRepo: adjRepo}
}

// List devuelve ajustes filtrados, del más reciente al más antiguo.
func (uc *HistoryUseCase) List(filter repository.AdjustmentFilter) (*dto.HistoryResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	list, err := uc.adjRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("listar historial: %w", err)
	}
	items := make([]dto.AdjustmentResponse, 0, len(list))
	for _, a := range list {
		items = append(items, toAdjustmentResponse(a))
	}
	return &dto.HistoryResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}, nil
}

// ListRecords devuelve las entidades crudas con los mismos filtros; lo usa el
// reporte PDF para no pasar DTOs HTTP al generador.
func (uc *HistoryUseCase) ListRecords(filter repository.AdjustmentFilter) ([]*entity.AdjustmentRecord, error) {
	if filter.Limit <= 0 {
		filter.Limit = 200
	}
	list, err := uc.adjRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("listar historial: %w", err)
	}
	return list, nil
}

func toAdjustmentResponse(a *entity.AdjustmentRecord) dto.AdjustmentResponse {
	return dto.AdjustmentResponse{
		ID:               a.ID,
		WarehouseID:      a.WarehouseID,
		ProductID:        a.ProductID,
		Type:             a.Type,
		Quantity:         a.Quantity,
		PreviousQuantity: a.PreviousQuantity,
		NewQuantity:      a.NewQuantity,
		Reason:           a.Reason,
		Notes:            a.Notes,
		Actor:            a.Actor,
		CreatedAt:        a.CreatedAt,
	}
}
