package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/muebleria-stock/internal/domain"
	"github.com/jhoicas/muebleria-stock/internal/domain/entity"
	"github.com/jhoicas/muebleria-stock/internal/domain/repository"
)

// Config política opcional del motor de ajustes.
type Config struct {
	// EnforceReservedCeiling rechaza remove/set que dejen el stock por debajo
	// de lo reservado. Apagado por defecto: la política reservas-vs-stock es
	// del flujo de fulfillment, no de este subsistema.
	EnforceReservedCeiling bool
}

// ApplyAdjustmentUseCase es el motor de ajustes: valida la petición, bloquea
// la fila del par (bodega, producto), calcula la nueva cantidad y escribe el
// StockRecord junto con su fila de historial en una sola transacción.
type ApplyAdjustmentUseCase struct {
	txRunner      TxRunner
	warehouseRepo repository.WarehouseRepository
	cfg           Config
}

// NewApplyAdjustmentUseCase construye el caso de uso.
func NewApplyAdjustmentUseCase(txRunner TxRunner, warehouseRepo repository.WarehouseRepository, cfg Config) *ApplyAdjustmentUseCase {
	return &ApplyAdjustmentUseCase{txRunner: txRunner, warehouseRepo: warehouseRepo, cfg: cfg}
}

// AdjustmentInput entrada para aplicar un ajuste.
// Quantity se interpreta según Type: add/remove exigen un entero positivo;
// set admite cero ("conté y no hay nada").
type AdjustmentInput struct {
	WarehouseID     string
	ProductID       string
	Type            string
	Quantity        int64
	Reason          string
	Notes           string
	Actor           string
	ExpectedVersion *int64
}

// AdjustmentResult estado antes/después de un ajuste aplicado.
type AdjustmentResult struct {
	AdjustmentID     string
	PreviousQuantity int64
	NewQuantity      int64
	Version          int64
	Warnings         []string
}

// Apply valida y aplica un ajuste. En caso de error no se escribe ni el
// StockRecord ni el historial. La fila se bloquea con SELECT FOR UPDATE, así
// que dos ajustes concurrentes sobre el mismo par se serializan y el segundo
// observa como cantidad previa el resultado del primero, nunca una lectura
// obsoleta.
func (uc *ApplyAdjustmentUseCase) Apply(ctx context.Context, input AdjustmentInput) (*AdjustmentResult, error) {
	// Toda la validación ocurre antes de leer estado: "add 0" o una cantidad
	// negativa delatan un bug de UI o de unidades del caller, no un no-op.
	if err := validateInput(input); err != nil {
		return nil, err
	}

	// La bodega se consulta solo para advertir capacidad/disponibilidad;
	// nunca bloquea el ajuste. Una bodega desconocida sí es error: el
	// directorio se administra en este mismo servicio.
	warehouse, err := uc.warehouseRepo.GetByID(input.WarehouseID)
	if err != nil {
		return nil, fmt.Errorf("consultar bodega: %w", err)
	}
	if warehouse == nil {
		return nil, fmt.Errorf("bodega %s: %w", input.WarehouseID, domain.ErrNotFound)
	}

	now := time.Now()
	result := &AdjustmentResult{}

	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRecordRepository,
		adjRepo repository.AdjustmentRepository,
	) error {
		record, err := stockRepo.GetForUpdate(input.WarehouseID, input.ProductID)
		if err != nil {
			return err
		}
		if input.ExpectedVersion != nil && *input.ExpectedVersion != record.Version {
			return &domain.ConflictError{
				WarehouseID:     input.WarehouseID,
				ProductID:       input.ProductID,
				ExpectedVersion: *input.ExpectedVersion,
				CurrentVersion:  record.Version,
			}
		}

		previous := record.StockQuantity
		newQuantity, err := computeNewQuantity(input, previous)
		if err != nil {
			return err
		}
		if uc.cfg.EnforceReservedCeiling && newQuantity < record.ReservedQuantity {
			return fmt.Errorf("%w: la cantidad resultante %d quedaría por debajo de lo reservado (%d)",
				domain.ErrInsufficientStock, newQuantity, record.ReservedQuantity)
		}

		record.StockQuantity = newQuantity
		record.UpdatedAt = now
		if err := stockRepo.Save(record); err != nil {
			return err
		}

		adj := &entity.AdjustmentRecord{
			ID:               uuid.New().String(),
			WarehouseID:      input.WarehouseID,
			ProductID:        input.ProductID,
			Type:             input.Type,
			Quantity:         input.Quantity,
			PreviousQuantity: previous,
			NewQuantity:      newQuantity,
			Reason:           input.Reason,
			Notes:            input.Notes,
			Actor:            input.Actor,
			CreatedAt:        now,
		}
		if err := adjRepo.Create(adj); err != nil {
			return err
		}

		result.AdjustmentID = adj.ID
		result.PreviousQuantity = previous
		result.NewQuantity = newQuantity
		result.Version = record.Version
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Warnings = capacityWarnings(warehouse, result.NewQuantity)
	return result, nil
}

// validateInput rechaza peticiones malformadas antes de cualquier lectura.
func validateInput(input AdjustmentInput) error {
	if strings.TrimSpace(input.WarehouseID) == "" {
		return &domain.ValidationError{Field: "warehouse_id", Message: "es requerido"}
	}
	if strings.TrimSpace(input.ProductID) == "" {
		return &domain.ValidationError{Field: "product_id", Message: "es requerido"}
	}
	switch input.Type {
	case entity.AdjustmentTypeAdd, entity.AdjustmentTypeRemove:
		if input.Quantity <= 0 {
			return &domain.ValidationError{Field: "quantity", Message: "debe ser un entero positivo"}
		}
	case entity.AdjustmentTypeSet:
		// set permite cero: "conté y no hay nada" es un resultado válido.
		if input.Quantity < 0 {
			return &domain.ValidationError{Field: "quantity", Message: "no puede ser negativa"}
		}
	default:
		return &domain.ValidationError{Field: "type", Message: "debe ser add, remove o set"}
	}
	if strings.TrimSpace(input.Reason) == "" {
		return &domain.ValidationError{Field: "reason", Message: "es requerida"}
	}
	if !entity.ValidReason(input.Reason) {
		return &domain.ValidationError{Field: "reason", Message: "categoría desconocida"}
	}
	return nil
}

// computeNewQuantity aplica la semántica del tipo sobre la cantidad previa.
// remove nunca recorta a cero: si el operando excede el stock, rechaza, para
// que ni el caller ni el historial pierdan unidades en silencio.
func computeNewQuantity(input AdjustmentInput, previous int64) (int64, error) {
	switch input.Type {
	case entity.AdjustmentTypeAdd:
		return previous + input.Quantity, nil
	case entity.AdjustmentTypeRemove:
		if input.Quantity > previous {
			return 0, &domain.InsufficientStockError{
				WarehouseID: input.WarehouseID,
				ProductID:   input.ProductID,
				Current:     previous,
				Requested:   input.Quantity,
			}
		}
		return previous - input.Quantity, nil
	case entity.AdjustmentTypeSet:
		return input.Quantity, nil
	}
	return 0, &domain.ValidationError{Field: "type", Message: "debe ser add, remove o set"}
}

// capacityWarnings anota advertencias de la bodega sobre el resultado.
// Son informativas: la capacidad no es una restricción dura de escritura.
func capacityWarnings(warehouse *entity.Warehouse, newQuantity int64) []string {
	var warnings []string
	if warehouse.Capacity > 0 && newQuantity > warehouse.Capacity {
		warnings = append(warnings, fmt.Sprintf(
			"la cantidad %d excede la capacidad declarada de la bodega %s (%d)",
			newQuantity, warehouse.Name, warehouse.Capacity))
	}
	if !warehouse.IsAvailable {
		warnings = append(warnings, fmt.Sprintf("la bodega %s está marcada como no disponible", warehouse.Name))
	}
	return warnings
}
