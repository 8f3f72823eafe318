package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/muebleria-stock/internal/application/dto"
	"github.com/jhoicas/muebleria-stock/internal/application/inventory"
)

// StockHandler maneja las lecturas de stock (agregados, bajo stock, replay)
// y la administración del umbral de reorden.
type StockHandler struct {
	aggregate *inventory.AggregateUseCase
	admin     *inventory.StockAdminUseCase
	verify    *inventory.VerifyLedgerUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(aggregate *inventory.AggregateUseCase, admin *inventory.StockAdminUseCase, verify *inventory.VerifyLedgerUseCase) *StockHandler {
	return &StockHandler{aggregate: aggregate, admin: admin, verify: verify}
}

// ProductAggregate godoc
// @Summary      Stock de un producto sumado sobre todas sus bodegas
// @Description  total_available se entrega sin clamp: un valor negativo delata
//	un bug del flujo de reservas y debe ser visible.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductAggregateResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/products/{id}/aggregate [get]
func (h *StockHandler) ProductAggregate(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.aggregate.GetProductAggregate(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Registros bajo su umbral de reorden
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  false  "Filtrar por bodega. Vacío = todas."
// @Success      200  {object}  dto.LowStockResponse
// @Router       /api/inventory/low-stock [get]
func (h *StockHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.admin.LowStock(c.Query("warehouse_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetReorderLevel godoc
// @Summary      Fijar umbral de reorden de un par (bodega, producto)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetReorderLevelRequest  true  "warehouse_id, product_id, reorder_level"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/stock/reorder-level [put]
func (h *StockHandler) SetReorderLevel(c *fiber.Ctx) error {
	var in dto.SetReorderLevelRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.admin.SetReorderLevel(in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// VerifyLedger godoc
// @Summary      Verificar la consistencia del libro por replay
// @Description  Pliega el historial de ajustes desde cero y lo compara con la
//	cantidad actual del registro.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  true  "ID de la bodega"
// @Param        product_id    query  string  true  "ID del producto"
// @Success      200  {object}  dto.VerifyLedgerResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/verify [get]
func (h *StockHandler) VerifyLedger(c *fiber.Ctx) error {
	out, err := h.verify.Verify(c.Query("warehouse_id"), c.Query("product_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
