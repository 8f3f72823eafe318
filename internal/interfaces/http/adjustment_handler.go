package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/muebleria-stock/internal/application/dto"
	"github.com/jhoicas/muebleria-stock/internal/application/inventory"
	"github.com/jhoicas/muebleria-stock/internal/domain/entity"
	"github.com/jhoicas/muebleria-stock/internal/domain/repository"
)

// HistoryReportGenerator puerto del exportador PDF del historial.
type HistoryReportGenerator interface {
	Generate(ctx context.Context, filter repository.AdjustmentFilter, adjustments []*entity.AdjustmentRecord) ([]byte, error)
}

// AdjustmentHandler maneja las peticiones HTTP del motor de ajustes y su
// historial (protegido).
type AdjustmentHandler struct {
	apply   *inventory.ApplyAdjustmentUseCase
	history *inventory.HistoryUseCase
	report  HistoryReportGenerator
}

// NewAdjustmentHandler construye el handler.
func NewAdjustmentHandler(apply *inventory.ApplyAdjustmentUseCase, history *inventory.HistoryUseCase, report HistoryReportGenerator) *AdjustmentHandler {
	return &AdjustmentHandler{apply: apply, history: history, report: report}
}

// Apply godoc
// @Summary      Aplicar ajuste de stock
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ApplyAdjustmentRequest  true  "warehouse_id, product_id, type (add|remove|set), quantity, reason, notes, expected_version"
// @Success      201   {object}  dto.ApplyAdjustmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/adjustments [post]
func (h *AdjustmentHandler) Apply(c *fiber.Ctx) error {
	var in dto.ApplyAdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	actor := in.Actor
	if actor == "" {
		actor = GetUserID(c)
	}
	result, err := h.apply.Apply(c.Context(), inventory.AdjustmentInput{
		WarehouseID:     in.WarehouseID,
		ProductID:       in.ProductID,
		Type:            in.Type,
		Quantity:        in.Quantity,
		Reason:          in.Reason,
		Notes:           in.Notes,
		Actor:           actor,
		ExpectedVersion: in.ExpectedVersion,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ApplyAdjustmentResponse{
		AdjustmentID:     result.AdjustmentID,
		PreviousQuantity: result.PreviousQuantity,
		NewQuantity:      result.NewQuantity,
		Version:          result.Version,
		Warnings:         result.Warnings,
	})
}

// History godoc
// @Summary      Historial de ajustes
// @Description  Devuelve ajustes del más reciente al más antiguo, filtrables
//	por bodega, producto y rango de fechas.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  false  "Filtrar por bodega"
// @Param        product_id    query  string  false  "Filtrar por producto"
// @Param        from          query  string  false  "Fecha inicial (RFC3339)"
// @Param        to            query  string  false  "Fecha final (RFC3339)"
// @Param        limit         query  int     false  "Límite"  default(20)
// @Param        offset        query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.HistoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/history [get]
func (h *AdjustmentHandler) History(c *fiber.Ctx) error {
	filter, err := historyFilterFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.history.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// HistoryReport godoc
// @Summary      Exportar historial de ajustes en PDF
// @Tags         inventory
// @Security     Bearer
// @Produce      application/pdf
// @Param        warehouse_id  query  string  false  "Filtrar por bodega"
// @Param        product_id    query  string  false  "Filtrar por producto"
// @Param        from          query  string  false  "Fecha inicial (RFC3339)"
// @Param        to            query  string  false  "Fecha final (RFC3339)"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/history/report [get]
func (h *AdjustmentHandler) HistoryReport(c *fiber.Ctx) error {
	filter, err := historyFilterFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	records, err := h.history.ListRecords(filter)
	if err != nil {
		return respondError(c, err)
	}
	pdfBytes, err := h.report.Generate(c.Context(), filter, records)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="historial-ajustes.pdf"`)
	return c.Send(pdfBytes)
}

func historyFilterFromQuery(c *fiber.Ctx) (repository.AdjustmentFilter, error) {
	filter := repository.AdjustmentFilter{
		WarehouseID: c.Query("warehouse_id"),
		ProductID:   c.Query("product_id"),
		Limit:       c.QueryInt("limit", 20),
		Offset:      c.QueryInt("offset", 0),
	}
	if s := c.Query("from"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return filter, fiber.NewError(fiber.StatusBadRequest, "from: fecha inválida, usar RFC3339")
		}
		filter.From = &t
	}
	if s := c.Query("to"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return filter, fiber.NewError(fiber.StatusBadRequest, "to: fecha inválida, usar RFC3339")
		}
		filter.To = &t
	}
	return filter, nil
}
