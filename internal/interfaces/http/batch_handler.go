package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HectorCardoso53/medcontrol/internal/application/dto"
	"github.com/HectorCardoso53/medcontrol/internal/application/stock"
)

// BatchHandler trata as requisições HTTP de lotes (recebimento e exclusão).
type BatchHandler struct {
	batchUC *stock.BatchUseCase
	stockUC *stock.UseCase
}

// NewBatchHandler constrói o handler.
func NewBatchHandler(batchUC *stock.BatchUseCase, stockUC *stock.UseCase) *BatchHandler {
	return &BatchHandler{batchUC: batchUC, stockUC: stockUC}
}

// Create godoc
// @Summary      Registrar recebimento de lote
// @Tags         batches
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterBatchRequest  true  "code, medication, batch_code, received_date, expiry_date, quantity"
// @Success      201   {object}  dto.BatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/batches [post]
func (h *BatchHandler) Create(c *fiber.Ctx) error {
	var in dto.RegisterBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	resp, err := h.batchUC.Register(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary      Listar lotes com saldo corrente
// @Tags         batches
// @Produce      json
// @Success      200  {array}  dto.BatchResponse
// @Router       /api/batches [get]
func (h *BatchHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.stockUC.ListBatches())
}

// Delete godoc
// @Summary      Excluir lote (cascata restrita ao par medicamento+lote)
// @Tags         batches
// @Produce      json
// @Param        id   path  string  true  "ID do lote"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/batches/{id} [delete]
func (h *BatchHandler) Delete(c *fiber.Ctx) error {
	if err := h.batchUC.Delete(c.Context(), c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "lote excluído"})
}

// DeleteMedication godoc
// @Summary      Excluir todos os lotes de um medicamento
// @Tags         batches
// @Produce      json
// @Param        name  path  string  true  "Nome do medicamento"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/medications/{name}/batches [delete]
func (h *BatchHandler) DeleteMedication(c *fiber.Ctx) error {
	name, err := urlParam(c, "name")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nome inválido"})
	}
	if err := h.batchUC.DeleteMedication(c.Context(), name); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "lotes excluídos"})
}
