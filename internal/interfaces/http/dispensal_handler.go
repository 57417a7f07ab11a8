package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HectorCardoso53/medcontrol/internal/application/dto"
	"github.com/HectorCardoso53/medcontrol/internal/application/ledger"
	"github.com/HectorCardoso53/medcontrol/internal/application/visit"
)

// DispensalHandler trata saídas avulsas (ajustes, perdas, transferências).
type DispensalHandler struct {
	recordUC *visit.RecordDispensalUseCase
	mirror   *ledger.Ledger
}

// NewDispensalHandler constrói o handler.
func NewDispensalHandler(recordUC *visit.RecordDispensalUseCase, mirror *ledger.Ledger) *DispensalHandler {
	return &DispensalHandler{recordUC: recordUC, mirror: mirror}
}

// Record godoc
// @Summary      Registrar saída avulsa de estoque
// @Tags         dispensals
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordDispensalRequest  true  "date, medication, batch_code, quantity, reference"
// @Success      201   {object}  dto.DispensalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/dispensals [post]
func (h *DispensalHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordDispensalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	resp, err := h.recordUC.Record(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary      Listar saídas de estoque (mais recentes primeiro)
// @Tags         dispensals
// @Produce      json
// @Success      200  {array}  dto.DispensalResponse
// @Router       /api/dispensals [get]
func (h *DispensalHandler) List(c *fiber.Ctx) error {
	return c.JSON(visit.ListDispensals(h.mirror))
}
