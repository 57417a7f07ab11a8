package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/HectorCardoso53/medcontrol/internal/application/dto"
	"github.com/HectorCardoso53/medcontrol/internal/application/stock"
)

// StockHandler expõe a posição de estoque e a sugestão FIFO.
type StockHandler struct {
	stockUC *stock.UseCase
}

// NewStockHandler constrói o handler.
func NewStockHandler(stockUC *stock.UseCase) *StockHandler {
	return &StockHandler{stockUC: stockUC}
}

// Overview godoc
// @Summary      Posição de estoque por medicamento
// @Description  Uma linha por medicamento com saldo, validade mais próxima e situação.
// @Tags         stock
// @Produce      json
// @Success      200  {array}  dto.StockRowDTO
// @Router       /api/stock [get]
func (h *StockHandler) Overview(c *fiber.Ctx) error {
	return c.JSON(h.stockUC.Overview(time.Now()))
}

// Summary godoc
// @Summary      Cartões de resumo do estoque
// @Tags         stock
// @Produce      json
// @Success      200  {object}  dto.StockSummaryDTO
// @Router       /api/stock/summary [get]
func (h *StockHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.stockUC.Summary(time.Now()))
}

// SuggestFIFO godoc
// @Summary      Sugerir lote para dispensação (vence primeiro sai primeiro)
// @Tags         stock
// @Produce      json
// @Param        medication  query  string  true  "Nome do medicamento"
// @Success      200  {object}  dto.BatchResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/fifo [get]
func (h *StockHandler) SuggestFIFO(c *fiber.Ctx) error {
	medication := c.Query("medication")
	if medication == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "informe o medicamento"})
	}
	resp, err := h.stockUC.SuggestFIFOBatch(medication)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}
