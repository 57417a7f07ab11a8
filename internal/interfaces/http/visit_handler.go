package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HectorCardoso53/medcontrol/internal/application/dto"
	"github.com/HectorCardoso53/medcontrol/internal/application/ledger"
	"github.com/HectorCardoso53/medcontrol/internal/application/visit"
)

// VisitHandler trata as requisições HTTP de atendimentos.
type VisitHandler struct {
	createUC *visit.CreateVisitUseCase
	deleteUC *visit.DeleteVisitUseCase
	mirror   *ledger.Ledger
}

// NewVisitHandler constrói o handler.
func NewVisitHandler(createUC *visit.CreateVisitUseCase, deleteUC *visit.DeleteVisitUseCase, mirror *ledger.Ledger) *VisitHandler {
	return &VisitHandler{createUC: createUC, deleteUC: deleteUC, mirror: mirror}
}

// Create godoc
// @Summary      Registrar atendimento com dispensação de medicamentos
// @Description  Valida todos os itens antes de gravar; qualquer falha rejeita o atendimento inteiro.
// @Tags         visits
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVisitRequest  true  "dados do paciente e itens dispensados"
// @Success      201   {object}  dto.VisitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/visits [post]
func (h *VisitHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVisitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	resp, err := h.createUC.Create(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary      Listar atendimentos (mais recentes primeiro)
// @Tags         visits
// @Produce      json
// @Success      200  {array}  dto.VisitResponse
// @Router       /api/visits [get]
func (h *VisitHandler) List(c *fiber.Ctx) error {
	return c.JSON(visit.ListVisits(h.mirror))
}

// Delete godoc
// @Summary      Excluir atendimento e devolver as quantidades ao estoque
// @Tags         visits
// @Produce      json
// @Param        id   path  string  true  "ID do atendimento"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/visits/{id} [delete]
func (h *VisitHandler) Delete(c *fiber.Ctx) error {
	if err := h.deleteUC.Delete(c.Context(), c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "atendimento excluído"})
}
