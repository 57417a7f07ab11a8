package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/HectorCardoso53/medcontrol/internal/application/report"
)

// ReportHandler expõe o relatório de distribuição (JSON e PDF).
type ReportHandler struct {
	reportUC *report.UseCase
}

// NewReportHandler constrói o handler.
func NewReportHandler(reportUC *report.UseCase) *ReportHandler {
	return &ReportHandler{reportUC: reportUC}
}

func filterFromQuery(c *fiber.Ctx) report.Filter {
	return report.Filter{
		Year:       c.QueryInt("year"),
		Month:      c.QueryInt("month"),
		Patient:    c.Query("patient"),
		Medication: c.Query("medication"),
	}
}

// Summary godoc
// @Summary      Resumo de distribuição por bairro, medicamento e período
// @Tags         reports
// @Produce      json
// @Param        year        query  int     false  "Ano (AAAA)"
// @Param        month       query  int     false  "Mês (1-12)"
// @Param        patient     query  string  false  "Filtro por nome do paciente (contém)"
// @Param        medication  query  string  false  "Filtro por medicamento (contém)"
// @Success      200  {object}  dto.ReportSummaryDTO
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.reportUC.Summary(filterFromQuery(c), report.DefaultTopN))
}

// ExportPDF godoc
// @Summary      Exportar o relatório de distribuição em PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        year        query  int     false  "Ano (AAAA)"
// @Param        month       query  int     false  "Mês (1-12)"
// @Param        patient     query  string  false  "Filtro por nome do paciente (contém)"
// @Param        medication  query  string  false  "Filtro por medicamento (contém)"
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/pdf [get]
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	pdf, err := h.reportUC.ExportPDF(c.Context(), filterFromQuery(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	filename := fmt.Sprintf("relatorio-distribuicao-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}
