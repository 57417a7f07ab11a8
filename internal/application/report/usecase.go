package report

import (
	"context"
	"fmt"

	"github.com/HectorCardoso53/medcontrol/internal/application/dto"
	"github.com/HectorCardoso53/medcontrol/internal/application/ledger"
)

// PDFGenerator porta para a exportação do relatório de distribuição.
type PDFGenerator interface {
	GenerateReportPDF(ctx context.Context, summary *dto.ReportSummaryDTO, title string) ([]byte, error)
}

// UseCase gera o resumo e a exportação em PDF a partir do espelho do razão.
type UseCase struct {
	ledger *ledger.Ledger
	pdfGen PDFGenerator
}

// NewUseCase constrói o caso de uso.
func NewUseCase(mirror *ledger.Ledger, pdfGen PDFGenerator) *UseCase {
	return &UseCase{ledger: mirror, pdfGen: pdfGen}
}

// Summary agrega o recorte filtrado do razão.
func (uc *UseCase) Summary(f Filter, topN int) dto.ReportSummaryDTO {
	return Summarize(uc.ledger.Visits(), uc.ledger.Dispensals(), f, topN)
}

// ExportPDF gera o relatório de distribuição em PDF.
func (uc *UseCase) ExportPDF(ctx context.Context, f Filter) ([]byte, error) {
	summary := uc.Summary(f, DefaultTopN)
	pdf, err := uc.pdfGen.GenerateReportPDF(ctx, &summary, "Relatório de Distribuição de Medicamentos")
	if err != nil {
		return nil, fmt.Errorf("gerar PDF do relatório: %w", err)
	}
	return pdf, nil
}
