// Package pdf implementa a exportação do relatório de distribuição em PDF
// usando Maroto v2.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  TÍTULO + período/filtros + totais                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Bairro | Atendimentos | %                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Medicamento | Quantidade | %                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RANKING: medicamentos mais distribuídos                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/HectorCardoso53/medcontrol/internal/application/dto"
	"github.com/HectorCardoso53/medcontrol/internal/application/report"
)

var _ report.PDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 14, Green: 116, Blue: 144}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReportGenerator implementa report.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator constrói o gerador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateReportPDF gera o PDF e devolve seus bytes.
func (g *MarotoReportGenerator) GenerateReportPDF(_ context.Context, summary *dto.ReportSummaryDTO, title string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(title, summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionRow("Atendimentos por bairro"))
	m.AddRows(shareHeaderRow("Bairro", "Atendimentos"))
	for _, r := range summary.ByNeighborhood {
		m.AddRows(shareRow(r.Label, fmt.Sprintf("%d", r.Count), r.Percent.String()+"%"))
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(sectionRow("Medicamentos distribuídos"))
	m.AddRows(shareHeaderRow("Medicamento", "Quantidade"))
	for _, r := range summary.ByMedication {
		m.AddRows(shareRow(r.Label, fmt.Sprintf("%d", r.Quantity), r.Percent.String()+"%"))
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(sectionRow("Mais distribuídos"))
	for i, r := range summary.TopMedications {
		m.AddRows(rankRow(i+1, r.Label, r.Total))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

func titleRow(title string, summary *dto.ReportSummaryDTO) core.Row {
	subtitle := fmt.Sprintf("%d atendimentos · %d unidades distribuídas",
		summary.TotalVisits, summary.TotalDistributed)
	return row.New(16).Add(
		col.New(12).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(subtitle, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
	)
}

func sectionRow(label string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2}),
		),
	)
}

func shareHeaderRow(first, second string) core.Row {
	return row.New(6).Add(
		col.New(6).Add(text.New(first, props.Text{Style: fontstyle.Bold, Size: 8})),
		col.New(3).Add(text.New(second, props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right})),
		col.New(3).Add(text.New("%", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right})),
	)
}

func shareRow(label, value, pct string) core.Row {
	return row.New(5).Add(
		col.New(6).Add(text.New(label, props.Text{Size: 8})),
		col.New(3).Add(text.New(value, props.Text{Size: 8, Align: align.Right})),
		col.New(3).Add(text.New(pct, props.Text{Size: 8, Align: align.Right})),
	)
}

func rankRow(position int, label string, total int) core.Row {
	return row.New(5).Add(
		col.New(9).Add(text.New(fmt.Sprintf("%d. %s", position, label), props.Text{Size: 8})),
		col.New(3).Add(text.New(fmt.Sprintf("%d", total), props.Text{Size: 8, Align: align.Right})),
	)
}
