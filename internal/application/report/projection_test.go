package report_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HectorCardoso53/medcontrol/internal/application/report"
	"github.com/HectorCardoso53/medcontrol/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func visitOn(day time.Time, patient, neighborhood string, meds ...string) entity.Visit {
	v := entity.Visit{
		ID:           patient + day.Format("20060102"),
		Date:         day,
		PatientName:  patient,
		Neighborhood: neighborhood,
	}
	for _, m := range meds {
		v.Items = append(v.Items, entity.VisitItem{Medication: m, Quantity: 1})
	}
	return v
}

func dispensalOn(day time.Time, med string, qty int, reference string) entity.Dispensal {
	return entity.Dispensal{Date: day, Medication: med, Quantity: qty, Reference: reference}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func requirePercent(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, got.Equal(decimal.RequireFromString(want)), "percentual: esperado %s, obtido %s", want, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Participações
// ──────────────────────────────────────────────────────────────────────────────

func TestSummarize_ParticipacaoPorBairro(t *testing.T) {
	visits := []entity.Visit{
		visitOn(day(2026, 2, 1), "Ana", "Centro"),
		visitOn(day(2026, 2, 2), "Bruno", "Centro"),
		visitOn(day(2026, 2, 3), "Carla", "Aparecida"),
	}

	summary := report.Summarize(visits, nil, report.Filter{}, 0)

	require.Len(t, summary.ByNeighborhood, 2)
	assert.Equal(t, "Centro", summary.ByNeighborhood[0].Label)
	assert.Equal(t, 2, summary.ByNeighborhood[0].Count)
	requirePercent(t, "66.7", summary.ByNeighborhood[0].Percent)
	requirePercent(t, "33.3", summary.ByNeighborhood[1].Percent)
}

func TestSummarize_ParticipacaoPorMedicamentoEmQuantidade(t *testing.T) {
	dispensals := []entity.Dispensal{
		dispensalOn(day(2026, 2, 1), "Dipirona 500mg", 30, ""),
		dispensalOn(day(2026, 2, 2), "Dipirona 500mg", 20, ""),
		dispensalOn(day(2026, 2, 3), "Losartana 50mg", 50, ""),
	}

	summary := report.Summarize(nil, dispensals, report.Filter{}, 0)

	assert.Equal(t, 100, summary.TotalDistributed)
	require.Len(t, summary.ByMedication, 2)
	// Empate em 50: quem apareceu primeiro fica à frente
	assert.Equal(t, "Dipirona 500mg", summary.ByMedication[0].Label)
	assert.Equal(t, 50, summary.ByMedication[0].Quantity)
	requirePercent(t, "50", summary.ByMedication[0].Percent)
}

func TestSummarize_RazaoVazioSemDivisaoPorZero(t *testing.T) {
	summary := report.Summarize(nil, nil, report.Filter{}, 0)
	assert.Zero(t, summary.TotalVisits)
	assert.Zero(t, summary.TotalDistributed)
	assert.Empty(t, summary.ByNeighborhood)
	assert.Empty(t, summary.ByMedication)
}

// ──────────────────────────────────────────────────────────────────────────────
// Baldes de calendário
// ──────────────────────────────────────────────────────────────────────────────

func TestSummarize_BaldesPorDiaEPorMes(t *testing.T) {
	visits := []entity.Visit{
		visitOn(day(2026, 2, 10), "Ana", "Centro"),
		visitOn(day(2026, 2, 10), "Bruno", "Centro"),
		visitOn(day(2026, 1, 5), "Carla", "Centro"),
	}

	summary := report.Summarize(visits, nil, report.Filter{}, 0)

	require.Len(t, summary.VisitsByDay, 2)
	// Ordem cronológica, não ordem de inserção
	assert.Equal(t, "2026-01-05", summary.VisitsByDay[0].Bucket)
	assert.Equal(t, "2026-02-10", summary.VisitsByDay[1].Bucket)
	assert.Equal(t, 2, summary.VisitsByDay[1].Count)

	require.Len(t, summary.VisitsByMonth, 2)
	assert.Equal(t, "2026-01", summary.VisitsByMonth[0].Bucket)
	assert.Equal(t, "2026-02", summary.VisitsByMonth[1].Bucket)
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtro
// ──────────────────────────────────────────────────────────────────────────────

func TestSummarize_FiltrosCompoemComELogico(t *testing.T) {
	visits := []entity.Visit{
		visitOn(day(2026, 2, 1), "Maria das Dores", "Centro", "Dipirona 500mg"),
		visitOn(day(2026, 2, 2), "Maria Silva", "Aparecida", "Losartana 50mg"),
		visitOn(day(2025, 2, 3), "Maria das Dores", "Centro", "Dipirona 500mg"),
	}
	dispensals := []entity.Dispensal{
		dispensalOn(day(2026, 2, 1), "Dipirona 500mg", 10, "Maria das Dores - 01/02/2026"),
		dispensalOn(day(2026, 2, 2), "Losartana 50mg", 5, "Maria Silva - 02/02/2026"),
		dispensalOn(day(2025, 2, 3), "Dipirona 500mg", 8, "Maria das Dores - 03/02/2025"),
	}

	summary := report.Summarize(visits, dispensals, report.Filter{
		Year:       2026,
		Month:      2,
		Patient:    "maria das dores", // casa sem distinção de maiúsculas
		Medication: "dipirona",
	}, 0)

	assert.Equal(t, 1, summary.TotalVisits)
	assert.Equal(t, 10, summary.TotalDistributed)
	require.Len(t, summary.VisitsByDay, 1)
	assert.Equal(t, "2026-02-01", summary.VisitsByDay[0].Bucket)
}

func TestSummarize_FiltroPorAnoSozinho(t *testing.T) {
	visits := []entity.Visit{
		visitOn(day(2026, 1, 1), "Ana", "Centro"),
		visitOn(day(2025, 6, 1), "Bruno", "Centro"),
	}

	summary := report.Summarize(visits, nil, report.Filter{Year: 2025}, 0)
	assert.Equal(t, 1, summary.TotalVisits)
}

// ──────────────────────────────────────────────────────────────────────────────
// Rankings
// ──────────────────────────────────────────────────────────────────────────────

func TestSummarize_TopNCortaEEmpataEstavel(t *testing.T) {
	var visits []entity.Visit
	// Ana 3 atendimentos, Bruno 2, Carla 2, Dani 1
	for i, tc := range []struct {
		patient string
		n       int
	}{{"Ana", 3}, {"Bruno", 2}, {"Carla", 2}, {"Dani", 1}} {
		for j := 0; j < tc.n; j++ {
			visits = append(visits, visitOn(day(2026, 2, i*7+j+1), tc.patient, "Centro"))
		}
	}

	summary := report.Summarize(visits, nil, report.Filter{}, 3)

	require.Len(t, summary.TopPatients, 3)
	assert.Equal(t, "Ana", summary.TopPatients[0].Label)
	assert.Equal(t, 3, summary.TopPatients[0].Total)
	// Bruno e Carla empatados: ordem de primeiro aparecimento
	assert.Equal(t, "Bruno", summary.TopPatients[1].Label)
	assert.Equal(t, "Carla", summary.TopPatients[2].Label)
}

func TestSummarize_TopMedicamentosPorQuantidade(t *testing.T) {
	dispensals := []entity.Dispensal{
		dispensalOn(day(2026, 2, 1), "Dipirona 500mg", 5, ""),
		dispensalOn(day(2026, 2, 2), "Losartana 50mg", 40, ""),
		dispensalOn(day(2026, 2, 3), "Dipirona 500mg", 10, ""),
	}

	summary := report.Summarize(nil, dispensals, report.Filter{}, 0)

	require.Len(t, summary.TopMedications, 2)
	assert.Equal(t, "Losartana 50mg", summary.TopMedications[0].Label)
	assert.Equal(t, 40, summary.TopMedications[0].Total)
	assert.Equal(t, 15, summary.TopMedications[1].Total)
}
