// Package report projeta o razão em resumos para exibição: participação por
// bairro e por medicamento, atendimentos por dia e por mês, e rankings top-N.
// Agregações puras sobre um recorte filtrado; os gráficos são desenhados pelo
// cliente a partir dos baldes devolvidos.
package report

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/HectorCardoso53/medcontrol/internal/application/dto"
	"github.com/HectorCardoso53/medcontrol/internal/domain/entity"
)

// DefaultTopN tamanho padrão dos rankings.
const DefaultTopN = 10

// Filter recorte opcional do razão. Campos zero não filtram; os preenchidos
// compõem com E lógico. Patient e Medication casam por substring, sem
// distinção de maiúsculas.
type Filter struct {
	Year       int
	Month      int // 1-12; exige Year para fazer sentido, mas filtra sozinho também
	Patient    string
	Medication string
}

func (f Filter) matchVisit(v *entity.Visit) bool {
	if f.Year != 0 && v.Date.Year() != f.Year {
		return false
	}
	if f.Month != 0 && int(v.Date.Month()) != f.Month {
		return false
	}
	if f.Patient != "" && !containsFold(v.PatientName, f.Patient) {
		return false
	}
	if f.Medication != "" {
		found := false
		for i := range v.Items {
			if containsFold(v.Items[i].Medication, f.Medication) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (f Filter) matchDispensal(d *entity.Dispensal) bool {
	if f.Year != 0 && d.Date.Year() != f.Year {
		return false
	}
	if f.Month != 0 && int(d.Date.Month()) != f.Month {
		return false
	}
	if f.Medication != "" && !containsFold(d.Medication, f.Medication) {
		return false
	}
	if f.Patient != "" && !containsFold(d.Reference, f.Patient) {
		return false
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// Summarize agrega o recorte filtrado. topN <= 0 usa DefaultTopN.
func Summarize(visits []entity.Visit, dispensals []entity.Dispensal, f Filter, topN int) dto.ReportSummaryDTO {
	if topN <= 0 {
		topN = DefaultTopN
	}

	filteredVisits := make([]*entity.Visit, 0, len(visits))
	for i := range visits {
		if f.matchVisit(&visits[i]) {
			filteredVisits = append(filteredVisits, &visits[i])
		}
	}
	filteredDispensals := make([]*entity.Dispensal, 0, len(dispensals))
	for i := range dispensals {
		if f.matchDispensal(&dispensals[i]) {
			filteredDispensals = append(filteredDispensals, &dispensals[i])
		}
	}

	summary := dto.ReportSummaryDTO{TotalVisits: len(filteredVisits)}
	for _, d := range filteredDispensals {
		summary.TotalDistributed += d.Quantity
	}

	summary.ByNeighborhood = neighborhoodShare(filteredVisits)
	summary.ByMedication = medicationShare(filteredDispensals)
	summary.VisitsByDay = bucketize(filteredVisits, "2006-01-02")
	summary.VisitsByMonth = bucketize(filteredVisits, "2006-01")
	summary.TopPatients = topPatients(filteredVisits, topN)
	summary.TopMedications = topMedications(filteredDispensals, topN)
	return summary
}

// counter acumula totais preservando a ordem do primeiro aparecimento, para
// desempate estável nos rankings e nas tabelas de participação.
type counter struct {
	order  []string
	totals map[string]int
}

func newCounter() *counter {
	return &counter{totals: make(map[string]int)}
}

func (c *counter) add(label string, n int) {
	if _, ok := c.totals[label]; !ok {
		c.order = append(c.order, label)
	}
	c.totals[label] += n
}

// sortedDesc devolve os rótulos por total decrescente, empates na ordem de
// primeiro aparecimento (sort estável).
func (c *counter) sortedDesc() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	sort.SliceStable(out, func(i, j int) bool {
		return c.totals[out[i]] > c.totals[out[j]]
	})
	return out
}

func percent(part, total int) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(part) * 100).
		Div(decimal.NewFromInt(int64(total))).
		Round(1)
}

func neighborhoodShare(visits []*entity.Visit) []dto.ShareRowDTO {
	c := newCounter()
	for _, v := range visits {
		c.add(v.Neighborhood, 1)
	}
	rows := make([]dto.ShareRowDTO, 0, len(c.order))
	for _, label := range c.sortedDesc() {
		rows = append(rows, dto.ShareRowDTO{
			Label:   label,
			Count:   c.totals[label],
			Percent: percent(c.totals[label], len(visits)),
		})
	}
	return rows
}

func medicationShare(dispensals []*entity.Dispensal) []dto.QuantityShareRowDTO {
	c := newCounter()
	total := 0
	for _, d := range dispensals {
		c.add(d.Medication, d.Quantity)
		total += d.Quantity
	}
	rows := make([]dto.QuantityShareRowDTO, 0, len(c.order))
	for _, label := range c.sortedDesc() {
		rows = append(rows, dto.QuantityShareRowDTO{
			Label:    label,
			Quantity: c.totals[label],
			Percent:  percent(c.totals[label], total),
		})
	}
	return rows
}

// bucketize conta atendimentos por balde de calendário, baldes em ordem
// cronológica.
func bucketize(visits []*entity.Visit, layout string) []dto.BucketRowDTO {
	c := newCounter()
	for _, v := range visits {
		c.add(v.Date.Format(layout), 1)
	}
	keys := make([]string, len(c.order))
	copy(keys, c.order)
	sort.Strings(keys)

	rows := make([]dto.BucketRowDTO, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, dto.BucketRowDTO{Bucket: k, Count: c.totals[k]})
	}
	return rows
}

func topPatients(visits []*entity.Visit, n int) []dto.RankRowDTO {
	c := newCounter()
	for _, v := range visits {
		c.add(v.PatientName, 1)
	}
	return rank(c, n)
}

func topMedications(dispensals []*entity.Dispensal, n int) []dto.RankRowDTO {
	c := newCounter()
	for _, d := range dispensals {
		c.add(d.Medication, d.Quantity)
	}
	return rank(c, n)
}

func rank(c *counter, n int) []dto.RankRowDTO {
	labels := c.sortedDesc()
	if len(labels) > n {
		labels = labels[:n]
	}
	rows := make([]dto.RankRowDTO, 0, len(labels))
	for _, label := range labels {
		rows = append(rows, dto.RankRowDTO{Label: label, Total: c.totals[label]})
	}
	return rows
}
