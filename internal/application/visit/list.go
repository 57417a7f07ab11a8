package visit

import (
	"sort"

	"github.com/HectorCardoso53/medcontrol/internal/application/dto"
	"github.com/HectorCardoso53/medcontrol/internal/application/ledger"
)

// ListVisits devolve os atendimentos do espelho, mais recentes primeiro.
func ListVisits(mirror *ledger.Ledger) []dto.VisitResponse {
	visits := mirror.Visits()
	sort.SliceStable(visits, func(i, j int) bool {
		if !visits[i].Date.Equal(visits[j].Date) {
			return visits[i].Date.After(visits[j].Date)
		}
		return visits[i].CreatedAt.After(visits[j].CreatedAt)
	})

	out := make([]dto.VisitResponse, 0, len(visits))
	for i := range visits {
		out = append(out, toVisitResponse(&visits[i]))
	}
	return out
}

// ListDispensals devolve as saídas do espelho, mais recentes primeiro.
func ListDispensals(mirror *ledger.Ledger) []dto.DispensalResponse {
	dispensals := mirror.Dispensals()
	sort.SliceStable(dispensals, func(i, j int) bool {
		if !dispensals[i].Date.Equal(dispensals[j].Date) {
			return dispensals[i].Date.After(dispensals[j].Date)
		}
		return dispensals[i].CreatedAt.After(dispensals[j].CreatedAt)
	})

	out := make([]dto.DispensalResponse, 0, len(dispensals))
	for _, d := range dispensals {
		out = append(out, dto.DispensalResponse{
			ID:         d.ID,
			VisitID:    d.VisitID,
			Date:       d.Date.Format(dto.ISODate),
			Medication: d.Medication,
			BatchCode:  d.BatchCode,
			Quantity:   d.Quantity,
			Reference:  d.Reference,
		})
	}
	return out
}
