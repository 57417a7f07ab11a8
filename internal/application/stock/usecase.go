// Package stock reúne os casos de uso de estoque: visão por medicamento,
// cartões de resumo, sugestão FIFO e o ciclo de vida dos lotes.
package stock

import (
	"time"

	"github.com/HectorCardoso53/medcontrol/internal/application/dto"
	"github.com/HectorCardoso53/medcontrol/internal/application/ledger"
	"github.com/HectorCardoso53/medcontrol/internal/domain"
	"github.com/HectorCardoso53/medcontrol/internal/domain/inventory"
)

// UseCase consultas de estoque sobre o espelho do razão.
type UseCase struct {
	ledger     *ledger.Ledger
	thresholds inventory.Thresholds
}

// NewUseCase constrói o caso de uso.
func NewUseCase(mirror *ledger.Ledger, thresholds inventory.Thresholds) *UseCase {
	return &UseCase{ledger: mirror, thresholds: thresholds}
}

// Overview devolve uma linha por medicamento: totais, saldo, validade mais
// próxima e os dois eixos de situação, mais o badge único com prioridade de
// exibição (o pior vence: sem estoque > vencido > baixo > próximo > ok).
func (uc *UseCase) Overview(now time.Time) []dto.StockRowDTO {
	batches, dispensals := uc.ledger.Snapshot()

	rows := make([]dto.StockRowDTO, 0)
	for _, med := range inventory.MedicationNames(batches) {
		received, distributed := 0, 0
		for i := range batches {
			if batches[i].Medication == med {
				received += batches[i].Quantity
			}
		}
		for i := range dispensals {
			if dispensals[i].Medication == med {
				distributed += dispensals[i].Quantity
			}
		}
		balance := inventory.StockOf(batches, dispensals, med)

		row := dto.StockRowDTO{
			Medication:       med,
			TotalReceived:    received,
			TotalDistributed: distributed,
			Balance:          balance,
		}

		days := 0
		hasExpiry := false
		if nearest, ok := inventory.NearestExpiry(batches, med); ok {
			days = inventory.DaysUntilAt(nearest, now)
			hasExpiry = true
			row.NearestExpiry = nearest.Format(dto.ISODate)
			d := days
			row.DaysUntilExpiry = &d
		}

		level, expiry := uc.thresholds.Classify(balance, days)
		if !hasExpiry {
			expiry = inventory.ExpiryOK
		}
		row.StockLevel = string(level)
		row.ExpiryStatus = string(expiry)
		row.Status = badge(level, expiry)
		rows = append(rows, row)
	}
	return rows
}

// badge colapsa os dois eixos num único rótulo de exibição.
func badge(level inventory.StockLevel, expiry inventory.ExpiryStatus) string {
	switch {
	case level == inventory.StockOut:
		return "SEM ESTOQUE"
	case expiry == inventory.ExpiryExpired:
		return "VENCIDO"
	case level == inventory.StockLow:
		return "ESTOQUE BAIXO"
	case expiry == inventory.ExpiryExpiring:
		return "PRÓX. VENCIMENTO"
	default:
		return "OK"
	}
}

// Summary devolve os cartões do painel de estoque.
func (uc *UseCase) Summary(now time.Time) dto.StockSummaryDTO {
	batches, dispensals := uc.ledger.Snapshot()
	meds := inventory.MedicationNames(batches)

	summary := dto.StockSummaryDTO{MedicationCount: len(meds)}
	for _, med := range meds {
		balance := inventory.StockOf(batches, dispensals, med)
		summary.TotalUnits += balance

		if balance > 0 && balance < uc.thresholds.LowStock {
			summary.LowStockCount++
		}
		if nearest, ok := inventory.NearestExpiry(batches, med); ok {
			days := inventory.DaysUntilAt(nearest, now)
			if days > 0 && days <= uc.thresholds.ExpiryWarningDays {
				summary.ExpiringCount++
			}
		}
	}
	return summary
}

// SuggestFIFOBatch devolve o lote que o fluxo legado consumiria: validade mais
// próxima entre os que têm saldo. ErrNotFound quando nenhum lote tem saldo.
func (uc *UseCase) SuggestFIFOBatch(medication string) (*dto.BatchResponse, error) {
	if medication == "" {
		return nil, domain.ErrInvalidInput
	}
	batches, dispensals := uc.ledger.Snapshot()
	selected := inventory.SelectFIFOBatch(batches, dispensals, medication)
	if selected == nil {
		return nil, domain.ErrNotFound
	}
	resp := toBatchResponse(selected, inventory.BalanceOfBatch(batches, dispensals, selected.Medication, selected.BatchCode))
	return &resp, nil
}

// ListBatches devolve os lotes do espelho (ordem de carga: recebimento
// descendente) com o saldo corrente de cada um.
func (uc *UseCase) ListBatches() []dto.BatchResponse {
	batches, dispensals := uc.ledger.Snapshot()
	out := make([]dto.BatchResponse, 0, len(batches))
	for i := range batches {
		b := &batches[i]
		out = append(out, toBatchResponse(b, inventory.BalanceOfBatch(batches, dispensals, b.Medication, b.BatchCode)))
	}
	return out
}
