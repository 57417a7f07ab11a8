// Package inventory contém o motor de estoque: funções puras que derivam
// saldos por lote, estoque agregado, situação de validade e seleção FIFO a
// partir de um snapshot do razão (lotes + saídas). Nenhuma função guarda
// estado nem toca persistência.
package inventory

import (
	"math"
	"time"

	"github.com/HectorCardoso53/medcontrol/internal/domain/entity"
)

// Thresholds parametriza a classificação de estoque e validade.
type Thresholds struct {
	LowStock          int // abaixo disso (e acima de zero) o estoque é BAIXO
	ExpiryWarningDays int // até esse prazo a validade é PRÓXIMA
}

// DefaultThresholds devolve os limites padrão do programa municipal.
func DefaultThresholds() Thresholds {
	return Thresholds{LowStock: 20, ExpiryWarningDays: 90}
}

// Eixo de quantidade.
type StockLevel string

const (
	StockOK  StockLevel = "OK"
	StockLow StockLevel = "LOW"
	StockOut StockLevel = "OUT"
)

// Eixo de validade.
type ExpiryStatus string

const (
	ExpiryOK       ExpiryStatus = "OK"
	ExpiryExpiring ExpiryStatus = "EXPIRING"
	ExpiryExpired  ExpiryStatus = "EXPIRED"
)

// BalanceOfBatch devolve o saldo aritmético do lote: quantidade recebida menos
// a soma das saídas do par (medicamento, lote). Pode ser negativo; o clamp a
// zero acontece apenas em StockOf. Devolve 0 se o lote não existe.
func BalanceOfBatch(batches []entity.Batch, dispensals []entity.Dispensal, medication, batchCode string) int {
	var batch *entity.Batch
	for i := range batches {
		if batches[i].Medication == medication && batches[i].BatchCode == batchCode {
			batch = &batches[i]
			break
		}
	}
	if batch == nil {
		return 0
	}
	consumed := 0
	for i := range dispensals {
		if dispensals[i].Medication == medication && dispensals[i].BatchCode == batchCode {
			consumed += dispensals[i].Quantity
		}
	}
	return batch.Quantity - consumed
}

// StockOf devolve o estoque agregado do medicamento: soma de max(0, saldo) de
// cada lote. O clamp impede que um lote estourado mascare falta em outro.
func StockOf(batches []entity.Batch, dispensals []entity.Dispensal, medication string) int {
	total := 0
	seen := make(map[string]bool)
	for i := range batches {
		b := &batches[i]
		if b.Medication != medication || seen[b.BatchCode] {
			continue
		}
		seen[b.BatchCode] = true
		if balance := BalanceOfBatch(batches, dispensals, medication, b.BatchCode); balance > 0 {
			total += balance
		}
	}
	return total
}

// NearestExpiry devolve a validade mais próxima entre os lotes do medicamento,
// inclusive lotes já esgotados (comportamento herdado do programa). O segundo
// retorno é false quando não há lote.
func NearestExpiry(batches []entity.Batch, medication string) (time.Time, bool) {
	var nearest time.Time
	found := false
	for i := range batches {
		b := &batches[i]
		if b.Medication != medication {
			continue
		}
		if !found || b.ExpiryDate.Before(nearest) {
			nearest = b.ExpiryDate
			found = true
		}
	}
	return nearest, found
}

// DaysUntil devolve os dias inteiros (teto) até a validade, contados de agora.
// Negativo significa vencido.
func DaysUntil(expiry time.Time) int {
	return DaysUntilAt(expiry, time.Now())
}

// DaysUntilAt é DaysUntil com instante de referência explícito, para cálculo
// determinístico. A validade é ancorada à meia-noite local da referência.
func DaysUntilAt(expiry, ref time.Time) int {
	midnight := time.Date(expiry.Year(), expiry.Month(), expiry.Day(), 0, 0, 0, 0, ref.Location())
	diff := midnight.Sub(ref)
	return int(math.Ceil(diff.Hours() / 24))
}

// Classify avalia os dois eixos de forma independente. A prioridade de exibição
// (o pior vence) é decisão da camada de apresentação, não do motor.
func (t Thresholds) Classify(balance, daysUntilExpiry int) (StockLevel, ExpiryStatus) {
	level := StockOK
	switch {
	case balance <= 0:
		level = StockOut
	case balance < t.LowStock:
		level = StockLow
	}

	expiry := ExpiryOK
	switch {
	case daysUntilExpiry < 0:
		expiry = ExpiryExpired
	case daysUntilExpiry <= t.ExpiryWarningDays:
		expiry = ExpiryExpiring
	}
	return level, expiry
}

// SelectFIFOBatch devolve, entre os lotes do medicamento com saldo positivo, o
// de validade mais próxima. Empate fica com o primeiro encontrado na ordem do
// snapshot (determinístico para entrada estável). Nil quando nenhum lote tem
// saldo. Uso legado: o fluxo principal exige escolha explícita do lote.
func SelectFIFOBatch(batches []entity.Batch, dispensals []entity.Dispensal, medication string) *entity.Batch {
	var selected *entity.Batch
	for i := range batches {
		b := &batches[i]
		if b.Medication != medication {
			continue
		}
		if BalanceOfBatch(batches, dispensals, medication, b.BatchCode) <= 0 {
			continue
		}
		if selected == nil || b.ExpiryDate.Before(selected.ExpiryDate) {
			selected = b
		}
	}
	return selected
}

// MedicationNames devolve os nomes distintos de medicamento presentes nos
// lotes, na ordem do primeiro aparecimento.
func MedicationNames(batches []entity.Batch) []string {
	seen := make(map[string]bool)
	names := make([]string, 0, len(batches))
	for i := range batches {
		if name := batches[i].Medication; !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}
