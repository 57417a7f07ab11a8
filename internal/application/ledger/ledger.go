// Package ledger mantém o espelho em memória das três coleções do razão
// (lotes, atendimentos e saídas). O espelho é carregado do armazenamento na
// inicialização e atualizado de forma síncrona após cada commit bem-sucedido;
// outra sessão só enxerga as escritas desta após recarregar.
package ledger

import (
	"context"
	"fmt"
	"sync"

	"github.com/HectorCardoso53/medcontrol/internal/domain/entity"
	"github.com/HectorCardoso53/medcontrol/internal/domain/repository"
)

// Ledger é o espelho injetável do razão. Nada de singleton de pacote: cada
// teste constrói o seu.
type Ledger struct {
	batchRepo     repository.BatchRepository
	visitRepo     repository.VisitRepository
	dispensalRepo repository.DispensalRepository

	mu         sync.RWMutex
	batches    []entity.Batch
	visits     []entity.Visit
	dispensals []entity.Dispensal
}

// New constrói um espelho vazio ligado aos repositórios.
func New(batchRepo repository.BatchRepository, visitRepo repository.VisitRepository, dispensalRepo repository.DispensalRepository) *Ledger {
	return &Ledger{
		batchRepo:     batchRepo,
		visitRepo:     visitRepo,
		dispensalRepo: dispensalRepo,
	}
}

// Load hidrata o espelho a partir do armazenamento, substituindo o conteúdo
// atual. Chamar na inicialização da sessão e em recargas explícitas.
func (l *Ledger) Load(ctx context.Context) error {
	batches, err := l.batchRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("carregar lotes: %w", err)
	}
	visits, err := l.visitRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("carregar atendimentos: %w", err)
	}
	dispensals, err := l.dispensalRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("carregar saídas: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.batches = batches
	l.visits = visits
	l.dispensals = dispensals
	return nil
}

// Batches devolve uma cópia do snapshot de lotes.
func (l *Ledger) Batches() []entity.Batch {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]entity.Batch, len(l.batches))
	copy(out, l.batches)
	return out
}

// Visits devolve uma cópia do snapshot de atendimentos.
func (l *Ledger) Visits() []entity.Visit {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]entity.Visit, len(l.visits))
	copy(out, l.visits)
	return out
}

// Dispensals devolve uma cópia do snapshot de saídas.
func (l *Ledger) Dispensals() []entity.Dispensal {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]entity.Dispensal, len(l.dispensals))
	copy(out, l.dispensals)
	return out
}

// Snapshot devolve lotes e saídas de uma vez, para o motor de estoque.
func (l *Ledger) Snapshot() ([]entity.Batch, []entity.Dispensal) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	batches := make([]entity.Batch, len(l.batches))
	copy(batches, l.batches)
	dispensals := make([]entity.Dispensal, len(l.dispensals))
	copy(dispensals, l.dispensals)
	return batches, dispensals
}

// AddBatch registra um lote recém-persistido.
func (l *Ledger) AddBatch(batch entity.Batch) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.batches = append(l.batches, batch)
}

// RemoveBatch tira o lote do espelho.
func (l *Ledger) RemoveBatch(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.batches {
		if l.batches[i].ID == id {
			l.batches = append(l.batches[:i], l.batches[i+1:]...)
			return
		}
	}
}

// AddVisit registra um atendimento commitado e as saídas geradas por ele.
func (l *Ledger) AddVisit(visit entity.Visit, dispensals []entity.Dispensal) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.visits = append(l.visits, visit)
	l.dispensals = append(l.dispensals, dispensals...)
}

// RemoveVisit tira o atendimento e as saídas ligadas a ele (chave VisitID).
func (l *Ledger) RemoveVisit(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.visits {
		if l.visits[i].ID == id {
			l.visits = append(l.visits[:i], l.visits[i+1:]...)
			break
		}
	}
	kept := l.dispensals[:0]
	for _, d := range l.dispensals {
		if d.VisitID != id {
			kept = append(kept, d)
		}
	}
	l.dispensals = kept
}

// AddDispensal registra uma saída avulsa.
func (l *Ledger) AddDispensal(dispensal entity.Dispensal) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.dispensals = append(l.dispensals, dispensal)
}

// RemoveDispensalsOfBatch tira as saídas do par (medicamento, lote).
func (l *Ledger) RemoveDispensalsOfBatch(medication, batchCode string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	kept := l.dispensals[:0]
	for _, d := range l.dispensals {
		if d.Medication != medication || d.BatchCode != batchCode {
			kept = append(kept, d)
		}
	}
	l.dispensals = kept
}
