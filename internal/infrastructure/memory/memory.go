// Package memory fornece implementações em memória das portas de persistência,
// usadas nos testes e em execuções sem banco. O TxRunner daqui não tem
// rollback: os casos de uso validam tudo antes de escrever.
package memory

import (
	"context"
	"sync"

	"github.com/HectorCardoso53/medcontrol/internal/application/stock"
	"github.com/HectorCardoso53/medcontrol/internal/application/visit"
	"github.com/HectorCardoso53/medcontrol/internal/domain"
	"github.com/HectorCardoso53/medcontrol/internal/domain/entity"
	"github.com/HectorCardoso53/medcontrol/internal/domain/repository"
)

var (
	_ repository.BatchRepository     = (*BatchRepo)(nil)
	_ repository.VisitRepository     = (*VisitRepo)(nil)
	_ repository.DispensalRepository = (*DispensalRepo)(nil)
	_ visit.TxRunner                 = (*TxRunner)(nil)
	_ stock.TxRunner                 = (*TxRunner)(nil)
)

// Store guarda as três coleções e contadores de escrita para inspeção em teste.
type Store struct {
	mu         sync.Mutex
	batches    []entity.Batch
	visits     []entity.Visit
	items      []entity.VisitItem
	dispensals []entity.Dispensal

	// Writes conta todas as escritas aceitas, para verificar atomicidade.
	Writes int
}

// NewStore constrói um armazenamento vazio.
func NewStore() *Store { return &Store{} }

// BatchRepo acessa os lotes do Store.
type BatchRepo struct{ s *Store }

// VisitRepo acessa os atendimentos do Store.
type VisitRepo struct{ s *Store }

// DispensalRepo acessa as saídas do Store.
type DispensalRepo struct{ s *Store }

// Batches devolve o repositório de lotes.
func (s *Store) Batches() *BatchRepo { return &BatchRepo{s: s} }

// Visits devolve o repositório de atendimentos.
func (s *Store) Visits() *VisitRepo { return &VisitRepo{s: s} }

// Dispensals devolve o repositório de saídas.
func (s *Store) Dispensals() *DispensalRepo { return &DispensalRepo{s: s} }

func (r *BatchRepo) Create(_ context.Context, batch *entity.Batch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.batches {
		if r.s.batches[i].Medication == batch.Medication && r.s.batches[i].BatchCode == batch.BatchCode {
			return domain.ErrDuplicate
		}
	}
	r.s.batches = append(r.s.batches, *batch)
	r.s.Writes++
	return nil
}

func (r *BatchRepo) ListAll(_ context.Context) ([]entity.Batch, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entity.Batch, len(r.s.batches))
	copy(out, r.s.batches)
	return out, nil
}

func (r *BatchRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.batches {
		if r.s.batches[i].ID == id {
			r.s.batches = append(r.s.batches[:i], r.s.batches[i+1:]...)
			r.s.Writes++
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *VisitRepo) Create(_ context.Context, v *entity.Visit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored := *v
	stored.Items = nil
	r.s.visits = append(r.s.visits, stored)
	r.s.Writes++
	return nil
}

func (r *VisitRepo) CreateItem(_ context.Context, item *entity.VisitItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.items = append(r.s.items, *item)
	r.s.Writes++
	return nil
}

func (r *VisitRepo) ListAll(_ context.Context) ([]entity.Visit, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entity.Visit, len(r.s.visits))
	copy(out, r.s.visits)
	for i := range out {
		for _, item := range r.s.items {
			if item.VisitID == out[i].ID {
				out[i].Items = append(out[i].Items, item)
			}
		}
	}
	return out, nil
}

func (r *VisitRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.visits {
		if r.s.visits[i].ID == id {
			r.s.visits = append(r.s.visits[:i], r.s.visits[i+1:]...)
			r.s.Writes++
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *VisitRepo) DeleteItemsByVisit(_ context.Context, visitID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.items[:0]
	for _, item := range r.s.items {
		if item.VisitID != visitID {
			kept = append(kept, item)
		}
	}
	r.s.items = kept
	r.s.Writes++
	return nil
}

func (r *DispensalRepo) Create(_ context.Context, d *entity.Dispensal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.dispensals = append(r.s.dispensals, *d)
	r.s.Writes++
	return nil
}

func (r *DispensalRepo) ListAll(_ context.Context) ([]entity.Dispensal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entity.Dispensal, len(r.s.dispensals))
	copy(out, r.s.dispensals)
	return out, nil
}

func (r *DispensalRepo) DeleteByVisit(_ context.Context, visitID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.dispensals[:0]
	for _, d := range r.s.dispensals {
		if d.VisitID != visitID {
			kept = append(kept, d)
		}
	}
	r.s.dispensals = kept
	r.s.Writes++
	return nil
}

func (r *DispensalRepo) DeleteByBatch(_ context.Context, medication, batchCode string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.dispensals[:0]
	for _, d := range r.s.dispensals {
		if d.Medication != medication || d.BatchCode != batchCode {
			kept = append(kept, d)
		}
	}
	r.s.dispensals = kept
	r.s.Writes++
	return nil
}

// TxRunner executa o callback direto sobre os repositórios do Store.
type TxRunner struct {
	s *Store
	// FailOn, quando não nulo, faz o Run falhar antes de qualquer escrita:
	// simula falha de persistência na fase de commit.
	FailOn error
}

// NewTxRunner constrói o runner.
func NewTxRunner(s *Store) *TxRunner { return &TxRunner{s: s} }

// Run executa fn com os repositórios do Store, sem transação real.
func (r *TxRunner) Run(_ context.Context, fn func(
	batchRepo repository.BatchRepository,
	visitRepo repository.VisitRepository,
	dispensalRepo repository.DispensalRepository,
) error) error {
	if r.FailOn != nil {
		return r.FailOn
	}
	return fn(r.s.Batches(), r.s.Visits(), r.s.Dispensals())
}
