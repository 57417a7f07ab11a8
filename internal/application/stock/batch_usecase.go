package stock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/HectorCardoso53/medcontrol/internal/application/dto"
	"github.com/HectorCardoso53/medcontrol/internal/application/ledger"
	"github.com/HectorCardoso53/medcontrol/internal/domain"
	"github.com/HectorCardoso53/medcontrol/internal/domain/entity"
	"github.com/HectorCardoso53/medcontrol/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação do armazenamento.
// Mesma assinatura do runner do fluxo de atendimento; a implementação
// PostgreSQL atende às duas portas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		batchRepo repository.BatchRepository,
		visitRepo repository.VisitRepository,
		dispensalRepo repository.DispensalRepository,
	) error) error
}

// BatchUseCase ciclo de vida dos lotes: recebimento e exclusão com cascata
// restrita ao par (medicamento, lote).
type BatchUseCase struct {
	txRunner  TxRunner
	batchRepo repository.BatchRepository
	ledger    *ledger.Ledger
}

// NewBatchUseCase constrói o caso de uso.
func NewBatchUseCase(txRunner TxRunner, batchRepo repository.BatchRepository, mirror *ledger.Ledger) *BatchUseCase {
	return &BatchUseCase{txRunner: txRunner, batchRepo: batchRepo, ledger: mirror}
}

// Register valida e persiste um lote recebido.
func (uc *BatchUseCase) Register(ctx context.Context, in dto.RegisterBatchRequest) (*dto.BatchResponse, error) {
	if in.Code == "" || in.Medication == "" || in.BatchCode == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	received, err := time.ParseInLocation(dto.ISODate, in.ReceivedDate, time.Local)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	expiry, err := time.ParseInLocation(dto.ISODate, in.ExpiryDate, time.Local)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	batch := entity.Batch{
		ID:           uuid.New().String(),
		Code:         in.Code,
		Medication:   in.Medication,
		BatchCode:    in.BatchCode,
		ReceivedDate: received,
		ExpiryDate:   expiry,
		Quantity:     in.Quantity,
		CreatedAt:    time.Now(),
	}
	if err := uc.batchRepo.Create(ctx, &batch); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("gravar lote: %w", err)
	}
	uc.ledger.AddBatch(batch)

	resp := toBatchResponse(&batch, batch.Quantity)
	return &resp, nil
}

// Delete exclui o lote e, na mesma transação, as saídas do par
// (medicamento, lote). A cascata nunca alcança outros lotes do medicamento.
func (uc *BatchUseCase) Delete(ctx context.Context, id string) error {
	var target *entity.Batch
	batches := uc.ledger.Batches()
	for i := range batches {
		if batches[i].ID == id {
			target = &batches[i]
			break
		}
	}
	if target == nil {
		return domain.ErrNotFound
	}

	err := uc.txRunner.Run(ctx, func(
		batchRepo repository.BatchRepository,
		_ repository.VisitRepository,
		dispensalRepo repository.DispensalRepository,
	) error {
		if err := dispensalRepo.DeleteByBatch(ctx, target.Medication, target.BatchCode); err != nil {
			return err
		}
		return batchRepo.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("excluir lote: %w", err)
	}

	uc.ledger.RemoveDispensalsOfBatch(target.Medication, target.BatchCode)
	uc.ledger.RemoveBatch(id)
	return nil
}

// DeleteMedication exclui todos os lotes de um medicamento, lote a lote.
// Melhor esforço: a falha em um lote não interrompe os demais; o primeiro
// erro é devolvido ao final.
func (uc *BatchUseCase) DeleteMedication(ctx context.Context, medication string) error {
	if medication == "" {
		return domain.ErrInvalidInput
	}
	var ids []string
	for _, b := range uc.ledger.Batches() {
		if b.Medication == medication {
			ids = append(ids, b.ID)
		}
	}
	if len(ids) == 0 {
		return domain.ErrNotFound
	}

	var firstErr error
	for _, id := range ids {
		if err := uc.Delete(ctx, id); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func toBatchResponse(b *entity.Batch, balance int) dto.BatchResponse {
	return dto.BatchResponse{
		ID:           b.ID,
		Code:         b.Code,
		Medication:   b.Medication,
		BatchCode:    b.BatchCode,
		ReceivedDate: b.ReceivedDate.Format(dto.ISODate),
		ExpiryDate:   b.ExpiryDate.Format(dto.ISODate),
		Quantity:     b.Quantity,
		Balance:      balance,
	}
}
