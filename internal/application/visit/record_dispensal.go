package visit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/HectorCardoso53/medcontrol/internal/application/dto"
	"github.com/HectorCardoso53/medcontrol/internal/application/ledger"
	"github.com/HectorCardoso53/medcontrol/internal/domain"
	"github.com/HectorCardoso53/medcontrol/internal/domain/entity"
	"github.com/HectorCardoso53/medcontrol/internal/domain/inventory"
	"github.com/HectorCardoso53/medcontrol/internal/domain/repository"
)

// RecordDispensalUseCase grava uma saída avulsa (ajuste, perda, transferência),
// sem atendimento. Passa pelas mesmas checagens de lote e saldo.
type RecordDispensalUseCase struct {
	dispensalRepo repository.DispensalRepository
	ledger        *ledger.Ledger
}

// NewRecordDispensalUseCase constrói o caso de uso.
func NewRecordDispensalUseCase(dispensalRepo repository.DispensalRepository, mirror *ledger.Ledger) *RecordDispensalUseCase {
	return &RecordDispensalUseCase{dispensalRepo: dispensalRepo, ledger: mirror}
}

// Record valida e persiste a saída avulsa.
func (uc *RecordDispensalUseCase) Record(ctx context.Context, in dto.RecordDispensalRequest) (*dto.DispensalResponse, error) {
	date, err := time.ParseInLocation(dto.ISODate, in.Date, time.Local)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Medication == "" || in.BatchCode == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	batches, dispensals := uc.ledger.Snapshot()
	if !batchExists(batches, in.Medication, in.BatchCode) {
		return nil, domain.ErrBatchNotFound
	}
	available := inventory.BalanceOfBatch(batches, dispensals, in.Medication, in.BatchCode)
	if in.Quantity > available {
		return nil, &domain.InsufficientStockError{
			Medication: in.Medication,
			BatchCode:  in.BatchCode,
			Requested:  in.Quantity,
			Available:  available,
		}
	}

	dispensal := entity.Dispensal{
		ID:         uuid.New().String(),
		Date:       date,
		Medication: in.Medication,
		BatchCode:  in.BatchCode,
		Quantity:   in.Quantity,
		Reference:  in.Reference,
		CreatedAt:  time.Now(),
	}
	if err := uc.dispensalRepo.Create(ctx, &dispensal); err != nil {
		return nil, fmt.Errorf("gravar saída: %w", err)
	}
	uc.ledger.AddDispensal(dispensal)

	return &dto.DispensalResponse{
		ID:         dispensal.ID,
		Date:       dispensal.Date.Format(dto.ISODate),
		Medication: dispensal.Medication,
		BatchCode:  dispensal.BatchCode,
		Quantity:   dispensal.Quantity,
		Reference:  dispensal.Reference,
	}, nil
}
