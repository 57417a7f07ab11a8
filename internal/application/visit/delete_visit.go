package visit

import (
	"context"
	"fmt"

	"github.com/HectorCardoso53/medcontrol/internal/application/ledger"
	"github.com/HectorCardoso53/medcontrol/internal/domain"
	"github.com/HectorCardoso53/medcontrol/internal/domain/repository"
)

// DeleteVisitUseCase exclui um atendimento e as saídas geradas por ele.
// A ligação é pela chave visit_id das saídas, não pelo texto de referência.
type DeleteVisitUseCase struct {
	txRunner TxRunner
	ledger   *ledger.Ledger
}

// NewDeleteVisitUseCase constrói o caso de uso.
func NewDeleteVisitUseCase(txRunner TxRunner, mirror *ledger.Ledger) *DeleteVisitUseCase {
	return &DeleteVisitUseCase{txRunner: txRunner, ledger: mirror}
}

// Delete remove atendimento, itens e saídas na mesma transação.
func (uc *DeleteVisitUseCase) Delete(ctx context.Context, id string) error {
	found := false
	for _, v := range uc.ledger.Visits() {
		if v.ID == id {
			found = true
			break
		}
	}
	if !found {
		return domain.ErrNotFound
	}

	err := uc.txRunner.Run(ctx, func(
		_ repository.BatchRepository,
		visitRepo repository.VisitRepository,
		dispensalRepo repository.DispensalRepository,
	) error {
		if err := dispensalRepo.DeleteByVisit(ctx, id); err != nil {
			return err
		}
		if err := visitRepo.DeleteItemsByVisit(ctx, id); err != nil {
			return err
		}
		return visitRepo.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("excluir atendimento: %w", err)
	}

	uc.ledger.RemoveVisit(id)
	return nil
}
