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

// CreateVisitUseCase registra um atendimento e as saídas de cada item em uma
// única transação. A validação acontece antes, item a item na ordem digitada,
// e a primeira falha rejeita o atendimento inteiro sem nenhuma escrita.
type CreateVisitUseCase struct {
	txRunner TxRunner
	ledger   *ledger.Ledger
}

// NewCreateVisitUseCase constrói o caso de uso.
func NewCreateVisitUseCase(txRunner TxRunner, mirror *ledger.Ledger) *CreateVisitUseCase {
	return &CreateVisitUseCase{txRunner: txRunner, ledger: mirror}
}

type pairKey struct {
	medication string
	batchCode  string
}

// Create valida e commita o atendimento.
//
// Validação por item, na ordem de entrada:
//  1. campos ausentes ou quantidade não positiva → ErrInvalidInput
//  2. par (medicamento, lote) inexistente → ErrBatchNotFound
//  3. quantidade acima do saldo disponível → InsufficientStockError (com déficit)
//
// O saldo disponível desconta o que itens anteriores do mesmo atendimento já
// reservaram do mesmo lote, para que duas linhas não gastem as mesmas unidades.
func (uc *CreateVisitUseCase) Create(ctx context.Context, in dto.CreateVisitRequest) (*dto.VisitResponse, error) {
	visitDate, err := time.ParseInLocation(dto.ISODate, in.Date, time.Local)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.PatientName == "" || in.Address == "" || in.Neighborhood == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	batches, dispensals := uc.ledger.Snapshot()
	claimed := make(map[pairKey]int)

	for _, item := range in.Items {
		if item.Medication == "" || item.BatchCode == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if !batchExists(batches, item.Medication, item.BatchCode) {
			return nil, domain.ErrBatchNotFound
		}
		key := pairKey{item.Medication, item.BatchCode}
		available := inventory.BalanceOfBatch(batches, dispensals, item.Medication, item.BatchCode) - claimed[key]
		if item.Quantity > available {
			return nil, &domain.InsufficientStockError{
				Medication: item.Medication,
				BatchCode:  item.BatchCode,
				Requested:  item.Quantity,
				Available:  available,
			}
		}
		claimed[key] += item.Quantity
	}

	now := time.Now()
	visit := entity.Visit{
		ID:           uuid.New().String(),
		Date:         visitDate,
		PatientName:  in.PatientName,
		IDDocument:   in.IDDocument,
		HealthCardID: in.HealthCardID,
		Contact:      in.Contact,
		Address:      in.Address,
		Neighborhood: in.Neighborhood,
		CreatedAt:    now,
	}
	reference := fmt.Sprintf("%s - %s", in.PatientName, visitDate.Format(dto.DisplayDate))

	newDispensals := make([]entity.Dispensal, 0, len(in.Items))
	for _, item := range in.Items {
		visit.Items = append(visit.Items, entity.VisitItem{
			ID:         uuid.New().String(),
			VisitID:    visit.ID,
			Medication: item.Medication,
			BatchCode:  item.BatchCode,
			Quantity:   item.Quantity,
		})
		newDispensals = append(newDispensals, entity.Dispensal{
			ID:         uuid.New().String(),
			VisitID:    visit.ID,
			Date:       visitDate,
			Medication: item.Medication,
			BatchCode:  item.BatchCode,
			Quantity:   item.Quantity,
			Reference:  reference,
			CreatedAt:  now,
		})
	}

	// Atendimento, itens e saídas na mesma transação: ou grava tudo, ou nada.
	err = uc.txRunner.Run(ctx, func(
		_ repository.BatchRepository,
		visitRepo repository.VisitRepository,
		dispensalRepo repository.DispensalRepository,
	) error {
		if err := visitRepo.Create(ctx, &visit); err != nil {
			return err
		}
		for i := range visit.Items {
			if err := visitRepo.CreateItem(ctx, &visit.Items[i]); err != nil {
				return err
			}
		}
		for i := range newDispensals {
			if err := dispensalRepo.Create(ctx, &newDispensals[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("commit do atendimento: %w", err)
	}

	// Espelho atualizado só depois do commit; consultas seguintes da sessão já
	// enxergam os novos saldos.
	uc.ledger.AddVisit(visit, newDispensals)

	resp := toVisitResponse(&visit)
	return &resp, nil
}

func batchExists(batches []entity.Batch, medication, batchCode string) bool {
	for i := range batches {
		if batches[i].Medication == medication && batches[i].BatchCode == batchCode {
			return true
		}
	}
	return false
}

func toVisitResponse(v *entity.Visit) dto.VisitResponse {
	resp := dto.VisitResponse{
		ID:           v.ID,
		Date:         v.Date.Format(dto.ISODate),
		PatientName:  v.PatientName,
		IDDocument:   v.IDDocument,
		HealthCardID: v.HealthCardID,
		Contact:      v.Contact,
		Address:      v.Address,
		Neighborhood: v.Neighborhood,
		CreatedAt:    v.CreatedAt.Format(time.RFC3339),
	}
	for _, item := range v.Items {
		resp.Items = append(resp.Items, dto.VisitItemResponse{
			ID:         item.ID,
			Medication: item.Medication,
			BatchCode:  item.BatchCode,
			Quantity:   item.Quantity,
		})
	}
	return resp
}
