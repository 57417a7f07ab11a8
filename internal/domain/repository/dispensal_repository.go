package repository

import (
	"context"

	"github.com/HectorCardoso53/medcontrol/internal/domain/entity"
)

// DispensalRepository porta de persistência para saídas de estoque.
type DispensalRepository interface {
	Create(ctx context.Context, dispensal *entity.Dispensal) error
	// ListAll devolve as saídas ordenadas por data descendente.
	ListAll(ctx context.Context) ([]entity.Dispensal, error)
	// DeleteByVisit remove as saídas geradas por um atendimento (chave visit_id).
	DeleteByVisit(ctx context.Context, visitID string) error
	// DeleteByBatch remove as saídas do par (medicamento, lote); cascata da
	// exclusão de lote, sempre restrita ao par, nunca só ao medicamento.
	DeleteByBatch(ctx context.Context, medication, batchCode string) error
}
