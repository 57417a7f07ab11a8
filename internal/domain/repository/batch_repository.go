package repository

import (
	"context"

	"github.com/HectorCardoso53/medcontrol/internal/domain/entity"
)

// BatchRepository porta de persistência para lotes recebidos.
// Lotes não têm update: são criados no recebimento e só saem por exclusão.
// Consultas por ID ficam no espelho do razão, não na porta.
type BatchRepository interface {
	Create(ctx context.Context, batch *entity.Batch) error
	// ListAll devolve todos os lotes ordenados por data de recebimento descendente.
	ListAll(ctx context.Context) ([]entity.Batch, error)
	Delete(ctx context.Context, id string) error
}
