package repository

import (
	"context"

	"github.com/HectorCardoso53/medcontrol/internal/domain/entity"
)

// VisitRepository porta de persistência para atendimentos e seus itens.
type VisitRepository interface {
	Create(ctx context.Context, visit *entity.Visit) error
	CreateItem(ctx context.Context, item *entity.VisitItem) error
	// ListAll devolve os atendimentos (com itens) ordenados por data descendente.
	ListAll(ctx context.Context) ([]entity.Visit, error)
	Delete(ctx context.Context, id string) error
	DeleteItemsByVisit(ctx context.Context, visitID string) error
}
