package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/HectorCardoso53/medcontrol/internal/application/stock"
	"github.com/HectorCardoso53/medcontrol/internal/application/visit"
	"github.com/HectorCardoso53/medcontrol/internal/domain/repository"
)

var (
	_ visit.TxRunner = (*TxRunner)(nil)
	_ stock.TxRunner = (*TxRunner)(nil)
)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com repositórios atados a ela e faz
// Commit; qualquer erro desfaz tudo via Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	batchRepo repository.BatchRepository,
	visitRepo repository.VisitRepository,
	dispensalRepo repository.DispensalRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batchRepo := NewBatchRepository(tx)
	visitRepo := NewVisitRepository(tx)
	dispensalRepo := NewDispensalRepository(tx)

	if err := fn(batchRepo, visitRepo, dispensalRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
