package postgres

import (
	"context"
	"fmt"

	"github.com/HectorCardoso53/medcontrol/internal/domain"
	"github.com/HectorCardoso53/medcontrol/internal/domain/entity"
	"github.com/HectorCardoso53/medcontrol/internal/domain/repository"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)

// BatchRepo implementação de BatchRepository sobre PostgreSQL (pool ou tx).
type BatchRepo struct {
	q Querier
}

// NewBatchRepository constrói o adaptador de lotes. Passar pool ou tx (Querier).
func NewBatchRepository(q Querier) *BatchRepo {
	return &BatchRepo{q: q}
}

// Create persiste um lote recebido. O par (medicamento, lote) é único.
func (r *BatchRepo) Create(ctx context.Context, batch *entity.Batch) error {
	query := `
		INSERT INTO batches (id, code, description, batch_label, received_date, expiry_date, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		batch.ID, batch.Code, batch.Medication, batch.BatchCode,
		batch.ReceivedDate, batch.ExpiryDate, batch.Quantity, batch.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert batch: %w", err)
	}
	return nil
}

// ListAll devolve todos os lotes, recebimento mais recente primeiro.
func (r *BatchRepo) ListAll(ctx context.Context) ([]entity.Batch, error) {
	query := `
		SELECT id, code, description, batch_label, received_date, expiry_date, quantity, created_at
		FROM batches ORDER BY received_date DESC, created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()

	var batches []entity.Batch
	for rows.Next() {
		var b entity.Batch
		if err := rows.Scan(
			&b.ID, &b.Code, &b.Medication, &b.BatchCode,
			&b.ReceivedDate, &b.ExpiryDate, &b.Quantity, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

// Delete remove um lote por ID.
func (r *BatchRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM batches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete batch: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
