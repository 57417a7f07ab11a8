package postgres

import (
	"context"
	"fmt"

	"github.com/HectorCardoso53/medcontrol/internal/domain/entity"
	"github.com/HectorCardoso53/medcontrol/internal/domain/repository"
)

var _ repository.DispensalRepository = (*DispensalRepo)(nil)

// DispensalRepo implementação de DispensalRepository sobre PostgreSQL (pool ou tx).
type DispensalRepo struct {
	q Querier
}

// NewDispensalRepository constrói o adaptador de saídas. Passar pool ou tx.
func NewDispensalRepository(q Querier) *DispensalRepo {
	return &DispensalRepo{q: q}
}

// Create persiste uma saída. VisitID vazio grava NULL (saída avulsa).
func (r *DispensalRepo) Create(ctx context.Context, dispensal *entity.Dispensal) error {
	query := `
		INSERT INTO dispensals (id, visit_id, date, medication, batch, quantity, reference, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	visitID := (*string)(nil)
	if dispensal.VisitID != "" {
		visitID = &dispensal.VisitID
	}
	_, err := r.q.Exec(ctx, query,
		dispensal.ID, visitID, dispensal.Date, dispensal.Medication,
		dispensal.BatchCode, dispensal.Quantity, dispensal.Reference, dispensal.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert dispensal: %w", err)
	}
	return nil
}

// ListAll devolve as saídas, data mais recente primeiro.
func (r *DispensalRepo) ListAll(ctx context.Context) ([]entity.Dispensal, error) {
	query := `
		SELECT id, COALESCE(visit_id::text, ''), date, medication, batch, quantity, COALESCE(reference, ''), created_at
		FROM dispensals ORDER BY date DESC, created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list dispensals: %w", err)
	}
	defer rows.Close()

	var dispensals []entity.Dispensal
	for rows.Next() {
		var d entity.Dispensal
		if err := rows.Scan(
			&d.ID, &d.VisitID, &d.Date, &d.Medication,
			&d.BatchCode, &d.Quantity, &d.Reference, &d.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan dispensal: %w", err)
		}
		dispensals = append(dispensals, d)
	}
	return dispensals, rows.Err()
}

// DeleteByVisit remove as saídas geradas por um atendimento.
func (r *DispensalRepo) DeleteByVisit(ctx context.Context, visitID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM dispensals WHERE visit_id = $1`, visitID)
	if err != nil {
		return fmt.Errorf("delete dispensals by visit: %w", err)
	}
	return nil
}

// DeleteByBatch remove as saídas do par (medicamento, lote).
func (r *DispensalRepo) DeleteByBatch(ctx context.Context, medication, batchCode string) error {
	_, err := r.q.Exec(ctx,
		`DELETE FROM dispensals WHERE medication = $1 AND batch = $2`,
		medication, batchCode,
	)
	if err != nil {
		return fmt.Errorf("delete dispensals by batch: %w", err)
	}
	return nil
}
