package postgres

import (
	"context"
	"fmt"

	"github.com/HectorCardoso53/medcontrol/internal/domain"
	"github.com/HectorCardoso53/medcontrol/internal/domain/entity"
	"github.com/HectorCardoso53/medcontrol/internal/domain/repository"
)

var _ repository.VisitRepository = (*VisitRepo)(nil)

// VisitRepo implementação de VisitRepository sobre PostgreSQL (pool ou tx).
type VisitRepo struct {
	q Querier
}

// NewVisitRepository constrói o adaptador de atendimentos. Passar pool ou tx.
func NewVisitRepository(q Querier) *VisitRepo {
	return &VisitRepo{q: q}
}

// Create persiste o cabeçalho do atendimento. Itens via CreateItem.
func (r *VisitRepo) Create(ctx context.Context, visit *entity.Visit) error {
	query := `
		INSERT INTO visits (id, date, patient_name, id_document, health_card_id, contact, address, neighborhood, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		visit.ID, visit.Date, visit.PatientName,
		nullable(visit.IDDocument), nullable(visit.HealthCardID), nullable(visit.Contact),
		visit.Address, visit.Neighborhood, visit.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert visit: %w", err)
	}
	return nil
}

// CreateItem persiste uma linha do atendimento.
func (r *VisitRepo) CreateItem(ctx context.Context, item *entity.VisitItem) error {
	query := `
		INSERT INTO visit_items (id, visit_id, medication, batch, quantity)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, item.ID, item.VisitID, item.Medication, item.BatchCode, item.Quantity)
	if err != nil {
		return fmt.Errorf("insert visit item: %w", err)
	}
	return nil
}

// ListAll devolve os atendimentos com itens, data mais recente primeiro.
func (r *VisitRepo) ListAll(ctx context.Context) ([]entity.Visit, error) {
	query := `
		SELECT id, date, patient_name, COALESCE(id_document, ''), COALESCE(health_card_id, ''),
		       COALESCE(contact, ''), address, neighborhood, created_at
		FROM visits ORDER BY date DESC, created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list visits: %w", err)
	}
	defer rows.Close()

	var visits []entity.Visit
	index := make(map[string]int)
	for rows.Next() {
		var v entity.Visit
		if err := rows.Scan(
			&v.ID, &v.Date, &v.PatientName, &v.IDDocument, &v.HealthCardID,
			&v.Contact, &v.Address, &v.Neighborhood, &v.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan visit: %w", err)
		}
		index[v.ID] = len(visits)
		visits = append(visits, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	itemRows, err := r.q.Query(ctx, `SELECT id, visit_id, medication, batch, quantity FROM visit_items`)
	if err != nil {
		return nil, fmt.Errorf("list visit items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item entity.VisitItem
		if err := itemRows.Scan(&item.ID, &item.VisitID, &item.Medication, &item.BatchCode, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan visit item: %w", err)
		}
		if i, ok := index[item.VisitID]; ok {
			visits[i].Items = append(visits[i].Items, item)
		}
	}
	return visits, itemRows.Err()
}

// Delete remove o cabeçalho do atendimento.
func (r *VisitRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM visits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete visit: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteItemsByVisit remove as linhas do atendimento.
func (r *VisitRepo) DeleteItemsByVisit(ctx context.Context, visitID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM visit_items WHERE visit_id = $1`, visitID)
	if err != nil {
		return fmt.Errorf("delete visit items: %w", err)
	}
	return nil
}

// nullable converte string vazia em NULL para colunas opcionais.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
