package visit

import (
	"context"

	"github.com/HectorCardoso53/medcontrol/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação do armazenamento,
// passando repositórios atados a essa transação. Garante que atendimento,
// itens e saídas sejam gravados (ou descartados) juntos; elimina a janela de
// atendimento sem saídas do desenho anterior.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		batchRepo repository.BatchRepository,
		visitRepo repository.VisitRepository,
		dispensalRepo repository.DispensalRepository,
	) error) error
}
