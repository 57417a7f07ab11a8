package visit_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HectorCardoso53/medcontrol/internal/application/dto"
	"github.com/HectorCardoso53/medcontrol/internal/application/ledger"
	"github.com/HectorCardoso53/medcontrol/internal/application/visit"
	"github.com/HectorCardoso53/medcontrol/internal/domain"
	"github.com/HectorCardoso53/medcontrol/internal/domain/entity"
	"github.com/HectorCardoso53/medcontrol/internal/domain/inventory"
	"github.com/HectorCardoso53/medcontrol/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	store    *memory.Store
	txRunner *memory.TxRunner
	mirror   *ledger.Ledger
}

func newFixture(t *testing.T, batches ...entity.Batch) *fixture {
	t.Helper()
	store := memory.NewStore()
	ctx := context.Background()
	for i := range batches {
		require.NoError(t, store.Batches().Create(ctx, &batches[i]))
	}
	store.Writes = 0

	mirror := ledger.New(store.Batches(), store.Visits(), store.Dispensals())
	require.NoError(t, mirror.Load(ctx))

	return &fixture{store: store, txRunner: memory.NewTxRunner(store), mirror: mirror}
}

func testBatch(med, code string, qty int, expiry time.Time) entity.Batch {
	return entity.Batch{
		ID:           med + "-" + code,
		Medication:   med,
		BatchCode:    code,
		ReceivedDate: time.Now(),
		ExpiryDate:   expiry,
		Quantity:     qty,
	}
}

func visitRequest(items ...dto.VisitItemRequest) dto.CreateVisitRequest {
	return dto.CreateVisitRequest{
		Date:         "2026-03-10",
		PatientName:  "Maria das Dores",
		Address:      "Rua das Flores, 12",
		Neighborhood: "Centro",
		Items:        items,
	}
}

func item(med, code string, qty int) dto.VisitItemRequest {
	return dto.VisitItemRequest{Medication: med, BatchCode: code, Quantity: qty}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateVisit_RegistraAtendimentoESaidas(t *testing.T) {
	f := newFixture(t, testBatch("Dipirona 500mg", "L1", 30, time.Date(2026, 12, 1, 0, 0, 0, 0, time.Local)))
	uc := visit.NewCreateVisitUseCase(f.txRunner, f.mirror)

	resp, err := uc.Create(context.Background(), visitRequest(item("Dipirona 500mg", "L1", 10)))
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "2026-03-10", resp.Date)
	assert.Equal(t, "Maria das Dores", resp.PatientName)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 10, resp.Items[0].Quantity)

	// Saída gerada com a chave do atendimento e referência legível
	dispensals := f.mirror.Dispensals()
	require.Len(t, dispensals, 1)
	assert.Equal(t, resp.ID, dispensals[0].VisitID)
	assert.Equal(t, "Maria das Dores - 10/03/2026", dispensals[0].Reference)

	batches, all := f.mirror.Snapshot()
	assert.Equal(t, 20, inventory.BalanceOfBatch(batches, all, "Dipirona 500mg", "L1"))
}

func TestCreateVisit_CamposObrigatorios(t *testing.T) {
	f := newFixture(t, testBatch("Dipirona 500mg", "L1", 30, time.Date(2026, 12, 1, 0, 0, 0, 0, time.Local)))
	uc := visit.NewCreateVisitUseCase(f.txRunner, f.mirror)

	cases := []struct {
		name string
		in   dto.CreateVisitRequest
	}{
		{"sem paciente", func() dto.CreateVisitRequest {
			r := visitRequest(item("Dipirona 500mg", "L1", 1))
			r.PatientName = ""
			return r
		}()},
		{"data inválida", func() dto.CreateVisitRequest {
			r := visitRequest(item("Dipirona 500mg", "L1", 1))
			r.Date = "10/03/2026"
			return r
		}()},
		{"sem itens", visitRequest()},
		{"quantidade zero", visitRequest(item("Dipirona 500mg", "L1", 0))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(context.Background(), tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Zero(t, f.store.Writes, "nenhuma escrita deve acontecer em atendimento rejeitado")
}

func TestCreateVisit_LoteInexistente(t *testing.T) {
	f := newFixture(t, testBatch("Dipirona 500mg", "L1", 30, time.Date(2026, 12, 1, 0, 0, 0, 0, time.Local)))
	uc := visit.NewCreateVisitUseCase(f.txRunner, f.mirror)

	_, err := uc.Create(context.Background(), visitRequest(item("Dipirona 500mg", "L9", 1)))
	assert.ErrorIs(t, err, domain.ErrBatchNotFound)
	assert.Zero(t, f.store.Writes)
}

func TestCreateVisit_EstoqueInsuficienteComDeficit(t *testing.T) {
	f := newFixture(t, testBatch("Dipirona 500mg", "L1", 5, time.Date(2026, 12, 1, 0, 0, 0, 0, time.Local)))
	uc := visit.NewCreateVisitUseCase(f.txRunner, f.mirror)

	_, err := uc.Create(context.Background(), visitRequest(item("Dipirona 500mg", "L1", 8)))

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 8, insufficient.Requested)
	assert.Equal(t, 5, insufficient.Available)
	assert.Equal(t, 3, insufficient.Shortfall())
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Zero(t, f.store.Writes)
}

// Um atendimento pode consumir de lotes distintos do mesmo medicamento,
// esgotando o mais antigo e seguindo para o próximo.
func TestCreateVisit_ItensEmDoisLotesDoMesmoMedicamento(t *testing.T) {
	f := newFixture(t,
		testBatch("Dipirona 500mg", "L1", 10, time.Date(2026, 6, 1, 0, 0, 0, 0, time.Local)),
		testBatch("Dipirona 500mg", "L2", 10, time.Date(2026, 12, 1, 0, 0, 0, 0, time.Local)),
	)
	uc := visit.NewCreateVisitUseCase(f.txRunner, f.mirror)

	resp, err := uc.Create(context.Background(), visitRequest(
		item("Dipirona 500mg", "L1", 10),
		item("Dipirona 500mg", "L2", 5),
	))
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)

	batches, dispensals := f.mirror.Snapshot()
	assert.Equal(t, 0, inventory.BalanceOfBatch(batches, dispensals, "Dipirona 500mg", "L1"))
	assert.Equal(t, 5, inventory.BalanceOfBatch(batches, dispensals, "Dipirona 500mg", "L2"))
	assert.Equal(t, 5, inventory.StockOf(batches, dispensals, "Dipirona 500mg"))
}

// Duas linhas do mesmo atendimento não podem gastar as mesmas unidades do lote.
func TestCreateVisit_ItensDoMesmoLoteNaoGastamDuasVezes(t *testing.T) {
	f := newFixture(t, testBatch("Dipirona 500mg", "L1", 10, time.Date(2026, 12, 1, 0, 0, 0, 0, time.Local)))
	uc := visit.NewCreateVisitUseCase(f.txRunner, f.mirror)

	_, err := uc.Create(context.Background(), visitRequest(
		item("Dipirona 500mg", "L1", 7),
		item("Dipirona 500mg", "L1", 7),
	))

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 3, insufficient.Available, "o segundo item enxerga o saldo já reservado pelo primeiro")
	assert.Zero(t, f.store.Writes)
}

// A primeira falha rejeita o atendimento inteiro, mesmo com itens anteriores válidos.
func TestCreateVisit_PrimeiraFalhaRejeitaTudo(t *testing.T) {
	f := newFixture(t,
		testBatch("Dipirona 500mg", "L1", 30, time.Date(2026, 12, 1, 0, 0, 0, 0, time.Local)),
		testBatch("Paracetamol 750mg", "P1", 30, time.Date(2026, 12, 1, 0, 0, 0, 0, time.Local)),
	)
	uc := visit.NewCreateVisitUseCase(f.txRunner, f.mirror)

	_, err := uc.Create(context.Background(), visitRequest(
		item("Dipirona 500mg", "L1", 5),
		item("Paracetamol 750mg", "P9", 1), // lote inexistente
	))

	assert.ErrorIs(t, err, domain.ErrBatchNotFound)
	assert.Zero(t, f.store.Writes)
	assert.Empty(t, f.mirror.Visits())
	assert.Empty(t, f.mirror.Dispensals())
}

func TestCreateVisit_FalhaDePersistenciaNaoTocaOEspelho(t *testing.T) {
	f := newFixture(t, testBatch("Dipirona 500mg", "L1", 30, time.Date(2026, 12, 1, 0, 0, 0, 0, time.Local)))
	f.txRunner.FailOn = errors.New("conexão perdida")
	uc := visit.NewCreateVisitUseCase(f.txRunner, f.mirror)

	_, err := uc.Create(context.Background(), visitRequest(item("Dipirona 500mg", "L1", 5)))
	require.Error(t, err)

	assert.Zero(t, f.store.Writes)
	assert.Empty(t, f.mirror.Visits())
	assert.Empty(t, f.mirror.Dispensals())
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteVisit_DevolveQuantidadesAoEstoque(t *testing.T) {
	f := newFixture(t, testBatch("Dipirona 500mg", "L1", 30, time.Date(2026, 12, 1, 0, 0, 0, 0, time.Local)))
	createUC := visit.NewCreateVisitUseCase(f.txRunner, f.mirror)
	deleteUC := visit.NewDeleteVisitUseCase(f.txRunner, f.mirror)

	resp, err := createUC.Create(context.Background(), visitRequest(item("Dipirona 500mg", "L1", 10)))
	require.NoError(t, err)

	batches, dispensals := f.mirror.Snapshot()
	require.Equal(t, 20, inventory.BalanceOfBatch(batches, dispensals, "Dipirona 500mg", "L1"))

	require.NoError(t, deleteUC.Delete(context.Background(), resp.ID))

	assert.Empty(t, f.mirror.Visits())
	assert.Empty(t, f.mirror.Dispensals())
	batches, dispensals = f.mirror.Snapshot()
	assert.Equal(t, 30, inventory.BalanceOfBatch(batches, dispensals, "Dipirona 500mg", "L1"))
}

func TestDeleteVisit_Inexistente(t *testing.T) {
	f := newFixture(t)
	deleteUC := visit.NewDeleteVisitUseCase(f.txRunner, f.mirror)

	err := deleteUC.Delete(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Saída avulsa
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordDispensal_SaidaAvulsa(t *testing.T) {
	f := newFixture(t, testBatch("Dipirona 500mg", "L1", 30, time.Date(2026, 12, 1, 0, 0, 0, 0, time.Local)))
	uc := visit.NewRecordDispensalUseCase(f.store.Dispensals(), f.mirror)

	resp, err := uc.Record(context.Background(), dto.RecordDispensalRequest{
		Date:       "2026-03-10",
		Medication: "Dipirona 500mg",
		BatchCode:  "L1",
		Quantity:   4,
		Reference:  "Perda por avaria",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.VisitID)
	assert.Equal(t, "Perda por avaria", resp.Reference)

	batches, dispensals := f.mirror.Snapshot()
	assert.Equal(t, 26, inventory.BalanceOfBatch(batches, dispensals, "Dipirona 500mg", "L1"))
}

func TestRecordDispensal_SaldoInsuficiente(t *testing.T) {
	f := newFixture(t, testBatch("Dipirona 500mg", "L1", 3, time.Date(2026, 12, 1, 0, 0, 0, 0, time.Local)))
	uc := visit.NewRecordDispensalUseCase(f.store.Dispensals(), f.mirror)

	_, err := uc.Record(context.Background(), dto.RecordDispensalRequest{
		Date:       "2026-03-10",
		Medication: "Dipirona 500mg",
		BatchCode:  "L1",
		Quantity:   5,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}
