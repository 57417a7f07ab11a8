package catalog_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HectorCardoso53/medcontrol/internal/application/catalog"
	"github.com/HectorCardoso53/medcontrol/internal/application/ledger"
	"github.com/HectorCardoso53/medcontrol/internal/domain/entity"
	"github.com/HectorCardoso53/medcontrol/internal/infrastructure/memory"
)

func newCatalog(t *testing.T, batches []entity.Batch, visits []entity.Visit) *catalog.Catalog {
	t.Helper()
	store := memory.NewStore()
	ctx := context.Background()
	for i := range batches {
		require.NoError(t, store.Batches().Create(ctx, &batches[i]))
	}
	for i := range visits {
		require.NoError(t, store.Visits().Create(ctx, &visits[i]))
	}

	mirror := ledger.New(store.Batches(), store.Visits(), store.Dispensals())
	require.NoError(t, mirror.Load(ctx))
	return catalog.New(mirror)
}

func TestMedications_UneBaseComRazaoSemRepeticao(t *testing.T) {
	cat := newCatalog(t, []entity.Batch{
		{ID: "b1", Medication: "Dipirona 500mg", BatchCode: "L1", Quantity: 10, ExpiryDate: time.Now()},
		{ID: "b2", Medication: "Azitromicina 500mg", BatchCode: "Z1", Quantity: 5, ExpiryDate: time.Now()},
	}, nil)

	meds := cat.Medications()
	assert.Contains(t, meds, "Azitromicina 500mg")
	assert.Contains(t, meds, "Dipirona 500mg")

	count := 0
	for _, m := range meds {
		if m == "Dipirona 500mg" {
			count++
		}
	}
	assert.Equal(t, 1, count, "nome presente na base e no razão aparece uma vez")
	// Colação pt-BR: Azitromicina antes de Captopril
	assert.Less(t, indexOf(meds, "Azitromicina 500mg"), indexOf(meds, "Captopril 25mg"))
}

func TestNeighborhoods_IncluiBairrosDeAtendimentos(t *testing.T) {
	cat := newCatalog(t, nil, []entity.Visit{
		{ID: "v1", Date: time.Now(), PatientName: "Ana", Neighborhood: "Alto da Serra"},
	})

	hoods := cat.Neighborhoods()
	assert.Contains(t, hoods, "Alto da Serra")
	assert.Contains(t, hoods, "Centro")
}

// Requisições simultâneas de catálogo não podem corromper a ordenação nem
// derrubar a sessão. Rodar com -race.
func TestCatalog_LeiturasConcorrentes(t *testing.T) {
	cat := newCatalog(t, []entity.Batch{
		{ID: "b1", Medication: "Dipirona 500mg", BatchCode: "L1", Quantity: 10, ExpiryDate: time.Now()},
	}, []entity.Visit{
		{ID: "v1", Date: time.Now(), PatientName: "Ana", Neighborhood: "Alto da Serra"},
	})

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				assert.NotEmpty(t, cat.Medications())
				assert.NotEmpty(t, cat.Neighborhoods())
			}
		}()
	}
	wg.Wait()
}

func indexOf(list []string, want string) int {
	for i, s := range list {
		if s == want {
			return i
		}
	}
	return -1
}
