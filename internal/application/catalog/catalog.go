// Package catalog fornece as listas de referência usadas só para auxílio de
// digitação: nomes de medicamentos do programa e bairros do município.
package catalog

import (
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/HectorCardoso53/medcontrol/internal/application/ledger"
	"github.com/HectorCardoso53/medcontrol/internal/domain/inventory"
)

// Lista básica da farmácia do programa (REMUME resumida).
var baseMedications = []string{
	"Amoxicilina 500mg",
	"Captopril 25mg",
	"Dipirona 500mg",
	"Enalapril 10mg",
	"Hidroclorotiazida 25mg",
	"Ibuprofeno 600mg",
	"Losartana 50mg",
	"Metformina 850mg",
	"Omeprazol 20mg",
	"Paracetamol 750mg",
	"Sinvastatina 20mg",
}

var baseNeighborhoods = []string{
	"Aparecida",
	"Bela Vista",
	"Centro",
	"Cidade Nova",
	"Jardim Planalto",
	"Nova Esperança",
	"Santa Luzia",
	"São Benedito",
	"São Francisco",
	"Vila Operária",
}

// Catalog listas de referência ordenadas com colação pt-BR.
// O collator não é seguro para uso concorrente (SortStrings mexe em buffers
// internos); o mutex serializa as ordenações entre requisições.
type Catalog struct {
	ledger *ledger.Ledger

	mu       sync.Mutex
	collator *collate.Collator
}

// New constrói o catálogo.
func New(mirror *ledger.Ledger) *Catalog {
	return &Catalog{
		ledger:   mirror,
		collator: collate.New(language.BrazilianPortuguese),
	}
}

// Medications devolve a lista básica unida aos nomes já presentes no razão,
// sem repetição, em ordem alfabética pt-BR.
func (c *Catalog) Medications() []string {
	seen := make(map[string]bool, len(baseMedications))
	names := make([]string, 0, len(baseMedications))
	for _, name := range baseMedications {
		seen[name] = true
		names = append(names, name)
	}
	for _, name := range inventory.MedicationNames(c.ledger.Batches()) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	c.sortPTBR(names)
	return names
}

// Neighborhoods devolve a lista de bairros unida aos bairros já registrados
// em atendimentos, em ordem alfabética pt-BR.
func (c *Catalog) Neighborhoods() []string {
	seen := make(map[string]bool, len(baseNeighborhoods))
	names := make([]string, 0, len(baseNeighborhoods))
	for _, name := range baseNeighborhoods {
		seen[name] = true
		names = append(names, name)
	}
	for _, v := range c.ledger.Visits() {
		if v.Neighborhood != "" && !seen[v.Neighborhood] {
			seen[v.Neighborhood] = true
			names = append(names, v.Neighborhood)
		}
	}
	c.sortPTBR(names)
	return names
}

func (c *Catalog) sortPTBR(names []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.collator.SortStrings(names)
}
