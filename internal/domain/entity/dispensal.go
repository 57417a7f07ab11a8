package entity

import "time"

// Dispensal representa uma saída de estoque contra um lote específico.
// Gerada pelo fluxo de atendimento (com VisitID) ou como movimento avulso.
type Dispensal struct {
	ID         string
	VisitID    string // vazio para saídas avulsas
	Date       time.Time
	Medication string
	BatchCode  string
	Quantity   int
	Reference  string // texto livre para exibição, em geral o nome do paciente
	CreatedAt  time.Time
}
