package entity

import "time"

// Visit representa um atendimento a um paciente com um ou mais itens entregues.
// Criado junto com uma saída por item; nunca alterado depois.
type Visit struct {
	ID           string
	Date         time.Time
	PatientName  string
	IDDocument   string // CPF/RG, opcional
	HealthCardID string // cartão SUS, opcional
	Contact      string // opcional
	Address      string
	Neighborhood string
	Items        []VisitItem
	CreatedAt    time.Time
}

// VisitItem é uma linha do atendimento: medicamento, lote escolhido e quantidade.
type VisitItem struct {
	ID         string
	VisitID    string
	Medication string
	BatchCode  string
	Quantity   int
}
