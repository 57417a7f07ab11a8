package entity

import "time"

// Batch representa um lote recebido de um medicamento. Imutável após o cadastro;
// o consumo é derivado das saídas, nunca gravado no lote.
type Batch struct {
	ID           string
	Code         string // código do item no almoxarifado
	Medication   string // descrição/nome do medicamento
	BatchCode    string // identificação do lote do fabricante
	ReceivedDate time.Time
	ExpiryDate   time.Time
	Quantity     int // quantidade recebida
	CreatedAt    time.Time
}
