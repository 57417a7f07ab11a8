package dto

// RecordDispensalRequest body para POST /api/dispensals (saída avulsa,
// sem atendimento associado).
type RecordDispensalRequest struct {
	Date       string `json:"date"` // AAAA-MM-DD
	Medication string `json:"medication"`
	BatchCode  string `json:"batch_code"`
	Quantity   int    `json:"quantity"`
	Reference  string `json:"reference,omitempty"`
}

// DispensalResponse representação de uma saída nas respostas.
type DispensalResponse struct {
	ID         string `json:"id"`
	VisitID    string `json:"visit_id,omitempty"`
	Date       string `json:"date"`
	Medication string `json:"medication"`
	BatchCode  string `json:"batch_code"`
	Quantity   int    `json:"quantity"`
	Reference  string `json:"reference,omitempty"`
}
