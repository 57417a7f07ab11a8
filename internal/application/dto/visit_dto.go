package dto

// VisitItemRequest uma linha do atendimento: lote escolhido explicitamente
// pelo operador.
type VisitItemRequest struct {
	Medication string `json:"medication"`
	BatchCode  string `json:"batch_code"`
	Quantity   int    `json:"quantity"`
}

// CreateVisitRequest body para POST /api/visits.
type CreateVisitRequest struct {
	Date         string             `json:"date"` // AAAA-MM-DD
	PatientName  string             `json:"patient_name"`
	IDDocument   string             `json:"id_document,omitempty"`
	HealthCardID string             `json:"health_card_id,omitempty"`
	Contact      string             `json:"contact,omitempty"`
	Address      string             `json:"address"`
	Neighborhood string             `json:"neighborhood"`
	Items        []VisitItemRequest `json:"items"`
}

// VisitItemResponse linha do atendimento nas respostas.
type VisitItemResponse struct {
	ID         string `json:"id"`
	Medication string `json:"medication"`
	BatchCode  string `json:"batch_code"`
	Quantity   int    `json:"quantity"`
}

// VisitResponse representação de um atendimento nas respostas.
type VisitResponse struct {
	ID           string              `json:"id"`
	Date         string              `json:"date"`
	PatientName  string              `json:"patient_name"`
	IDDocument   string              `json:"id_document,omitempty"`
	HealthCardID string              `json:"health_card_id,omitempty"`
	Contact      string              `json:"contact,omitempty"`
	Address      string              `json:"address"`
	Neighborhood string              `json:"neighborhood"`
	Items        []VisitItemResponse `json:"items"`
	CreatedAt    string              `json:"created_at"`
}
