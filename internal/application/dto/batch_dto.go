package dto

// RegisterBatchRequest body para POST /api/batches.
type RegisterBatchRequest struct {
	Code         string `json:"code"`
	Medication   string `json:"medication"`
	BatchCode    string `json:"batch_code"`
	ReceivedDate string `json:"received_date"` // AAAA-MM-DD
	ExpiryDate   string `json:"expiry_date"`   // AAAA-MM-DD
	Quantity     int    `json:"quantity"`
}

// BatchResponse representação de um lote nas respostas.
type BatchResponse struct {
	ID           string `json:"id"`
	Code         string `json:"code"`
	Medication   string `json:"medication"`
	BatchCode    string `json:"batch_code"`
	ReceivedDate string `json:"received_date"`
	ExpiryDate   string `json:"expiry_date"`
	Quantity     int    `json:"quantity"`
	Balance      int    `json:"balance"`
}
