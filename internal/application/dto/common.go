package dto

// ISODate é o layout das datas trafegadas pela API (ano-mês-dia).
const ISODate = "2006-01-02"

// DisplayDate é o layout de exibição pt-BR (dia/mês/ano).
const DisplayDate = "02/01/2006"

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Shortfall informa quantas unidades faltaram, nos erros de estoque insuficiente.
	Shortfall int `json:"shortfall,omitempty"`
}
