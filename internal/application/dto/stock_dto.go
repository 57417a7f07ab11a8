package dto

// StockRowDTO uma linha da tabela de estoque por medicamento.
type StockRowDTO struct {
	Medication       string `json:"medication"`
	TotalReceived    int    `json:"total_received"`
	TotalDistributed int    `json:"total_distributed"`
	Balance          int    `json:"balance"`
	NearestExpiry    string `json:"nearest_expiry,omitempty"` // AAAA-MM-DD
	DaysUntilExpiry  *int   `json:"days_until_expiry,omitempty"`
	StockLevel       string `json:"stock_level"`   // OK, LOW, OUT
	ExpiryStatus     string `json:"expiry_status"` // OK, EXPIRING, EXPIRED
	// Badge único com prioridade de exibição (o pior vence), para a UI.
	Status string `json:"status"`
}

// StockSummaryDTO cartões de resumo do estoque.
type StockSummaryDTO struct {
	TotalUnits      int `json:"total_units"`
	LowStockCount   int `json:"low_stock_count"`
	ExpiringCount   int `json:"expiring_count"`
	MedicationCount int `json:"medication_count"`
}
