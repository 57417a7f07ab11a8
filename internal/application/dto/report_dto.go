package dto

import "github.com/shopspring/decimal"

// ShareRowDTO contagem e participação percentual de um rótulo (bairro).
type ShareRowDTO struct {
	Label   string          `json:"label"`
	Count   int             `json:"count"`
	Percent decimal.Decimal `json:"percent"` // arredondado a 1 casa
}

// QuantityShareRowDTO quantidade distribuída e participação de um medicamento.
type QuantityShareRowDTO struct {
	Label    string          `json:"label"`
	Quantity int             `json:"quantity"`
	Percent  decimal.Decimal `json:"percent"`
}

// BucketRowDTO contagem de atendimentos por balde de calendário
// (dia AAAA-MM-DD ou mês AAAA-MM).
type BucketRowDTO struct {
	Bucket string `json:"bucket"`
	Count  int    `json:"count"`
}

// RankRowDTO posição de um ranking top-N.
type RankRowDTO struct {
	Label string `json:"label"`
	Total int    `json:"total"`
}

// ReportSummaryDTO projeção agregada do razão para exibição.
type ReportSummaryDTO struct {
	TotalVisits      int                   `json:"total_visits"`
	TotalDistributed int                   `json:"total_distributed"`
	ByNeighborhood   []ShareRowDTO         `json:"by_neighborhood"`
	ByMedication     []QuantityShareRowDTO `json:"by_medication"`
	VisitsByDay      []BucketRowDTO        `json:"visits_by_day"`
	VisitsByMonth    []BucketRowDTO        `json:"visits_by_month"`
	TopPatients      []RankRowDTO          `json:"top_patients"`
	TopMedications   []RankRowDTO          `json:"top_medications"`
}
