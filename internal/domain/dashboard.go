package domain

import "time"

// PipelineData resume o pipeline de vendas de um workspace
type PipelineData struct {
	OpenDealCount       int     `json:"open_deal_count"`
	OpenDealValue       float64 `json:"open_deal_value"`
	HighProbabilityDeal int     `json:"high_probability_count"` // probabilidade >= 60
	AverageProbability  float64 `json:"average_probability"`
	NextClosingDeal     *Deal   `json:"next_closing_deal,omitempty"`
	TopDeals            []*Deal `json:"top_deals"` // top 3 por valor, desempate pela ordem de entrada
}

// MarketingData resume as campanhas de marketing de um workspace
type MarketingData struct {
	ActiveCount      int                `json:"active_count"`
	PlannedCount     int                `json:"planned_count"`
	OverdueCount     int                `json:"overdue_count"`
	UpcomingCampaign *MarketingCampaign `json:"upcoming_campaign,omitempty"`
}

// FinancialData compara o snapshot financeiro mais recente com o anterior e
// resume os recebíveis em aberto do workspace
type FinancialData struct {
	Latest            *FinancialLog `json:"latest,omitempty"`
	Previous          *FinancialLog `json:"previous,omitempty"`
	MRRDeltaPercent   float64       `json:"mrr_delta_percent"`
	GMVDelta          float64       `json:"gmv_delta"`
	SignupDelta       int           `json:"signup_delta"`
	MRRDeltaFormatted string        `json:"mrr_delta_formatted"` // ex.: "+$500"
	SignupFormatted   string        `json:"signup_delta_formatted"`

	// Recebíveis: transações pendentes e vencidas ainda não pagas
	PendingReceivableCount int     `json:"pending_receivable_count"`
	PendingReceivableValue float64 `json:"pending_receivable_value"`
	OverdueReceivableCount int     `json:"overdue_receivable_count"`
	OverdueReceivableValue float64 `json:"overdue_receivable_value"`
}

// DashboardMetrics é o agregado completo exibido no dashboard de um workspace
type DashboardMetrics struct {
	WorkspaceID string         `json:"workspace_id"`
	Pipeline    *PipelineData  `json:"pipeline"`
	Marketing   *MarketingData `json:"marketing"`
	Financial   *FinancialData `json:"financial"`
	GeneratedAt time.Time      `json:"generated_at"`
}
