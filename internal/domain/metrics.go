package domain

import (
	"encoding/json"
	"math"
	"time"
)

// Granularidades suportadas pelos rollups de fluxo de caixa
const (
	GranularityMonthly   = "monthly"
	GranularityQuarterly = "quarterly"
)

// CashFlowPoint é um ponto da série de fluxo de caixa agregada por período.
// Period é "YYYY-MM" no modo mensal ou "Q{1-4} YYYY" no modo trimestral.
type CashFlowPoint struct {
	Period      string  `json:"period"`
	Revenue     float64 `json:"revenue"`
	Expenses    float64 `json:"expenses"`
	NetCashFlow float64 `json:"net_cash_flow"`
}

// RevenueRollupItem é um grupo do rollup de receita por categoria ou produto.
// Percentage é a participação do grupo no total (0 quando o total é 0).
type RevenueRollupItem struct {
	Key        string  `json:"key"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// SaaSMetrics reúne as métricas derivadas de um workspace para um período mensal.
// LTVCACRatio e CACPaybackMonths são ponteiros: nil significa "N/A" (CAC ou MRR zero),
// nunca NaN ou Infinity vazando para a serialização.
type SaaSMetrics struct {
	Period           string   `json:"period"` // YYYY-MM
	MRR              float64  `json:"mrr"`
	ARR              float64  `json:"arr"`
	BurnRate         float64  `json:"burn_rate"`
	RunwayMonths     float64  `json:"runway_months"` // math.Inf(1) vira RunwayUnlimited no JSON
	RunwayUnlimited  bool     `json:"runway_unlimited"`
	GrowthRate       float64  `json:"growth_rate"`
	CAC              float64  `json:"cac"`
	LTV              float64  `json:"ltv"`
	LTVCACRatio      *float64 `json:"ltv_cac_ratio,omitempty"`
	CACPaybackMonths *float64 `json:"cac_payback_months,omitempty"`
	ProfitMargin     float64  `json:"profit_margin"`
	RuleOf40         float64  `json:"rule_of_40"`
}

// saasMetricsJSON espelha SaaSMetrics com runway serializável: runway infinito
// (burn rate zero) vira null + runway_unlimited, já que JSON não representa Inf
type saasMetricsJSON struct {
	Period           string   `json:"period"`
	MRR              float64  `json:"mrr"`
	ARR              float64  `json:"arr"`
	BurnRate         float64  `json:"burn_rate"`
	RunwayMonths     *float64 `json:"runway_months"`
	RunwayUnlimited  bool     `json:"runway_unlimited"`
	GrowthRate       float64  `json:"growth_rate"`
	CAC              float64  `json:"cac"`
	LTV              float64  `json:"ltv"`
	LTVCACRatio      *float64 `json:"ltv_cac_ratio,omitempty"`
	CACPaybackMonths *float64 `json:"cac_payback_months,omitempty"`
	ProfitMargin     float64  `json:"profit_margin"`
	RuleOf40         float64  `json:"rule_of_40"`
}

func (m SaaSMetrics) MarshalJSON() ([]byte, error) {
	out := saasMetricsJSON{
		Period:           m.Period,
		MRR:              m.MRR,
		ARR:              m.ARR,
		BurnRate:         m.BurnRate,
		RunwayUnlimited:  m.RunwayUnlimited,
		GrowthRate:       m.GrowthRate,
		CAC:              m.CAC,
		LTV:              m.LTV,
		LTVCACRatio:      m.LTVCACRatio,
		CACPaybackMonths: m.CACPaybackMonths,
		ProfitMargin:     m.ProfitMargin,
		RuleOf40:         m.RuleOf40,
	}

	if !math.IsInf(m.RunwayMonths, 1) {
		runway := m.RunwayMonths
		out.RunwayMonths = &runway
	}

	return json.Marshal(out)
}

func (m *SaaSMetrics) UnmarshalJSON(data []byte) error {
	var in saasMetricsJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	m.Period = in.Period
	m.MRR = in.MRR
	m.ARR = in.ARR
	m.BurnRate = in.BurnRate
	m.RunwayUnlimited = in.RunwayUnlimited
	m.GrowthRate = in.GrowthRate
	m.CAC = in.CAC
	m.LTV = in.LTV
	m.LTVCACRatio = in.LTVCACRatio
	m.CACPaybackMonths = in.CACPaybackMonths
	m.ProfitMargin = in.ProfitMargin
	m.RuleOf40 = in.RuleOf40

	if in.RunwayMonths != nil {
		m.RunwayMonths = *in.RunwayMonths
	} else if in.RunwayUnlimited {
		m.RunwayMonths = math.Inf(1)
	}

	return nil
}

// Níveis dos sinais de saúde
const (
	HealthLevelSuccess = "success"
	HealthLevelWarning = "warning"
)

// HealthSignal é uma classificação independente de uma métrica contra seus limiares.
// Não existe pontuação composta nem precedência: todos os sinais aplicáveis são
// exibidos simultaneamente.
type HealthSignal struct {
	Metric  string `json:"metric"`
	Level   string `json:"level"`
	Message string `json:"message"`
}

// MetricsSnapshot é o registro mensal persistido das métricas derivadas de um
// workspace, gerado pelo job de sincronização
type MetricsSnapshot struct {
	ID          int64        `json:"id"`
	WorkspaceID string       `json:"workspace_id"`
	Period      string       `json:"period"` // YYYY-MM
	Metrics     *SaaSMetrics `json:"metrics"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// AvailablePeriods representa os períodos mensais com snapshots disponíveis
type AvailablePeriods struct {
	Periods []string `json:"periods"` // Lista de períodos no formato YYYY-MM
	Years   []string `json:"years"`   // Lista de anos únicos disponíveis
	Months  []string `json:"months"`  // Lista de meses únicos disponíveis
}
