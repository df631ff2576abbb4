package domain

import "time"

// Estágios fechados de um negócio. Qualquer outro estágio é considerado aberto.
const (
	DealStageClosedWon  = "closed_won"
	DealStageClosedLost = "closed_lost"
)

// Deal representa um negócio do pipeline de vendas de um workspace
type Deal struct {
	ID                string     `json:"id"`
	WorkspaceID       string     `json:"workspace_id"`
	Name              string     `json:"name"`
	Stage             string     `json:"stage"`
	Value             *float64   `json:"value,omitempty"`
	TotalValue        *float64   `json:"total_value,omitempty"`
	Probability       *float64   `json:"probability,omitempty"` // 0-100
	ExpectedCloseDate *time.Time `json:"expected_close_date,omitempty"`
	ProductServiceID  *string    `json:"product_service_id,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// IsOpen indica se o negócio ainda está aberto. Os estágios particionam o conjunto
// de negócios em abertos e fechados: todo negócio está em exatamente uma partição.
func (d *Deal) IsOpen() bool {
	return d.Stage != DealStageClosedWon && d.Stage != DealStageClosedLost
}

// EffectiveValue resolve o valor do negócio com precedência única:
// total_value quando presente, senão value, senão 0.
// Essa é a regra canônica — nenhum outro ponto do código deve repetir o fallback.
func (d *Deal) EffectiveValue() float64 {
	if d.TotalValue != nil {
		return *d.TotalValue
	}
	if d.Value != nil {
		return *d.Value
	}
	return 0
}

// EffectiveProbability retorna a probabilidade do negócio, com padrão 0 quando ausente
func (d *Deal) EffectiveProbability() float64 {
	if d.Probability == nil {
		return 0
	}
	return *d.Probability
}
