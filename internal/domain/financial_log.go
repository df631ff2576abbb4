package domain

import "time"

// FinancialLog representa um snapshot diário das métricas financeiras de um workspace.
// A unicidade é pelo ID, não pela data: datas duplicadas são permitidas e todas
// aparecem no histórico.
type FinancialLog struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	Date        string    `json:"date"` // Formato ISO YYYY-MM-DD
	MRR         float64   `json:"mrr"`
	GMV         float64   `json:"gmv"`
	Signups     int       `json:"signups"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
