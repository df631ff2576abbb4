package domain

import "time"

// Tipos de transação de receita
const (
	TransactionTypeInvoice   = "invoice"
	TransactionTypePayment   = "payment"
	TransactionTypeRefund    = "refund"
	TransactionTypeRecurring = "recurring"
)

// Status possíveis de uma transação de receita
const (
	TransactionStatusPending   = "pending"
	TransactionStatusPaid      = "paid"
	TransactionStatusOverdue   = "overdue"
	TransactionStatusCancelled = "cancelled"
)

// RevenueTransaction representa uma transação de receita de um workspace.
// Apenas transações com status "paid" contam para receita realizada; "pending" e
// "overdue" ficam fora do MRR e do fluxo de caixa, mas permanecem disponíveis para
// KPIs de pipeline.
type RevenueTransaction struct {
	ID               string    `json:"id"`
	WorkspaceID      string    `json:"workspace_id"`
	TransactionDate  string    `json:"transaction_date"` // Formato ISO YYYY-MM-DD
	Amount           float64   `json:"amount"`
	Currency         string    `json:"currency"`
	TransactionType  string    `json:"transaction_type"`
	Status           string    `json:"status"`
	CRMItemID        *string   `json:"crm_item_id,omitempty"`
	ContactID        *string   `json:"contact_id,omitempty"`
	RevenueCategory  string    `json:"revenue_category"`
	ProductServiceID *string   `json:"product_service_id,omitempty"`
	Quantity         *int      `json:"quantity,omitempty"`
	UnitPrice        *float64  `json:"unit_price,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// IsRealized indica se a transação conta para receita realizada
func (t *RevenueTransaction) IsRealized() bool {
	return t.Status == TransactionStatusPaid
}
