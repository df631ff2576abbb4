package domain

import "time"

// Categorias de despesa reconhecidas pelos agregadores
const (
	ExpenseCategoryMarketing      = "marketing"
	ExpenseCategorySales          = "sales"
	ExpenseCategoryEngineering    = "engineering"
	ExpenseCategoryOperations     = "operations"
	ExpenseCategoryTravel         = "travel"
	ExpenseCategoryInfrastructure = "infrastructure"
	ExpenseCategoryOther          = "other"
)

// Expense representa uma despesa registrada em um workspace
type Expense struct {
	ID            string    `json:"id"`
	WorkspaceID   string    `json:"workspace_id"`
	Date          string    `json:"date"` // Formato ISO YYYY-MM-DD
	Category      string    `json:"category"`
	Amount        float64   `json:"amount"`
	Description   string    `json:"description"`
	Vendor        *string   `json:"vendor,omitempty"`
	PaymentMethod *string   `json:"payment_method,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Sanitize normaliza os campos da despesa antes da persistência.
// Valores negativos são forçados para zero; categoria ausente vira "other".
func (e *Expense) Sanitize() {
	if e.Amount < 0 {
		e.Amount = 0
	}
	if e.Category == "" {
		e.Category = ExpenseCategoryOther
	}
}
