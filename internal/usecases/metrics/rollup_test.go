package metrics

import (
	"testing"

	"github.com/founderhq/founderhq-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestExpensesByCategory(t *testing.T) {
	tests := []struct {
		name     string
		expenses []*domain.Expense
		expected []*domain.RevenueRollupItem
	}{
		{
			name:     "Sem despesas o rollup é vazio",
			expenses: []*domain.Expense{},
			expected: []*domain.RevenueRollupItem{},
		},
		{
			name: "Categoria única soma tudo com participação de 100%",
			expenses: []*domain.Expense{
				expense("2024-03-05", 100, "Travel"),
				expense("2024-03-20", 50, "Travel"),
			},
			expected: []*domain.RevenueRollupItem{
				{Key: "Travel", Amount: 150, Percentage: 100},
			},
		},
		{
			name: "Múltiplas categorias ordenadas por valor decrescente",
			expenses: []*domain.Expense{
				expense("2024-01-01", 100, domain.ExpenseCategoryMarketing),
				expense("2024-01-02", 300, domain.ExpenseCategoryEngineering),
				expense("2024-01-03", 100, domain.ExpenseCategoryMarketing),
			},
			expected: []*domain.RevenueRollupItem{
				{Key: domain.ExpenseCategoryEngineering, Amount: 300, Percentage: 60},
				{Key: domain.ExpenseCategoryMarketing, Amount: 200, Percentage: 40},
			},
		},
		{
			name: "Categoria vazia cai no grupo sentinela other",
			expenses: []*domain.Expense{
				expense("2024-01-01", 80, ""),
			},
			expected: []*domain.RevenueRollupItem{
				{Key: "other", Amount: 80, Percentage: 100},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExpensesByCategory(tt.expenses)

			assert.Len(t, result, len(tt.expected))
			for i, expected := range tt.expected {
				assert.Equal(t, expected.Key, result[i].Key)
				assert.Equal(t, expected.Amount, result[i].Amount)
				assert.Equal(t, expected.Percentage, result[i].Percentage)
			}
		})
	}
}

func TestRevenueByCategory(t *testing.T) {
	transactions := []*domain.RevenueTransaction{
		{TransactionDate: "2024-01-05", Amount: 500, Status: domain.TransactionStatusPaid, RevenueCategory: "subscriptions"},
		{TransactionDate: "2024-01-10", Amount: 200, Status: domain.TransactionStatusPaid, RevenueCategory: "services"},
		{TransactionDate: "2024-01-15", Amount: 900, Status: domain.TransactionStatusPending, RevenueCategory: "subscriptions"},
	}

	result := RevenueByCategory(transactions)

	// A transação pendente fica fora do rollup
	assert.Len(t, result, 2)
	assert.Equal(t, "subscriptions", result[0].Key)
	assert.Equal(t, 500.0, result[0].Amount)
	assert.Equal(t, "services", result[1].Key)
	assert.Equal(t, 200.0, result[1].Amount)
}

func TestRevenueByProduct(t *testing.T) {
	productA := "prod-a"
	value1 := 1000.0
	value2 := 500.0
	totalValue := 1500.0

	deals := []*domain.Deal{
		{Stage: domain.DealStageClosedWon, ProductServiceID: &productA, Value: &value1},
		{Stage: domain.DealStageClosedWon, ProductServiceID: nil, Value: &value2},
		{Stage: domain.DealStageClosedWon, ProductServiceID: &productA, Value: &value1, TotalValue: &totalValue},
		{Stage: domain.DealStageClosedLost, ProductServiceID: &productA, Value: &value1},
		{Stage: "negotiation", ProductServiceID: &productA, Value: &value1},
	}

	result := RevenueByProduct(deals)

	// Apenas closed_won entra; total_value tem precedência sobre value
	assert.Len(t, result, 2)
	assert.Equal(t, "prod-a", result[0].Key)
	assert.Equal(t, 2500.0, result[0].Amount)
	assert.Equal(t, "Other", result[1].Key)
	assert.Equal(t, 500.0, result[1].Amount)
}

func TestRollupConservation(t *testing.T) {
	// A soma do rollup deve igualar a soma dos registros filtrados
	expenses := []*domain.Expense{
		expense("2024-01-01", 123.45, domain.ExpenseCategoryMarketing),
		expense("2024-01-02", 67.89, domain.ExpenseCategorySales),
		expense("2024-01-03", 10.66, domain.ExpenseCategoryMarketing),
	}

	result := ExpensesByCategory(expenses)

	var rollupTotal float64
	for _, item := range result {
		rollupTotal += item.Amount
	}

	assert.InDelta(t, 123.45+67.89+10.66, rollupTotal, 1e-9)
}
