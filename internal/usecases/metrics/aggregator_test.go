package metrics

import (
	"testing"

	"github.com/founderhq/founderhq-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func paidRecurring(date string, amount float64) *domain.RevenueTransaction {
	return &domain.RevenueTransaction{
		TransactionDate: date,
		Amount:          amount,
		TransactionType: domain.TransactionTypeRecurring,
		Status:          domain.TransactionStatusPaid,
	}
}

func paidInvoice(date string, amount float64) *domain.RevenueTransaction {
	return &domain.RevenueTransaction{
		TransactionDate: date,
		Amount:          amount,
		TransactionType: domain.TransactionTypeInvoice,
		Status:          domain.TransactionStatusPaid,
	}
}

func pendingInvoice(date string, amount float64) *domain.RevenueTransaction {
	return &domain.RevenueTransaction{
		TransactionDate: date,
		Amount:          amount,
		TransactionType: domain.TransactionTypeInvoice,
		Status:          domain.TransactionStatusPending,
	}
}

func expense(date string, amount float64, category string) *domain.Expense {
	return &domain.Expense{
		Date:     date,
		Amount:   amount,
		Category: category,
	}
}

func TestMonthlyCashFlow(t *testing.T) {
	tests := []struct {
		name         string
		transactions []*domain.RevenueTransaction
		expenses     []*domain.Expense
		expected     []*domain.CashFlowPoint
	}{
		{
			name:         "Entradas vazias produzem série vazia",
			transactions: []*domain.RevenueTransaction{},
			expenses:     []*domain.Expense{},
			expected:     []*domain.CashFlowPoint{},
		},
		{
			name: "Apenas transações pagas entram na receita",
			transactions: []*domain.RevenueTransaction{
				paidInvoice("2024-01-10", 1000),
				pendingInvoice("2024-01-15", 500),
			},
			expenses: []*domain.Expense{},
			expected: []*domain.CashFlowPoint{
				{Period: "2024-01", Revenue: 1000, Expenses: 0, NetCashFlow: 1000},
			},
		},
		{
			name: "Receita e despesa no mesmo mês produzem fluxo líquido",
			transactions: []*domain.RevenueTransaction{
				paidInvoice("2024-03-05", 2000),
			},
			expenses: []*domain.Expense{
				expense("2024-03-20", 800, domain.ExpenseCategoryMarketing),
			},
			expected: []*domain.CashFlowPoint{
				{Period: "2024-03", Revenue: 2000, Expenses: 800, NetCashFlow: 1200},
			},
		},
		{
			name: "Meses são ordenados de forma ascendente",
			transactions: []*domain.RevenueTransaction{
				paidInvoice("2024-03-01", 300),
				paidInvoice("2024-01-01", 100),
				paidInvoice("2024-02-01", 200),
			},
			expenses: []*domain.Expense{},
			expected: []*domain.CashFlowPoint{
				{Period: "2024-01", Revenue: 100, NetCashFlow: 100},
				{Period: "2024-02", Revenue: 200, NetCashFlow: 200},
				{Period: "2024-03", Revenue: 300, NetCashFlow: 300},
			},
		},
		{
			name:         "Despesa negativa é tratada como zero",
			transactions: []*domain.RevenueTransaction{},
			expenses: []*domain.Expense{
				expense("2024-05-01", -100, domain.ExpenseCategoryOther),
				expense("2024-05-10", 50, domain.ExpenseCategoryOther),
			},
			expected: []*domain.CashFlowPoint{
				{Period: "2024-05", Revenue: 0, Expenses: 50, NetCashFlow: -50},
			},
		},
		{
			name: "Datas curtas demais são descartadas",
			transactions: []*domain.RevenueTransaction{
				paidInvoice("2024", 100),
				paidInvoice("2024-06-01", 400),
			},
			expenses: []*domain.Expense{},
			expected: []*domain.CashFlowPoint{
				{Period: "2024-06", Revenue: 400, NetCashFlow: 400},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MonthlyCashFlow(tt.transactions, tt.expenses)

			assert.Len(t, result, len(tt.expected))
			for i, expected := range tt.expected {
				assert.Equal(t, expected.Period, result[i].Period)
				assert.Equal(t, expected.Revenue, result[i].Revenue)
				assert.Equal(t, expected.Expenses, result[i].Expenses)
				assert.Equal(t, expected.NetCashFlow, result[i].NetCashFlow)
			}
		})
	}
}

func TestMonthlyCashFlow_Idempotencia(t *testing.T) {
	transactions := []*domain.RevenueTransaction{
		paidInvoice("2024-01-10", 1000),
		paidRecurring("2024-02-10", 500),
	}
	expenses := []*domain.Expense{
		expense("2024-01-15", 300, domain.ExpenseCategoryOperations),
	}

	first := MonthlyCashFlow(transactions, expenses)
	second := MonthlyCashFlow(transactions, expenses)

	assert.Equal(t, first, second)
}

func TestQuarterlyCashFlow(t *testing.T) {
	tests := []struct {
		name     string
		monthly  []*domain.CashFlowPoint
		expected []*domain.CashFlowPoint
	}{
		{
			name:     "Série vazia produz série vazia",
			monthly:  []*domain.CashFlowPoint{},
			expected: []*domain.CashFlowPoint{},
		},
		{
			name: "Três meses consecutivos somam em um único trimestre",
			monthly: []*domain.CashFlowPoint{
				{Period: "2024-01", Revenue: 100, NetCashFlow: 100},
				{Period: "2024-02", Revenue: 200, NetCashFlow: 200},
				{Period: "2024-03", Revenue: 300, NetCashFlow: 300},
			},
			expected: []*domain.CashFlowPoint{
				{Period: "Q1 2024", Revenue: 600, Expenses: 0, NetCashFlow: 600},
			},
		},
		{
			name: "Meses de trimestres diferentes produzem buckets separados em ordem cronológica",
			monthly: []*domain.CashFlowPoint{
				{Period: "2023-12", Revenue: 50, NetCashFlow: 50},
				{Period: "2024-01", Revenue: 100, NetCashFlow: 100},
				{Period: "2024-04", Revenue: 400, Expenses: 100, NetCashFlow: 300},
			},
			expected: []*domain.CashFlowPoint{
				{Period: "Q4 2023", Revenue: 50, NetCashFlow: 50},
				{Period: "Q1 2024", Revenue: 100, NetCashFlow: 100},
				{Period: "Q2 2024", Revenue: 400, Expenses: 100, NetCashFlow: 300},
			},
		},
		{
			name: "Fronteiras de trimestre: março no Q1, abril no Q2",
			monthly: []*domain.CashFlowPoint{
				{Period: "2024-03", Revenue: 1, NetCashFlow: 1},
				{Period: "2024-04", Revenue: 2, NetCashFlow: 2},
				{Period: "2024-06", Revenue: 3, NetCashFlow: 3},
				{Period: "2024-07", Revenue: 4, NetCashFlow: 4},
			},
			expected: []*domain.CashFlowPoint{
				{Period: "Q1 2024", Revenue: 1, NetCashFlow: 1},
				{Period: "Q2 2024", Revenue: 5, NetCashFlow: 5},
				{Period: "Q3 2024", Revenue: 4, NetCashFlow: 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := QuarterlyCashFlow(tt.monthly)

			assert.Len(t, result, len(tt.expected))
			for i, expected := range tt.expected {
				assert.Equal(t, expected.Period, result[i].Period)
				assert.Equal(t, expected.Revenue, result[i].Revenue)
				assert.Equal(t, expected.Expenses, result[i].Expenses)
				assert.Equal(t, expected.NetCashFlow, result[i].NetCashFlow)
			}
		})
	}
}

func TestCashFlowSeries(t *testing.T) {
	transactions := []*domain.RevenueTransaction{
		paidInvoice("2024-01-01", 100),
		paidInvoice("2024-02-01", 200),
		paidInvoice("2024-03-01", 300),
	}

	t.Run("Granularidade mensal retorna a série mensal", func(t *testing.T) {
		result := CashFlowSeries(domain.GranularityMonthly, transactions, nil)
		assert.Len(t, result, 3)
		assert.Equal(t, "2024-01", result[0].Period)
	})

	t.Run("Granularidade trimestral agrega os meses do trimestre", func(t *testing.T) {
		result := CashFlowSeries(domain.GranularityQuarterly, transactions, nil)
		assert.Len(t, result, 1)
		assert.Equal(t, "Q1 2024", result[0].Period)
		assert.Equal(t, 600.0, result[0].Revenue)
		assert.Equal(t, 0.0, result[0].Expenses)
		assert.Equal(t, 600.0, result[0].NetCashFlow)
	})
}
