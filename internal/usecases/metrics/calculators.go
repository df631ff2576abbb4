package metrics

import (
	"math"

	"github.com/founderhq/founderhq-api/internal/domain"
)

// Parâmetros das fórmulas derivadas. O tempo de vida de um cliente é uma
// premissa de 24 meses, não um cálculo de churn real.
const (
	burnRateWindowMonths      = 3
	customerLifetimeMonths    = 24
	cashBalanceMonthsEstimate = 3
)

// MonthlyRecurringRevenue soma as transações recorrentes pagas cuja data cai
// no mês alvo (YYYY-MM, comparado por prefixo da data ISO)
func MonthlyRecurringRevenue(transactions []*domain.RevenueTransaction, month string) float64 {
	var total float64
	for _, tx := range transactions {
		if tx == nil || !tx.IsRealized() || tx.TransactionType != domain.TransactionTypeRecurring {
			continue
		}

		key, ok := bucketKey(tx.TransactionDate)
		if !ok || key != month {
			continue
		}

		total += tx.Amount
	}
	return total
}

// AnnualRecurringRevenue anualiza o MRR de forma simples, sem modelagem de coortes
func AnnualRecurringRevenue(mrr float64) float64 {
	return mrr * 12
}

// BurnRate é a despesa mensal média sobre a janela informada. Janela vazia
// produz burn rate 0, garantido pelo max(len, 1) no denominador.
func BurnRate(monthlyExpenses []float64) float64 {
	var total float64
	for _, amount := range monthlyExpenses {
		total += amount
	}

	months := len(monthlyExpenses)
	if months < 1 {
		months = 1
	}

	return total / float64(months)
}

// RunwayMonths estima quantos meses o caixa sustenta o burn rate atual.
// Burn rate zero ou negativo retorna +Inf: runway ilimitado é uma política
// explícita de exibição, não um erro.
func RunwayMonths(cashBalance, burnRate float64) float64 {
	if burnRate <= 0 {
		return math.Inf(1)
	}
	return cashBalance / burnRate
}

// EstimatedCashBalance deriva o saldo de caixa como netCashFlow × 3.
// TODO: substituir pela integração de saldo real quando o ledger de caixa existir
func EstimatedCashBalance(netCashFlow float64) float64 {
	return netCashFlow * cashBalanceMonthsEstimate
}

// GrowthRate calcula o crescimento percentual entre o primeiro e o último
// período da janela. Baseline zero retorna 0: evita divisão por zero ao custo
// de mascarar o crescimento real nesse caso, limitação conhecida.
func GrowthRate(firstPeriodRevenue, lastPeriodRevenue float64) float64 {
	if firstPeriodRevenue == 0 {
		return 0
	}
	return (lastPeriodRevenue - firstPeriodRevenue) / firstPeriodRevenue * 100
}

// CustomerAcquisitionCost divide o gasto de aquisição pelo número de novos
// signups da janela. Sem signups, o CAC é 0.
func CustomerAcquisitionCost(acquisitionSpend float64, newSignups int) float64 {
	if newSignups <= 0 {
		return 0
	}
	return acquisitionSpend / float64(newSignups)
}

// CustomerLifetimeValue estima o LTV como ARPU × tempo de vida presumido.
// Sem clientes ativos, o LTV é 0.
func CustomerLifetimeValue(mrr float64, activeCustomers int) float64 {
	if activeCustomers <= 0 {
		return 0
	}
	arpu := mrr / float64(activeCustomers)
	return arpu * customerLifetimeMonths
}

// LTVCACRatio retorna LTV/CAC, ou nil quando o CAC é 0: nenhuma razão
// sintética é produzida, o consumidor exibe "N/A"
func LTVCACRatio(ltv, cac float64) *float64 {
	if cac == 0 {
		return nil
	}
	ratio := ltv / cac
	return &ratio
}

// CACPaybackMonths retorna CAC/MRR em meses, com a mesma política de guarda
// de zero da razão LTV:CAC
func CACPaybackMonths(cac, mrr float64) *float64 {
	if mrr == 0 {
		return nil
	}
	payback := cac / mrr
	return &payback
}

// ProfitMargin calcula a margem percentual (receita - despesas) / receita.
// Receita zero produz margem 0.
func ProfitMargin(revenue, expenses float64) float64 {
	if revenue == 0 {
		return 0
	}
	return (revenue - expenses) / revenue * 100
}

// RuleOf40 soma crescimento e margem de lucro. A margem é computada de fato,
// não uma constante aproximada.
func RuleOf40(growthRate, profitMargin float64) float64 {
	return growthRate + profitMargin
}
