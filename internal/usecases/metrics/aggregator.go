package metrics

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/founderhq/founderhq-api/internal/domain"
)

// monthKeyLen é o tamanho do prefixo "YYYY-MM" usado como chave de bucket
const monthKeyLen = 7

// bucketKey extrai a chave mensal de uma data ISO (YYYY-MM-DD) por fatiamento
// de string. Datas fora do formato ISO produzem buckets incorretos em silêncio;
// datas curtas demais são descartadas pelo chamador.
func bucketKey(date string) (string, bool) {
	if len(date) < monthKeyLen {
		return "", false
	}
	return date[:monthKeyLen], true
}

// MonthlyCashFlow agrega transações de receita e despesas em uma série mensal
// de fluxo de caixa. Apenas transações com status "paid" entram na receita.
// A saída é ordenada de forma ascendente pela chave do período: a ordenação
// lexicográfica de "YYYY-MM" coincide com a ordem cronológica.
func MonthlyCashFlow(transactions []*domain.RevenueTransaction, expenses []*domain.Expense) []*domain.CashFlowPoint {
	buckets := make(map[string]*domain.CashFlowPoint)

	ensure := func(key string) *domain.CashFlowPoint {
		point, ok := buckets[key]
		if !ok {
			point = &domain.CashFlowPoint{Period: key}
			buckets[key] = point
		}
		return point
	}

	for _, tx := range transactions {
		if tx == nil || !tx.IsRealized() {
			continue
		}

		key, ok := bucketKey(tx.TransactionDate)
		if !ok {
			continue
		}

		ensure(key).Revenue += tx.Amount
	}

	for _, expense := range expenses {
		if expense == nil {
			continue
		}

		key, ok := bucketKey(expense.Date)
		if !ok {
			continue
		}

		// Valores negativos não reduzem a despesa do período
		amount := expense.Amount
		if amount < 0 {
			amount = 0
		}

		ensure(key).Expenses += amount
	}

	series := make([]*domain.CashFlowPoint, 0, len(buckets))
	for _, point := range buckets {
		point.NetCashFlow = point.Revenue - point.Expenses
		series = append(series, point)
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Period < series[j].Period
	})

	return series
}

// QuarterlyCashFlow agrupa uma série mensal já agregada em trimestres "Q{1-4} YYYY".
// É uma dupla agregação: soma os valores mensais já computados, sem voltar às
// transações brutas. A ordem cronológica da entrada é preservada na saída.
func QuarterlyCashFlow(monthly []*domain.CashFlowPoint) []*domain.CashFlowPoint {
	buckets := make(map[string]*domain.CashFlowPoint)
	order := make([]string, 0)

	for _, point := range monthly {
		if point == nil || len(point.Period) < monthKeyLen {
			continue
		}

		month, err := strconv.Atoi(point.Period[5:7])
		if err != nil || month < 1 || month > 12 {
			continue
		}

		quarter := (month-1)/3 + 1
		key := fmt.Sprintf("Q%d %s", quarter, point.Period[:4])

		bucket, ok := buckets[key]
		if !ok {
			bucket = &domain.CashFlowPoint{Period: key}
			buckets[key] = bucket
			order = append(order, key)
		}

		bucket.Revenue += point.Revenue
		bucket.Expenses += point.Expenses
		bucket.NetCashFlow += point.NetCashFlow
	}

	series := make([]*domain.CashFlowPoint, 0, len(order))
	for _, key := range order {
		series = append(series, buckets[key])
	}

	return series
}

// CashFlowSeries produz a série de fluxo de caixa na granularidade solicitada.
// Entradas vazias produzem uma série vazia, nunca um erro.
func CashFlowSeries(granularity string, transactions []*domain.RevenueTransaction, expenses []*domain.Expense) []*domain.CashFlowPoint {
	monthly := MonthlyCashFlow(transactions, expenses)
	if granularity == domain.GranularityQuarterly {
		return QuarterlyCashFlow(monthly)
	}
	return monthly
}
