package metrics

import (
	"sort"

	"github.com/founderhq/founderhq-api/internal/domain"
	"github.com/founderhq/founderhq-api/pkg/utils"
)

// Sentinelas usadas quando o registro não informa a chave de agrupamento
const (
	fallbackCategoryKey = "other"
	fallbackProductKey  = "Other"
)

// rollup agrupa pares chave/valor, soma por grupo e calcula a participação
// percentual de cada grupo no total (0 quando o total é 0). Saída ordenada
// de forma decrescente pelo valor; empates preservam a ordem de inserção.
func rollup(keys []string, amounts []float64) []*domain.RevenueRollupItem {
	totals := make(map[string]float64)
	order := make([]string, 0)

	for i, key := range keys {
		if _, ok := totals[key]; !ok {
			order = append(order, key)
		}
		totals[key] += amounts[i]
	}

	var grandTotal float64
	for _, amount := range totals {
		grandTotal += amount
	}

	items := make([]*domain.RevenueRollupItem, 0, len(order))
	for _, key := range order {
		items = append(items, &domain.RevenueRollupItem{
			Key:        key,
			Amount:     totals[key],
			Percentage: utils.PercentageOf(totals[key], grandTotal),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Amount > items[j].Amount
	})

	return items
}

// ExpensesByCategory agrupa despesas por categoria, somando os valores e
// calculando a participação de cada categoria no total gasto
func ExpensesByCategory(expenses []*domain.Expense) []*domain.RevenueRollupItem {
	keys := make([]string, 0, len(expenses))
	amounts := make([]float64, 0, len(expenses))

	for _, expense := range expenses {
		if expense == nil {
			continue
		}

		key := expense.Category
		if key == "" {
			key = fallbackCategoryKey
		}

		amount := expense.Amount
		if amount < 0 {
			amount = 0
		}

		keys = append(keys, key)
		amounts = append(amounts, amount)
	}

	return rollup(keys, amounts)
}

// RevenueByCategory agrupa a receita realizada por categoria de receita.
// Apenas transações pagas entram no rollup.
func RevenueByCategory(transactions []*domain.RevenueTransaction) []*domain.RevenueRollupItem {
	keys := make([]string, 0, len(transactions))
	amounts := make([]float64, 0, len(transactions))

	for _, tx := range transactions {
		if tx == nil || !tx.IsRealized() {
			continue
		}

		key := tx.RevenueCategory
		if key == "" {
			key = fallbackCategoryKey
		}

		keys = append(keys, key)
		amounts = append(amounts, tx.Amount)
	}

	return rollup(keys, amounts)
}

// RevenueByProduct agrupa o valor efetivo dos negócios fechados com sucesso
// por produto/serviço. Negócios sem produto caem no grupo sentinela "Other".
func RevenueByProduct(deals []*domain.Deal) []*domain.RevenueRollupItem {
	keys := make([]string, 0, len(deals))
	amounts := make([]float64, 0, len(deals))

	for _, deal := range deals {
		if deal == nil || deal.Stage != domain.DealStageClosedWon {
			continue
		}

		key := fallbackProductKey
		if deal.ProductServiceID != nil && *deal.ProductServiceID != "" {
			key = *deal.ProductServiceID
		}

		keys = append(keys, key)
		amounts = append(amounts, deal.EffectiveValue())
	}

	return rollup(keys, amounts)
}
