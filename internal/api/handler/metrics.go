package handler

import (
	"encoding/json"
	"net/http"

	"github.com/founderhq/founderhq-api/internal/domain"
	"github.com/founderhq/founderhq-api/internal/usecases/metrics"
	"github.com/founderhq/founderhq-api/pkg/apiErrors"
	"github.com/founderhq/founderhq-api/pkg/log"
	"github.com/founderhq/founderhq-api/pkg/utils"
	"github.com/julienschmidt/httprouter"
)

// MonthlyMetricsResponse agrega as métricas do período e seus sinais de saúde
type MonthlyMetricsResponse struct {
	Metrics       *domain.SaaSMetrics    `json:"metrics"`
	HealthSignals []*domain.HealthSignal `json:"health_signals"`
}

// GetCashFlow retorna a série de fluxo de caixa de um workspace.
// A granularidade vem da query string: "monthly" (padrão) ou "quarterly".
func GetCashFlow(service metrics.Metricer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		workspaceID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		granularity := r.URL.Query().Get("granularity")
		if granularity == "" {
			granularity = domain.GranularityMonthly
		}

		if granularity != domain.GranularityMonthly && granularity != domain.GranularityQuarterly {
			logger.WithFields(log.Fields{
				"workspace_id": workspaceID,
				"granularity":  granularity,
			}).Warn("metrics: invalid granularity parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidGranularity, "Granularidade inválida. Valores aceitos: monthly, quarterly", nil)
			return
		}

		series, err := service.CashFlow(workspaceID, granularity)
		if err != nil {
			logger.WithFields(log.Fields{
				"workspace_id": workspaceID,
				"granularity":  granularity,
				"error":        err.Error(),
			}).Error("metrics: failed to build cash flow series")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular fluxo de caixa", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(series); err != nil {
			logger.WithFields(log.Fields{
				"workspace_id": workspaceID,
				"error":        err.Error(),
			}).Error("metrics: failed to encode cash flow response")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetMonthlyMetrics retorna as métricas SaaS de um workspace para um período
// YYYY-MM, junto com os sinais de saúde avaliados
func GetMonthlyMetrics(service metrics.Metricer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		workspaceID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		period := r.URL.Query().Get("month")
		if period == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro month é obrigatório (formato YYYY-MM)", nil)
			return
		}

		if _, err := utils.ParseMonth(period); err != nil {
			logger.WithFields(log.Fields{
				"workspace_id": workspaceID,
				"month":        period,
			}).Warn("metrics: invalid month parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Período inválido (formato esperado: YYYY-MM)", nil)
			return
		}

		saasMetrics, healthSignals, err := service.MonthlyMetrics(workspaceID, period)
		if err != nil {
			logger.WithFields(log.Fields{
				"workspace_id": workspaceID,
				"month":        period,
				"error":        err.Error(),
			}).Error("metrics: failed to compute monthly metrics")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular métricas do período", nil)
			return
		}

		logger.WithFields(log.Fields{
			"workspace_id": workspaceID,
			"month":        period,
			"signals":      len(healthSignals),
		}).Info("metrics: monthly metrics computed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(MonthlyMetricsResponse{
			Metrics:       saasMetrics,
			HealthSignals: healthSignals,
		}); err != nil {
			logger.WithFields(log.Fields{
				"workspace_id": workspaceID,
				"error":        err.Error(),
			}).Error("metrics: failed to encode monthly metrics response")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetRevenueByCategory retorna o rollup de receita realizada por categoria
func GetRevenueByCategory(service metrics.Metricer) http.Handler {
	return rollupHandler("revenue-by-category", func(workspaceID string) ([]*domain.RevenueRollupItem, error) {
		return service.RevenueByCategory(workspaceID)
	})
}

// GetRevenueByProduct retorna o rollup de negócios fechados por produto/serviço
func GetRevenueByProduct(service metrics.Metricer) http.Handler {
	return rollupHandler("revenue-by-product", func(workspaceID string) ([]*domain.RevenueRollupItem, error) {
		return service.RevenueByProduct(workspaceID)
	})
}

// GetExpensesByCategory retorna o rollup de despesas por categoria
func GetExpensesByCategory(service metrics.Metricer) http.Handler {
	return rollupHandler("expenses-by-category", func(workspaceID string) ([]*domain.RevenueRollupItem, error) {
		return service.ExpensesByCategory(workspaceID)
	})
}

// rollupHandler fatora o fluxo comum dos três endpoints de rollup
func rollupHandler(name string, fetch func(workspaceID string) ([]*domain.RevenueRollupItem, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		workspaceID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		items, err := fetch(workspaceID)
		if err != nil {
			logger.WithFields(log.Fields{
				"workspace_id": workspaceID,
				"rollup":       name,
				"error":        err.Error(),
			}).Error("metrics: failed to build rollup")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular rollup", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(items); err != nil {
			logger.WithFields(log.Fields{
				"workspace_id": workspaceID,
				"rollup":       name,
				"error":        err.Error(),
			}).Error("metrics: failed to encode rollup response")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetMetricsHistory retorna os snapshots mensais persistidos de um workspace,
// em ordem crescente de período
func GetMetricsHistory(service metrics.Metricer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		workspaceID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		snapshots, err := service.MetricsHistory(workspaceID)
		if err != nil {
			logger.WithFields(log.Fields{
				"workspace_id": workspaceID,
				"error":        err.Error(),
			}).Error("metrics: failed to list metrics history")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar histórico de métricas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshots); err != nil {
			logger.WithFields(log.Fields{
				"workspace_id": workspaceID,
				"error":        err.Error(),
			}).Error("metrics: failed to encode metrics history response")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetAvailablePeriods retorna os períodos com snapshots de métricas disponíveis
func GetAvailablePeriods(service metrics.Metricer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		periods, err := service.GetAvailablePeriods()
		if err != nil {
			logger.WithField("error", err.Error()).Error("metrics: failed to list available periods")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar períodos disponíveis", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(periods); err != nil {
			logger.WithField("error", err.Error()).Error("metrics: failed to encode periods response")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
