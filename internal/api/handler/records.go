package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/founderhq/founderhq-api/internal/domain"
	"github.com/founderhq/founderhq-api/internal/usecases/recording"
	"github.com/founderhq/founderhq-api/pkg/apiErrors"
	"github.com/founderhq/founderhq-api/pkg/log"
	"github.com/julienschmidt/httprouter"
)

// writeRecordError classifica erros de ingestão: problemas de validação viram 400,
// o restante vira erro de banco
func writeRecordError(w http.ResponseWriter, err error) {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "obrigat") || strings.Contains(msg, "não informad"):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, msg, nil)
	case strings.Contains(msg, "inválida"):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, msg, nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao registrar dados", nil)
	}
}

// CreateFinancialLog registra um log financeiro diário no workspace
func CreateFinancialLog(service recording.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		workspaceID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var entry *domain.FinancialLog
		if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		created, err := service.RecordFinancialLog(workspaceID, entry)
		if err != nil {
			logger.WithFields(log.Fields{
				"workspace_id": workspaceID,
				"error":        err.Error(),
			}).Warn("records: failed to record financial log")

			writeRecordError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	})
}

// ListFinancialLogs retorna o histórico de logs financeiros do workspace
func ListFinancialLogs(service recording.Recorder) http.Handler {
	return listRecordsHandler("financial-logs", func(workspaceID string) (any, error) {
		return service.ListFinancialLogs(workspaceID)
	})
}

// CreateExpense registra uma despesa no workspace
func CreateExpense(service recording.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		workspaceID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var expense *domain.Expense
		if err := json.NewDecoder(r.Body).Decode(&expense); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		created, err := service.RecordExpense(workspaceID, expense)
		if err != nil {
			logger.WithFields(log.Fields{
				"workspace_id": workspaceID,
				"error":        err.Error(),
			}).Warn("records: failed to record expense")

			writeRecordError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	})
}

// ListExpenses retorna as despesas do workspace
func ListExpenses(service recording.Recorder) http.Handler {
	return listRecordsHandler("expenses", func(workspaceID string) (any, error) {
		return service.ListExpenses(workspaceID)
	})
}

// CreateRevenueTransaction registra uma transação de receita no workspace
func CreateRevenueTransaction(service recording.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		workspaceID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var tx *domain.RevenueTransaction
		if err := json.NewDecoder(r.Body).Decode(&tx); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		created, err := service.RecordRevenueTransaction(workspaceID, tx)
		if err != nil {
			logger.WithFields(log.Fields{
				"workspace_id": workspaceID,
				"error":        err.Error(),
			}).Warn("records: failed to record revenue transaction")

			writeRecordError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	})
}

// ListRevenueTransactions retorna as transações de receita do workspace
func ListRevenueTransactions(service recording.Recorder) http.Handler {
	return listRecordsHandler("revenue-transactions", func(workspaceID string) (any, error) {
		return service.ListRevenueTransactions(workspaceID)
	})
}

// CreateDeal registra um negócio no pipeline do workspace
func CreateDeal(service recording.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		workspaceID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var deal *domain.Deal
		if err := json.NewDecoder(r.Body).Decode(&deal); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		created, err := service.RecordDeal(workspaceID, deal)
		if err != nil {
			logger.WithFields(log.Fields{
				"workspace_id": workspaceID,
				"error":        err.Error(),
			}).Warn("records: failed to record deal")

			writeRecordError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	})
}

// ListDeals retorna os negócios do workspace
func ListDeals(service recording.Recorder) http.Handler {
	return listRecordsHandler("deals", func(workspaceID string) (any, error) {
		return service.ListDeals(workspaceID)
	})
}

// CreateCampaign registra uma campanha de marketing no workspace
func CreateCampaign(service recording.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		workspaceID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var campaign *domain.MarketingCampaign
		if err := json.NewDecoder(r.Body).Decode(&campaign); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		created, err := service.RecordCampaign(workspaceID, campaign)
		if err != nil {
			logger.WithFields(log.Fields{
				"workspace_id": workspaceID,
				"error":        err.Error(),
			}).Warn("records: failed to record campaign")

			writeRecordError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	})
}

// ListCampaigns retorna as campanhas de marketing do workspace
func ListCampaigns(service recording.Recorder) http.Handler {
	return listRecordsHandler("campaigns", func(workspaceID string) (any, error) {
		return service.ListCampaigns(workspaceID)
	})
}

// listRecordsHandler fatora o fluxo comum dos endpoints de listagem de registros
func listRecordsHandler(name string, fetch func(workspaceID string) (any, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		workspaceID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		records, err := fetch(workspaceID)
		if err != nil {
			logger.WithFields(log.Fields{
				"workspace_id": workspaceID,
				"records":      name,
				"error":        err.Error(),
			}).Error("records: failed to list records")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar registros", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(records); err != nil {
			logger.WithFields(log.Fields{
				"workspace_id": workspaceID,
				"records":      name,
				"error":        err.Error(),
			}).Error("records: failed to encode response")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
