package handler

import (
	"encoding/json"
	"net/http"

	"github.com/founderhq/founderhq-api/internal/usecases/dashboard"
	"github.com/founderhq/founderhq-api/pkg/apiErrors"
	"github.com/founderhq/founderhq-api/pkg/log"
	"github.com/julienschmidt/httprouter"
)

// GetDashboardMetrics retorna o agregado de pipeline, marketing e financeiro
// exibido no dashboard de um workspace
func GetDashboardMetrics(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		workspaceID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("workspace_id", workspaceID).Info("dashboard: building dashboard metrics")

		dashboardMetrics, err := service.GetDashboardMetrics(workspaceID)
		if err != nil {
			logger.WithFields(log.Fields{
				"workspace_id": workspaceID,
				"error":        err.Error(),
			}).Error("dashboard: failed to build dashboard metrics")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar o dashboard", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(dashboardMetrics); err != nil {
			logger.WithFields(log.Fields{
				"workspace_id": workspaceID,
				"error":        err.Error(),
			}).Error("dashboard: failed to encode response")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
