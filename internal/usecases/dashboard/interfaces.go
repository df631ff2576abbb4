package dashboard

import (
	"github.com/founderhq/founderhq-api/internal/domain"
)

// Dashboarder define a interface do serviço de montagem do dashboard de um workspace
type Dashboarder interface {
	// GetDashboardMetrics monta os três blocos do dashboard (pipeline, marketing
	// e financeiro) para o workspace informado
	GetDashboardMetrics(workspaceID string) (*domain.DashboardMetrics, error)
}
