package metrics

import (
	"github.com/founderhq/founderhq-api/internal/domain"
)

// Metricer define a interface do serviço de métricas derivadas de um workspace
type Metricer interface {
	// CashFlow produz a série de fluxo de caixa do workspace na granularidade
	// "monthly" ou "quarterly"
	CashFlow(workspaceID string, granularity string) ([]*domain.CashFlowPoint, error)

	// MonthlyMetrics calcula as métricas SaaS do workspace para um período YYYY-MM,
	// junto com os sinais de saúde avaliados sobre elas
	MonthlyMetrics(workspaceID string, period string) (*domain.SaaSMetrics, []*domain.HealthSignal, error)

	// RevenueByCategory agrupa a receita realizada do workspace por categoria
	RevenueByCategory(workspaceID string) ([]*domain.RevenueRollupItem, error)

	// RevenueByProduct agrupa o valor dos negócios fechados por produto/serviço
	RevenueByProduct(workspaceID string) ([]*domain.RevenueRollupItem, error)

	// ExpensesByCategory agrupa as despesas do workspace por categoria
	ExpensesByCategory(workspaceID string) ([]*domain.RevenueRollupItem, error)

	// SnapshotWorkspace calcula e persiste o snapshot mensal de métricas do workspace
	SnapshotWorkspace(workspaceID string, period string) (*domain.MetricsSnapshot, error)

	// MetricsHistory lista os snapshots mensais persistidos do workspace
	MetricsHistory(workspaceID string) ([]*domain.MetricsSnapshot, error)

	// GetAvailablePeriods retorna os períodos (meses e anos) com snapshots disponíveis
	GetAvailablePeriods() (*domain.AvailablePeriods, error)
}
