package metrics

import (
	"fmt"
	"sort"
	"time"

	"github.com/founderhq/founderhq-api/infrastructure/repository"
	"github.com/founderhq/founderhq-api/internal/domain"
	"github.com/founderhq/founderhq-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Service implementa a interface Metricer sobre os repositórios do workspace
type Service struct {
	financialLogRepository       repository.FinancialLogRepository
	expenseRepository            repository.ExpenseRepository
	revenueTransactionRepository repository.RevenueTransactionRepository
	dealRepository               repository.DealRepository
	snapshotRepository           repository.MetricsSnapshotRepository
}

// NewService cria uma nova instância do serviço de métricas
func NewService(
	financialLogRepo repository.FinancialLogRepository,
	expenseRepo repository.ExpenseRepository,
	revenueTransactionRepo repository.RevenueTransactionRepository,
	dealRepo repository.DealRepository,
	snapshotRepo repository.MetricsSnapshotRepository,
) Metricer {
	return &Service{
		financialLogRepository:       financialLogRepo,
		expenseRepository:            expenseRepo,
		revenueTransactionRepository: revenueTransactionRepo,
		dealRepository:               dealRepo,
		snapshotRepository:           snapshotRepo,
	}
}

// CashFlow produz a série de fluxo de caixa do workspace na granularidade solicitada
func (s *Service) CashFlow(workspaceID string, granularity string) ([]*domain.CashFlowPoint, error) {
	if granularity != domain.GranularityMonthly && granularity != domain.GranularityQuarterly {
		return nil, fmt.Errorf("granularidade inválida: %s", granularity)
	}

	transactions, err := s.revenueTransactionRepository.GetByWorkspace(workspaceID)
	if err != nil {
		logrus.WithError(err).WithField("workspace_id", workspaceID).
			Error("Erro ao buscar transações de receita do workspace")
		return nil, err
	}

	expenses, err := s.expenseRepository.GetByWorkspace(workspaceID)
	if err != nil {
		logrus.WithError(err).WithField("workspace_id", workspaceID).
			Error("Erro ao buscar despesas do workspace")
		return nil, err
	}

	return CashFlowSeries(granularity, transactions, expenses), nil
}

// MonthlyMetrics serve o relatório SaaS do workspace para um período YYYY-MM.
// Quando o snapshot mensal persistido existe, o relatório é servido dele sem
// recalcular; sem snapshot (ou com o repositório de snapshots indisponível)
// as métricas são derivadas dos registros brutos da janela.
func (s *Service) MonthlyMetrics(workspaceID string, period string) (*domain.SaaSMetrics, []*domain.HealthSignal, error) {
	if _, err := utils.ParseMonth(period); err != nil {
		return nil, nil, err
	}

	snapshot, err := s.snapshotRepository.GetByWorkspaceAndPeriod(workspaceID, period)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"workspace_id": workspaceID,
			"period":       period,
		}).Warn("Erro ao consultar snapshot do período, recalculando métricas")
	}

	if snapshot != nil && snapshot.Metrics != nil {
		return snapshot.Metrics, EvaluateHealthSignals(snapshot.Metrics), nil
	}

	metrics, err := s.computeMonthlyMetrics(workspaceID, period)
	if err != nil {
		return nil, nil, err
	}

	return metrics, EvaluateHealthSignals(metrics), nil
}

// computeMonthlyMetrics deriva as métricas do período a partir dos registros
// brutos. As janelas trailing (burn rate, crescimento, CAC) usam os 3 meses
// que terminam no período alvo.
func (s *Service) computeMonthlyMetrics(workspaceID string, period string) (*domain.SaaSMetrics, error) {
	periodStart, err := utils.ParseMonth(period)
	if err != nil {
		return nil, err
	}

	// Janela trailing de 3 meses terminando no período alvo
	windowStart := periodStart.AddDate(0, -(burnRateWindowMonths - 1), 0)
	startDate := windowStart.Format(time.DateOnly)
	endDate := periodStart.AddDate(0, 1, -1).Format(time.DateOnly)

	transactions, err := s.revenueTransactionRepository.GetByDateRange(workspaceID, startDate, endDate)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"workspace_id": workspaceID,
			"period":       period,
		}).Error("Erro ao buscar transações de receita da janela de métricas")
		return nil, err
	}

	expenses, err := s.expenseRepository.GetByDateRange(workspaceID, startDate, endDate)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"workspace_id": workspaceID,
			"period":       period,
		}).Error("Erro ao buscar despesas da janela de métricas")
		return nil, err
	}

	logs, err := s.financialLogRepository.GetByDateRange(workspaceID, startDate, endDate)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"workspace_id": workspaceID,
			"period":       period,
		}).Error("Erro ao buscar logs financeiros da janela de métricas")
		return nil, err
	}

	return computeMetrics(period, transactions, expenses, logs), nil
}

// computeMetrics deriva todas as métricas do período a partir dos registros da
// janela. Função pura: chamadas repetidas com as mesmas entradas produzem
// saídas idênticas.
func computeMetrics(
	period string,
	transactions []*domain.RevenueTransaction,
	expenses []*domain.Expense,
	logs []*domain.FinancialLog,
) *domain.SaaSMetrics {
	series := MonthlyCashFlow(transactions, expenses)

	// Ponto do período alvo dentro da série (zerado quando não há registros)
	current := &domain.CashFlowPoint{Period: period}
	for _, point := range series {
		if point.Period == period {
			current = point
			break
		}
	}

	mrr := MonthlyRecurringRevenue(transactions, period)
	arr := AnnualRecurringRevenue(mrr)

	monthlyExpenses := make([]float64, 0, len(series))
	for _, point := range series {
		monthlyExpenses = append(monthlyExpenses, point.Expenses)
	}
	burnRate := BurnRate(monthlyExpenses)

	cashBalance := EstimatedCashBalance(current.NetCashFlow)
	runway := RunwayMonths(cashBalance, burnRate)

	var growthRate float64
	if len(series) > 0 {
		growthRate = GrowthRate(series[0].Revenue, series[len(series)-1].Revenue)
	}

	// Gasto de aquisição: categorias marketing e sales dentro da janela
	var acquisitionSpend float64
	for _, expense := range expenses {
		if expense == nil || expense.Amount <= 0 {
			continue
		}
		if expense.Category == domain.ExpenseCategoryMarketing || expense.Category == domain.ExpenseCategorySales {
			acquisitionSpend += expense.Amount
		}
	}

	newSignups, activeCustomers := signupCounts(logs)

	cac := CustomerAcquisitionCost(acquisitionSpend, newSignups)
	ltv := CustomerLifetimeValue(mrr, activeCustomers)

	margin := ProfitMargin(current.Revenue, current.Expenses)

	return &domain.SaaSMetrics{
		Period:           period,
		MRR:              mrr,
		ARR:              arr,
		BurnRate:         burnRate,
		RunwayMonths:     runway,
		RunwayUnlimited:  burnRate <= 0,
		GrowthRate:       growthRate,
		CAC:              cac,
		LTV:              ltv,
		LTVCACRatio:      LTVCACRatio(ltv, cac),
		CACPaybackMonths: CACPaybackMonths(cac, mrr),
		ProfitMargin:     margin,
		RuleOf40:         RuleOf40(growthRate, margin),
	}
}

// signupCounts extrai da janela de logs financeiros o total de novos signups e
// o número de clientes ativos (signups do log mais recente, usado como proxy
// da base ativa)
func signupCounts(logs []*domain.FinancialLog) (newSignups int, activeCustomers int) {
	var latest *domain.FinancialLog
	for _, log := range logs {
		if log == nil {
			continue
		}
		newSignups += log.Signups
		if latest == nil || log.Date > latest.Date {
			latest = log
		}
	}

	if latest != nil {
		activeCustomers = latest.Signups
	}

	return newSignups, activeCustomers
}

// RevenueByCategory agrupa a receita realizada do workspace por categoria
func (s *Service) RevenueByCategory(workspaceID string) ([]*domain.RevenueRollupItem, error) {
	transactions, err := s.revenueTransactionRepository.GetByWorkspace(workspaceID)
	if err != nil {
		logrus.WithError(err).WithField("workspace_id", workspaceID).
			Error("Erro ao buscar transações de receita do workspace")
		return nil, err
	}

	return RevenueByCategory(transactions), nil
}

// RevenueByProduct agrupa o valor dos negócios fechados por produto/serviço
func (s *Service) RevenueByProduct(workspaceID string) ([]*domain.RevenueRollupItem, error) {
	deals, err := s.dealRepository.GetByStage(workspaceID, domain.DealStageClosedWon)
	if err != nil {
		logrus.WithError(err).WithField("workspace_id", workspaceID).
			Error("Erro ao buscar negócios fechados do workspace")
		return nil, err
	}

	return RevenueByProduct(deals), nil
}

// ExpensesByCategory agrupa as despesas do workspace por categoria
func (s *Service) ExpensesByCategory(workspaceID string) ([]*domain.RevenueRollupItem, error) {
	expenses, err := s.expenseRepository.GetByWorkspace(workspaceID)
	if err != nil {
		logrus.WithError(err).WithField("workspace_id", workspaceID).
			Error("Erro ao buscar despesas do workspace")
		return nil, err
	}

	return ExpensesByCategory(expenses), nil
}

// SnapshotWorkspace recalcula as métricas do período a partir dos registros
// brutos e persiste o snapshot mensal. Snapshots existentes do mesmo
// workspace/período são sobrescritos, nunca servidos daqui.
func (s *Service) SnapshotWorkspace(workspaceID string, period string) (*domain.MetricsSnapshot, error) {
	metrics, err := s.computeMonthlyMetrics(workspaceID, period)
	if err != nil {
		return nil, err
	}

	snapshot := &domain.MetricsSnapshot{
		WorkspaceID: workspaceID,
		Period:      period,
		Metrics:     metrics,
	}

	if err := s.snapshotRepository.SaveOrUpdate(snapshot); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"workspace_id": workspaceID,
			"period":       period,
		}).Error("Erro ao salvar snapshot de métricas")
		return nil, err
	}

	return snapshot, nil
}

// MetricsHistory lista os snapshots mensais persistidos do workspace em ordem
// crescente de período
func (s *Service) MetricsHistory(workspaceID string) ([]*domain.MetricsSnapshot, error) {
	snapshots, err := s.snapshotRepository.GetByWorkspace(workspaceID)
	if err != nil {
		logrus.WithError(err).WithField("workspace_id", workspaceID).
			Error("Erro ao buscar histórico de snapshots do workspace")
		return nil, err
	}

	return snapshots, nil
}

// GetAvailablePeriods retorna os períodos (meses e anos) com snapshots disponíveis
func (s *Service) GetAvailablePeriods() (*domain.AvailablePeriods, error) {
	allPeriods, err := s.snapshotRepository.GetAllPeriods()
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar períodos de snapshots: %w", err)
	}

	periodMap := make(map[string]bool)
	yearMap := make(map[string]bool)
	monthMap := make(map[string]bool)

	for _, period := range allPeriods {
		periodMap[period] = true

		// Extrair ano e mês do período (formato yyyy-mm)
		if len(period) == 7 {
			year := period[:4]
			month := period[5:]

			yearMap[year] = true
			monthMap[month] = true
		}
	}

	// Converter mapas para slices
	periods := make([]string, 0, len(periodMap))
	for period := range periodMap {
		periods = append(periods, period)
	}

	years := make([]string, 0, len(yearMap))
	for year := range yearMap {
		years = append(years, year)
	}

	months := make([]string, 0, len(monthMap))
	for month := range monthMap {
		months = append(months, month)
	}

	// Ordenar os slices
	sort.Strings(periods)
	sort.Strings(years)
	sort.Strings(months)

	return &domain.AvailablePeriods{
		Periods: periods,
		Years:   years,
		Months:  months,
	}, nil
}
