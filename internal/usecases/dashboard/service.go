package dashboard

import (
	"sort"
	"time"

	"github.com/founderhq/founderhq-api/infrastructure/repository"
	"github.com/founderhq/founderhq-api/internal/domain"
	"github.com/founderhq/founderhq-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Limiar de probabilidade para um negócio contar como alta probabilidade
const highProbabilityThreshold = 60

// topDealsLimit é o tamanho da lista de maiores negócios do pipeline
const topDealsLimit = 3

// Service implementa a interface Dashboarder sobre os repositórios do workspace
type Service struct {
	dealRepository         repository.DealRepository
	campaignRepository     repository.MarketingCampaignRepository
	financialLogRepository repository.FinancialLogRepository
	transactionRepository  repository.RevenueTransactionRepository
	now                    func() time.Time
}

// NewService cria uma nova instância do serviço de dashboard
func NewService(
	dealRepo repository.DealRepository,
	campaignRepo repository.MarketingCampaignRepository,
	financialLogRepo repository.FinancialLogRepository,
	transactionRepo repository.RevenueTransactionRepository,
) Dashboarder {
	return &Service{
		dealRepository:         dealRepo,
		campaignRepository:     campaignRepo,
		financialLogRepository: financialLogRepo,
		transactionRepository:  transactionRepo,
		now:                    time.Now,
	}
}

// GetDashboardMetrics monta os três blocos do dashboard do workspace.
// Cada bloco é derivado de forma independente dos registros brutos; entradas
// vazias produzem blocos zerados, nunca erro.
func (s *Service) GetDashboardMetrics(workspaceID string) (*domain.DashboardMetrics, error) {
	deals, err := s.dealRepository.GetByWorkspace(workspaceID)
	if err != nil {
		logrus.WithError(err).WithField("workspace_id", workspaceID).
			Error("Erro ao buscar negócios do workspace")
		return nil, err
	}

	campaigns, err := s.campaignRepository.GetByWorkspace(workspaceID)
	if err != nil {
		logrus.WithError(err).WithField("workspace_id", workspaceID).
			Error("Erro ao buscar campanhas do workspace")
		return nil, err
	}

	logs, err := s.financialLogRepository.GetByWorkspace(workspaceID)
	if err != nil {
		logrus.WithError(err).WithField("workspace_id", workspaceID).
			Error("Erro ao buscar logs financeiros do workspace")
		return nil, err
	}

	pending, err := s.transactionRepository.GetByStatus(workspaceID, domain.TransactionStatusPending)
	if err != nil {
		logrus.WithError(err).WithField("workspace_id", workspaceID).
			Error("Erro ao buscar transações pendentes do workspace")
		return nil, err
	}

	overdue, err := s.transactionRepository.GetByStatus(workspaceID, domain.TransactionStatusOverdue)
	if err != nil {
		logrus.WithError(err).WithField("workspace_id", workspaceID).
			Error("Erro ao buscar transações vencidas do workspace")
		return nil, err
	}

	financial := buildFinancialData(logs)
	addReceivables(financial, pending, overdue)

	return &domain.DashboardMetrics{
		WorkspaceID: workspaceID,
		Pipeline:    buildPipelineData(deals),
		Marketing:   s.buildMarketingData(campaigns),
		Financial:   financial,
		GeneratedAt: s.now(),
	}, nil
}

// buildPipelineData resume os negócios abertos do pipeline
func buildPipelineData(deals []*domain.Deal) *domain.PipelineData {
	data := &domain.PipelineData{
		TopDeals: make([]*domain.Deal, 0, topDealsLimit),
	}

	openDeals := make([]*domain.Deal, 0, len(deals))
	var probabilitySum float64

	for _, deal := range deals {
		if deal == nil || !deal.IsOpen() {
			continue
		}

		openDeals = append(openDeals, deal)
		data.OpenDealCount++
		data.OpenDealValue += deal.EffectiveValue()
		probabilitySum += deal.EffectiveProbability()

		if deal.EffectiveProbability() >= highProbabilityThreshold {
			data.HighProbabilityDeal++
		}
	}

	if data.OpenDealCount > 0 {
		data.AverageProbability = utils.RoundWithTwoDecimalPlace(probabilitySum / float64(data.OpenDealCount))
	}

	data.NextClosingDeal = nextClosingDeal(openDeals)
	data.TopDeals = topDeals(openDeals)

	return data
}

// nextClosingDeal retorna o negócio aberto com a data de fechamento esperada
// mais próxima. Negócios sem data de fechamento são excluídos.
func nextClosingDeal(openDeals []*domain.Deal) *domain.Deal {
	var next *domain.Deal
	for _, deal := range openDeals {
		if deal.ExpectedCloseDate == nil {
			continue
		}
		if next == nil || deal.ExpectedCloseDate.Before(*next.ExpectedCloseDate) {
			next = deal
		}
	}
	return next
}

// topDeals retorna os maiores negócios abertos por valor efetivo decrescente.
// A ordenação é estável: empates preservam a ordem de entrada.
func topDeals(openDeals []*domain.Deal) []*domain.Deal {
	sorted := make([]*domain.Deal, len(openDeals))
	copy(sorted, openDeals)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EffectiveValue() > sorted[j].EffectiveValue()
	})

	if len(sorted) > topDealsLimit {
		sorted = sorted[:topDealsLimit]
	}

	return sorted
}

// buildMarketingData resume o estado das campanhas de marketing
func (s *Service) buildMarketingData(campaigns []*domain.MarketingCampaign) *domain.MarketingData {
	data := &domain.MarketingData{}
	now := s.now()

	var upcoming *domain.MarketingCampaign

	for _, campaign := range campaigns {
		if campaign == nil {
			continue
		}

		if campaign.IsActive() {
			data.ActiveCount++
		}

		if campaign.Status == domain.CampaignStatusPlanned {
			data.PlannedCount++
		}

		if campaign.DueDate == nil || campaign.Status == domain.CampaignStatusArchived {
			continue
		}

		if campaign.DueDate.Before(now) {
			data.OverdueCount++
			continue
		}

		if upcoming == nil || campaign.DueDate.Before(*upcoming.DueDate) {
			upcoming = campaign
		}
	}

	data.UpcomingCampaign = upcoming

	return data
}

// buildFinancialData compara o log financeiro mais recente com o anterior.
// A ordenação é decrescente pela string da data ISO.
func buildFinancialData(logs []*domain.FinancialLog) *domain.FinancialData {
	data := &domain.FinancialData{
		MRRDeltaFormatted: utils.FormatSignedCurrency(0),
		SignupFormatted:   utils.FormatSignedInt(0),
	}

	sorted := make([]*domain.FinancialLog, 0, len(logs))
	for _, log := range logs {
		if log != nil {
			sorted = append(sorted, log)
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})

	if len(sorted) == 0 {
		return data
	}

	data.Latest = sorted[0]
	if len(sorted) < 2 {
		return data
	}

	data.Previous = sorted[1]

	mrrDelta := data.Latest.MRR - data.Previous.MRR
	data.MRRDeltaFormatted = utils.FormatSignedCurrency(mrrDelta)

	// Delta percentual guardado pela verificação do MRR anterior
	if data.Previous.MRR != 0 {
		data.MRRDeltaPercent = utils.RoundWithTwoDecimalPlace(mrrDelta / data.Previous.MRR * 100)
	}

	data.GMVDelta = data.Latest.GMV - data.Previous.GMV
	data.SignupDelta = data.Latest.Signups - data.Previous.Signups
	data.SignupFormatted = utils.FormatSignedInt(data.SignupDelta)

	return data
}

// addReceivables acrescenta ao bloco financeiro os totais de recebíveis
// pendentes e vencidos do workspace
func addReceivables(data *domain.FinancialData, pending, overdue []*domain.RevenueTransaction) {
	for _, tx := range pending {
		if tx == nil {
			continue
		}
		data.PendingReceivableCount++
		data.PendingReceivableValue += tx.Amount
	}

	for _, tx := range overdue {
		if tx == nil {
			continue
		}
		data.OverdueReceivableCount++
		data.OverdueReceivableValue += tx.Amount
	}
}
