package dashboard

import (
	"testing"
	"time"

	"github.com/founderhq/founderhq-api/infrastructure/repository/mocks"
	"github.com/founderhq/founderhq-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func floatPtr(f float64) *float64 {
	return &f
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestBuildPipelineData(t *testing.T) {
	closeSoon := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	closeLater := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		deals    []*domain.Deal
		validate func(t *testing.T, data *domain.PipelineData)
	}{
		{
			name:  "Sem negócios o bloco é zerado",
			deals: []*domain.Deal{},
			validate: func(t *testing.T, data *domain.PipelineData) {
				assert.Equal(t, 0, data.OpenDealCount)
				assert.Equal(t, 0.0, data.OpenDealValue)
				assert.Nil(t, data.NextClosingDeal)
				assert.Empty(t, data.TopDeals)
			},
		},
		{
			name: "Negócios fechados ficam fora do pipeline",
			deals: []*domain.Deal{
				{ID: "d1", Stage: domain.DealStageClosedWon, Value: floatPtr(1000)},
				{ID: "d2", Stage: domain.DealStageClosedLost, Value: floatPtr(500)},
				{ID: "d3", Stage: "negotiation", Value: floatPtr(300)},
			},
			validate: func(t *testing.T, data *domain.PipelineData) {
				assert.Equal(t, 1, data.OpenDealCount)
				assert.Equal(t, 300.0, data.OpenDealValue)
			},
		},
		{
			name: "Contagem de alta probabilidade e média",
			deals: []*domain.Deal{
				{ID: "d1", Stage: "proposal", Probability: floatPtr(80), Value: floatPtr(100)},
				{ID: "d2", Stage: "proposal", Probability: floatPtr(60), Value: floatPtr(100)},
				{ID: "d3", Stage: "proposal", Probability: floatPtr(40), Value: floatPtr(100)},
				{ID: "d4", Stage: "proposal", Value: floatPtr(100)},
			},
			validate: func(t *testing.T, data *domain.PipelineData) {
				assert.Equal(t, 2, data.HighProbabilityDeal)
				assert.Equal(t, 45.0, data.AverageProbability)
			},
		},
		{
			name: "Próximo fechamento exclui negócios sem data",
			deals: []*domain.Deal{
				{ID: "d1", Stage: "proposal", Value: floatPtr(100)},
				{ID: "d2", Stage: "proposal", Value: floatPtr(100), ExpectedCloseDate: timePtr(closeLater)},
				{ID: "d3", Stage: "proposal", Value: floatPtr(100), ExpectedCloseDate: timePtr(closeSoon)},
			},
			validate: func(t *testing.T, data *domain.PipelineData) {
				assert.NotNil(t, data.NextClosingDeal)
				assert.Equal(t, "d3", data.NextClosingDeal.ID)
			},
		},
		{
			name: "Top 3 por valor decrescente com desempate estável",
			deals: []*domain.Deal{
				{ID: "d1", Stage: "proposal", Value: floatPtr(100)},
				{ID: "d2", Stage: "proposal", Value: floatPtr(500)},
				{ID: "d3", Stage: "proposal", Value: floatPtr(500)},
				{ID: "d4", Stage: "proposal", Value: floatPtr(200), TotalValue: floatPtr(900)},
				{ID: "d5", Stage: "proposal", Value: floatPtr(50)},
			},
			validate: func(t *testing.T, data *domain.PipelineData) {
				assert.Len(t, data.TopDeals, 3)
				// total_value tem precedência sobre value
				assert.Equal(t, "d4", data.TopDeals[0].ID)
				// Empate entre d2 e d3 preserva a ordem de entrada
				assert.Equal(t, "d2", data.TopDeals[1].ID)
				assert.Equal(t, "d3", data.TopDeals[2].ID)
			},
		},
		{
			name: "Partição aberto/fechado cobre todos os negócios",
			deals: []*domain.Deal{
				{ID: "d1", Stage: "proposal"},
				{ID: "d2", Stage: domain.DealStageClosedWon},
				{ID: "d3", Stage: "discovery"},
				{ID: "d4", Stage: domain.DealStageClosedLost},
			},
			validate: func(t *testing.T, data *domain.PipelineData) {
				closed := 0
				for _, deal := range []*domain.Deal{
					{Stage: "proposal"}, {Stage: domain.DealStageClosedWon},
					{Stage: "discovery"}, {Stage: domain.DealStageClosedLost},
				} {
					if !deal.IsOpen() {
						closed++
					}
				}
				assert.Equal(t, 4, data.OpenDealCount+closed)
				assert.Equal(t, 2, data.OpenDealCount)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, buildPipelineData(tt.deals))
		})
	}
}

func TestBuildMarketingData(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	service := &Service{now: func() time.Time { return now }}

	pastDue := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	dueSoon := time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)
	dueLater := time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC)

	campaigns := []*domain.MarketingCampaign{
		{ID: "c1", Status: domain.CampaignStatusInProgress, DueDate: timePtr(dueLater)},
		{ID: "c2", Status: domain.CampaignStatusPublished},
		{ID: "c3", Status: domain.CampaignStatusPlanned, DueDate: timePtr(dueSoon)},
		{ID: "c4", Status: domain.CampaignStatusPlanned, DueDate: timePtr(pastDue)},
		{ID: "c5", Status: domain.CampaignStatusArchived, DueDate: timePtr(pastDue)},
	}

	data := service.buildMarketingData(campaigns)

	assert.Equal(t, 2, data.ActiveCount)
	assert.Equal(t, 2, data.PlannedCount)
	assert.Equal(t, 1, data.OverdueCount)
	assert.NotNil(t, data.UpcomingCampaign)
	assert.Equal(t, "c3", data.UpcomingCampaign.ID)
}

func TestBuildFinancialData(t *testing.T) {
	tests := []struct {
		name     string
		logs     []*domain.FinancialLog
		validate func(t *testing.T, data *domain.FinancialData)
	}{
		{
			name: "Sem logs os deltas são zerados",
			logs: []*domain.FinancialLog{},
			validate: func(t *testing.T, data *domain.FinancialData) {
				assert.Nil(t, data.Latest)
				assert.Nil(t, data.Previous)
				assert.Equal(t, "+$0", data.MRRDeltaFormatted)
				assert.Equal(t, "+0", data.SignupFormatted)
			},
		},
		{
			name: "Um único log não produz comparação",
			logs: []*domain.FinancialLog{
				{Date: "2024-01-01", MRR: 1000},
			},
			validate: func(t *testing.T, data *domain.FinancialData) {
				assert.NotNil(t, data.Latest)
				assert.Nil(t, data.Previous)
				assert.Equal(t, 0.0, data.MRRDeltaPercent)
			},
		},
		{
			name: "Comparação entre o mais recente e o anterior com deltas formatados",
			logs: []*domain.FinancialLog{
				{Date: "2024-01-01", MRR: 1000, GMV: 5000, Signups: 10},
				{Date: "2024-02-01", MRR: 1500, GMV: 6000, Signups: 15},
			},
			validate: func(t *testing.T, data *domain.FinancialData) {
				assert.Equal(t, "2024-02-01", data.Latest.Date)
				assert.Equal(t, "2024-01-01", data.Previous.Date)
				assert.Equal(t, 50.0, data.MRRDeltaPercent)
				assert.Equal(t, 1000.0, data.GMVDelta)
				assert.Equal(t, 5, data.SignupDelta)
				assert.Equal(t, "+$500", data.MRRDeltaFormatted)
				assert.Equal(t, "+5", data.SignupFormatted)
			},
		},
		{
			name: "MRR anterior zerado guarda a divisão por zero",
			logs: []*domain.FinancialLog{
				{Date: "2024-01-01", MRR: 0, Signups: 2},
				{Date: "2024-02-01", MRR: 800, Signups: 5},
			},
			validate: func(t *testing.T, data *domain.FinancialData) {
				assert.Equal(t, 0.0, data.MRRDeltaPercent)
				assert.Equal(t, "+$800", data.MRRDeltaFormatted)
			},
		},
		{
			name: "Delta negativo é formatado com sinal de menos",
			logs: []*domain.FinancialLog{
				{Date: "2024-01-01", MRR: 2000, Signups: 10},
				{Date: "2024-02-01", MRR: 1500, Signups: 7},
			},
			validate: func(t *testing.T, data *domain.FinancialData) {
				assert.Equal(t, -25.0, data.MRRDeltaPercent)
				assert.Equal(t, "-$500", data.MRRDeltaFormatted)
				assert.Equal(t, "-3", data.SignupFormatted)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, buildFinancialData(tt.logs))
		})
	}
}

func TestAddReceivables(t *testing.T) {
	tests := []struct {
		name     string
		pending  []*domain.RevenueTransaction
		overdue  []*domain.RevenueTransaction
		validate func(t *testing.T, data *domain.FinancialData)
	}{
		{
			name:    "Sem transações em aberto os totais são zerados",
			pending: []*domain.RevenueTransaction{},
			overdue: nil,
			validate: func(t *testing.T, data *domain.FinancialData) {
				assert.Equal(t, 0, data.PendingReceivableCount)
				assert.Equal(t, 0.0, data.PendingReceivableValue)
				assert.Equal(t, 0, data.OverdueReceivableCount)
			},
		},
		{
			name: "Pendentes e vencidas são somadas separadamente",
			pending: []*domain.RevenueTransaction{
				{Status: domain.TransactionStatusPending, Amount: 300},
				{Status: domain.TransactionStatusPending, Amount: 700},
			},
			overdue: []*domain.RevenueTransaction{
				{Status: domain.TransactionStatusOverdue, Amount: 450},
			},
			validate: func(t *testing.T, data *domain.FinancialData) {
				assert.Equal(t, 2, data.PendingReceivableCount)
				assert.Equal(t, 1000.0, data.PendingReceivableValue)
				assert.Equal(t, 1, data.OverdueReceivableCount)
				assert.Equal(t, 450.0, data.OverdueReceivableValue)
			},
		},
		{
			name:    "Entradas nulas são ignoradas",
			pending: []*domain.RevenueTransaction{nil, {Amount: 100}},
			overdue: []*domain.RevenueTransaction{nil},
			validate: func(t *testing.T, data *domain.FinancialData) {
				assert.Equal(t, 1, data.PendingReceivableCount)
				assert.Equal(t, 100.0, data.PendingReceivableValue)
				assert.Equal(t, 0, data.OverdueReceivableCount)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := &domain.FinancialData{}
			addReceivables(data, tt.pending, tt.overdue)
			tt.validate(t, data)
		})
	}
}

func TestService_GetDashboardMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dealRepo := mocks.NewMockDealRepository(ctrl)
	campaignRepo := mocks.NewMockMarketingCampaignRepository(ctrl)
	logRepo := mocks.NewMockFinancialLogRepository(ctrl)
	txRepo := mocks.NewMockRevenueTransactionRepository(ctrl)

	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	service := &Service{
		dealRepository:         dealRepo,
		campaignRepository:     campaignRepo,
		financialLogRepository: logRepo,
		transactionRepository:  txRepo,
		now:                    func() time.Time { return now },
	}

	t.Run("Monta os três blocos do dashboard com recebíveis", func(t *testing.T) {
		dealRepo.EXPECT().GetByWorkspace("ws-1").Return([]*domain.Deal{
			{ID: "d1", Stage: "proposal", Value: floatPtr(1000)},
		}, nil)
		campaignRepo.EXPECT().GetByWorkspace("ws-1").Return([]*domain.MarketingCampaign{
			{ID: "c1", Status: domain.CampaignStatusPublished},
		}, nil)
		logRepo.EXPECT().GetByWorkspace("ws-1").Return([]*domain.FinancialLog{
			{Date: "2024-01-01", MRR: 1000, GMV: 5000, Signups: 10},
			{Date: "2024-02-01", MRR: 1500, GMV: 6000, Signups: 15},
		}, nil)
		txRepo.EXPECT().GetByStatus("ws-1", domain.TransactionStatusPending).Return([]*domain.RevenueTransaction{
			{Status: domain.TransactionStatusPending, Amount: 250},
		}, nil)
		txRepo.EXPECT().GetByStatus("ws-1", domain.TransactionStatusOverdue).Return([]*domain.RevenueTransaction{}, nil)

		result, err := service.GetDashboardMetrics("ws-1")

		assert.NoError(t, err)
		assert.Equal(t, "ws-1", result.WorkspaceID)
		assert.Equal(t, now, result.GeneratedAt)
		assert.Equal(t, 1, result.Pipeline.OpenDealCount)
		assert.Equal(t, 1, result.Marketing.ActiveCount)
		assert.Equal(t, "+$500", result.Financial.MRRDeltaFormatted)
		assert.Equal(t, 1, result.Financial.PendingReceivableCount)
		assert.Equal(t, 250.0, result.Financial.PendingReceivableValue)
		assert.Equal(t, 0, result.Financial.OverdueReceivableCount)
	})

	t.Run("Erro de repositório interrompe a montagem", func(t *testing.T) {
		dealRepo.EXPECT().GetByWorkspace("ws-1").Return(nil, assert.AnError)

		result, err := service.GetDashboardMetrics("ws-1")

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
