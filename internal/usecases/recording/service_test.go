package recording

import (
	"testing"

	"github.com/founderhq/founderhq-api/infrastructure/repository/mocks"
	"github.com/founderhq/founderhq-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRecordingService(ctrl *gomock.Controller) (
	*Service,
	*mocks.MockFinancialLogRepository,
	*mocks.MockExpenseRepository,
	*mocks.MockRevenueTransactionRepository,
	*mocks.MockDealRepository,
	*mocks.MockMarketingCampaignRepository,
) {
	mockFinancialLogRepo := mocks.NewMockFinancialLogRepository(ctrl)
	mockExpenseRepo := mocks.NewMockExpenseRepository(ctrl)
	mockTransactionRepo := mocks.NewMockRevenueTransactionRepository(ctrl)
	mockDealRepo := mocks.NewMockDealRepository(ctrl)
	mockCampaignRepo := mocks.NewMockMarketingCampaignRepository(ctrl)

	service := &Service{
		financialLogRepository:       mockFinancialLogRepo,
		expenseRepository:            mockExpenseRepo,
		revenueTransactionRepository: mockTransactionRepo,
		dealRepository:               mockDealRepo,
		campaignRepository:           mockCampaignRepo,
	}

	return service, mockFinancialLogRepo, mockExpenseRepo, mockTransactionRepo, mockDealRepo, mockCampaignRepo
}

func TestService_RecordFinancialLog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockFinancialLogRepo, _, _, _, _ := newRecordingService(ctrl)

	t.Run("Registra log com ID gerado e workspace da rota", func(t *testing.T) {
		var saved *domain.FinancialLog
		mockFinancialLogRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(entry *domain.FinancialLog) error {
				saved = entry
				return nil
			})

		entry, err := service.RecordFinancialLog("ws-1", &domain.FinancialLog{
			WorkspaceID: "ws-ignorado",
			Date:        "2024-03-15",
			MRR:         1500,
			GMV:         4200,
			Signups:     12,
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, entry.ID)
		assert.Equal(t, "ws-1", entry.WorkspaceID)
		assert.Equal(t, saved, entry)
	})

	t.Run("Data fora do formato ISO é rejeitada", func(t *testing.T) {
		_, err := service.RecordFinancialLog("ws-1", &domain.FinancialLog{Date: "15/03/2024"})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "YYYY-MM-DD")
	})

	t.Run("Data ausente é rejeitada", func(t *testing.T) {
		_, err := service.RecordFinancialLog("ws-1", &domain.FinancialLog{})

		assert.Error(t, err)
	})
}

func TestService_RecordExpense(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, mockExpenseRepo, _, _, _ := newRecordingService(ctrl)

	t.Run("Despesa negativa é normalizada para zero e categoria vazia vira other", func(t *testing.T) {
		mockExpenseRepo.EXPECT().
			Create(gomock.Any()).
			Return(nil)

		expense, err := service.RecordExpense("ws-1", &domain.Expense{
			Date:   "2024-03-10",
			Amount: -250,
		})

		assert.NoError(t, err)
		assert.Equal(t, float64(0), expense.Amount)
		assert.Equal(t, domain.ExpenseCategoryOther, expense.Category)
	})
}

func TestService_RecordRevenueTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, mockTransactionRepo, _, _ := newRecordingService(ctrl)

	t.Run("Status e moeda recebem valores padrão quando ausentes", func(t *testing.T) {
		mockTransactionRepo.EXPECT().
			Create(gomock.Any()).
			Return(nil)

		tx, err := service.RecordRevenueTransaction("ws-1", &domain.RevenueTransaction{
			TransactionDate: "2024-03-01",
			Amount:          500,
			TransactionType: domain.TransactionTypeInvoice,
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.TransactionStatusPending, tx.Status)
		assert.Equal(t, "USD", tx.Currency)
	})

	t.Run("Status informado é preservado", func(t *testing.T) {
		mockTransactionRepo.EXPECT().
			Create(gomock.Any()).
			Return(nil)

		tx, err := service.RecordRevenueTransaction("ws-1", &domain.RevenueTransaction{
			TransactionDate: "2024-03-01",
			Amount:          500,
			Status:          domain.TransactionStatusPaid,
			Currency:        "BRL",
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.TransactionStatusPaid, tx.Status)
		assert.Equal(t, "BRL", tx.Currency)
	})
}

func TestService_RecordDeal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, _, mockDealRepo, _ := newRecordingService(ctrl)

	t.Run("Negócio sem nome é rejeitado", func(t *testing.T) {
		_, err := service.RecordDeal("ws-1", &domain.Deal{Stage: "proposal"})

		assert.Error(t, err)
	})

	t.Run("Negócio válido recebe ID e workspace", func(t *testing.T) {
		mockDealRepo.EXPECT().
			Create(gomock.Any()).
			Return(nil)

		deal, err := service.RecordDeal("ws-1", &domain.Deal{Name: "Contrato Acme", Stage: "proposal"})

		assert.NoError(t, err)
		assert.NotEmpty(t, deal.ID)
		assert.Equal(t, "ws-1", deal.WorkspaceID)
	})
}

func TestService_RecordCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, _, _, mockCampaignRepo := newRecordingService(ctrl)

	t.Run("Campanha sem status inicia como Planned", func(t *testing.T) {
		mockCampaignRepo.EXPECT().
			Create(gomock.Any()).
			Return(nil)

		campaign, err := service.RecordCampaign("ws-1", &domain.MarketingCampaign{Name: "Lançamento Q2"})

		assert.NoError(t, err)
		assert.Equal(t, domain.CampaignStatusPlanned, campaign.Status)
	})

	t.Run("Campanha sem nome é rejeitada", func(t *testing.T) {
		_, err := service.RecordCampaign("ws-1", &domain.MarketingCampaign{})

		assert.Error(t, err)
	})
}
