package recording

import (
	"fmt"
	"time"

	"github.com/founderhq/founderhq-api/infrastructure/repository"
	"github.com/founderhq/founderhq-api/internal/domain"
	"github.com/founderhq/founderhq-api/pkg/utils"
)

// Recorder define a interface do serviço de ingestão de registros de um workspace
type Recorder interface {
	RecordFinancialLog(workspaceID string, entry *domain.FinancialLog) (*domain.FinancialLog, error)
	RecordExpense(workspaceID string, expense *domain.Expense) (*domain.Expense, error)
	RecordRevenueTransaction(workspaceID string, tx *domain.RevenueTransaction) (*domain.RevenueTransaction, error)
	RecordDeal(workspaceID string, deal *domain.Deal) (*domain.Deal, error)
	RecordCampaign(workspaceID string, campaign *domain.MarketingCampaign) (*domain.MarketingCampaign, error)

	ListFinancialLogs(workspaceID string) ([]*domain.FinancialLog, error)
	ListExpenses(workspaceID string) ([]*domain.Expense, error)
	ListRevenueTransactions(workspaceID string) ([]*domain.RevenueTransaction, error)
	ListDeals(workspaceID string) ([]*domain.Deal, error)
	ListCampaigns(workspaceID string) ([]*domain.MarketingCampaign, error)
}

type Service struct {
	financialLogRepository       repository.FinancialLogRepository
	expenseRepository            repository.ExpenseRepository
	revenueTransactionRepository repository.RevenueTransactionRepository
	dealRepository               repository.DealRepository
	campaignRepository           repository.MarketingCampaignRepository
}

func NewService(
	financialLogRepository repository.FinancialLogRepository,
	expenseRepository repository.ExpenseRepository,
	revenueTransactionRepository repository.RevenueTransactionRepository,
	dealRepository repository.DealRepository,
	campaignRepository repository.MarketingCampaignRepository,
) Recorder {
	return &Service{
		financialLogRepository:       financialLogRepository,
		expenseRepository:            expenseRepository,
		revenueTransactionRepository: revenueTransactionRepository,
		dealRepository:               dealRepository,
		campaignRepository:           campaignRepository,
	}
}

// RecordFinancialLog registra um novo log financeiro diário. Datas duplicadas são
// permitidas: cada registro é uma entrada independente do histórico.
func (s *Service) RecordFinancialLog(workspaceID string, entry *domain.FinancialLog) (*domain.FinancialLog, error) {
	if entry == nil {
		return nil, fmt.Errorf("log financeiro não informado")
	}

	if err := validateISODate(entry.Date); err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar identificador: %w", err)
	}

	entry.ID = id
	entry.WorkspaceID = workspaceID

	if err := s.financialLogRepository.Create(entry); err != nil {
		return nil, fmt.Errorf("erro ao registrar log financeiro: %w", err)
	}

	return entry, nil
}

// RecordExpense registra uma nova despesa, normalizando valor e categoria
func (s *Service) RecordExpense(workspaceID string, expense *domain.Expense) (*domain.Expense, error) {
	if expense == nil {
		return nil, fmt.Errorf("despesa não informada")
	}

	if err := validateISODate(expense.Date); err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar identificador: %w", err)
	}

	expense.ID = id
	expense.WorkspaceID = workspaceID
	expense.Sanitize()

	if err := s.expenseRepository.Create(expense); err != nil {
		return nil, fmt.Errorf("erro ao registrar despesa: %w", err)
	}

	return expense, nil
}

// RecordRevenueTransaction registra uma nova transação de receita
func (s *Service) RecordRevenueTransaction(workspaceID string, tx *domain.RevenueTransaction) (*domain.RevenueTransaction, error) {
	if tx == nil {
		return nil, fmt.Errorf("transação não informada")
	}

	if err := validateISODate(tx.TransactionDate); err != nil {
		return nil, err
	}

	if tx.Status == "" {
		tx.Status = domain.TransactionStatusPending
	}

	if tx.Currency == "" {
		tx.Currency = "USD"
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar identificador: %w", err)
	}

	tx.ID = id
	tx.WorkspaceID = workspaceID

	if err := s.revenueTransactionRepository.Create(tx); err != nil {
		return nil, fmt.Errorf("erro ao registrar transação: %w", err)
	}

	return tx, nil
}

// RecordDeal registra um novo negócio no pipeline
func (s *Service) RecordDeal(workspaceID string, deal *domain.Deal) (*domain.Deal, error) {
	if deal == nil {
		return nil, fmt.Errorf("negócio não informado")
	}

	if deal.Name == "" {
		return nil, fmt.Errorf("nome do negócio é obrigatório")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar identificador: %w", err)
	}

	deal.ID = id
	deal.WorkspaceID = workspaceID

	if err := s.dealRepository.Create(deal); err != nil {
		return nil, fmt.Errorf("erro ao registrar negócio: %w", err)
	}

	return deal, nil
}

// RecordCampaign registra uma nova campanha de marketing
func (s *Service) RecordCampaign(workspaceID string, campaign *domain.MarketingCampaign) (*domain.MarketingCampaign, error) {
	if campaign == nil {
		return nil, fmt.Errorf("campanha não informada")
	}

	if campaign.Name == "" {
		return nil, fmt.Errorf("nome da campanha é obrigatório")
	}

	if campaign.Status == "" {
		campaign.Status = domain.CampaignStatusPlanned
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar identificador: %w", err)
	}

	campaign.ID = id
	campaign.WorkspaceID = workspaceID

	if err := s.campaignRepository.Create(campaign); err != nil {
		return nil, fmt.Errorf("erro ao registrar campanha: %w", err)
	}

	return campaign, nil
}

func (s *Service) ListFinancialLogs(workspaceID string) ([]*domain.FinancialLog, error) {
	return s.financialLogRepository.GetByWorkspace(workspaceID)
}

func (s *Service) ListExpenses(workspaceID string) ([]*domain.Expense, error) {
	return s.expenseRepository.GetByWorkspace(workspaceID)
}

func (s *Service) ListRevenueTransactions(workspaceID string) ([]*domain.RevenueTransaction, error) {
	return s.revenueTransactionRepository.GetByWorkspace(workspaceID)
}

func (s *Service) ListDeals(workspaceID string) ([]*domain.Deal, error) {
	return s.dealRepository.GetByWorkspace(workspaceID)
}

func (s *Service) ListCampaigns(workspaceID string) ([]*domain.MarketingCampaign, error) {
	return s.campaignRepository.GetByWorkspace(workspaceID)
}

// validateISODate garante o formato ISO YYYY-MM-DD exigido pelos agregadores
func validateISODate(date string) error {
	if date == "" {
		return fmt.Errorf("data é obrigatória")
	}
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return fmt.Errorf("data inválida %q (esperado YYYY-MM-DD): %w", date, err)
	}
	return nil
}
