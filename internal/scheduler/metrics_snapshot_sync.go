package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/founderhq/founderhq-api/infrastructure/repository"
	"github.com/founderhq/founderhq-api/internal/config"
	"github.com/founderhq/founderhq-api/internal/usecases/metrics"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// MetricsSnapshotSyncConfig representa a configuração do agendador de snapshots de métricas
type MetricsSnapshotSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
	MonthLookback     int
	RetentionCron     string
	RetentionMonths   int
	RetentionEnabled  bool
}

// MetricsSnapshotSyncService gerencia o agendamento e execução do snapshot mensal
// de métricas de todos os workspaces, além da limpeza de snapshots antigos
type MetricsSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              MetricsSnapshotSyncConfig
	financialLogRepo    repository.FinancialLogRepository
	expenseRepo         repository.ExpenseRepository
	snapshotRepo        repository.MetricsSnapshotRepository
	metricsService      metrics.Metricer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewMetricsSnapshotSyncService cria uma nova instância do serviço de snapshot de métricas
func NewMetricsSnapshotSyncService(
	financialLogRepo repository.FinancialLogRepository,
	expenseRepo repository.ExpenseRepository,
	snapshotRepo repository.MetricsSnapshotRepository,
	metricsService metrics.Metricer,
	appConfig *config.Config,
) *MetricsSnapshotSyncService {
	// Criar a configuração com base na config global
	syncConfig := MetricsSnapshotSyncConfig{
		CronSchedule:      appConfig.MetricsSync.CronSchedule,
		MaxConcurrentJobs: appConfig.MetricsSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.MetricsSync.Enabled,
		MonthLookback:     appConfig.MetricsSync.MonthLookback,
		RetentionCron:     appConfig.SnapshotRetention.CronSchedule,
		RetentionMonths:   appConfig.SnapshotRetention.RetentionMonths,
		RetentionEnabled:  appConfig.SnapshotRetention.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
		"month_lookback":      syncConfig.MonthLookback,
	}).Info("Configuração do agendador de snapshots de métricas carregada")

	return &MetricsSnapshotSyncService{
		scheduler:        scheduler,
		config:           syncConfig,
		financialLogRepo: financialLogRepo,
		expenseRepo:      expenseRepo,
		snapshotRepo:     snapshotRepo,
		metricsService:   metricsService,
		syncRunning:      false,
	}
}

// Start inicia o agendador
func (s *MetricsSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled && !s.config.RetentionEnabled {
		logrus.Info("Snapshot de métricas e retenção desabilitados por configuração")
		return nil
	}

	if s.config.SyncEnabled {
		logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots de métricas")

		_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
			s.syncMetricsSnapshots()
		})
		if err != nil {
			return fmt.Errorf("erro ao agendar snapshot de métricas: %w", err)
		}
	}

	if s.config.RetentionEnabled {
		logrus.WithField("cron", s.config.RetentionCron).Info("Iniciando agendador de retenção de snapshots")

		_, err := s.scheduler.Cron(s.config.RetentionCron).Do(func() {
			s.cleanupOldSnapshots()
		})
		if err != nil {
			return fmt.Errorf("erro ao agendar retenção de snapshots: %w", err)
		}
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshots de métricas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncMetricsSnapshots calcula e persiste os snapshots mensais de todos os workspaces
func (s *MetricsSnapshotSyncService) syncMetricsSnapshots() {
	startTime := time.Now()

	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Snapshot de métricas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	// GetStatus lê os timestamps sob o mesmo mutex
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando snapshot de métricas para todos os workspaces")

	workspaces, err := s.getWorkspaces()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de workspaces para snapshot de métricas")
		return
	}

	if len(workspaces) == 0 {
		logrus.Info("Nenhum workspace encontrado para snapshot de métricas")
		return
	}

	for i := 1; i <= s.config.MonthLookback; i++ {
		month := time.Now().AddDate(0, -i, 0)
		period := month.Format("2006-01")

		logrus.WithField("period", period).Info("Período para snapshot de métricas")

		s.processSnapshots(workspaces, period)
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":   duration.String(),
		"workspaces": len(workspaces),
	}).Info("Snapshot de métricas concluído")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// getWorkspaces busca os workspaces com registros financeiros
func (s *MetricsSnapshotSyncService) getWorkspaces() ([]string, error) {
	workspaces, err := s.financialLogRepo.ListWorkspaces()
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"workspaces": len(workspaces),
	}).Info("Workspaces encontrados para snapshot de métricas")

	return workspaces, nil
}

// processSnapshots processa o snapshot de um período para todos os workspaces
func (s *MetricsSnapshotSyncService) processSnapshots(workspaces []string, period string) {
	// Criar um canal para controlar o número de workers concorrentes
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, workspace := range workspaces {
		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(workspaceID string) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			logrus.WithFields(logrus.Fields{
				"workspace_id": workspaceID,
				"period":       period,
			}).Info("Processando snapshot de métricas para workspace")

			_, err := s.metricsService.SnapshotWorkspace(workspaceID, period)
			if err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"workspace_id": workspaceID,
					"period":       period,
				}).Error("Erro ao processar snapshot de métricas")
				return
			}

			logrus.WithFields(logrus.Fields{
				"workspace_id": workspaceID,
				"period":       period,
			}).Info("Snapshot de métricas salvo com sucesso")
		}(workspace)
	}

	// Aguardar todos os workers terminarem
	wg.Wait()
}

// cleanupOldSnapshots remove snapshots e despesas brutas fora da janela de
// retenção. As duas podas são independentes: falha em uma não impede a outra.
func (s *MetricsSnapshotSyncService) cleanupOldSnapshots() {
	logrus.WithField("retention_months", s.config.RetentionMonths).Info("Iniciando limpeza de snapshots antigos")

	deleted, err := s.snapshotRepo.DeleteOlderThan(s.config.RetentionMonths)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover snapshots antigos")
	} else {
		logrus.WithFields(logrus.Fields{
			"deleted":          deleted,
			"retention_months": s.config.RetentionMonths,
		}).Info("Limpeza de snapshots antigos concluída")
	}

	s.cleanupOldExpenses()
}

// cleanupOldExpenses poda as despesas brutas de cada workspace fora do mesmo
// horizonte de retenção. Meses de 31 dias garantem que nenhuma despesa ainda
// dentro do prazo seja removida.
func (s *MetricsSnapshotSyncService) cleanupOldExpenses() {
	workspaces, err := s.financialLogRepo.ListWorkspaces()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar workspaces para poda de despesas")
		return
	}

	retentionDays := s.config.RetentionMonths * 31

	var total int64
	for _, workspaceID := range workspaces {
		deleted, err := s.expenseRepo.DeleteOlderThan(workspaceID, retentionDays)
		if err != nil {
			logrus.WithError(err).WithField("workspace_id", workspaceID).
				Error("Erro ao podar despesas antigas do workspace")
			continue
		}
		total += deleted
	}

	logrus.WithFields(logrus.Fields{
		"deleted":        total,
		"retention_days": retentionDays,
	}).Info("Poda de despesas antigas concluída")
}

// TriggerManualSync inicia manualmente um ciclo de snapshot de métricas
func (s *MetricsSnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Snapshot de métricas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando snapshot manual de métricas")
	go s.syncMetricsSnapshots()
}

// GetStatus retorna o status atual da sincronização
func (s *MetricsSnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"month_lookback":         s.config.MonthLookback,
		"retention_cron":         s.config.RetentionCron,
		"retention_enabled":      s.config.RetentionEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
