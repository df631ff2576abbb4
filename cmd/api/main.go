package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/founderhq/founderhq-api/infrastructure/database/postgres"
	"github.com/founderhq/founderhq-api/infrastructure/repository"
	"github.com/founderhq/founderhq-api/internal/api"
	"github.com/founderhq/founderhq-api/internal/config"
	"github.com/founderhq/founderhq-api/internal/scheduler"
	"github.com/founderhq/founderhq-api/internal/usecases/authenticating"
	"github.com/founderhq/founderhq-api/internal/usecases/dashboard"
	"github.com/founderhq/founderhq-api/internal/usecases/metrics"
	"github.com/founderhq/founderhq-api/internal/usecases/recording"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	financialLogRepo := repository.NewFinancialLogRepository(pgConn)
	expenseRepo := repository.NewExpenseRepository(pgConn)
	revenueTransactionRepo := repository.NewRevenueTransactionRepository(pgConn)
	dealRepo := repository.NewDealRepository(pgConn)
	campaignRepo := repository.NewMarketingCampaignRepository(pgConn)
	snapshotRepo := repository.NewMetricsSnapshotRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	metricsService := metrics.NewService(
		financialLogRepo,
		expenseRepo,
		revenueTransactionRepo,
		dealRepo,
		snapshotRepo,
	)

	dashboardService := dashboard.NewService(
		dealRepo,
		campaignRepo,
		financialLogRepo,
		revenueTransactionRepo,
	)

	recordingService := recording.NewService(
		financialLogRepo,
		expenseRepo,
		revenueTransactionRepo,
		dealRepo,
		campaignRepo,
	)

	// Inicializa o agendador de snapshots mensais e retenção
	snapshotSyncService := scheduler.NewMetricsSnapshotSyncService(
		financialLogRepo,
		expenseRepo,
		snapshotRepo,
		metricsService,
		cfg,
	)

	// Inicia o agendador em background
	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots de métricas")
	} else {
		logrus.Info("Agendador de snapshots de métricas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		metricsService,
		dashboardService,
		recordingService,
		authenticator,
		snapshotSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
