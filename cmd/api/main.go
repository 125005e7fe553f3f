package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/flowbiz"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/flowbiz/flowbizclient"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/campaign-dashboard-api/internal/api"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/scheduler"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/proxying"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
)

func main() {
	log.Configure("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Sem banco as campanhas seguem com acessos e leads zerados
	var statsRepo repository.CampaignStatsRepository
	if pgConn := pgconn(ctx, cfg.Database); pgConn != nil {
		defer pgConn.Close()
		statsRepo = repository.NewCampaignStatsRepository(pgConn)
	}

	flowbizClient := flowbizclient.NewClient(cfg)
	flowbizIntegrator := flowbiz.New(cfg, flowbizClient)

	aggregator := campaigning.NewAggregator(cfg, flowbizIntegrator)
	enricher := campaigning.NewEnricher(statsRepo)
	manager := campaigning.NewManager(cfg, flowbizIntegrator, aggregator, enricher)
	proxy := proxying.NewProxy(cfg, flowbizIntegrator)

	dashboardService := dashboarding.NewService(cfg, aggregator, dashboarding.NewSnapshotStore())

	snapshotSyncService := scheduler.NewDashboardSnapshotSyncService(dashboardService, cfg)
	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização do painel")
	} else {
		logrus.Info("Agendador de sincronização do painel iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		proxy,
		manager,
		dashboardService,
		snapshotSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn abre a conexão com o banco de estatísticas; retorna nil quando não
// há banco configurado ou ele não responde
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	if !dbConfig.Enabled() {
		logrus.Info("DB_HOST vazio, acessos e leads ficarão zerados")
		return nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	conn, err := postgres.NewConnection(connectCtx, dbConfig)
	if err != nil {
		logrus.WithError(err).Error("Erro ao conectar ao PostgreSQL, acessos e leads ficarão zerados")
		return nil
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
