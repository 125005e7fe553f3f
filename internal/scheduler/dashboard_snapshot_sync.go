package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/pkg/metrics"
	"github.com/vfg2006/campaign-dashboard-api/pkg/utils"
)

// SnapshotRefresher refaz a busca agregada usada pelo painel
type SnapshotRefresher interface {
	RefreshSnapshot(ctx context.Context) (int, error)
}

// DashboardSnapshotSyncConfig representa a configuração do agendador do painel
type DashboardSnapshotSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// DashboardSnapshotSyncService mantém atualizada a cópia das campanhas lida pelo painel
type DashboardSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              DashboardSnapshotSyncConfig
	refresher           SnapshotRefresher
	baseCtx             context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncCampaigns   int
	lastSyncError       string
	lastRunID           string
}

func NewDashboardSnapshotSyncService(refresher SnapshotRefresher, appConfig *config.Config) *DashboardSnapshotSyncService {
	syncConfig := DashboardSnapshotSyncConfig{
		CronSchedule: appConfig.DashboardSnapshotSync.CronSchedule,
		SyncEnabled:  appConfig.DashboardSnapshotSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador do painel carregada")

	return &DashboardSnapshotSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		refresher: refresher,
		baseCtx:   context.Background(),
	}
}

// Start agenda a atualização e faz a primeira execução imediatamente
func (s *DashboardSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização do painel desabilitada por configuração")
		return nil
	}

	s.baseCtx = ctx

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização do painel")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncSnapshot()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização do painel: %w", err)
	}

	s.scheduler.StartAsync()
	go s.syncSnapshot()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização do painel")
		s.scheduler.Stop()
	}()

	return nil
}

// syncSnapshot executa uma atualização; execuções sobrepostas são ignoradas
func (s *DashboardSnapshotSyncService) syncSnapshot() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do painel já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	runID := utils.NewRunID()
	s.lastRunID = runID
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logger := logrus.WithField("run_id", runID)
	logger.Info("Iniciando sincronização das campanhas do painel")

	startTime := time.Now()
	count, err := s.refresher.RefreshSnapshot(s.baseCtx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if err != nil {
		s.lastSyncError = err.Error()
		metrics.SnapshotSyncRuns.WithLabelValues("error").Inc()
		logger.WithError(err).Error("Erro na sincronização das campanhas do painel")
		return
	}

	s.lastSyncError = ""
	s.lastSyncCampaigns = count
	s.lastSyncCompletedAt = time.Now()
	metrics.SnapshotSyncRuns.WithLabelValues("success").Inc()

	logger.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"campaigns": count,
	}).Info("Sincronização das campanhas do painel concluída")
}

// TriggerManualSync inicia manualmente uma sincronização do painel
func (s *DashboardSnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do painel já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual do painel")
	go s.syncSnapshot()
}

// GetStatus retorna o status atual do agendador
func (s *DashboardSnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_run_id":            s.lastRunID,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_campaigns":    s.lastSyncCampaigns,
		"last_sync_error":        s.lastSyncError,
	}
}
