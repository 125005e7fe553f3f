package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-dashboard-api/pkg/middleware"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeDashboardSnapshot = "dashboard-snapshot"
	CronJobTypeAll               = "all"
)

// ManualSyncer é um agendador que aceita execução manual e informa seu status
type ManualSyncer interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	DashboardSnapshotSyncService ManualSyncer
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		logger := logrus.WithField("type", cronType)
		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
			logger = logger.WithField("subject", claims.Subject)
		}
		logger.Info("INIT - RunCronJob")

		switch cronType {
		case CronJobTypeDashboardSnapshot, CronJobTypeAll:
			if services.DashboardSnapshotSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização do painel não disponível", nil)
				return
			}
			services.DashboardSnapshotSyncService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrSnapshotSyncUnhandled, "Tipo de cron job inválido. Valores aceitos: dashboard-snapshot, all", map[string]string{
				"type": cronType,
			})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}

		if services.DashboardSnapshotSyncService != nil {
			status[CronJobTypeDashboardSnapshot] = services.DashboardSnapshotSyncService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
