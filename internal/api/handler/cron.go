package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeCacheWarmup = scheduler.CacheWarmupJob
)

// CronJob é um job agendado que também pode ser disparado manualmente
type CronJob interface {
	TriggerManualRun() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	CacheWarmupService CronJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "cron job type not specified", nil)
			return
		}

		switch cronType {
		case CronJobTypeCacheWarmup:
			if services.CacheWarmupService == nil {
				apiErrors.WriteError(w, apiErrors.ErrUnavailable, "cache warm-up service not available", nil)
				return
			}

			if !services.CacheWarmupService.TriggerManualRun() {
				logger.Info("cron: cache warm-up already running")
				writeJSON(w, r, http.StatusConflict, map[string]any{
					"message": "Cron job already running",
					"type":    cronType,
				})
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid cron job type. Accepted values: "+CronJobTypeCacheWarmup, nil)
			return
		}

		logger.Infof("cron: %s triggered manually", cronType)
		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job started successfully",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.CacheWarmupService != nil {
			status[CronJobTypeCacheWarmup] = services.CacheWarmupService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
