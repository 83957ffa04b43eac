package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/metrics"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// CacheWarmupJob é o nome do job usado nas rotas de cron e nas métricas
const CacheWarmupJob = "cache-warmup"

const warmupTimeout = 2 * time.Minute

// CacheWarmer agrega um snapshot novo e o guarda no cache
type CacheWarmer interface {
	WarmCache(ctx context.Context) (*domain.SalesSnapshot, error)
}

// CacheWarmupConfig representa a configuração do agendador de aquecimento do cache
type CacheWarmupConfig struct {
	CronSchedule string
	Enabled      bool
}

// CacheWarmupService agenda a agregação periódica do snapshot de vendas
type CacheWarmupService struct {
	scheduler *gocron.Scheduler
	config    CacheWarmupConfig
	warmer    CacheWarmer
	metrics   *metrics.Metrics

	baseCtx context.Context

	mu              sync.Mutex
	running         bool
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastSnapshotID  string
	lastError       string
}

// NewCacheWarmupService cria o agendador; ele só roda se habilitado por configuração
func NewCacheWarmupService(warmer CacheWarmer, appConfig *config.Config, m *metrics.Metrics) *CacheWarmupService {
	warmupConfig := CacheWarmupConfig{
		CronSchedule: appConfig.CacheWarmup.CronSchedule,
		Enabled:      appConfig.CacheWarmup.Enabled,
	}

	scheduler := gocron.NewScheduler(utils.RegionalLocation())

	logrus.WithFields(logrus.Fields{
		"cron_schedule": warmupConfig.CronSchedule,
		"enabled":       warmupConfig.Enabled,
	}).Info("Configuração do agendador de aquecimento do cache carregada")

	return &CacheWarmupService{
		scheduler: scheduler,
		config:    warmupConfig,
		warmer:    warmer,
		metrics:   m,
		baseCtx:   context.Background(),
	}
}

// Start inicia o agendador
func (s *CacheWarmupService) Start(ctx context.Context) error {
	s.baseCtx = ctx

	if !s.config.Enabled {
		logrus.Info("Aquecimento do cache desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de aquecimento do cache")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.warmCache()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar aquecimento do cache: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de aquecimento do cache")
		s.scheduler.Stop()
	}()

	return nil
}

// warmCache executa uma agregação, ignorando se outra já estiver em andamento
func (s *CacheWarmupService) warmCache() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		logrus.Info("Aquecimento do cache já em andamento, ignorando")
		s.metrics.JobRun(CacheWarmupJob, "skipped")
		return
	}
	s.running = true
	s.lastStartedAt = time.Now()
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(s.baseCtx, warmupTimeout)
	defer cancel()

	startTime := time.Now()
	snapshot, err := s.warmer.WarmCache(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false

	if err != nil {
		s.lastError = err.Error()
		s.metrics.JobRun(CacheWarmupJob, metrics.OutcomeFailure)
		logrus.WithError(err).Error("Erro ao aquecer o cache de vendas")
		return
	}

	s.lastError = ""
	s.lastSnapshotID = snapshot.ID
	s.lastCompletedAt = time.Now()
	s.metrics.JobRun(CacheWarmupJob, metrics.OutcomeSuccess)

	logrus.WithFields(logrus.Fields{
		"duration":    time.Since(startTime).String(),
		"snapshot_id": snapshot.ID,
	}).Info("Aquecimento do cache concluído")
}

// TriggerManualRun inicia manualmente um aquecimento; retorna false se outro estiver em andamento
func (s *CacheWarmupService) TriggerManualRun() bool {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		logrus.Info("Aquecimento do cache já em andamento, ignorando solicitação manual")
		return false
	}
	s.mu.Unlock()

	logrus.Info("Iniciando aquecimento manual do cache")
	go s.warmCache()
	return true
}

// IsRunning indica se há um aquecimento em andamento
func (s *CacheWarmupService) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// GetStatus retorna o status atual do agendador
func (s *CacheWarmupService) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]any{
		"warmup_enabled":        s.config.Enabled,
		"warmup_cron":           s.config.CronSchedule,
		"running":               s.running,
		"last_run_started_at":   s.lastStartedAt,
		"last_run_completed_at": s.lastCompletedAt,
		"last_snapshot_id":      s.lastSnapshotID,
		"last_error":            s.lastError,
	}
}
