package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sns-analyzer-api/infrastructure/repository"
	"github.com/vfg2006/sns-analyzer-api/internal/config"
	"github.com/vfg2006/sns-analyzer-api/internal/domain"
	"github.com/vfg2006/sns-analyzer-api/internal/usecases/analyzing"
)

// AnalysisSyncConfig representa a configuração do agendador de análises
type AnalysisSyncConfig struct {
	CronSchedule        string
	PeriodDays          int
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// AnalysisSyncService executa diariamente a análise das contas acompanhadas
// e persiste o resultado como snapshot do dia
type AnalysisSyncService struct {
	scheduler           *gocron.Scheduler
	config              AnalysisSyncConfig
	appConfig           *config.Config
	trackedAccountRepo  repository.TrackedAccountRepository
	snapshotRepo        repository.AnalysisSnapshotRepository
	analyzer            analyzing.Analyzer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewAnalysisSyncService cria uma nova instância do serviço de sincronização
// de análises
func NewAnalysisSyncService(
	trackedAccountRepo repository.TrackedAccountRepository,
	snapshotRepo repository.AnalysisSnapshotRepository,
	analyzer analyzing.Analyzer,
	appConfig *config.Config,
) *AnalysisSyncService {
	syncConfig := AnalysisSyncConfig{
		CronSchedule:        appConfig.AnalysisSync.CronSchedule,
		PeriodDays:          appConfig.AnalysisSync.PeriodDays,
		RequestDelaySeconds: appConfig.AnalysisSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.AnalysisSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.AnalysisSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"period_days":           syncConfig.PeriodDays,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de análises carregada")

	return &AnalysisSyncService{
		scheduler:          scheduler,
		config:             syncConfig,
		appConfig:          appConfig,
		trackedAccountRepo: trackedAccountRepo,
		snapshotRepo:       snapshotRepo,
		analyzer:           analyzer,
		syncRunning:        false,
	}
}

// Start inicia o agendador
func (s *AnalysisSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de análises desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de análises")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllAnalyses()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de análises: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de análises")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllAnalyses analisa todas as contas acompanhadas ativas
func (s *AnalysisSyncService) syncAllAnalyses() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de análises já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de análises para todas as contas acompanhadas")

	accounts, err := s.trackedAccountRepo.ListActive()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar contas acompanhadas para sincronização")
		return
	}

	if len(accounts) == 0 {
		logrus.Info("Nenhuma conta acompanhada ativa encontrada para sincronização")
		return
	}

	s.processAccounts(accounts)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"accounts": len(accounts),
	}).Info("Sincronização de análises concluída")

	s.lastSyncCompletedAt = time.Now()
}

// processAccounts analisa as contas com um número limitado de workers
func (s *AnalysisSyncService) processAccounts(accounts []*domain.TrackedAccount) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, account := range accounts {
		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(acc *domain.TrackedAccount) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			s.processAccount(acc)

			// Aguardar antes da próxima requisição para evitar sobrecarga nas APIs
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}(account)
	}

	wg.Wait()
}

// processAccount analisa uma conta e salva o snapshot do dia
func (s *AnalysisSyncService) processAccount(acc *domain.TrackedAccount) {
	logrus.WithFields(logrus.Fields{
		"account_id": acc.ID,
		"platform":   acc.Platform,
		"username":   acc.Username,
	}).Info("Processando análise para conta acompanhada")

	request := &domain.AnalysisRequest{
		Platform: string(acc.Platform),
		Username: acc.Username,
		Period:   s.periodPreset(),
		AnalysisTypes: []string{
			string(domain.AnalysisEngagement),
			string(domain.AnalysisTiming),
			string(domain.AnalysisHashtags),
		},
	}

	result, err := s.analyzer.Analyze(context.Background(), request)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": acc.ID,
			"platform":   acc.Platform,
			"username":   acc.Username,
			"error":      err.Error(),
		}).Error("Erro ao analisar conta acompanhada")
		return
	}

	snapshot := &domain.AnalysisSnapshot{
		Platform: acc.Platform,
		Username: acc.Username,
		Date:     result.GeneratedAt,
		Result:   result,
	}

	if err := s.snapshotRepo.SaveOrUpdate(snapshot); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": acc.ID,
			"platform":   acc.Platform,
			"username":   acc.Username,
			"error":      err.Error(),
		}).Error("Erro ao salvar snapshot de análise no banco de dados")
		return
	}

	logrus.WithFields(logrus.Fields{
		"account_id": acc.ID,
		"platform":   acc.Platform,
		"username":   acc.Username,
		"date":       result.GeneratedAt.Format(time.DateOnly),
	}).Info("Snapshot de análise salvo com sucesso")
}

// periodPreset converte a janela configurada para o preset do orquestrador
func (s *AnalysisSyncService) periodPreset() string {
	switch {
	case s.config.PeriodDays <= 7:
		return "7d"
	case s.config.PeriodDays <= 30:
		return "30d"
	default:
		return "90d"
	}
}

// TriggerManualSync inicia manualmente uma sincronização de análises
func (s *AnalysisSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de análises já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de análises")
	go s.syncAllAnalyses()
}

// GetStatus retorna o status atual do agendador
func (s *AnalysisSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_period_days":       s.config.PeriodDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
