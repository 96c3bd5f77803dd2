package scheduler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-qa-api/infrastructure/workbook"
	"github.com/vfg2006/campaign-qa-api/internal/config"
	"github.com/vfg2006/campaign-qa-api/internal/usecases/briefing"
	"github.com/vfg2006/campaign-qa-api/internal/usecases/qarunning"
)

const failedDirName = "failed"

// BriefInboxSyncService processa periodicamente os briefs deixados na pasta de entrada.
// Cada brief vira uma execução de QA persistida; o arquivo é movido para a pasta de processados
// (ou para a subpasta failed quando a execução falha).
type BriefInboxSyncService struct {
	scheduler           *gocron.Scheduler
	config              config.QASync
	runner              qarunning.Runner
	briefConfig         briefing.Config
	sheet               string
	ctx                 context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastProcessed       int
	lastFailed          int
}

func NewBriefInboxSyncService(runner qarunning.Runner, appConfig *config.Config) *BriefInboxSyncService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.QASync.CronSchedule,
		"inbox_dir":     appConfig.QASync.InboxDir,
		"processed_dir": appConfig.QASync.ProcessedDir,
		"sync_enabled":  appConfig.QASync.Enabled,
	}).Info("Configuração do agendador de briefs carregada")

	return &BriefInboxSyncService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      appConfig.QASync,
		runner:      runner,
		briefConfig: appConfig.Brief.BriefingConfig(),
		sheet:       appConfig.Brief.Sheet,
		ctx:         context.Background(),
	}
}

func (s *BriefInboxSyncService) Start(ctx context.Context) error {
	s.ctx = ctx

	if !s.config.Enabled {
		logrus.Info("Processamento da pasta de briefs desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador da pasta de briefs")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncInbox()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar processamento da pasta de briefs: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador da pasta de briefs")
		s.scheduler.Stop()
	}()

	return nil
}

// syncInbox executa o QA de todos os briefs pendentes, um por vez
func (s *BriefInboxSyncService) syncInbox() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Processamento da pasta de briefs já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	processed, failed := 0, 0
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.lastProcessed = processed
		s.lastFailed = failed
		s.syncMutex.Unlock()
	}()

	pending, err := s.pendingBriefs()
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar a pasta de briefs")
		return
	}

	if len(pending) == 0 {
		logrus.Debug("Nenhum brief pendente na pasta de entrada")
		return
	}

	logrus.WithField("briefs", len(pending)).Info("Iniciando processamento da pasta de briefs")

	for _, path := range pending {
		if s.ctx.Err() != nil {
			logrus.Info("Processamento da pasta de briefs interrompido")
			return
		}

		if err := s.processBrief(path); err != nil {
			failed++
			logrus.WithFields(logrus.Fields{
				"brief": filepath.Base(path),
				"error": err.Error(),
			}).Error("Erro ao processar brief")
			s.moveTo(path, filepath.Join(s.config.ProcessedDir, failedDirName))
			continue
		}

		processed++
		s.moveTo(path, s.config.ProcessedDir)
	}

	logrus.WithFields(logrus.Fields{
		"processed": processed,
		"failed":    failed,
	}).Info("Processamento da pasta de briefs concluído")
}

func (s *BriefInboxSyncService) processBrief(path string) error {
	grid, err := workbook.Load(path, s.sheet)
	if err != nil {
		return err
	}

	run, _, err := s.runner.RunAndStore(s.ctx, qarunning.Input{
		BriefName: filepath.Base(path),
		Grid:      grid,
		Config:    s.briefConfig,
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"brief":    filepath.Base(path),
		"run_id":   run.ID,
		"errors":   run.Errors,
		"warnings": run.Warnings,
	}).Info("Brief processado")

	return nil
}

// pendingBriefs lista as planilhas suportadas da pasta de entrada, em ordem alfabética
func (s *BriefInboxSyncService) pendingBriefs() ([]string, error) {
	entries, err := os.ReadDir(s.config.InboxDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	briefs := make([]string, 0)
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), "~$") {
			continue
		}
		if !workbook.Supported(entry.Name()) {
			continue
		}
		briefs = append(briefs, filepath.Join(s.config.InboxDir, entry.Name()))
	}

	sort.Strings(briefs)
	return briefs, nil
}

func (s *BriefInboxSyncService) moveTo(path, dir string) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logrus.WithError(err).WithField("dir", dir).Error("Erro ao criar pasta de destino do brief")
		return
	}

	target := filepath.Join(dir, filepath.Base(path))
	if err := os.Rename(path, target); err != nil {
		logrus.WithError(err).WithField("brief", path).Error("Erro ao mover brief")
	}
}

// TriggerManualSync inicia manualmente o processamento da pasta de briefs.
// Retorna false quando já existe um processamento em andamento.
func (s *BriefInboxSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Processamento da pasta de briefs já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando processamento manual da pasta de briefs")
	go s.syncInbox()
	return true
}

func (s *BriefInboxSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"inbox_dir":              s.config.InboxDir,
		"processed_dir":          s.config.ProcessedDir,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_processed":    s.lastProcessed,
		"last_sync_failed":       s.lastFailed,
	}
}
