// Package qarunning executa o pipeline de QA do brief contra a plataforma:
// localizar, extrair, mapear, buscar, reconciliar e validar.
package qarunning

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/campaign-qa-api/infrastructure/repository"
	"github.com/vfg2006/campaign-qa-api/internal/domain"
	"github.com/vfg2006/campaign-qa-api/internal/usecases/briefing"
	"github.com/vfg2006/campaign-qa-api/internal/usecases/reconciling"
	"github.com/vfg2006/campaign-qa-api/internal/usecases/validating"
	"github.com/vfg2006/campaign-qa-api/pkg/log"
	"github.com/vfg2006/campaign-qa-api/pkg/utils"
)

// Input é tudo o que uma execução precisa; nenhum valor é lido do ambiente
type Input struct {
	BriefName string
	Grid      domain.Grid
	// Opcional; vazio faz a busca dos ids de campanha no próprio brief
	CampaignAltIDs []string
	Config         briefing.Config
}

type Service struct {
	fetcher    PlatformFetcher
	dispatcher *validating.Dispatcher
	reporter   ReportWriter
	repository repository.QARunRepository
	outputDir  string
	now        func() time.Time
}

func NewService(fetcher PlatformFetcher, dispatcher *validating.Dispatcher) *Service {
	return &Service{
		fetcher:    fetcher,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

// WithReport habilita a gravação do relatório em RunAndStore
func (s *Service) WithReport(reporter ReportWriter, outputDir string) *Service {
	s.reporter = reporter
	s.outputDir = outputDir
	return s
}

// WithRepository habilita a persistência das execuções
func (s *Service) WithRepository(repo repository.QARunRepository) *Service {
	s.repository = repo
	return s
}

func (s *Service) Run(ctx context.Context, input Input) (*domain.QAResult, error) {
	cfg := input.Config.WithDefaults()
	result := &domain.QAResult{
		BriefName: input.BriefName,
		Sheet:     input.Grid.Sheet,
		Checkers:  s.dispatcher.Checkers(),
		StartedAt: s.now(),
	}
	findings := make([]domain.Finding, 0)

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"brief":       input.BriefName,
		"brief_sheet": input.Grid.Sheet,
	})

	result.Layout = briefing.Locate(input.Grid, cfg)
	for _, region := range []domain.BriefRegion{result.Layout.Target, result.Layout.Placement} {
		if region.Found {
			continue
		}
		logger.WithFields(log.Fields{
			"region": region.Kind,
			"reason": region.Reason,
		}).Warn("qarunning: região não encontrada no brief")
		findings = append(findings, domain.Finding{
			Checker:  domain.CheckerRegionLocator,
			Kind:     domain.FindingRegionNotFound,
			Severity: domain.SeverityWarning,
			Message:  fmt.Sprintf("%s region not found: %s", region.Kind, region.Reason),
		})
	}

	targets, extracted := briefing.ExtractTargets(input.Grid, result.Layout.Target)
	findings = append(findings, extracted...)
	result.Terms = briefing.ExtractTerms(input.Grid)
	briefing.ApplyTerms(targets, result.Terms)

	placements, extracted, err := briefing.ExtractPlacements(input.Grid, result.Layout.Placement, cfg.Placement)
	if err != nil {
		logger.WithError(err).Error("qarunning: brief malformado")
		return nil, err
	}
	findings = append(findings, extracted...)

	idmap, mapped := briefing.Map(targets, placements)
	findings = append(findings, mapped...)
	result.Mapping = idmap

	altIDs := input.CampaignAltIDs
	if len(altIDs) == 0 {
		altIDs, err = briefing.ScanCampaignIDs(input.Grid, cfg.CampaignIDPattern)
		if err != nil {
			return nil, err
		}
	}
	result.CampaignAltIDs = altIDs

	entities := make([]domain.PlatformEntity, 0)
	if len(altIDs) == 0 {
		logger.Warn("qarunning: nenhum id de campanha informado ou encontrado no brief")
	} else {
		entities, err = s.fetcher.FetchEntities(ctx, altIDs)
		if err != nil {
			return nil, fmt.Errorf("erro ao buscar entidades da plataforma: %w", err)
		}
	}

	reconciled, reconFindings, err := reconciling.Reconcile(entities, idmap)
	if err != nil {
		logger.WithError(err).Error("qarunning: entidades da plataforma malformadas")
		return nil, err
	}
	findings = append(findings, reconFindings...)
	result.Entities = reconciled

	checked, err := s.dispatcher.Dispatch(ctx, domain.NewEntityGraph(reconciled, idmap))
	if err != nil {
		return nil, err
	}
	findings = append(findings, checked...)

	result.Findings = findings
	result.CompletedAt = s.now()

	logger.WithFields(log.Fields{
		"run_campaigns": len(altIDs),
		"run_entities":  len(reconciled),
		"run_findings":  len(findings),
	}).Info("qarunning: execução concluída")

	return result, nil
}

// RunAndStore executa o pipeline, grava o relatório e persiste o resumo quando configurados.
// Uma execução interrompida também é persistida, com status FAILED.
func (s *Service) RunAndStore(ctx context.Context, input Input) (*domain.QARun, *domain.QAResult, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao gerar id da execução: %w", err)
	}

	ctx = log.WithRunID(ctx, id)
	startedAt := s.now()
	result, runErr := s.Run(ctx, input)
	if runErr != nil {
		s.saveFailure(ctx, id, input, startedAt, runErr)
		return nil, nil, runErr
	}

	run := result.Summary(id)

	if s.reporter != nil {
		path, err := s.reporter.WriteFile(result, s.outputDir)
		if err != nil {
			return nil, nil, fmt.Errorf("erro ao gravar relatório: %w", err)
		}
		run.ReportPath = &path
	}

	if s.repository != nil {
		if err := s.repository.Save(ctx, run, result.Findings); err != nil {
			return nil, nil, fmt.Errorf("erro ao salvar execução: %w", err)
		}
	}

	return run, result, nil
}

func (s *Service) saveFailure(ctx context.Context, id string, input Input, startedAt time.Time, runErr error) {
	if s.repository == nil {
		return
	}

	msg := runErr.Error()
	run := &domain.QARun{
		ID:             id,
		BriefName:      input.BriefName,
		Sheet:          input.Grid.Sheet,
		CampaignAltIDs: input.CampaignAltIDs,
		Status:         domain.QARunStatusFailed,
		Error:          &msg,
		StartedAt:      startedAt,
		CompletedAt:    s.now(),
	}
	if run.CampaignAltIDs == nil {
		run.CampaignAltIDs = []string{}
	}

	if err := s.repository.Save(ctx, run, nil); err != nil {
		log.ForContext(ctx).WithError(err).Error("qarunning: falha ao salvar execução com erro")
	}
}

// GetRun retorna o resumo e os findings de uma execução persistida; nil quando não existe
func (s *Service) GetRun(ctx context.Context, id string) (*domain.QARunDetail, error) {
	if s.repository == nil {
		return nil, ErrStorageDisabled
	}

	run, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, nil
	}

	findings, err := s.repository.GetFindings(ctx, id)
	if err != nil {
		return nil, err
	}

	return &domain.QARunDetail{Run: run, Findings: findings}, nil
}

func (s *Service) ListRuns(ctx context.Context, limit uint64) ([]*domain.QARun, error) {
	if s.repository == nil {
		return nil, ErrStorageDisabled
	}
	return s.repository.List(ctx, limit)
}
