package qarunning

import (
	"context"

	"github.com/vfg2006/campaign-qa-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces_mock.go -package=mocks

// PlatformFetcher busca na plataforma as campanhas, line items e creatives dos alternative ids informados
type PlatformFetcher interface {
	FetchEntities(ctx context.Context, campaignAltIDs []string) ([]domain.PlatformEntity, error)
}

// ReportWriter grava o relatório da execução e retorna o caminho do arquivo
type ReportWriter interface {
	WriteFile(result *domain.QAResult, dir string) (string, error)
}

// Runner é a interface consumida pela API, pelo scheduler e pela CLI
type Runner interface {
	Run(ctx context.Context, input Input) (*domain.QAResult, error)
	RunAndStore(ctx context.Context, input Input) (*domain.QARun, *domain.QAResult, error)
	GetRun(ctx context.Context, id string) (*domain.QARunDetail, error)
	ListRuns(ctx context.Context, limit uint64) ([]*domain.QARun, error)
}
