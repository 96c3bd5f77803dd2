package validating

import (
	"github.com/vfg2006/campaign-qa-api/internal/domain"
)

//go:generate mockgen -source=checker.go -destination=mocks/checker_mock.go -package=mocks

// Checker valida uma entidade por vez e não pode alterar o grafo
type Checker interface {
	Name() string
	CheckEntity(graph *domain.EntityGraph, entity domain.ReconciledEntity) ([]domain.Finding, error)
}

// SummaryChecker é implementado por checkers que também avaliam o conjunto inteiro
type SummaryChecker interface {
	Checker
	CheckAll(graph *domain.EntityGraph) ([]domain.Finding, error)
}
