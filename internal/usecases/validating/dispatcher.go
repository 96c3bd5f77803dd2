package validating

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-qa-api/internal/domain"
)

type Dispatcher struct {
	checkers []Checker
}

func NewDispatcher(checkers ...Checker) *Dispatcher {
	return &Dispatcher{
		checkers: checkers,
	}
}

// Checkers retorna os nomes dos checkers na ordem de registro
func (d *Dispatcher) Checkers() []string {
	names := make([]string, 0, len(d.checkers))
	for _, c := range d.checkers {
		names = append(names, c.Name())
	}
	return names
}

// Dispatch roda cada checker sobre cada entidade do grafo.
// Erros e panics de um checker viram um finding CheckerFailure para aquela entidade e a execução segue.
// Ordem: checker (ordem de registro), entidade (ordem do grafo) e, por fim, o resumo do checker.
func (d *Dispatcher) Dispatch(ctx context.Context, graph *domain.EntityGraph) ([]domain.Finding, error) {
	findings := make([]domain.Finding, 0)
	entities := graph.Entities()

	for _, checker := range d.checkers {
		if err := ctx.Err(); err != nil {
			return findings, err
		}

		failures := 0
		for _, entity := range entities {
			result, err := runEntity(checker, graph, entity)
			if err != nil {
				failures++
				findings = append(findings, failureFinding(checker.Name(), entity.CanonicalID(), err))
				continue
			}
			findings = append(findings, result...)
		}

		if summary, ok := checker.(SummaryChecker); ok {
			result, err := runSummary(summary, graph)
			if err != nil {
				failures++
				findings = append(findings, failureFinding(checker.Name(), "", err))
			} else {
				findings = append(findings, result...)
			}
		}

		if failures > 0 {
			logrus.WithFields(logrus.Fields{
				"checker":  checker.Name(),
				"failures": failures,
			}).Warn("validating: checker falhou em parte das entidades")
		}
	}

	return findings, nil
}

func runEntity(checker Checker, graph *domain.EntityGraph, entity domain.ReconciledEntity) (findings []domain.Finding, err error) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("stack", string(debug.Stack())).Debugf("validating: panic em %s", checker.Name())
			err = fmt.Errorf("%w: panic: %v", domain.ErrCheckerFailure, r)
		}
	}()

	findings, err = checker.CheckEntity(graph, entity)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCheckerFailure, err)
	}
	return findings, nil
}

func runSummary(checker SummaryChecker, graph *domain.EntityGraph) (findings []domain.Finding, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", domain.ErrCheckerFailure, r)
		}
	}()

	findings, err = checker.CheckAll(graph)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCheckerFailure, err)
	}
	return findings, nil
}

func failureFinding(checker, entityID string, err error) domain.Finding {
	return domain.Finding{
		EntityID: entityID,
		Checker:  checker,
		Kind:     domain.FindingCheckerFailure,
		Severity: domain.SeverityError,
		Message:  err.Error(),
	}
}
