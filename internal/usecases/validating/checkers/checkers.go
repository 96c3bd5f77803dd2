package checkers

import (
	"github.com/vfg2006/campaign-qa-api/internal/domain"
	"github.com/vfg2006/campaign-qa-api/internal/usecases/validating"
)

// Default retorna os checkers do QA na ordem em que aparecem no relatório
func Default() []validating.Checker {
	return []validating.Checker{
		NewFlightChecker(),
		NewNamingChecker(),
		NewCreativeChecker(),
		NewTargetingChecker(),
		NewCompletenessChecker(),
	}
}

func violation(checker string, e domain.ReconciledEntity, severity domain.Severity, msg string) domain.Finding {
	return domain.Finding{
		EntityID: e.CanonicalID(),
		Checker:  checker,
		Kind:     domain.FindingRuleViolation,
		Severity: severity,
		Message:  msg,
	}
}

func passed(checker string, e domain.ReconciledEntity, msg string) domain.Finding {
	return domain.Finding{
		EntityID: e.CanonicalID(),
		Checker:  checker,
		Kind:     domain.FindingRulePassed,
		Severity: domain.SeverityInfo,
		Message:  msg,
	}
}

// briefTargetOf retorna o target resolvido da entidade ou, para creatives, o do line item pai
func briefTargetOf(graph *domain.EntityGraph, e domain.ReconciledEntity) *domain.TargetRecord {
	if e.Status == domain.MappingResolved && e.BriefTarget != nil {
		return e.BriefTarget
	}
	if e.Entity.Type != domain.EntityCreative {
		return nil
	}
	parent, ok := graph.Parent(e)
	if !ok || parent.Status != domain.MappingResolved {
		return nil
	}
	return parent.BriefTarget
}
