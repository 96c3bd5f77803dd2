package checkers

import (
	"fmt"

	"github.com/vfg2006/campaign-qa-api/internal/domain"
	"github.com/vfg2006/campaign-qa-api/pkg/utils"
)

const CompletenessCheckerName = "completeness"

// CompletenessChecker resume a cobertura do brief: quantos line items foram mapeados,
// quais targets do brief não têm line item na plataforma e se as impressões de cada
// target superam o alcance em domicílios (HH)
type CompletenessChecker struct{}

func NewCompletenessChecker() *CompletenessChecker {
	return &CompletenessChecker{}
}

func (c *CompletenessChecker) Name() string {
	return CompletenessCheckerName
}

func (c *CompletenessChecker) CheckEntity(*domain.EntityGraph, domain.ReconciledEntity) ([]domain.Finding, error) {
	return nil, nil
}

func (c *CompletenessChecker) CheckAll(graph *domain.EntityGraph) ([]domain.Finding, error) {
	lineItems := graph.OfType(domain.EntityLineItem)

	altIDs := make(map[string]bool, len(lineItems))
	mapped := 0
	for _, li := range lineItems {
		altIDs[li.Entity.AltID] = true
		if li.Status == domain.MappingResolved {
			mapped++
		}
	}

	findings := []domain.Finding{{
		Checker:  c.Name(),
		Kind:     domain.FindingSummary,
		Severity: domain.SeverityInfo,
		Message:  fmt.Sprintf("%d line items, %d mapped to the brief", len(lineItems), mapped),
	}}

	reported := make(map[string]bool)
	for _, entry := range graph.Mapping().Entries() {
		if f, ok := c.checkReach(entry.Target); ok {
			findings = append(findings, f)
		}
		if altIDs[entry.TargetID] || reported[entry.TargetID] {
			continue
		}
		reported[entry.TargetID] = true
		findings = append(findings, domain.Finding{
			EntityID: entry.TargetID,
			Checker:  c.Name(),
			Kind:     domain.FindingRuleViolation,
			Severity: domain.SeverityWarning,
			Message:  fmt.Sprintf("brief target %s (placement %s) has no line item on the platform", entry.TargetID, entry.PlacementID),
		})
	}

	return findings, nil
}

// checkReach só avalia targets com impressões e alcance numéricos e positivos
func (c *CompletenessChecker) checkReach(target domain.TargetRecord) (domain.Finding, bool) {
	impressions, err := utils.ParseNumber(target.Impressions)
	if err != nil || impressions <= 0 {
		return domain.Finding{}, false
	}
	reach, err := utils.ParseNumber(target.Reach)
	if err != nil || reach <= 0 {
		return domain.Finding{}, false
	}

	if impressions > reach {
		return domain.Finding{}, false
	}
	return domain.Finding{
		EntityID: target.TargetID,
		Checker:  c.Name(),
		Kind:     domain.FindingRuleViolation,
		Severity: domain.SeverityError,
		Message:  fmt.Sprintf("brief target %s has %.0f impressions, not greater than its HH reach of %.0f", target.TargetID, impressions, reach),
	}, true
}
