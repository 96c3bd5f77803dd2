package checkers

import (
	"fmt"
	"strings"

	"github.com/vfg2006/campaign-qa-api/internal/domain"
)

const CreativeCheckerName = "creative"

var (
	mobileSizes  = []string{"320x50", "728x90", "300x250"}
	desktopSizes = []string{"300x600", "160x600", "300x250", "728x90"}
)

// CreativeChecker valida nome, tamanho e URL de clique dos creatives
type CreativeChecker struct{}

func NewCreativeChecker() *CreativeChecker {
	return &CreativeChecker{}
}

func (c *CreativeChecker) Name() string {
	return CreativeCheckerName
}

func (c *CreativeChecker) CheckEntity(graph *domain.EntityGraph, e domain.ReconciledEntity) ([]domain.Finding, error) {
	if e.Entity.Type != domain.EntityCreative {
		return nil, nil
	}

	findings := make([]domain.Finding, 0, 3)
	findings = append(findings, c.checkParentName(graph, e))

	spec := e.Entity.Creative
	if spec == nil {
		findings = append(findings, domain.Finding{
			EntityID: e.CanonicalID(),
			Checker:  c.Name(),
			Kind:     domain.FindingDataQuality,
			Severity: domain.SeverityWarning,
			Message:  "creative has no size or click url attributes",
		})
		return findings, nil
	}

	if f, ok := c.checkSize(e, spec); ok {
		findings = append(findings, f)
	}

	if strings.Contains(strings.ToLower(spec.ClickURL), "http:") {
		findings = append(findings, violation(c.Name(), e, domain.SeverityError, fmt.Sprintf("click url %s is not https", spec.ClickURL)))
	} else {
		findings = append(findings, passed(c.Name(), e, "click url is secure"))
	}

	return findings, nil
}

// checkParentName exige que o nome do creative contenha o nome do line item ou, na falta, o da campanha
func (c *CreativeChecker) checkParentName(graph *domain.EntityGraph, e domain.ReconciledEntity) domain.Finding {
	name := strings.ToLower(e.Entity.Name)

	names := make([]string, 0, 2)
	lineItem, ok := graph.Parent(e)
	if ok {
		names = append(names, lineItem.Entity.Name)
		if campaign, ok := graph.Parent(lineItem); ok {
			names = append(names, campaign.Entity.Name)
		}
	}

	for _, parent := range names {
		if parent != "" && strings.Contains(name, strings.ToLower(parent)) {
			return passed(c.Name(), e, fmt.Sprintf("creative name contains %s", parent))
		}
	}

	if len(names) == 0 {
		return violation(c.Name(), e, domain.SeverityWarning, "creative has no line item or campaign to compare its name with")
	}
	return violation(c.Name(), e, domain.SeverityError,
		fmt.Sprintf("creative name %s does not contain line item or campaign name (%s)", e.Entity.Name, strings.Join(names, ", ")))
}

func (c *CreativeChecker) checkSize(e domain.ReconciledEntity, spec *domain.CreativeSpec) (domain.Finding, bool) {
	if strings.Contains(strings.ToLower(spec.Type), "video") {
		return domain.Finding{}, false
	}

	upper := strings.ToUpper(e.Entity.Name)
	size := fmt.Sprintf("%dx%d", spec.Width, spec.Height)

	var allowed []string
	switch {
	case hasAnyPrefix(upper, []string{"MOA_", "MOW_", "MO_"}):
		allowed = mobileSizes
	case strings.HasPrefix(upper, "DE_"):
		allowed = desktopSizes
	default:
		return domain.Finding{}, false
	}

	for _, s := range allowed {
		if s == size {
			return passed(c.Name(), e, fmt.Sprintf("size %s allowed for its prefix", size)), true
		}
	}
	return violation(c.Name(), e, domain.SeverityError,
		fmt.Sprintf("size %s not allowed for its prefix; allowed: %s", size, strings.Join(allowed, ", "))), true
}
