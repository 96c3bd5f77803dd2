package briefing

import (
	"fmt"

	"github.com/vfg2006/campaign-qa-api/internal/domain"
	"github.com/vfg2006/campaign-qa-api/pkg/utils"
)

// Map liga cada target ao seu placement e às datas do placement.
// Toda TargetRecord gera exatamente uma entrada; targets sem placement ficam Unresolved.
func Map(targets []domain.TargetRecord, placements []domain.PlacementRecord) (*domain.IdentifierMap, []domain.Finding) {
	findings := make([]domain.Finding, 0)

	byPlacement := make(map[string]domain.PlacementRecord, len(placements))
	for _, p := range placements {
		if prev, exists := byPlacement[p.PlacementID]; exists {
			findings = append(findings, domain.Finding{
				EntityID: p.PlacementID,
				Checker:  domain.CheckerIdentifierMapper,
				Kind:     domain.FindingDuplicateKey,
				Severity: domain.SeverityWarning,
				Message:  fmt.Sprintf("placement %s appears at rows %d and %d; row %d is used", p.PlacementID, prev.Row+1, p.Row+1, p.Row+1),
			})
		}
		byPlacement[p.PlacementID] = p
	}

	seenTargets := make(map[string]int, len(targets))
	entries := make([]domain.IdentifierEntry, 0, len(targets))
	for _, t := range targets {
		if prevRow, exists := seenTargets[t.TargetID]; exists {
			findings = append(findings, domain.Finding{
				EntityID: t.TargetID,
				Checker:  domain.CheckerIdentifierMapper,
				Kind:     domain.FindingDuplicateKey,
				Severity: domain.SeverityWarning,
				Message:  fmt.Sprintf("target %s appears at rows %d and %d; row %d is used for lookups", t.TargetID, prevRow+1, t.Row+1, t.Row+1),
			})
		}
		seenTargets[t.TargetID] = t.Row

		entry := domain.IdentifierEntry{
			TargetID:    t.TargetID,
			PlacementID: t.PlacementID,
			Status:      domain.MappingUnresolved,
			Target:      t,
		}

		p, ok := byPlacement[t.PlacementID]
		switch {
		case t.PlacementID == "":
			findings = append(findings, domain.Finding{
				EntityID: t.TargetID,
				Checker:  domain.CheckerIdentifierMapper,
				Kind:     domain.FindingDataQuality,
				Severity: domain.SeverityWarning,
				Message:  fmt.Sprintf("target %s at row %d has no placement id", t.TargetID, t.Row+1),
			})
		case !ok:
			findings = append(findings, domain.Finding{
				EntityID: t.TargetID,
				Checker:  domain.CheckerIdentifierMapper,
				Kind:     domain.FindingDataQuality,
				Severity: domain.SeverityWarning,
				Message:  fmt.Sprintf("target %s references placement %s, which is not in the placement region", t.TargetID, t.PlacementID),
			})
		default:
			entry.Status = domain.MappingResolved
			entry.Dates = &domain.DateRange{
				Start: utils.DateOnly(p.StartDate),
				End:   utils.DateOnly(p.EndDate),
			}
		}

		entries = append(entries, entry)
	}

	return domain.NewIdentifierMap(entries), findings
}
