package reconciling

import (
	"fmt"

	"github.com/vfg2006/campaign-qa-api/internal/domain"
)

type altKey struct {
	entityType domain.EntityType
	altID      string
}

// Reconcile junta as entidades da plataforma ao mapa de identificadores do brief.
//
// Prioridade do status: sem entrada resolvida (ou sem alt_id) é Unresolved; alt_id repetido entre
// entidades do mesmo tipo é Ambiguous para todas elas; caso contrário Resolved com as datas do brief.
// A saída depende apenas das entradas e mantém a ordem recebida.
func Reconcile(entities []domain.PlatformEntity, idmap *domain.IdentifierMap) ([]domain.ReconciledEntity, []domain.Finding, error) {
	for i, e := range entities {
		if e.ID == "" {
			return nil, nil, domain.NewMalformedInputError("platform_entities", "id", fmt.Sprintf("entity at position %d has an empty id", i))
		}
		if !e.Type.Valid() {
			return nil, nil, domain.NewMalformedInputError("platform_entities", "type", fmt.Sprintf("entity %s has unknown type %q", e.ID, e.Type))
		}
	}

	counts := make(map[altKey]int)
	order := make([]altKey, 0)
	for _, e := range entities {
		if e.AltID == "" {
			continue
		}
		key := altKey{entityType: e.Type, altID: e.AltID}
		if counts[key] == 0 {
			order = append(order, key)
		}
		counts[key]++
	}

	// só vira finding o alt_id repetido que de fato deixa as entidades Ambiguous;
	// sem entrada resolvida no mapa elas já são Unresolved
	findings := make([]domain.Finding, 0)
	for _, key := range order {
		if counts[key] < 2 || !resolvable(idmap, key.altID) {
			continue
		}
		findings = append(findings, domain.Finding{
			EntityID: key.altID,
			Checker:  domain.CheckerEntityReconciler,
			Kind:     domain.FindingDuplicateKey,
			Severity: domain.SeverityWarning,
			Message:  fmt.Sprintf("%d %s entities share alternative id %s", counts[key], key.entityType, key.altID),
		})
	}

	reconciled := make([]domain.ReconciledEntity, 0, len(entities))
	for _, e := range entities {
		reconciled = append(reconciled, reconcileOne(e, idmap, counts))
	}

	return reconciled, findings, nil
}

func resolvable(idmap *domain.IdentifierMap, altID string) bool {
	entry, ok := idmap.Lookup(altID)
	return ok && entry.Status == domain.MappingResolved && entry.Dates != nil
}

func reconcileOne(e domain.PlatformEntity, idmap *domain.IdentifierMap, counts map[altKey]int) domain.ReconciledEntity {
	out := domain.ReconciledEntity{
		Entity: e,
		Status: domain.MappingUnresolved,
	}
	if e.AltID == "" {
		return out
	}

	if !resolvable(idmap, e.AltID) {
		return out
	}
	entry, _ := idmap.Lookup(e.AltID)

	target := entry.Target
	out.BriefTarget = &target

	if counts[altKey{entityType: e.Type, altID: e.AltID}] > 1 {
		out.Status = domain.MappingAmbiguous
		return out
	}

	dates := *entry.Dates
	out.Status = domain.MappingResolved
	out.BriefDates = &dates
	return out
}
