package domain

import "time"

// QAResult é o resultado completo de uma execução do pipeline de QA
type QAResult struct {
	BriefName      string             `json:"brief_name"`
	Sheet          string             `json:"sheet"`
	CampaignAltIDs []string           `json:"campaign_alt_ids"`
	Layout         BriefLayout        `json:"layout"`
	Terms          BriefTerms         `json:"terms"`
	Mapping        *IdentifierMap     `json:"-"`
	Entities       []ReconciledEntity `json:"entities"`
	Findings       []Finding          `json:"findings"`
	// Checkers na ordem de despacho
	Checkers    []string  `json:"checkers"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
}

// StatusCounts soma os status de mapeamento de todas as entidades
func (r *QAResult) StatusCounts() map[MappingStatus]int {
	counts := map[MappingStatus]int{
		MappingResolved:   0,
		MappingUnresolved: 0,
		MappingAmbiguous:  0,
	}
	for _, e := range r.Entities {
		counts[e.Status]++
	}
	return counts
}

// FindingsByChecker agrupa os findings por checker, mantendo a ordem original dentro de cada grupo
func (r *QAResult) FindingsByChecker() map[string][]Finding {
	out := make(map[string][]Finding)
	for _, f := range r.Findings {
		out[f.Checker] = append(out[f.Checker], f)
	}
	return out
}

// Summary monta o resumo persistível da execução
func (r *QAResult) Summary(id string) *QARun {
	status := r.StatusCounts()
	severity := CountBySeverity(r.Findings)
	return &QARun{
		ID:             id,
		BriefName:      r.BriefName,
		Sheet:          r.Sheet,
		CampaignAltIDs: r.CampaignAltIDs,
		Status:         QARunStatusCompleted,
		Entities:       len(r.Entities),
		Resolved:       status[MappingResolved],
		Unresolved:     status[MappingUnresolved],
		Ambiguous:      status[MappingAmbiguous],
		Infos:          severity[SeverityInfo],
		Warnings:       severity[SeverityWarning],
		Errors:         severity[SeverityError],
		StartedAt:      r.StartedAt,
		CompletedAt:    r.CompletedAt,
	}
}
