package domain

type Severity string

const (
	SeverityInfo    Severity = "INFO"
	SeverityWarning Severity = "WARNING"
	SeverityError   Severity = "ERROR"
)

type FindingKind string

const (
	FindingRegionNotFound FindingKind = "REGION_NOT_FOUND"
	FindingDuplicateKey   FindingKind = "DUPLICATE_KEY"
	FindingDataQuality    FindingKind = "DATA_QUALITY"
	FindingCheckerFailure FindingKind = "CHECKER_FAILURE"
	FindingRuleViolation  FindingKind = "RULE_VIOLATION"
	FindingRulePassed     FindingKind = "RULE_PASSED"
	// FindingSummary é informativo: não aprova nem reprova nada
	FindingSummary FindingKind = "SUMMARY"
)

// Checkers internos do pipeline, usados como origem de findings que não vêm de validadores
const (
	CheckerRegionLocator    = "region-locator"
	CheckerBriefExtractor   = "brief-extractor"
	CheckerIdentifierMapper = "identifier-mapper"
	CheckerEntityReconciler = "entity-reconciler"
)

type Finding struct {
	EntityID string      `json:"entity_id"`
	Checker  string      `json:"checker"`
	Kind     FindingKind `json:"kind"`
	Severity Severity    `json:"severity"`
	Message  string      `json:"message"`
}

// CountBySeverity agrega os findings por severidade
func CountBySeverity(findings []Finding) map[Severity]int {
	counts := map[Severity]int{
		SeverityInfo:    0,
		SeverityWarning: 0,
		SeverityError:   0,
	}
	for _, f := range findings {
		counts[f.Severity]++
	}
	return counts
}
