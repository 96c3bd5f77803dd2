package checkers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-qa-api/internal/domain"
	"github.com/vfg2006/campaign-qa-api/internal/usecases/validating"
)

func at(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func campaign(name string) domain.ReconciledEntity {
	return domain.ReconciledEntity{
		Entity: domain.PlatformEntity{
			ID: "1", AltID: "BVI0000000001", Name: name, Type: domain.EntityCampaign,
			FlightStart: at(2024, 3, 1), FlightEnd: at(2024, 3, 31),
		},
		Status: domain.MappingUnresolved,
	}
}

func resolvedLineItem(id, name string, start, end *time.Time, target domain.TargetRecord) domain.ReconciledEntity {
	return domain.ReconciledEntity{
		Entity: domain.PlatformEntity{
			ID: id, AltID: target.TargetID, Name: name, Type: domain.EntityLineItem, ParentID: "1",
			FlightStart: start, FlightEnd: end,
		},
		Status:      domain.MappingResolved,
		BriefDates:  &domain.DateRange{Start: *at(2024, 3, 1), End: *at(2024, 3, 15)},
		BriefTarget: &target,
	}
}

func creative(id, parentID, name string, spec *domain.CreativeSpec) domain.ReconciledEntity {
	return domain.ReconciledEntity{
		Entity: domain.PlatformEntity{ID: id, Name: name, Type: domain.EntityCreative, ParentID: parentID, Creative: spec},
		Status: domain.MappingUnresolved,
	}
}

func kinds(findings []domain.Finding) []domain.FindingKind {
	out := make([]domain.FindingKind, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.Kind)
	}
	return out
}

func TestFlightChecker(t *testing.T) {
	mobile := domain.TargetRecord{TargetID: "T1", Platform: "Mobile", MediaType: "Banner"}
	tests := []struct {
		name     string
		entity   domain.ReconciledEntity
		expected []domain.Severity
	}{
		{
			name:     "datas iguais ao brief",
			entity:   resolvedLineItem("10", "MO_X", at(2024, 3, 1), at(2024, 3, 15), mobile),
			expected: []domain.Severity{domain.SeverityInfo},
		},
		{
			name: "hora do dia é ignorada",
			entity: resolvedLineItem("10", "MO_X",
				func() *time.Time { t := time.Date(2024, 3, 1, 5, 0, 0, 0, time.UTC); return &t }(),
				func() *time.Time { t := time.Date(2024, 3, 15, 23, 59, 0, 0, time.UTC); return &t }(), mobile),
			expected: []domain.Severity{domain.SeverityInfo},
		},
		{
			name:     "data final diferente",
			entity:   resolvedLineItem("10", "MO_X", at(2024, 3, 1), at(2024, 3, 20), mobile),
			expected: []domain.Severity{domain.SeverityError},
		},
		{
			name:     "fora do flight da campanha",
			entity:   resolvedLineItem("10", "MO_X", at(2024, 3, 1), at(2024, 4, 2), mobile),
			expected: []domain.Severity{domain.SeverityError, domain.SeverityWarning},
		},
		{
			name:     "sem datas na plataforma",
			entity:   resolvedLineItem("10", "MO_X", nil, nil, mobile),
			expected: []domain.Severity{domain.SeverityError},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			graph := domain.NewEntityGraph([]domain.ReconciledEntity{campaign("Camp"), tt.entity}, nil)

			findings, err := NewFlightChecker().CheckEntity(graph, tt.entity)

			require.NoError(t, err)
			require.Len(t, findings, len(tt.expected))
			for i, sev := range tt.expected {
				assert.Equal(t, sev, findings[i].Severity)
				assert.Equal(t, "LINE_ITEM:10", findings[i].EntityID)
			}
		})
	}
}

func TestFlightChecker_UnresolvedLineItemHasNoBriefComparison(t *testing.T) {
	li := domain.ReconciledEntity{
		Entity: domain.PlatformEntity{ID: "10", Type: domain.EntityLineItem, FlightStart: at(2024, 1, 1), FlightEnd: at(2024, 1, 2)},
		Status: domain.MappingUnresolved,
	}
	graph := domain.NewEntityGraph([]domain.ReconciledEntity{li}, nil)

	findings, err := NewFlightChecker().CheckEntity(graph, li)

	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestNamingChecker(t *testing.T) {
	tests := []struct {
		name       string
		entity     domain.ReconciledEntity
		violations int
	}{
		{
			name:       "campanha válida",
			entity:     campaign("ACME_Q1_2024"),
			violations: 0,
		},
		{
			name:       "espaços e caracteres especiais",
			entity:     campaign("ACME Q1-2024!"),
			violations: 2,
		},
		{
			name:       "line item com prefixo e código de mídia",
			entity:     resolvedLineItem("10", "MOA_ACME_BA_GEO_Q1", nil, nil, domain.TargetRecord{TargetID: "T1", Platform: "Mobile", MediaType: "Banner", GeoFlag: "Y"}),
			violations: 0,
		},
		{
			name:       "line item sem prefixo de desktop",
			entity:     resolvedLineItem("10", "MO_ACME_BA_Q1", nil, nil, domain.TargetRecord{TargetID: "T1", Platform: "Desktop", MediaType: "Banner"}),
			violations: 1,
		},
		{
			name:       "line item sem código de vídeo e com geo indevido",
			entity:     resolvedLineItem("10", "CTV_ACME_BA_GEO_Q1", nil, nil, domain.TargetRecord{TargetID: "T1", Platform: "CTV", MediaType: "Video", GeoFlag: "N"}),
			violations: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			graph := domain.NewEntityGraph([]domain.ReconciledEntity{tt.entity}, nil)

			findings, err := NewNamingChecker().CheckEntity(graph, tt.entity)

			require.NoError(t, err)
			if tt.violations == 0 {
				assert.Equal(t, []domain.FindingKind{domain.FindingRulePassed}, kinds(findings))
				return
			}
			assert.Len(t, findings, tt.violations)
			for _, f := range findings {
				assert.Equal(t, domain.FindingRuleViolation, f.Kind)
			}
		})
	}
}

func TestNamingChecker_CreativeUsesParentTarget(t *testing.T) {
	li := resolvedLineItem("10", "DE_ACME_RM", nil, nil, domain.TargetRecord{TargetID: "T1", Platform: "Desktop", MediaType: "Rich Media"})
	cr := creative("100", "10", "MO_ACME_RM_300x250", nil)
	graph := domain.NewEntityGraph([]domain.ReconciledEntity{li, cr}, nil)

	findings, err := NewNamingChecker().CheckEntity(graph, cr)

	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Message, "DE_")
}

func TestCreativeChecker(t *testing.T) {
	li := resolvedLineItem("10", "MO_ACME_BA", nil, nil, domain.TargetRecord{TargetID: "T1"})
	camp := campaign("ACME")

	tests := []struct {
		name     string
		creative domain.ReconciledEntity
		expected []domain.Severity
	}{
		{
			name:     "creative válido",
			creative: creative("100", "10", "MO_ACME_BA_320x50", &domain.CreativeSpec{Width: 320, Height: 50, ClickURL: "https://acme.com"}),
			expected: []domain.Severity{domain.SeverityInfo, domain.SeverityInfo, domain.SeverityInfo},
		},
		{
			name:     "tamanho inválido para desktop e url http",
			creative: creative("101", "10", "DE_MO_ACME_BA", &domain.CreativeSpec{Width: 320, Height: 50, ClickURL: "http://acme.com"}),
			expected: []domain.Severity{domain.SeverityInfo, domain.SeverityError, domain.SeverityError},
		},
		{
			name:     "vídeo não tem checagem de tamanho",
			creative: creative("102", "10", "MO_ACME_BA_VIDEO", &domain.CreativeSpec{Type: "VIDEO", ClickURL: "https://acme.com"}),
			expected: []domain.Severity{domain.SeverityInfo, domain.SeverityInfo},
		},
		{
			name:     "nome sem line item nem campanha e sem atributos",
			creative: creative("103", "10", "OUTRO", nil),
			expected: []domain.Severity{domain.SeverityError, domain.SeverityWarning},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			graph := domain.NewEntityGraph([]domain.ReconciledEntity{camp, li, tt.creative}, nil)

			findings, err := NewCreativeChecker().CheckEntity(graph, tt.creative)

			require.NoError(t, err)
			require.Len(t, findings, len(tt.expected))
			for i, sev := range tt.expected {
				assert.Equal(t, sev, findings[i].Severity, findings[i].Message)
			}
		})
	}
}

func TestCompletenessChecker(t *testing.T) {
	idmap := domain.NewIdentifierMap([]domain.IdentifierEntry{
		{TargetID: "T1", PlacementID: "P1", Status: domain.MappingResolved},
		{TargetID: "T2", PlacementID: "P2", Status: domain.MappingResolved},
		{TargetID: "T2", PlacementID: "P3", Status: domain.MappingUnresolved},
	})
	li := resolvedLineItem("10", "MO_X", nil, nil, domain.TargetRecord{TargetID: "T1"})
	graph := domain.NewEntityGraph([]domain.ReconciledEntity{campaign("C"), li}, idmap)

	findings, err := NewCompletenessChecker().CheckAll(graph)

	require.NoError(t, err)
	require.Len(t, findings, 2)
	assert.Equal(t, "1 line items, 1 mapped to the brief", findings[0].Message)
	assert.Equal(t, domain.FindingSummary, findings[0].Kind)
	assert.Equal(t, "T2", findings[1].EntityID)
	assert.Equal(t, domain.SeverityWarning, findings[1].Severity)
}

func TestCompletenessChecker_ImpressoesContraAlcance(t *testing.T) {
	idmap := domain.NewIdentifierMap([]domain.IdentifierEntry{
		{TargetID: "T1", PlacementID: "P1", Status: domain.MappingResolved, Target: domain.TargetRecord{TargetID: "T1", Impressions: "1,000,000", Reach: "250,000"}},
		{TargetID: "T2", PlacementID: "P2", Status: domain.MappingResolved, Target: domain.TargetRecord{TargetID: "T2", Impressions: "200000", Reach: "200,000"}},
		{TargetID: "T3", PlacementID: "P3", Status: domain.MappingResolved, Target: domain.TargetRecord{TargetID: "T3", Impressions: "TBD", Reach: "10"}},
	})
	graph := domain.NewEntityGraph([]domain.ReconciledEntity{
		campaign("C"),
		resolvedLineItem("10", "MO_X", nil, nil, domain.TargetRecord{TargetID: "T1"}),
		resolvedLineItem("11", "MO_Y", nil, nil, domain.TargetRecord{TargetID: "T2"}),
		resolvedLineItem("12", "MO_Z", nil, nil, domain.TargetRecord{TargetID: "T3"}),
	}, idmap)

	findings, err := NewCompletenessChecker().CheckAll(graph)

	require.NoError(t, err)
	require.Len(t, findings, 2)
	assert.Equal(t, domain.FindingSummary, findings[0].Kind)
	assert.Equal(t, "T2", findings[1].EntityID)
	assert.Equal(t, domain.SeverityError, findings[1].Severity)
	assert.Equal(t, "brief target T2 has 200000 impressions, not greater than its HH reach of 200000", findings[1].Message)
}

func TestCompletenessChecker_NadaMapeado(t *testing.T) {
	li := domain.ReconciledEntity{
		Entity: domain.PlatformEntity{ID: "10", AltID: "T9", Name: "MO_X", Type: domain.EntityLineItem, ParentID: "1"},
		Status: domain.MappingUnresolved,
	}
	graph := domain.NewEntityGraph([]domain.ReconciledEntity{campaign("C"), li}, nil)

	findings, err := NewCompletenessChecker().CheckAll(graph)

	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, "1 line items, 0 mapped to the brief", findings[0].Message)
	assert.Equal(t, domain.FindingSummary, findings[0].Kind)
	assert.NotEqual(t, domain.FindingRulePassed, findings[0].Kind)
	assert.Equal(t, domain.SeverityInfo, findings[0].Severity)
}

func TestDefault_RunsThroughDispatcher(t *testing.T) {
	li := resolvedLineItem("10", "MO_ACME_BA", at(2024, 3, 1), at(2024, 3, 15), domain.TargetRecord{TargetID: "T1", Platform: "Mobile", MediaType: "Banner"})
	graph := domain.NewEntityGraph([]domain.ReconciledEntity{campaign("ACME"), li}, nil)

	dispatcher := validating.NewDispatcher(Default()...)
	findings, err := dispatcher.Dispatch(context.Background(), graph)

	require.NoError(t, err)
	assert.Equal(t, []string{FlightCheckerName, NamingCheckerName, CreativeCheckerName, TargetingCheckerName, CompletenessCheckerName}, dispatcher.Checkers())
	for _, f := range findings {
		assert.NotEqual(t, domain.FindingCheckerFailure, f.Kind)
	}
	assert.Equal(t, FlightCheckerName, findings[0].Checker)
	assert.Equal(t, CompletenessCheckerName, findings[len(findings)-1].Checker)
}
