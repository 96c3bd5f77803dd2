package checkers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-qa-api/internal/domain"
)

func bid(v float64) *float64 {
	return &v
}

// goodMOA é a segmentação correta de um MOA_ sem LDA, com brief Mobile/Banner sem geo e viewability 70%
func goodMOA() *domain.TargetingSpec {
	return &domain.TargetingSpec{
		AdvertiserID:           "12",
		Countries:              []string{"usa"},
		OperatingSystems:       []string{"ios", "android"},
		EnvironmentTypes:       []string{"1"},
		Segments:               []string{"catalina-shoppers-123"},
		ExcludeAppBundleLists:  []string{"174"},
		ExcludeContentCategory: append([]string{}, defaultContentCategories...),
		FrequencyCapIDType:     "STANDARD",
		FrequencyDuration:      "(2;1;week)",
		BiddingStrategy:        "CPM_PACED",
		CPMBid:                 bid(2.15),
	}
}

func targetedLineItem(name string, spec *domain.TargetingSpec, target *domain.TargetRecord) domain.ReconciledEntity {
	e := domain.ReconciledEntity{
		Entity: domain.PlatformEntity{ID: "10", AltID: "T1", Name: name, Type: domain.EntityLineItem, ParentID: "1", Targeting: spec},
		Status: domain.MappingUnresolved,
	}
	if target != nil {
		e.Status = domain.MappingResolved
		e.BriefDates = &domain.DateRange{Start: *at(2024, 3, 1), End: *at(2024, 3, 15)}
		e.BriefTarget = target
	}
	return e
}

func violations(findings []domain.Finding) []string {
	out := make([]string, 0)
	for _, f := range findings {
		if f.Kind == domain.FindingRuleViolation {
			out = append(out, f.Message)
		}
	}
	return out
}

func TestTargetingChecker(t *testing.T) {
	mobileBanner := func() *domain.TargetRecord {
		return &domain.TargetRecord{TargetID: "T1", Platform: "Mobile", MediaType: "Banner", GeoFlag: "No", ViewabilityGoal: "70%"}
	}

	tests := []struct {
		name   string
		entity func() domain.ReconciledEntity
		want   []string
	}{
		{
			name: "MOA correto",
			entity: func() domain.ReconciledEntity {
				return targetedLineItem("MOA_ACME_BA", goodMOA(), mobileBanner())
			},
			want: []string{},
		},
		{
			name: "país diferente de USA",
			entity: func() domain.ReconciledEntity {
				spec := goodMOA()
				spec.Countries = []string{"can"}
				return targetedLineItem("MOA_ACME_BA", spec, mobileBanner())
			},
			want: []string{"country: include country can does not contain USA"},
		},
		{
			name: "brief pede geo e não há lista geo",
			entity: func() domain.ReconciledEntity {
				target := mobileBanner()
				target.GeoFlag = "Yes"
				spec := goodMOA()
				spec.CPMBid = bid(2.49)
				return targetedLineItem("MOA_ACME_BA", spec, target)
			},
			want: []string{"geo targeting: brief requires geo but no region, metro, zip or lat/long list is set"},
		},
		{
			name: "MOW com ambiente de app",
			entity: func() domain.ReconciledEntity {
				spec := goodMOA()
				spec.ExcludeAppBundleLists = nil
				spec.ExcludeDomainLists = []string{"94"}
				return targetedLineItem("MOW_ACME_BA", spec, mobileBanner())
			},
			want: []string{"environment type: environment type 1, expected 0 for MOW"},
		},
		{
			name: "CTV com sistema operacional",
			entity: func() domain.ReconciledEntity {
				spec := goodMOA()
				spec.DeviceTypes = []string{"3", "6", "7", "8"}
				spec.ExcludeAppNames = append([]string{}, ctvExcludedApps...)
				spec.CPMBid = bid(17)
				return targetedLineItem("CTV_ACME_VI", spec, &domain.TargetRecord{TargetID: "T1", Platform: "CTV"})
			},
			want: []string{"os/device: CTV line item must not target operating systems"},
		},
		{
			name: "RM sem exclusão de inventory source e sem lista 1351",
			entity: func() domain.ReconciledEntity {
				return targetedLineItem("MOA_ACME_RM_BA", goodMOA(), mobileBanner())
			},
			want: []string{
				"inventory source: excluded inventory sources (none), expected ap;out for _RM_ line items",
				"app bundle list: excluded app bundle lists 174, expected 174;1351",
			},
		},
		{
			name: "LDA exige lista 353 e deal 194",
			entity: func() domain.ReconciledEntity {
				target := mobileBanner()
				target.LDACompliant = "Yes"
				return targetedLineItem("MOA_ACME_BA", goodMOA(), target)
			},
			want: []string{
				"app bundle list: excluded app bundle lists 174, expected 353",
				"deal id list: deal ids (none), expected 194",
			},
		},
		{
			name: "anunciante 90 usa categorias próprias",
			entity: func() domain.ReconciledEntity {
				spec := goodMOA()
				spec.AdvertiserID = "90"
				spec.ExcludeAppBundleLists = []string{"174", "1358"}
				return targetedLineItem("MOA_ACME_BA", spec, mobileBanner())
			},
			want: []string{"content category: excluded content categories differ (missing iab12_1;iab12_2;iab12_3;iab12;iab13_3, unexpected iab24;-1)"},
		},
		{
			name: "vídeo exige placement type 1",
			entity: func() domain.ReconciledEntity {
				spec := goodMOA()
				spec.CPMBid = bid(8.75)
				return targetedLineItem("MOA_ACME_VI", spec, &domain.TargetRecord{TargetID: "T1", Platform: "Mobile", MediaType: "Video", ViewabilityGoal: "0.7"})
			},
			want: []string{"video placement type: video placement type (none), expected exactly 1"},
		},
		{
			name: "frequência e lance errados",
			entity: func() domain.ReconciledEntity {
				spec := goodMOA()
				spec.FrequencyDuration = "(5;1;day)"
				spec.CPMBid = bid(2.00)
				return targetedLineItem("MOA_ACME_BA", spec, mobileBanner())
			},
			want: []string{
				`frequency cap: frequency duration "(5;1;day)", expected one of (1;1;week);(2;1;week);(3;1;week)`,
				"bid cpm: cpm bid $2.00, expected $2.15 (base $2.00 + viewability $0.15)",
			},
		},
		{
			name: "sem brief só aplica regras da plataforma",
			entity: func() domain.ReconciledEntity {
				spec := goodMOA()
				spec.ExcludeAppBundleLists = []string{"999"}
				spec.CPMBid = nil
				return targetedLineItem("MOA_ACME_BA", spec, nil)
			},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := tt.entity()
			graph := domain.NewEntityGraph([]domain.ReconciledEntity{campaign("ACME"), e}, nil)

			findings, err := NewTargetingChecker().CheckEntity(graph, e)

			require.NoError(t, err)
			assert.Equal(t, tt.want, violations(findings))
			for _, f := range findings {
				assert.Equal(t, TargetingCheckerName, f.Checker)
				assert.Equal(t, "LINE_ITEM:10", f.EntityID)
			}
		})
	}
}

func TestTargetingChecker_SemExport(t *testing.T) {
	e := targetedLineItem("MOA_ACME_BA", nil, nil)
	graph := domain.NewEntityGraph([]domain.ReconciledEntity{e}, nil)

	findings, err := NewTargetingChecker().CheckEntity(graph, e)

	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, domain.FindingDataQuality, findings[0].Kind)
	assert.Equal(t, domain.SeverityWarning, findings[0].Severity)
}

func TestTargetingChecker_IgnoraOutrosTipos(t *testing.T) {
	c := creative("30", "10", "MOA_ACME_BA_320x50", nil)
	graph := domain.NewEntityGraph([]domain.ReconciledEntity{c}, nil)

	findings, err := NewTargetingChecker().CheckEntity(graph, c)

	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestTargetingChecker_PrefixoDesconhecido(t *testing.T) {
	e := targetedLineItem("ACME_BA", goodMOA(), nil)
	graph := domain.NewEntityGraph([]domain.ReconciledEntity{e}, nil)

	findings, err := NewTargetingChecker().CheckEntity(graph, e)

	require.NoError(t, err)
	got := violations(findings)
	require.Len(t, got, 1)
	assert.True(t, strings.HasPrefix(got[0], "line item name has no"), got[0])
	assert.Equal(t, domain.SeverityWarning, findings[0].Severity)
}

func TestLineItemType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantType string
		wantRM   bool
	}{
		{name: "moa", input: "MOA_ACME_BA", wantType: LineTypeMOA},
		{name: "mow com rm", input: "mow_acme_RM_ba", wantType: LineTypeMOW, wantRM: true},
		{name: "ctv", input: " CTV_ACME ", wantType: LineTypeCTV},
		{name: "desktop", input: "DE_ACME", wantType: LineTypeDE},
		{name: "mo genérico não tem tipo", input: "MO_ACME", wantType: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotType, gotRM := LineItemType(tt.input)
			assert.Equal(t, tt.wantType, gotType)
			assert.Equal(t, tt.wantRM, gotRM)
		})
	}
}

func TestExpectedCPM(t *testing.T) {
	tests := []struct {
		name        string
		media       string
		geo         bool
		lda         bool
		viewability string
		want        float64
		wantOK      bool
	}{
		{name: "mobile banner sem geo", media: "mobile/banner", want: 2.00, wantOK: true},
		{name: "mobile banner com geo", media: "mobile/banner", geo: true, want: 2.34, wantOK: true},
		{name: "mobile banner 70%", media: "mobile/banner", viewability: "70%", want: 2.15, wantOK: true},
		{name: "viewability decimal", media: "mobile/banner", viewability: "0.8", want: 2.40, wantOK: true},
		{name: "desktop vídeo 95", media: "desktop/video", viewability: "95", want: 23.10, wantOK: true},
		{name: "geo-targeting usa base de banner com geo", media: "desktop/geo-targeting", geo: true, viewability: "85", want: 6.49, wantOK: true},
		{name: "ctv lda", media: "ctv", lda: true, want: 19.00, wantOK: true},
		{name: "ctv sem lda", media: "ctv/video", want: 17.00, wantOK: true},
		{name: "viewability abaixo de 60", media: "mobile/video", viewability: "50", want: 6.30, wantOK: true},
		{name: "plataforma desconhecida", media: "audio", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, _, ok := ExpectedCPM(tt.media, tt.geo, tt.lda, tt.viewability)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}
