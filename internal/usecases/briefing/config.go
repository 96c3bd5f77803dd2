package briefing

import (
	"github.com/vfg2006/campaign-qa-api/internal/domain"
)

// Valores padrão observados nos briefs da família de layout suportada
const (
	DefaultSearchWindow         = 60
	DefaultBlankRunLimit        = 2
	DefaultPlacementFallbackRow = 27
	DefaultCampaignIDPattern    = `BVI\d{10}`
)

// RegionSpec descreve como reconhecer uma região do brief.
// Fields mapeia cada campo para as variantes de rótulo aceitas no cabeçalho.
type RegionSpec struct {
	Kind    domain.RegionKind
	Anchors []string
	Fields  map[string][]string
	// KeyFields precisam estar no cabeçalho para a linha candidata ser aceita
	KeyFields []string
	// RequiredFields ausentes em uma região encontrada tornam a entrada malformada
	RequiredFields []string
	// FallbackRow é a linha da planilha (a partir de 1) usada quando nenhum rótulo âncora aparece; 0 desativa
	FallbackRow int
}

// Config é a configuração explícita do motor de reconciliação. Nada aqui é lido do ambiente.
type Config struct {
	SearchWindow      int
	BlankRunLimit     int
	CampaignIDPattern string
	Target            RegionSpec
	Placement         RegionSpec
}

func DefaultTargetSpec() RegionSpec {
	return RegionSpec{
		Kind:    domain.RegionTarget,
		Anchors: []string{"BV ID", "BVP", "BVT"},
		Fields: map[string][]string{
			domain.FieldTargetID:     {"BVT", "BVT ID"},
			domain.FieldPlacementID:  {"BVP", "BVP ID"},
			domain.FieldBVID:         {"BV ID"},
			domain.FieldPlatform:     {"Platform", "Device", "Platform / Media Type"},
			domain.FieldMediaType:    {"Media Type", "Ad Format", "Platform / Media Type"},
			domain.FieldGeoFlag:      {"Geo Required", "Geo"},
			domain.FieldLDACompliant: {"LDA or Age Compliant", "LDA Compliant", "LDA"},
			domain.FieldViewability:  {"Viewability Goal"},
			domain.FieldImpressions:  {"Impressions"},
			domain.FieldReach:        {"HH/Unique Reach", "Unique Reach", "HH Reach"},
		},
		KeyFields: []string{domain.FieldTargetID, domain.FieldPlacementID},
	}
}

func DefaultPlacementSpec() RegionSpec {
	return RegionSpec{
		Kind:    domain.RegionPlacement,
		Anchors: []string{"BV Placement Name", "Placement Name"},
		Fields: map[string][]string{
			domain.FieldPlacementID:   {"BVP", "BVP ID"},
			domain.FieldPlacementName: {"BV Placement Name", "Placement Name"},
			domain.FieldStartDate:     {"Projected Start Date", "Start Date"},
			domain.FieldEndDate:       {"End Date", "Projected End Date"},
		},
		KeyFields:      []string{domain.FieldPlacementID},
		RequiredFields: []string{domain.FieldStartDate, domain.FieldEndDate},
		FallbackRow:    DefaultPlacementFallbackRow,
	}
}

func DefaultConfig() Config {
	return Config{
		SearchWindow:      DefaultSearchWindow,
		BlankRunLimit:     DefaultBlankRunLimit,
		CampaignIDPattern: DefaultCampaignIDPattern,
		Target:            DefaultTargetSpec(),
		Placement:         DefaultPlacementSpec(),
	}
}

// WithDefaults completa valores não informados
func (c Config) WithDefaults() Config {
	if c.SearchWindow <= 0 {
		c.SearchWindow = DefaultSearchWindow
	}
	if c.BlankRunLimit <= 0 {
		c.BlankRunLimit = DefaultBlankRunLimit
	}
	if c.CampaignIDPattern == "" {
		c.CampaignIDPattern = DefaultCampaignIDPattern
	}
	if len(c.Target.Anchors) == 0 {
		c.Target = DefaultTargetSpec()
	}
	if len(c.Placement.Anchors) == 0 && c.Placement.FallbackRow == 0 {
		c.Placement = DefaultPlacementSpec()
	}
	return c
}
