package domain

import (
	"strings"
	"time"
)

type RegionKind string

const (
	RegionTarget    RegionKind = "TARGET"
	RegionPlacement RegionKind = "PLACEMENT"
)

// AnchorSource indica como o cabeçalho da região foi encontrado
type AnchorSource string

const (
	AnchorSourceNone     AnchorSource = ""
	AnchorSourceLabel    AnchorSource = "LABEL"
	AnchorSourceFallback AnchorSource = "FALLBACK"
)

// Campos conhecidos das regiões do brief
const (
	FieldTargetID      = "target_id"
	FieldPlacementID   = "placement_id"
	FieldBVID          = "bv_id"
	FieldPlatform      = "platform"
	FieldMediaType     = "media_type"
	FieldGeoFlag       = "geo_flag"
	FieldLDACompliant  = "lda_compliant"
	FieldViewability   = "viewability_goal"
	FieldImpressions   = "impressions"
	FieldReach         = "hh_reach"
	FieldPlacementName = "placement_name"
	FieldStartDate     = "start_date"
	FieldEndDate       = "end_date"
)

// BriefRegion é o bloco de dados localizado dentro do brief.
// TopRow e BottomRow delimitam as linhas de dados (inclusivo); BottomRow < TopRow indica região sem dados.
type BriefRegion struct {
	Kind      RegionKind     `json:"kind"`
	Found     bool           `json:"found"`
	Source    AnchorSource   `json:"source,omitempty"`
	HeaderRow int            `json:"header_row"`
	TopRow    int            `json:"top_row"`
	BottomRow int            `json:"bottom_row"`
	Columns   map[string]int `json:"columns,omitempty"`
	Reason    string         `json:"reason,omitempty"`
}

// RegionNotFound constrói o resultado "não encontrado" de uma região
func RegionNotFound(kind RegionKind, reason string) BriefRegion {
	return BriefRegion{
		Kind:      kind,
		Found:     false,
		HeaderRow: -1,
		TopRow:    -1,
		BottomRow: -2,
		Reason:    reason,
	}
}

// Column retorna o índice da coluna do campo, se localizado
func (r BriefRegion) Column(field string) (int, bool) {
	if !r.Found {
		return -1, false
	}
	idx, ok := r.Columns[field]
	return idx, ok
}

func (r BriefRegion) RowCount() int {
	if !r.Found || r.BottomRow < r.TopRow {
		return 0
	}
	return r.BottomRow - r.TopRow + 1
}

// BriefLayout agrupa as regiões localizadas em uma planilha
type BriefLayout struct {
	Target    BriefRegion `json:"target"`
	Placement BriefRegion `json:"placement"`
}

type TargetRecord struct {
	TargetID    string `json:"target_id"`
	PlacementID string `json:"placement_id"`
	BVID        string `json:"bv_id,omitempty"`
	Platform    string `json:"platform,omitempty"`
	MediaType   string `json:"media_type,omitempty"`
	GeoFlag     string `json:"geo_flag,omitempty"`
	// LDACompliant e ViewabilityGoal podem vir da linha ou dos termos da campanha (BriefTerms)
	LDACompliant    string `json:"lda_compliant,omitempty"`
	ViewabilityGoal string `json:"viewability_goal,omitempty"`
	Impressions     string `json:"impressions,omitempty"`
	Reach           string `json:"hh_reach,omitempty"`
	Row             int    `json:"row"`
}

// PlatformMedia devolve "plataforma/mídia" em minúsculas, ex. "mobile/banner" ou "mobile/rich media".
// Quando uma única coluna traz os dois ("Mobile / Banner", "Mobile Banner"), a primeira palavra é a plataforma.
func (t TargetRecord) PlatformMedia() string {
	platform := strings.Join(strings.Fields(strings.ToLower(strings.ReplaceAll(t.Platform, "/", " "))), " ")
	media := strings.Join(strings.Fields(strings.ToLower(t.MediaType)), " ")
	switch {
	case platform == "":
		return media
	case media == "" || media == platform || strings.Contains(t.Platform, "/"):
		return strings.Replace(platform, " ", "/", 1)
	}
	return platform + "/" + media
}

// BriefTerms são os termos da campanha escritos como "rótulo: valor" fora das regiões
type BriefTerms struct {
	LDACompliant    string `json:"lda_compliant,omitempty"`
	ViewabilityGoal string `json:"viewability_goal,omitempty"`
}

type PlacementRecord struct {
	PlacementID string    `json:"placement_id"`
	Name        string    `json:"name,omitempty"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Row         int       `json:"row"`
}

// DateRange guarda datas de calendário (sem hora)
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
