package domain

import (
	"fmt"
	"time"
)

type EntityType string

const (
	EntityCampaign EntityType = "CAMPAIGN"
	EntityLineItem EntityType = "LINE_ITEM"
	EntityCreative EntityType = "CREATIVE"
)

func (t EntityType) Valid() bool {
	switch t {
	case EntityCampaign, EntityLineItem, EntityCreative:
		return true
	}
	return false
}

// CreativeSpec traz os atributos de creative usados nas validações
type CreativeSpec struct {
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Type     string `json:"creative_type"`
	ClickURL string `json:"click_url"`
}

// TargetingSpec é a segmentação de um line item na plataforma.
// Listas chegam normalizadas: minúsculas, sem espaços nas pontas e sem ".0" em números.
type TargetingSpec struct {
	AdvertiserID            string   `json:"advertiser_id,omitempty"`
	Countries               []string `json:"countries,omitempty"`
	GeoTargeted             bool     `json:"geo_targeted"`
	OperatingSystems        []string `json:"operating_systems,omitempty"`
	DeviceTypes             []string `json:"device_types,omitempty"`
	EnvironmentTypes        []string `json:"environment_types,omitempty"`
	Segments                []string `json:"segments,omitempty"`
	ExcludeInventorySources []string `json:"exclude_inventory_sources,omitempty"`
	ExcludeAppBundleLists   []string `json:"exclude_app_bundle_lists,omitempty"`
	ExcludeDomainLists      []string `json:"exclude_domain_lists,omitempty"`
	ExcludeContentCategory  []string `json:"exclude_content_category,omitempty"`
	ExcludeAppNames         []string `json:"exclude_app_names,omitempty"`
	DealIDs                 []string `json:"deal_ids,omitempty"`
	VideoPlacementTypes     []string `json:"video_placement_types,omitempty"`
	FrequencyCapIDType      string   `json:"frequency_cap_id_type,omitempty"`
	FrequencyDuration       string   `json:"frequency_duration,omitempty"`
	BiddingStrategy         string   `json:"bidding_strategy,omitempty"`
	// CPMBid é nil quando o valor de lance não pôde ser lido
	CPMBid *float64 `json:"cpm_bid,omitempty"`
}

// PlatformEntity é uma campanha, line item ou creative obtido da plataforma.
// AltID é o alternative_id da plataforma e corresponde ao target_id (BVT) do brief.
type PlatformEntity struct {
	ID          string        `json:"id"`
	AltID       string        `json:"alt_id"`
	Name        string        `json:"name"`
	Type        EntityType    `json:"type"`
	ParentID    string        `json:"parent_id,omitempty"`
	FlightStart *time.Time    `json:"flight_start,omitempty"`
	FlightEnd   *time.Time    `json:"flight_end,omitempty"`
	Creative    *CreativeSpec `json:"creative,omitempty"`
	// Targeting só existe em line items cujo export foi obtido
	Targeting *TargetingSpec `json:"targeting,omitempty"`
}

// CanonicalID identifica a entidade de forma única entre os tipos
func (e PlatformEntity) CanonicalID() string {
	return CanonicalID(e.Type, e.ID)
}

func CanonicalID(t EntityType, id string) string {
	return fmt.Sprintf("%s:%s", t, id)
}

// ReconciledEntity une a entidade da plataforma ao que o brief diz sobre ela.
// BriefDates só é preenchido quando Status == MappingResolved.
type ReconciledEntity struct {
	Entity      PlatformEntity `json:"entity"`
	BriefDates  *DateRange     `json:"brief_dates,omitempty"`
	Status      MappingStatus  `json:"mapping_status"`
	BriefTarget *TargetRecord  `json:"brief_target,omitempty"`
}

func (r ReconciledEntity) CanonicalID() string {
	return r.Entity.CanonicalID()
}
