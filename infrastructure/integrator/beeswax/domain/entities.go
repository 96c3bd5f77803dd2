package beeswaxdomain

// ListResponse é o envelope das listagens da API REST v2 da Beeswax
type ListResponse[T any] struct {
	Results []T    `json:"results"`
	Next    string `json:"next,omitempty"`
}

type Campaign struct {
	ID            int64  `json:"id"`
	AlternativeID string `json:"alternative_id"`
	Name          string `json:"name"`
	AdvertiserID  int64  `json:"advertiser_id"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Active        bool   `json:"active"`
}

type LineItem struct {
	ID            int64  `json:"id"`
	AlternativeID string `json:"alternative_id"`
	Name          string `json:"name"`
	CampaignID    int64  `json:"campaign_id"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Active        bool   `json:"active"`
}

type Creative struct {
	ID            int64  `json:"id"`
	AlternativeID string `json:"alternative_id"`
	Name          string `json:"name"`
	CreativeType  string `json:"creative_type"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	ClickURL      string `json:"click_url"`
	Active        bool   `json:"active"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LineItemTargeting é uma linha do export CSV de line items (/line-items/export).
// Os valores vêm como no CSV: listas separadas por ";" e números às vezes com ".0".
type LineItemTargeting struct {
	LineItemID             int64
	AdvertiserID           string
	IncludeCountry         string
	GeoColumns             map[string]string
	IncludeOperatingSystem string
	IncludeDeviceType      string
	IncludeEnvironmentType string
	IncludeSegment         string
	ExcludeInventorySource string
	ExcludeAppBundleList   string
	ExcludeDomainList      string
	ExcludeContentCategory string
	ExcludeAppName         string
	IncludeDealIDList      string
	IncludeVideoPlacement  string
	FrequencyCapIDType     string
	FrequencyDuration      string
	BiddingStrategy        string
	BiddingValues          string
}
