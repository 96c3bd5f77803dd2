package beeswax

import (
	"regexp"
	"strconv"
	"strings"

	beeswaxdomain "github.com/vfg2006/campaign-qa-api/infrastructure/integrator/beeswax/domain"
	"github.com/vfg2006/campaign-qa-api/internal/domain"
)

// Bidding Values vem como {"cpm_bid": 2.34} ou {'cpm_bid': 2.34}
var cpmBidPattern = regexp.MustCompile(`cpm_bid["']?\s*:\s*([0-9]+(?:\.[0-9]+)?)`)

func FactoryTargeting(t beeswaxdomain.LineItemTargeting) *domain.TargetingSpec {
	return &domain.TargetingSpec{
		AdvertiserID:            t.AdvertiserID,
		Countries:               splitList(t.IncludeCountry),
		GeoTargeted:             len(t.GeoColumns) > 0,
		OperatingSystems:        splitList(t.IncludeOperatingSystem),
		DeviceTypes:             splitList(t.IncludeDeviceType),
		EnvironmentTypes:        splitList(t.IncludeEnvironmentType),
		Segments:                splitList(t.IncludeSegment),
		ExcludeInventorySources: splitList(t.ExcludeInventorySource),
		ExcludeAppBundleLists:   splitList(t.ExcludeAppBundleList),
		ExcludeDomainLists:      splitList(t.ExcludeDomainList),
		ExcludeContentCategory:  splitList(t.ExcludeContentCategory),
		ExcludeAppNames:         splitList(t.ExcludeAppName),
		DealIDs:                 splitList(t.IncludeDealIDList),
		VideoPlacementTypes:     splitList(t.IncludeVideoPlacement),
		FrequencyCapIDType:      strings.TrimSpace(t.FrequencyCapIDType),
		FrequencyDuration:       strings.ToLower(strings.ReplaceAll(t.FrequencyDuration, " ", "")),
		BiddingStrategy:         strings.TrimSpace(t.BiddingStrategy),
		CPMBid:                  parseCPMBid(t.BiddingValues),
	}
}

// splitList quebra a lista do export por ";" e normaliza cada valor
func splitList(value string) []string {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "nan") {
		return nil
	}

	out := make([]string, 0)
	for _, v := range strings.Split(value, ";") {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		if f, err := strconv.ParseFloat(v, 64); err == nil && f == float64(int64(f)) {
			v = strconv.FormatInt(int64(f), 10)
		}
		out = append(out, v)
	}
	return out
}

func parseCPMBid(value string) *float64 {
	match := cpmBidPattern.FindStringSubmatch(value)
	if match == nil {
		return nil
	}
	bid, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return nil
	}
	return &bid
}
