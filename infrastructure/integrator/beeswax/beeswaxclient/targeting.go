package beeswaxclient

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	beeswaxdomain "github.com/vfg2006/campaign-qa-api/infrastructure/integrator/beeswax/domain"
)

// Limite de ids por chamada do export
const exportChunkSize = 200

// Colunas de geo do export; qualquer uma preenchida conta como segmentação geográfica
var geoColumns = []string{
	"Include Latitude & Longitude List",
	"Exclude Latitude & Longitude List",
	"Include Metro",
	"Exclude Metro",
	"Include Region",
	"Exclude Region",
	"Include Zip Code List",
	"Exclude Zip Code List",
}

// GetLineItemTargeting baixa o export CSV dos line items, em blocos de até 200 ids
func (c *BeeswaxClient) GetLineItemTargeting(ctx context.Context, lineItemIDs []int64) ([]beeswaxdomain.LineItemTargeting, error) {
	out := make([]beeswaxdomain.LineItemTargeting, 0, len(lineItemIDs))

	for start := 0; start < len(lineItemIDs); start += exportChunkSize {
		end := start + exportChunkSize
		if end > len(lineItemIDs) {
			end = len(lineItemIDs)
		}

		ids := make([]string, 0, end-start)
		for _, id := range lineItemIDs[start:end] {
			ids = append(ids, strconv.FormatInt(id, 10))
		}

		body, err := c.getRaw(ctx, "/line-items/export?ids="+strings.Join(ids, ","), "text/csv")
		if err != nil {
			return nil, err
		}

		rows, err := parseTargetingCSV(body)
		if err != nil {
			return nil, err
		}
		logrus.WithFields(logrus.Fields{
			"requested": len(ids),
			"received":  len(rows),
		}).Debug("beeswax: targeting exportado")

		out = append(out, rows...)
	}

	return out, nil
}

func parseTargetingCSV(body []byte) ([]beeswaxdomain.LineItemTargeting, error) {
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(body, []byte("\xef\xbb\xbf"))))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "error parsing line item export")
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		header[strings.TrimSpace(name)] = i
	}
	if _, ok := header["Line Item ID"]; !ok {
		return nil, errors.New("line item export has no Line Item ID column")
	}

	out := make([]beeswaxdomain.LineItemTargeting, 0, len(records)-1)
	for _, record := range records[1:] {
		col := func(name string) string {
			i, ok := header[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		id, err := strconv.ParseInt(strings.TrimSuffix(col("Line Item ID"), ".0"), 10, 64)
		if err != nil {
			logrus.WithField("value", col("Line Item ID")).Warn("beeswax: linha do export sem Line Item ID válido")
			continue
		}

		geo := make(map[string]string)
		for _, name := range geoColumns {
			if v := col(name); v != "" {
				geo[name] = v
			}
		}

		out = append(out, beeswaxdomain.LineItemTargeting{
			LineItemID:             id,
			AdvertiserID:           strings.TrimSuffix(col("Advertiser ID"), ".0"),
			IncludeCountry:         col("Include Country"),
			GeoColumns:             geo,
			IncludeOperatingSystem: col("Include Operating System"),
			IncludeDeviceType:      col("Include Device Type"),
			IncludeEnvironmentType: col("Include Environment Type"),
			IncludeSegment:         col("Include Segment"),
			ExcludeInventorySource: col("Exclude Inventory Source"),
			ExcludeAppBundleList:   col("Exclude App Bundle List"),
			ExcludeDomainList:      col("Exclude Domain List ID"),
			ExcludeContentCategory: col("Exclude Content Category"),
			ExcludeAppName:         col("Exclude App Name"),
			IncludeDealIDList:      col("Include Deal ID List"),
			IncludeVideoPlacement:  col("Include Video Placement Type"),
			FrequencyCapIDType:     col("Frequency Cap ID Type"),
			FrequencyDuration:      col("Frequency Duration"),
			BiddingStrategy:        col("Bidding Strategy"),
			BiddingValues:          col("Bidding Values"),
		})
	}
	return out, nil
}
