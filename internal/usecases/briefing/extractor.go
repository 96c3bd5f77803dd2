package briefing

import (
	"fmt"
	"regexp"

	"github.com/vfg2006/campaign-qa-api/internal/domain"
	"github.com/vfg2006/campaign-qa-api/pkg/utils"
)

// ExtractTargets lê uma TargetRecord por linha da região de target que tenha id de target.
// Região não encontrada resulta em lista vazia.
func ExtractTargets(grid domain.Grid, region domain.BriefRegion) ([]domain.TargetRecord, []domain.Finding) {
	records := make([]domain.TargetRecord, 0)
	findings := make([]domain.Finding, 0)
	if !region.Found {
		return records, findings
	}

	for row := region.TopRow; row <= region.BottomRow; row++ {
		if grid.IsBlankRow(row) {
			continue
		}

		targetID := cellOf(grid, region, row, domain.FieldTargetID)
		if targetID == "" {
			findings = append(findings, domain.Finding{
				Checker:  domain.CheckerBriefExtractor,
				Kind:     domain.FindingDataQuality,
				Severity: domain.SeverityInfo,
				Message:  fmt.Sprintf("target row %d has no %s value and was skipped", row+1, domain.FieldTargetID),
			})
			continue
		}

		records = append(records, domain.TargetRecord{
			TargetID:    targetID,
			PlacementID: cellOf(grid, region, row, domain.FieldPlacementID),
			BVID:        cellOf(grid, region, row, domain.FieldBVID),
			Platform:    cellOf(grid, region, row, domain.FieldPlatform),
			MediaType:   cellOf(grid, region, row, domain.FieldMediaType),
			GeoFlag:     cellOf(grid, region, row, domain.FieldGeoFlag),

			LDACompliant:    cellOf(grid, region, row, domain.FieldLDACompliant),
			ViewabilityGoal: cellOf(grid, region, row, domain.FieldViewability),
			Impressions:     cellOf(grid, region, row, domain.FieldImpressions),
			Reach:           cellOf(grid, region, row, domain.FieldReach),
			Row:             row,
		})
	}

	return records, findings
}

// ExtractPlacements lê uma PlacementRecord por linha com id de placement e datas válidas.
// Uma região encontrada sem as colunas obrigatórias é entrada malformada.
func ExtractPlacements(grid domain.Grid, region domain.BriefRegion, spec RegionSpec) ([]domain.PlacementRecord, []domain.Finding, error) {
	records := make([]domain.PlacementRecord, 0)
	findings := make([]domain.Finding, 0)
	if !region.Found {
		return records, findings, nil
	}

	if missing := missingFields(region.Columns, spec.RequiredFields); len(missing) > 0 {
		return nil, nil, domain.NewMalformedInputError(
			string(region.Kind),
			missing[0],
			fmt.Sprintf("header at row %d has no column for %v", region.HeaderRow+1, missing),
		)
	}

	for row := region.TopRow; row <= region.BottomRow; row++ {
		if grid.IsBlankRow(row) {
			continue
		}

		placementID := cellOf(grid, region, row, domain.FieldPlacementID)
		if placementID == "" {
			findings = append(findings, domain.Finding{
				Checker:  domain.CheckerBriefExtractor,
				Kind:     domain.FindingDataQuality,
				Severity: domain.SeverityInfo,
				Message:  fmt.Sprintf("placement row %d has no %s value and was skipped", row+1, domain.FieldPlacementID),
			})
			continue
		}

		start, startErr := utils.ParseFlexibleDate(cellOf(grid, region, row, domain.FieldStartDate))
		end, endErr := utils.ParseFlexibleDate(cellOf(grid, region, row, domain.FieldEndDate))
		if startErr != nil || endErr != nil {
			findings = append(findings, domain.Finding{
				EntityID: placementID,
				Checker:  domain.CheckerBriefExtractor,
				Kind:     domain.FindingDataQuality,
				Severity: domain.SeverityWarning,
				Message:  fmt.Sprintf("placement %s at row %d has unreadable flight dates (start %q, end %q)", placementID, row+1, cellOf(grid, region, row, domain.FieldStartDate), cellOf(grid, region, row, domain.FieldEndDate)),
			})
			continue
		}

		if end.Before(start) {
			findings = append(findings, domain.Finding{
				EntityID: placementID,
				Checker:  domain.CheckerBriefExtractor,
				Kind:     domain.FindingDataQuality,
				Severity: domain.SeverityWarning,
				Message:  fmt.Sprintf("placement %s at row %d ends (%s) before it starts (%s)", placementID, row+1, end.Format("2006-01-02"), start.Format("2006-01-02")),
			})
		}

		records = append(records, domain.PlacementRecord{
			PlacementID: placementID,
			Name:        cellOf(grid, region, row, domain.FieldPlacementName),
			StartDate:   start,
			EndDate:     end,
			Row:         row,
		})
	}

	return records, findings, nil
}

// ScanCampaignIDs procura ids alternativos de campanha em qualquer célula da planilha,
// na ordem em que aparecem e sem repetição
func ScanCampaignIDs(grid domain.Grid, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultCampaignIDPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid campaign id pattern %q: %w", pattern, err)
	}

	seen := make(map[string]bool)
	ids := make([]string, 0)
	for _, row := range grid.Rows {
		for _, v := range row {
			for _, match := range re.FindAllString(v, -1) {
				if !seen[match] {
					seen[match] = true
					ids = append(ids, match)
				}
			}
		}
	}
	return ids, nil
}

func cellOf(grid domain.Grid, region domain.BriefRegion, row int, field string) string {
	col, ok := region.Column(field)
	if !ok {
		return ""
	}
	return grid.Cell(row, col)
}
