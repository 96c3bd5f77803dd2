package checkers

import (
	"fmt"

	"github.com/vfg2006/campaign-qa-api/internal/domain"
	"github.com/vfg2006/campaign-qa-api/pkg/utils"
)

const FlightCheckerName = "flight-dates"

// FlightChecker compara o flight dos line items com as datas do placement no brief
// e verifica se o line item está dentro do flight da campanha
type FlightChecker struct{}

func NewFlightChecker() *FlightChecker {
	return &FlightChecker{}
}

func (c *FlightChecker) Name() string {
	return FlightCheckerName
}

func (c *FlightChecker) CheckEntity(graph *domain.EntityGraph, e domain.ReconciledEntity) ([]domain.Finding, error) {
	if e.Entity.Type != domain.EntityLineItem {
		return nil, nil
	}

	findings := make([]domain.Finding, 0)
	start, end := e.Entity.FlightStart, e.Entity.FlightEnd

	if e.Status == domain.MappingResolved && e.BriefDates != nil {
		switch {
		case start == nil || end == nil:
			findings = append(findings, violation(c.Name(), e, domain.SeverityError,
				fmt.Sprintf("line item %s has no flight dates; brief expects %s to %s",
					e.Entity.Name, e.BriefDates.Start.Format("2006-01-02"), e.BriefDates.End.Format("2006-01-02"))))
		case !utils.SameDay(*start, e.BriefDates.Start) || !utils.SameDay(*end, e.BriefDates.End):
			findings = append(findings, violation(c.Name(), e, domain.SeverityError,
				fmt.Sprintf("flight %s to %s does not match brief %s to %s",
					utils.FormatDate(start), utils.FormatDate(end),
					e.BriefDates.Start.Format("2006-01-02"), e.BriefDates.End.Format("2006-01-02"))))
		default:
			findings = append(findings, passed(c.Name(), e,
				fmt.Sprintf("flight %s to %s matches brief", utils.FormatDate(start), utils.FormatDate(end))))
		}
	}

	campaign, ok := graph.Parent(e)
	if !ok || start == nil || end == nil || campaign.Entity.FlightStart == nil || campaign.Entity.FlightEnd == nil {
		return findings, nil
	}

	cStart := utils.DateOnly(*campaign.Entity.FlightStart)
	cEnd := utils.DateOnly(*campaign.Entity.FlightEnd)
	if utils.DateOnly(*start).Before(cStart) || utils.DateOnly(*end).After(cEnd) {
		findings = append(findings, violation(c.Name(), e, domain.SeverityWarning,
			fmt.Sprintf("flight %s to %s is outside campaign %s flight %s to %s",
				utils.FormatDate(start), utils.FormatDate(end), campaign.Entity.ID,
				cStart.Format("2006-01-02"), cEnd.Format("2006-01-02"))))
	}

	return findings, nil
}
