package checkers

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/vfg2006/campaign-qa-api/internal/domain"
)

const NamingCheckerName = "naming"

var invalidNameChars = regexp.MustCompile(`[^a-zA-Z0-9_ ]`)

// NamingChecker valida a taxonomia de nomes de campanhas, line items e creatives
type NamingChecker struct{}

func NewNamingChecker() *NamingChecker {
	return &NamingChecker{}
}

func (c *NamingChecker) Name() string {
	return NamingCheckerName
}

func (c *NamingChecker) CheckEntity(graph *domain.EntityGraph, e domain.ReconciledEntity) ([]domain.Finding, error) {
	name := strings.TrimSpace(e.Entity.Name)
	if name == "" {
		return []domain.Finding{violation(c.Name(), e, domain.SeverityError, "name is missing")}, nil
	}

	issues := make([]string, 0)
	if strings.Contains(name, " ") {
		issues = append(issues, "name contains spaces")
	}
	if chars := invalidNameChars.FindAllString(name, -1); len(chars) > 0 {
		issues = append(issues, fmt.Sprintf("name contains invalid characters: %s", strings.Join(uniqueSorted(chars), " ")))
	}

	if e.Entity.Type != domain.EntityCampaign {
		if target := briefTargetOf(graph, e); target != nil {
			issues = append(issues, briefTaxonomyIssues(e, strings.ToUpper(name), target)...)
		}
	}

	if len(issues) == 0 {
		return []domain.Finding{passed(c.Name(), e, fmt.Sprintf("name %s follows the taxonomy", name))}, nil
	}

	findings := make([]domain.Finding, 0, len(issues))
	for _, issue := range issues {
		findings = append(findings, violation(c.Name(), e, domain.SeverityError, fmt.Sprintf("%s: %s", name, issue)))
	}
	return findings, nil
}

func briefTaxonomyIssues(e domain.ReconciledEntity, upper string, target *domain.TargetRecord) []string {
	issues := make([]string, 0)

	if prefixes := PlatformPrefixes(target.Platform); len(prefixes) > 0 && !hasAnyPrefix(upper, prefixes) {
		issues = append(issues, fmt.Sprintf("name does not start with platform prefix %s", strings.Join(prefixes, " or ")))
	}
	if code := MediaTypeCode(target.MediaType); code != "" && !strings.Contains(upper, code) {
		issues = append(issues, fmt.Sprintf("name is missing media type code %s", code))
	}

	if e.Entity.Type == domain.EntityLineItem {
		hasGeo := strings.Contains(upper, "_GEO_")
		switch geo := strings.ToUpper(strings.TrimSpace(target.GeoFlag)); {
		case (geo == "Y" || geo == "YES") && !hasGeo:
			issues = append(issues, "name is missing _GEO_ but brief requires geo")
		case (geo == "N" || geo == "NO") && hasGeo:
			issues = append(issues, "name has _GEO_ but brief does not require geo")
		}
	}

	return issues
}

// PlatformPrefixes retorna os prefixos de nome aceitos para a plataforma do brief
func PlatformPrefixes(platform string) []string {
	p := strings.ToLower(platform)
	switch {
	case strings.Contains(p, "mobile"):
		return []string{"MOA_", "MOW_", "MO_"}
	case strings.Contains(p, "desktop"):
		return []string{"DE_"}
	case strings.Contains(p, "ctv"):
		return []string{"CTV_"}
	}
	return nil
}

// MediaTypeCode retorna o código de mídia esperado no nome
func MediaTypeCode(mediaType string) string {
	m := strings.ToLower(mediaType)
	switch {
	case strings.Contains(m, "banner"):
		return "_BA_"
	case strings.Contains(m, "rich media"):
		return "_RM_"
	case strings.Contains(m, "video"):
		return "_VI_"
	}
	return ""
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func uniqueSorted(values []string) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}
