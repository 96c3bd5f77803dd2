package checkers

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/vfg2006/campaign-qa-api/internal/domain"
	"github.com/vfg2006/campaign-qa-api/pkg/utils"
)

const TargetingCheckerName = "targeting"

// Tipos de line item, pelo prefixo do nome
const (
	LineTypeMOA = "MOA"
	LineTypeMOW = "MOW"
	LineTypeCTV = "CTV"
	LineTypeDE  = "DE"
)

// Anunciante com listas de exclusão próprias
const specialAdvertiserID = "90"

var (
	ctvDeviceTypes     = []string{"6", "3", "8", "7"}
	mobileOS           = []string{"android", "ios"}
	desktopOS          = []string{"os x", "windows", "chrome os"}
	rmInventorySources = []string{"ap", "out"}
	frequencyDurations = []string{"(1;1;week)", "(2;1;week)", "(3;1;week)"}

	defaultContentCategories = lowerList("IAB1_2;IAB8_5;IAB8_18;IAB7_3;IAB7_5;IAB7_28;IAB7_30;IAB7_39;IAB7_42;IAB26_4;IAB26;IAB26_1;IAB26_2;IAB26_3;IAB11_5;IAB25;IAB25_1;IAB25_2;IAB25_3;IAB25_4;IAB25_5;IAB25_6;IAB25_7;IAB23;IAB23_1;IAB23_10;IAB23_2;IAB23_3;IAB23_4;IAB23_5;IAB23_6;IAB23_7;IAB23_8;IAB23_9;IAB15_1;IAB15_5;IAB14_1;IAB14_3;IAB18_2;IAB19_3;IAB19_19;IAB19_20;IAB19_22;IAB19_30;IAB19_33;IAB24;-1;IAB11;IAB11_1;IAB11_2;IAB11_4;IAB11_3")

	specialContentCategories = lowerList("IAB1_2;IAB8_5;IAB8_18;IAB7_3;IAB7_5;IAB7_28;IAB7_30;IAB7_39;IAB7_42;IAB26_4;IAB26;IAB26_1;IAB26_3;IAB26_2;IAB11;IAB11_1;IAB11_2;IAB11_3;IAB11_4;IAB11_5;IAB25_2;IAB25_5;IAB25_7;IAB25_3;IAB25_4;IAB25_6;IAB25_1;IAB25;IAB23;IAB23_1;IAB23_2;IAB23_3;IAB23_4;IAB23_5;IAB23_6;IAB23_7;IAB23_8;IAB23_9;IAB23_10;IAB15_1;IAB15_5;IAB14_1;IAB14_3;IAB18_2;IAB19_3;IAB19_19;IAB19_20;IAB19_22;IAB19_30;IAB19_33;IAB12_1;IAB12_2;IAB12_3;IAB12;IAB13_3")

	ctvExcludedApps = lowerList("Atmosphere;NRS TV;My NRS Store;VideoElephantTV;Loop for Retail;Loop;Grocery TV;VideoElephant TV;Loop TV;Retail Media TV")
)

// CPM base por plataforma/mídia
type baseCPM struct {
	prefix string
	media  []string
	noGeo  float64
	geo    float64
	lda    float64
	useLDA bool
}

var baseCPMs = []baseCPM{
	{prefix: "mobile", media: []string{"banner", "geo-targeting"}, noGeo: 2.00, geo: 2.34},
	{prefix: "mobile", media: []string{"rich media"}, noGeo: 3.15, geo: 3.15},
	{prefix: "mobile", media: []string{"video"}, noGeo: 6.30, geo: 6.30},
	{prefix: "desktop", media: []string{"banner", "geo-targeting"}, noGeo: 2.36, geo: 2.89},
	{prefix: "desktop", media: []string{"rich media"}, noGeo: 2.89, geo: 2.89},
	{prefix: "desktop", media: []string{"video"}, noGeo: 7.35, geo: 7.35},
	{prefix: "ctv", noGeo: 17.00, geo: 17.00, lda: 19.00, useLDA: true},
}

// Adicional de viewability por faixa: [60,75), [75,85), [85,95), [95,100]
var viewabilityFloors = []float64{60, 75, 85, 95}

var viewabilityAddons = map[string][4]float64{
	"mobile/banner":         {0.15, 0.40, 1.43, 2.47},
	"mobile/geo-targeting":  {0.15, 0.47, 1.67, 2.90},
	"mobile/rich media":     {0.15, 0.63, 2.25, 3.90},
	"mobile/video":          {2.45, 3.90, 4.50, 7.80},
	"desktop/banner":        {0.45, 0.83, 2.95, 5.06},
	"desktop/geo-targeting": {0.45, 1.02, 3.60, 6.19},
	"desktop/rich media":    {0.45, 1.02, 3.60, 6.19},
	"desktop/video":         {2.45, 4.55, 9.17, 15.75},
}

// TargetingChecker confere a segmentação exportada de cada line item contra as regras
// do tipo do line item (prefixo do nome) e contra o que o brief pede
type TargetingChecker struct{}

func NewTargetingChecker() *TargetingChecker {
	return &TargetingChecker{}
}

func (c *TargetingChecker) Name() string {
	return TargetingCheckerName
}

type targetingInput struct {
	spec     *domain.TargetingSpec
	lineType string
	rm       bool
	target   *domain.TargetRecord
}

type targetingRule struct {
	name string
	// check devolve applies=false quando a regra não se aplica ao line item
	check func(in targetingInput) (applies bool, issue string)
}

var targetingRules = []targetingRule{
	{name: "country", check: checkCountry},
	{name: "geo targeting", check: checkGeo},
	{name: "environment type", check: checkEnvironment},
	{name: "os/device", check: checkOSDevice},
	{name: "segment", check: checkSegment},
	{name: "inventory source", check: checkInventorySource},
	{name: "app bundle list", check: checkAppBundleList},
	{name: "domain list", check: checkDomainList},
	{name: "content category", check: checkContentCategory},
	{name: "ctv app exclusions", check: checkCTVApps},
	{name: "deal id list", check: checkDealIDs},
	{name: "video placement type", check: checkVideoPlacement},
	{name: "frequency cap", check: checkFrequency},
	{name: "bidding strategy", check: checkBiddingStrategy},
	{name: "bid cpm", check: checkBidCPM},
}

func (c *TargetingChecker) CheckEntity(graph *domain.EntityGraph, e domain.ReconciledEntity) ([]domain.Finding, error) {
	if e.Entity.Type != domain.EntityLineItem {
		return nil, nil
	}

	if e.Entity.Targeting == nil {
		return []domain.Finding{{
			EntityID: e.CanonicalID(),
			Checker:  c.Name(),
			Kind:     domain.FindingDataQuality,
			Severity: domain.SeverityWarning,
			Message:  "line item has no targeting export; targeting rules skipped",
		}}, nil
	}

	lineType, rm := LineItemType(e.Entity.Name)
	in := targetingInput{
		spec:     e.Entity.Targeting,
		lineType: lineType,
		rm:       rm,
		target:   briefTargetOf(graph, e),
	}

	findings := make([]domain.Finding, 0, len(targetingRules)+1)
	if lineType == "" {
		findings = append(findings, violation(c.Name(), e, domain.SeverityWarning,
			"line item name has no MOA_, MOW_, CTV_ or DE_ prefix; type rules skipped"))
	}

	for _, rule := range targetingRules {
		applies, issue := rule.check(in)
		if !applies {
			continue
		}
		if issue != "" {
			findings = append(findings, violation(c.Name(), e, domain.SeverityError, rule.name+": "+issue))
			continue
		}
		findings = append(findings, passed(c.Name(), e, rule.name+" ok"))
	}

	return findings, nil
}

// LineItemType classifica o line item pelo prefixo do nome; rm indica _RM_ no nome
func LineItemType(name string) (lineType string, rm bool) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	rm = strings.Contains(upper, "_RM_")
	for _, t := range []string{LineTypeMOA, LineTypeCTV, LineTypeMOW, LineTypeDE} {
		if strings.HasPrefix(upper, t+"_") {
			return t, rm
		}
	}
	return "", rm
}

func checkCountry(in targetingInput) (bool, string) {
	if contains(in.spec.Countries, "usa") {
		return true, ""
	}
	return true, fmt.Sprintf("include country %s does not contain USA", listOf(in.spec.Countries))
}

func checkGeo(in targetingInput) (bool, string) {
	if in.target == nil {
		return false, ""
	}
	required, _ := utils.ParseYesNo(in.target.GeoFlag)
	if !required {
		return false, ""
	}
	if in.spec.GeoTargeted {
		return true, ""
	}
	return true, "brief requires geo but no region, metro, zip or lat/long list is set"
}

func checkEnvironment(in targetingInput) (bool, string) {
	var want string
	switch in.lineType {
	case LineTypeMOA, LineTypeCTV:
		want = "1"
	case LineTypeMOW, LineTypeDE:
		want = "0"
	default:
		return false, ""
	}
	if sameSet(in.spec.EnvironmentTypes, []string{want}) {
		return true, ""
	}
	return true, fmt.Sprintf("environment type %s, expected %s for %s", listOf(in.spec.EnvironmentTypes), want, in.lineType)
}

func checkOSDevice(in targetingInput) (bool, string) {
	switch in.lineType {
	case LineTypeCTV:
		if len(in.spec.OperatingSystems) > 0 {
			return true, "CTV line item must not target operating systems"
		}
		if !sameSet(in.spec.DeviceTypes, ctvDeviceTypes) {
			return true, fmt.Sprintf("device types %s, expected %s", listOf(in.spec.DeviceTypes), listOf(ctvDeviceTypes))
		}
		return true, ""
	case LineTypeMOA, LineTypeMOW, LineTypeDE:
		if len(in.spec.DeviceTypes) > 0 {
			return true, fmt.Sprintf("%s line item must not target device types", in.lineType)
		}
		want := mobileOS
		if in.lineType == LineTypeDE {
			want = desktopOS
		}
		if !sameSet(in.spec.OperatingSystems, want) {
			return true, fmt.Sprintf("operating systems %s, expected %s", listOf(in.spec.OperatingSystems), listOf(want))
		}
		return true, ""
	}
	return false, ""
}

func checkSegment(in targetingInput) (bool, string) {
	for _, s := range in.spec.Segments {
		if strings.Contains(s, "catalina-") {
			return true, ""
		}
	}
	return true, "no catalina- segment included"
}

func checkInventorySource(in targetingInput) (bool, string) {
	if !in.rm {
		return false, ""
	}
	if sameSet(in.spec.ExcludeInventorySources, rmInventorySources) {
		return true, ""
	}
	return true, fmt.Sprintf("excluded inventory sources %s, expected %s for _RM_ line items",
		listOf(in.spec.ExcludeInventorySources), listOf(rmInventorySources))
}

func checkAppBundleList(in targetingInput) (bool, string) {
	if in.target == nil || in.lineType == "" {
		return false, ""
	}

	var want []string
	switch in.lineType {
	case LineTypeMOA, LineTypeCTV:
		if lda(in.target) {
			want = []string{"353"}
			break
		}
		want = []string{"174"}
		if in.rm && in.lineType == LineTypeMOA {
			want = append(want, "1351")
		}
		if in.spec.AdvertiserID == specialAdvertiserID {
			want = append(want, "1358")
		}
	}
	return expectList("excluded app bundle lists", in.spec.ExcludeAppBundleLists, want)
}

func checkDomainList(in targetingInput) (bool, string) {
	if in.target == nil || in.lineType == "" {
		return false, ""
	}

	var want []string
	switch in.lineType {
	case LineTypeMOW, LineTypeDE:
		if lda(in.target) {
			want = []string{"352"}
			break
		}
		want = []string{"94"}
		if in.rm && in.lineType == LineTypeMOW {
			want = append(want, "1352")
		}
		if in.spec.AdvertiserID == specialAdvertiserID {
			want = append(want, "1357")
		}
	}
	return expectList("excluded domain lists", in.spec.ExcludeDomainLists, want)
}

func checkContentCategory(in targetingInput) (bool, string) {
	want := defaultContentCategories
	if in.spec.AdvertiserID == specialAdvertiserID {
		want = specialContentCategories
	}
	if sameSet(in.spec.ExcludeContentCategory, want) {
		return true, ""
	}
	missing, extra := diff(in.spec.ExcludeContentCategory, want)
	return true, fmt.Sprintf("excluded content categories differ (missing %s, unexpected %s)", listOf(missing), listOf(extra))
}

func checkCTVApps(in targetingInput) (bool, string) {
	if in.lineType != LineTypeCTV {
		if len(in.spec.ExcludeAppNames) > 0 {
			return true, fmt.Sprintf("only CTV line items exclude app names, found %s", listOf(in.spec.ExcludeAppNames))
		}
		return true, ""
	}
	if missing, _ := diff(in.spec.ExcludeAppNames, ctvExcludedApps); len(missing) > 0 {
		return true, fmt.Sprintf("excluded app names are missing %s", listOf(missing))
	}
	return true, ""
}

func checkDealIDs(in targetingInput) (bool, string) {
	if in.target == nil {
		return false, ""
	}
	var want []string
	if lda(in.target) {
		want = []string{"194"}
		if in.lineType == LineTypeCTV {
			want = []string{"1454"}
		}
	}
	return expectList("deal ids", in.spec.DealIDs, want)
}

func checkVideoPlacement(in targetingInput) (bool, string) {
	if in.target == nil {
		return false, ""
	}
	var want []string
	if strings.Contains(in.target.PlatformMedia(), "video") {
		want = []string{"1"}
	}
	if len(want) > 0 && (len(in.spec.VideoPlacementTypes) != 1 || in.spec.VideoPlacementTypes[0] != "1") {
		return true, fmt.Sprintf("video placement type %s, expected exactly 1", listOf(in.spec.VideoPlacementTypes))
	}
	return expectList("video placement types", in.spec.VideoPlacementTypes, want)
}

func checkFrequency(in targetingInput) (bool, string) {
	if !strings.EqualFold(in.spec.FrequencyCapIDType, "STANDARD") {
		return true, fmt.Sprintf("frequency cap id type %q, expected STANDARD", in.spec.FrequencyCapIDType)
	}
	if !contains(frequencyDurations, in.spec.FrequencyDuration) {
		return true, fmt.Sprintf("frequency duration %q, expected one of %s", in.spec.FrequencyDuration, listOf(frequencyDurations))
	}
	return true, ""
}

func checkBiddingStrategy(in targetingInput) (bool, string) {
	if strings.EqualFold(in.spec.BiddingStrategy, "CPM_PACED") {
		return true, ""
	}
	return true, fmt.Sprintf("bidding strategy %q, expected CPM_PACED", in.spec.BiddingStrategy)
}

func checkBidCPM(in targetingInput) (bool, string) {
	if in.target == nil {
		return false, ""
	}
	geo, _ := utils.ParseYesNo(in.target.GeoFlag)
	expected, base, addon, ok := ExpectedCPM(in.target.PlatformMedia(), geo, lda(in.target), in.target.ViewabilityGoal)
	if !ok {
		return true, fmt.Sprintf("no CPM rule for platform/media %q", in.target.PlatformMedia())
	}
	if in.spec.CPMBid == nil {
		return true, "bidding values have no cpm_bid"
	}
	if math.Round(*in.spec.CPMBid*100) != math.Round(expected*100) {
		return true, fmt.Sprintf("cpm bid $%.2f, expected $%.2f (base $%.2f + viewability $%.2f)", *in.spec.CPMBid, expected, base, addon)
	}
	return true, ""
}

// ExpectedCPM calcula o lance esperado: CPM base da plataforma/mídia mais o adicional de viewability
func ExpectedCPM(platformMedia string, geo, ldaCompliant bool, viewabilityGoal string) (expected, base, addon float64, ok bool) {
	platformMedia = strings.ToLower(strings.TrimSpace(platformMedia))

	found := false
	for _, rule := range baseCPMs {
		if !strings.HasPrefix(platformMedia, rule.prefix) {
			continue
		}
		if len(rule.media) > 0 && !containsAny(platformMedia, rule.media) {
			continue
		}
		switch {
		case rule.useLDA && ldaCompliant:
			base = rule.lda
		case geo:
			base = rule.geo
		default:
			base = rule.noGeo
		}
		found = true
		break
	}
	if !found {
		return 0, 0, 0, false
	}

	addon = viewabilityAddon(platformMedia, viewabilityGoal)
	return base + addon, base, addon, true
}

func viewabilityAddon(platformMedia, goal string) float64 {
	value, err := utils.ParseNumber(goal)
	if err != nil {
		return 0
	}
	if value < 1 {
		value *= 100
	}

	keys := make([]string, 0, len(viewabilityAddons))
	for k := range viewabilityAddons {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if !strings.HasPrefix(platformMedia, key) {
			continue
		}
		addons := viewabilityAddons[key]
		for i := len(viewabilityFloors) - 1; i >= 0; i-- {
			if value >= viewabilityFloors[i] && value <= 100 {
				return addons[i]
			}
		}
		return 0
	}
	return 0
}

func lda(target *domain.TargetRecord) bool {
	yes, _ := utils.ParseYesNo(target.LDACompliant)
	return yes
}

// expectList exige a lista exata; want vazio significa que a lista precisa estar vazia
func expectList(label string, got, want []string) (bool, string) {
	if sameSet(got, want) {
		return true, ""
	}
	if len(want) == 0 {
		return true, fmt.Sprintf("%s should be empty, found %s", label, listOf(got))
	}
	return true, fmt.Sprintf("%s %s, expected %s", label, listOf(got), listOf(want))
}

func sameSet(a, b []string) bool {
	missing, extra := diff(a, b)
	return len(missing) == 0 && len(extra) == 0
}

// diff devolve o que falta em got para chegar a want e o que sobra em got
func diff(got, want []string) (missing, extra []string) {
	gotSet := make(map[string]bool, len(got))
	for _, v := range got {
		gotSet[v] = true
	}
	wantSet := make(map[string]bool, len(want))
	for _, v := range want {
		wantSet[v] = true
		if !gotSet[v] && !contains(missing, v) {
			missing = append(missing, v)
		}
	}
	for _, v := range got {
		if !wantSet[v] && !contains(extra, v) {
			extra = append(extra, v)
		}
	}
	return missing, extra
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func containsAny(s string, parts []string) bool {
	for _, p := range parts {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

func listOf(values []string) string {
	if len(values) == 0 {
		return "(none)"
	}
	return strings.Join(values, ";")
}

func lowerList(value string) []string {
	parts := strings.Split(value, ";")
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return parts
}
