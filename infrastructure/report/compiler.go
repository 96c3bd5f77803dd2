package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-qa-api/internal/domain"
	"github.com/vfg2006/campaign-qa-api/pkg/utils"
	"github.com/xuri/excelize/v2"
)

const (
	SheetSummary  = "Summary"
	SheetEntities = "Entities"
	SheetMapping  = "Mapping"
	// SheetPipeline recebe os findings gerados fora dos checkers (localização, extração, mapeamento)
	SheetPipeline = "Pipeline"

	maxSheetName = 31
)

var findingHeaders = []any{"Entity", "Kind", "Severity", "Message"}

type Compiler struct{}

func NewCompiler() *Compiler {
	return &Compiler{}
}

type styles struct {
	header  int
	title   int
	passed  int
	warning int
	failed  int
}

// Compile monta a planilha do relatório a partir do resultado do QA
func (c *Compiler) Compile(result *domain.QAResult) (*excelize.File, error) {
	f := excelize.NewFile()

	st, err := newStyles(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		f.Close()
		return nil, errors.Wrap(err, "error creating summary sheet")
	}

	steps := []func(*excelize.File, *domain.QAResult, styles) error{
		writeSummary,
		writeEntities,
		writeMapping,
		writeFindingSheets,
	}
	for _, step := range steps {
		if err := step(f, result, st); err != nil {
			f.Close()
			return nil, err
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

// Write compila o relatório e grava no writer
func (c *Compiler) Write(result *domain.QAResult, w io.Writer) error {
	f, err := c.Compile(result)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "error writing report")
	}
	return nil
}

// WriteFile grava o relatório em dir e retorna o caminho do arquivo
func (c *Compiler) WriteFile(result *domain.QAResult, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "error creating report dir %s", dir)
	}

	f, err := c.Compile(result)
	if err != nil {
		return "", err
	}
	defer f.Close()

	path := filepath.Join(dir, FileName(result))
	if err := f.SaveAs(path); err != nil {
		return "", errors.Wrapf(err, "error saving report %s", path)
	}
	return path, nil
}

// FileName gera o nome do relatório a partir do brief e do horário de conclusão
func FileName(result *domain.QAResult) string {
	base := strings.TrimSuffix(result.BriefName, filepath.Ext(result.BriefName))
	if base == "" {
		base = "brief"
	}
	completed := result.CompletedAt
	if completed.IsZero() {
		completed = time.Now()
	}
	return fmt.Sprintf("QA_Report_%s_%s.xlsx", sanitize(base), completed.UTC().Format("20060102_150405"))
}

func newStyles(f *excelize.File) (styles, error) {
	var st styles
	var err error

	if st.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9D9D9"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	}); err != nil {
		return st, errors.Wrap(err, "error creating header style")
	}
	if st.title, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}}); err != nil {
		return st, errors.Wrap(err, "error creating title style")
	}
	if st.passed, err = f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#C6EFCE"}, Pattern: 1},
	}); err != nil {
		return st, errors.Wrap(err, "error creating pass style")
	}
	if st.warning, err = f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#FFEB9C"}, Pattern: 1},
	}); err != nil {
		return st, errors.Wrap(err, "error creating warning style")
	}
	if st.failed, err = f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#FFC7CE"}, Pattern: 1},
	}); err != nil {
		return st, errors.Wrap(err, "error creating violation style")
	}
	return st, nil
}

// writeRow escreve os valores a partir da coluna A na linha informada (a partir de 1)
func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return errors.Wrapf(err, "error writing row %d of %s", row, sheet)
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, row int, headers []any, style int) error {
	if err := writeRow(f, sheet, row, headers); err != nil {
		return err
	}
	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(len(headers), row)
	return f.SetCellStyle(sheet, first, last, style)
}

func writeSummary(f *excelize.File, result *domain.QAResult, st styles) error {
	sheet := SheetSummary
	row := 1

	put := func(values ...any) error {
		err := writeRow(f, sheet, row, values)
		row++
		return err
	}
	title := func(text string) error {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := put(text); err != nil {
			return err
		}
		return f.SetCellStyle(sheet, cell, cell, st.title)
	}

	if err := title("Campaign QA Report"); err != nil {
		return err
	}
	status := result.StatusCounts()
	overview := [][]any{
		{"Brief", result.BriefName},
		{"Sheet", result.Sheet},
		{"Campaigns", strings.Join(result.CampaignAltIDs, ", ")},
		{"Started", result.StartedAt.UTC().Format(time.RFC3339)},
		{"Completed", result.CompletedAt.UTC().Format(time.RFC3339)},
		{"Match rate (%)", utils.Percent(status[domain.MappingResolved], len(result.Entities))},
	}
	for _, values := range overview {
		if err := put(values...); err != nil {
			return err
		}
	}

	if len(result.Entities) > 0 && status[domain.MappingResolved] == 0 {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := put("Status", "no brief data matched any platform entity"); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, st.warning); err != nil {
			return err
		}
	}
	row++

	if err := title("Brief regions"); err != nil {
		return err
	}
	if err := writeHeader(f, sheet, row, []any{"Region", "Found", "Source", "Header row", "Data rows", "Reason"}, st.header); err != nil {
		return err
	}
	row++
	for _, region := range []domain.BriefRegion{result.Layout.Target, result.Layout.Placement} {
		header := ""
		if region.Found {
			header = fmt.Sprint(region.HeaderRow + 1)
		}
		if err := put(string(region.Kind), region.Found, string(region.Source), header, region.RowCount(), region.Reason); err != nil {
			return err
		}
	}
	row++

	if err := title("Mapping status"); err != nil {
		return err
	}
	if err := writeHeader(f, sheet, row, []any{"Entity type", "Resolved", "Unresolved", "Ambiguous"}, st.header); err != nil {
		return err
	}
	row++
	byType := domain.NewEntityGraph(result.Entities, result.Mapping).StatusCounts()
	for _, t := range []domain.EntityType{domain.EntityCampaign, domain.EntityLineItem, domain.EntityCreative} {
		counts := byType[t]
		if err := put(string(t), counts[domain.MappingResolved], counts[domain.MappingUnresolved], counts[domain.MappingAmbiguous]); err != nil {
			return err
		}
	}
	if err := put("Brief targets mapped", result.Mapping.ResolvedCount(), result.Mapping.Len()-result.Mapping.ResolvedCount(), ""); err != nil {
		return err
	}
	row++

	if err := title("Findings"); err != nil {
		return err
	}
	if err := writeHeader(f, sheet, row, []any{"Checker", "Info", "Warning", "Error"}, st.header); err != nil {
		return err
	}
	row++
	byChecker := result.FindingsByChecker()
	for _, checker := range findingGroups(result) {
		counts := domain.CountBySeverity(byChecker[checker])
		if err := put(checker, counts[domain.SeverityInfo], counts[domain.SeverityWarning], counts[domain.SeverityError]); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheet, "A", "A", 28)
}

func writeEntities(f *excelize.File, result *domain.QAResult, st styles) error {
	sheet := SheetEntities
	if _, err := f.NewSheet(sheet); err != nil {
		return errors.Wrap(err, "error creating entities sheet")
	}

	headers := []any{"Type", "ID", "Alternative ID", "Name", "Parent ID", "Flight start", "Flight end", "Brief start", "Brief end", "Mapping status"}
	if err := writeHeader(f, sheet, 1, headers, st.header); err != nil {
		return err
	}

	for i, e := range result.Entities {
		briefStart, briefEnd := "", ""
		if e.BriefDates != nil {
			briefStart = e.BriefDates.Start.Format(time.DateOnly)
			briefEnd = e.BriefDates.End.Format(time.DateOnly)
		}
		values := []any{
			string(e.Entity.Type), e.Entity.ID, e.Entity.AltID, e.Entity.Name, e.Entity.ParentID,
			utils.FormatDate(e.Entity.FlightStart), utils.FormatDate(e.Entity.FlightEnd),
			briefStart, briefEnd, string(e.Status),
		}
		if err := writeRow(f, sheet, i+2, values); err != nil {
			return err
		}
		if e.Status != domain.MappingResolved {
			cell, _ := excelize.CoordinatesToCellName(len(values), i+2)
			if err := f.SetCellStyle(sheet, cell, cell, st.warning); err != nil {
				return err
			}
		}
	}

	return f.SetColWidth(sheet, "D", "D", 40)
}

func writeMapping(f *excelize.File, result *domain.QAResult, st styles) error {
	sheet := SheetMapping
	if _, err := f.NewSheet(sheet); err != nil {
		return errors.Wrap(err, "error creating mapping sheet")
	}

	headers := []any{"Target ID", "Placement ID", "Brief row", "Platform", "Media type", "Start", "End", "Status"}
	if err := writeHeader(f, sheet, 1, headers, st.header); err != nil {
		return err
	}

	for i, entry := range result.Mapping.Entries() {
		start, end := "", ""
		if entry.Dates != nil {
			start = entry.Dates.Start.Format(time.DateOnly)
			end = entry.Dates.End.Format(time.DateOnly)
		}
		values := []any{
			entry.TargetID, entry.PlacementID, entry.Target.Row + 1,
			entry.Target.Platform, entry.Target.MediaType, start, end, string(entry.Status),
		}
		if err := writeRow(f, sheet, i+2, values); err != nil {
			return err
		}
	}
	return nil
}

func writeFindingSheets(f *excelize.File, result *domain.QAResult, st styles) error {
	byChecker := result.FindingsByChecker()
	pipeline := make([]domain.Finding, 0)
	for _, finding := range result.Findings {
		if !contains(result.Checkers, finding.Checker) {
			pipeline = append(pipeline, finding)
		}
	}

	sheets := make([]string, 0, len(result.Checkers)+1)
	groups := make([][]domain.Finding, 0, len(result.Checkers)+1)
	for _, checker := range result.Checkers {
		sheets = append(sheets, checker)
		groups = append(groups, byChecker[checker])
	}
	if len(pipeline) > 0 {
		sheets = append(sheets, SheetPipeline)
		groups = append(groups, pipeline)
	}

	used := map[string]bool{SheetSummary: true, SheetEntities: true, SheetMapping: true}
	for i, name := range sheets {
		sheet := uniqueSheetName(sanitize(name), used)
		if _, err := f.NewSheet(sheet); err != nil {
			return errors.Wrapf(err, "error creating sheet %s", sheet)
		}

		headers := findingHeaders
		if name == SheetPipeline {
			headers = append([]any{"Source"}, findingHeaders...)
		}
		if err := writeHeader(f, sheet, 1, headers, st.header); err != nil {
			return err
		}

		for j, finding := range groups[i] {
			values := []any{finding.EntityID, string(finding.Kind), string(finding.Severity), finding.Message}
			if name == SheetPipeline {
				values = append([]any{finding.Checker}, values...)
			}
			row := j + 2
			if err := writeRow(f, sheet, row, values); err != nil {
				return err
			}
			first, _ := excelize.CoordinatesToCellName(1, row)
			last, _ := excelize.CoordinatesToCellName(len(values), row)
			if err := f.SetCellStyle(sheet, first, last, severityStyle(finding, st)); err != nil {
				return err
			}
		}

		if err := f.SetColWidth(sheet, "A", "A", 24); err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, "D", "E", 60); err != nil {
			return err
		}
	}
	return nil
}

func severityStyle(f domain.Finding, st styles) int {
	switch {
	case f.Kind == domain.FindingRulePassed:
		return st.passed
	case f.Severity == domain.SeverityError:
		return st.failed
	case f.Severity == domain.SeverityWarning:
		return st.warning
	}
	return 0
}

// findingGroups lista os checkers despachados e, depois, as demais origens de findings em ordem alfabética
func findingGroups(result *domain.QAResult) []string {
	groups := append([]string{}, result.Checkers...)
	others := make([]string, 0)
	for checker := range result.FindingsByChecker() {
		if !contains(groups, checker) {
			others = append(others, checker)
		}
	}
	sort.Strings(others)
	return append(groups, others...)
}

func uniqueSheetName(name string, used map[string]bool) string {
	candidate := name
	for i := 2; used[candidate]; i++ {
		suffix := fmt.Sprintf("_%d", i)
		base := name
		if len(base)+len(suffix) > maxSheetName {
			base = base[:maxSheetName-len(suffix)]
		}
		candidate = base + suffix
	}
	used[candidate] = true
	return candidate
}

// sanitize remove caracteres inválidos em nomes de aba e de arquivo
func sanitize(name string) string {
	replacer := strings.NewReplacer(":", "_", "\\", "_", "/", "_", "?", "_", "*", "_", "[", "_", "]", "_", " ", "_")
	name = replacer.Replace(strings.TrimSpace(name))
	if name == "" {
		name = "sheet"
	}
	if len(name) > maxSheetName {
		name = name[:maxSheetName]
	}
	return name
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
