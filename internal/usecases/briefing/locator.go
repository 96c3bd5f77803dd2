package briefing

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-qa-api/internal/domain"
)

// Locate encontra as regiões de placement e de target do brief.
//
// A ordem importa: o cabeçalho de placement também tem uma coluna BVP, que é âncora de target.
// Por isso o placement é procurado primeiro pelos rótulos, depois o target (ignorando o cabeçalho
// de placement) e, por último, o placement pela linha de fallback (ignorando o cabeçalho de target).
// A função é pura: a mesma grade produz sempre o mesmo layout.
func Locate(grid domain.Grid, cfg Config) domain.BriefLayout {
	cfg = cfg.WithDefaults()
	claimed := make(map[int]bool)

	placement := locateByLabel(grid, cfg.Placement, cfg.SearchWindow, claimed)
	if placement.Found {
		claimed[placement.HeaderRow] = true
	}

	target := locateByLabel(grid, cfg.Target, cfg.SearchWindow, claimed)
	if target.Found {
		claimed[target.HeaderRow] = true
	}

	if !placement.Found {
		fallback := locateByFallback(grid, cfg.Placement, claimed)
		if fallback.Found {
			claimed[fallback.HeaderRow] = true
			placement = fallback
		} else {
			placement.Reason = fmt.Sprintf("%s; %s", placement.Reason, fallback.Reason)
		}
	}

	target = withBounds(grid, target, claimed, cfg.BlankRunLimit)
	placement = withBounds(grid, placement, claimed, cfg.BlankRunLimit)

	return domain.BriefLayout{
		Target:    target,
		Placement: placement,
	}
}

// LocateRegion localiza uma única região; linhas em exclude nunca são candidatas e encerram a região
func LocateRegion(grid domain.Grid, spec RegionSpec, cfg Config, exclude map[int]bool) domain.BriefRegion {
	cfg = cfg.WithDefaults()
	claimed := make(map[int]bool, len(exclude))
	for row, ok := range exclude {
		claimed[row] = ok
	}

	region := locateByLabel(grid, spec, cfg.SearchWindow, claimed)
	if !region.Found {
		fallback := locateByFallback(grid, spec, claimed)
		if !fallback.Found {
			region.Reason = fmt.Sprintf("%s; %s", region.Reason, fallback.Reason)
			return region
		}
		region = fallback
	}

	claimed[region.HeaderRow] = true
	return withBounds(grid, region, claimed, cfg.BlankRunLimit)
}

func locateByLabel(grid domain.Grid, spec RegionSpec, window int, claimed map[int]bool) domain.BriefRegion {
	if len(spec.Anchors) == 0 {
		return domain.RegionNotFound(spec.Kind, "no anchor labels configured")
	}

	anchors := newLabelSet(spec.Anchors)
	limit := window
	if limit > grid.RowCount() {
		limit = grid.RowCount()
	}

	rejected := make([]string, 0)
	for row := 0; row < limit; row++ {
		if claimed[row] || !rowHasAnyLabel(grid, row, anchors) {
			continue
		}

		columns := matchColumns(grid, row, spec.Fields)
		if missing := missingFields(columns, spec.KeyFields); len(missing) > 0 {
			logrus.WithFields(logrus.Fields{
				"region":  spec.Kind,
				"row":     row + 1,
				"missing": missing,
			}).Debug("briefing: linha com âncora ignorada, colunas-chave ausentes")
			rejected = append(rejected, fmt.Sprintf("row %d lacks %s", row+1, strings.Join(missing, ",")))
			continue
		}

		return domain.BriefRegion{
			Kind:      spec.Kind,
			Found:     true,
			Source:    domain.AnchorSourceLabel,
			HeaderRow: row,
			Columns:   columns,
		}
	}

	reason := fmt.Sprintf("no anchor label %v in the first %d rows", spec.Anchors, limit)
	if len(rejected) > 0 {
		reason = fmt.Sprintf("%s (%s)", reason, strings.Join(rejected, "; "))
	}
	return domain.RegionNotFound(spec.Kind, reason)
}

func locateByFallback(grid domain.Grid, spec RegionSpec, claimed map[int]bool) domain.BriefRegion {
	if spec.FallbackRow <= 0 {
		return domain.RegionNotFound(spec.Kind, "no fallback row configured")
	}

	row := spec.FallbackRow - 1
	if row >= grid.RowCount() {
		return domain.RegionNotFound(spec.Kind, fmt.Sprintf("fallback row %d is beyond sheet end", spec.FallbackRow))
	}
	if claimed[row] {
		return domain.RegionNotFound(spec.Kind, fmt.Sprintf("fallback row %d belongs to another region", spec.FallbackRow))
	}

	columns := matchColumns(grid, row, spec.Fields)
	if missing := missingFields(columns, spec.KeyFields); len(missing) > 0 {
		return domain.RegionNotFound(spec.Kind, fmt.Sprintf("fallback row %d lacks %s", spec.FallbackRow, strings.Join(missing, ",")))
	}

	return domain.BriefRegion{
		Kind:      spec.Kind,
		Found:     true,
		Source:    domain.AnchorSourceFallback,
		HeaderRow: row,
		Columns:   columns,
	}
}

// withBounds calcula as linhas de dados: do cabeçalho até antes de N linhas vazias seguidas,
// do fim da planilha ou do cabeçalho de outra região. Linhas vazias isoladas não encerram a região.
func withBounds(grid domain.Grid, region domain.BriefRegion, headers map[int]bool, blankRunLimit int) domain.BriefRegion {
	if !region.Found {
		return region
	}

	region.TopRow = region.HeaderRow + 1
	last := region.HeaderRow
	blankRun := 0

	for row := region.TopRow; row < grid.RowCount(); row++ {
		if headers[row] && row != region.HeaderRow {
			break
		}
		if grid.IsBlankRow(row) {
			blankRun++
			if blankRun >= blankRunLimit {
				break
			}
			continue
		}
		blankRun = 0
		last = row
	}

	region.BottomRow = last
	return region
}

func rowHasAnyLabel(grid domain.Grid, row int, labels labelSet) bool {
	for _, v := range grid.Rows[row] {
		if labels.has(v) {
			return true
		}
	}
	return false
}

// matchColumns procura, na linha de cabeçalho, a primeira coluna de cada campo (da esquerda para a direita)
func matchColumns(grid domain.Grid, row int, fields map[string][]string) map[string]int {
	columns := make(map[string]int, len(fields))
	for field, variants := range fields {
		set := newLabelSet(variants)
		for col, v := range grid.Rows[row] {
			if set.has(v) {
				columns[field] = col
				break
			}
		}
	}
	return columns
}

func missingFields(columns map[string]int, required []string) []string {
	missing := make([]string, 0)
	for _, f := range required {
		if _, ok := columns[f]; !ok {
			missing = append(missing, f)
		}
	}
	sort.Strings(missing)
	return missing
}
