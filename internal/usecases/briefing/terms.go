package briefing

import (
	"strings"

	"github.com/vfg2006/campaign-qa-api/internal/domain"
	"github.com/vfg2006/campaign-qa-api/pkg/utils"
)

var (
	ldaLabels         = newLabelSet([]string{"LDA or Age Compliant", "LDA Compliant"})
	viewabilityLabels = newLabelSet([]string{"Viewability Goal"})
)

// ExtractTerms procura os termos da campanha no formato "rótulo" seguido do valor na
// próxima célula preenchida da linha, ou "rótulo: valor" na mesma célula.
// Vale a primeira ocorrência de cada rótulo.
func ExtractTerms(grid domain.Grid) domain.BriefTerms {
	var terms domain.BriefTerms
	for row := 0; row < grid.RowCount(); row++ {
		for col := 0; col < len(grid.Rows[row]); col++ {
			cell := grid.Cell(row, col)
			if cell == "" {
				continue
			}
			if terms.LDACompliant == "" {
				terms.LDACompliant = termValue(grid, row, col, cell, ldaLabels, isYesNo)
			}
			if terms.ViewabilityGoal == "" {
				terms.ViewabilityGoal = termValue(grid, row, col, cell, viewabilityLabels, isNumber)
			}
		}
	}
	return terms
}

// termValue só aceita valores que passam em valid; assim um cabeçalho de tabela
// com o mesmo rótulo não é lido como termo
func termValue(grid domain.Grid, row, col int, cell string, labels labelSet, valid func(string) bool) string {
	if labels.has(cell) {
		for next := col + 1; next < len(grid.Rows[row]); next++ {
			if v := grid.Cell(row, next); v != "" {
				if valid(v) {
					return v
				}
				return ""
			}
		}
		return ""
	}

	label, value, ok := strings.Cut(cell, ":")
	if value = strings.TrimSpace(value); ok && labels.has(label) && valid(value) {
		return value
	}
	return ""
}

func isYesNo(v string) bool {
	_, ok := utils.ParseYesNo(v)
	return ok
}

func isNumber(v string) bool {
	_, err := utils.ParseNumber(v)
	return err == nil
}

// ApplyTerms completa os targets sem LDA ou meta de viewability com os termos da campanha
func ApplyTerms(targets []domain.TargetRecord, terms domain.BriefTerms) {
	for i := range targets {
		if targets[i].LDACompliant == "" {
			targets[i].LDACompliant = terms.LDACompliant
		}
		if targets[i].ViewabilityGoal == "" {
			targets[i].ViewabilityGoal = terms.ViewabilityGoal
		}
	}
}
