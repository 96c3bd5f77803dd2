package domain

import "strings"

// Grid é uma planilha já carregada em memória: linhas e colunas indexadas a partir de 0.
// Linhas podem ter tamanhos diferentes; células ausentes são tratadas como vazias.
type Grid struct {
	Sheet string
	Rows  [][]string
}

func NewGrid(sheet string, rows [][]string) Grid {
	return Grid{Sheet: sheet, Rows: rows}
}

func (g Grid) RowCount() int {
	return len(g.Rows)
}

// ColumnCount retorna a maior largura entre todas as linhas
func (g Grid) ColumnCount() int {
	max := 0
	for _, row := range g.Rows {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

// Cell retorna o valor da célula sem espaços nas bordas, ou "" fora dos limites
func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g.Rows) || col < 0 || col >= len(g.Rows[row]) {
		return ""
	}
	return strings.TrimSpace(g.Rows[row][col])
}

// IsBlankRow indica se todas as células da linha estão vazias
func (g Grid) IsBlankRow(row int) bool {
	if row < 0 || row >= len(g.Rows) {
		return true
	}
	for _, v := range g.Rows[row] {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
