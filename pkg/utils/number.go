package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// Percent devolve part/total em porcentagem com duas casas; zero quando total é zero
func Percent(part, total int) float64 {
	if total == 0 {
		return 0
	}

	return RoundWithTwoDecimalPlace(float64(part) * 100 / float64(total))
}

// ParseNumber lê números de planilha: aceita "$", "%", separador de milhar e espaços
func ParseNumber(value string) (float64, error) {
	clean := strings.NewReplacer("$", "", "%", "", ",", "", " ", "").Replace(strings.TrimSpace(value))
	if clean == "" {
		return 0, fmt.Errorf("empty number")
	}
	f, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", value)
	}
	return f, nil
}

// ParseYesNo interpreta sim/não de planilhas; ok é falso quando o valor não é nenhum dos dois
func ParseYesNo(value string) (yes bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "y", "true", "sim":
		return true, true
	case "no", "n", "false", "não", "nao":
		return false, true
	}
	return false, false
}
