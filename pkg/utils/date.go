package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Faixa aceita para números seriais de data do Excel (1982 a 2091)
const (
	excelSerialMin = 30000
	excelSerialMax = 70000
)

var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// Formatos aceitos em datas de brief e da plataforma, na ordem de tentativa
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.DateOnly,
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"01/02/06",
	"1/2/06",
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
	"01.02.2006",
	"2006.01.02",
	"01-02-06",
	// formatos de exibição do excel (d-mmm-yy, m/d/yy h:mm)
	"2-Jan-06",
	"2-Jan-2006",
	"2 Jan 2006",
	"1/2/06 15:04",
	"1/2/2006 15:04",
	"1/2/06 15:04:05",
	"1/2/2006 15:04:05",
	"2006-01-02 15:04",
	"Monday, January 2, 2006",
}

// Formatos sem ano (d-mmm do excel); o ano vem da data de referência
var yearlessLayouts = []string{
	"2-Jan",
	"Jan 2",
	"1/2",
}

// DateOnly remove a hora, mantendo apenas a data de calendário em UTC
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay compara apenas a data de calendário
func SameDay(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}

// ParseFlexibleDate interpreta datas vindas de planilhas e APIs: seriais do Excel,
// ISO, formato americano e por extenso. O resultado é sempre uma data de calendário.
// Datas sem ano ficam no ano corrente.
func ParseFlexibleDate(value string) (time.Time, error) {
	return ParseFlexibleDateIn(value, time.Now().Year())
}

// ParseFlexibleDateIn é ParseFlexibleDate com o ano usado quando o valor não traz ano
func ParseFlexibleDateIn(value string, year int) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		if serial > excelSerialMin && serial < excelSerialMax {
			days := math.Floor(serial)
			return DateOnly(excelEpoch.AddDate(0, 0, int(days))), nil
		}
		return time.Time{}, fmt.Errorf("number %q is not an excel date", value)
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return DateOnly(t), nil
		}
	}

	for _, layout := range yearlessLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date format %q", value)
}

// FormatDate formata uma data opcional para relatórios
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}
