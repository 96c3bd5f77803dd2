package briefing

import (
	"strings"
	"unicode"
)

// NormalizeLabel deixa o rótulo comparável: minúsculo, sem espaços (inclusive NBSP) e sem ":" ou "*" no final
func NormalizeLabel(label string) string {
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return strings.TrimRight(b.String(), ":*")
}

// labelSet é um conjunto de rótulos já normalizados
type labelSet map[string]struct{}

func newLabelSet(labels []string) labelSet {
	set := make(labelSet, len(labels))
	for _, l := range labels {
		if n := NormalizeLabel(l); n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}

func (s labelSet) has(value string) bool {
	n := NormalizeLabel(value)
	if n == "" {
		return false
	}
	_, ok := s[n]
	return ok
}
