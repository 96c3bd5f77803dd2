package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlexibleDate(t *testing.T) {
	want := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
	}{
		{name: "iso", input: "2024-03-05"},
		{name: "iso com hora", input: "2024-03-05 17:45:00"},
		{name: "rfc3339", input: "2024-03-05T23:59:59Z"},
		{name: "americano", input: "03/05/2024"},
		{name: "americano curto", input: "3/5/24"},
		{name: "por extenso", input: "March 5, 2024"},
		{name: "abreviado", input: "Mar 5, 2024"},
		{name: "serial do excel", input: "45356"},
		{name: "serial com fração", input: "45356.75"},
		{name: "espaços", input: "  2024-03-05  "},
		{name: "excel d-mmm-yy", input: "5-Mar-24"},
		{name: "excel dd-mmm-yy", input: "05-Mar-24"},
		{name: "excel d-mmm-yyyy", input: "5-Mar-2024"},
		{name: "excel mmm minúsculo", input: "5-mar-24"},
		{name: "excel m/d/yy h:mm", input: "3/5/24 0:00"},
		{name: "excel m/d/yyyy h:mm", input: "3/5/2024 13:30"},
		{name: "iso sem segundos", input: "2024-03-05 08:15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFlexibleDate(tt.input)
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "got %s", got)
		})
	}
}

func TestParseFlexibleDateIn_SemAno(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "excel d-mmm", input: "1-Mar"},
		{name: "mmm d", input: "Mar 1"},
		{name: "americano sem ano", input: "3/1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFlexibleDateIn(tt.input, 2024)
			require.NoError(t, err)
			assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), got)
		})
	}

	got, err := ParseFlexibleDate("1-Mar")
	require.NoError(t, err)
	assert.Equal(t, time.Now().Year(), got.Year())
}

func TestParseFlexibleDate_Invalid(t *testing.T) {
	for _, input := range []string{"", "TBD", "12", "2024-13-45"} {
		_, err := ParseFlexibleDate(input)
		assert.Error(t, err, input)
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	b := time.Date(2024, 1, 15, 23, 10, 0, 0, time.UTC)
	c := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, c))
	assert.Equal(t, "", FormatDate(nil))
	assert.Equal(t, "2024-01-15", FormatDate(&b))
}
