package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrettyJson(t *testing.T) {
	type summary struct {
		ID       string   `json:"id"`
		Warnings int      `json:"warnings"`
		Tags     []string `json:"tags"`
	}

	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "mapa", in: map[string]int{"a": 1}, want: "{\n\t\"a\": 1\n}"},
		{name: "bytes json", in: []byte(`{"b":true}`), want: "{\n\t\"b\": true\n}"},
		{name: "bytes inválidos", in: []byte("not json"), want: "not json"},
		{
			name: "struct aninhada",
			in:   map[string]any{"summary": summary{ID: "r1", Warnings: 2, Tags: []string{"x"}}},
			want: "{\n\t\"summary\": {\n\t\t\"id\": \"r1\",\n\t\t\"warnings\": 2,\n\t\t\"tags\": [\n\t\t\t\"x\"\n\t\t]\n\t}\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, tt.want, PrettyJson(tt.in))
			})
		})
	}
}
