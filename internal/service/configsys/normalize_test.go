package configsys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{name: "nil", in: nil, want: []string{}},
		{name: "keeps order", in: []string{"b", "a"}, want: []string{"b", "a"}},
		{name: "case-insensitive duplicates keep first spelling", in: []string{"Go", "go", "GO", "rust"}, want: []string{"Go", "rust"}},
		{name: "trims and drops empties", in: []string{"  ai ", "", "   ", "ai"}, want: []string{"ai"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeTags(tt.in))
		})
	}
}

func TestDeriveInitials(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "two words", in: "Acme Corp", want: "AC"},
		{name: "single word", in: "personal", want: "P"},
		{name: "three words uses first two", in: "big data team", want: "BD"},
		{name: "skips leading punctuation", in: "(beta) lab", want: "BL"},
		{name: "empty", in: "  ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, deriveInitials(tt.in))
		})
	}
}
