package generator

import (
	"reflect"
	"testing"
)

func TestParseVariations(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		want     int
		expected []string
	}{
		{
			"single variation returns whole text",
			"  Headline tunggal.  ",
			1,
			[]string{"Headline tunggal."},
		},
		{
			"numbered with dots",
			"1. Pertama\n2. Kedua\n3. Ketiga",
			3,
			[]string{"Pertama", "Kedua", "Ketiga"},
		},
		{
			"numbered with parens",
			"1) Pertama\n2) Kedua",
			2,
			[]string{"Pertama", "Kedua"},
		},
		{
			"bold and quotes stripped",
			"1. **\"Gurih Maksimal\"**\n2. \"Renyah Tiada Tara\"",
			2,
			[]string{"Gurih Maksimal", "Renyah Tiada Tara"},
		},
		{
			"preamble ignored",
			"Berikut headline pilihan:\n1. Satu\n2. Dua",
			2,
			[]string{"Satu", "Dua"},
		},
		{
			"no numbering falls back to whole text",
			"Model menjawab bebas tanpa daftar.",
			3,
			[]string{"Model menjawab bebas tanpa daftar."},
		},
		{
			"extra items truncated",
			"1. A\n2. B\n3. C\n4. D",
			2,
			[]string{"A", "B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseVariations(tt.text, tt.want)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("parseVariations() = %v, want %v", got, tt.expected)
			}
		})
	}
}
