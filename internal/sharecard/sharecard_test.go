package sharecard

import (
	"bytes"
	"image/png"
	"testing"
)

func TestRender(t *testing.T) {
	card := Card{
		ProductName: "Kopi Nusantara",
		Text:        "Kopi robusta pilihan dari petani lokal, disangrai dengan teliti untuk rasa yang kuat dan aroma yang menggoda. Pesan sekarang!",
		Platform:    "instagram",
		ShareURL:    "https://tulisaja.id/c/01HZXW3F9G",
	}

	data, err := Render(card)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode PNG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 1080 || bounds.Dy() != 1080 {
		t.Errorf("card dimensions = %dx%d, want 1080x1080", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderWithoutOptionalParts(t *testing.T) {
	card := Card{
		ProductName: "Keripik Singkong",
		Text:        "Renyah dan gurih.",
	}

	data, err := Render(card)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Fatalf("decode PNG: %v", err)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		max      int
		expected string
	}{
		{"short stays", "Kopi enak", 20, "Kopi enak"},
		{"cuts at word", "satu dua tiga empat lima", 14, "satu dua tiga..."},
		{"no boundary in second half", "panjangsekalikata", 10, "panjangsek..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.text, tt.max); got != tt.expected {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.text, tt.max, got, tt.expected)
			}
		})
	}
}
