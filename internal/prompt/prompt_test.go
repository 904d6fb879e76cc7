package prompt

import (
	"strings"
	"testing"
)

func fullRequest() Request {
	return Request{
		ProductName:    "Keripik Singkong Balado",
		Category:       "Makanan & Minuman",
		Price:          "Rp 15.000",
		Features:       []string{"Tanpa pengawet", "Pedas nampol", "Kemasan ziplock"},
		TargetAudience: "Mahasiswa dan pekerja kantoran",
		Tone:           "casual",
		ContentType:    ContentTypeDescription,
		Platform:       "",
		Length:         "medium",
		Variations:     1,
	}
}

func TestRenderIncludesAttributesVerbatim(t *testing.T) {
	req := fullRequest()
	req.ContentType = ContentTypeCaption
	req.Platform = "instagram"

	got, err := Render(req)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	verbatim := []string{
		"Keripik Singkong Balado",
		"Makanan & Minuman",
		"Rp 15.000",
		"Tanpa pengawet",
		"Pedas nampol",
		"Kemasan ziplock",
		"Mahasiswa dan pekerja kantoran",
		"casual",
		"instagram",
		"medium",
	}
	for _, want := range verbatim {
		if !strings.Contains(got, want) {
			t.Errorf("Render() missing verbatim attribute %q", want)
		}
	}
}

func TestRenderMissingFields(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Request)
		wantField string
	}{
		{"no product name", func(r *Request) { r.ProductName = "" }, "product_name"},
		{"whitespace product name", func(r *Request) { r.ProductName = "   " }, "product_name"},
		{"no category", func(r *Request) { r.Category = "" }, "category"},
		{"no tone", func(r *Request) { r.Tone = "" }, "tone"},
		{"no length", func(r *Request) { r.Length = "" }, "length"},
		{
			"caption without platform",
			func(r *Request) { r.ContentType = ContentTypeCaption; r.Platform = "" },
			"platform",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := fullRequest()
			tt.mutate(&req)

			got, err := Render(req)
			if got != "" {
				t.Errorf("Render() = %q, want empty output on error", got)
			}
			mfe, ok := err.(*MissingFieldError)
			if !ok {
				t.Fatalf("Render() error = %v, want *MissingFieldError", err)
			}
			if mfe.Field != tt.wantField {
				t.Errorf("MissingFieldError.Field = %q, want %q", mfe.Field, tt.wantField)
			}
		})
	}
}

func TestRenderOptionalFieldsOmitted(t *testing.T) {
	req := fullRequest()
	req.Price = ""
	req.Features = nil
	req.TargetAudience = ""

	got, err := Render(req)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	for _, label := range []string{"Harga:", "Keunggulan produk:", "Target pembeli:"} {
		if strings.Contains(got, label) {
			t.Errorf("Render() contains %q for an empty optional field", label)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	for _, ct := range AllContentTypes {
		req := fullRequest()
		req.ContentType = ct
		if ct == ContentTypeCaption {
			req.Platform = "tiktok"
		}

		first, err := Render(req)
		if err != nil {
			t.Fatalf("Render(%s) error = %v", ct, err)
		}
		for i := 0; i < 5; i++ {
			again, err := Render(req)
			if err != nil {
				t.Fatalf("Render(%s) error = %v", ct, err)
			}
			if again != first {
				t.Errorf("Render(%s) not deterministic across calls", ct)
			}
		}
	}
}

func TestRenderDescriptionProfessional(t *testing.T) {
	req := Request{
		ProductName: "Kopi Nusantara",
		Category:    "Makanan & Minuman",
		Tone:        "professional",
		ContentType: ContentTypeDescription,
		Length:      "medium",
	}

	got, err := Render(req)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(got, "Kopi Nusantara") {
		t.Error("Render() missing product name")
	}
	if !strings.Contains(got, "professional") {
		t.Error("Render() missing tone value")
	}
	if !strings.Contains(got, "call-to-action") {
		t.Error("Render() missing call-to-action instruction")
	}
}

func TestRenderCaptionPlatformConstraints(t *testing.T) {
	tests := []struct {
		platform     string
		wantLimit    string
		wantHashtags string
	}{
		{"instagram", "2200", "10-15 hashtag"},
		{"twitter", "280", "2-3 hashtag"},
		{"facebook", "63206", "3-5 hashtag"},
		{"tiktok", "2200", "5-8 hashtag"},
	}

	for _, tt := range tests {
		t.Run(tt.platform, func(t *testing.T) {
			req := fullRequest()
			req.ContentType = ContentTypeCaption
			req.Platform = tt.platform

			got, err := Render(req)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if !strings.Contains(got, tt.platform) {
				t.Errorf("Render() missing verbatim platform %q", tt.platform)
			}
			if !strings.Contains(got, tt.wantLimit) {
				t.Errorf("Render() missing character limit %s", tt.wantLimit)
			}
			if !strings.Contains(got, tt.wantHashtags) {
				t.Errorf("Render() missing hashtag instruction %q", tt.wantHashtags)
			}
		})
	}
}

func TestRenderCaptionUnknownPlatform(t *testing.T) {
	req := fullRequest()
	req.ContentType = ContentTypeCaption
	req.Platform = "threads"

	got, err := Render(req)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(got, "threads") {
		t.Error("Render() missing verbatim platform for unknown platform")
	}
	if !strings.Contains(got, "hashtag") {
		t.Error("Render() missing hashtag instruction for unknown platform")
	}
}

func TestRenderHeadlineNumberedList(t *testing.T) {
	req := fullRequest()
	req.ContentType = ContentTypeHeadline
	req.Variations = 5

	got, err := Render(req)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(got, "Buatlah 5 headline") {
		t.Error("Render() missing variation count")
	}
	if !strings.Contains(got, "daftar bernomor") {
		t.Error("Render() missing numbered list instruction")
	}
}

func TestRenderHeadlineZeroVariations(t *testing.T) {
	req := fullRequest()
	req.ContentType = ContentTypeHeadline
	req.Variations = 0

	got, err := Render(req)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(got, "Buatlah 1 headline") {
		t.Error("Render() should clamp variations to 1")
	}
}

func TestRenderUnsupportedContentType(t *testing.T) {
	req := fullRequest()
	req.ContentType = ContentType("poem")

	got, err := Render(req)
	if err == nil {
		t.Fatal("Render() expected error for unsupported content type")
	}
	if got != "" {
		t.Errorf("Render() = %q, want empty output on error", got)
	}
}

func TestMaxTokens(t *testing.T) {
	tests := []struct {
		name        string
		contentType ContentType
		length      string
		platform    string
		variations  int
		expected    int
	}{
		{"short description", ContentTypeDescription, "short", "", 1, 300},
		{"medium description", ContentTypeDescription, "medium", "", 1, 600},
		{"long description", ContentTypeDescription, "long", "", 1, 1200},
		{"unknown length description", ContentTypeDescription, "epic", "", 1, 600},
		{"twitter caption", ContentTypeCaption, "short", "twitter", 1, 200},
		{"tiktok caption", ContentTypeCaption, "medium", "tiktok", 1, 500},
		{"instagram caption", ContentTypeCaption, "medium", "instagram", 1, 600},
		{"facebook caption", ContentTypeCaption, "long", "facebook", 1, 800},
		{"unknown platform caption", ContentTypeCaption, "medium", "threads", 1, 600},
		{"single headline", ContentTypeHeadline, "short", "", 1, 120},
		{"five headlines", ContentTypeHeadline, "short", "", 5, 600},
		{"zero variations clamps", ContentTypeHeadline, "short", "", 0, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaxTokens(tt.contentType, tt.length, tt.platform, tt.variations)
			if got != tt.expected {
				t.Errorf("MaxTokens() = %d, want %d", got, tt.expected)
			}
		})
	}
}
