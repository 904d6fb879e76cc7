// Package prompt renders deterministic Indonesian instruction prompts for
// the remote model from a structured content request. Rendering is a pure
// function: no randomness, no clock, no I/O.
package prompt

import (
	"fmt"
	"strings"
)

type ContentType string

const (
	ContentTypeDescription ContentType = "description"
	ContentTypeCaption     ContentType = "caption"
	ContentTypeHeadline    ContentType = "headline"
)

var AllContentTypes = []ContentType{
	ContentTypeDescription,
	ContentTypeCaption,
	ContentTypeHeadline,
}

// Request carries the attributes a user submitted for one generation.
// String values are interpolated into the prompt verbatim.
type Request struct {
	ProductName    string
	Category       string
	Price          string
	Features       []string
	TargetAudience string
	Tone           string
	ContentType    ContentType
	Platform       string
	Length         string
	Variations     int
}

// MissingFieldError reports a required attribute that was absent for the
// selected content type. Field holds the form field name.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

type PlatformSpec struct {
	DisplayName string
	CharLimit   int
	Hashtags    string
}

var tonePhrases = map[string]string{
	"casual":       "santai dan ramah",
	"professional": "profesional dan terpercaya",
	"luxury":       "mewah dan eksklusif",
	"friendly":     "akrab dan hangat",
	"humorous":     "humoris dan menghibur",
	"persuasive":   "persuasif dan meyakinkan",
	"energetic":    "energik dan bersemangat",
	"minimalist":   "sederhana dan elegan",
	"traditional":  "tradisional dan berbudaya",
	"modern":       "modern dan inovatif",
}

var platformSpecs = map[string]PlatformSpec{
	"instagram": {DisplayName: "Instagram", CharLimit: 2200, Hashtags: "10-15 hashtag yang relevan"},
	"facebook":  {DisplayName: "Facebook", CharLimit: 63206, Hashtags: "3-5 hashtag"},
	"tiktok":    {DisplayName: "TikTok", CharLimit: 2200, Hashtags: "5-8 hashtag yang sedang tren"},
	"twitter":   {DisplayName: "Twitter/X", CharLimit: 280, Hashtags: "2-3 hashtag"},
}

var descriptionLengths = map[string]string{
	"short":  "50-100 kata",
	"medium": "150-250 kata",
	"long":   "300-500 kata",
}

var captionLengths = map[string]string{
	"short":  "20-50 kata",
	"medium": "50-100 kata",
	"long":   "100-200 kata",
}

var headlineLengths = map[string]string{
	"short":  "maksimal 6 kata",
	"medium": "maksimal 10 kata",
	"long":   "maksimal 14 kata",
}

// SpecForPlatform returns the posting constraints for a platform. Unknown
// platforms get a generic spec so the platform value still renders verbatim.
func SpecForPlatform(platform string) PlatformSpec {
	if spec, ok := platformSpecs[platform]; ok {
		return spec
	}
	return PlatformSpec{DisplayName: platform, CharLimit: 2200, Hashtags: "beberapa hashtag yang relevan"}
}

// Render produces the instruction prompt for req. It fails with
// *MissingFieldError when a required attribute for the content type is
// absent, and never returns partial output.
func Render(req Request) (string, error) {
	if err := validate(req); err != nil {
		return "", err
	}

	switch req.ContentType {
	case ContentTypeDescription:
		return renderDescription(req), nil
	case ContentTypeCaption:
		return renderCaption(req), nil
	case ContentTypeHeadline:
		return renderHeadline(req), nil
	default:
		return "", fmt.Errorf("unsupported content type: %q", req.ContentType)
	}
}

func validate(req Request) error {
	if strings.TrimSpace(req.ProductName) == "" {
		return &MissingFieldError{Field: "product_name"}
	}
	if strings.TrimSpace(req.Category) == "" {
		return &MissingFieldError{Field: "category"}
	}
	if strings.TrimSpace(req.Tone) == "" {
		return &MissingFieldError{Field: "tone"}
	}
	if strings.TrimSpace(req.Length) == "" {
		return &MissingFieldError{Field: "length"}
	}
	if req.ContentType == ContentTypeCaption && strings.TrimSpace(req.Platform) == "" {
		return &MissingFieldError{Field: "platform"}
	}
	return nil
}

func renderDescription(req Request) string {
	return fmt.Sprintf(`Buatlah deskripsi produk dalam bahasa Indonesia untuk produk berikut.

%s

%s
%s
Tulis dalam paragraf yang mengalir dan mudah dibaca, soroti manfaat utama bagi pembeli, dan akhiri dengan call-to-action yang jelas untuk mendorong pembelian.`,
		productBlock(req),
		toneLine(req.Tone),
		lengthLine("Panjang tulisan", req.Length, descriptionLengths),
	)
}

func renderCaption(req Request) string {
	spec := SpecForPlatform(req.Platform)
	return fmt.Sprintf(`Buatlah caption media sosial dalam bahasa Indonesia untuk produk berikut.

%s

%s
%s
Patuhi batas maksimal %d karakter untuk %s dan sertakan %s.
Gunakan kalimat pembuka yang menarik perhatian dan ajak pembaca berinteraksi.`,
		productBlock(req),
		toneLine(req.Tone),
		lengthLine("Panjang caption", req.Length, captionLengths),
		spec.CharLimit,
		spec.DisplayName,
		spec.Hashtags,
	)
}

func renderHeadline(req Request) string {
	n := req.Variations
	if n < 1 {
		n = 1
	}
	return fmt.Sprintf(`Buatlah %d headline promosi dalam bahasa Indonesia untuk produk berikut.

%s

%s
%s
Setiap headline harus menonjolkan daya tarik utama produk.
Tulis hasilnya sebagai daftar bernomor (1., 2., dan seterusnya), satu headline per baris, tanpa penjelasan tambahan.`,
		n,
		productBlock(req),
		toneLine(req.Tone),
		lengthLine("Panjang headline", req.Length, headlineLengths),
	)
}

func productBlock(req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Nama produk: %s\n", req.ProductName)
	fmt.Fprintf(&b, "Kategori: %s\n", req.Category)
	if req.Price != "" {
		fmt.Fprintf(&b, "Harga: %s\n", req.Price)
	}
	if len(req.Features) > 0 {
		b.WriteString("Keunggulan produk:\n")
		for _, feature := range req.Features {
			fmt.Fprintf(&b, "- %s\n", feature)
		}
	}
	if req.TargetAudience != "" {
		fmt.Fprintf(&b, "Target pembeli: %s\n", req.TargetAudience)
	}
	if req.Platform != "" {
		fmt.Fprintf(&b, "Platform: %s\n", req.Platform)
	}
	return strings.TrimRight(b.String(), "\n")
}

func toneLine(tone string) string {
	if phrase, ok := tonePhrases[tone]; ok {
		return fmt.Sprintf("Gaya bahasa: %s (%s).", tone, phrase)
	}
	return fmt.Sprintf("Gaya bahasa: %s.", tone)
}

func lengthLine(label, length string, phrases map[string]string) string {
	if phrase, ok := phrases[length]; ok {
		return fmt.Sprintf("%s: %s (%s).", label, length, phrase)
	}
	return fmt.Sprintf("%s: %s.", label, length)
}

const headlineTokensPerVariation = 120

var descriptionTokens = map[string]int{
	"short":  300,
	"medium": 600,
	"long":   1200,
}

var captionPlatformTokens = map[string]int{
	"twitter":   200,
	"tiktok":    500,
	"instagram": 600,
	"facebook":  800,
}

// MaxTokens returns the completion token budget for a generation call.
// Captions are capped by platform, headlines scale with the variation
// count, descriptions by requested length.
func MaxTokens(contentType ContentType, length, platform string, variations int) int {
	switch contentType {
	case ContentTypeCaption:
		if tokens, ok := captionPlatformTokens[platform]; ok {
			return tokens
		}
		return 600
	case ContentTypeHeadline:
		if variations < 1 {
			variations = 1
		}
		return headlineTokensPerVariation * variations
	default:
		if tokens, ok := descriptionTokens[length]; ok {
			return tokens
		}
		return 600
	}
}
