// Package export renders generated content for download as TXT, JSON,
// CSV, and PDF.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Item is one exportable piece of content together with the request
// attributes a reader needs for context.
type Item struct {
	ID          string    `json:"id"`
	ProductName string    `json:"product_name"`
	ContentType string    `json:"content_type"`
	Platform    string    `json:"platform,omitempty"`
	Tone        string    `json:"tone"`
	Length      string    `json:"length"`
	ModelID     string    `json:"model_id"`
	Text        string    `json:"text"`
	IsFavorite  bool      `json:"is_favorite"`
	CreatedAt   time.Time `json:"created_at"`
}

const dateLayout = "02 Jan 2006 15:04"

// ContentTXT renders one item as plain text with a metadata header.
func ContentTXT(item Item) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "TulisAja - %s\n", item.ProductName)
	fmt.Fprintf(&b, "Jenis konten: %s\n", item.ContentType)
	if item.Platform != "" {
		fmt.Fprintf(&b, "Platform: %s\n", item.Platform)
	}
	fmt.Fprintf(&b, "Gaya bahasa: %s\n", item.Tone)
	fmt.Fprintf(&b, "Model: %s\n", item.ModelID)
	fmt.Fprintf(&b, "Dibuat: %s\n", item.CreatedAt.Format(dateLayout))
	b.WriteString(strings.Repeat("-", 40) + "\n\n")
	b.WriteString(item.Text)
	b.WriteString("\n")
	return []byte(b.String())
}

// ContentJSON renders one item as indented JSON.
func ContentJSON(item Item) ([]byte, error) {
	data, err := json.MarshalIndent(item, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal content: %w", err)
	}
	return data, nil
}

var csvHeader = []string{"Tanggal", "Produk", "Jenis Konten", "Platform", "Gaya", "Model", "Konten"}

// HistoryCSV renders a content history as CSV with an Indonesian header
// row, one row per item.
func HistoryCSV(items []Item) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write CSV header: %w", err)
	}
	for _, item := range items {
		row := []string{
			item.CreatedAt.Format(dateLayout),
			item.ProductName,
			item.ContentType,
			item.Platform,
			item.Tone,
			item.ModelID,
			item.Text,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// HistoryJSON renders a content history as indented JSON.
func HistoryJSON(items []Item) ([]byte, error) {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal history: %w", err)
	}
	return data, nil
}

// ContentPDF renders one item as an A4 PDF with a metadata block above
// the copy.
func ContentPDF(item Item) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 8, tr(item.ProductName), "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	meta := fmt.Sprintf("Jenis konten: %s", item.ContentType)
	if item.Platform != "" {
		meta += fmt.Sprintf("  |  Platform: %s", item.Platform)
	}
	meta += fmt.Sprintf("  |  Gaya: %s", item.Tone)
	pdf.MultiCell(0, 5, tr(meta), "", "L", false)
	pdf.MultiCell(0, 5, tr(fmt.Sprintf("Model: %s  |  Dibuat: %s", item.ModelID, item.CreatedAt.Format(dateLayout))), "", "L", false)
	pdf.Ln(4)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, tr(item.Text), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename builds a download filename like tulisaja-kopi-nusantara-20260102.txt.
func Filename(item Item, format string) string {
	slug := slugify(item.ProductName)
	if slug == "" {
		slug = "konten"
	}
	return fmt.Sprintf("tulisaja-%s-%s.%s", slug, item.CreatedAt.Format("20060102"), format)
}

func slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}
