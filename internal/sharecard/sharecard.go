// Package sharecard renders square PNG cards so users can share generated
// copy on social feeds with a scannable link back to the content.
package sharecard

import (
	"bytes"
	"fmt"
	"image/png"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/tulisaja/tulisaja/internal/prompt"
)

const (
	cardSize   = 1080
	margin     = 80.0
	qrSize     = 180
	maxNameLen = 60
	maxTextLen = 280
)

type Card struct {
	ProductName string
	Text        string
	Platform    string
	Footer      string
	ShareURL    string
}

// Render draws card onto a 1080x1080 canvas and returns the encoded PNG.
func Render(card Card) ([]byte, error) {
	dc := gg.NewContext(cardSize, cardSize)

	dc.SetRGB255(250, 248, 243)
	dc.Clear()

	dc.SetRGB255(13, 148, 136)
	dc.DrawRectangle(0, 0, cardSize, 16)
	dc.Fill()

	font, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	dc.SetRGB255(31, 41, 55)
	dc.SetFontFace(truetype.NewFace(font, &truetype.Options{Size: 58}))
	name := truncate(card.ProductName, maxNameLen)
	dc.DrawStringWrapped(name, margin, 110, 0, 0, cardSize-2*margin, 1.2, gg.AlignLeft)

	dc.SetRGB255(209, 213, 219)
	dc.SetLineWidth(2)
	dc.DrawLine(margin, 280, cardSize-margin, 280)
	dc.Stroke()

	dc.SetRGB255(55, 65, 81)
	dc.SetFontFace(truetype.NewFace(font, &truetype.Options{Size: 38}))
	body := truncate(card.Text, maxTextLen)
	dc.DrawStringWrapped(body, margin, 330, 0, 0, cardSize-2*margin, 1.5, gg.AlignLeft)

	if card.Platform != "" {
		drawPlatformBadge(dc, font, prompt.SpecForPlatform(card.Platform).DisplayName)
	}

	if card.ShareURL != "" {
		if err := drawQRCode(dc, card.ShareURL); err != nil {
			return nil, err
		}
	}

	footer := card.Footer
	if footer == "" {
		footer = "dibuat dengan TulisAja"
	}
	dc.SetRGB255(107, 114, 128)
	dc.SetFontFace(truetype.NewFace(font, &truetype.Options{Size: 26}))
	dc.DrawString(footer, margin, cardSize-48)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, fmt.Errorf("encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

func drawPlatformBadge(dc *gg.Context, font *truetype.Font, label string) {
	dc.SetFontFace(truetype.NewFace(font, &truetype.Options{Size: 30}))
	textWidth, textHeight := dc.MeasureString(label)

	badgeX := margin
	badgeY := float64(cardSize) - 200
	badgeW := textWidth + 48
	badgeH := textHeight + 28

	dc.SetRGB255(13, 148, 136)
	dc.DrawRoundedRectangle(badgeX, badgeY, badgeW, badgeH, badgeH/2)
	dc.Fill()

	dc.SetRGB255(255, 255, 255)
	dc.DrawStringAnchored(label, badgeX+badgeW/2, badgeY+badgeH/2, 0.5, 0.35)
}

func drawQRCode(dc *gg.Context, shareURL string) error {
	qr, err := qrcode.New(shareURL, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("generate QR code: %w", err)
	}
	qrImg := qr.Image(qrSize)
	dc.DrawImage(qrImg, cardSize-qrSize-int(margin), cardSize-qrSize-int(margin))
	return nil
}

// truncate cuts at a word boundary when one falls in the second half of
// the budget.
func truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	cut := string(runes[:max])
	if idx := strings.LastIndex(cut, " "); idx > max/2 {
		cut = cut[:idx]
	}
	return cut + "..."
}
