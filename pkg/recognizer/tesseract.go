//go:build ocr

package recognizer

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Tesseract is the gosseract-backed recognition engine. A fresh client is
// created per call, so a single Tesseract value is safe for concurrent use.
type Tesseract struct {
	// TessdataPrefix points at the trained language data directory. Empty
	// uses the system default.
	TessdataPrefix string
	// PageSegMode controls Tesseract page segmentation.
	PageSegMode gosseract.PageSegMode
}

// NewTesseract constructs a Tesseract engine with automatic page
// segmentation.
func NewTesseract(tessdataPrefix string) *Tesseract {
	return &Tesseract{
		TessdataPrefix: tessdataPrefix,
		PageSegMode:    gosseract.PSM_AUTO,
	}
}

// Recognize runs OCR over one page image and reports text plus mean token
// confidence on the 0-100 scale. Sentinel tokens with no confidence are
// dropped from the mean.
func (t *Tesseract) Recognize(ctx context.Context, img image.Image, langModel string) (Page, error) {
	select {
	case <-ctx.Done():
		return Page{}, ctx.Err()
	default:
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return Page{}, fmt.Errorf("encode page image: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if t.TessdataPrefix != "" {
		if err := client.SetTessdataPrefix(t.TessdataPrefix); err != nil {
			return Page{}, &UnavailableError{Reason: fmt.Sprintf("tessdata prefix %q: %v", t.TessdataPrefix, err)}
		}
	}
	if err := client.SetLanguage(strings.Split(langModel, "+")...); err != nil {
		return Page{}, &UnavailableError{Reason: fmt.Sprintf("language model %q: %v", langModel, err)}
	}
	if err := client.SetPageSegMode(t.PageSegMode); err != nil {
		return Page{}, &UnavailableError{Reason: fmt.Sprintf("page segmentation mode: %v", err)}
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return Page{}, fmt.Errorf("set page image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return Page{}, fmt.Errorf("recognize text: %w", err)
	}
	text = strings.ReplaceAll(strings.ReplaceAll(text, "\r\n", "\n"), "\r", "\n")

	return Page{
		Text:       strings.TrimSpace(text),
		Confidence: meanWordConfidence(client),
	}, nil
}

// meanWordConfidence averages per-word confidences, skipping words the
// engine flags with a non-positive sentinel value.
func meanWordConfidence(client *gosseract.Client) float64 {
	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil || len(boxes) == 0 {
		return 0
	}
	var sum float64
	var n int
	for _, b := range boxes {
		if b.Confidence <= 0 {
			continue
		}
		sum += b.Confidence
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
