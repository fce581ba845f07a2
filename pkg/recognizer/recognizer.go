// Package recognizer defines the OCR engine contract and turns page images
// into recognized text with confidence signals. The concrete Tesseract
// engine is build-tagged so tests and recognition-free builds can
// substitute a fake.
package recognizer

import (
	"context"
	"image"
	"strings"
)

// Page is the recognition output for one page image. Confidence is the
// mean of per-token confidences on Tesseract's 0-100 scale; tokens the
// engine reports with no usable confidence are excluded from the mean.
type Page struct {
	Text       string
	Confidence float64
}

// Engine recognizes text on a single page image. langModel is a Tesseract
// language specification such as "eng" or "hin+eng". Recognition is
// CPU-bound and blocking; callers owning an event loop must offload calls
// to a worker.
type Engine interface {
	Recognize(ctx context.Context, img image.Image, langModel string) (Page, error)
}

// Transcript concatenates page texts with newline separators in page order
// and folds page confidences into one document confidence rescaled to
// [0,1]. Returns NoTextError when the combined text is blank.
func Transcript(pages []Page) (string, float64, error) {
	var sb strings.Builder
	var sum float64
	for _, p := range pages {
		sb.WriteString(p.Text)
		sb.WriteString("\n")
		sum += p.Confidence
	}

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return "", 0, &NoTextError{}
	}

	confidence := 0.0
	if len(pages) > 0 {
		confidence = sum / float64(len(pages)) / 100.0
	}
	if confidence > 1 {
		confidence = 1
	}
	if confidence < 0 {
		confidence = 0
	}
	return text, confidence, nil
}

// LanguageModel builds the Tesseract language specification for a detected
// language. Identity documents routinely mix a regional script with
// Latin-script fields, so English is always included alongside a regional
// model.
func LanguageModel(detected string) string {
	code, ok := tesseractCodes[detected]
	if !ok || code == "eng" {
		return "eng"
	}
	return code + "+eng"
}

var tesseractCodes = map[string]string{
	"en": "eng",
	"hi": "hin",
	"ta": "tam",
	"te": "tel",
	"kn": "kan",
	"ml": "mal",
}
