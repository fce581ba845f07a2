//go:build !ocr

package recognizer

import (
	"context"
	"image"
)

// Tesseract is the recognition engine stub used when the binary is built
// without the ocr tag (Tesseract headers not installed).
type Tesseract struct {
	TessdataPrefix string
}

// NewTesseract constructs the stub engine.
func NewTesseract(tessdataPrefix string) *Tesseract {
	return &Tesseract{TessdataPrefix: tessdataPrefix}
}

// Recognize always reports the engine as unavailable.
func (t *Tesseract) Recognize(ctx context.Context, img image.Image, langModel string) (Page, error) {
	return Page{}, &UnavailableError{
		Reason: "built without the ocr tag; install Tesseract and rebuild with -tags ocr",
	}
}
