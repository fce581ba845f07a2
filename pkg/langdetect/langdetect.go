// Package langdetect identifies the dominant language of a document from a
// quick sample recognition pass over its first page.
package langdetect

import (
	"context"
	"image"
	"strings"
	"unicode/utf8"

	"github.com/abadojack/whatlanggo"

	"github.com/docsetu/idextract/pkg/recognizer"
)

// Default is the language assumed when identification cannot be trusted.
const Default = "en"

// SampleModel combines English with the two most common regional scripts
// as hints for the sampling pass.
const SampleModel = "eng+hin+tam"

// minSampleChars is the shortest sample worth identifying; anything less
// defaults to English.
const minSampleChars = 20

var supported = map[string]bool{
	"en": true,
	"hi": true,
	"ta": true,
	"te": true,
	"kn": true,
	"ml": true,
}

// Detect runs one recognition pass over the first page and identifies the
// dominant language. Recognition failures fall back to the default rather
// than failing the document; the full recognition pass will surface real
// engine errors.
func Detect(ctx context.Context, engine recognizer.Engine, firstPage image.Image) string {
	page, err := engine.Recognize(ctx, firstPage, SampleModel)
	if err != nil {
		return Default
	}
	return Identify(page.Text)
}

// Identify applies deterministic language identification to sample text.
// Identical input always yields the identical language. Languages outside
// the supported set resolve to the default.
func Identify(sample string) string {
	sample = strings.TrimSpace(sample)
	if utf8.RuneCountInString(sample) < minSampleChars {
		return Default
	}

	info := whatlanggo.Detect(sample)
	code := info.Lang.Iso6391()
	if supported[code] {
		return code
	}
	return Default
}
