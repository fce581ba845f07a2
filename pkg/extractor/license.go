package extractor

import (
	"strings"

	"github.com/docsetu/idextract/pkg/document"
)

// License-number extraction runs a three-tier fallback distinct from other
// fields: exact regex (patternStrategy, highest confidence), then a
// label-anchored scan of the same or next two lines, then an unanchored
// pattern scan anywhere in the text at the lowest confidence.

// licenseLabelStrategy searches near DL labels for a token shaped like a
// license number.
type licenseLabelStrategy struct{}

func (s *licenseLabelStrategy) attempt(d *docText) (candidate, bool) {
	for i, line := range d.lines {
		clean := strings.TrimSpace(line)
		if clean == "" || !dlLabelRe.MatchString(clean) {
			continue
		}

		if m := dlTokenRe.FindStringSubmatch(clean); m != nil {
			return candidate{
				value:      strings.TrimSpace(m[1]),
				method:     document.MethodPositional,
				confidence: confLicenseLabelSame,
			}, true
		}

		for j := 1; j <= 2 && i+j < len(d.lines); j++ {
			next := strings.TrimSpace(d.lines[i+j])
			if m := dlTokenRe.FindStringSubmatch(next); m != nil {
				return candidate{
					value:      strings.TrimSpace(m[1]),
					method:     document.MethodPositional,
					confidence: confLicenseLabelNext,
				}, true
			}
		}
	}
	return candidate{}, false
}

// licenseAnywhereStrategy takes the first strongly license-shaped token
// anywhere in the text.
type licenseAnywhereStrategy struct{}

func (s *licenseAnywhereStrategy) attempt(d *docText) (candidate, bool) {
	m := dlAnywhereRe.FindStringSubmatch(d.raw)
	if m == nil {
		return candidate{}, false
	}
	return candidate{
		value:      strings.TrimSpace(m[1]),
		method:     document.MethodPatternFallback,
		confidence: confLicenseFallback,
	}, true
}
