package extractor

import (
	"strings"
	"unicode/utf8"

	"github.com/docsetu/idextract/pkg/document"
)

const (
	// addressWindow bounds the text inspected after an address keyword,
	// in runes. Regional scripts run three bytes per character, so byte
	// windows would cover a third of the intended span.
	addressWindow = 400
	// addressMaxLines caps the lines accumulated into one address.
	addressMaxLines = 8
	// addressBackscan bounds how far back an address can start before a
	// bare postal-code match, in runes.
	addressBackscan = 300
)

// truncateRunes cuts s after at most n runes, always on a rune boundary.
func truncateRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}

// rewindRunes steps back at most n runes from byte offset idx in s and
// returns the resulting byte offset, always on a rune boundary.
func rewindRunes(s string, idx, n int) int {
	for idx > 0 && n > 0 {
		_, size := utf8.DecodeLastRuneInString(s[:idx])
		idx -= size
		n--
	}
	return idx
}

// addressKeywordStrategy anchors on an address-indicator keyword and
// accumulates the following lines, truncating precisely at the first
// 6-digit postal code.
type addressKeywordStrategy struct{}

func (s *addressKeywordStrategy) attempt(d *docText) (candidate, bool) {
	for _, keyword := range addressKeywords {
		idx := strings.Index(d.lower, keyword)
		if idx < 0 {
			continue
		}

		lines := strings.Split(truncateRunes(d.raw[idx:], addressWindow), "\n")
		if len(lines) < 2 {
			continue
		}
		if len(lines) > addressMaxLines {
			lines = lines[:addressMaxLines]
		}

		var addrLines []string
		pincodeFound := false
		for _, line := range lines[1:] {
			clean := strings.TrimSpace(line)
			if len(clean) < 3 {
				continue
			}
			if loc := pincodeRe.FindStringIndex(clean); loc != nil {
				addrLines = append(addrLines, strings.TrimSpace(clean[:loc[1]]))
				pincodeFound = true
				break
			}
			// The document's own ID number often sits inside the
			// address block; it is not part of the address.
			if idNumberLineRe.MatchString(clean) {
				continue
			}
			addrLines = append(addrLines, clean)
		}
		if len(addrLines) == 0 {
			continue
		}

		confidence := confAddressNoPin
		if pincodeFound {
			confidence = confAddressKeyword
		}
		return candidate{
			value:      joinAddressLines(addrLines),
			method:     document.MethodLineScan,
			confidence: confidence,
		}, true
	}
	return candidate{}, false
}

// addressPincodeStrategy is the fallback when no keyword anchors the
// address: scan backward from the first 6-digit postal code and take the
// trailing lines as the address.
type addressPincodeStrategy struct{}

func (s *addressPincodeStrategy) attempt(d *docText) (candidate, bool) {
	loc := pincodeRe.FindStringIndex(d.raw)
	if loc == nil {
		return candidate{}, false
	}

	start := rewindRunes(d.raw, loc[0], addressBackscan)
	lines := strings.Split(d.raw[start:loc[1]], "\n")
	if len(lines) > 6 {
		lines = lines[len(lines)-6:]
	}

	var addrLines []string
	for _, line := range lines {
		clean := strings.TrimSpace(line)
		if len(clean) <= 3 {
			continue
		}
		if idNumberLineRe.MatchString(clean) {
			continue
		}
		if pin := pincodeRe.FindStringIndex(clean); pin != nil {
			addrLines = append(addrLines, strings.TrimSpace(clean[:pin[1]]))
		} else {
			addrLines = append(addrLines, clean)
		}
	}
	if len(addrLines) == 0 {
		return candidate{}, false
	}

	return candidate{
		value:      joinAddressLines(addrLines),
		method:     document.MethodPatternFallback,
		confidence: confAddressFallback,
	}, true
}

func joinAddressLines(lines []string) string {
	address := strings.Join(lines, ", ")
	address = strings.TrimRight(address, ", ")
	return multiSpaceRe.ReplaceAllString(address, " ")
}
