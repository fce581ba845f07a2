package extractor

import (
	"regexp"
	"strings"
	"time"

	"github.com/docsetu/idextract/pkg/document"
)

// Strategy confidences. The regex tier starts at confRegexBase and is
// elevated when the value passes a strict structural check; the remaining
// constants are hand-tuned calibration values for the lower tiers, kept in
// one block so they can be revisited against labeled data.
const (
	confRegexBase  = 0.80
	confStrictID   = 0.95
	confStrictDate = 0.90

	confNameRegex    = 0.85
	confNameAnchored = 0.82
	confNameAfterTo  = 0.85
	confNameLineScan = 0.70

	confFatherRegex    = 0.80
	confFatherLineScan = 0.75

	confScriptRun = 0.80

	confAddressKeyword  = 0.80
	confAddressNoPin    = 0.70
	confAddressFallback = 0.75

	confLicenseLabelSame = 0.80
	confLicenseLabelNext = 0.78
	confLicenseFallback  = 0.72
)

var (
	strictTaxIDRe    = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	digitsOnlyRe     = regexp.MustCompile(`^\d+$`)
	whitespaceOnlyRe = regexp.MustCompile(`\s`)
)

var strictDateLayouts = []string{
	"02/01/2006",
	"02-01-2006",
	"2006-01-02",
	"02.01.2006",
}

// scoreRegexMatch assigns the confidence for a regex-tier value: the base,
// elevated when the value has exactly the canonical structure.
func scoreRegexMatch(entityType document.EntityType, value string) float64 {
	switch entityType {
	case document.NationalIDNumber:
		clean := whitespaceOnlyRe.ReplaceAllString(value, "")
		if len(clean) == 12 && digitsOnlyRe.MatchString(clean) {
			return confStrictID
		}
	case document.TaxIDNumber:
		if strictTaxIDRe.MatchString(strings.ToUpper(value)) {
			return confStrictID
		}
	case document.DateOfBirth, document.ValidityDate, document.IssueDate, document.CertificateIssueDate:
		for _, layout := range strictDateLayouts {
			if _, err := time.Parse(layout, value); err == nil {
				return confStrictDate
			}
		}
	}
	return confRegexBase
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
