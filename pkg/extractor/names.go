package extractor

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/docsetu/idextract/pkg/document"
)

// titleCase builds a fresh caser per call; cases.Caser carries internal
// transform state and must not be shared across goroutines.
func titleCase(s string) string {
	return cases.Title(language.Und).String(s)
}

// nameRegexStrategy matches labeled name fields using the detected
// language's patterns, falling back to English.
type nameRegexStrategy struct {
	lang string
}

func (s *nameRegexStrategy) attempt(d *docText) (candidate, bool) {
	patterns, ok := namePatterns[s.lang]
	if !ok {
		patterns = namePatterns["en"]
	}

	for _, re := range patterns {
		m := re.FindStringSubmatch(d.raw)
		if m == nil {
			continue
		}
		name := multiSpaceRe.ReplaceAllString(strings.TrimSpace(m[1]), " ")
		if containsSkipWord(name) {
			continue
		}
		if len(name) < minNameLen || len(name) > 100 {
			continue
		}
		return candidate{
			value:      titleCase(name),
			method:     document.MethodRegex,
			confidence: confNameRegex,
		}, true
	}
	return candidate{}, false
}

// nameAnchorStrategy looks for the subject's name relative to known
// landmark lines: just above the date-of-birth line (national ID layout)
// or just below the tax-department header (tax card layout).
type nameAnchorStrategy struct{}

func (s *nameAnchorStrategy) attempt(d *docText) (candidate, bool) {
	dobIdx, taxIdx := -1, -1
	for i, line := range d.lines {
		clean := strings.ToLower(strings.TrimSpace(line))
		if strings.Contains(clean, "dob:") ||
			strings.Contains(clean, "date of birth") ||
			strings.Contains(clean, "year of birth") {
			dobIdx = i
		}
		if strings.Contains(clean, "permanent account number") ||
			strings.Contains(clean, "income tax department") ||
			containsWord(clean, "pan") {
			taxIdx = i
		}
	}

	if dobIdx != -1 {
		for i := 1; i <= 3; i++ {
			if dobIdx-i < 0 {
				break
			}
			line := strings.TrimSpace(d.lines[dobIdx-i])
			if !isPotentialName(line) {
				continue
			}
			return candidate{
				value:      titleCase(line),
				method:     document.MethodPositional,
				confidence: confNameAnchored,
			}, true
		}
	}

	if taxIdx != -1 {
		for i := 1; i <= 4; i++ {
			if taxIdx+i >= len(d.lines) {
				break
			}
			line := strings.TrimSpace(d.lines[taxIdx+i])
			if !isPotentialName(line) {
				continue
			}
			// Never pick the card number or a signature line.
			if taxIDTokenRe.MatchString(line) {
				continue
			}
			if strings.Contains(strings.ToLower(line), "sign") {
				continue
			}
			return candidate{
				value:      titleCase(line),
				method:     document.MethodPositional,
				confidence: confNameAnchored,
			}, true
		}
	}

	return candidate{}, false
}

// nameLineScanStrategy takes the first plausible name line in the whole
// text. A preceding bare "To" salutation (national ID mailer layout) makes
// the hit considerably more trustworthy.
type nameLineScanStrategy struct{}

func (s *nameLineScanStrategy) attempt(d *docText) (candidate, bool) {
	foundTo := false
	for _, line := range d.lines {
		clean := strings.TrimSpace(line)
		if strings.EqualFold(clean, "to") {
			foundTo = true
			continue
		}
		if !isPotentialName(clean) {
			continue
		}
		confidence := confNameLineScan
		if foundTo {
			confidence = confNameAfterTo
		}
		return candidate{
			value:      titleCase(clean),
			method:     document.MethodLineScan,
			confidence: confidence,
		}, true
	}
	return candidate{}, false
}

// fatherRegexStrategy matches labeled relative-name fields (father,
// husband, S/O markers).
type fatherRegexStrategy struct{}

func (s *fatherRegexStrategy) attempt(d *docText) (candidate, bool) {
	for _, re := range fatherPatterns {
		m := re.FindStringSubmatch(d.raw)
		if m == nil {
			continue
		}
		name := multiSpaceRe.ReplaceAllString(strings.TrimSpace(m[1]), " ")
		if containsSkipWord(name) {
			continue
		}
		if labelWords[strings.ToLower(name)] {
			continue
		}
		if len(name) < minNameLen || len(name) > maxNameLen {
			continue
		}
		return candidate{
			value:      titleCase(name),
			method:     document.MethodRegex,
			confidence: confFatherRegex,
		}, true
	}
	return candidate{}, false
}

// fatherLineScanStrategy relies on the tax card layout where the second
// plausible name line below the holder's is the father's.
type fatherLineScanStrategy struct{}

func (s *fatherLineScanStrategy) attempt(d *docText) (candidate, bool) {
	var nameLines []string
	for _, line := range d.lines {
		clean := strings.TrimSpace(line)
		if clean == "" || !nameCharsRe.MatchString(clean) {
			continue
		}
		if containsSkipWord(clean) || labelWords[strings.ToLower(clean)] {
			continue
		}
		if len(clean) < minNameLen || len(clean) > maxNameLen {
			continue
		}
		if !isPlausibleName(clean) {
			continue
		}
		nameLines = append(nameLines, clean)
	}

	if len(nameLines) < 2 {
		return candidate{}, false
	}
	name := multiSpaceRe.ReplaceAllString(nameLines[1], " ")
	return candidate{
		value:      titleCase(name),
		method:     document.MethodLineScan,
		confidence: confFatherLineScan,
	}, true
}

func containsWord(s, word string) bool {
	for _, f := range strings.Fields(s) {
		if f == word {
			return true
		}
	}
	return false
}
