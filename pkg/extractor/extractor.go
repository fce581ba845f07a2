// Package extractor turns noisy recognized text into typed,
// confidence-scored entity values. Each entity type runs an ordered chain
// of strategies; the first strategy returning a plausible value wins and
// no further strategies are tried for that field. Extraction is a pure
// function of (text, document type, detected language) and holds no state
// beyond immutable pattern tables, so a single extractor serves concurrent
// documents.
package extractor

import (
	"strings"

	"github.com/docsetu/idextract/pkg/document"
)

// candidate is a raw strategy result before entity assembly.
type candidate struct {
	value      string
	method     document.Method
	confidence float64
	// language overrides the document's detected language when the value
	// was found by script membership rather than recognition language.
	language string
}

// strategy attempts extraction of one field from recognized text.
type strategy interface {
	attempt(d *docText) (candidate, bool)
}

// docText is recognized text pre-split for line-oriented strategies.
type docText struct {
	raw   string
	lower string
	lines []string
}

func newDocText(text string) *docText {
	return &docText{
		raw:   text,
		lower: strings.ToLower(text),
		lines: strings.Split(text, "\n"),
	}
}

// Extract runs the per-field strategy chains for the document type's
// target entity list and returns at most one entity per target type, in
// target order. Fields no strategy can find are silently absent.
func Extract(text string, docType document.DocumentType, lang string) []document.ExtractedEntity {
	d := newDocText(text)

	var entities []document.ExtractedEntity
	for _, entityType := range document.TargetEntities(docType) {
		for _, s := range chainFor(entityType, lang) {
			c, ok := s.attempt(d)
			if !ok {
				continue
			}
			language := lang
			if c.language != "" {
				language = c.language
			}
			entities = append(entities, document.ExtractedEntity{
				Type:             entityType,
				Value:            c.value,
				OriginalLanguage: language,
				Confidence:       clamp01(c.confidence),
				Method:           c.method,
			})
			break
		}
	}
	return entities
}

// chainFor assembles the strategy chain for one entity type. Personal
// names and addresses need positional heuristics; license numbers get a
// three-tier fallback; everything else is a straight pattern lookup.
func chainFor(entityType document.EntityType, lang string) []strategy {
	switch entityType {
	case document.FullName:
		return []strategy{
			&nameRegexStrategy{lang: lang},
			&nameAnchorStrategy{},
			&nameLineScanStrategy{},
		}
	case document.FullNameRegional:
		return []strategy{&scriptRunStrategy{}}
	case document.Address:
		return []strategy{
			&addressKeywordStrategy{},
			&addressPincodeStrategy{},
		}
	case document.FatherName:
		return []strategy{
			&fatherRegexStrategy{},
			&fatherLineScanStrategy{},
		}
	case document.DrivingLicenseNumber:
		return []strategy{
			&patternStrategy{entityType: entityType},
			&licenseLabelStrategy{},
			&licenseAnywhereStrategy{},
		}
	default:
		return []strategy{&patternStrategy{entityType: entityType}}
	}
}

// patternStrategy tries the entity type's candidate patterns in
// declaration order; the first match's first capture group wins.
type patternStrategy struct {
	entityType document.EntityType
}

func (s *patternStrategy) attempt(d *docText) (candidate, bool) {
	for _, re := range entityPatterns[s.entityType] {
		m := re.FindStringSubmatch(d.raw)
		if m == nil {
			continue
		}
		value := strings.TrimSpace(m[1])
		if value == "" {
			continue
		}
		return candidate{
			value:      value,
			method:     document.MethodRegex,
			confidence: scoreRegexMatch(s.entityType, value),
		}, true
	}
	return candidate{}, false
}
