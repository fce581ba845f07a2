package pipeline

import (
	"fmt"
	"strings"

	"github.com/docsetu/idextract/pkg/document"
)

// reviewThreshold marks the confidence below which a value needs manual
// review before being trusted downstream.
const reviewThreshold = 0.70

// generateWarnings flags low overall recognition confidence and lists any
// individual fields that fall below the review threshold.
func generateWarnings(entities []document.ExtractedEntity, overall float64) []string {
	var warnings []string

	if overall < reviewThreshold {
		warnings = append(warnings, "Low overall OCR confidence. Please verify all extracted data.")
	}

	var weak []string
	for _, e := range entities {
		if e.Confidence < reviewThreshold {
			weak = append(weak, string(e.Type))
		}
	}
	if len(weak) > 0 {
		warnings = append(warnings, fmt.Sprintf("Low confidence on: %s. Please review these fields.", strings.Join(weak, ", ")))
	}

	return warnings
}
