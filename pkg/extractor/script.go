package extractor

import (
	"unicode/utf8"

	"github.com/docsetu/idextract/pkg/document"
)

// minScriptRunLen is the shortest regional-script run accepted as a name.
const minScriptRunLen = 3

// scriptRunStrategy finds names written in a regional script by scanning
// for contiguous runs inside each script's Unicode block. Runs matching
// issuing-authority boilerplate are never names, no matter how long.
type scriptRunStrategy struct{}

func (s *scriptRunStrategy) attempt(d *docText) (candidate, bool) {
	for _, sr := range scriptRanges {
		for _, run := range sr.re.FindAllString(d.raw, -1) {
			if scriptBoilerplate[run] {
				continue
			}
			if utf8.RuneCountInString(run) < minScriptRunLen {
				continue
			}
			return candidate{
				value:      run,
				method:     document.MethodUnicodePattern,
				confidence: confScriptRun,
				language:   sr.script,
			}, true
		}
	}
	return candidate{}, false
}
