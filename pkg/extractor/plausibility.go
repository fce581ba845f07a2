package extractor

import "strings"

// Name plausibility filtering. Recognition over mixed-script cards
// produces Latin garbage lines (regional glyphs transliterated into noise)
// that look superficially like names; every positional and line-scan
// strategy must pass candidates through these checks before accepting one.

const (
	minNameLen = 3
	maxNameLen = 50

	// Real names keep their vowel share inside this band; OCR garbage
	// drifts outside it.
	minVowelRatio = 0.15
	maxVowelRatio = 0.6

	// Names rarely run more than four consonants back to back.
	maxConsonantRun = 4
)

// isPotentialName reports whether a text line is plausibly the subject's
// name: letters, spaces and periods only, no boilerplate keyword, not a
// bare label, not a relation-marker line, sane length, and not OCR
// garbage.
func isPotentialName(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" || !nameCharsRe.MatchString(line) {
		return false
	}
	if containsSkipWord(line) {
		return false
	}
	if labelWords[strings.ToLower(line)] {
		return false
	}
	if !isPlausibleName(line) {
		return false
	}
	// S/O, D/O, W/O lines carry a relative's name, not the subject's.
	if relationPrefixRe.MatchString(line) {
		return false
	}
	return len(line) >= minNameLen && len(line) <= maxNameLen
}

// isPlausibleName applies the OCR-garbage heuristic: vowel-to-letter ratio
// inside the plausible band, no long consonant run, and none of the known
// garbage substrings.
func isPlausibleName(name string) bool {
	clean := strings.ToLower(strings.NewReplacer(" ", "", ".", "").Replace(name))
	if len(clean) < 2 {
		return false
	}

	vowelCount, consonantCount := 0, 0
	run, maxRun := 0, 0
	for _, c := range clean {
		switch {
		case strings.ContainsRune("aeiou", c):
			vowelCount++
			run = 0
		case c >= 'a' && c <= 'z':
			consonantCount++
			run++
			if run > maxRun {
				maxRun = run
			}
		default:
			run = 0
		}
	}

	total := vowelCount + consonantCount
	if total == 0 {
		return false
	}
	ratio := float64(vowelCount) / float64(total)
	if ratio < minVowelRatio || ratio > maxVowelRatio {
		return false
	}
	if maxRun > maxConsonantRun {
		return false
	}

	for _, g := range garbageSubstrings {
		if strings.Contains(clean, g) {
			return false
		}
	}
	return true
}

func containsSkipWord(s string) bool {
	lower := strings.ToLower(s)
	for _, w := range skipNameWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
