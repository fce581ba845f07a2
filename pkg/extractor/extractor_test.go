package extractor

import (
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsetu/idextract/pkg/document"
)

func findEntity(t *testing.T, entities []document.ExtractedEntity, et document.EntityType) document.ExtractedEntity {
	t.Helper()
	for _, e := range entities {
		if e.Type == et {
			return e
		}
	}
	t.Fatalf("entity %s not extracted", et)
	return document.ExtractedEntity{}
}

func hasEntity(entities []document.ExtractedEntity, et document.EntityType) bool {
	for _, e := range entities {
		if e.Type == et {
			return true
		}
	}
	return false
}

func TestExtractNationalIDMailer(t *testing.T) {
	text := "To\n" +
		"Ramesh Kumar Sharma\n" +
		"S/O Mohan Sharma\n" +
		"12 MG Road\n" +
		"Bengaluru 560001 Karnataka\n" +
		"1234 5678 9012"

	entities := Extract(text, document.NationalID, "en")

	name := findEntity(t, entities, document.FullName)
	assert.Equal(t, "Ramesh Kumar Sharma", name.Value)
	assert.Equal(t, document.MethodRegex, name.Method)
	assert.InDelta(t, 0.85, name.Confidence, 1e-9)

	father := findEntity(t, entities, document.FatherName)
	assert.Equal(t, "Mohan Sharma", father.Value)

	// The address accumulates below the relation marker and truncates
	// exactly at the postal code.
	addr := findEntity(t, entities, document.Address)
	assert.Equal(t, "12 MG Road, Bengaluru 560001", addr.Value)
	assert.Equal(t, document.MethodLineScan, addr.Method)
	assert.InDelta(t, 0.80, addr.Confidence, 1e-9)

	id := findEntity(t, entities, document.NationalIDNumber)
	assert.Equal(t, "1234 5678 9012", id.Value)
	assert.InDelta(t, 0.95, id.Confidence, 1e-9)

	assert.False(t, hasEntity(entities, document.Gender))
	assert.False(t, hasEntity(entities, document.DateOfBirth))
}

func TestExtractNationalIDAnchoredName(t *testing.T) {
	text := "Government of India\n" +
		"Unique Identification Authority of India\n" +
		"Ramesh Kumar Sharma\n" +
		"DOB: 15/08/1985\n" +
		"MALE\n" +
		"1234 5678 9012"

	entities := Extract(text, document.NationalID, "en")

	name := findEntity(t, entities, document.FullName)
	assert.Equal(t, "Ramesh Kumar Sharma", name.Value)
	assert.Equal(t, document.MethodPositional, name.Method)
	assert.InDelta(t, 0.82, name.Confidence, 1e-9)

	dob := findEntity(t, entities, document.DateOfBirth)
	assert.Equal(t, "15/08/1985", dob.Value)
	assert.InDelta(t, 0.90, dob.Confidence, 1e-9)

	gender := findEntity(t, entities, document.Gender)
	assert.Equal(t, "MALE", gender.Value)
}

func TestExtractBareNationalIDNumber(t *testing.T) {
	entities := Extract("Ref 123456789012", document.NationalID, "en")

	id := findEntity(t, entities, document.NationalIDNumber)
	assert.Equal(t, "123456789012", id.Value)
	assert.InDelta(t, 0.95, id.Confidence, 1e-9)
}

func TestExtractNameLineScanLowestTier(t *testing.T) {
	text := "MERA AADHAAR\nRamesh Kumar"

	entities := Extract(text, document.NationalID, "en")

	name := findEntity(t, entities, document.FullName)
	assert.Equal(t, "Ramesh Kumar", name.Value)
	assert.Equal(t, document.MethodLineScan, name.Method)
	assert.InDelta(t, 0.70, name.Confidence, 1e-9)
}

func TestExtractTaxID(t *testing.T) {
	text := "INCOME TAX DEPARTMENT\n" +
		"GOVT. OF INDIA\n" +
		"Permanent Account Number\n" +
		"ABCDE1234F\n" +
		"Suresh Venkataraman\n" +
		"Signature"

	entities := Extract(text, document.TaxID, "en")

	name := findEntity(t, entities, document.FullName)
	assert.Equal(t, "Suresh Venkataraman", name.Value)
	assert.Equal(t, document.MethodPositional, name.Method)

	pan := findEntity(t, entities, document.TaxIDNumber)
	assert.Equal(t, "ABCDE1234F", pan.Value)
	assert.Equal(t, document.MethodRegex, pan.Method)
	assert.InDelta(t, 0.95, pan.Confidence, 1e-9)

	assert.False(t, hasEntity(entities, document.FatherName))
	assert.False(t, hasEntity(entities, document.DateOfBirth))
}

func TestExtractVoterID(t *testing.T) {
	text := "ELECTION COMMISSION OF INDIA\n" +
		"Elector's Name: RAVI PRAKASH\n" +
		"Father's Name: GOPAL PRAKASH\n" +
		"Sex: Male\n" +
		"ABC1234567"

	entities := Extract(text, document.VoterID, "en")

	name := findEntity(t, entities, document.FullName)
	assert.Equal(t, "Ravi Prakash", name.Value)
	assert.Equal(t, document.MethodRegex, name.Method)

	father := findEntity(t, entities, document.FatherName)
	assert.Equal(t, "Gopal Prakash", father.Value)

	gender := findEntity(t, entities, document.Gender)
	assert.Equal(t, "Male", gender.Value)

	epic := findEntity(t, entities, document.VoterIDNumber)
	assert.Equal(t, "ABC1234567", epic.Value)
	assert.InDelta(t, 0.80, epic.Confidence, 1e-9)
}

func TestExtractDrivingLicenseTiers(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		value      string
		method     document.Method
		confidence float64
	}{
		{
			name:       "exact pattern",
			text:       "Driving Licence\nKA01 2021 0123456",
			value:      "KA01 2021 0123456",
			method:     document.MethodRegex,
			confidence: 0.80,
		},
		{
			name:       "label anchored same line",
			text:       "Driving Licence\nDL No: KA 01 20210123456",
			value:      "KA 01 20210123456",
			method:     document.MethodPositional,
			confidence: 0.80,
		},
		{
			name:       "unanchored fallback",
			text:       "Union of India\nKA01-2021-012345",
			value:      "KA01-2021-012345",
			method:     document.MethodPatternFallback,
			confidence: 0.72,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entities := Extract(tt.text, document.DrivingLicense, "en")
			dl := findEntity(t, entities, document.DrivingLicenseNumber)
			assert.Equal(t, tt.value, dl.Value)
			assert.Equal(t, tt.method, dl.Method)
			assert.InDelta(t, tt.confidence, dl.Confidence, 1e-9)
		})
	}
}

func TestExtractRegionalScriptName(t *testing.T) {
	text := "भारत सरकार\nरमेश कुमार शर्मा\nDOB: 15/08/1985"

	entities := Extract(text, document.NationalID, "hi")

	regional := findEntity(t, entities, document.FullNameRegional)
	assert.Equal(t, "रमेश", regional.Value)
	assert.Equal(t, document.MethodUnicodePattern, regional.Method)
	assert.Equal(t, "hindi", regional.OriginalLanguage)
	assert.InDelta(t, 0.80, regional.Confidence, 1e-9)
}

func TestExtractRegionalBoilerplateRejected(t *testing.T) {
	entities := Extract("भारत सरकार", document.NationalID, "hi")
	assert.False(t, hasEntity(entities, document.FullNameRegional))
}

func TestExtractAddressPincodeFallback(t *testing.T) {
	text := "4th Cross Jayanagar\nBengaluru 560095"

	entities := Extract(text, document.NationalID, "en")

	addr := findEntity(t, entities, document.Address)
	assert.Equal(t, "4th Cross Jayanagar, Bengaluru 560095", addr.Value)
	assert.Equal(t, document.MethodPatternFallback, addr.Method)
	assert.InDelta(t, 0.75, addr.Confidence, 1e-9)
}

func TestExtractUnknownDocumentType(t *testing.T) {
	text := "To\nRamesh Kumar Sharma\n1234 5678 9012"

	entities := Extract(text, document.DocumentType("passport"), "en")

	require.Len(t, entities, 1)
	assert.Equal(t, document.FullName, entities[0].Type)
}

func TestExtractResultOrderFollowsTargets(t *testing.T) {
	text := "To\n" +
		"Ramesh Kumar Sharma\n" +
		"S/O Mohan Sharma\n" +
		"12 MG Road\n" +
		"Bengaluru 560001 Karnataka\n" +
		"1234 5678 9012"

	entities := Extract(text, document.NationalID, "en")

	targets := document.TargetEntities(document.NationalID)
	pos := make(map[document.EntityType]int, len(targets))
	for i, et := range targets {
		pos[et] = i
	}

	seen := make(map[document.EntityType]bool)
	last := -1
	for _, e := range entities {
		i, ok := pos[e.Type]
		require.True(t, ok, "unexpected entity type %s", e.Type)
		assert.False(t, seen[e.Type], "duplicate entity type %s", e.Type)
		seen[e.Type] = true
		assert.Greater(t, i, last, "entities out of target order")
		last = i
	}
}

func TestExtractConcurrentCalls(t *testing.T) {
	fixtures := []struct {
		text string
		want string
	}{
		{
			text: "To\nAsha Devi Rao\nS/O Prakash Rao\n12 MG Road\nBengaluru 560001",
			want: "Asha Devi Rao",
		},
		{
			text: "Government of India\nVikram Singh\nDOB: 12/01/1980\n1234 5678 9012",
			want: "Vikram Singh",
		},
	}

	const rounds = 50
	var wg sync.WaitGroup
	for i := 0; i < rounds; i++ {
		for _, f := range fixtures {
			wg.Add(1)
			go func(text, want string) {
				defer wg.Done()
				entities := Extract(text, document.NationalID, "en")
				for _, e := range entities {
					if e.Type == document.FullName && e.Value != want {
						t.Errorf("got name %q, want %q", e.Value, want)
					}
				}
			}(f.text, f.want)
		}
	}
	wg.Wait()
}

func TestExtractLowercaseRecognizedText(t *testing.T) {
	entities := Extract("id card\nabcde1234f", document.TaxID, "en")
	pan := findEntity(t, entities, document.TaxIDNumber)
	assert.Equal(t, "abcde1234f", pan.Value)
	assert.InDelta(t, 0.95, pan.Confidence, 1e-9)

	entities = Extract("gender male", document.NationalID, "en")
	gender := findEntity(t, entities, document.Gender)
	assert.Equal(t, "male", gender.Value)

	entities = Extract("epic\nabc1234567", document.VoterID, "en")
	epic := findEntity(t, entities, document.VoterIDNumber)
	assert.Equal(t, "abc1234567", epic.Value)
}

func TestExtractAddressRegionalKeywordWindow(t *testing.T) {
	// A regional-script address line well past 400 bytes but inside the
	// 400-rune window; the value must stay whole and valid UTF-8.
	line := strings.Repeat("ग", 140)
	text := "पता:\n" + line + "\nनगर 560001"

	entities := Extract(text, document.NationalID, "hi")

	addr := findEntity(t, entities, document.Address)
	assert.True(t, utf8.ValidString(addr.Value))
	assert.Contains(t, addr.Value, line)
	assert.True(t, strings.HasSuffix(addr.Value, "नगर 560001"))
	assert.InDelta(t, 0.80, addr.Confidence, 1e-9)
}

func TestExtractAddressRegionalPincodeBackscan(t *testing.T) {
	// The back-scan window lands inside the regional-script run; it must
	// rewind on rune boundaries rather than slicing bytes.
	text := "x" + strings.Repeat("म", 349) + "\nनगर 560001"

	entities := Extract(text, document.NationalID, "hi")

	addr := findEntity(t, entities, document.Address)
	assert.True(t, utf8.ValidString(addr.Value))
	assert.True(t, strings.HasSuffix(addr.Value, "नगर 560001"))
	assert.Equal(t, document.MethodPatternFallback, addr.Method)
	assert.InDelta(t, 0.75, addr.Confidence, 1e-9)
}

func TestExtractEmptyText(t *testing.T) {
	assert.Empty(t, Extract("", document.NationalID, "en"))
}

func TestIsPotentialName(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"Ramesh Kumar", true},
		{"Suresh Venkataraman", true},
		{"A. P. J. Abdul Kalam", true},
		{"", false},
		{"Ab", false},
		{"To", false},
		{"Male", false},
		{"Government of India", false},
		{"DOB: 15/08/1985", false},
		{"1234 5678 9012", false},
		{"S/O Mohan Sharma", false},
		{"bcdfg hjklm", false},
		{"aeiou aeiou", false},
		{"Angstrom", false},
		{"gufwe nise", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, isPotentialName(tt.line))
		})
	}
}

func TestIsPlausibleNameConsonantRunBoundary(t *testing.T) {
	// Four consonants back to back is still a name; five is garbage.
	assert.True(t, isPlausibleName("Marschal"))
	assert.False(t, isPlausibleName("Marschnal"))
}
