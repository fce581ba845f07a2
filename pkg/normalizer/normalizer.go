// Package normalizer canonicalizes extracted entity values. Every
// normalization is idempotent: normalizing an already-normalized value
// returns it unchanged, so values can safely pass through the pipeline
// more than once.
package normalizer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/docsetu/idextract/pkg/document"
)

var (
	nonDigitRe    = regexp.MustCompile(`\D`)
	currencyRe    = regexp.MustCompile(`[₹\s,]|Rs\.?`)
	dayFirstRe    = regexp.MustCompile(`^(\d{2})[/\-.](\d{2})[/\-.](\d{4})`)
	yearFirstRe   = regexp.MustCompile(`^(\d{4})[/\-.](\d{2})[/\-.](\d{2})`)
	licenseSepRe  = regexp.MustCompile(`[\s\-/]`)
	bloodSpaceRe  = regexp.MustCompile(`\s+`)
)

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var canonicalBloodGroups = map[string]bool{
	"A+": true, "A-": true, "B+": true, "B-": true,
	"AB+": true, "AB-": true, "O+": true, "O-": true,
}

// Normalize canonicalizes a value for its entity type. Types without a
// canonical form pass through trimmed.
func Normalize(entityType document.EntityType, value string) string {
	value = strings.TrimSpace(value)

	switch entityType {
	case document.NationalIDNumber:
		return nationalID(value)
	case document.TaxIDNumber:
		return fixTaxIDConfusions(strings.ToUpper(value))
	case document.AnnualIncome:
		return income(value)
	case document.DateOfBirth, document.ValidityDate, document.IssueDate, document.CertificateIssueDate:
		return date(value)
	case document.BloodGroup:
		return bloodGroup(value)
	case document.OrganDonor:
		return organDonor(value)
	case document.DrivingLicenseNumber:
		return strings.ToUpper(licenseSepRe.ReplaceAllString(value, ""))
	}
	return value
}

// nationalID regroups a 12-digit number into 4-4-4 blocks. Values that are
// not 12 digits once separators are stripped pass through untouched.
func nationalID(value string) string {
	digits := nonDigitRe.ReplaceAllString(value, "")
	if len(digits) != 12 {
		return value
	}
	return digits[:4] + " " + digits[4:8] + " " + digits[8:]
}

// income strips currency symbols and separators, then reformats with a
// currency prefix and thousands separators.
func income(value string) string {
	clean := currencyRe.ReplaceAllString(value, "")
	if clean == "" || nonDigitRe.MatchString(clean) {
		return value
	}
	return "₹" + groupThousands(clean)
}

func groupThousands(digits string) string {
	// Drop leading zeros the way integer formatting would.
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		digits = "0"
	}
	var sb strings.Builder
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(c)
	}
	return sb.String()
}

// date reformats D/M/Y or Y/M/D values (with /, - or . separators) to
// "D Mon YYYY". Unrecognized forms, including already-normalized ones,
// pass through.
func date(value string) string {
	var day, month, year string
	if m := dayFirstRe.FindStringSubmatch(value); m != nil {
		day, month, year = m[1], m[2], m[3]
	} else if m := yearFirstRe.FindStringSubmatch(value); m != nil {
		year, month, day = m[1], m[2], m[3]
	} else {
		return value
	}

	monthIdx, err := strconv.Atoi(month)
	if err != nil || monthIdx < 1 || monthIdx > 12 {
		return value
	}
	dayNum, err := strconv.Atoi(day)
	if err != nil {
		return value
	}
	return strconv.Itoa(dayNum) + " " + monthNames[monthIdx-1] + " " + year
}

// bloodGroup folds written positive/negative forms to symbols and
// validates against the 8 canonical groups. Unrecognized values pass
// through unchanged rather than guessing.
func bloodGroup(value string) string {
	folded := strings.ToUpper(value)
	folded = strings.ReplaceAll(folded, "POSITIVE", "+")
	folded = strings.ReplaceAll(folded, "POS", "+")
	folded = strings.ReplaceAll(folded, "NEGATIVE", "-")
	folded = strings.ReplaceAll(folded, "NEG", "-")
	folded = bloodSpaceRe.ReplaceAllString(folded, "")

	if canonicalBloodGroups[folded] {
		return folded
	}
	return value
}

func organDonor(value string) string {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "Y", "YES":
		return "Yes"
	case "N", "NO":
		return "No"
	}
	return value
}
