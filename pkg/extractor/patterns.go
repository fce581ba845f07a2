package extractor

import (
	"regexp"

	"github.com/docsetu/idextract/pkg/document"
)

// entityPatterns maps an entity type to its ordered candidate patterns.
// Patterns are tried in declaration order and the first match's first
// capture group is the raw candidate value. Later patterns deliberately
// loosen the format to absorb OCR misreads; the normalizer repairs them.
// Matching is case-insensitive throughout since engines regularly emit
// lowercase text for uppercase card print.
var entityPatterns = map[document.EntityType][]*regexp.Regexp{
	document.NationalIDNumber: {
		regexp.MustCompile(`\b(\d{4}\s\d{4}\s\d{4})\b`),
		regexp.MustCompile(`\b(\d{4}\s?\d{4}\s?\d{4})\b`),
		regexp.MustCompile(`\b(\d{12})\b`),
		// Poor OCR reads block separators as stray characters.
		regexp.MustCompile(`\b(\d{4}.{0,2}\d{4}.{0,2}\d{4})\b`),
	},
	document.TaxIDNumber: {
		// 5 letters + 4 digits + 1 letter, with and without the label.
		regexp.MustCompile(`(?im)(?:Permanent Account Number|PAN|P\.A\.N)[:\s]*([A-Z]{5}[0-9O]{4}[A-Z])\b`),
		regexp.MustCompile(`(?im)(?:Account Number)[:\s]*([A-Z]{5}[0-9O]{4}[A-Z])\b`),
		regexp.MustCompile(`(?i)\b([A-Z]{5}[0-9O]{4}[A-Z])\b`),
		// Letters misread into digit positions; corrected downstream.
		regexp.MustCompile(`(?i)\b([A-Z]{5}[A-Z0-9]{4}[A-Z])\b`),
		regexp.MustCompile(`(?i)\b([A-Z]{3}[A-Z]{2}[A-Z0-9]{4}[A-Z])\b`),
	},
	document.VoterIDNumber: {
		// EPIC format: 3 letters + 7 digits.
		regexp.MustCompile(`(?i)\b([A-Z]{3}\d{7})\b`),
		regexp.MustCompile(`(?i)\b([A-Z]{2,3}/\d{2}/\d{3}/\d{6})\b`),
		regexp.MustCompile(`(?i)\b([A-Z]{3}\s?\d{7})\b`),
		regexp.MustCompile(`(?im)(?:EPIC|Epic|ID)[:\s]*([A-Z]{3}\d{7})`),
		regexp.MustCompile(`(?im)(?:Voter ID|Voter No|EPIC No)[:\s]*([A-Z0-9]{10,12})`),
	},
	document.DateOfBirth: {
		regexp.MustCompile(`(?im)(?:DOB|D\.O\.B|Date of Birth|जन्म तिथि|பிறந்த தேதி).*?[:\s]*(\d{2}[/\-.]\d{2}[/\-.]\d{4})`),
		// Some national ID cards carry only a year of birth.
		regexp.MustCompile(`(?im)(?:Year of Birth|YOB|वर्ष|பிறந்த ஆண்டு).*?[:\s]*(\d{4})`),
		regexp.MustCompile(`(?im)(?:DOB|D\.O\.B|Birth)[:\s]*(\d{4})`),
		regexp.MustCompile(`\b(\d{2}/\d{2}/\d{4})\b`),
		regexp.MustCompile(`\b(\d{2}-\d{2}-\d{4})\b`),
		regexp.MustCompile(`\b(\d{2}\.\d{2}\.\d{4})\b`),
	},
	document.Gender: {
		regexp.MustCompile(`(?i)\b(MALE|FEMALE|पुरुष|महिला|ஆண்|பெண்|మగ|ఆడ)\b`),
		regexp.MustCompile(`(?im)(?:Gender|Sex|लिंग)[:\s]*(Male|Female|MALE|FEMALE|M|F)`),
	},
	document.RationCardNumber: {
		regexp.MustCompile(`\b(\d{2}\s?\d{6}\s?\d{6})\b`),
		regexp.MustCompile(`(?i)\b([A-Z]{2,3}\d{10,15})\b`),
	},
	document.AnnualIncome: {
		regexp.MustCompile(`(?im)(?:Annual Income|वार्षिक आय|ஆண்டு வருமானம்)[:\s]*(?:Rs\.?|₹)?\s*(\d[\d,]+)`),
		regexp.MustCompile(`(?im)(?:Rs\.?|₹)\s*(\d[\d,]+)\s*(?:per annum|p\.a\.|/year)`),
	},
	document.DrivingLicenseNumber: {
		// State code + RTO code + year + serial, e.g. KA0119991234567.
		regexp.MustCompile(`(?i)\b([A-Z]{2}\d{2}\s?\d{4}\s?\d{7})\b`),
		regexp.MustCompile(`(?i)\b([A-Z]{2}\d{13})\b`),
		regexp.MustCompile(`(?i)\b([A-Z]{2}-\d{2}-\d{4}-\d{7})\b`),
		regexp.MustCompile(`(?im)(?:DL\s*No|License\s*No|Driving\s*Licence|D\.L\.)[:\s]*([A-Z]{2}\d{2,4}[\s-]?\d{4,}[\s-]?\d*)`),
		regexp.MustCompile(`(?im)(?:Licence\s*No|DL\s*Number)[:\s]*([A-Z0-9\s-]{10,20})`),
		// Legacy hyphenated/slashed forms.
		regexp.MustCompile(`(?i)\b([A-Z]{2}/\d{2}/\d{4}/\d{7})\b`),
	},
	document.BloodGroup: {
		regexp.MustCompile(`(?im)(?:Blood\s*Group|BG|Blood\s*Gp|रक्त समूह)[:\s]*([ABO]{1,2}[+-]|[ABO]{1,2}\s*(?:Positive|Negative|POS|NEG|\+|-))`),
		regexp.MustCompile(`(?i)\b(A\+|A-|B\+|B-|AB\+|AB-|O\+|O-)\b`),
		regexp.MustCompile(`(?im)\b(A\s*(?:Positive|Negative|POS|NEG))\b`),
		regexp.MustCompile(`(?im)\b(B\s*(?:Positive|Negative|POS|NEG))\b`),
		regexp.MustCompile(`(?im)\b(AB\s*(?:Positive|Negative|POS|NEG))\b`),
		regexp.MustCompile(`(?im)\b(O\s*(?:Positive|Negative|POS|NEG))\b`),
	},
	document.OrganDonor: {
		regexp.MustCompile(`(?im)(?:Organ\s*Donor|Donor)[:\s]*(Yes|No|Y|N)\b`),
		regexp.MustCompile(`(?im)(?:Organ\s*Donation)[:\s]*(Yes|No|Y|N)\b`),
	},
	document.ValidityDate: {
		regexp.MustCompile(`(?im)(?:Valid\s*(?:Till|Upto|Until)|Validity|VLD|NT|Non[\s-]*Transport)[:\s]*(\d{2}[/\-.]\d{2}[/\-.]\d{4})`),
		regexp.MustCompile(`(?im)(?:TR|Transport)[:\s]*(\d{2}[/\-.]\d{2}[/\-.]\d{4})`),
		regexp.MustCompile(`(?im)(?:Expiry|EXP|Expires)[:\s]*(\d{2}[/\-.]\d{2}[/\-.]\d{4})`),
		regexp.MustCompile(`(?im)(?:Valid\s*(?:Till|Upto|Until))[:\s]*(\d{4}[/\-.]\d{2}[/\-.]\d{2})`),
	},
	document.IssueDate: {
		regexp.MustCompile(`(?im)(?:Issue\s*Date|DOI|Date\s*of\s*Issue|Issued\s*On)[:\s]*(\d{2}[/\-.]\d{2}[/\-.]\d{4})`),
		regexp.MustCompile(`(?im)(?:Issue\s*Date|DOI)[:\s]*(\d{4}[/\-.]\d{2}[/\-.]\d{2})`),
	},
	document.CertificateIssueDate: {
		regexp.MustCompile(`(?im)(?:Date\s*of\s*Issue|Issued\s*On|Issue\s*Date|दिनांक)[:\s]*(\d{2}[/\-.]\d{2}[/\-.]\d{4})`),
		regexp.MustCompile(`(?im)(?:Dated)[:\s]*(\d{2}[/\-.]\d{2}[/\-.]\d{4})`),
	},
	document.Community: {
		regexp.MustCompile(`(?im)(?:Community|Caste|जाति|சமூகம்)[:\s]*([A-Za-z]+(?:\s[A-Za-z]+)?)`),
	},
}

// namePatterns holds language-specific labeled name patterns. English
// patterns cover the "To" salutation on national ID mailers, elector and
// tax card name fields; relation markers (S/O, D/O) are excluded because
// they introduce a relative's name, not the subject's.
var namePatterns = map[string][]*regexp.Regexp{
	"en": {
		regexp.MustCompile(`(?m)(?:To\s*\n)([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)`),
		regexp.MustCompile(`(?m)(?:To\s*:?\s*\n?)([A-Z][A-Za-z]+\s+[A-Z][A-Za-z]+)`),
		regexp.MustCompile(`(?im)(?:Elector(?:'s)?\s*Name|Voter(?:'s)?\s*Name)[:\s]*\n?([A-Z][A-Z\s.]+?)(?:\n|Father|$)`),
		regexp.MustCompile(`(?m)(?:Name|NAME)[:\s]*\n?([A-Z][A-Z\s]+?)(?:\n|Father|S/O|D/O|$)`),
		regexp.MustCompile(`(?im)(?:Name|NAME)[:\s]+([A-Za-z\s.]+?)(?:\n|S/O|D/O|$)`),
	},
	"hi": {
		regexp.MustCompile(`(?m)(?:नाम|नाम:)[:\s]*(.+?)(?:\n|$)`),
		regexp.MustCompile(`(?m)(?:निर्वाचक का नाम|मतदाता का नाम)[:\s]*(.+?)(?:\n|$)`),
	},
	"ta": {
		regexp.MustCompile(`(?m)(?:பெயர்|பெயர்:)[:\s]*(.+?)(?:\n|$)`),
	},
}

// fatherPatterns are labeled patterns for a relative's name; "Fatver" is a
// recurrent OCR misread of "Father" on voter cards.
var fatherPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)(?:Father(?:'s)?[\s/|]*Name|Fatver(?:'s)?[\s/|]*Name)[:\s|]*\n?([A-Z][A-Za-z\s.]+?)(?:\n|$)`),
	regexp.MustCompile(`(?im)(?:Husband(?:'s)?[\s/|]*Name)[:\s|]*\n?([A-Z][A-Za-z\s.]+?)(?:\n|$)`),
	regexp.MustCompile(`(?m)(?:Father's Name|FATHER'S NAME|Father Name)[:\s]*\n?([A-Z][A-Z\s]+?)(?:\n|Date|DOB|$)`),
	regexp.MustCompile(`(?im)(?:S/O|D/O|Son of|Daughter of|W/O|Wife of)[:\s]*([A-Za-z\s.]+?)(?:\n|$)`),
	regexp.MustCompile(`(?m)(?:पिता का नाम|पिता)[:\s]*(.+?)(?:\n|$)`),
}

// skipNameWords are boilerplate tokens that disqualify a candidate name:
// issuing-authority headers and field labels in English and the major
// regional transliterations.
var skipNameWords = []string{
	"government", "india", "aadhaar", "unique", "identification",
	"authority", "male", "female", "address", "download", "date", "dob",
	"income", "tax", "department", "permanent", "account", "number",
	"भारत", "सरकार", "आयकर", "विभाग", "govt", "republic",
	"election", "commission", "voter", "electoral", "photo", "identity",
	"card", "elector", "epic", "roll", "polling", "station", "booth",
}

// addressKeywords anchor the address scan. Relation markers open address
// blocks on national ID mailers.
var addressKeywords = []string{
	"address", "पता", "முகவரி", "చిరునామా", "ವಿಳಾಸ", "വിലാസം",
	"s/o", "d/o", "w/o", "c/o", "house", "street", "road", "lane",
	"district", "state", "pin", "pincode",
}

// scriptBoilerplate lists issuing-authority words per regional script; a
// script run equal to one of these is never a name.
var scriptBoilerplate = map[string]bool{
	"भारत": true, "सरकार": true, "आधार": true, "पुरुष": true,
	"महिला": true, "पता": true, "जन्म": true, "तिथि": true,
	"विशिष्ट": true, "पहचान": true, "प्राधिकरण": true, "मेरा": true,
	"मेरी": true, "आयकर": true, "विभाग": true,
}

// garbageSubstrings are letter sequences that repeatedly show up when the
// engine transliterates regional glyphs into Latin noise.
var garbageSubstrings = []string{"fw", "wf", "guf", "ufwe", "weni", "nise"}

// labelWords are bare field labels that can never be a value on their own.
var labelWords = map[string]bool{
	"name": true, "to": true, "from": true, "signature": true, "sign": true,
	"male": true, "female": true, "date": true, "are": true,
}

var (
	relationPrefixRe = regexp.MustCompile(`(?i)^[SDWC]/O\s`)
	nameCharsRe      = regexp.MustCompile(`^[A-Za-z\s.]+$`)
	multiSpaceRe     = regexp.MustCompile(`\s+`)
	pincodeRe        = regexp.MustCompile(`\b(\d{6})\b`)
	idNumberLineRe   = regexp.MustCompile(`^\d{4}\s?\d{4}\s?\d{4}$`)
	taxIDTokenRe     = regexp.MustCompile(`[A-Z]{5}[0-9O]{4}[A-Z]`)
	dlLabelRe        = regexp.MustCompile(`(?i)(DL\s*No|License\s*No|Driving\s*Licen[cs]e|D\.L\.|Licence\s*No)`)
	dlTokenRe        = regexp.MustCompile(`([A-Z]{2}[\s-]?\d{2,4}[\s-]?\d{4,}[\s-]?\d*)`)
	dlAnywhereRe     = regexp.MustCompile(`\b([A-Z]{2}\d{2}[\s-]?\d{4}[\s-]?\d{5,7})\b`)
)

// scriptRanges delimit the regional Unicode blocks scanned for
// regional-script names, in probe order.
var scriptRanges = []struct {
	script string
	re     *regexp.Regexp
}{
	{"tamil", regexp.MustCompile(`[\x{0B80}-\x{0BFF}]+`)},
	{"hindi", regexp.MustCompile(`[\x{0900}-\x{097F}]+`)},
	{"telugu", regexp.MustCompile(`[\x{0C00}-\x{0C7F}]+`)},
	{"kannada", regexp.MustCompile(`[\x{0C80}-\x{0CFF}]+`)},
	{"malayalam", regexp.MustCompile(`[\x{0D00}-\x{0D7F}]+`)},
}
