package document

import (
	"fmt"
	"time"
)

// DocumentType is the category of a source document. It fixes which entity
// types extraction attempts and in what order.
type DocumentType string

const (
	NationalID           DocumentType = "national_id"
	TaxID                DocumentType = "tax_id"
	VoterID              DocumentType = "voter_id"
	DrivingLicense       DocumentType = "driving_license"
	RationCard           DocumentType = "ration_card"
	CommunityCertificate DocumentType = "community_certificate"
	IncomeCertificate    DocumentType = "income_certificate"
	Other                DocumentType = "other"
)

// EntityType identifies a single typed field of interest on a document.
type EntityType string

const (
	FullName             EntityType = "full_name"
	FullNameRegional     EntityType = "full_name_regional"
	DateOfBirth          EntityType = "date_of_birth"
	Gender               EntityType = "gender"
	Address              EntityType = "address"
	AddressRegional      EntityType = "address_regional"
	NationalIDNumber     EntityType = "national_id_number"
	TaxIDNumber          EntityType = "tax_id_number"
	VoterIDNumber        EntityType = "voter_id_number"
	DrivingLicenseNumber EntityType = "driving_license_number"
	RationCardNumber     EntityType = "ration_card_number"
	Community            EntityType = "community"
	AnnualIncome         EntityType = "annual_income"
	CertificateIssueDate EntityType = "certificate_issue_date"
	FatherName           EntityType = "father_name"
	MotherName           EntityType = "mother_name"
	SpouseName           EntityType = "spouse_name"
	MobileNumber         EntityType = "mobile_number"
	Email                EntityType = "email"
	BloodGroup           EntityType = "blood_group"
	OrganDonor           EntityType = "organ_donor"
	ValidityDate         EntityType = "validity_date"
	IssueDate            EntityType = "issue_date"
)

// Method records which strategy tier produced an entity's value. The tiers
// form a strict reliability ranking: regex > positional > line_scan >
// unicode_pattern > pattern_fallback.
type Method string

const (
	MethodRegex           Method = "regex"
	MethodPositional      Method = "positional"
	MethodLineScan        Method = "line_scan"
	MethodUnicodePattern  Method = "unicode_pattern"
	MethodPatternFallback Method = "pattern_fallback"
)

// ExtractedEntity is one typed, confidence-scored field value proposed for
// human review. Value is already normalized.
type ExtractedEntity struct {
	Type             EntityType `json:"entity_type"`
	Value            string     `json:"value"`
	OriginalLanguage string     `json:"original_language"`
	Confidence       float64    `json:"confidence_score"`
	Method           Method     `json:"extraction_method"`
}

// Validate checks entity invariants.
func (e *ExtractedEntity) Validate() error {
	if e.Type == "" {
		return fmt.Errorf("entity type cannot be empty")
	}
	if e.Value == "" {
		return fmt.Errorf("entity value cannot be empty")
	}
	if e.Confidence < 0 || e.Confidence > 1 {
		return fmt.Errorf("confidence %f out of range [0,1]", e.Confidence)
	}
	return nil
}

// ExtractionResult is the full outcome of processing one document. Entities
// contains at most one entry per entity type, in the target-list order for
// the document type.
type ExtractionResult struct {
	ID                string            `json:"id"`
	Success           bool              `json:"success"`
	DetectedLanguage  string            `json:"detected_language,omitempty"`
	OverallConfidence float64           `json:"overall_confidence"`
	RawText           string            `json:"raw_text,omitempty"`
	Entities          []ExtractedEntity `json:"entities"`
	Warnings          []string          `json:"warnings,omitempty"`
	ProcessingTime    time.Duration     `json:"processing_time"`
	Error             string            `json:"error,omitempty"`
}

// Entity returns the extracted entity of the given type, if present.
func (r *ExtractionResult) Entity(t EntityType) (ExtractedEntity, bool) {
	for _, e := range r.Entities {
		if e.Type == t {
			return e, true
		}
	}
	return ExtractedEntity{}, false
}
