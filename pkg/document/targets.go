package document

// targetEntities maps each document type to the fixed, ordered list of
// entity types extraction attempts for it. The order is the order entities
// appear in results.
var targetEntities = map[DocumentType][]EntityType{
	NationalID: {
		FullName, FullNameRegional, DateOfBirth,
		Gender, Address, NationalIDNumber, FatherName,
	},
	TaxID: {
		FullName, FullNameRegional, DateOfBirth,
		TaxIDNumber, FatherName,
	},
	VoterID: {
		FullName, FullNameRegional, DateOfBirth,
		Gender, Address, VoterIDNumber, FatherName,
	},
	RationCard: {
		FullName, FullNameRegional, Address,
		RationCardNumber,
	},
	CommunityCertificate: {
		FullName, Community, CertificateIssueDate,
		FatherName,
	},
	IncomeCertificate: {
		FullName, AnnualIncome, CertificateIssueDate,
		Address,
	},
	DrivingLicense: {
		FullName, FullNameRegional, DateOfBirth,
		Address, DrivingLicenseNumber, BloodGroup,
		OrganDonor, ValidityDate, IssueDate,
		FatherName,
	},
}

// TargetEntities returns the ordered target entity list for a document
// type. Unknown or unmapped types fall back to attempting only the full
// name. The returned slice is a copy; the underlying table never changes.
func TargetEntities(t DocumentType) []EntityType {
	targets, ok := targetEntities[t]
	if !ok {
		return []EntityType{FullName}
	}
	out := make([]EntityType, len(targets))
	copy(out, targets)
	return out
}
