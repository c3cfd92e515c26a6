package domain

// Allergen type codes from HL7 Table 0127.
const (
	AllergenDrug  = "DA"
	AllergenFood  = "FA"
	AllergenOther = "MA"
)

func validAllergenType(t string) bool {
	switch t {
	case AllergenDrug, AllergenFood, AllergenOther:
		return true
	default:
		return false
	}
}

// Severity codes from HL7 Table 0128.
const (
	SeverityMild     = "MI"
	SeverityModerate = "MO"
	SeveritySevere   = "SV"
)

func validSeverity(s string) bool {
	switch s {
	case SeverityMild, SeverityModerate, SeveritySevere:
		return true
	default:
		return false
	}
}

// Allergy models one AL1-bearing allergy record.
type Allergy struct {
	PatientID    string
	AllergenType string
	Allergen     string
	Severity     string
	Reaction     string
}

// NewAllergy validates the required AL1 attributes. Reaction is a free-text
// note and accepts the empty string.
func NewAllergy(patientID, allergenType, allergen, severity, reaction string) (*Allergy, error) {
	if patientID == "" {
		return nil, newValidationError("Allergy", "PatientID", patientID, "required")
	}
	if !validAllergenType(allergenType) {
		return nil, newValidationError("Allergy", "AllergenType", allergenType, "must be one of DA,FA,MA")
	}
	if allergen == "" {
		return nil, newValidationError("Allergy", "Allergen", allergen, "required")
	}
	if severity != "" && !validSeverity(severity) {
		return nil, newValidationError("Allergy", "Severity", severity, "must be one of MI,MO,SV when present")
	}

	return &Allergy{
		PatientID:    patientID,
		AllergenType: allergenType,
		Allergen:     allergen,
		Severity:     severity,
		Reaction:     reaction,
	}, nil
}
