package domain

import "time"

// Sex codes from HL7 Table 0001, the only values SS-MIX2 profiles accept.
const (
	SexMale      = "M"
	SexFemale    = "F"
	SexOther     = "O"
	SexUnknown   = "U"
)

func validSex(s string) bool {
	switch s {
	case SexMale, SexFemale, SexOther, SexUnknown:
		return true
	default:
		return false
	}
}

// Name holds a patient's family/given name pair, kanji and kana renderings.
// Both renderings are optional independently: a synthesizer may populate
// kanji only, kana only, or both.
type Name struct {
	FamilyName     string
	GivenName      string
	FamilyNameKana string
	GivenNameKana  string
}

// Address is a Japanese postal address. Chome is kept distinct from the
// rest of Town because synth deliberately pins it to a non-existent 99
// chōme so generated addresses never collide with a real one.
type Address struct {
	PostalCode string
	Prefecture string
	City       string
	Town       string
	Chome      string
	Building   string
}

// Patient is the anchor entity every other entity in a generation run
// references by ID. Name, Address, and PhoneNumber are synthesized
// attributes filled in after construction by the synth package; they carry
// no validation here because an un-synthesized Patient (all three zero
// value) is itself a legitimate intermediate state.
type Patient struct {
	ID          string
	Sex         string
	BirthDate   time.Time
	Dead        bool
	DeathDate   time.Time
	Name        Name
	Address     Address
	PhoneNumber string
}

// NewPatient validates the required clinical attributes of a patient and
// returns a Patient with its synthesized fields left zero. Sex must be one
// of HL7 Table 0001's four codes. BirthDate must parse as YYYYMMDD. A dead
// patient must carry a DeathDate on or after BirthDate; a living patient
// must not carry one at all.
func NewPatient(id, sex, birthDate string, dead bool, deathDate string) (*Patient, error) {
	if id == "" {
		return nil, newValidationError("Patient", "ID", id, "required")
	}
	if !validSex(sex) {
		return nil, newValidationError("Patient", "Sex", sex, "must be one of M,F,O,U")
	}
	birth, err := parseDate(birthDate)
	if err != nil {
		return nil, newValidationError("Patient", "BirthDate", birthDate, "must be YYYYMMDD")
	}

	p := &Patient{
		ID:        id,
		Sex:       sex,
		BirthDate: birth,
		Dead:      dead,
	}

	if !dead {
		if deathDate != "" {
			return nil, newValidationError("Patient", "DeathDate", deathDate, "must be empty when Dead is false")
		}
		return p, nil
	}

	if deathDate == "" {
		return nil, newValidationError("Patient", "DeathDate", deathDate, "required when Dead is true")
	}
	death, err := parseDate(deathDate)
	if err != nil {
		return nil, newValidationError("Patient", "DeathDate", deathDate, "must be YYYYMMDD")
	}
	if death.Before(birth) {
		return nil, newValidationError("Patient", "DeathDate", deathDate, "must not precede BirthDate")
	}
	p.DeathDate = death
	return p, nil
}
