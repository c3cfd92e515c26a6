package domain

import "time"

// Result status codes from HL7 Table 0123, restricted to the subset
// SS-MIX2 ORU profiles use.
const (
	ResultStatusFinal        = "F"
	ResultStatusPreliminary  = "P"
	ResultStatusCorrected    = "C"
)

func validResultStatus(s string) bool {
	switch s {
	case ResultStatusFinal, ResultStatusPreliminary, ResultStatusCorrected:
		return true
	default:
		return false
	}
}

// LabTest models one OBR/OBX-bearing observation battery: an order for a
// named test, reported against a specimen, carrying zero or more observed
// values (see Observation).
type LabTest struct {
	PatientID      string
	SpecimenID     string
	TestCode       string
	TestName       string
	ObservedAt     time.Time
	ResultStatus   string
	Observations   []Observation
}

// Observation is one OBX-bearing measured value within a LabTest.
type Observation struct {
	SetID        string
	ValueType    string
	ObservationID string
	Value        string
	Units        string
	ReferenceRange string
	AbnormalFlag string
	ResultStatus string
}

// NewLabTest validates the required OBR attributes. Observations are
// appended after construction via AddObservation since a battery can be
// built up incrementally as its component results resolve.
func NewLabTest(patientID, specimenID, testCode, testName, observedAt, resultStatus string) (*LabTest, error) {
	if patientID == "" {
		return nil, newValidationError("LabTest", "PatientID", patientID, "required")
	}
	if testCode == "" {
		return nil, newValidationError("LabTest", "TestCode", testCode, "required")
	}
	when, err := parseClinicalTimestamp(observedAt)
	if err != nil {
		return nil, newValidationError("LabTest", "ObservedAt", observedAt, "must be YYYYMMDD or YYYYMMDDHHMMSS")
	}
	if !validResultStatus(resultStatus) {
		return nil, newValidationError("LabTest", "ResultStatus", resultStatus, "must be one of F,P,C")
	}

	return &LabTest{
		PatientID:    patientID,
		SpecimenID:   specimenID,
		TestCode:     testCode,
		TestName:     testName,
		ObservedAt:   when,
		ResultStatus: resultStatus,
	}, nil
}

// AddObservation validates and appends one OBX value to the battery.
func (l *LabTest) AddObservation(obs Observation) error {
	if obs.ObservationID == "" {
		return newValidationError("Observation", "ObservationID", obs.ObservationID, "required")
	}
	l.Observations = append(l.Observations, obs)
	return nil
}
