package domain

import "time"

// Patient class codes from HL7 Table 0004, the set SS-MIX2 ADT profiles
// restrict to.
const (
	PatientClassInpatient  = "I"
	PatientClassOutpatient = "O"
	PatientClassEmergency  = "E"
)

func validPatientClass(c string) bool {
	switch c {
	case PatientClassInpatient, PatientClassOutpatient, PatientClassEmergency:
		return true
	default:
		return false
	}
}

// Admission models one PV1-bearing visit: an inpatient stay or an
// outpatient encounter. DischargeDateTime is the zero value for an
// admission still open at generation time.
type Admission struct {
	PatientID         string
	VisitNumber       string
	PatientClass      string
	AssignedLocation  string
	AdmitDateTime     time.Time
	DischargeDateTime time.Time
}

// NewAdmission validates the required PV1 attributes. DischargeDateTime is
// optional; when supplied it must not precede AdmitDateTime.
func NewAdmission(patientID, visitNumber, patientClass, assignedLocation, admitDateTime, dischargeDateTime string) (*Admission, error) {
	if patientID == "" {
		return nil, newValidationError("Admission", "PatientID", patientID, "required")
	}
	if visitNumber == "" {
		return nil, newValidationError("Admission", "VisitNumber", visitNumber, "required")
	}
	if !validPatientClass(patientClass) {
		return nil, newValidationError("Admission", "PatientClass", patientClass, "must be one of I,O,E")
	}
	admit, err := parseClinicalTimestamp(admitDateTime)
	if err != nil {
		return nil, newValidationError("Admission", "AdmitDateTime", admitDateTime, "must be YYYYMMDD or YYYYMMDDHHMMSS")
	}

	a := &Admission{
		PatientID:        patientID,
		VisitNumber:      visitNumber,
		PatientClass:     patientClass,
		AssignedLocation: assignedLocation,
		AdmitDateTime:    admit,
	}

	if dischargeDateTime == "" {
		return a, nil
	}
	discharge, err := parseClinicalTimestamp(dischargeDateTime)
	if err != nil {
		return nil, newValidationError("Admission", "DischargeDateTime", dischargeDateTime, "must be YYYYMMDD or YYYYMMDDHHMMSS")
	}
	if discharge.Before(admit) {
		return nil, newValidationError("Admission", "DischargeDateTime", dischargeDateTime, "must not precede AdmitDateTime")
	}
	a.DischargeDateTime = discharge
	return a, nil
}
