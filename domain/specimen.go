package domain

import "time"

// Specimen models one SPM-bearing collected sample.
type Specimen struct {
	ID             string
	PatientID      string
	SpecimenType   string
	CollectedAt    time.Time
	ReceivedAt     time.Time
}

// NewSpecimen validates the required SPM attributes. ReceivedAt is
// optional; when supplied it must not precede CollectedAt.
func NewSpecimen(id, patientID, specimenType, collectedAt, receivedAt string) (*Specimen, error) {
	if id == "" {
		return nil, newValidationError("Specimen", "ID", id, "required")
	}
	if patientID == "" {
		return nil, newValidationError("Specimen", "PatientID", patientID, "required")
	}
	if specimenType == "" {
		return nil, newValidationError("Specimen", "SpecimenType", specimenType, "required")
	}
	collected, err := parseClinicalTimestamp(collectedAt)
	if err != nil {
		return nil, newValidationError("Specimen", "CollectedAt", collectedAt, "must be YYYYMMDD or YYYYMMDDHHMMSS")
	}

	s := &Specimen{
		ID:           id,
		PatientID:    patientID,
		SpecimenType: specimenType,
		CollectedAt:  collected,
	}

	if receivedAt == "" {
		return s, nil
	}
	received, err := parseClinicalTimestamp(receivedAt)
	if err != nil {
		return nil, newValidationError("Specimen", "ReceivedAt", receivedAt, "must be YYYYMMDD or YYYYMMDDHHMMSS")
	}
	if received.Before(collected) {
		return nil, newValidationError("Specimen", "ReceivedAt", receivedAt, "must not precede CollectedAt")
	}
	s.ReceivedAt = received
	return s, nil
}
