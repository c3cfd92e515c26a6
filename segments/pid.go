package segments

import (
	"fmt"

	"github.com/dshills/ssmixgen/hl7"
)

// PID represents the Patient Identification segment.
//
// Field positions follow the HL7 standard where PID-1 is the first field
// after the segment name. Only the fields an SS-MIX2 patient record
// actually carries are named here; positions the generator never
// populates (alternate IDs, language, religion, veterinary fields, and
// so on) are left as literal gaps in ToSegment/ParsePID rather than
// given struct fields nothing ever sets.
type PID struct {
	// SetID is PID-1: Set ID for the PID segment (1-based sequence number).
	SetID string `hl7:"PID.1"`

	// PatientIDList is PID-3: Patient identifier list.
	PatientIDList string `hl7:"PID.3"`

	// PatientName is PID-5: Patient name (XPN - Extended Person Name).
	// Format: FamilyName^GivenName^MiddleName^Suffix^Prefix^Degree
	PatientName string `hl7:"PID.5"`

	// DateOfBirth is PID-7: Date/time of birth (format: YYYYMMDD or YYYYMMDDHHMMSS).
	DateOfBirth string `hl7:"PID.7"`

	// Sex is PID-8: Administrative sex (M, F, O, U, A, N).
	Sex string `hl7:"PID.8"`

	// PatientAddress is PID-11: Patient address (XAD - Extended Address).
	PatientAddress string `hl7:"PID.11"`

	// PhoneNumberHome is PID-13: Home phone number (XTN - Extended Telecommunication Number).
	PhoneNumberHome string `hl7:"PID.13"`

	// PatientDeathDateTime is PID-29: Patient death date/time.
	PatientDeathDateTime string `hl7:"PID.29"`

	// PatientDeathIndicator is PID-30: Patient death indicator (Y/N).
	PatientDeathIndicator string `hl7:"PID.30"`
}

// ErrNotPIDSegment indicates the segment is not a PID segment.
var ErrNotPIDSegment = fmt.Errorf("segment is not PID")

// ParsePID extracts field values from an hl7.Segment into a PID struct.
// Returns an error if the segment is nil or not a PID segment.
func ParsePID(seg hl7.Segment) (*PID, error) {
	if seg == nil {
		return nil, ErrNilSegment
	}

	if seg.Name() != "PID" {
		return nil, fmt.Errorf("%w: got %s", ErrNotPIDSegment, seg.Name())
	}

	pid := &PID{
		SetID:                 getFieldValue(seg, 1),
		PatientIDList:         getFieldValue(seg, 3),
		PatientName:           getFieldValue(seg, 5),
		DateOfBirth:           getFieldValue(seg, 7),
		Sex:                   getFieldValue(seg, 8),
		PatientAddress:        getFieldValue(seg, 11),
		PhoneNumberHome:       getFieldValue(seg, 13),
		PatientDeathDateTime:  getFieldValue(seg, 29),
		PatientDeathIndicator: getFieldValue(seg, 30),
	}

	return pid, nil
}

// ToSegment converts the PID struct into an hl7.Segment.
// The delims parameter specifies the delimiters to use for encoding.
// If delims is nil, default delimiters are used.
func (p *PID) ToSegment(delims *hl7.Delimiters) (hl7.Segment, error) {
	if delims == nil {
		delims = hl7.DefaultDelimiters()
	}

	// Index i holds field PID.(i+1); unused positions stay "" so the
	// populated fields land at their correct HL7 position.
	fields := make([]string, 30)
	fields[0] = p.SetID
	fields[2] = p.PatientIDList
	fields[4] = p.PatientName
	fields[6] = p.DateOfBirth
	fields[7] = p.Sex
	fields[10] = p.PatientAddress
	fields[12] = p.PhoneNumberHome
	fields[28] = p.PatientDeathDateTime
	fields[29] = p.PatientDeathIndicator

	data := buildSegmentData("PID", fields, delims)

	seg, err := hl7.ParseSegment([]rune(data), delims)
	if err != nil {
		return nil, fmt.Errorf("failed to create PID segment: %w", err)
	}

	return seg, nil
}
