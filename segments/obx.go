package segments

import (
	"fmt"

	"github.com/dshills/ssmixgen/hl7"
)

// OBX represents the Observation Result segment: a single observation
// value within a lab result, one per reported analyte.
//
// Field positions follow the HL7 standard where OBX-1 is the first field
// after the segment name. Only the fields an SS-MIX2 lab result actually
// carries are named here; OBX-4 (sub-ID, only needed to disambiguate
// repeated identifiers within one OBR) and the producer/equipment/
// organization fields (OBX-9 through OBX-10, OBX-12 through OBX-25) are
// left as literal gaps in ToSegment/ParseOBX.
type OBX struct {
	// SetID is OBX-1: Set ID for the OBX segment.
	SetID string `hl7:"OBX.1"`

	// ValueType is OBX-2: Value type (CE, CWE, NM, ST, TX, etc.).
	// Indicates the data type of the observation value in OBX-5.
	ValueType string `hl7:"OBX.2"`

	// ObservationIdentifier is OBX-3: Observation identifier (CE/CWE).
	// Identifies the observation being reported (e.g., LOINC code).
	ObservationIdentifier string `hl7:"OBX.3"`

	// ObservationValue is OBX-5: Observation value (varies based on OBX-2).
	// The actual result value.
	ObservationValue string `hl7:"OBX.5"`

	// Units is OBX-6: Units (CE/CWE).
	// The units of measurement for the observation value.
	Units string `hl7:"OBX.6"`

	// ReferencesRange is OBX-7: Reference range.
	// The normal reference range for the observation.
	ReferencesRange string `hl7:"OBX.7"`

	// AbnormalFlags is OBX-8: Abnormal flags (can repeat).
	// Indicates the normalcy status of the result (L=Low, H=High, N=Normal, etc.).
	AbnormalFlags string `hl7:"OBX.8"`

	// ObservationResultStatus is OBX-11: Observation result status.
	// Status of the observation (F=Final, P=Preliminary, C=Correction, etc.).
	ObservationResultStatus string `hl7:"OBX.11"`
}

// ErrNotOBXSegment indicates the segment is not an OBX segment.
var ErrNotOBXSegment = fmt.Errorf("segment is not OBX")

// ParseOBX extracts field values from an hl7.Segment into an OBX struct.
// Returns an error if the segment is nil or not an OBX segment.
func ParseOBX(seg hl7.Segment) (*OBX, error) {
	if seg == nil {
		return nil, ErrNilSegment
	}

	if seg.Name() != "OBX" {
		return nil, fmt.Errorf("%w: got %s", ErrNotOBXSegment, seg.Name())
	}

	obx := &OBX{
		SetID:                   getFieldValue(seg, 1),
		ValueType:               getFieldValue(seg, 2),
		ObservationIdentifier:   getFieldValue(seg, 3),
		ObservationValue:        getFieldValue(seg, 5),
		Units:                   getFieldValue(seg, 6),
		ReferencesRange:         getFieldValue(seg, 7),
		AbnormalFlags:           getFieldValue(seg, 8),
		ObservationResultStatus: getFieldValue(seg, 11),
	}

	return obx, nil
}

// ToSegment converts the OBX struct into an hl7.Segment.
// The delims parameter specifies the delimiters to use for encoding.
// If delims is nil, default delimiters are used.
func (o *OBX) ToSegment(delims *hl7.Delimiters) (hl7.Segment, error) {
	if delims == nil {
		delims = hl7.DefaultDelimiters()
	}

	// Index i holds field OBX.(i+1); unused positions stay "" so the
	// populated fields land at their correct HL7 position.
	fields := make([]string, 11)
	fields[0] = o.SetID
	fields[1] = o.ValueType
	fields[2] = o.ObservationIdentifier
	fields[4] = o.ObservationValue
	fields[5] = o.Units
	fields[6] = o.ReferencesRange
	fields[7] = o.AbnormalFlags
	fields[10] = o.ObservationResultStatus

	data := buildSegmentData("OBX", fields, delims)

	seg, err := hl7.ParseSegment([]rune(data), delims)
	if err != nil {
		return nil, fmt.Errorf("failed to create OBX segment: %w", err)
	}

	return seg, nil
}
