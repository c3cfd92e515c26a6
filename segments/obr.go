package segments

import (
	"fmt"

	"github.com/dshills/ssmixgen/hl7"
)

// OBR represents the Observation Request segment: the test or procedure a
// lab order (OML^O33) places, or the order context a result (ORU^R01)
// reports against.
//
// Field positions follow the HL7 standard where OBR-1 is the first field
// after the segment name. Only the fields the generator actually
// populates are named here; the placer order number, collection and
// specimen fields, and the many reporting/transport fields OBR defines
// (OBR-2, OBR-5 through OBR-6, OBR-8 through OBR-24, OBR-26 through
// OBR-50) are left as literal gaps in ToSegment/ParseOBR — SS-MIX2
// carries specimen context on its own SPM segment rather than OBR's
// deprecated specimen fields, and the placer order number lives on ORC.
type OBR struct {
	// SetID is OBR-1: Set ID for the OBR segment.
	SetID string `hl7:"OBR.1"`

	// FillerOrderNumber is OBR-3: Filler order number. Carries the
	// generated specimen ID linking this order/result to its LabTest.
	FillerOrderNumber string `hl7:"OBR.3"`

	// UniversalServiceIdentifier is OBR-4: Universal service identifier
	// (CE - Coded Element) identifying the test/procedure being ordered.
	UniversalServiceIdentifier string `hl7:"OBR.4"`

	// ObservationDateTime is OBR-7: Observation date/time, the clinically
	// relevant date/time of the observation.
	ObservationDateTime string `hl7:"OBR.7"`

	// ResultStatus is OBR-25: Result status (F=Final, P=Preliminary,
	// C=Correction, etc.). Absent on an order that has no result yet.
	ResultStatus string `hl7:"OBR.25"`
}

// ErrNotOBRSegment indicates the segment is not an OBR segment.
var ErrNotOBRSegment = fmt.Errorf("segment is not OBR")

// ParseOBR extracts field values from an hl7.Segment into an OBR struct.
// Returns an error if the segment is nil or not an OBR segment.
func ParseOBR(seg hl7.Segment) (*OBR, error) {
	if seg == nil {
		return nil, ErrNilSegment
	}

	if seg.Name() != "OBR" {
		return nil, fmt.Errorf("%w: got %s", ErrNotOBRSegment, seg.Name())
	}

	obr := &OBR{
		SetID:                      getFieldValue(seg, 1),
		FillerOrderNumber:          getFieldValue(seg, 3),
		UniversalServiceIdentifier: getFieldValue(seg, 4),
		ObservationDateTime:        getFieldValue(seg, 7),
		ResultStatus:               getFieldValue(seg, 25),
	}

	return obr, nil
}

// ToSegment converts the OBR struct into an hl7.Segment.
// The delims parameter specifies the delimiters to use for encoding.
// If delims is nil, default delimiters are used.
func (o *OBR) ToSegment(delims *hl7.Delimiters) (hl7.Segment, error) {
	if delims == nil {
		delims = hl7.DefaultDelimiters()
	}

	// Index i holds field OBR.(i+1); unused positions stay "" so the
	// populated fields land at their correct HL7 position.
	fields := make([]string, 25)
	fields[0] = o.SetID
	fields[2] = o.FillerOrderNumber
	fields[3] = o.UniversalServiceIdentifier
	fields[6] = o.ObservationDateTime
	fields[24] = o.ResultStatus

	data := buildSegmentData("OBR", fields, delims)

	seg, err := hl7.ParseSegment([]rune(data), delims)
	if err != nil {
		return nil, fmt.Errorf("failed to create OBR segment: %w", err)
	}

	return seg, nil
}
