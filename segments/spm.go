package segments

import (
	"fmt"

	"github.com/dshills/ssmixgen/hl7"
)

// SPM represents the Specimen segment.
// Accompanies an OBR in laboratory-order and laboratory-result messages
// to describe the physical specimen an observation was drawn from.
type SPM struct {
	// SetID is SPM-1.
	SetID string `hl7:"SPM.1"`

	// SpecimenID is SPM-2: placer/filler specimen identifiers (EIP).
	SpecimenID string `hl7:"SPM.2"`

	// SpecimenParentIDs is SPM-3.
	SpecimenParentIDs string `hl7:"SPM.3"`

	// SpecimenType is SPM-4 (CWE): e.g. blood, urine.
	SpecimenType string `hl7:"SPM.4"`

	// SpecimenTypeModifier is SPM-5.
	SpecimenTypeModifier string `hl7:"SPM.5"`

	// SpecimenCollectionDateTime is SPM-17.
	SpecimenCollectionDateTime string `hl7:"SPM.17"`

	// SpecimenReceivedDateTime is SPM-18.
	SpecimenReceivedDateTime string `hl7:"SPM.18"`
}

// ErrNotSPMSegment indicates the segment is not an SPM segment.
var ErrNotSPMSegment = fmt.Errorf("segment is not SPM")

// ParseSPM extracts field values from an hl7.Segment into an SPM struct.
func ParseSPM(seg hl7.Segment) (*SPM, error) {
	if seg == nil {
		return nil, ErrNilSegment
	}

	if seg.Name() != "SPM" {
		return nil, fmt.Errorf("%w: got %s", ErrNotSPMSegment, seg.Name())
	}

	spm := &SPM{
		SetID:                      getFieldValue(seg, 1),
		SpecimenID:                 getFieldValue(seg, 2),
		SpecimenParentIDs:          getFieldValue(seg, 3),
		SpecimenType:               getFieldValue(seg, 4),
		SpecimenTypeModifier:       getFieldValue(seg, 5),
		SpecimenCollectionDateTime: getFieldValue(seg, 17),
		SpecimenReceivedDateTime:   getFieldValue(seg, 18),
	}

	return spm, nil
}

// ToSegment converts the SPM struct into an hl7.Segment.
func (s *SPM) ToSegment(delims *hl7.Delimiters) (hl7.Segment, error) {
	if delims == nil {
		delims = hl7.DefaultDelimiters()
	}

	fields := make([]string, 18)
	fields[0] = s.SetID
	fields[1] = s.SpecimenID
	fields[2] = s.SpecimenParentIDs
	fields[3] = s.SpecimenType
	fields[4] = s.SpecimenTypeModifier
	fields[16] = s.SpecimenCollectionDateTime
	fields[17] = s.SpecimenReceivedDateTime

	data := buildSegmentData("SPM", fields, delims)

	seg, err := hl7.ParseSegment([]rune(data), delims)
	if err != nil {
		return nil, fmt.Errorf("failed to create SPM segment: %w", err)
	}

	return seg, nil
}
