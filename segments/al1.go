package segments

import (
	"fmt"

	"github.com/dshills/ssmixgen/hl7"
)

// AL1 represents the Patient Allergy Information segment.
// One AL1 segment is emitted per allergy note attached to a patient; a
// patient with multiple allergies carries multiple AL1 segments in the
// same message, ordered by AllergySetID.
type AL1 struct {
	// SetID is AL1-1: Set ID, a 1-based sequence number distinguishing
	// repeated AL1 segments within one message.
	SetID string `hl7:"AL1.1"`

	// AllergenTypeCode is AL1-2: allergen type (DA=Drug, FA=Food, MA=Misc, EA=Environmental).
	AllergenTypeCode string `hl7:"AL1.2"`

	// AllergenCodeDescription is AL1-3: code/description of the allergen (CE).
	AllergenCodeDescription string `hl7:"AL1.3"`

	// AllergySeverityCode is AL1-4: severity (SV=Severe, MO=Moderate, MI=Mild).
	AllergySeverityCode string `hl7:"AL1.4"`

	// AllergyReaction is AL1-5: free-text reaction description.
	AllergyReaction string `hl7:"AL1.5"`

	// IdentificationDate is AL1-6: date the allergy was identified.
	IdentificationDate string `hl7:"AL1.6"`
}

// ErrNotAL1Segment indicates the segment is not an AL1 segment.
var ErrNotAL1Segment = fmt.Errorf("segment is not AL1")

// ParseAL1 extracts field values from an hl7.Segment into an AL1 struct.
func ParseAL1(seg hl7.Segment) (*AL1, error) {
	if seg == nil {
		return nil, ErrNilSegment
	}

	if seg.Name() != "AL1" {
		return nil, fmt.Errorf("%w: got %s", ErrNotAL1Segment, seg.Name())
	}

	al1 := &AL1{
		SetID:                   getFieldValue(seg, 1),
		AllergenTypeCode:        getFieldValue(seg, 2),
		AllergenCodeDescription: getFieldValue(seg, 3),
		AllergySeverityCode:     getFieldValue(seg, 4),
		AllergyReaction:         getFieldValue(seg, 5),
		IdentificationDate:      getFieldValue(seg, 6),
	}

	return al1, nil
}

// ToSegment converts the AL1 struct into an hl7.Segment.
func (a *AL1) ToSegment(delims *hl7.Delimiters) (hl7.Segment, error) {
	if delims == nil {
		delims = hl7.DefaultDelimiters()
	}

	fields := []string{
		a.SetID,
		a.AllergenTypeCode,
		a.AllergenCodeDescription,
		a.AllergySeverityCode,
		a.AllergyReaction,
		a.IdentificationDate,
	}

	data := buildSegmentData("AL1", fields, delims)

	seg, err := hl7.ParseSegment([]rune(data), delims)
	if err != nil {
		return nil, fmt.Errorf("failed to create AL1 segment: %w", err)
	}

	return seg, nil
}
