package segments

import (
	"fmt"

	"github.com/dshills/ssmixgen/hl7"
)

// RXR represents the Pharmacy/Treatment Route segment.
// Carries the administration route for the order in the preceding RXE
// segment (e.g. oral, topical, IV).
type RXR struct {
	// Route is RXR-1 (CE).
	Route string `hl7:"RXR.1"`

	// AdministrationSite is RXR-2 (CE).
	AdministrationSite string `hl7:"RXR.2"`

	// AdministrationDevice is RXR-3 (CE).
	AdministrationDevice string `hl7:"RXR.3"`
}

// ErrNotRXRSegment indicates the segment is not an RXR segment.
var ErrNotRXRSegment = fmt.Errorf("segment is not RXR")

// ParseRXR extracts field values from an hl7.Segment into an RXR struct.
func ParseRXR(seg hl7.Segment) (*RXR, error) {
	if seg == nil {
		return nil, ErrNilSegment
	}

	if seg.Name() != "RXR" {
		return nil, fmt.Errorf("%w: got %s", ErrNotRXRSegment, seg.Name())
	}

	rxr := &RXR{
		Route:                getFieldValue(seg, 1),
		AdministrationSite:   getFieldValue(seg, 2),
		AdministrationDevice: getFieldValue(seg, 3),
	}

	return rxr, nil
}

// ToSegment converts the RXR struct into an hl7.Segment.
func (r *RXR) ToSegment(delims *hl7.Delimiters) (hl7.Segment, error) {
	if delims == nil {
		delims = hl7.DefaultDelimiters()
	}

	fields := []string{
		r.Route,
		r.AdministrationSite,
		r.AdministrationDevice,
	}

	data := buildSegmentData("RXR", fields, delims)

	seg, err := hl7.ParseSegment([]rune(data), delims)
	if err != nil {
		return nil, fmt.Errorf("failed to create RXR segment: %w", err)
	}

	return seg, nil
}
